package dto

// ── Course DTOs ──

// CreateCourseRequest creates a course.
type CreateCourseRequest struct {
	Code         string `json:"code"          binding:"required,min=1,max=20"`
	Name         string `json:"name"          binding:"required,min=2,max=200"`
	Credits      int    `json:"credits"       binding:"required,gte=1"`
	TotalLessons int    `json:"total_lessons" binding:"required,gte=1"`
	Description  string `json:"description"   binding:"omitempty,max=500"`
}

// UpdateCourseRequest updates a course.
type UpdateCourseRequest struct {
	Code         *string `json:"code"          binding:"omitempty,min=1,max=20"`
	Name         *string `json:"name"          binding:"omitempty,min=2,max=200"`
	Credits      *int    `json:"credits"       binding:"omitempty,gte=1"`
	TotalLessons *int    `json:"total_lessons" binding:"omitempty,gte=1"`
	Description  *string `json:"description"   binding:"omitempty,max=500"`
}

// CourseResponse is a course as returned to the SPA.
type CourseResponse struct {
	ID           string `json:"id"`
	Code         string `json:"code"`
	Name         string `json:"name"`
	Credits      int    `json:"credits"`
	TotalLessons int    `json:"total_lessons"`
	Description  string `json:"description,omitempty"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}
