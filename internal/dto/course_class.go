package dto

// ── CourseClass DTOs ──

// CreateCourseClassRequest opens a class of a course in a semester.
// Coefficient is not accepted from the client; it is stamped from the
// current settings based on Type.
type CreateCourseClassRequest struct {
	CourseID     string `json:"course_id"     binding:"required,uuid"`
	SemesterID   string `json:"semester_id"   binding:"required,uuid"`
	TeacherID    string `json:"teacher_id"    binding:"required,uuid"`
	Type         string `json:"type"          binding:"omitempty,oneof=normal special international"`
	Code         string `json:"code"          binding:"required,min=1,max=30"`
	Name         string `json:"name"          binding:"required,min=2,max=200"`
	StudentCount int    `json:"student_count" binding:"omitempty,gte=0"`
}

// UpdateCourseClassRequest updates a class. Changing Type re-stamps
// the coefficient from the current settings.
type UpdateCourseClassRequest struct {
	CourseID     *string `json:"course_id"     binding:"omitempty,uuid"`
	SemesterID   *string `json:"semester_id"   binding:"omitempty,uuid"`
	TeacherID    *string `json:"teacher_id"    binding:"omitempty,uuid"`
	Type         *string `json:"type"          binding:"omitempty,oneof=normal special international"`
	Code         *string `json:"code"          binding:"omitempty,min=1,max=30"`
	Name         *string `json:"name"          binding:"omitempty,min=2,max=200"`
	StudentCount *int    `json:"student_count" binding:"omitempty,gte=0"`
}

// CourseRef is the populated course inside a class response.
type CourseRef struct {
	ID           string `json:"id"`
	Code         string `json:"code"`
	Name         string `json:"name"`
	Credits      int    `json:"credits"`
	TotalLessons int    `json:"total_lessons"`
}

// SemesterRef is the populated semester inside a class response.
type SemesterRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Year string `json:"year"`
}

// TeacherRef is the populated teacher inside a class response.
type TeacherRef struct {
	ID   string `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// CourseClassResponse is a class with populated references.
type CourseClassResponse struct {
	ID           string       `json:"id"`
	Code         string       `json:"code"`
	Name         string       `json:"name"`
	Type         string       `json:"type"`
	Coefficient  float64      `json:"coefficient"`
	StudentCount int          `json:"student_count"`
	Course       *CourseRef   `json:"course,omitempty"`
	Semester     *SemesterRef `json:"semester,omitempty"`
	Teacher      *TeacherRef  `json:"teacher,omitempty"`
	CreatedAt    string       `json:"created_at"`
	UpdatedAt    string       `json:"updated_at"`
}

// ── Class statistics DTOs ──

// SemesterClassStats counts classes and students per semester.
type SemesterClassStats struct {
	SemesterID   string `json:"semester_id"`
	SemesterName string `json:"semester_name"`
	Year         string `json:"year"`
	ClassCount   int64  `json:"class_count"`
	StudentCount int64  `json:"student_count"`
}

// CourseClassStats counts classes and students per course.
type CourseClassStats struct {
	CourseID     string `json:"course_id"`
	CourseCode   string `json:"course_code"`
	CourseName   string `json:"course_name"`
	ClassCount   int64  `json:"class_count"`
	StudentCount int64  `json:"student_count"`
}

// SemesterCourseStats counts classes per course within one semester.
type SemesterCourseStats struct {
	CourseID     string `json:"course_id"`
	CourseCode   string `json:"course_code"`
	CourseName   string `json:"course_name"`
	ClassCount   int64  `json:"class_count"`
	StudentCount int64  `json:"student_count"`
}

// YearClassStats counts classes and students per academic year.
type YearClassStats struct {
	Year         string `json:"year"`
	ClassCount   int64  `json:"class_count"`
	StudentCount int64  `json:"student_count"`
}
