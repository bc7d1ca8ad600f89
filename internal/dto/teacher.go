package dto

// ── Teacher DTOs ──

// CreateTeacherRequest creates a teacher. DOB uses "2006-01-02"; the
// service enforces the age/phone/email rules.
type CreateTeacherRequest struct {
	Code         string `json:"code"          binding:"required,min=1,max=20"`
	Name         string `json:"name"          binding:"required,min=2,max=100"`
	DOB          string `json:"dob"           binding:"required"`
	Phone        string `json:"phone"         binding:"omitempty"`
	Email        string `json:"email"         binding:"omitempty"`
	DepartmentID string `json:"department_id" binding:"required,uuid"`
	DegreeID     string `json:"degree_id"     binding:"required,uuid"`
}

// UpdateTeacherRequest updates a teacher.
type UpdateTeacherRequest struct {
	Code         *string `json:"code"          binding:"omitempty,min=1,max=20"`
	Name         *string `json:"name"          binding:"omitempty,min=2,max=100"`
	DOB          *string `json:"dob"`
	Phone        *string `json:"phone"`
	Email        *string `json:"email"`
	DepartmentID *string `json:"department_id" binding:"omitempty,uuid"`
	DegreeID     *string `json:"degree_id"     binding:"omitempty,uuid"`
}

// DepartmentRef is the populated department inside a teacher response.
type DepartmentRef struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
}

// DegreeRef is the populated degree inside a teacher response.
type DegreeRef struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	ShortName   string  `json:"short_name"`
	Coefficient float64 `json:"coefficient"`
}

// TeacherResponse is a teacher with populated references.
type TeacherResponse struct {
	ID         string         `json:"id"`
	Code       string         `json:"code"`
	Name       string         `json:"name"`
	DOB        string         `json:"dob"`
	Phone      string         `json:"phone,omitempty"`
	Email      string         `json:"email,omitempty"`
	Department *DepartmentRef `json:"department,omitempty"`
	Degree     *DegreeRef     `json:"degree,omitempty"`
	CreatedAt  string         `json:"created_at"`
	UpdatedAt  string         `json:"updated_at"`
}
