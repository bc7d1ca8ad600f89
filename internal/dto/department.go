package dto

// ── Department DTOs ──

// CreateDepartmentRequest creates a department.
type CreateDepartmentRequest struct {
	Name        string `json:"name"        binding:"required,min=2,max=100"`
	ShortName   string `json:"short_name"  binding:"required,min=1,max=20"`
	Description string `json:"description" binding:"omitempty,max=500"`
}

// UpdateDepartmentRequest updates a department.
type UpdateDepartmentRequest struct {
	Name        *string `json:"name"        binding:"omitempty,min=2,max=100"`
	ShortName   *string `json:"short_name"  binding:"omitempty,min=1,max=20"`
	Description *string `json:"description" binding:"omitempty,max=500"`
}

// DepartmentResponse is a department as returned to the SPA.
type DepartmentResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ShortName   string `json:"short_name"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}
