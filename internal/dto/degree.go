package dto

// ── Degree DTOs ──

// CreateDegreeRequest creates a degree.
type CreateDegreeRequest struct {
	Name        string  `json:"name"        binding:"required,min=2,max=100"`
	ShortName   string  `json:"short_name"  binding:"required,min=1,max=20"`
	Coefficient float64 `json:"coefficient" binding:"required,gte=1"`
}

// UpdateDegreeRequest updates a degree; absent fields are untouched.
type UpdateDegreeRequest struct {
	Name        *string  `json:"name"        binding:"omitempty,min=2,max=100"`
	ShortName   *string  `json:"short_name"  binding:"omitempty,min=1,max=20"`
	Coefficient *float64 `json:"coefficient" binding:"omitempty,gte=1"`
}

// DegreeResponse is a degree as returned to the SPA.
type DegreeResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	ShortName   string  `json:"short_name"`
	Coefficient float64 `json:"coefficient"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}
