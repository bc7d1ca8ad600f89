package dto

// ── Semester DTOs ──

// CreateSemesterRequest creates a semester. Name must be one of the
// three Vietnamese term names and Year must be "YYYY-YYYY" with
// end = start + 1; both are validated in the service.
type CreateSemesterRequest struct {
	Name      string `json:"name"       binding:"required"`
	Year      string `json:"year"       binding:"required"`
	StartDate string `json:"start_date" binding:"required"` // "2006-01-02"
	EndDate   string `json:"end_date"   binding:"required"`
}

// UpdateSemesterRequest updates a semester.
type UpdateSemesterRequest struct {
	Name      *string `json:"name"`
	Year      *string `json:"year"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
}

// SemesterResponse is a semester as returned to the SPA.
type SemesterResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Year      string `json:"year"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}
