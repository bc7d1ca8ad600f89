package dto

// ── User DTOs ──

// UpdateProfileRequest updates the caller's own account.
type UpdateProfileRequest struct {
	Name     *string `json:"name"     binding:"omitempty,min=2,max=100"`
	Password *string `json:"password" binding:"omitempty,min=6"`
}
