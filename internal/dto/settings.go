package dto

// ── Settings DTOs ──

// UpdateSettingsRequest changes the payment rate and/or the class
// type coefficients. Absent fields keep their current value.
type UpdateSettingsRequest struct {
	BaseRate                 *float64 `json:"base_rate"                 binding:"omitempty,gt=0"`
	CoefficientNormal        *float64 `json:"coefficient_normal"        binding:"omitempty,gt=0"`
	CoefficientSpecial       *float64 `json:"coefficient_special"       binding:"omitempty,gt=0"`
	CoefficientInternational *float64 `json:"coefficient_international" binding:"omitempty,gt=0"`
}

// UpdatePaymentRateRequest changes only the money per lesson.
type UpdatePaymentRateRequest struct {
	BaseRate float64 `json:"base_rate" binding:"required,gt=0"`
}

// SettingsResponse is the single settings row.
type SettingsResponse struct {
	BaseRate                 float64 `json:"base_rate"`
	CoefficientNormal        float64 `json:"coefficient_normal"`
	CoefficientSpecial       float64 `json:"coefficient_special"`
	CoefficientInternational float64 `json:"coefficient_international"`
	UpdatedAt                string  `json:"updated_at"`
}

// PaymentRateResponse exposes just the per-lesson rate.
type PaymentRateResponse struct {
	BaseRate float64 `json:"base_rate"`
}

// PropagationResponse reports how many classes were re-stamped after
// a coefficient change.
type PropagationResponse struct {
	Message        string `json:"message"`
	UpdatedClasses int64  `json:"updated_classes"`
}
