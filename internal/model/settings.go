package model

// Default settings used when no record has been created yet.
const (
	DefaultBaseRate                 = 50000.0
	DefaultCoefficientNormal        = 1.0
	DefaultCoefficientSpecial       = 1.5
	DefaultCoefficientInternational = 2.0
)

// Settings is the single-row system configuration: the base pay rate
// per lesson (VNĐ) and one coefficient per class type.
type Settings struct {
	Singleton                bool    `gorm:"primaryKey;default:true" json:"-"`
	BaseRate                 float64 `gorm:"not null;default:0"      json:"base_rate"`
	CoefficientNormal        float64 `gorm:"not null;default:1.0"    json:"coefficient_normal"`
	CoefficientSpecial       float64 `gorm:"not null;default:1.5"    json:"coefficient_special"`
	CoefficientInternational float64 `gorm:"not null;default:2.0"    json:"coefficient_international"`
	BaseModel
}

// TableName maps the model to its table.
func (Settings) TableName() string { return "settings" }

// DefaultSettings builds the record persisted on first read.
func DefaultSettings() *Settings {
	return &Settings{
		Singleton:                true,
		BaseRate:                 DefaultBaseRate,
		CoefficientNormal:        DefaultCoefficientNormal,
		CoefficientSpecial:       DefaultCoefficientSpecial,
		CoefficientInternational: DefaultCoefficientInternational,
	}
}

// CoefficientFor returns the stored coefficient for a class type,
// falling back to 1 for an unknown type.
func (s *Settings) CoefficientFor(classType string) float64 {
	switch classType {
	case ClassTypeNormal:
		return s.CoefficientNormal
	case ClassTypeSpecial:
		return s.CoefficientSpecial
	case ClassTypeInternational:
		return s.CoefficientInternational
	default:
		return 1
	}
}

// FallbackCoefficient is the hard-coded table used when no settings
// record exists yet.
func FallbackCoefficient(classType string) float64 {
	switch classType {
	case ClassTypeSpecial:
		return 1.5
	case ClassTypeInternational:
		return 2
	default:
		return 1
	}
}
