package model

// Degree is an academic degree with its payment coefficient.
type Degree struct {
	DegreeID    string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"degree_id"`
	Name        string  `gorm:"type:varchar(100);not null"                     json:"name"`
	ShortName   string  `gorm:"type:varchar(20);not null"                      json:"short_name"`
	Coefficient float64 `gorm:"not null;default:1"                             json:"coefficient"`
	BaseModel
}

// TableName maps the model to its table.
func (Degree) TableName() string { return "degrees" }
