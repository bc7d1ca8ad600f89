package model

// Department is a faculty/department of the university.
type Department struct {
	DepartmentID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"department_id"`
	Name         string `gorm:"type:varchar(100);not null"                     json:"name"`
	ShortName    string `gorm:"type:varchar(20);not null"                      json:"short_name"`
	Description  string `gorm:"type:text"                                      json:"description,omitempty"`
	BaseModel
}

// TableName maps the model to its table.
func (Department) TableName() string { return "departments" }
