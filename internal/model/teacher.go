package model

import "time"

// Teacher is a lecturer, always attached to one department and one degree.
type Teacher struct {
	TeacherID    string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"teacher_id"`
	Code         string    `gorm:"type:varchar(20);not null;uniqueIndex"          json:"code"`
	Name         string    `gorm:"type:varchar(100);not null"                     json:"name"`
	DOB          time.Time `gorm:"type:date;not null"                             json:"dob"`
	Phone        string    `gorm:"type:varchar(10)"                               json:"phone,omitempty"`
	Email        string    `gorm:"type:varchar(255)"                              json:"email,omitempty"`
	DepartmentID string    `gorm:"type:uuid;not null"                             json:"department_id"`
	DegreeID     string    `gorm:"type:uuid;not null"                             json:"degree_id"`
	BaseModel

	Department *Department `gorm:"foreignKey:DepartmentID;references:DepartmentID" json:"department,omitempty"`
	Degree     *Degree     `gorm:"foreignKey:DegreeID;references:DegreeID"         json:"degree,omitempty"`
}

// TableName maps the model to its table.
func (Teacher) TableName() string { return "teachers" }
