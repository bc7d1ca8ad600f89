package model

import "time"

// Semester names accepted by validation.
var SemesterNames = []string{"Học kì 1", "Học kì 2", "Học kì 3"}

// Semester is one term of an academic year, unique on (name, year).
// Year uses the "YYYY-YYYY" form, e.g. "2023-2024".
type Semester struct {
	SemesterID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"     json:"semester_id"`
	Name       string    `gorm:"type:varchar(50);not null;uniqueIndex:uq_semesters_name_year" json:"name"`
	Year       string    `gorm:"type:varchar(9);not null;uniqueIndex:uq_semesters_name_year"  json:"year"`
	StartDate  time.Time `gorm:"type:date;not null"                                 json:"start_date"`
	EndDate    time.Time `gorm:"type:date;not null"                                 json:"end_date"`
	BaseModel
}

// TableName maps the model to its table.
func (Semester) TableName() string { return "semesters" }
