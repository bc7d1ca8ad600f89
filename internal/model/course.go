package model

// Course is a subject in the curriculum; TotalLessons drives payment.
type Course struct {
	CourseID     string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"course_id"`
	Code         string `gorm:"type:varchar(20);not null;uniqueIndex"          json:"code"`
	Name         string `gorm:"type:varchar(200);not null"                     json:"name"`
	Credits      int    `gorm:"not null"                                       json:"credits"`
	TotalLessons int    `gorm:"not null"                                       json:"total_lessons"`
	Description  string `gorm:"type:text"                                      json:"description,omitempty"`
	BaseModel
}

// TableName maps the model to its table.
func (Course) TableName() string { return "courses" }
