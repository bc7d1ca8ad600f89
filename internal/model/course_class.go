package model

// Class types.
const (
	ClassTypeNormal        = "normal"
	ClassTypeSpecial       = "special"
	ClassTypeInternational = "international"
)

// ClassTypes lists every valid class type in propagation order.
var ClassTypes = []string{ClassTypeNormal, ClassTypeSpecial, ClassTypeInternational}

// CourseClass is the join entity Course × Semester × Teacher.
// Coefficient is a write-time snapshot of the settings value for Type;
// it is only rewritten by the coefficient propagator, never at read time.
type CourseClass struct {
	ClassID      string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"class_id"`
	CourseID     string  `gorm:"type:uuid;not null"                             json:"course_id"`
	SemesterID   string  `gorm:"type:uuid;not null"                             json:"semester_id"`
	TeacherID    string  `gorm:"type:uuid;not null"                             json:"teacher_id"`
	Type         string  `gorm:"type:varchar(20);not null;default:'normal'"     json:"type"`
	Coefficient  float64 `gorm:"not null;default:1"                             json:"coefficient"`
	Code         string  `gorm:"type:varchar(20);not null;uniqueIndex"          json:"code"`
	Name         string  `gorm:"type:varchar(200);not null"                     json:"name"`
	StudentCount int     `gorm:"not null;default:0"                             json:"student_count"`
	BaseModel

	Course   *Course   `gorm:"foreignKey:CourseID;references:CourseID"       json:"course,omitempty"`
	Semester *Semester `gorm:"foreignKey:SemesterID;references:SemesterID"   json:"semester,omitempty"`
	Teacher  *Teacher  `gorm:"foreignKey:TeacherID;references:TeacherID"     json:"teacher,omitempty"`
}

// TableName maps the model to its table.
func (CourseClass) TableName() string { return "course_classes" }
