package repository

import "gorm.io/gorm"

// Repository bundles every aggregate repository behind one handle so
// the service layer takes a single dependency.
type Repository struct {
	User        UserRepository
	Degree      DegreeRepository
	Department  DepartmentRepository
	Teacher     TeacherRepository
	Course      CourseRepository
	Semester    SemesterRepository
	CourseClass CourseClassRepository
	Settings    SettingsRepository
}

// NewRepository wires every repository to the shared *gorm.DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:        NewUserRepository(db),
		Degree:      NewDegreeRepository(db),
		Department:  NewDepartmentRepository(db),
		Teacher:     NewTeacherRepository(db),
		Course:      NewCourseRepository(db),
		Semester:    NewSemesterRepository(db),
		CourseClass: NewCourseClassRepository(db),
		Settings:    NewSettingsRepository(db),
	}
}
