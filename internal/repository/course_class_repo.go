package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/duyvawss25/Do-An-Co-So/internal/model"
)

// SemesterStatsRow is the raw per-semester aggregate.
type SemesterStatsRow struct {
	SemesterID   string
	SemesterName string
	Year         string
	ClassCount   int64
	StudentCount int64
}

// CourseStatsRow is the raw per-course aggregate.
type CourseStatsRow struct {
	CourseID     string
	CourseCode   string
	CourseName   string
	ClassCount   int64
	StudentCount int64
}

// YearStatsRow is the raw per-academic-year aggregate.
type YearStatsRow struct {
	Year         string
	ClassCount   int64
	StudentCount int64
}

// CourseClassRepository persists course classes and serves the
// aggregate queries behind the statistics and payment endpoints.
type CourseClassRepository interface {
	Create(ctx context.Context, class *model.CourseClass) error
	// GetByID preloads Course, Semester and Teacher.
	GetByID(ctx context.Context, id string) (*model.CourseClass, error)
	GetByCode(ctx context.Context, code, excludeID string) (*model.CourseClass, error)
	FindByNameInsensitive(ctx context.Context, name, excludeID string) (*model.CourseClass, error)
	List(ctx context.Context) ([]model.CourseClass, error)
	ListBySemester(ctx context.Context, semesterID string) ([]model.CourseClass, error)
	// ListByTeacherAndSemester preloads Course for the per-class
	// payment breakdown.
	ListByTeacherAndSemester(ctx context.Context, teacherID, semesterID string) ([]model.CourseClass, error)
	// ListForReport returns every class of the given semesters with
	// Course, Semester, Teacher.Department and Teacher.Degree loaded.
	ListForReport(ctx context.Context, semesterIDs []string) ([]model.CourseClass, error)
	Update(ctx context.Context, class *model.CourseClass) error
	Delete(ctx context.Context, id string) error
	// UpdateCoefficientByType re-stamps every class of one type and
	// reports how many rows changed.
	UpdateCoefficientByType(ctx context.Context, classType string, coefficient float64) (int64, error)
	StatsBySemester(ctx context.Context) ([]SemesterStatsRow, error)
	StatsByCourse(ctx context.Context) ([]CourseStatsRow, error)
	StatsBySemesterAndCourse(ctx context.Context, semesterID string) ([]CourseStatsRow, error)
	StatsByYear(ctx context.Context) ([]YearStatsRow, error)
}

type courseClassRepository struct {
	db *gorm.DB
}

// NewCourseClassRepository returns the GORM-backed class repository.
func NewCourseClassRepository(db *gorm.DB) CourseClassRepository {
	return &courseClassRepository{db: db}
}

func (r *courseClassRepository) Create(ctx context.Context, class *model.CourseClass) error {
	return r.db.WithContext(ctx).Create(class).Error
}

func (r *courseClassRepository) GetByID(ctx context.Context, id string) (*model.CourseClass, error) {
	var class model.CourseClass
	err := r.db.WithContext(ctx).
		Preload("Course").
		Preload("Semester").
		Preload("Teacher").
		First(&class, "class_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &class, nil
}

func (r *courseClassRepository) GetByCode(ctx context.Context, code, excludeID string) (*model.CourseClass, error) {
	query := r.db.WithContext(ctx).Where("code = ?", code)
	if excludeID != "" {
		query = query.Where("class_id <> ?", excludeID)
	}
	var class model.CourseClass
	if err := query.First(&class).Error; err != nil {
		return nil, err
	}
	return &class, nil
}

func (r *courseClassRepository) FindByNameInsensitive(ctx context.Context, name, excludeID string) (*model.CourseClass, error) {
	query := r.db.WithContext(ctx).Where("LOWER(name) = LOWER(?)", name)
	if excludeID != "" {
		query = query.Where("class_id <> ?", excludeID)
	}
	var class model.CourseClass
	if err := query.First(&class).Error; err != nil {
		return nil, err
	}
	return &class, nil
}

func (r *courseClassRepository) List(ctx context.Context) ([]model.CourseClass, error) {
	var classes []model.CourseClass
	err := r.db.WithContext(ctx).
		Preload("Course").
		Preload("Semester").
		Preload("Teacher").
		Order("created_at ASC").
		Find(&classes).Error
	if err != nil {
		return nil, err
	}
	return classes, nil
}

func (r *courseClassRepository) ListBySemester(ctx context.Context, semesterID string) ([]model.CourseClass, error) {
	var classes []model.CourseClass
	err := r.db.WithContext(ctx).
		Preload("Course").
		Preload("Semester").
		Preload("Teacher").
		Where("semester_id = ?", semesterID).
		Order("created_at ASC").
		Find(&classes).Error
	if err != nil {
		return nil, err
	}
	return classes, nil
}

func (r *courseClassRepository) ListByTeacherAndSemester(ctx context.Context, teacherID, semesterID string) ([]model.CourseClass, error) {
	var classes []model.CourseClass
	err := r.db.WithContext(ctx).
		Preload("Course").
		Where("teacher_id = ? AND semester_id = ?", teacherID, semesterID).
		Order("created_at ASC").
		Find(&classes).Error
	if err != nil {
		return nil, err
	}
	return classes, nil
}

func (r *courseClassRepository) ListForReport(ctx context.Context, semesterIDs []string) ([]model.CourseClass, error) {
	if len(semesterIDs) == 0 {
		return nil, nil
	}
	var classes []model.CourseClass
	err := r.db.WithContext(ctx).
		Preload("Course").
		Preload("Semester").
		Preload("Teacher").
		Preload("Teacher.Department").
		Preload("Teacher.Degree").
		Where("semester_id IN ?", semesterIDs).
		Order("created_at ASC").
		Find(&classes).Error
	if err != nil {
		return nil, err
	}
	return classes, nil
}

func (r *courseClassRepository) Update(ctx context.Context, class *model.CourseClass) error {
	return r.db.WithContext(ctx).
		Omit("Course", "Semester", "Teacher").
		Save(class).Error
}

func (r *courseClassRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.CourseClass{}, "class_id = ?", id).Error
}

func (r *courseClassRepository) UpdateCoefficientByType(ctx context.Context, classType string, coefficient float64) (int64, error) {
	result := r.db.WithContext(ctx).Model(&model.CourseClass{}).
		Where("type = ?", classType).
		Update("coefficient", coefficient)
	return result.RowsAffected, result.Error
}

func (r *courseClassRepository) StatsBySemester(ctx context.Context) ([]SemesterStatsRow, error) {
	var rows []SemesterStatsRow
	err := r.db.WithContext(ctx).Model(&model.CourseClass{}).
		Select(`semesters.semester_id AS semester_id,
			semesters.name AS semester_name,
			semesters.year AS year,
			COUNT(course_classes.class_id) AS class_count,
			COALESCE(SUM(course_classes.student_count), 0) AS student_count`).
		Joins("JOIN semesters ON semesters.semester_id = course_classes.semester_id").
		Group("semesters.semester_id, semesters.name, semesters.year").
		Order("semesters.year DESC, semesters.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *courseClassRepository) StatsByCourse(ctx context.Context) ([]CourseStatsRow, error) {
	var rows []CourseStatsRow
	err := r.db.WithContext(ctx).Model(&model.CourseClass{}).
		Select(`courses.course_id AS course_id,
			courses.code AS course_code,
			courses.name AS course_name,
			COUNT(course_classes.class_id) AS class_count,
			COALESCE(SUM(course_classes.student_count), 0) AS student_count`).
		Joins("JOIN courses ON courses.course_id = course_classes.course_id").
		Group("courses.course_id, courses.code, courses.name").
		Order("courses.code ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *courseClassRepository) StatsBySemesterAndCourse(ctx context.Context, semesterID string) ([]CourseStatsRow, error) {
	var rows []CourseStatsRow
	err := r.db.WithContext(ctx).Model(&model.CourseClass{}).
		Select(`courses.course_id AS course_id,
			courses.code AS course_code,
			courses.name AS course_name,
			COUNT(course_classes.class_id) AS class_count,
			COALESCE(SUM(course_classes.student_count), 0) AS student_count`).
		Joins("JOIN courses ON courses.course_id = course_classes.course_id").
		Where("course_classes.semester_id = ?", semesterID).
		Group("courses.course_id, courses.code, courses.name").
		Order("courses.code ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *courseClassRepository) StatsByYear(ctx context.Context) ([]YearStatsRow, error) {
	var rows []YearStatsRow
	err := r.db.WithContext(ctx).Model(&model.CourseClass{}).
		Select(`semesters.year AS year,
			COUNT(course_classes.class_id) AS class_count,
			COALESCE(SUM(course_classes.student_count), 0) AS student_count`).
		Joins("JOIN semesters ON semesters.semester_id = course_classes.semester_id").
		Group("semesters.year").
		Order("semesters.year DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
