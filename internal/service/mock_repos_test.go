package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm"

	"github.com/duyvawss25/Do-An-Co-So/internal/model"
	"github.com/duyvawss25/Do-An-Co-So/internal/repository"
)

// In-memory repositories for service tests. They mirror the GORM
// behavior the services rely on: gorm.ErrRecordNotFound on a miss and
// generated IDs on create.

// ── settings ──

type mockSettingsRepo struct {
	settings *model.Settings
	saves    int
}

func (m *mockSettingsRepo) Get(context.Context) (*model.Settings, error) {
	if m.settings == nil {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *m.settings
	return &cp, nil
}

func (m *mockSettingsRepo) Save(_ context.Context, s *model.Settings) error {
	cp := *s
	m.settings = &cp
	m.saves++
	return nil
}

// ── degrees ──

type mockDegreeRepo struct {
	degrees      map[string]*model.Degree
	teacherCount int64
	seq          int
}

func newMockDegreeRepo() *mockDegreeRepo {
	return &mockDegreeRepo{degrees: map[string]*model.Degree{}}
}

func (m *mockDegreeRepo) Create(_ context.Context, d *model.Degree) error {
	if d.DegreeID == "" {
		m.seq++
		d.DegreeID = fmt.Sprintf("degree-%d", m.seq)
	}
	cp := *d
	m.degrees[d.DegreeID] = &cp
	return nil
}

func (m *mockDegreeRepo) GetByID(_ context.Context, id string) (*model.Degree, error) {
	d, ok := m.degrees[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *d
	return &cp, nil
}

func (m *mockDegreeRepo) FindByNameInsensitive(_ context.Context, name, excludeID string) (*model.Degree, error) {
	for _, d := range m.degrees {
		if d.DegreeID != excludeID && strings.EqualFold(d.Name, name) {
			cp := *d
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockDegreeRepo) List(context.Context) ([]model.Degree, error) {
	out := make([]model.Degree, 0, len(m.degrees))
	for _, d := range m.degrees {
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DegreeID < out[j].DegreeID })
	return out, nil
}

func (m *mockDegreeRepo) Update(_ context.Context, d *model.Degree) error {
	cp := *d
	m.degrees[d.DegreeID] = &cp
	return nil
}

func (m *mockDegreeRepo) Delete(_ context.Context, id string) error {
	delete(m.degrees, id)
	return nil
}

func (m *mockDegreeRepo) CountTeachers(context.Context, string) (int64, error) {
	return m.teacherCount, nil
}

// ── departments ──

type mockDepartmentRepo struct {
	departments  map[string]*model.Department
	teacherCount int64
	seq          int
}

func newMockDepartmentRepo() *mockDepartmentRepo {
	return &mockDepartmentRepo{departments: map[string]*model.Department{}}
}

func (m *mockDepartmentRepo) Create(_ context.Context, d *model.Department) error {
	if d.DepartmentID == "" {
		m.seq++
		d.DepartmentID = fmt.Sprintf("department-%d", m.seq)
	}
	cp := *d
	m.departments[d.DepartmentID] = &cp
	return nil
}

func (m *mockDepartmentRepo) GetByID(_ context.Context, id string) (*model.Department, error) {
	d, ok := m.departments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *d
	return &cp, nil
}

func (m *mockDepartmentRepo) FindByNameInsensitive(_ context.Context, name, excludeID string) (*model.Department, error) {
	for _, d := range m.departments {
		if d.DepartmentID != excludeID && strings.EqualFold(d.Name, name) {
			cp := *d
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockDepartmentRepo) List(context.Context) ([]model.Department, error) {
	out := make([]model.Department, 0, len(m.departments))
	for _, d := range m.departments {
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DepartmentID < out[j].DepartmentID })
	return out, nil
}

func (m *mockDepartmentRepo) Update(_ context.Context, d *model.Department) error {
	cp := *d
	m.departments[d.DepartmentID] = &cp
	return nil
}

func (m *mockDepartmentRepo) Delete(_ context.Context, id string) error {
	delete(m.departments, id)
	return nil
}

func (m *mockDepartmentRepo) CountTeachers(context.Context, string) (int64, error) {
	return m.teacherCount, nil
}

// ── teachers ──

type mockTeacherRepo struct {
	teachers   map[string]*model.Teacher
	classCount int64
	seq        int
}

func newMockTeacherRepo() *mockTeacherRepo {
	return &mockTeacherRepo{teachers: map[string]*model.Teacher{}}
}

func (m *mockTeacherRepo) Create(_ context.Context, t *model.Teacher) error {
	if t.TeacherID == "" {
		m.seq++
		t.TeacherID = fmt.Sprintf("teacher-%d", m.seq)
	}
	cp := *t
	m.teachers[t.TeacherID] = &cp
	return nil
}

func (m *mockTeacherRepo) GetByID(_ context.Context, id string) (*model.Teacher, error) {
	t, ok := m.teachers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *t
	return &cp, nil
}

func (m *mockTeacherRepo) GetByCode(_ context.Context, code, excludeID string) (*model.Teacher, error) {
	for _, t := range m.teachers {
		if t.TeacherID != excludeID && t.Code == code {
			cp := *t
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTeacherRepo) List(context.Context) ([]model.Teacher, error) {
	out := make([]model.Teacher, 0, len(m.teachers))
	for _, t := range m.teachers {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TeacherID < out[j].TeacherID })
	return out, nil
}

func (m *mockTeacherRepo) ListByDepartment(_ context.Context, departmentID string) ([]model.Teacher, error) {
	out := make([]model.Teacher, 0)
	for _, t := range m.teachers {
		if t.DepartmentID == departmentID {
			out = append(out, *t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TeacherID < out[j].TeacherID })
	return out, nil
}

func (m *mockTeacherRepo) Update(_ context.Context, t *model.Teacher) error {
	cp := *t
	m.teachers[t.TeacherID] = &cp
	return nil
}

func (m *mockTeacherRepo) Delete(_ context.Context, id string) error {
	delete(m.teachers, id)
	return nil
}

func (m *mockTeacherRepo) CountClasses(context.Context, string) (int64, error) {
	return m.classCount, nil
}

// ── courses ──

type mockCourseRepo struct {
	courses    map[string]*model.Course
	classCount int64
	seq        int
}

func newMockCourseRepo() *mockCourseRepo {
	return &mockCourseRepo{courses: map[string]*model.Course{}}
}

func (m *mockCourseRepo) Create(_ context.Context, c *model.Course) error {
	if c.CourseID == "" {
		m.seq++
		c.CourseID = fmt.Sprintf("course-%d", m.seq)
	}
	cp := *c
	m.courses[c.CourseID] = &cp
	return nil
}

func (m *mockCourseRepo) GetByID(_ context.Context, id string) (*model.Course, error) {
	c, ok := m.courses[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *c
	return &cp, nil
}

func (m *mockCourseRepo) GetByCode(_ context.Context, code, excludeID string) (*model.Course, error) {
	for _, c := range m.courses {
		if c.CourseID != excludeID && c.Code == code {
			cp := *c
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCourseRepo) FindByNameInsensitive(_ context.Context, name, excludeID string) (*model.Course, error) {
	for _, c := range m.courses {
		if c.CourseID != excludeID && strings.EqualFold(c.Name, name) {
			cp := *c
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCourseRepo) List(context.Context) ([]model.Course, error) {
	out := make([]model.Course, 0, len(m.courses))
	for _, c := range m.courses {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CourseID < out[j].CourseID })
	return out, nil
}

func (m *mockCourseRepo) Update(_ context.Context, c *model.Course) error {
	cp := *c
	m.courses[c.CourseID] = &cp
	return nil
}

func (m *mockCourseRepo) Delete(_ context.Context, id string) error {
	delete(m.courses, id)
	return nil
}

func (m *mockCourseRepo) CountClasses(context.Context, string) (int64, error) {
	return m.classCount, nil
}

// ── semesters ──

type mockSemesterRepo struct {
	semesters  map[string]*model.Semester
	classCount int64
	seq        int
}

func newMockSemesterRepo() *mockSemesterRepo {
	return &mockSemesterRepo{semesters: map[string]*model.Semester{}}
}

func (m *mockSemesterRepo) Create(_ context.Context, s *model.Semester) error {
	if s.SemesterID == "" {
		m.seq++
		s.SemesterID = fmt.Sprintf("semester-%d", m.seq)
	}
	cp := *s
	m.semesters[s.SemesterID] = &cp
	return nil
}

func (m *mockSemesterRepo) GetByID(_ context.Context, id string) (*model.Semester, error) {
	s, ok := m.semesters[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *s
	return &cp, nil
}

func (m *mockSemesterRepo) GetByNameAndYear(_ context.Context, name, year, excludeID string) (*model.Semester, error) {
	for _, s := range m.semesters {
		if s.SemesterID != excludeID && s.Name == name && s.Year == year {
			cp := *s
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSemesterRepo) List(context.Context) ([]model.Semester, error) {
	out := make([]model.Semester, 0, len(m.semesters))
	for _, s := range m.semesters {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SemesterID < out[j].SemesterID })
	return out, nil
}

func (m *mockSemesterRepo) ListByYear(_ context.Context, year string) ([]model.Semester, error) {
	out := make([]model.Semester, 0)
	for _, s := range m.semesters {
		if s.Year == year {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *mockSemesterRepo) ListYears(context.Context) ([]string, error) {
	seen := map[string]bool{}
	years := make([]string, 0)
	for _, s := range m.semesters {
		if !seen[s.Year] {
			seen[s.Year] = true
			years = append(years, s.Year)
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(years)))
	return years, nil
}

func (m *mockSemesterRepo) Update(_ context.Context, s *model.Semester) error {
	cp := *s
	m.semesters[s.SemesterID] = &cp
	return nil
}

func (m *mockSemesterRepo) Delete(_ context.Context, id string) error {
	delete(m.semesters, id)
	return nil
}

func (m *mockSemesterRepo) CountClasses(context.Context, string) (int64, error) {
	return m.classCount, nil
}

// ── course classes ──

type mockCourseClassRepo struct {
	classes []*model.CourseClass
	seq     int
}

func newMockCourseClassRepo() *mockCourseClassRepo {
	return &mockCourseClassRepo{}
}

func (m *mockCourseClassRepo) Create(_ context.Context, c *model.CourseClass) error {
	if c.ClassID == "" {
		m.seq++
		c.ClassID = fmt.Sprintf("class-%d", m.seq)
	}
	cp := *c
	m.classes = append(m.classes, &cp)
	return nil
}

func (m *mockCourseClassRepo) GetByID(_ context.Context, id string) (*model.CourseClass, error) {
	for _, c := range m.classes {
		if c.ClassID == id {
			cp := *c
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCourseClassRepo) GetByCode(_ context.Context, code, excludeID string) (*model.CourseClass, error) {
	for _, c := range m.classes {
		if c.ClassID != excludeID && c.Code == code {
			cp := *c
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCourseClassRepo) FindByNameInsensitive(_ context.Context, name, excludeID string) (*model.CourseClass, error) {
	for _, c := range m.classes {
		if c.ClassID != excludeID && strings.EqualFold(c.Name, name) {
			cp := *c
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCourseClassRepo) List(context.Context) ([]model.CourseClass, error) {
	out := make([]model.CourseClass, 0, len(m.classes))
	for _, c := range m.classes {
		out = append(out, *c)
	}
	return out, nil
}

func (m *mockCourseClassRepo) ListBySemester(_ context.Context, semesterID string) ([]model.CourseClass, error) {
	out := make([]model.CourseClass, 0)
	for _, c := range m.classes {
		if c.SemesterID == semesterID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (m *mockCourseClassRepo) ListByTeacherAndSemester(_ context.Context, teacherID, semesterID string) ([]model.CourseClass, error) {
	out := make([]model.CourseClass, 0)
	for _, c := range m.classes {
		if c.TeacherID == teacherID && c.SemesterID == semesterID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (m *mockCourseClassRepo) ListForReport(_ context.Context, semesterIDs []string) ([]model.CourseClass, error) {
	wanted := map[string]bool{}
	for _, id := range semesterIDs {
		wanted[id] = true
	}
	out := make([]model.CourseClass, 0)
	for _, c := range m.classes {
		if wanted[c.SemesterID] {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (m *mockCourseClassRepo) Update(_ context.Context, c *model.CourseClass) error {
	for i := range m.classes {
		if m.classes[i].ClassID == c.ClassID {
			cp := *c
			m.classes[i] = &cp
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockCourseClassRepo) Delete(_ context.Context, id string) error {
	for i := range m.classes {
		if m.classes[i].ClassID == id {
			m.classes = append(m.classes[:i], m.classes[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *mockCourseClassRepo) UpdateCoefficientByType(_ context.Context, classType string, coefficient float64) (int64, error) {
	var n int64
	for _, c := range m.classes {
		if c.Type == classType {
			c.Coefficient = coefficient
			n++
		}
	}
	return n, nil
}

func (m *mockCourseClassRepo) StatsBySemester(context.Context) ([]repository.SemesterStatsRow, error) {
	return nil, nil
}

func (m *mockCourseClassRepo) StatsByCourse(context.Context) ([]repository.CourseStatsRow, error) {
	return nil, nil
}

func (m *mockCourseClassRepo) StatsBySemesterAndCourse(context.Context, string) ([]repository.CourseStatsRow, error) {
	return nil, nil
}

func (m *mockCourseClassRepo) StatsByYear(context.Context) ([]repository.YearStatsRow, error) {
	return nil, nil
}

var (
	_ repository.SettingsRepository    = (*mockSettingsRepo)(nil)
	_ repository.DegreeRepository      = (*mockDegreeRepo)(nil)
	_ repository.DepartmentRepository  = (*mockDepartmentRepo)(nil)
	_ repository.TeacherRepository     = (*mockTeacherRepo)(nil)
	_ repository.CourseRepository      = (*mockCourseRepo)(nil)
	_ repository.SemesterRepository    = (*mockSemesterRepo)(nil)
	_ repository.CourseClassRepository = (*mockCourseClassRepo)(nil)
)
