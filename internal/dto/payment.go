package dto

// ── Payment report DTOs ──

// ClassPaymentDetail is the per-class breakdown of a teacher's pay.
type ClassPaymentDetail struct {
	ClassID           string  `json:"class_id"`
	ClassCode         string  `json:"class_code"`
	ClassName         string  `json:"class_name"`
	CourseName        string  `json:"course_name"`
	Lessons           int     `json:"lessons"`
	ClassCoefficient  float64 `json:"class_coefficient"`
	DegreeCoefficient float64 `json:"degree_coefficient"`
	BaseRate          float64 `json:"base_rate"`
	Amount            float64 `json:"amount"`
}

// TeacherPaymentResponse is the pay of one teacher in one semester.
type TeacherPaymentResponse struct {
	TeacherID    string               `json:"teacher_id"`
	TeacherCode  string               `json:"teacher_code"`
	TeacherName  string               `json:"teacher_name"`
	DegreeName   string               `json:"degree_name,omitempty"`
	SemesterID   string               `json:"semester_id"`
	SemesterName string               `json:"semester_name"`
	Year         string               `json:"year"`
	TotalLessons int                  `json:"total_lessons"`
	TotalAmount  float64              `json:"total_amount"`
	Classes      []ClassPaymentDetail `json:"classes"`
}

// SemesterPaymentsResponse is the pay of every teacher who taught in
// one semester, sorted by total amount descending.
type SemesterPaymentsResponse struct {
	SemesterID   string                   `json:"semester_id"`
	SemesterName string                   `json:"semester_name"`
	Year         string                   `json:"year"`
	TotalAmount  float64                  `json:"total_amount"`
	Teachers     []TeacherPaymentResponse `json:"teachers"`
}

// SemesterSubtotal is one semester's slice of a yearly report row.
// Rows key these by semester id; name and year are display fields.
type SemesterSubtotal struct {
	SemesterName string  `json:"semester_name,omitempty"`
	Year         string  `json:"year,omitempty"`
	Lessons      int     `json:"lessons"`
	Amount       float64 `json:"amount"`
}

// YearTeacherReport is one teacher's row in a yearly report.
type YearTeacherReport struct {
	TeacherID      string                       `json:"teacher_id"`
	TeacherCode    string                       `json:"teacher_code"`
	TeacherName    string                       `json:"teacher_name"`
	DepartmentID   string                       `json:"department_id,omitempty"`
	DepartmentName string                       `json:"department_name,omitempty"`
	DegreeName     string                       `json:"degree_name,omitempty"`
	TotalLessons   int                          `json:"total_lessons"`
	TotalAmount    float64                      `json:"total_amount"`
	Semesters      map[string]*SemesterSubtotal `json:"semesters"`
}

// YearReportResponse is the school-wide yearly report by teacher.
type YearReportResponse struct {
	Year         string              `json:"year"`
	BaseRate     float64             `json:"base_rate"`
	TeacherCount int                 `json:"teacher_count"`
	TotalLessons int                 `json:"total_lessons"`
	TotalAmount  float64             `json:"total_amount"`
	Teachers     []YearTeacherReport `json:"teachers"`
}

// DepartmentReportResponse is a yearly report limited to one
// department's teachers.
type DepartmentReportResponse struct {
	Year           string              `json:"year"`
	BaseRate       float64             `json:"base_rate"`
	DepartmentID   string              `json:"department_id"`
	DepartmentName string              `json:"department_name"`
	TeacherCount   int                 `json:"teacher_count"`
	TotalLessons   int                 `json:"total_lessons"`
	TotalAmount    float64             `json:"total_amount"`
	Teachers       []YearTeacherReport `json:"teachers"`
}

// DepartmentSummary is one department's row in the school report.
type DepartmentSummary struct {
	DepartmentID   string              `json:"department_id"`
	DepartmentName string              `json:"department_name"`
	TeacherCount   int                 `json:"teacher_count"`
	TotalLessons   int                 `json:"total_lessons"`
	TotalAmount    float64             `json:"total_amount"`
	Teachers       []YearTeacherReport `json:"teachers"`
}

// SchoolReportResponse groups the yearly report by department.
type SchoolReportResponse struct {
	Year         string              `json:"year"`
	BaseRate     float64             `json:"base_rate"`
	TeacherCount int                 `json:"teacher_count"`
	TotalLessons int                 `json:"total_lessons"`
	TotalAmount  float64             `json:"total_amount"`
	Departments  []DepartmentSummary `json:"departments"`
}
