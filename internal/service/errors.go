package service

import "fmt"

// InUseError blocks deletion of a record that other records still
// reference. The message carries the live reference count.
type InUseError struct {
	Message string
	Count   int64
}

func (e *InUseError) Error() string { return e.Message }

// newInUseError formats a count-bearing Vietnamese delete guard, e.g.
// "Không thể xóa học phần vì đang có 3 lớp học phần sử dụng".
func newInUseError(format string, count int64) *InUseError {
	return &InUseError{
		Message: fmt.Sprintf(format, count),
		Count:   count,
	}
}
