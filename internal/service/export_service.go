package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

var ErrExportEmpty = errors.New("Không có dữ liệu để xuất báo cáo")

// ExportService renders the yearly payment report as an Excel file.
type ExportService interface {
	// PaymentReport returns the workbook bytes and the download
	// filename for one academic year.
	PaymentReport(ctx context.Context, year string) ([]byte, string, error)
}

type exportService struct {
	payments PaymentService
	logger   *zap.Logger
}

// NewExportService builds the export service on top of the payment
// calculator.
func NewExportService(payments PaymentService, logger *zap.Logger) ExportService {
	return &exportService{payments: payments, logger: logger}
}

var exportHeader = []string{
	"STT", "Mã GV", "Họ tên", "Khoa", "Bằng cấp", "Tổng số tiết", "Tổng tiền (VNĐ)",
}

func (s *exportService) PaymentReport(ctx context.Context, year string) ([]byte, string, error) {
	report, err := s.payments.ReportYear(ctx, year)
	if err != nil {
		return nil, "", err
	}
	if len(report.Teachers) == 0 {
		return nil, "", ErrExportEmpty
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Báo cáo"
	f.SetSheetName("Sheet1", sheet)

	title := fmt.Sprintf("BÁO CÁO TIỀN DẠY NĂM HỌC %s", year)
	if err := f.SetCellValue(sheet, "A1", title); err != nil {
		return nil, "", err
	}
	if err := f.MergeCell(sheet, "A1", "G1"); err != nil {
		return nil, "", err
	}

	for i, h := range exportHeader {
		cell, err := excelize.CoordinatesToCellName(i+1, 3)
		if err != nil {
			return nil, "", err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, "", err
		}
	}

	row := 4
	for i, teacher := range report.Teachers {
		values := []interface{}{
			i + 1,
			teacher.TeacherCode,
			teacher.TeacherName,
			teacher.DepartmentName,
			teacher.DegreeName,
			teacher.TotalLessons,
			teacher.TotalAmount,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, "", err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, "", err
			}
		}
		row++
	}

	// Summary row.
	if err := f.SetCellValue(sheet, fmt.Sprintf("C%d", row), "Tổng cộng"); err != nil {
		return nil, "", err
	}
	if err := f.SetCellValue(sheet, fmt.Sprintf("F%d", row), report.TotalLessons); err != nil {
		return nil, "", err
	}
	if err := f.SetCellValue(sheet, fmt.Sprintf("G%d", row), report.TotalAmount); err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", err
	}

	s.logger.Info("payment report exported",
		zap.String("year", year),
		zap.Int("teachers", len(report.Teachers)))

	filename := fmt.Sprintf("bao-cao-tien-day-%s.xlsx", year)
	return buf.Bytes(), filename, nil
}
