package services

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/Ivkin-Alexey/mylaboratory-sub000/internal/entities"
	"github.com/Ivkin-Alexey/mylaboratory-sub000/internal/repositories"
	apperrors "github.com/Ivkin-Alexey/mylaboratory-sub000/pkg/errors"
)

type ReportServiceInterface interface {
	EquipmentUsage(ctx context.Context) ([]entities.EquipmentReportRow, error)
	EquipmentUsageXLSX(ctx context.Context) (*bytes.Buffer, error)
}

type ReportService struct {
	reportRepo repositories.ReportRepositoryInterface
	logger     *zap.Logger
}

func NewReportService(reportRepo repositories.ReportRepositoryInterface, logger *zap.Logger) ReportServiceInterface {
	return &ReportService{
		reportRepo: reportRepo,
		logger:     logger.Named("report_service"),
	}
}

func (s *ReportService) EquipmentUsage(ctx context.Context) ([]entities.EquipmentReportRow, error) {
	report, err := s.reportRepo.GetEquipmentUsage(ctx)
	if err != nil {
		return nil, apperrors.NewHttpError(http.StatusInternalServerError,
			"Failed to build equipment report", err, nil)
	}
	return report, nil
}

var reportHeaders = []string{
	"ID", "Название", "Категория", "Локация", "Статус",
	"Тип использования", "Всего броней", "Активных броней",
}

// EquipmentUsageXLSX собирает отчёт в книгу xlsx, по строке на единицу
// оборудования.
func (s *ReportService) EquipmentUsageXLSX(ctx context.Context) (*bytes.Buffer, error) {
	report, err := s.EquipmentUsage(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			s.logger.Warn("Не удалось закрыть книгу отчёта", zap.Error(err))
		}
	}()

	const sheet = "Оборудование"
	f.SetSheetName("Sheet1", sheet)

	for i, header := range reportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, apperrors.NewHttpError(http.StatusInternalServerError,
				"Failed to build equipment report", err, nil)
		}
	}

	for i, row := range report {
		values := []interface{}{
			row.ID, row.Name, row.Category, row.Location, row.Status,
			row.UsageType, row.TotalBookings, row.ActiveBookings,
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return nil, apperrors.NewHttpError(http.StatusInternalServerError,
				"Failed to build equipment report", err, nil)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, apperrors.NewHttpError(http.StatusInternalServerError,
			"Failed to build equipment report", fmt.Errorf("запись книги: %w", err), nil)
	}
	return buf, nil
}
