package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"field-service-backend/internal/database/models"
	apperrors "field-service-backend/internal/errors"
	"field-service-backend/internal/logger"
	"field-service-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

const assignmentLogSheet = "Assignment Log"

// AssignmentLogListResponse is one page of assignment log entries
type AssignmentLogListResponse struct {
	Entries  []models.AssignmentLog `json:"entries"`
	Total    int64                  `json:"total"`
	Page     int                    `json:"page"`
	PageSize int                    `json:"page_size"`
}

// AssignmentLogService reads the assignment audit trail
type AssignmentLogService struct {
	uow repository.UnitOfWorkInterface
}

// NewAssignmentLogService creates a new assignment log service
func NewAssignmentLogService(uow repository.UnitOfWorkInterface) *AssignmentLogService {
	return &AssignmentLogService{uow: uow}
}

// GetJobHistory returns a job's entries in the order they were written
func (s *AssignmentLogService) GetJobHistory(ctx context.Context, jobID uuid.UUID) ([]models.AssignmentLog, error) {
	repos := s.uow.Repositories(ctx)
	if _, err := repos.Jobs.GetByID(jobID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	entries, err := repos.AssignmentLogs.ListByJob(jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignment logs: %w", err)
	}
	return entries, nil
}

// List returns all entries newest first
func (s *AssignmentLogService) List(ctx context.Context, page, pageSize int) (*AssignmentLogListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)

	entries, total, err := s.uow.Repositories(ctx).AssignmentLogs.List(pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignment logs: %w", err)
	}
	return &AssignmentLogListResponse{Entries: entries, Total: total, Page: page, PageSize: pageSize}, nil
}

// ExportXLSX writes entries created in [from, to) as a spreadsheet to w
func (s *AssignmentLogService) ExportXLSX(ctx context.Context, from, to time.Time, w io.Writer) error {
	if !from.Before(to) {
		return apperrors.ErrInvalidTimeRange
	}

	entries, err := s.uow.Repositories(ctx).AssignmentLogs.ListBetween(from, to)
	if err != nil {
		return fmt.Errorf("failed to list assignment logs: %w", err)
	}

	f, err := buildAssignmentLogWorkbook(entries, from, to)
	if err != nil {
		return fmt.Errorf("failed to build workbook: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

var assignmentLogHeaders = []string{
	"Sequence", "Created At", "Job ID", "Action", "Previous Clerk", "New Clerk", "Triggered By", "Reason",
}

func buildAssignmentLogWorkbook(entries []models.AssignmentLog, from, to time.Time) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", assignmentLogSheet); err != nil {
		return nil, err
	}

	titleStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	f.SetCellValue(assignmentLogSheet, "A1", "Assignment Log")
	f.SetCellStyle(assignmentLogSheet, "A1", "A1", titleStyle)
	f.SetCellValue(assignmentLogSheet, "A2", fmt.Sprintf("%s to %s", from.UTC().Format(time.RFC3339), to.UTC().Format(time.RFC3339)))

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	for col, header := range assignmentLogHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 4)
		f.SetCellValue(assignmentLogSheet, cell, header)
		f.SetCellStyle(assignmentLogSheet, cell, cell, headerStyle)
	}
	f.SetColWidth(assignmentLogSheet, "A", "A", 10)
	f.SetColWidth(assignmentLogSheet, "B", "G", 38)
	f.SetColWidth(assignmentLogSheet, "H", "H", 60)

	for i, e := range entries {
		row := []interface{}{
			e.Sequence,
			e.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
			e.JobID.String(),
			string(e.ActionType),
			uuidOrEmpty(e.PreviousClerkID),
			uuidOrEmpty(e.NewClerkID),
			uuidOrSystem(e.TriggeredByUserID),
			e.Reason,
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+5)
		if err := f.SetSheetRow(assignmentLogSheet, cell, &row); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func uuidOrEmpty(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return id.String()
}

func uuidOrSystem(id *uuid.UUID) string {
	if id == nil {
		return "system"
	}
	return id.String()
}

// appendAssignmentLog writes one entry inside the caller's transaction and
// logs the decision. score is set for automatic assignments.
func appendAssignmentLog(ctx context.Context, repos *repository.Repositories, entry *models.AssignmentLog, score *ScoreBreakdown) error {
	if err := repos.AssignmentLogs.Append(entry); err != nil {
		return fmt.Errorf("failed to write assignment log: %w", err)
	}

	fields := map[string]interface{}{
		"job_id":         entry.JobID.String(),
		"action":         string(entry.ActionType),
		"previous_clerk": uuidOrEmpty(entry.PreviousClerkID),
		"new_clerk":      uuidOrEmpty(entry.NewClerkID),
	}
	if score != nil {
		fields["score"] = score.Total
	}
	logger.WithContext(ctx).WithFields(fields).Info(entry.Reason)
	return nil
}
