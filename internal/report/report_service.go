package report

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"time"

	"go-pontaj/internal/events"
	reporterrors "go-pontaj/internal/report/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var monthPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

//go:generate mockgen -source=report_service.go -destination=mock/report_service_mock.go -package=mock
type Service interface {
	Apply(ctx context.Context, event events.TimesheetSavedEvent) error
	GetByStoreAndMonth(ctx context.Context, companyID, storeID, month string) (*MonthlyReportResponse, error)
	GetAllByMonth(ctx context.Context, companyID, month string) ([]MonthlyReportResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("report.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.service")
	}
	return &service{repo: repo, logger: l}
}

// Apply folds a saved timesheet into the monthly projection. The event
// carries its own totals, so this is a pure upsert.
func (s *service) Apply(ctx context.Context, event events.TimesheetSavedEvent) error {
	companyUUID, err := uuid.Parse(event.CompanyID)
	if err != nil {
		return err
	}
	storeUUID, err := uuid.Parse(event.StoreID)
	if err != nil {
		return err
	}
	timesheetUUID, err := uuid.Parse(event.TimesheetID)
	if err != nil {
		return err
	}

	periodStart, err := time.Parse("2006-01-02", event.PeriodStart)
	if err != nil {
		return err
	}

	hours, err := json.Marshal(event.EmployeeHours)
	if err != nil {
		return err
	}

	report := &MonthlyStoreReport{
		ID:            uuid.New(),
		CompanyID:     companyUUID,
		StoreID:       storeUUID,
		Month:         periodStart.Format("2006-01"),
		TimesheetID:   timesheetUUID,
		TotalHours:    event.TotalHours,
		EmployeeHours: hours,
		UpdatedAt:     time.Now().UTC(),
	}
	if err := s.repo.Upsert(ctx, report); err != nil {
		s.logger.Error("upsert monthly report failed",
			zap.String("store_id", event.StoreID),
			zap.String("month", report.Month),
			zap.Error(err),
		)
		return err
	}

	s.logger.Info("monthly report updated",
		zap.String("store_id", event.StoreID),
		zap.String("month", report.Month),
		zap.Float64("total_hours", event.TotalHours),
	)
	return nil
}

func (s *service) GetByStoreAndMonth(ctx context.Context, companyID, storeID, month string) (*MonthlyReportResponse, error) {
	if _, err := uuid.Parse(storeID); err != nil {
		return nil, reporterrors.ErrInvalidStoreID
	}
	if !monthPattern.MatchString(month) {
		return nil, reporterrors.ErrInvalidMonth
	}

	report, err := s.repo.FindByStoreAndMonth(ctx, companyID, storeID, month)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, reporterrors.ErrReportNotFound
		}
		return nil, err
	}
	return mapToResponse(report), nil
}

func (s *service) GetAllByMonth(ctx context.Context, companyID, month string) ([]MonthlyReportResponse, error) {
	if !monthPattern.MatchString(month) {
		return nil, reporterrors.ErrInvalidMonth
	}

	rows, err := s.repo.FindAllByMonth(ctx, companyID, month)
	if err != nil {
		return nil, err
	}

	out := make([]MonthlyReportResponse, len(rows))
	for i := range rows {
		out[i] = *mapToResponse(&rows[i])
	}
	return out, nil
}
