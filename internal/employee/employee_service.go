package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	employeeerrors "go-pontaj/internal/employee/errors"
	"go-pontaj/internal/events"
	"go-pontaj/internal/messaging/kafka"
	"go-pontaj/internal/shared/contextutil"
	"go-pontaj/internal/shared/counter"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const employeeNumberCounter = "employee_number"

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID string, req CreateEmployeeRequest) (*EmployeeResponse, error)
	Update(ctx context.Context, companyID, id string, req UpdateEmployeeRequest) (*EmployeeResponse, error)
	Deactivate(ctx context.Context, companyID, id string) error
	GetByID(ctx context.Context, companyID, id string) (*EmployeeResponse, error)
	GetAll(ctx context.Context, companyID string, activeOnly bool) ([]EmployeeResponse, error)
	GetByStore(ctx context.Context, companyID, storeID string, activeOnly bool) ([]EmployeeResponse, error)

	// HomeStoreID serves store resolution for the delegation slice.
	HomeStoreID(ctx context.Context, companyID, employeeID string) (string, error)
}

type service struct {
	db       *sql.DB
	repo     Repository
	counters counter.Repository
	outbox   kafka.OutboxRepository
	logger   *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	counters counter.Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:       db,
		repo:     repo,
		counters: counters,
		outbox:   outboxRepo,
		logger:   l,
	}
}

func (s *service) Create(ctx context.Context, companyID string, req CreateEmployeeRequest) (*EmployeeResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return nil, employeeerrors.ErrInvalidCompanyID
	}
	storeUUID, err := uuid.Parse(req.StoreID)
	if err != nil {
		return nil, employeeerrors.ErrInvalidStoreID
	}

	var hiredAt *time.Time
	if req.HiredAt != "" {
		parsed, err := time.Parse("2006-01-02", req.HiredAt)
		if err != nil {
			return nil, employeeerrors.ErrInvalidHireDate
		}
		hiredAt = &parsed
	}

	next, err := s.counters.GetNextValue(ctx, companyID, employeeNumberCounter)
	if err != nil {
		s.logger.Error("employee number allocation failed", zap.Error(err))
		return nil, err
	}

	e := &Employee{
		ID:             uuid.New(),
		CompanyID:      companyUUID,
		EmployeeNumber: fmt.Sprintf("EMP-%05d", next),
		StoreID:        storeUUID,
		FullName:       req.FullName,
		Email:          req.Email,
		Position:       req.Position,
		IsActive:       true,
		HiredAt:        hiredAt,
	}
	if req.ZoneID != "" {
		zoneUUID, err := uuid.Parse(req.ZoneID)
		if err != nil {
			return nil, employeeerrors.ErrInvalidZoneID
		}
		e.ZoneID = &zoneUUID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Create(ctx, e); err != nil {
		s.logger.Error("create employee failed", zap.Error(err))
		return nil, err
	}

	if s.outbox != nil {
		if err := s.enqueueCreatedEvent(ctx, tx, e); err != nil {
			s.logger.Error("create employee enqueue event failed", zap.Error(err))
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("employee created",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("employee_id", e.ID.String()),
		zap.String("employee_number", e.EmployeeNumber),
		zap.String("store_id", e.StoreID.String()),
	)
	return mapToResponse(e), nil
}

func (s *service) Update(ctx context.Context, companyID, id string, req UpdateEmployeeRequest) (*EmployeeResponse, error) {
	e, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, employeeerrors.ErrEmployeeNotFound
		}
		return nil, err
	}

	if req.FullName != nil {
		e.FullName = *req.FullName
	}
	if req.Email != nil {
		e.Email = *req.Email
	}
	if req.Position != nil {
		e.Position = *req.Position
	}
	if req.StoreID != nil {
		storeUUID, err := uuid.Parse(*req.StoreID)
		if err != nil {
			return nil, employeeerrors.ErrInvalidStoreID
		}
		e.StoreID = storeUUID
	}
	if req.ZoneID != nil {
		if *req.ZoneID == "" {
			e.ZoneID = nil
		} else {
			zoneUUID, err := uuid.Parse(*req.ZoneID)
			if err != nil {
				return nil, employeeerrors.ErrInvalidZoneID
			}
			e.ZoneID = &zoneUUID
		}
	}
	if req.IsActive != nil {
		e.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, e); err != nil {
		s.logger.Error("update employee failed", zap.String("employee_id", id), zap.Error(err))
		return nil, err
	}
	return mapToResponse(e), nil
}

func (s *service) Deactivate(ctx context.Context, companyID, id string) error {
	e, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return employeeerrors.ErrEmployeeNotFound
		}
		return err
	}

	e.IsActive = false
	if err := s.repo.Update(ctx, e); err != nil {
		return err
	}

	s.logger.Info("employee deactivated", zap.String("employee_id", id))
	return nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (*EmployeeResponse, error) {
	e, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, employeeerrors.ErrEmployeeNotFound
		}
		return nil, err
	}
	return mapToResponse(e), nil
}

func (s *service) GetAll(ctx context.Context, companyID string, activeOnly bool) ([]EmployeeResponse, error) {
	rows, err := s.repo.FindAllByCompany(ctx, companyID, activeOnly)
	if err != nil {
		return nil, err
	}
	return mapList(rows), nil
}

func (s *service) GetByStore(ctx context.Context, companyID, storeID string, activeOnly bool) ([]EmployeeResponse, error) {
	if _, err := uuid.Parse(storeID); err != nil {
		return nil, employeeerrors.ErrInvalidStoreID
	}
	rows, err := s.repo.FindAllByStore(ctx, companyID, storeID, activeOnly)
	if err != nil {
		return nil, err
	}
	return mapList(rows), nil
}

func (s *service) HomeStoreID(ctx context.Context, companyID, employeeID string) (string, error) {
	e, err := s.repo.FindByIDAndCompany(ctx, companyID, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", employeeerrors.ErrEmployeeNotFound
		}
		return "", err
	}
	return e.StoreID.String(), nil
}

func (s *service) enqueueCreatedEvent(ctx context.Context, tx *sql.Tx, e *Employee) error {
	event := events.EmployeeCreatedEvent{
		EventType:  "employee.created",
		EmployeeID: e.ID.String(),
		CompanyID:  e.CompanyID.String(),
		StoreID:    e.StoreID.String(),
		OccurredAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "employee",
		AggregateID:   e.ID.String(),
		EventType:     event.EventType,
		Topic:         events.EmployeeCreatedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func mapList(rows []Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, len(rows))
	for i := range rows {
		out[i] = *mapToResponse(&rows[i])
	}
	return out
}
