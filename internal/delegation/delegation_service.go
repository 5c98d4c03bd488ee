package delegation

import (
	"context"
	"database/sql"
	"errors"
	"time"

	delegationerrors "go-pontaj/internal/delegation/errors"
	"go-pontaj/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// HomeStoreLookup answers an employee's base store assignment. The employee
// slice provides it so this package does not import employee entities.
type HomeStoreLookup interface {
	HomeStoreID(ctx context.Context, companyID, employeeID string) (string, error)
}

//go:generate mockgen -source=delegation_service.go -destination=mock/delegation_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID, actorID string, req CreateDelegationRequest) (*DelegationResponse, error)
	Submit(ctx context.Context, companyID, id string) (*DelegationResponse, error)
	Approve(ctx context.Context, companyID, approverID, id string) (*DelegationResponse, error)
	Reject(ctx context.Context, companyID, approverID, id string, reason string) (*DelegationResponse, error)
	Cancel(ctx context.Context, companyID, id string) (*DelegationResponse, error)
	GetByID(ctx context.Context, companyID, id string) (*DelegationResponse, error)
	ListByCompany(ctx context.Context, companyID, status string) ([]DelegationResponse, error)
	ListByEmployee(ctx context.Context, companyID, employeeID string) ([]DelegationResponse, error)

	// EffectiveStoreID satisfies the timesheet slice's store resolution
	// contract: an approved window on the date wins over the home store.
	EffectiveStoreID(ctx context.Context, companyID, employeeID string, on time.Time) (string, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	homes  HomeStoreLookup
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, homes HomeStoreLookup, logger ...*zap.Logger) Service {
	l := zap.L().Named("delegation.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("delegation.service")
	}
	return &service{db: db, repo: repo, homes: homes, logger: l}
}

func (s *service) Create(ctx context.Context, companyID, actorID string, req CreateDelegationRequest) (*DelegationResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return nil, delegationerrors.ErrInvalidCompanyID
	}
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return nil, delegationerrors.ErrInvalidEmployeeID
	}
	employeeUUID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return nil, delegationerrors.ErrInvalidEmployeeID
	}
	fromUUID, err := uuid.Parse(req.FromStoreID)
	if err != nil {
		return nil, delegationerrors.ErrInvalidStoreID
	}
	toUUID, err := uuid.Parse(req.ToStoreID)
	if err != nil {
		return nil, delegationerrors.ErrInvalidStoreID
	}
	if fromUUID == toUUID {
		return nil, delegationerrors.ErrSameStore
	}
	if !validKind(req.Kind) {
		return nil, delegationerrors.ErrInvalidKind
	}

	validFrom, validUntil, err := parseWindow(req.Kind, req.ValidFrom, req.ValidUntil)
	if err != nil {
		return nil, err
	}

	d := &Delegation{
		ID:          uuid.New(),
		CompanyID:   companyUUID,
		EmployeeID:  employeeUUID,
		FromStoreID: fromUUID,
		ToStoreID:   toUUID,
		Kind:        req.Kind,
		ValidFrom:   validFrom,
		ValidUntil:  validUntil,
		Reason:      req.Reason,
		Status:      StatusPending,
		CreatedBy:   actorUUID,
	}
	if err := s.repo.Create(ctx, d); err != nil {
		s.logger.Error("create delegation failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("delegation created",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("delegation_id", d.ID.String()),
		zap.String("employee_id", d.EmployeeID.String()),
		zap.String("kind", d.Kind),
	)
	return mapToResponse(d), nil
}

func (s *service) Submit(ctx context.Context, companyID, id string) (*DelegationResponse, error) {
	return s.transition(ctx, companyID, id, StatusSubmitted, func(*Delegation) {})
}

// Approve moves the delegation to APPROVED inside a transaction, rejecting it
// when the employee already has an approved window intersecting this one.
func (s *service) Approve(ctx context.Context, companyID, approverID, id string) (*DelegationResponse, error) {
	approverUUID, err := uuid.Parse(approverID)
	if err != nil {
		return nil, delegationerrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	d, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, delegationerrors.ErrDelegationNotFound
		}
		return nil, err
	}
	if !canTransition(d.Status, StatusApproved) {
		return nil, delegationerrors.ErrInvalidTransition
	}

	overlapping, err := qtx.FindApprovedOverlapping(ctx, companyID, d.EmployeeID.String(), d.ValidFrom, d.ValidUntil, d.ID.String())
	if err != nil {
		return nil, err
	}
	if len(overlapping) > 0 {
		s.logger.Warn("delegation approval blocked by overlap",
			zap.String("delegation_id", d.ID.String()),
			zap.String("conflicting_id", overlapping[0].ID.String()),
		)
		return nil, delegationerrors.ErrOverlappingApproved
	}

	now := time.Now().UTC()
	d.Status = StatusApproved
	d.ApprovedBy = &approverUUID
	d.ApprovedAt = &now
	if err := qtx.Update(ctx, d); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("delegation approved",
		zap.String("delegation_id", d.ID.String()),
		zap.String("approved_by", approverID),
	)
	return mapToResponse(d), nil
}

func (s *service) Reject(ctx context.Context, companyID, approverID, id string, reason string) (*DelegationResponse, error) {
	if reason == "" {
		return nil, delegationerrors.ErrRejectionReason
	}
	approverUUID, err := uuid.Parse(approverID)
	if err != nil {
		return nil, delegationerrors.ErrInvalidEmployeeID
	}
	return s.transition(ctx, companyID, id, StatusRejected, func(d *Delegation) {
		d.ApprovedBy = &approverUUID
		d.RejectionReason = &reason
	})
}

func (s *service) Cancel(ctx context.Context, companyID, id string) (*DelegationResponse, error) {
	return s.transition(ctx, companyID, id, StatusCancelled, func(*Delegation) {})
}

func (s *service) transition(ctx context.Context, companyID, id, target string, mutate func(*Delegation)) (*DelegationResponse, error) {
	d, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, delegationerrors.ErrDelegationNotFound
		}
		return nil, err
	}
	if !canTransition(d.Status, target) {
		return nil, delegationerrors.ErrInvalidTransition
	}

	d.Status = target
	mutate(d)
	if err := s.repo.Update(ctx, d); err != nil {
		s.logger.Error("delegation transition failed",
			zap.String("delegation_id", id),
			zap.String("target_status", target),
			zap.Error(err),
		)
		return nil, err
	}
	return mapToResponse(d), nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (*DelegationResponse, error) {
	d, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, delegationerrors.ErrDelegationNotFound
		}
		return nil, err
	}
	return mapToResponse(d), nil
}

func (s *service) ListByCompany(ctx context.Context, companyID, status string) ([]DelegationResponse, error) {
	rows, err := s.repo.FindAllByCompany(ctx, companyID, status)
	if err != nil {
		return nil, err
	}
	return mapList(rows), nil
}

func (s *service) ListByEmployee(ctx context.Context, companyID, employeeID string) ([]DelegationResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, delegationerrors.ErrInvalidEmployeeID
	}
	rows, err := s.repo.FindAllByEmployee(ctx, companyID, employeeID)
	if err != nil {
		return nil, err
	}
	return mapList(rows), nil
}

func (s *service) EffectiveStoreID(ctx context.Context, companyID, employeeID string, on time.Time) (string, error) {
	d, err := s.repo.FindApprovedForEmployeeOn(ctx, companyID, employeeID, on)
	if err == nil {
		return d.ToStoreID.String(), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}
	if s.homes == nil {
		return "", nil
	}
	return s.homes.HomeStoreID(ctx, companyID, employeeID)
}

func parseWindow(kind, fromRaw string, untilRaw *string) (time.Time, *time.Time, error) {
	validFrom, err := time.Parse("2006-01-02", fromRaw)
	if err != nil {
		return time.Time{}, nil, delegationerrors.ErrInvalidWindow
	}

	// Transfers are open-ended; delegations need a closing date.
	if untilRaw == nil || *untilRaw == "" {
		if kind == KindDelegation {
			return time.Time{}, nil, delegationerrors.ErrMissingValidUntil
		}
		return validFrom, nil, nil
	}

	validUntil, err := time.Parse("2006-01-02", *untilRaw)
	if err != nil {
		return time.Time{}, nil, delegationerrors.ErrInvalidWindow
	}
	if validUntil.Before(validFrom) {
		return time.Time{}, nil, delegationerrors.ErrInvalidWindow
	}
	return validFrom, &validUntil, nil
}

func mapList(rows []Delegation) []DelegationResponse {
	out := make([]DelegationResponse, len(rows))
	for i := range rows {
		out[i] = *mapToResponse(&rows[i])
	}
	return out
}
