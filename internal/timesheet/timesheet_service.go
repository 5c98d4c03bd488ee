package timesheet

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"go-pontaj/internal/events"
	"go-pontaj/internal/messaging/kafka"
	"go-pontaj/internal/shared/contextutil"
	timesheeterrors "go-pontaj/internal/timesheet/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MaxPeriodDays bounds a pay period to a single cycle.
const MaxPeriodDays = 31

// StoreResolver answers which store is authoritative for an employee on a
// given date. The delegation slice provides the real implementation; an
// approved delegation or transfer window beats the home store.
type StoreResolver interface {
	EffectiveStoreID(ctx context.Context, companyID, employeeID string, on time.Time) (string, error)
}

type noopStoreResolver struct{}

func (noopStoreResolver) EffectiveStoreID(context.Context, string, string, time.Time) (string, error) {
	return "", nil
}

//go:generate mockgen -source=timesheet_service.go -destination=mock/timesheet_service_mock.go -package=mock
type Service interface {
	GetGrid(ctx context.Context, companyID, id string) (GridResponse, error)
	Save(ctx context.Context, companyID, actorID string, req SaveTimesheetRequest) (TimesheetResponse, error)
	CheckDuplicate(ctx context.Context, companyID string, req CheckDuplicateRequest) (DuplicateResponse, error)
	ValidateCell(ctx context.Context, companyID string, req ValidateCellRequest) (CellVerdictResponse, error)
	EmployeeTotals(ctx context.Context, companyID, id string) ([]EmployeeTotalResponse, error)
}

type service struct {
	db       *sql.DB
	repo     Repository
	resolver StoreResolver
	outbox   kafka.OutboxRepository
	logger   *zap.Logger
}

func NewService(db *sql.DB, repo Repository, resolver StoreResolver, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, resolver, nil, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	resolver StoreResolver,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("timesheet.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("timesheet.service")
	}
	if resolver == nil {
		resolver = noopStoreResolver{}
	}
	return &service{
		db:       db,
		repo:     repo,
		resolver: resolver,
		outbox:   outboxRepo,
		logger:   l,
	}
}

func (s *service) GetGrid(ctx context.Context, companyID, id string) (GridResponse, error) {
	t, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return GridResponse{}, timesheeterrors.ErrTimesheetNotFound
		}
		return GridResponse{}, err
	}

	rules, err := s.repo.ListActiveAbsenceRules(ctx, companyID)
	if err != nil {
		return GridResponse{}, err
	}

	entries := ReconstructEntries(t.DailyEntries, t.PeriodStart, t.PeriodEnd)
	return s.buildGridResponse(ctx, t, entries, rules), nil
}

func (s *service) Save(ctx context.Context, companyID, actorID string, req SaveTimesheetRequest) (TimesheetResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("save timesheet requested",
		zap.String("request_id", rid),
		zap.String("company_id", companyID),
		zap.String("store_id", req.StoreID),
		zap.String("period_start", req.PeriodStart),
		zap.String("period_end", req.PeriodEnd),
	)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return TimesheetResponse{}, timesheeterrors.ErrInvalidCompanyID
	}
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return TimesheetResponse{}, timesheeterrors.ErrInvalidActorID
	}
	storeUUID, err := uuid.Parse(req.StoreID)
	if err != nil {
		return TimesheetResponse{}, timesheeterrors.ErrInvalidStoreID
	}

	periodStart, periodEnd, err := parsePeriod(req.PeriodStart, req.PeriodEnd)
	if err != nil {
		return TimesheetResponse{}, err
	}

	rules, err := s.repo.ListActiveAbsenceRules(ctx, companyID)
	if err != nil {
		return TimesheetResponse{}, err
	}

	if invalid := s.findInvalidCells(req.Entries, rules); len(invalid) > 0 {
		s.logger.Warn("save timesheet rejected on cell validation",
			zap.String("request_id", rid),
			zap.Strings("cells", invalid),
		)
		return TimesheetResponse{}, timesheeterrors.ErrInvalidCells
	}

	entries := normalizeEntries(req.Entries, periodStart, periodEnd, rules)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("save timesheet begin tx failed", zap.Error(err))
		return TimesheetResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	// Delegated employees attribute their save to the delegation's target
	// store, so the duplicate pre-flight covers every store involved.
	for _, storeID := range s.effectiveStores(ctx, companyID, req.StoreID, entries, periodStart) {
		candidates, err := qtx.FindConflictCandidates(ctx, companyID, storeID, periodStart, periodEnd)
		if err != nil {
			s.logger.Error("save timesheet conflict query failed", zap.Error(err))
			return TimesheetResponse{}, err
		}
		if verdict := ClassifyConflict(candidates, periodStart, periodEnd, req.ID); verdict.HasDuplicate {
			s.logger.Warn("save timesheet duplicate detected",
				zap.String("request_id", rid),
				zap.String("store_id", storeID),
				zap.String("conflict_type", string(verdict.ConflictType)),
			)
			return TimesheetResponse{}, timesheeterrors.ErrDuplicatePeriod
		}
	}

	payload, err := MarshalEntries(entries)
	if err != nil {
		return TimesheetResponse{}, err
	}

	var t *Timesheet
	if req.ID == "" {
		t = &Timesheet{
			ID:           uuid.New(),
			CompanyID:    companyUUID,
			StoreID:      storeUUID,
			ZoneID:       uuidPtr(req.ZoneID),
			PeriodStart:  periodStart,
			PeriodEnd:    periodEnd,
			PeriodMonth:  periodStart.Format("2006-01"),
			DailyEntries: payload,
			CreatedBy:    actorUUID,
		}
		err = qtx.Create(ctx, t)
	} else {
		t, err = qtx.FindByIDAndCompany(ctx, companyID, req.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return TimesheetResponse{}, timesheeterrors.ErrTimesheetNotFound
			}
			return TimesheetResponse{}, err
		}
		t.StoreID = storeUUID
		t.ZoneID = uuidPtr(req.ZoneID)
		t.PeriodStart = periodStart
		t.PeriodEnd = periodEnd
		t.PeriodMonth = periodStart.Format("2006-01")
		t.DailyEntries = payload
		err = qtx.Update(ctx, t)
	}
	if err != nil {
		if isUniquePeriodViolation(err) {
			// lost the race between the advisory check and the write;
			// the storage constraint catches it
			return TimesheetResponse{}, timesheeterrors.ErrDuplicatePeriod
		}
		s.logger.Error("save timesheet persist failed", zap.Error(err))
		return TimesheetResponse{}, err
	}

	if s.outbox != nil {
		if err := s.enqueueSavedEvent(ctx, tx, rid, t, entries, rules); err != nil {
			s.logger.Error("save timesheet enqueue event failed", zap.Error(err))
			return TimesheetResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("save timesheet commit failed", zap.Error(err))
		return TimesheetResponse{}, err
	}

	s.logger.Info("save timesheet success",
		zap.String("timesheet_id", t.ID.String()),
		zap.String("company_id", companyID),
		zap.String("store_id", req.StoreID),
	)
	return mapToResponse(*t), nil
}

func (s *service) CheckDuplicate(ctx context.Context, companyID string, req CheckDuplicateRequest) (DuplicateResponse, error) {
	if _, err := uuid.Parse(req.StoreID); err != nil {
		return DuplicateResponse{}, timesheeterrors.ErrInvalidStoreID
	}
	periodStart, periodEnd, err := parsePeriod(req.PeriodStart, req.PeriodEnd)
	if err != nil {
		return DuplicateResponse{}, err
	}

	candidates, err := s.repo.FindConflictCandidates(ctx, companyID, req.StoreID, periodStart, periodEnd)
	if err != nil {
		return DuplicateResponse{}, err
	}

	verdict := ClassifyConflict(candidates, periodStart, periodEnd, req.ExcludeID)
	resp := DuplicateResponse{HasDuplicate: verdict.HasDuplicate}
	if verdict.HasDuplicate {
		resp.ConflictType = string(verdict.ConflictType)
		resp.Message = ConflictMessage(verdict.ConflictType)
		resp.ExistingID = verdict.Existing.ID.String()
	}
	return resp, nil
}

func (s *service) ValidateCell(ctx context.Context, companyID string, req ValidateCellRequest) (CellVerdictResponse, error) {
	rules, err := s.repo.ListActiveAbsenceRules(ctx, companyID)
	if err != nil {
		return CellVerdictResponse{}, err
	}

	cellCtx := CellContext{
		TimeInterval: req.TimeInterval,
		Status:       req.Status,
		Hours:        req.Hours,
		Notes:        req.Notes,
		IsWeekend:    req.IsWeekend,
		Rules:        rules,
	}
	verdict := ValidateCell(cellCtx)

	return CellVerdictResponse{
		IsValid:      verdict.IsValid,
		Type:         string(verdict.Type),
		Message:      verdict.Message,
		ValidOptions: ValidOptionsFor(cellCtx),
	}, nil
}

func (s *service) EmployeeTotals(ctx context.Context, companyID, id string) ([]EmployeeTotalResponse, error) {
	t, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, timesheeterrors.ErrTimesheetNotFound
		}
		return nil, err
	}

	rules, err := s.repo.ListActiveAbsenceRules(ctx, companyID)
	if err != nil {
		return nil, err
	}

	entries := ReconstructEntries(t.DailyEntries, t.PeriodStart, t.PeriodEnd)
	totals := make([]EmployeeTotalResponse, len(entries))
	for i, entry := range entries {
		totals[i] = EmployeeTotalResponse{
			EmployeeID:   entry.EmployeeID,
			EmployeeName: entry.EmployeeName,
			TotalHours:   TotalEffectiveHours(entry.Days, rules),
		}
	}
	return totals, nil
}

func (s *service) findInvalidCells(entries []SaveGridEntry, rules []AbsenceRule) []string {
	var invalid []string
	for _, entry := range entries {
		for date, cell := range entry.Days {
			verdict := ValidateCell(CellContext{
				TimeInterval: cell.TimeInterval,
				Status:       cell.Status,
				Hours:        cell.Hours,
				Notes:        cell.Notes,
				Rules:        rules,
			})
			if !verdict.IsValid {
				invalid = append(invalid, entry.EmployeeID+"/"+date+": "+verdict.Message)
			}
		}
	}
	return invalid
}

func (s *service) effectiveStores(ctx context.Context, companyID, requestStoreID string, entries []GridEntry, on time.Time) []string {
	seen := map[string]bool{requestStoreID: true}
	stores := []string{requestStoreID}

	for _, entry := range entries {
		storeID, err := s.resolver.EffectiveStoreID(ctx, companyID, entry.EmployeeID, on)
		if err != nil {
			s.logger.Warn("resolve effective store failed",
				zap.String("employee_id", entry.EmployeeID),
				zap.Error(err),
			)
			continue
		}
		if storeID != "" && !seen[storeID] {
			seen[storeID] = true
			stores = append(stores, storeID)
		}
	}
	return stores
}

func (s *service) enqueueSavedEvent(ctx context.Context, tx *sql.Tx, rid string, t *Timesheet, entries []GridEntry, rules []AbsenceRule) error {
	employeeHours := make(map[string]float64, len(entries))
	var total float64
	for _, entry := range entries {
		hours := TotalEffectiveHours(entry.Days, rules)
		employeeHours[entry.EmployeeID] = hours
		total += hours
	}

	event := events.TimesheetSavedEvent{
		EventType:     "timesheet.saved",
		TimesheetID:   t.ID.String(),
		CompanyID:     t.CompanyID.String(),
		StoreID:       t.StoreID.String(),
		PeriodStart:   t.PeriodStart.Format(dateLayout),
		PeriodEnd:     t.PeriodEnd.Format(dateLayout),
		TotalHours:    round2(total),
		EmployeeHours: employeeHours,
		OccurredAt:    time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     rid,
		AggregateType: "timesheet",
		AggregateID:   t.ID.String(),
		EventType:     event.EventType,
		Topic:         events.TimesheetSavedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

// normalizeEntries densifies the submitted grid over the period and applies
// the full-day absence invariant: such a cell keeps no interval and no
// stored hours, its effective value is always the full-day constant.
func normalizeEntries(reqEntries []SaveGridEntry, periodStart, periodEnd time.Time, rules []AbsenceRule) []GridEntry {
	dates := periodDates(periodStart, periodEnd)
	entries := make([]GridEntry, 0, len(reqEntries))

	for _, reqEntry := range reqEntries {
		entry := GridEntry{
			EmployeeID:   reqEntry.EmployeeID,
			EmployeeName: reqEntry.EmployeeName,
			Position:     reqEntry.Position,
			Days:         make(map[string]DayCell, len(dates)),
		}
		for _, date := range dates {
			raw, ok := reqEntry.Days[date]
			if !ok {
				entry.Days[date] = DayCell{Status: StatusUnset}
				continue
			}
			cell := DayCell{
				TimeInterval: strings.TrimSpace(raw.TimeInterval),
				Hours:        raw.Hours,
				Status:       raw.Status,
				Notes:        raw.Notes,
			}
			if cell.Status == "" {
				cell.Status = StatusUnset
			}
			if IsFullDayAbsence(cell.Status, rules) {
				cell.TimeInterval = ""
				cell.Hours = 0
			} else if cell.Hours == 0 {
				if iv := ParseInterval(cell.TimeInterval); iv != nil {
					cell.Hours = iv.Hours
				}
			}
			entry.Days[date] = cell
		}
		entries = append(entries, entry)
	}
	return entries
}

func (s *service) buildGridResponse(ctx context.Context, t *Timesheet, entries []GridEntry, rules []AbsenceRule) GridResponse {
	resp := GridResponse{
		ID:          t.ID.String(),
		CompanyID:   t.CompanyID.String(),
		StoreID:     t.StoreID.String(),
		PeriodStart: t.PeriodStart.Format(dateLayout),
		PeriodEnd:   t.PeriodEnd.Format(dateLayout),
		Entries:     make([]GridEntryResponse, len(entries)),
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   t.UpdatedAt.Format(time.RFC3339),
	}
	if t.ZoneID != nil {
		resp.ZoneID = t.ZoneID.String()
	}

	var gridTotal float64
	for i, entry := range entries {
		entryResp := GridEntryResponse{
			EmployeeID:   entry.EmployeeID,
			EmployeeName: entry.EmployeeName,
			Position:     entry.Position,
			Days:         make(map[string]DayCellResponse, len(entry.Days)),
		}

		effectiveStore, err := s.resolver.EffectiveStoreID(ctx, t.CompanyID.String(), entry.EmployeeID, t.PeriodStart)
		if err == nil && effectiveStore != "" {
			entryResp.EffectiveStoreID = effectiveStore
		} else {
			entryResp.EffectiveStoreID = t.StoreID.String()
		}

		for date, cell := range entry.Days {
			c := cell
			effective := EffectiveHours(&c, rules)
			entryResp.Days[date] = DayCellResponse{
				TimeInterval:   cell.TimeInterval,
				Hours:          cell.Hours,
				EffectiveHours: effective.Hours,
				Status:         cell.Status,
				Notes:          cell.Notes,
				FullDayAbsence: effective.FullDayAbsence,
			}
		}
		entryResp.TotalHours = TotalEffectiveHours(entry.Days, rules)
		gridTotal += entryResp.TotalHours
		resp.Entries[i] = entryResp
	}
	resp.TotalHours = round2(gridTotal)
	return resp
}

func parsePeriod(startRaw, endRaw string) (time.Time, time.Time, error) {
	periodStart, err := time.Parse(dateLayout, startRaw)
	if err != nil {
		return time.Time{}, time.Time{}, timesheeterrors.ErrInvalidDateFormat
	}
	periodEnd, err := time.Parse(dateLayout, endRaw)
	if err != nil {
		return time.Time{}, time.Time{}, timesheeterrors.ErrInvalidDateFormat
	}
	if periodStart.After(periodEnd) {
		return time.Time{}, time.Time{}, timesheeterrors.ErrInvalidPeriod
	}
	if int(periodEnd.Sub(periodStart).Hours()/24)+1 > MaxPeriodDays {
		return time.Time{}, time.Time{}, timesheeterrors.ErrPeriodTooLong
	}
	return periodStart, periodEnd, nil
}

func mapToResponse(t Timesheet) TimesheetResponse {
	resp := TimesheetResponse{
		ID:          t.ID.String(),
		CompanyID:   t.CompanyID.String(),
		StoreID:     t.StoreID.String(),
		PeriodStart: t.PeriodStart.Format(dateLayout),
		PeriodEnd:   t.PeriodEnd.Format(dateLayout),
		CreatedBy:   t.CreatedBy.String(),
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   t.UpdatedAt.Format(time.RFC3339),
	}
	if t.ZoneID != nil {
		resp.ZoneID = t.ZoneID.String()
	}
	return resp
}

func uuidPtr(v string) *uuid.UUID {
	if v == "" {
		return nil
	}
	parsed, err := uuid.Parse(v)
	if err != nil {
		return nil
	}
	return &parsed
}

func isUniquePeriodViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && pgErr.ConstraintName == "uq_timesheets_store_month"
	}

	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_timesheets_store_month")
}
