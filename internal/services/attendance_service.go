package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"fixitfast/internal/models/db_models"
	"fixitfast/internal/models/request_models"
	"fixitfast/internal/models/response_models"
	"fixitfast/internal/repositories"
	"fixitfast/pkg/utils"
)

// Office hours for self-recorded attendance. Admin corrections are exempt.
const (
	officeOpenHour  = 9
	officeCloseHour = 17
)

const (
	standardShiftHours = 8.0
	overtimeEntryHours = 2.0
)

type AttendanceServiceInterface interface {
	Record(ctx context.Context, labourID uuid.UUID, req request_models.RecordAttendanceRequest) (*db_models.AttendanceEntry, error)
	RecordCorrection(ctx context.Context, adminID, labourID uuid.UUID, req request_models.CorrectAttendanceRequest) (*db_models.AttendanceEntry, error)
	CurrentStatus(ctx context.Context, labourID uuid.UUID) (*response_models.AttendanceStatus, error)
	ListForLabour(ctx context.Context, labourID uuid.UUID, q request_models.AttendanceListQuery) ([]db_models.AttendanceEntry, int64, error)
	MonthlySummary(ctx context.Context, labourID uuid.UUID, month, year int) (*response_models.AttendanceSummary, error)
}

type attendanceService struct {
	attendanceRepo repositories.AttendanceRepository
	accountRepo    repositories.AccountRepository
	now            func() time.Time
}

func NewAttendanceService(
	attendanceRepo repositories.AttendanceRepository,
	accountRepo repositories.AccountRepository,
) AttendanceServiceInterface {
	return &attendanceService{
		attendanceRepo: attendanceRepo,
		accountRepo:    accountRepo,
		now:            time.Now,
	}
}

// Record appends a self-reported entry. Self-reporting is limited to office
// hours and has to follow the day's flow: a leave entry owns the whole day,
// check-out needs an open check-in, and a second check-in needs a check-out
// in between.
func (s *attendanceService) Record(ctx context.Context, labourID uuid.UUID, req request_models.RecordAttendanceRequest) (*db_models.AttendanceEntry, error) {
	if !db_models.ValidAttendanceType(req.Type) {
		return nil, fmt.Errorf("%w: unknown attendance type %q", utils.ErrValidation, req.Type)
	}

	now := s.now()
	if hour := now.Hour(); hour < officeOpenHour || hour >= officeCloseHour {
		return nil, fmt.Errorf("%w: attendance can only be recorded between 09:00 and 17:00", utils.ErrValidation)
	}

	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	today, err := s.attendanceRepo.EntriesBetween(ctx, labourID, dayStart, dayStart.AddDate(0, 0, 1).Add(-time.Nanosecond))
	if err != nil {
		return nil, err
	}
	if err := validateDayFlow(today, req.Type); err != nil {
		return nil, err
	}

	entry := &db_models.AttendanceEntry{
		LabourID:     labourID,
		Type:         req.Type,
		OccurredAt:   now,
		Location:     req.Location,
		Remarks:      req.Remarks,
		RecordedByID: labourID,
	}
	if err := s.attendanceRepo.Insert(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func validateDayFlow(today []db_models.AttendanceEntry, newType string) error {
	openCheckIn := false
	for _, e := range today {
		switch e.Type {
		case db_models.AttendanceLeave:
			return fmt.Errorf("%w: a leave entry already covers today", utils.ErrConflict)
		case db_models.AttendanceCheckIn:
			openCheckIn = true
		case db_models.AttendanceCheckOut:
			openCheckIn = false
		}
	}

	switch newType {
	case db_models.AttendanceLeave:
		if len(today) > 0 {
			return fmt.Errorf("%w: attendance was already recorded today", utils.ErrConflict)
		}
	case db_models.AttendanceCheckIn:
		if openCheckIn {
			return fmt.Errorf("%w: already checked in", utils.ErrConflict)
		}
	case db_models.AttendanceCheckOut:
		if !openCheckIn {
			return fmt.Errorf("%w: no open check-in to close", utils.ErrConflict)
		}
	}
	return nil
}

// RecordCorrection is the admin path. It skips the office-hours and flow
// checks but keeps the audit trail: the row names the admin and the reason.
func (s *attendanceService) RecordCorrection(ctx context.Context, adminID, labourID uuid.UUID, req request_models.CorrectAttendanceRequest) (*db_models.AttendanceEntry, error) {
	if !db_models.ValidAttendanceType(req.Type) {
		return nil, fmt.Errorf("%w: unknown attendance type %q", utils.ErrValidation, req.Type)
	}

	labour, err := s.accountRepo.FindByID(ctx, labourID)
	if err != nil {
		return nil, err
	}
	if labour == nil || labour.Role != db_models.RoleLabour {
		return nil, fmt.Errorf("%w: labour account not found", utils.ErrNotFound)
	}

	occurredAt := s.now()
	if req.OccurredAt != "" {
		occurredAt, err = time.Parse(time.RFC3339, req.OccurredAt)
		if err != nil {
			return nil, fmt.Errorf("%w: occurred_at must be RFC3339", utils.ErrValidation)
		}
	}

	entry := &db_models.AttendanceEntry{
		LabourID:       labourID,
		Type:           req.Type,
		OccurredAt:     occurredAt,
		Location:       req.Location,
		Remarks:        req.Remarks,
		RecordedByID:   adminID,
		CorrectedByID:  &adminID,
		CorrectionNote: req.Note,
	}
	if err := s.attendanceRepo.Insert(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *attendanceService) CurrentStatus(ctx context.Context, labourID uuid.UUID) (*response_models.AttendanceStatus, error) {
	latest, err := s.attendanceRepo.LatestForLabour(ctx, labourID)
	if err != nil {
		return nil, err
	}
	if latest == nil {
		return &response_models.AttendanceStatus{}, nil
	}
	t := latest.OccurredAt
	return &response_models.AttendanceStatus{
		Status:     latest.Type,
		OnDuty:     latest.OnDuty(),
		LastAction: &t,
		Location:   latest.Location,
		Remarks:    latest.Remarks,
	}, nil
}

func (s *attendanceService) ListForLabour(ctx context.Context, labourID uuid.UUID, q request_models.AttendanceListQuery) ([]db_models.AttendanceEntry, int64, error) {
	var from, to time.Time
	var err error
	if q.From != "" {
		from, err = time.Parse("2006-01-02", q.From)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: from must be YYYY-MM-DD", utils.ErrValidation)
		}
	}
	if q.To != "" {
		to, err = time.Parse("2006-01-02", q.To)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: to must be YYYY-MM-DD", utils.ErrValidation)
		}
		to = to.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}

	page, limit := normalizePage(q.Page, q.Limit)
	return s.attendanceRepo.ListForLabour(ctx, labourID, from, to, page, limit)
}

func (s *attendanceService) MonthlySummary(ctx context.Context, labourID uuid.UUID, month, year int) (*response_models.AttendanceSummary, error) {
	now := s.now()
	if month == 0 {
		month = int(now.Month())
	}
	if year == 0 {
		year = now.Year()
	}
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: month must be between 1 and 12", utils.ErrValidation)
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, now.Location())
	to := from.AddDate(0, 1, 0).Add(-time.Nanosecond)

	entries, err := s.attendanceRepo.EntriesBetween(ctx, labourID, from, to)
	if err != nil {
		return nil, err
	}
	summary := summarizeAttendance(entries)
	summary.Month = month
	summary.Year = year
	return summary, nil
}

type attendanceDay struct {
	firstCheckIn  time.Time
	lastCheckOut  time.Time
	overtimeCount int
	onLeave       bool
}

// summarizeAttendance folds a month of entries into per-day figures. A day
// counts as present when it has both a check-in and a check-out; hours run
// from the first check-in to the last check-out, with anything past the
// standard shift counted as overtime. Standalone overtime entries add a
// fixed block each.
func summarizeAttendance(entries []db_models.AttendanceEntry) *response_models.AttendanceSummary {
	days := make(map[string]*attendanceDay)
	for _, e := range entries {
		key := e.OccurredAt.Format("2006-01-02")
		day, ok := days[key]
		if !ok {
			day = &attendanceDay{}
			days[key] = day
		}
		switch e.Type {
		case db_models.AttendanceCheckIn:
			if day.firstCheckIn.IsZero() || e.OccurredAt.Before(day.firstCheckIn) {
				day.firstCheckIn = e.OccurredAt
			}
		case db_models.AttendanceCheckOut:
			if e.OccurredAt.After(day.lastCheckOut) {
				day.lastCheckOut = e.OccurredAt
			}
		case db_models.AttendanceOvertime:
			day.overtimeCount++
		case db_models.AttendanceLeave:
			day.onLeave = true
		}
	}

	summary := &response_models.AttendanceSummary{WorkingDays: len(days)}
	var totalHours, overtimeHours float64
	for _, day := range days {
		if day.onLeave {
			summary.LeaveDays++
			continue
		}
		if !day.firstCheckIn.IsZero() && day.lastCheckOut.After(day.firstCheckIn) {
			summary.PresentDays++
			hours := day.lastCheckOut.Sub(day.firstCheckIn).Hours()
			totalHours += hours
			if hours > standardShiftHours {
				overtimeHours += hours - standardShiftHours
			}
		}
		overtimeHours += overtimeEntryHours * float64(day.overtimeCount)
	}

	summary.TotalHours = round2(totalHours)
	summary.OvertimeHours = round2(overtimeHours)
	if summary.PresentDays > 0 {
		summary.AvgHoursPerDay = round2(totalHours / float64(summary.PresentDays))
	}
	return summary
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
