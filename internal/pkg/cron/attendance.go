package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SVijayB/jeyspecialneedscentre-backend/internal/domain/attendance"
	"github.com/SVijayB/jeyspecialneedscentre-backend/internal/domain/leave"
	"github.com/SVijayB/jeyspecialneedscentre-backend/internal/domain/user"
	"github.com/SVijayB/jeyspecialneedscentre-backend/internal/pkg/clock"
	"github.com/SVijayB/jeyspecialneedscentre-backend/internal/pkg/database"
)

// markAbsentAfterHour delays absence marking until well past the
// checkout cutoff so late scans are not marked absent prematurely.
const markAbsentAfterHour = 19

type AttendanceJobs struct {
	attendanceRepo attendance.AttendanceRepository
	userRepo       user.UserRepository
	leaveRepo      leave.LeaveRepository
	db             *database.DB
	clock          clock.Clock
	loc            *time.Location
	autoCheckout   bool
}

func NewAttendanceJobs(
	attendanceRepo attendance.AttendanceRepository,
	userRepo user.UserRepository,
	leaveRepo leave.LeaveRepository,
	db *database.DB,
	clk clock.Clock,
	loc *time.Location,
	autoCheckout bool,
) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceRepo: attendanceRepo,
		userRepo:       userRepo,
		leaveRepo:      leaveRepo,
		db:             db,
		clock:          clk,
		loc:            loc,
		autoCheckout:   autoCheckout,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("mark_absent_employees", 1*time.Hour, j.MarkAbsentEmployees)
	if j.autoCheckout {
		scheduler.AddJob("auto_checkout_stale", 1*time.Hour, j.AutoCheckoutStale)
	}
}

// MarkAbsentEmployees inserts an absent record for every active
// employee with no attendance record today and no leave covering it.
// Runs only in the evening, after the checkout cutoff.
func (j *AttendanceJobs) MarkAbsentEmployees(ctx context.Context) error {
	now := j.clock.Now().In(j.loc)
	if now.Hour() < markAbsentAfterHour {
		return nil
	}

	today := clock.DateOnly(now, j.loc)

	employees, err := j.userRepo.GetActive(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to get active employees: %w", err)
	}

	var absences []attendance.AttendanceLog
	for _, emp := range employees {
		hasRecord, err := j.attendanceRepo.HasRecordOn(ctx, emp.ID, today)
		if err != nil {
			return fmt.Errorf("failed to check attendance for %s: %w", emp.EmployeeCode, err)
		}
		if hasRecord {
			continue
		}

		onLeave, err := j.leaveRepo.HasOverlapping(ctx, emp.ID, today, today, "")
		if err != nil {
			return fmt.Errorf("failed to check leave for %s: %w", emp.EmployeeCode, err)
		}
		if onLeave {
			continue
		}

		absences = append(absences, attendance.AttendanceLog{
			EmployeeID: emp.ID,
			Date:       today,
			Status:     attendance.StatusAbsent,
		})
	}

	if len(absences) == 0 {
		return nil
	}

	if err := j.attendanceRepo.BulkCreateAbsences(ctx, absences); err != nil {
		return fmt.Errorf("failed to insert absences: %w", err)
	}

	slog.Info("Cron: marked employees absent", "count", len(absences), "date", today.Format("2006-01-02"))
	return nil
}

// AutoCheckoutStale closes open records from previous days at their
// date's 18:00 cutoff and flags them as auto-closed. Disabled by
// default so stale records go through the correction workflow instead.
func (j *AttendanceJobs) AutoCheckoutStale(ctx context.Context) error {
	now := j.clock.Now().In(j.loc)
	today := clock.DateOnly(now, j.loc)

	stale, err := j.attendanceRepo.GetStaleOpenLogs(ctx, today)
	if err != nil {
		return fmt.Errorf("failed to get stale attendance logs: %w", err)
	}

	closed := 0
	for _, log := range stale {
		emp, err := j.userRepo.GetByID(ctx, log.EmployeeID)
		if err != nil {
			slog.Error("Cron: failed to load employee for stale record", "attendance_id", log.ID, "error", err)
			continue
		}

		checkOut := attendance.CutoffFor(log.Date, j.loc)
		log.CheckOutTime = &checkOut
		log.AutoCheckout = true
		log.Recompute(attendance.Schedule{
			LoginTime:    emp.LoginTime,
			GraceMinutes: emp.GraceMinutes,
		}, j.loc)

		if err := j.attendanceRepo.Update(ctx, log); err != nil {
			slog.Error("Cron: failed to auto-close stale record", "attendance_id", log.ID, "error", err)
			continue
		}
		closed++
	}

	if closed > 0 {
		slog.Info("Cron: auto-closed stale attendance records", "count", closed)
	}
	return nil
}
