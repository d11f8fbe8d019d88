package attendance

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/SVijayB/jeyspecialneedscentre-backend/internal/domain/attendance"
	"github.com/SVijayB/jeyspecialneedscentre-backend/internal/domain/user"
	"github.com/SVijayB/jeyspecialneedscentre-backend/internal/pkg/clock"
	"github.com/SVijayB/jeyspecialneedscentre-backend/internal/pkg/database"
	"github.com/SVijayB/jeyspecialneedscentre-backend/internal/pkg/qr"
	"github.com/SVijayB/jeyspecialneedscentre-backend/internal/repository/postgresql"
)

// issueTolerance absorbs clock skew between the payload timestamp and
// the stored issuance row when matching a scanned code.
const issueTolerance = 2 * time.Second

type Config struct {
	// AllowRecheckin permits a fresh cycle after a completed one on the
	// same day.
	AllowRecheckin bool
}

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.AttendanceRepository
	attendance.QRLogRepository
	user.UserRepository
	signer *qr.Signer
	clock  clock.Clock
	loc    *time.Location
	cfg    Config

	// mu serializes check-in/check-out per employee so two concurrent
	// requests cannot both observe "no open record" and insert twice.
	mu sync.Mutex
	em map[string]*sync.Mutex
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepository attendance.AttendanceRepository,
	qrLogRepository attendance.QRLogRepository,
	userRepository user.UserRepository,
	signer *qr.Signer,
	clk clock.Clock,
	loc *time.Location,
	cfg Config,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                   db,
		AttendanceRepository: attendanceRepository,
		QRLogRepository:      qrLogRepository,
		UserRepository:       userRepository,
		signer:               signer,
		clock:                clk,
		loc:                  loc,
		cfg:                  cfg,
	}
}

func (a *AttendanceServiceImpl) employeeLock(employeeID string) *sync.Mutex {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.em == nil {
		a.em = make(map[string]*sync.Mutex)
	}
	m, ok := a.em[employeeID]
	if !ok {
		m = &sync.Mutex{}
		a.em[employeeID] = m
	}
	return m
}

// CheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, employeeID string) (attendance.AttendanceResponse, error) {
	lock := a.employeeLock(employeeID)
	lock.Lock()
	defer lock.Unlock()

	return a.checkInLocked(ctx, employeeID)
}

func (a *AttendanceServiceImpl) checkInLocked(ctx context.Context, employeeID string) (attendance.AttendanceResponse, error) {
	employee, err := a.UserRepository.GetByID(ctx, employeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := a.clock.Now().In(a.loc)
	today := clock.DateOnly(now, a.loc)

	if _, err := a.AttendanceRepository.GetOpenLog(ctx, employeeID, today); err == nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
	} else if !errors.Is(err, attendance.ErrAttendanceNotFound) {
		return attendance.AttendanceResponse{}, err
	}

	if !a.cfg.AllowRecheckin {
		hasRecord, err := a.AttendanceRepository.HasRecordOn(ctx, employeeID, today)
		if err != nil {
			return attendance.AttendanceResponse{}, err
		}
		if hasRecord {
			return attendance.AttendanceResponse{}, attendance.ErrRecheckinDisabled
		}
	}

	checkIn := now
	log := attendance.AttendanceLog{
		EmployeeID:  employeeID,
		Date:        today,
		CheckInTime: &checkIn,
	}
	log.Recompute(attendance.Schedule{
		LoginTime:    employee.LoginTime,
		GraceMinutes: employee.GraceMinutes,
	}, a.loc)

	created, err := a.AttendanceRepository.Create(ctx, log)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	created.EmployeeName = strPtr(employee.FullName())
	created.EmployeeCode = &employee.EmployeeCode
	created.BranchID = &employee.BranchID
	created.BranchName = employee.BranchName

	return attendance.ToResponse(created), nil
}

// CheckOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context, employeeID string) (attendance.AttendanceResponse, error) {
	lock := a.employeeLock(employeeID)
	lock.Lock()
	defer lock.Unlock()

	employee, err := a.UserRepository.GetByID(ctx, employeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := a.clock.Now().In(a.loc)
	today := clock.DateOnly(now, a.loc)

	// The cutoff applies whether or not an open record exists.
	if attendance.PastCutoff(now, a.loc) {
		return attendance.AttendanceResponse{}, attendance.ErrPastCutoff
	}

	open, err := a.AttendanceRepository.GetOpenLog(ctx, employeeID, today)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrNoActiveCheckIn
		}
		return attendance.AttendanceResponse{}, err
	}

	checkOut := now
	open.CheckOutTime = &checkOut
	open.Recompute(attendance.Schedule{
		LoginTime:    employee.LoginTime,
		GraceMinutes: employee.GraceMinutes,
	}, a.loc)

	if err := a.AttendanceRepository.Update(ctx, open); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToResponse(open), nil
}

// GenerateQR implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GenerateQR(ctx context.Context, employeeID string) (attendance.GenerateQRResponse, error) {
	employee, err := a.UserRepository.GetByID(ctx, employeeID)
	if err != nil {
		return attendance.GenerateQRResponse{}, err
	}

	now := a.clock.Now().In(a.loc)
	payload := qr.Payload{
		EmployeeCode: employee.EmployeeCode,
		Type:         attendance.QRTypeCheckin,
		Timestamp:    now.Format(time.RFC3339),
		BranchID:     employee.BranchID,
	}

	encoded, signature, err := a.signer.Encode(payload)
	if err != nil {
		return attendance.GenerateQRResponse{}, fmt.Errorf("failed to sign qr payload: %w", err)
	}

	if _, err := a.QRLogRepository.Create(ctx, attendance.QRCodeLog{
		EmployeeCode: employee.EmployeeCode,
		IssuedAt:     now,
		QRType:       attendance.QRTypeCheckin,
	}); err != nil {
		return attendance.GenerateQRResponse{}, err
	}

	image, err := qr.RenderPNG(encoded, signature)
	if err != nil {
		return attendance.GenerateQRResponse{}, fmt.Errorf("failed to render qr image: %w", err)
	}

	return attendance.GenerateQRResponse{
		Payload:   encoded,
		Signature: signature,
		QRImage:   image,
		ExpiresAt: now.Add(attendance.QRValidity).Format(time.RFC3339),
	}, nil
}

// ScanQR implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ScanQR(ctx context.Context, req attendance.ScanQRRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	payload, err := a.signer.Decode(req.Payload, req.Signature)
	if err != nil {
		return attendance.AttendanceResponse{}, attendance.ErrQRInvalidPayload
	}

	if payload.Type != attendance.QRTypeCheckin {
		return attendance.AttendanceResponse{}, attendance.ErrQRInvalidType
	}

	issuedAt, err := payload.IssuedAt()
	if err != nil {
		return attendance.AttendanceResponse{}, attendance.ErrQRInvalidPayload
	}

	now := a.clock.Now().In(a.loc)
	if now.Sub(issuedAt) > attendance.QRValidity {
		return attendance.AttendanceResponse{}, attendance.ErrQRExpired
	}

	employee, err := a.UserRepository.GetByEmployeeCode(ctx, payload.EmployeeCode)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	lock := a.employeeLock(employee.ID)
	lock.Lock()
	defer lock.Unlock()

	var resp attendance.AttendanceResponse
	err = postgresql.WithTransaction(ctx, a.db, func(txCtx context.Context) error {
		qrLog, err := a.QRLogRepository.GetUnusedByEmployeeAndIssue(txCtx, payload.EmployeeCode, issuedAt, issueTolerance)
		if err != nil {
			return err
		}
		if qrLog.Expired(now) {
			return attendance.ErrQRExpired
		}
		if err := a.QRLogRepository.MarkUsed(txCtx, qrLog.ID, now); err != nil {
			return err
		}

		resp, err = a.checkInLocked(txCtx, employee.ID)
		return err
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return resp, nil
}

// GetToday implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetToday(ctx context.Context, employeeID string) ([]attendance.AttendanceResponse, error) {
	today := clock.DateOnly(a.clock.Now(), a.loc)

	logs, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(logs))
	for _, log := range logs {
		responses = append(responses, attendance.ToResponse(log))
	}
	return responses, nil
}

// List implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) List(ctx context.Context, actorID string, filter attendance.Filter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	actor, err := a.UserRepository.GetByID(ctx, actorID)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	// Narrow the filter to what the actor may see.
	switch actor.Role {
	case user.RoleTherapist:
		filter.EmployeeID = &actor.ID
		filter.BranchID = nil
	case user.RoleSupervisor:
		filter.BranchID = &actor.BranchID
		if filter.EmployeeID != nil {
			target, err := a.UserRepository.GetByID(ctx, *filter.EmployeeID)
			if err != nil {
				return attendance.ListAttendanceResponse{}, err
			}
			if !user.CanViewAttendanceOf(actor, target) {
				return attendance.ListAttendanceResponse{}, attendance.ErrUnauthorized
			}
		}
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	logs, total, err := a.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(logs))
	for _, log := range logs {
		responses = append(responses, attendance.ToResponse(log))
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))

	return attendance.ListAttendanceResponse{
		TotalCount:  total,
		Page:        filter.Page,
		Limit:       filter.Limit,
		TotalPages:  totalPages,
		Attendances: responses,
	}, nil
}

// Delete implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Delete(ctx context.Context, actorID, id string) error {
	actor, err := a.UserRepository.GetByID(ctx, actorID)
	if err != nil {
		return err
	}
	if !actor.IsSuperAdmin() {
		return attendance.ErrUnauthorized
	}

	return a.AttendanceRepository.Delete(ctx, id)
}

func strPtr(s string) *string {
	return &s
}
