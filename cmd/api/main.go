package main

import (
	"fmt"
	"net/http"

	"github.com/SVijayB/jeyspecialneedscentre-backend/internal/config"
	appHTTP "github.com/SVijayB/jeyspecialneedscentre-backend/internal/handler/http"
	"github.com/SVijayB/jeyspecialneedscentre-backend/internal/pkg/clock"
	"github.com/SVijayB/jeyspecialneedscentre-backend/internal/pkg/cron"
	"github.com/SVijayB/jeyspecialneedscentre-backend/internal/pkg/database"
	"github.com/SVijayB/jeyspecialneedscentre-backend/internal/pkg/jwt"
	"github.com/SVijayB/jeyspecialneedscentre-backend/internal/pkg/qr"
	"github.com/SVijayB/jeyspecialneedscentre-backend/internal/repository/postgresql"
	attendanceService "github.com/SVijayB/jeyspecialneedscentre-backend/internal/service/attendance"
	authService "github.com/SVijayB/jeyspecialneedscentre-backend/internal/service/auth"
	branchService "github.com/SVijayB/jeyspecialneedscentre-backend/internal/service/branch"
	checkoutService "github.com/SVijayB/jeyspecialneedscentre-backend/internal/service/checkout"
	leaveService "github.com/SVijayB/jeyspecialneedscentre-backend/internal/service/leave"
	userService "github.com/SVijayB/jeyspecialneedscentre-backend/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	branchRepo := postgresql.NewBranchRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	qrLogRepo := postgresql.NewQRLogRepository(db)
	checkoutRepo := postgresql.NewCheckoutRequestRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	jwtRepo := postgresql.NewJWTRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	signer := qr.NewSigner(cfg.Attendance.QRSecret)
	clk := clock.System()
	loc := cfg.App.Location

	authSvc := authService.NewAuthService(db, userRepo, jwtService, jwtRepo)
	userSvc := userService.NewUserService(db, userRepo, branchRepo)
	branchSvc := branchService.NewBranchService(db, branchRepo)
	attendanceSvc := attendanceService.NewAttendanceService(
		db,
		attendanceRepo,
		qrLogRepo,
		userRepo,
		signer,
		clk,
		loc,
		attendanceService.Config{AllowRecheckin: cfg.Attendance.AllowRecheckin},
	)
	checkoutSvc := checkoutService.NewCheckoutService(db, checkoutRepo, attendanceRepo, userRepo, clk, loc)
	leaveSvc := leaveService.NewLeaveService(db, leaveRepo, userRepo, clk, loc)

	authHandler := appHTTP.NewAuthHandler(jwtService, authSvc)
	userHandler := appHTTP.NewUserHandler(userSvc)
	branchHandler := appHTTP.NewBranchHandler(branchSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	checkoutHandler := appHTTP.NewCheckoutHandler(checkoutSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)

	scheduler := cron.NewScheduler()
	attendanceJobs := cron.NewAttendanceJobs(
		attendanceRepo,
		userRepo,
		leaveRepo,
		db,
		clk,
		loc,
		cfg.Attendance.AutoCheckout,
	)
	attendanceJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		authHandler,
		userHandler,
		branchHandler,
		attendanceHandler,
		checkoutHandler,
		leaveHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
