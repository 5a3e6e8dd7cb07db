package main

import (
	"fmt"
	"net/http"

	"github.com/edutrack/edutrack-backend-go/internal/config"
	appHTTP "github.com/edutrack/edutrack-backend-go/internal/handler/http"
	"github.com/edutrack/edutrack-backend-go/internal/pkg/database"
	"github.com/edutrack/edutrack-backend-go/internal/repository/postgresql"
	attendanceService "github.com/edutrack/edutrack-backend-go/internal/service/attendance"
	teacherService "github.com/edutrack/edutrack-backend-go/internal/service/teacher"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	teacherRepo := postgresql.NewTeacherRepository(db)
	scanLogRepo := postgresql.NewScanLogRepository(db)
	scheduleRepo := postgresql.NewScheduleRepository(db)
	deviceStateRepo := postgresql.NewDeviceStateRepository(db)
	terminalRepo := postgresql.NewTerminalRepository(db)

	attendanceSvc := attendanceService.NewAttendanceService(
		scanLogRepo,
		scheduleRepo,
		terminalRepo,
		teacherRepo,
		deviceStateRepo,
		cfg.Attendance.GracePeriodMinutes,
	)
	teacherSvc := teacherService.NewTeacherService(teacherRepo, deviceStateRepo)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	teacherHandler := appHTTP.NewTeacherHandler(teacherSvc)

	router := appHTTP.NewRouter(cfg.App.Env, attendanceHandler, teacherHandler)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("EduTrack backend listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
