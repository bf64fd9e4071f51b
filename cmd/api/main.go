package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/newrest-ops/attendance-backend-go/internal/config"
	appHTTP "github.com/newrest-ops/attendance-backend-go/internal/handler/http"
	"github.com/newrest-ops/attendance-backend-go/internal/pkg/clock"
	"github.com/newrest-ops/attendance-backend-go/internal/pkg/geo"
	"github.com/newrest-ops/attendance-backend-go/internal/repository/sheets"
	attendanceService "github.com/newrest-ops/attendance-backend-go/internal/service/attendance"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	officeLocation, err := time.LoadLocation(cfg.Office.Timezone)
	if err != nil {
		fmt.Println("Error loading office timezone:", err)
		return
	}

	sheetsClient, err := sheets.NewClient(context.Background(), sheets.Config{
		SpreadsheetID:      cfg.Sheets.SpreadsheetID,
		ServiceAccountPath: cfg.Sheets.ServiceAccountPath,
		ServiceAccountJSON: cfg.Sheets.ServiceAccountJSON,
		RequestsPerMinute:  cfg.Sheets.RequestsPerMinute,
	})
	if err != nil {
		fmt.Println("Error connecting to Google Sheets:", err)
		return
	}

	workerRepo := sheets.NewWorkerRepository(sheetsClient)
	attendanceStore := sheets.NewAttendanceStore(sheetsClient)

	geofence := geo.NewValidator(geo.Coordinate{
		Latitude:  cfg.Office.Latitude,
		Longitude: cfg.Office.Longitude,
	}, cfg.Office.RadiusMeters)

	attendanceSvc := attendanceService.NewAttendanceService(
		workerRepo,
		attendanceStore,
		geofence,
		attendanceService.NewPendingTracker(),
		clock.New(officeLocation),
	)

	tokenAuth := jwtauth.New("HS256", []byte(cfg.Auth.JWTSecret), nil)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)

	router := appHTTP.NewRouter(tokenAuth, attendanceHandler, cfg.App.Env)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
