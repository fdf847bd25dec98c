package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelAppointmentHandler "github.com/brightshine-detailing/scheduler-service/internal/api/handlers/cancel_appointment"
	checkScheduleHandler "github.com/brightshine-detailing/scheduler-service/internal/api/handlers/check_schedule"
	clientsHandler "github.com/brightshine-detailing/scheduler-service/internal/api/handlers/clients"
	createAppointmentHandler "github.com/brightshine-detailing/scheduler-service/internal/api/handlers/create_appointment"
	findAvailableSlotsHandler "github.com/brightshine-detailing/scheduler-service/internal/api/handlers/find_available_slots"
	getAppointmentHandler "github.com/brightshine-detailing/scheduler-service/internal/api/handlers/get_appointment"
	listAppointmentsHandler "github.com/brightshine-detailing/scheduler-service/internal/api/handlers/list_appointments"
	servicesHandler "github.com/brightshine-detailing/scheduler-service/internal/api/handlers/services"
	updateAppointmentStatusHandler "github.com/brightshine-detailing/scheduler-service/internal/api/handlers/update_appointment_status"
	vehiclesHandler "github.com/brightshine-detailing/scheduler-service/internal/api/handlers/vehicles"
	"github.com/brightshine-detailing/scheduler-service/internal/api/middleware"
	"github.com/brightshine-detailing/scheduler-service/internal/config"
	appointmentRepo "github.com/brightshine-detailing/scheduler-service/internal/infra/storage/appointment"
	clientRepo "github.com/brightshine-detailing/scheduler-service/internal/infra/storage/client"
	serviceRepo "github.com/brightshine-detailing/scheduler-service/internal/infra/storage/service"
	vehicleRepo "github.com/brightshine-detailing/scheduler-service/internal/infra/storage/vehicle"
	appointmentsService "github.com/brightshine-detailing/scheduler-service/internal/service/appointments"
	catalogService "github.com/brightshine-detailing/scheduler-service/internal/service/catalog"
	checkScheduleUC "github.com/brightshine-detailing/scheduler-service/internal/usecase/check_schedule"
	createAppointmentUC "github.com/brightshine-detailing/scheduler-service/internal/usecase/create_appointment"
	findAvailableSlotsUC "github.com/brightshine-detailing/scheduler-service/internal/usecase/find_available_slots"
	"github.com/brightshine-detailing/scheduler-service/pkg/dbmetrics"
	"github.com/brightshine-detailing/scheduler-service/pkg/logger"
	"github.com/brightshine-detailing/scheduler-service/pkg/metrics"
	"github.com/brightshine-detailing/scheduler-service/pkg/simpletxmanager"
	"github.com/brightshine-detailing/scheduler-service/pkg/txmanager"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting scheduler-service...")

	settings, err := cfg.Business.ToBusinessSettings()
	if err != nil {
		log.Fatal("Invalid business settings: %v", err)
	}
	log.Info("Business calendar loaded: %s-%s, %d working days, horizon %d days",
		settings.WorkingHours.Start, settings.WorkingHours.End,
		len(settings.WorkingDays), settings.AdvanceBookingDays)

	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	var (
		appointmentRepository *appointmentRepo.Repository
		serviceRepository     *serviceRepo.Repository
		vehicleRepository     *vehicleRepo.Repository
		clientRepository      *clientRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		serviceRepository = serviceRepo.NewRepository(wrappedDB)
		vehicleRepository = vehicleRepo.NewRepository(wrappedDB)
		clientRepository = clientRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		serviceRepository = serviceRepo.NewRepository(db)
		vehicleRepository = vehicleRepo.NewRepository(db)
		clientRepository = clientRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	appointmentSvc := appointmentsService.NewService(appointmentRepository, log)
	catalogSvc := catalogService.NewService(serviceRepository, vehicleRepository, clientRepository, log)

	findAvailableSlotsUseCase := findAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		serviceRepository,
		vehicleRepository,
		settings,
		log,
	)
	checkScheduleUseCase := checkScheduleUC.NewUseCase(
		appointmentRepository,
		serviceRepository,
		vehicleRepository,
		settings,
		log,
	)
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		serviceRepository,
		vehicleRepository,
		clientRepository,
		txMgr,
		settings,
		log,
	)

	findAvailableSlots := findAvailableSlotsHandler.NewHandler(findAvailableSlotsUseCase, log)
	checkSchedule := checkScheduleHandler.NewHandler(checkScheduleUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentSvc, log)
	services := servicesHandler.NewHandler(catalogSvc, log)
	vehicles := vehiclesHandler.NewHandler(catalogSvc, log)
	clients := clientsHandler.NewHandler(catalogSvc, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Availability queries and the catalog are public so the booking widget
	// can call them before the client signs in.
	api.HandleFunc("/availability/slots", findAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability/check", checkSchedule.Handle).Methods(http.MethodPost)
	api.HandleFunc("/services", services.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/services/{serviceId}", services.HandleGet).Methods(http.MethodGet)

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}/status", updateAppointmentStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)

	protected.HandleFunc("/services", services.HandleCreate).Methods(http.MethodPost)
	protected.HandleFunc("/services/{serviceId}", services.HandleUpdate).Methods(http.MethodPut)
	protected.HandleFunc("/services/{serviceId}", services.HandleDelete).Methods(http.MethodDelete)

	protected.HandleFunc("/vehicles", vehicles.HandleCreate).Methods(http.MethodPost)
	protected.HandleFunc("/vehicles", vehicles.HandleList).Methods(http.MethodGet)
	protected.HandleFunc("/vehicles/{vehicleId}", vehicles.HandleGet).Methods(http.MethodGet)
	protected.HandleFunc("/vehicles/{vehicleId}", vehicles.HandleDelete).Methods(http.MethodDelete)

	protected.HandleFunc("/clients", clients.HandleCreate).Methods(http.MethodPost)
	protected.HandleFunc("/clients", clients.HandleList).Methods(http.MethodGet)
	protected.HandleFunc("/clients/{clientId}", clients.HandleGet).Methods(http.MethodGet)
	protected.HandleFunc("/clients/{clientId}", clients.HandleDelete).Methods(http.MethodDelete)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
