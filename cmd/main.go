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

	blockVehicleHandler "github.com/carhive/FleetTimeline-Service/internal/api/handlers/block_vehicle"
	cancelBookingHandler "github.com/carhive/FleetTimeline-Service/internal/api/handlers/cancel_booking"
	checkAvailabilityHandler "github.com/carhive/FleetTimeline-Service/internal/api/handlers/check_availability"
	completeMaintenanceHandler "github.com/carhive/FleetTimeline-Service/internal/api/handlers/complete_maintenance"
	createBookingHandler "github.com/carhive/FleetTimeline-Service/internal/api/handlers/create_booking"
	createVehicleHandler "github.com/carhive/FleetTimeline-Service/internal/api/handlers/create_vehicle"
	deleteIncidentHandler "github.com/carhive/FleetTimeline-Service/internal/api/handlers/delete_incident"
	deleteVehicleHandler "github.com/carhive/FleetTimeline-Service/internal/api/handlers/delete_vehicle"
	followupIncidentHandler "github.com/carhive/FleetTimeline-Service/internal/api/handlers/followup_incident"
	getBlockedPeriodsHandler "github.com/carhive/FleetTimeline-Service/internal/api/handlers/get_blocked_periods"
	getBookingHandler "github.com/carhive/FleetTimeline-Service/internal/api/handlers/get_booking"
	getFleetAvailabilityHandler "github.com/carhive/FleetTimeline-Service/internal/api/handlers/get_fleet_availability"
	getStatsHandler "github.com/carhive/FleetTimeline-Service/internal/api/handlers/get_stats"
	getVehicleHandler "github.com/carhive/FleetTimeline-Service/internal/api/handlers/get_vehicle"
	getVehicleIncidentsHandler "github.com/carhive/FleetTimeline-Service/internal/api/handlers/get_vehicle_incidents"
	getVehicleMaintenanceHandler "github.com/carhive/FleetTimeline-Service/internal/api/handlers/get_vehicle_maintenance"
	getVehicleStatusHandler "github.com/carhive/FleetTimeline-Service/internal/api/handlers/get_vehicle_status"
	listBookingsHandler "github.com/carhive/FleetTimeline-Service/internal/api/handlers/list_bookings"
	listVehiclesHandler "github.com/carhive/FleetTimeline-Service/internal/api/handlers/list_vehicles"
	reportIncidentHandler "github.com/carhive/FleetTimeline-Service/internal/api/handlers/report_incident"
	scheduleMaintenanceHandler "github.com/carhive/FleetTimeline-Service/internal/api/handlers/schedule_maintenance"
	unblockPeriodHandler "github.com/carhive/FleetTimeline-Service/internal/api/handlers/unblock_period"
	unblockVehicleHandler "github.com/carhive/FleetTimeline-Service/internal/api/handlers/unblock_vehicle"
	updateBookingHandler "github.com/carhive/FleetTimeline-Service/internal/api/handlers/update_booking"
	updateVehicleHandler "github.com/carhive/FleetTimeline-Service/internal/api/handlers/update_vehicle"
	"github.com/carhive/FleetTimeline-Service/internal/api/middleware"
	"github.com/carhive/FleetTimeline-Service/internal/config"
	incidentRepo "github.com/carhive/FleetTimeline-Service/internal/infra/storage/incident"
	intervalRepo "github.com/carhive/FleetTimeline-Service/internal/infra/storage/interval"
	vehicleRepo "github.com/carhive/FleetTimeline-Service/internal/infra/storage/vehicle"
	availabilityService "github.com/carhive/FleetTimeline-Service/internal/service/availability"
	fleetService "github.com/carhive/FleetTimeline-Service/internal/service/fleet"
	incidentsService "github.com/carhive/FleetTimeline-Service/internal/service/incidents"
	timelineService "github.com/carhive/FleetTimeline-Service/internal/service/timeline"
	placeIntervalUC "github.com/carhive/FleetTimeline-Service/internal/usecase/place_interval"
	rescheduleIntervalUC "github.com/carhive/FleetTimeline-Service/internal/usecase/reschedule_interval"
	"github.com/carhive/FleetTimeline-Service/pkg/dbmetrics"
	"github.com/carhive/FleetTimeline-Service/pkg/logger"
	"github.com/carhive/FleetTimeline-Service/pkg/metrics"
	"github.com/carhive/FleetTimeline-Service/pkg/simpletxmanager"
	"github.com/carhive/FleetTimeline-Service/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting FleetTimeline-Service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем репозитории (с метриками или без)
	var (
		intervalRepository *intervalRepo.Repository
		vehicleRepository  *vehicleRepo.Repository
		incidentRepository *incidentRepo.Repository
	)

	// Интерфейс transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")

		intervalRepository = intervalRepo.NewRepository(wrappedDB)
		vehicleRepository = vehicleRepo.NewRepository(wrappedDB)
		incidentRepository = incidentRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		intervalRepository = intervalRepo.NewRepository(db)
		vehicleRepository = vehicleRepo.NewRepository(db)
		incidentRepository = incidentRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	timelineSvc := timelineService.NewService(intervalRepository, vehicleRepository, log)
	availabilitySvc := availabilityService.NewService(intervalRepository, vehicleRepository, log)
	fleetSvc := fleetService.NewService(vehicleRepository, intervalRepository, log)
	incidentsSvc := incidentsService.NewService(incidentRepository, vehicleRepository, log)

	// Инициализируем use cases
	placeIntervalUseCase := placeIntervalUC.NewUseCase(
		intervalRepository,
		vehicleRepository,
		txMgr,
		log,
	)

	rescheduleIntervalUseCase := rescheduleIntervalUC.NewUseCase(
		intervalRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	createVehicle := createVehicleHandler.NewHandler(fleetSvc, log)
	getVehicle := getVehicleHandler.NewHandler(fleetSvc, log)
	listVehicles := listVehiclesHandler.NewHandler(fleetSvc, log)
	updateVehicle := updateVehicleHandler.NewHandler(fleetSvc, log)
	deleteVehicle := deleteVehicleHandler.NewHandler(fleetSvc, log)

	createBooking := createBookingHandler.NewHandler(placeIntervalUseCase, log)
	listBookings := listBookingsHandler.NewHandler(timelineSvc, log)
	getBooking := getBookingHandler.NewHandler(timelineSvc, log)
	updateBooking := updateBookingHandler.NewHandler(rescheduleIntervalUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(timelineSvc, log)

	scheduleMaintenance := scheduleMaintenanceHandler.NewHandler(placeIntervalUseCase, log)
	getVehicleMaintenance := getVehicleMaintenanceHandler.NewHandler(timelineSvc, log)
	completeMaintenance := completeMaintenanceHandler.NewHandler(timelineSvc, log)

	getStats := getStatsHandler.NewHandler(availabilitySvc, log)
	getFleetAvailability := getFleetAvailabilityHandler.NewHandler(availabilitySvc, log)
	getVehicleStatus := getVehicleStatusHandler.NewHandler(availabilitySvc, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(availabilitySvc, log)
	getBlockedPeriods := getBlockedPeriodsHandler.NewHandler(timelineSvc, log)
	blockVehicle := blockVehicleHandler.NewHandler(placeIntervalUseCase, log)
	unblockPeriod := unblockPeriodHandler.NewHandler(timelineSvc, log)
	unblockVehicle := unblockVehicleHandler.NewHandler(timelineSvc, log)

	reportIncident := reportIncidentHandler.NewHandler(incidentsSvc, log)
	getVehicleIncidents := getVehicleIncidentsHandler.NewHandler(incidentsSvc, log)
	followupIncident := followupIncidentHandler.NewHandler(incidentsSvc, log)
	deleteIncident := deleteIncidentHandler.NewHandler(incidentsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api").Subrouter()

	// --- Автопарк ---
	api.HandleFunc("/vehicles", listVehicles.Handle).Methods(http.MethodGet)
	api.HandleFunc("/vehicles", createVehicle.Handle).Methods(http.MethodPost)
	api.HandleFunc("/vehicles/{vehicleId}", getVehicle.Handle).Methods(http.MethodGet)
	api.HandleFunc("/vehicles/{vehicleId}", updateVehicle.Handle).Methods(http.MethodPut)
	api.HandleFunc("/vehicles/{vehicleId}", deleteVehicle.Handle).Methods(http.MethodDelete)

	// --- Бронирования ---
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPut)
	api.HandleFunc("/bookings/{bookingId}", cancelBooking.Handle).Methods(http.MethodDelete)

	// --- Обслуживание ---
	api.HandleFunc("/maintenance", scheduleMaintenance.Handle).Methods(http.MethodPost)
	api.HandleFunc("/maintenance/car/{carId}", getVehicleMaintenance.Handle).Methods(http.MethodGet)
	api.HandleFunc("/maintenance/{maintenanceId}", completeMaintenance.Handle).Methods(http.MethodDelete)

	// --- Доступность ---
	api.HandleFunc("/availability/stats", getStats.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability/vehicles", getFleetAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability/vehicles/{vehicleId}", getVehicleStatus.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability/check-availability", checkAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability/blocked-periods", getBlockedPeriods.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability/block", blockVehicle.Handle).Methods(http.MethodPost)
	api.HandleFunc("/availability/unblock/period/{blockId}", unblockPeriod.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/availability/unblock/vehicle/{vehicleId}", unblockVehicle.Handle).Methods(http.MethodDelete)

	// --- Инциденты ---
	api.HandleFunc("/incidents", reportIncident.Handle).Methods(http.MethodPost)
	api.HandleFunc("/incidents/vehicle/{vehicleId}", getVehicleIncidents.Handle).Methods(http.MethodGet)
	api.HandleFunc("/incidents/{incidentId}/followup", followupIncident.Handle).Methods(http.MethodPut)
	api.HandleFunc("/incidents/{incidentId}", deleteIncident.Handle).Methods(http.MethodDelete)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
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
