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

	cancelBookingHandler "github.com/m04kA/SMC-DiveTripService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-DiveTripService/internal/api/handlers/create_booking"
	createTripHandler "github.com/m04kA/SMC-DiveTripService/internal/api/handlers/create_trip"
	getBookingHandler "github.com/m04kA/SMC-DiveTripService/internal/api/handlers/get_booking"
	getDiverBookingsHandler "github.com/m04kA/SMC-DiveTripService/internal/api/handlers/get_diver_bookings"
	getTripAvailabilityHandler "github.com/m04kA/SMC-DiveTripService/internal/api/handlers/get_trip_availability"
	listAssignmentsHandler "github.com/m04kA/SMC-DiveTripService/internal/api/handlers/list_assignments"
	recordWaiverHandler "github.com/m04kA/SMC-DiveTripService/internal/api/handlers/record_waiver"
	releaseAssignmentsHandler "github.com/m04kA/SMC-DiveTripService/internal/api/handlers/release_assignments"
	reserveAssignmentsHandler "github.com/m04kA/SMC-DiveTripService/internal/api/handlers/reserve_assignments"
	updatePaymentStatusHandler "github.com/m04kA/SMC-DiveTripService/internal/api/handlers/update_payment_status"
	"github.com/m04kA/SMC-DiveTripService/internal/api/middleware"
	"github.com/m04kA/SMC-DiveTripService/internal/config"
	"github.com/m04kA/SMC-DiveTripService/internal/events"
	rabbitPublisher "github.com/m04kA/SMC-DiveTripService/internal/infra/events/rabbitmq"
	assignmentRepo "github.com/m04kA/SMC-DiveTripService/internal/infra/storage/assignment"
	bookingRepo "github.com/m04kA/SMC-DiveTripService/internal/infra/storage/booking"
	tripRepo "github.com/m04kA/SMC-DiveTripService/internal/infra/storage/trip"
	waiverRepo "github.com/m04kA/SMC-DiveTripService/internal/infra/storage/waiver"
	assignmentsService "github.com/m04kA/SMC-DiveTripService/internal/service/assignments"
	bookingsService "github.com/m04kA/SMC-DiveTripService/internal/service/bookings"
	tripsService "github.com/m04kA/SMC-DiveTripService/internal/service/trips"
	waiversService "github.com/m04kA/SMC-DiveTripService/internal/service/waivers"
	cancelBookingUC "github.com/m04kA/SMC-DiveTripService/internal/usecase/cancel_booking"
	createBookingUC "github.com/m04kA/SMC-DiveTripService/internal/usecase/create_booking"
	getTripAvailabilityUC "github.com/m04kA/SMC-DiveTripService/internal/usecase/get_trip_availability"
	releaseAssignmentsUC "github.com/m04kA/SMC-DiveTripService/internal/usecase/release_assignments"
	reserveAssignmentsUC "github.com/m04kA/SMC-DiveTripService/internal/usecase/reserve_assignments"
	"github.com/m04kA/SMC-DiveTripService/pkg/dbmetrics"
	"github.com/m04kA/SMC-DiveTripService/pkg/logger"
	"github.com/m04kA/SMC-DiveTripService/pkg/metrics"
	"github.com/m04kA/SMC-DiveTripService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-DiveTripService/pkg/txmanager"
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

	log.Info("Starting SMC-DiveTripService...")
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

	// Инициализируем publisher событий
	var publisher events.Publisher
	if cfg.Events.Enabled {
		rabbit, err := rabbitPublisher.NewPublisher(cfg.Events.URL, log)
		if err != nil {
			log.Fatal("Failed to connect to RabbitMQ: %v", err)
		}
		defer rabbit.Close()
		publisher = rabbit
		log.Info("Event publishing enabled (RabbitMQ)")
	} else {
		publisher = events.NopPublisher{}
		log.Info("Event publishing disabled")
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		tripRepository       *tripRepo.Repository
		assignmentRepository *assignmentRepo.Repository
		waiverRepository     *waiverRepo.Repository
		bookingRepository    *bookingRepo.Repository
	)

	// Интерфейс transaction manager, общий для usecase и сервисов
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
		DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		tripRepository = tripRepo.NewRepository(wrappedDB)
		assignmentRepository = assignmentRepo.NewRepository(wrappedDB)
		waiverRepository = waiverRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		tripRepository = tripRepo.NewRepository(db)
		assignmentRepository = assignmentRepo.NewRepository(db)
		waiverRepository = waiverRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	lockWait := time.Duration(cfg.Reservation.LockWaitSeconds) * time.Second

	// Инициализируем сервисы
	timeProvider := &reserveAssignmentsUC.RealTimeProvider{}
	bookingSvc := bookingsService.NewService(bookingRepository, txMgr, publisher, log)
	waiverSvc := waiversService.NewService(waiverRepository, timeProvider, log)
	assignmentSvc := assignmentsService.NewService(assignmentRepository, tripRepository, log)
	tripSvc := tripsService.NewService(tripRepository, timeProvider, log)

	// Инициализируем use cases
	reserveAssignmentsUseCase := reserveAssignmentsUC.NewUseCase(
		tripRepository,
		assignmentRepository,
		waiverRepository,
		txMgr,
		publisher,
		lockWait,
		log,
	)

	releaseAssignmentsUseCase := releaseAssignmentsUC.NewUseCase(
		tripRepository,
		assignmentRepository,
		txMgr,
		publisher,
		lockWait,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		reserveAssignmentsUseCase,
		releaseAssignmentsUseCase,
		publisher,
		log,
	)

	cancelBookingUseCase := cancelBookingUC.NewUseCase(
		bookingRepository,
		tripRepository,
		assignmentRepository,
		txMgr,
		publisher,
		lockWait,
		log,
	)

	getTripAvailabilityUseCase := getTripAvailabilityUC.NewUseCase(
		tripRepository,
		assignmentRepository,
		log,
	)

	// Инициализируем handlers
	createTrip := createTripHandler.NewHandler(tripSvc, log)
	getTripAvailability := getTripAvailabilityHandler.NewHandler(getTripAvailabilityUseCase, log)
	listAssignments := listAssignmentsHandler.NewHandler(assignmentSvc, log)
	reserveAssignments := reserveAssignmentsHandler.NewHandler(reserveAssignmentsUseCase, log)
	releaseAssignments := releaseAssignmentsHandler.NewHandler(releaseAssignmentsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(cancelBookingUseCase, log)
	updatePaymentStatus := updatePaymentStatusHandler.NewHandler(bookingSvc, log)
	getDiverBookings := getDiverBookingsHandler.NewHandler(bookingSvc, log)
	recordWaiver := recordWaiverHandler.NewHandler(waiverSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Доступность поездки: вместимость и свободные места
	api.HandleFunc("/trips/{tripId}/availability", getTripAvailability.Handle).Methods(http.MethodGet)

	// Активные назначения поездки
	api.HandleFunc("/trips/{tripId}/assignments", listAssignments.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Поездки ---
	protected.HandleFunc("/trips", createTrip.Handle).Methods(http.MethodPost)

	// --- Назначения мест ---
	protected.HandleFunc("/trips/{tripId}/assignments", reserveAssignments.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/trips/{tripId}/assignments/release", releaseAssignments.Handle).Methods(http.MethodPost)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/payment", updatePaymentStatus.Handle).Methods(http.MethodPatch)

	// --- Дайверы ---
	protected.HandleFunc("/divers/{diverId}/bookings", getDiverBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/divers/{diverId}/waivers", recordWaiver.Handle).Methods(http.MethodPost)

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
