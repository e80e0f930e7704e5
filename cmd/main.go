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

	cancelAppointmentHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/cancel_appointment"
	checkAvailabilityHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/check_availability"
	createAppointmentHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/create_appointment"
	getAppointmentHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_appointment"
	listUpcomingHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/list_upcoming"
	nextAvailableHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/next_available"
	rescheduleAppointmentHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/reschedule_appointment"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/SMC-AvailabilityService/internal/config"
	appointmentRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/appointment"
	googleCalendarClient "github.com/m04kA/SMC-AvailabilityService/internal/integrations/googlecalendar"
	appointmentsService "github.com/m04kA/SMC-AvailabilityService/internal/service/appointments"
	checkAvailabilityUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/check_availability"
	createAppointmentUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/create_appointment"
	nextAvailableUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/next_available"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
	"github.com/m04kA/SMC-AvailabilityService/pkg/metrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-AvailabilityService/pkg/txmanager"
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

	log.Info("Starting SMC-AvailabilityService...")
	log.Info("Configuration loaded from config.toml (calendar provider: %s)", cfg.Calendar.Provider)

	// Политики расписания собираются один раз при старте
	workingHours, err := cfg.WorkingHoursPolicy()
	if err != nil {
		log.Fatal("Invalid working hours config: %v", err)
	}
	slotPolicy := cfg.SlotPolicy()
	windows, err := cfg.PreferenceWindows()
	if err != nil {
		log.Fatal("Invalid preference windows config: %v", err)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Сборка зависит от провайдера календаря: Google Calendar API
	// или локальная таблица записей в PostgreSQL
	var (
		checkUC   *checkAvailabilityUC.UseCase
		nextUC    *nextAvailableUC.UseCase
		createUC  *createAppointmentUC.UseCase
		apptSvc   *appointmentsService.Service
		dbToClose *sql.DB
	)

	switch cfg.Calendar.Provider {
	case config.ProviderGoogle:
		client, err := googleCalendarClient.NewClient(
			context.Background(),
			cfg.Calendar.CredentialsPath,
			cfg.Calendar.CalendarID,
			time.Duration(cfg.Calendar.TimeoutSeconds)*time.Second,
			log,
			metricsObserver(metricsCollector),
		)
		if err != nil {
			log.Fatal("Failed to initialize Google Calendar client: %v", err)
		}
		log.Info("Google Calendar client initialized (calendar=%s, timeout=%ds)",
			cfg.Calendar.CalendarID, cfg.Calendar.TimeoutSeconds)

		checkUC = checkAvailabilityUC.NewUseCase(client, workingHours, slotPolicy, windows, log)
		nextUC = nextAvailableUC.NewUseCase(client, workingHours, slotPolicy, windows, cfg.Search.HorizonDays, log)
		// Google Calendar не поддерживает транзакции - создание идет без них
		createUC = createAppointmentUC.NewUseCase(client, client, workingHours, slotPolicy, nil, log)
		apptSvc = appointmentsService.NewService(client, client, workingHours, slotPolicy, log)

	case config.ProviderLocal:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		dbToClose = db

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

		var (
			repository *appointmentRepo.Repository
			txMgr      createAppointmentUC.TransactionManager
		)

		if cfg.Metrics.Enabled {
			wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
			log.Info("Database metrics collection started")
			repository = appointmentRepo.NewRepository(wrappedDB)
			txMgr = txmanager.NewTransactionManager(wrappedDB)
		} else {
			repository = appointmentRepo.NewRepository(db)
			txMgr = simpletxmanager.NewTransactionManager(db)
		}

		checkUC = checkAvailabilityUC.NewUseCase(repository, workingHours, slotPolicy, windows, log)
		nextUC = nextAvailableUC.NewUseCase(repository, workingHours, slotPolicy, windows, cfg.Search.HorizonDays, log)
		createUC = createAppointmentUC.NewUseCase(repository, repository, workingHours, slotPolicy, txMgr, log)
		apptSvc = appointmentsService.NewService(repository, repository, workingHours, slotPolicy, log)

	default:
		log.Fatal("Unknown calendar provider: %s", cfg.Calendar.Provider)
	}

	if dbToClose != nil {
		defer dbToClose.Close()
	}

	// Инициализируем handlers
	checkAvailability := checkAvailabilityHandler.NewHandler(checkUC, log)
	nextAvailable := nextAvailableHandler.NewHandler(nextUC, log)
	createAppointment := createAppointmentHandler.NewHandler(createUC, log)
	getAppointment := getAppointmentHandler.NewHandler(apptSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(apptSvc, log)
	rescheduleAppointment := rescheduleAppointmentHandler.NewHandler(apptSvc, log)
	listUpcoming := listUpcomingHandler.NewHandler(apptSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Свободные слоты в периоде
	api.HandleFunc("/availability", checkAvailability.Handle).Methods(http.MethodGet)

	// Ближайшие свободные слоты
	api.HandleFunc("/availability/next", nextAvailable.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Session-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Создание записи
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Предстоящие записи (регистрируется раньше /{eventId})
	protected.HandleFunc("/appointments/upcoming", listUpcoming.Handle).Methods(http.MethodGet)

	// Получение записи по идентификатору события
	protected.HandleFunc("/appointments/{eventId}", getAppointment.Handle).Methods(http.MethodGet)

	// Отмена записи
	protected.HandleFunc("/appointments/{eventId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)

	// Перенос записи
	protected.HandleFunc("/appointments/{eventId}/reschedule", rescheduleAppointment.Handle).Methods(http.MethodPatch)

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

// metricsObserver возвращает nil-интерфейс, когда метрики выключены.
// Типизированный nil *metrics.Metrics в интерфейсе не считался бы nil
// при проверке внутри клиента.
func metricsObserver(m *metrics.Metrics) googleCalendarClient.MetricsObserver {
	if m == nil {
		return nil
	}
	return m
}
