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

	cancelAppointmentHandler "github.com/m04kA/SMC-SalonCalendar/internal/api/handlers/cancel_appointment"
	checkSlotHandler "github.com/m04kA/SMC-SalonCalendar/internal/api/handlers/check_slot"
	confirmPaymentHandler "github.com/m04kA/SMC-SalonCalendar/internal/api/handlers/confirm_payment"
	createAppointmentHandler "github.com/m04kA/SMC-SalonCalendar/internal/api/handlers/create_appointment"
	createClientHandler "github.com/m04kA/SMC-SalonCalendar/internal/api/handlers/create_client"
	getAppointmentHandler "github.com/m04kA/SMC-SalonCalendar/internal/api/handlers/get_appointment"
	getCheckoutHandler "github.com/m04kA/SMC-SalonCalendar/internal/api/handlers/get_checkout"
	getDayCalendarHandler "github.com/m04kA/SMC-SalonCalendar/internal/api/handlers/get_day_calendar"
	getSaleHandler "github.com/m04kA/SMC-SalonCalendar/internal/api/handlers/get_sale"
	healthHandler "github.com/m04kA/SMC-SalonCalendar/internal/api/handlers/health"
	listClientAppointmentsHandler "github.com/m04kA/SMC-SalonCalendar/internal/api/handlers/list_client_appointments"
	listServicesHandler "github.com/m04kA/SMC-SalonCalendar/internal/api/handlers/list_services"
	listStaffHandler "github.com/m04kA/SMC-SalonCalendar/internal/api/handlers/list_staff"
	moveServiceHandler "github.com/m04kA/SMC-SalonCalendar/internal/api/handlers/move_service"
	salesLogHandler "github.com/m04kA/SMC-SalonCalendar/internal/api/handlers/sales_log"
	searchClientsHandler "github.com/m04kA/SMC-SalonCalendar/internal/api/handlers/search_clients"
	teamPerformanceHandler "github.com/m04kA/SMC-SalonCalendar/internal/api/handlers/team_performance"
	tipsReportHandler "github.com/m04kA/SMC-SalonCalendar/internal/api/handlers/tips_report"
	updateAppointmentHandler "github.com/m04kA/SMC-SalonCalendar/internal/api/handlers/update_appointment"
	"github.com/m04kA/SMC-SalonCalendar/internal/api/middleware"
	"github.com/m04kA/SMC-SalonCalendar/internal/config"
	"github.com/m04kA/SMC-SalonCalendar/internal/jobs"
	appointmentRepo "github.com/m04kA/SMC-SalonCalendar/internal/infra/storage/appointment"
	catalogRepo "github.com/m04kA/SMC-SalonCalendar/internal/infra/storage/catalog"
	clientRepo "github.com/m04kA/SMC-SalonCalendar/internal/infra/storage/client"
	saleRepo "github.com/m04kA/SMC-SalonCalendar/internal/infra/storage/sale"
	staffRepo "github.com/m04kA/SMC-SalonCalendar/internal/infra/storage/staff"
	"github.com/m04kA/SMC-SalonCalendar/internal/integrations/sms"
	"github.com/m04kA/SMC-SalonCalendar/internal/integrations/tablestore"
	appointmentsService "github.com/m04kA/SMC-SalonCalendar/internal/service/appointments"
	catalogService "github.com/m04kA/SMC-SalonCalendar/internal/service/catalog"
	clientsService "github.com/m04kA/SMC-SalonCalendar/internal/service/clients"
	reportsService "github.com/m04kA/SMC-SalonCalendar/internal/service/reports"
	confirmPaymentUC "github.com/m04kA/SMC-SalonCalendar/internal/usecase/confirm_payment"
	createAppointmentUC "github.com/m04kA/SMC-SalonCalendar/internal/usecase/create_appointment"
	getDayCalendarUC "github.com/m04kA/SMC-SalonCalendar/internal/usecase/get_day_calendar"
	moveServiceUC "github.com/m04kA/SMC-SalonCalendar/internal/usecase/move_service"
	updateAppointmentUC "github.com/m04kA/SMC-SalonCalendar/internal/usecase/update_appointment"
	"github.com/m04kA/SMC-SalonCalendar/pkg/asyncqueue"
	"github.com/m04kA/SMC-SalonCalendar/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonCalendar/pkg/logger"
	"github.com/m04kA/SMC-SalonCalendar/pkg/metrics"
	"github.com/m04kA/SMC-SalonCalendar/pkg/slotlock"
	"github.com/m04kA/SMC-SalonCalendar/pkg/txmanager"
)

const (
	// salonName подпись в SMS клиентам
	salonName = "Lushways Salon"

	jobRunTimeout = 5 * time.Minute
)

func main() {
	configPath := "config.toml"
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		configPath = p
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
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

	log.Info("Starting SMC-SalonCalendar...")
	log.Info("Configuration loaded from %s", configPath)

	location, err := cfg.Salon.TimeLocation()
	if err != nil {
		log.Fatal("Failed to load salon timezone: %v", err)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	// Без метрик collector = nil, обёртка только пробрасывает запросы
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	readiness := map[string]healthHandler.Pinger{"postgres": wrappedDB}

	// Блокировки расписания мастеров
	var locker slotlock.Locker = slotlock.NoopLocker{}
	if cfg.Redis.Enabled {
		rdb, err := slotlock.NewRedisClient(context.Background(), cfg.Redis.Addr, cfg.Redis.Username, cfg.Redis.Password)
		if err != nil {
			log.Fatal("Failed to connect to redis: %v", err)
		}
		defer rdb.Close()

		redisLocker := slotlock.NewRedisLocker(rdb, time.Duration(cfg.Redis.LockTTL)*time.Second)
		locker = redisLocker
		readiness["redis"] = redisLocker
		log.Info("Schedule locks via redis at %s (ttl=%ds)", cfg.Redis.Addr, cfg.Redis.LockTTL)
	} else {
		log.Warn("Redis disabled, schedule locks are no-op")
	}

	// Интеграции
	var mirror confirmPaymentUC.SaleMirror = tablestore.NoopMirror{}
	if cfg.TableStore.Enabled {
		tableClient, err := tablestore.NewClient(cfg.TableStore.URL, cfg.TableStore.Key, log)
		if err != nil {
			log.Fatal("Failed to initialize table store client: %v", err)
		}
		mirror = tablestore.NewMirror(tableClient, log)
		log.Info("Table store mirror enabled (%s)", cfg.TableStore.URL)
	}

	var smsSender createAppointmentUC.SMSSender = sms.NoopSender{}
	if cfg.SMS.Enabled {
		smsSender = sms.NewSender(cfg.SMS.AccountSID, cfg.SMS.AuthToken, cfg.SMS.FromNumber, log)
		log.Info("SMS notifications enabled (from=%s)", cfg.SMS.FromNumber)
	}

	// Очередь фоновых задач (зеркалирование, SMS)
	queue := asyncqueue.New(cfg.Queue.Capacity, time.Duration(cfg.Queue.JobTimeout)*time.Second, log)
	if metricsCollector != nil {
		queue = queue.WithDropObserver(metricsCollector)
	}

	// Инициализируем репозитории
	appointmentRepository := appointmentRepo.NewRepository(wrappedDB)
	catalogRepository := catalogRepo.NewRepository(wrappedDB)
	clientRepository := clientRepo.NewRepository(wrappedDB)
	saleRepository := saleRepo.NewRepository(wrappedDB)
	staffRepository := staffRepo.NewRepository(wrappedDB)

	salonClock := &getDayCalendarUC.RealTimeProvider{Location: location}

	// Инициализируем сервисы
	appointmentSvc := appointmentsService.NewService(appointmentRepository, &appointmentsService.RealTimeProvider{}, log)
	catalogSvc := catalogService.NewService(catalogRepository, staffRepository, log)
	clientSvc := clientsService.NewService(clientRepository, log)
	reportSvc := reportsService.NewService(saleRepository, appointmentRepository, staffRepository, log)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		catalogRepository,
		clientRepository,
		staffRepository,
		locker,
		txMgr,
		queue,
		smsSender,
		salonName,
		log,
	)

	updateAppointmentUseCase := updateAppointmentUC.NewUseCase(
		appointmentRepository,
		catalogRepository,
		clientRepository,
		staffRepository,
		locker,
		txMgr,
		log,
	)

	moveServiceUseCase := moveServiceUC.NewUseCase(
		appointmentRepository,
		staffRepository,
		locker,
		txMgr,
		log,
	)

	confirmPaymentUseCase := confirmPaymentUC.NewUseCase(
		appointmentRepository,
		saleRepository,
		mirror,
		txMgr,
		queue,
		cfg.Salon.BranchCode,
		cfg.Salon.LocationName,
		log,
	)

	getDayCalendarUseCase := getDayCalendarUC.NewUseCase(
		appointmentRepository,
		staffRepository,
		salonClock,
		log,
	)

	// Cron задачи
	var scheduler *jobs.Scheduler
	if cfg.Jobs.Enabled {
		scheduler = jobs.NewScheduler(location, jobRunTimeout, log)

		reminder := jobs.NewReminder(appointmentRepository, clientRepository, smsSender, salonName, salonClock, log)
		if err := scheduler.Add(cfg.Jobs.ReminderSchedule, reminder); err != nil {
			log.Fatal("Failed to schedule reminders: %v", err)
		}

		tipsExport := jobs.NewTipsExport(reportSvc, cfg.Jobs.ExportDir, salonClock, log)
		if err := scheduler.Add(cfg.Jobs.TipsExportSchedule, tipsExport); err != nil {
			log.Fatal("Failed to schedule tips export: %v", err)
		}

		scheduler.Start()
		log.Info("Scheduler started (timezone=%s)", cfg.Salon.Timezone)
	}

	// Инициализируем handlers
	listStaff := listStaffHandler.NewHandler(catalogSvc, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	searchClients := searchClientsHandler.NewHandler(clientSvc, log)
	createClient := createClientHandler.NewHandler(clientSvc, log)
	listClientAppointments := listClientAppointmentsHandler.NewHandler(appointmentSvc, log)
	getDayCalendar := getDayCalendarHandler.NewHandler(getDayCalendarUseCase, log)
	checkSlot := checkSlotHandler.NewHandler(appointmentSvc, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	updateAppointment := updateAppointmentHandler.NewHandler(updateAppointmentUseCase, log)
	moveService := moveServiceHandler.NewHandler(moveServiceUseCase, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentSvc, log)
	getCheckout := getCheckoutHandler.NewHandler(appointmentSvc, log)
	confirmPayment := confirmPaymentHandler.NewHandler(confirmPaymentUseCase, log)
	getSale := getSaleHandler.NewHandler(reportSvc, log)
	salesLog := salesLogHandler.NewHandler(reportSvc, log)
	tipsReport := tipsReportHandler.NewHandler(reportSvc, log)
	teamPerformance := teamPerformanceHandler.NewHandler(reportSvc, log)
	health := healthHandler.NewHandler(readiness)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health/live", health.Live).Methods(http.MethodGet)
	r.HandleFunc("/health/ready", health.Ready).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// READ ROUTES
	// ============================================================

	api.HandleFunc("/staff", listStaff.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/clients", searchClients.Handle).Methods(http.MethodGet)
	api.HandleFunc("/clients/{clientId:[0-9]+}/appointments", listClientAppointments.Handle).Methods(http.MethodGet)

	// --- Календарь ---
	api.HandleFunc("/calendar", getDayCalendar.Handle).Methods(http.MethodGet)
	api.HandleFunc("/calendar/slots/booked", checkSlot.Handle).Methods(http.MethodGet)

	// --- Записи ---
	api.HandleFunc("/appointments/{appointmentId:[0-9]+}", getAppointment.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{appointmentId:[0-9]+}/checkout", getCheckout.Handle).Methods(http.MethodGet)

	// --- Отчеты ---
	api.HandleFunc("/sales/{paymentRef}", getSale.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reports/sales-log", salesLog.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reports/sales-log/export", salesLog.HandleExport).Methods(http.MethodGet)
	tipsReport.Register(api)
	api.HandleFunc("/reports/team-performance", teamPerformance.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/clients", createClient.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{appointmentId:[0-9]+}", updateAppointment.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/appointments/{appointmentId:[0-9]+}/services/{serviceId}/move",
		moveService.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/{appointmentId:[0-9]+}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/{appointmentId:[0-9]+}/payment", confirmPayment.Handle).Methods(http.MethodPost)

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

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	if scheduler != nil {
		if err := scheduler.Stop(shutdownCtx); err != nil {
			log.Error("Scheduler did not stop in time: %v", err)
		}
	}

	// Дожидаемся фоновых задач, поставленных до остановки сервера
	if err := queue.Close(shutdownCtx); err != nil {
		log.Error("Background queue not drained: %v", err)
	}

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	log.Info("Server stopped gracefully")
}
