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

	applyPricingTemplateHandler "github.com/turfhq/turf-admin-service/internal/api/handlers/apply_pricing_template"
	cancelBookingHandler "github.com/turfhq/turf-admin-service/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/turfhq/turf-admin-service/internal/api/handlers/create_booking"
	createCustomerHandler "github.com/turfhq/turf-admin-service/internal/api/handlers/create_customer"
	createPricingRuleHandler "github.com/turfhq/turf-admin-service/internal/api/handlers/create_pricing_rule"
	deleteFieldSlotsHandler "github.com/turfhq/turf-admin-service/internal/api/handlers/delete_field_slots"
	deletePricingRuleHandler "github.com/turfhq/turf-admin-service/internal/api/handlers/delete_pricing_rule"
	generateSlotsHandler "github.com/turfhq/turf-admin-service/internal/api/handlers/generate_slots"
	getBookingHandler "github.com/turfhq/turf-admin-service/internal/api/handlers/get_booking"
	getBookingsHandler "github.com/turfhq/turf-admin-service/internal/api/handlers/get_bookings"
	getCustomersHandler "github.com/turfhq/turf-admin-service/internal/api/handlers/get_customers"
	getFieldSlotsHandler "github.com/turfhq/turf-admin-service/internal/api/handlers/get_field_slots"
	getFieldsHandler "github.com/turfhq/turf-admin-service/internal/api/handlers/get_fields"
	getPricingPreviewHandler "github.com/turfhq/turf-admin-service/internal/api/handlers/get_pricing_preview"
	getPricingRulesHandler "github.com/turfhq/turf-admin-service/internal/api/handlers/get_pricing_rules"
	updateBookingStatusHandler "github.com/turfhq/turf-admin-service/internal/api/handlers/update_booking_status"
	updatePricingRuleHandler "github.com/turfhq/turf-admin-service/internal/api/handlers/update_pricing_rule"
	updateSlotStatusHandler "github.com/turfhq/turf-admin-service/internal/api/handlers/update_slot_status"
	"github.com/turfhq/turf-admin-service/internal/api/middleware"
	"github.com/turfhq/turf-admin-service/internal/config"
	bookingRepo "github.com/turfhq/turf-admin-service/internal/infra/storage/booking"
	customerRepo "github.com/turfhq/turf-admin-service/internal/infra/storage/customer"
	pricingRepo "github.com/turfhq/turf-admin-service/internal/infra/storage/pricing"
	slotRepo "github.com/turfhq/turf-admin-service/internal/infra/storage/slot"
	fieldServiceClient "github.com/turfhq/turf-admin-service/internal/integrations/fieldservice"
	bookingsService "github.com/turfhq/turf-admin-service/internal/service/bookings"
	customersService "github.com/turfhq/turf-admin-service/internal/service/customers"
	pricingService "github.com/turfhq/turf-admin-service/internal/service/pricing"
	slotsService "github.com/turfhq/turf-admin-service/internal/service/slots"
	createBookingUC "github.com/turfhq/turf-admin-service/internal/usecase/create_booking"
	generateSlotsUC "github.com/turfhq/turf-admin-service/internal/usecase/generate_slots"
	getPricingPreviewUC "github.com/turfhq/turf-admin-service/internal/usecase/get_pricing_preview"
	"github.com/turfhq/turf-admin-service/pkg/dbmetrics"
	"github.com/turfhq/turf-admin-service/pkg/logger"
	"github.com/turfhq/turf-admin-service/pkg/metrics"
	"github.com/turfhq/turf-admin-service/pkg/simpletxmanager"
	"github.com/turfhq/turf-admin-service/pkg/txmanager"
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

	log.Info("Starting Turf-AdminService...")
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

	// Инициализируем клиента каталога площадок
	fieldClient := fieldServiceClient.NewClient(
		cfg.FieldService.URL,
		time.Duration(cfg.FieldService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (FieldService=%s timeout=%ds)",
		cfg.FieldService.URL, cfg.FieldService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		slotRepository     *slotRepo.Repository
		pricingRepository  *pricingRepo.Repository
		bookingRepository  *bookingRepo.Repository
		customerRepository *customerRepo.Repository
	)

	// Интерфейс для transaction manager (используется в сервисах и usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
		DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		slotRepository = slotRepo.NewRepository(wrappedDB)
		pricingRepository = pricingRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		customerRepository = customerRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		slotRepository = slotRepo.NewRepository(db)
		pricingRepository = pricingRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		customerRepository = customerRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	slotSvc := slotsService.NewService(slotRepository, log)
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		slotRepository,
		txMgr,
		log,
	)
	pricingSvc := pricingService.NewService(
		pricingRepository,
		fieldClient,
		txMgr,
		log,
	)
	customerSvc := customersService.NewService(customerRepository, log)

	// Инициализируем use cases
	generateSlotsUseCase := generateSlotsUC.NewUseCase(
		slotRepository,
		fieldClient,
		txMgr,
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		slotRepository,
		pricingRepository,
		customerRepository,
		txMgr,
		log,
	)
	pricingPreviewUseCase := getPricingPreviewUC.NewUseCase(
		pricingRepository,
		fieldClient,
		log,
	)

	// Инициализируем handlers
	getFields := getFieldsHandler.NewHandler(fieldClient, log)
	getFieldSlots := getFieldSlotsHandler.NewHandler(slotSvc, log)
	generateSlots := generateSlotsHandler.NewHandler(generateSlotsUseCase, log)
	updateSlotStatus := updateSlotStatusHandler.NewHandler(slotSvc, log)
	deleteFieldSlots := deleteFieldSlotsHandler.NewHandler(slotSvc, log)

	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getBookings := getBookingsHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)

	getPricingRules := getPricingRulesHandler.NewHandler(pricingSvc, log)
	createPricingRule := createPricingRuleHandler.NewHandler(pricingSvc, log)
	updatePricingRule := updatePricingRuleHandler.NewHandler(pricingSvc, log)
	deletePricingRule := deletePricingRuleHandler.NewHandler(pricingSvc, log)
	getPricingPreview := getPricingPreviewHandler.NewHandler(pricingPreviewUseCase, log)
	applyPricingTemplate := applyPricingTemplateHandler.NewHandler(pricingSvc, log)

	getCustomers := getCustomersHandler.NewHandler(customerSvc, log)
	createCustomer := createCustomerHandler.NewHandler(customerSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог площадок
	api.HandleFunc("/fields", getFields.Handle).Methods(http.MethodGet)

	// Слоты площадки за период
	api.HandleFunc("/fields/{fieldId}/slots", getFieldSlots.Handle).Methods(http.MethodGet)

	// Почасовая сетка цен
	api.HandleFunc("/fields/{fieldId}/pricing/preview", getPricingPreview.Handle).Methods(http.MethodGet)

	// Правила тарификации площадки
	api.HandleFunc("/fields/{fieldId}/pricing/rules", getPricingRules.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Слоты ---
	// Генерация слотов (preview или сохранение)
	protected.HandleFunc("/fields/{fieldId}/slots/generate", generateSlots.Handle).Methods(http.MethodPost)

	// Массовое удаление открытых слотов за период
	protected.HandleFunc("/fields/{fieldId}/slots", deleteFieldSlots.Handle).Methods(http.MethodDelete)

	// Ручная блокировка/разблокировка слота
	protected.HandleFunc("/slots/{slotId}/status", updateSlotStatus.Handle).Methods(http.MethodPatch)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Список бронирований со статистикой
	protected.HandleFunc("/bookings", getBookings.Handle).Methods(http.MethodGet)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Смена статуса бронирования
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// Отмена бронирования с освобождением слота
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// --- Тарифы ---
	// Создание правила тарификации
	protected.HandleFunc("/fields/{fieldId}/pricing/rules", createPricingRule.Handle).Methods(http.MethodPost)

	// Обновление правила
	protected.HandleFunc("/fields/{fieldId}/pricing/rules/{ruleId}", updatePricingRule.Handle).Methods(http.MethodPut)

	// Удаление правила
	protected.HandleFunc("/fields/{fieldId}/pricing/rules/{ruleId}", deletePricingRule.Handle).Methods(http.MethodDelete)

	// Применение шаблона тарифов (заменяет набор правил площадки)
	protected.HandleFunc("/fields/{fieldId}/pricing/templates", applyPricingTemplate.Handle).Methods(http.MethodPost)

	// --- Клиенты ---
	// Список клиентов с поиском
	protected.HandleFunc("/customers", getCustomers.Handle).Methods(http.MethodGet)

	// Создание клиента
	protected.HandleFunc("/customers", createCustomer.Handle).Methods(http.MethodPost)

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
