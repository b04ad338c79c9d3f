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

	cancelBookingHandler "github.com/jazyl-tech/JZL-BookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/jazyl-tech/JZL-BookingService/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/jazyl-tech/JZL-BookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/jazyl-tech/JZL-BookingService/internal/api/handlers/get_booking"
	getCatalogHandler "github.com/jazyl-tech/JZL-BookingService/internal/api/handlers/get_catalog"
	getClientBookingsHandler "github.com/jazyl-tech/JZL-BookingService/internal/api/handlers/get_client_bookings"
	getSalonBookingsHandler "github.com/jazyl-tech/JZL-BookingService/internal/api/handlers/get_salon_bookings"
	registerClickHandler "github.com/jazyl-tech/JZL-BookingService/internal/api/handlers/register_click"
	topupBudgetHandler "github.com/jazyl-tech/JZL-BookingService/internal/api/handlers/topup_budget"
	updateBidHandler "github.com/jazyl-tech/JZL-BookingService/internal/api/handlers/update_bid"
	updateBookingStatusHandler "github.com/jazyl-tech/JZL-BookingService/internal/api/handlers/update_booking_status"
	"github.com/jazyl-tech/JZL-BookingService/internal/api/middleware"
	"github.com/jazyl-tech/JZL-BookingService/internal/config"
	bookingRepo "github.com/jazyl-tech/JZL-BookingService/internal/infra/storage/booking"
	catalogRepo "github.com/jazyl-tech/JZL-BookingService/internal/infra/storage/catalog"
	salonRepo "github.com/jazyl-tech/JZL-BookingService/internal/infra/storage/salon"
	salonServiceClient "github.com/jazyl-tech/JZL-BookingService/internal/integrations/salonservice"
	advertisingService "github.com/jazyl-tech/JZL-BookingService/internal/service/advertising"
	bookingsService "github.com/jazyl-tech/JZL-BookingService/internal/service/bookings"
	createBookingUC "github.com/jazyl-tech/JZL-BookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/jazyl-tech/JZL-BookingService/internal/usecase/get_available_slots"
	getCatalogUC "github.com/jazyl-tech/JZL-BookingService/internal/usecase/get_catalog"
	registerClickUC "github.com/jazyl-tech/JZL-BookingService/internal/usecase/register_click"
	"github.com/jazyl-tech/JZL-BookingService/pkg/dbmetrics"
	"github.com/jazyl-tech/JZL-BookingService/pkg/logger"
	"github.com/jazyl-tech/JZL-BookingService/pkg/metrics"
	"github.com/jazyl-tech/JZL-BookingService/pkg/simpletxmanager"
	"github.com/jazyl-tech/JZL-BookingService/pkg/txmanager"
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

	log.Info("Starting JZL-BookingService...")
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

	// Инициализируем клиента SalonService
	salonClient := salonServiceClient.NewClient(
		cfg.SalonService.URL,
		time.Duration(cfg.SalonService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (SalonService=%s timeout=%ds)",
		cfg.SalonService.URL, cfg.SalonService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		salonRepository   *salonRepo.Repository
		catalogRepository *catalogRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		salonRepository = salonRepo.NewRepository(wrappedDB)
		catalogRepository = catalogRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		salonRepository = salonRepo.NewRepository(db)
		catalogRepository = catalogRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Параметры расчета слотов
	slotsConfig := getAvailableSlotsUC.Config{
		StepMinutes:     cfg.Booking.SlotStepMinutes,
		BufferMinutes:   cfg.Booking.BufferMinutes,
		LeadTimeMinutes: cfg.Booking.MinLeadTimeMinutes,
	}
	bookingConfig := createBookingUC.Config{
		StepMinutes:     cfg.Booking.SlotStepMinutes,
		BufferMinutes:   cfg.Booking.BufferMinutes,
		LeadTimeMinutes: cfg.Booking.MinLeadTimeMinutes,
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		salonClient,
		log,
	)
	advertisingSvc := advertisingService.NewService(
		salonRepository,
		salonClient,
		log,
	)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		salonClient,
		slotsConfig,
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		salonClient,
		txMgr,
		bookingConfig,
		log,
	)
	getCatalogUseCase := getCatalogUC.NewUseCase(
		salonRepository,
		catalogRepository,
		log,
	)
	registerClickUseCase := registerClickUC.NewUseCase(
		salonRepository,
		catalogRepository,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	getClientBookings := getClientBookingsHandler.NewHandler(bookingSvc, log)
	getSalonBookings := getSalonBookingsHandler.NewHandler(bookingSvc, log)
	getCatalog := getCatalogHandler.NewHandler(getCatalogUseCase, log)
	registerClick := registerClickHandler.NewHandler(registerClickUseCase, log)
	topupBudget := topupBudgetHandler.NewHandler(advertisingSvc, log)
	updateBid := updateBidHandler.NewHandler(advertisingSvc, log)

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

	// Доступные слоты мастера
	api.HandleFunc("/masters/{masterId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Каталог салонов
	api.HandleFunc("/catalog/salons", getCatalog.Handle).Methods(http.MethodGet)

	// Регистрация перехода из каталога
	api.HandleFunc("/catalog/salons/{salonId}/click", registerClick.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Перевод бронирования по рабочему циклу (для менеджеров)
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// История бронирований клиента
	protected.HandleFunc("/clients/{clientId}/bookings", getClientBookings.Handle).Methods(http.MethodGet)

	// --- Управление салоном (для менеджеров) ---
	// Журнал бронирований салона
	protected.HandleFunc("/salons/{salonId}/bookings", getSalonBookings.Handle).Methods(http.MethodGet)

	// Пополнение рекламного бюджета
	protected.HandleFunc("/salons/{salonId}/advertising/topup", topupBudget.Handle).Methods(http.MethodPost)

	// Изменение аукционной ставки
	protected.HandleFunc("/salons/{salonId}/advertising/bid", updateBid.Handle).Methods(http.MethodPut)

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
