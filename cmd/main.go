package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createBookingHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/create_booking"
	createRoomHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/create_room"
	deleteBookingHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/delete_booking"
	deleteRoomHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/delete_room"
	listRoomBookingsHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/list_room_bookings"
	listRoomsHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/list_rooms"
	"github.com/m04kA/SMC-HotelService/internal/api/middleware"
	"github.com/m04kA/SMC-HotelService/internal/config"
	"github.com/m04kA/SMC-HotelService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/booking"
	roomRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/room"
	bookingsService "github.com/m04kA/SMC-HotelService/internal/service/bookings"
	roomsService "github.com/m04kA/SMC-HotelService/internal/service/rooms"
	createBookingUC "github.com/m04kA/SMC-HotelService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-HotelService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelService/pkg/logger"
	"github.com/m04kA/SMC-HotelService/pkg/metrics"
	"github.com/m04kA/SMC-HotelService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-HotelService/pkg/txmanager"
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

	log.Info("Starting SMC-HotelService...")
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

	// Ждем готовности базы данных
	if err := waitForDB(db, cfg.Database.WaitRetries, time.Duration(cfg.Database.WaitDelay)*time.Second, log); err != nil {
		log.Fatal("Database is not ready: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем репозитории (с метриками или без)
	var (
		roomRepository    *roomRepo.Repository
		bookingRepository *bookingRepo.Repository
		serializableTxMgr *txmanager.TransactionManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		roomRepository = roomRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		serializableTxMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		roomRepository = roomRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		serializableTxMgr = txmanager.NewTransactionManager(txmanager.FromSQLDB(db))
	}

	// Интерфейс для transaction manager (используется в usecase создания брони)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}

	// Режим защиты от двойного бронирования: в strict проверка и вставка
	// идут в сериализуемой транзакции, в best-effort — без транзакции
	// (легаси-поведение с гонкой проверка-вставка)
	var bookingTxMgr TxManager
	conflictMode := domain.ParseConflictMode(cfg.Booking.ConflictMode)
	if conflictMode == domain.ConflictModeStrict {
		bookingTxMgr = serializableTxMgr
	} else {
		bookingTxMgr = simpletxmanager.NewTransactionManager(db)
	}
	log.Info("Booking conflict mode: %s", conflictMode)

	// Инициализируем сервисы
	// Каскадное удаление номера атомарно в любом режиме, поэтому
	// сервис номеров всегда получает сериализуемый transaction manager
	roomSvc := roomsService.NewService(
		roomRepository,
		bookingRepository,
		serializableTxMgr,
		log,
	)
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		roomRepository,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		roomRepository,
		bookingTxMgr,
		log,
	)

	// Инициализируем handlers
	createRoom := createRoomHandler.NewHandler(roomSvc, log)
	deleteRoom := deleteRoomHandler.NewHandler(roomSvc, log)
	listRooms := listRoomsHandler.NewHandler(roomSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	listRoomBookings := listRoomBookingsHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Health check
	r.HandleFunc("/health", healthHandler(db)).Methods(http.MethodGet)

	// --- Номера ---
	r.HandleFunc("/rooms/create/", createRoom.Handle).Methods(http.MethodPost)
	r.HandleFunc("/rooms/delete/{roomId}/", deleteRoom.Handle).Methods(http.MethodDelete)
	r.HandleFunc("/rooms/list/", listRooms.Handle).Methods(http.MethodGet)

	// --- Брони ---
	r.HandleFunc("/bookings/create/", createBooking.Handle).Methods(http.MethodPost)
	r.HandleFunc("/bookings/delete/{bookingId}/", deleteBooking.Handle).Methods(http.MethodDelete)
	r.HandleFunc("/bookings/list/{roomId}/", listRoomBookings.Handle).Methods(http.MethodGet)

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

// waitForDB ждет готовности базы данных, повторяя ping с паузами
func waitForDB(db *sql.DB, retries int, delay time.Duration, log *logger.Logger) error {
	var err error
	for i := 0; i < retries; i++ {
		if err = db.Ping(); err == nil {
			return nil
		}
		log.Warn("Database unavailable, waiting... (%d/%d): %v", i+1, retries, err)
		time.Sleep(delay)
	}
	return err
}

// healthHandler проверяет доступность базы данных
func healthHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")

		if err := db.PingContext(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_ = json.NewEncoder(w).Encode(map[string]string{"status": "unavailable"})
			return
		}

		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}
}
