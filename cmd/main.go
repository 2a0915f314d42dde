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
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	assignRequestHandler "github.com/hotelharmony/hotel-ops-service/internal/api/handlers/assign_request"
	cancelBookingHandler "github.com/hotelharmony/hotel-ops-service/internal/api/handlers/cancel_booking"
	cancelRequestHandler "github.com/hotelharmony/hotel-ops-service/internal/api/handlers/cancel_request"
	checkInHandler "github.com/hotelharmony/hotel-ops-service/internal/api/handlers/check_in"
	checkOutHandler "github.com/hotelharmony/hotel-ops-service/internal/api/handlers/check_out"
	completeRequestHandler "github.com/hotelharmony/hotel-ops-service/internal/api/handlers/complete_request"
	createBookingHandler "github.com/hotelharmony/hotel-ops-service/internal/api/handlers/create_booking"
	createRequestHandler "github.com/hotelharmony/hotel-ops-service/internal/api/handlers/create_request"
	createRoomHandler "github.com/hotelharmony/hotel-ops-service/internal/api/handlers/create_room"
	createUserHandler "github.com/hotelharmony/hotel-ops-service/internal/api/handlers/create_user"
	deleteRoomHandler "github.com/hotelharmony/hotel-ops-service/internal/api/handlers/delete_room"
	frontDeskHandler "github.com/hotelharmony/hotel-ops-service/internal/api/handlers/front_desk"
	getBookingHandler "github.com/hotelharmony/hotel-ops-service/internal/api/handlers/get_booking"
	getCurrentUserHandler "github.com/hotelharmony/hotel-ops-service/internal/api/handlers/get_current_user"
	getGuestBookingsHandler "github.com/hotelharmony/hotel-ops-service/internal/api/handlers/get_guest_bookings"
	getRequestHandler "github.com/hotelharmony/hotel-ops-service/internal/api/handlers/get_request"
	getRoomHandler "github.com/hotelharmony/hotel-ops-service/internal/api/handlers/get_room"
	listBookingsHandler "github.com/hotelharmony/hotel-ops-service/internal/api/handlers/list_bookings"
	listRequestsHandler "github.com/hotelharmony/hotel-ops-service/internal/api/handlers/list_requests"
	listRoomsHandler "github.com/hotelharmony/hotel-ops-service/internal/api/handlers/list_rooms"
	listUsersHandler "github.com/hotelharmony/hotel-ops-service/internal/api/handlers/list_users"
	loginHandler "github.com/hotelharmony/hotel-ops-service/internal/api/handlers/login"
	recordCleaningHandler "github.com/hotelharmony/hotel-ops-service/internal/api/handlers/record_cleaning"
	registerHandler "github.com/hotelharmony/hotel-ops-service/internal/api/handlers/register"
	reportsHandler "github.com/hotelharmony/hotel-ops-service/internal/api/handlers/reports"
	searchRoomsHandler "github.com/hotelharmony/hotel-ops-service/internal/api/handlers/search_rooms"
	setRoomStatusHandler "github.com/hotelharmony/hotel-ops-service/internal/api/handlers/set_room_status"
	setUserEnabledHandler "github.com/hotelharmony/hotel-ops-service/internal/api/handlers/set_user_enabled"
	startRequestHandler "github.com/hotelharmony/hotel-ops-service/internal/api/handlers/start_request"
	updateBookingHandler "github.com/hotelharmony/hotel-ops-service/internal/api/handlers/update_booking"
	updatePaymentHandler "github.com/hotelharmony/hotel-ops-service/internal/api/handlers/update_payment"
	updateProfileHandler "github.com/hotelharmony/hotel-ops-service/internal/api/handlers/update_profile"
	updatePriorityHandler "github.com/hotelharmony/hotel-ops-service/internal/api/handlers/update_request_priority"
	updateRoomHandler "github.com/hotelharmony/hotel-ops-service/internal/api/handlers/update_room"
	"github.com/hotelharmony/hotel-ops-service/internal/api/middleware"
	"github.com/hotelharmony/hotel-ops-service/internal/auth"
	"github.com/hotelharmony/hotel-ops-service/internal/config"
	"github.com/hotelharmony/hotel-ops-service/internal/domain"
	bookingRepo "github.com/hotelharmony/hotel-ops-service/internal/infra/storage/booking"
	maintenanceRepo "github.com/hotelharmony/hotel-ops-service/internal/infra/storage/maintenance"
	roomRepo "github.com/hotelharmony/hotel-ops-service/internal/infra/storage/room"
	userRepo "github.com/hotelharmony/hotel-ops-service/internal/infra/storage/user"
	"github.com/hotelharmony/hotel-ops-service/internal/jobs"
	bookingsService "github.com/hotelharmony/hotel-ops-service/internal/service/bookings"
	maintenanceService "github.com/hotelharmony/hotel-ops-service/internal/service/maintenance"
	reportsService "github.com/hotelharmony/hotel-ops-service/internal/service/reports"
	roomsService "github.com/hotelharmony/hotel-ops-service/internal/service/rooms"
	usersService "github.com/hotelharmony/hotel-ops-service/internal/service/users"
	createBookingUC "github.com/hotelharmony/hotel-ops-service/internal/usecase/create_booking"
	searchRoomsUC "github.com/hotelharmony/hotel-ops-service/internal/usecase/search_rooms"
	updateBookingUC "github.com/hotelharmony/hotel-ops-service/internal/usecase/update_booking"
	"github.com/hotelharmony/hotel-ops-service/pkg/dbmetrics"
	"github.com/hotelharmony/hotel-ops-service/pkg/logger"
	"github.com/hotelharmony/hotel-ops-service/pkg/metrics"
	"github.com/hotelharmony/hotel-ops-service/pkg/simpletxmanager"
	"github.com/hotelharmony/hotel-ops-service/pkg/txmanager"
)

func main() {
	// .env is optional, the config file and real environment still apply
	_ = godotenv.Load()

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

	log.Info("Starting hotel-ops-service...")

	// Collectors are always registered, cfg.Metrics.Enabled only gates the
	// database wrapping and the /metrics endpoint.
	metricsCollector := metrics.New(cfg.Metrics.ServiceName)
	stopMetricsCh := make(chan struct{})

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
	log.Info("Connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Repositories and the transaction manager, with or without query metrics
	type txManagerContract interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
		DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
	}

	var (
		userRepository        *userRepo.Repository
		roomRepository        *roomRepo.Repository
		bookingRepository     *bookingRepo.Repository
		maintenanceRepository *maintenanceRepo.Repository
		txMgr                 txManagerContract
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		userRepository = userRepo.NewRepository(wrappedDB)
		roomRepository = roomRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		maintenanceRepository = maintenanceRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
		log.Info("Database metrics collection started")
	} else {
		userRepository = userRepo.NewRepository(db)
		roomRepository = roomRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		maintenanceRepository = maintenanceRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	tokenManager := auth.NewTokenManager(
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute,
	)

	// Services
	userSvc := usersService.NewService(userRepository, tokenManager, cfg.Auth.BcryptCost, log)
	roomSvc := roomsService.NewService(roomRepository, bookingRepository, log)
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		roomRepository,
		txMgr,
		&bookingsService.RealTimeProvider{},
		log,
	)
	maintenanceSvc := maintenanceService.NewService(
		maintenanceRepository,
		roomRepository,
		userRepository,
		bookingRepository,
		txMgr,
		&maintenanceService.RealTimeProvider{},
		log,
	)
	reportSvc := reportsService.NewService(
		bookingRepository,
		roomRepository,
		maintenanceRepository,
		txMgr,
		&reportsService.RealTimeProvider{},
		log,
	)

	// Use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		roomRepository,
		txMgr,
		metricsCollector,
		log,
	)
	updateBookingUseCase := updateBookingUC.NewUseCase(
		bookingRepository,
		roomRepository,
		txMgr,
		log,
	)
	searchRoomsUseCase := searchRoomsUC.NewUseCase(roomRepository, log)

	// Handlers
	register := registerHandler.NewHandler(userSvc, log)
	login := loginHandler.NewHandler(userSvc, log)
	getCurrentUser := getCurrentUserHandler.NewHandler(userSvc, log)
	updateProfile := updateProfileHandler.NewHandler(userSvc, log)
	createUser := createUserHandler.NewHandler(userSvc, log)
	listUsers := listUsersHandler.NewHandler(userSvc, log)
	setUserEnabled := setUserEnabledHandler.NewHandler(userSvc, log)

	createRoom := createRoomHandler.NewHandler(roomSvc, log)
	getRoom := getRoomHandler.NewHandler(roomSvc, log)
	listRooms := listRoomsHandler.NewHandler(roomSvc, log)
	updateRoom := updateRoomHandler.NewHandler(roomSvc, log)
	deleteRoom := deleteRoomHandler.NewHandler(roomSvc, log)
	recordCleaning := recordCleaningHandler.NewHandler(roomSvc, log)
	setRoomStatus := setRoomStatusHandler.NewHandler(roomSvc, log)
	searchRooms := searchRoomsHandler.NewHandler(searchRoomsUseCase, log)

	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getGuestBookings := getGuestBookingsHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	updateBooking := updateBookingHandler.NewHandler(updateBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	checkIn := checkInHandler.NewHandler(bookingSvc, log)
	checkOut := checkOutHandler.NewHandler(bookingSvc, log)
	updatePayment := updatePaymentHandler.NewHandler(bookingSvc, log)
	frontDesk := frontDeskHandler.NewHandler(bookingSvc, &bookingsService.RealTimeProvider{}, log)

	createRequest := createRequestHandler.NewHandler(maintenanceSvc, log)
	getRequest := getRequestHandler.NewHandler(maintenanceSvc, log)
	listRequests := listRequestsHandler.NewHandler(maintenanceSvc, log)
	assignRequest := assignRequestHandler.NewHandler(maintenanceSvc, log)
	startRequest := startRequestHandler.NewHandler(maintenanceSvc, log)
	completeRequest := completeRequestHandler.NewHandler(maintenanceSvc, log)
	cancelRequest := cancelRequestHandler.NewHandler(maintenanceSvc, log)
	updatePriority := updatePriorityHandler.NewHandler(maintenanceSvc, log)

	reports := reportsHandler.NewHandler(reportSvc, &reportsService.RealTimeProvider{}, log)

	// Router
	r := mux.NewRouter()
	r.Use(middleware.Metrics(metricsCollector))

	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes
	api.HandleFunc("/auth/register", register.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)
	api.HandleFunc("/rooms/search", searchRooms.Handle).Methods(http.MethodGet)

	// Authenticated routes, ownership checks live in the services
	authed := api.PathPrefix("").Subrouter()
	authed.Use(middleware.Auth(tokenManager))

	authed.HandleFunc("/auth/me", getCurrentUser.Handle).Methods(http.MethodGet)
	authed.HandleFunc("/auth/me", updateProfile.Handle).Methods(http.MethodPatch)

	authed.HandleFunc("/rooms", listRooms.Handle).Methods(http.MethodGet)
	authed.HandleFunc("/rooms/number/{number}", getRoom.HandleByNumber).Methods(http.MethodGet)
	authed.HandleFunc("/rooms/{roomId}", getRoom.Handle).Methods(http.MethodGet)

	authed.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	authed.HandleFunc("/bookings/my", getGuestBookings.Handle).Methods(http.MethodGet)
	authed.HandleFunc("/bookings/code/{code}", getBooking.HandleByCode).Methods(http.MethodGet)
	authed.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	authed.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPatch)
	authed.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	authed.HandleFunc("/maintenance", createRequest.Handle).Methods(http.MethodPost)

	// Staff routes
	staff := authed.PathPrefix("").Subrouter()
	staff.Use(middleware.RequireRoles(domain.RoleReceptionist, domain.RoleManager))

	staff.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	staff.HandleFunc("/bookings/{bookingId}/check-in", checkIn.Handle).Methods(http.MethodPost)
	staff.HandleFunc("/bookings/{bookingId}/check-out", checkOut.Handle).Methods(http.MethodPost)
	staff.HandleFunc("/bookings/{bookingId}/payment", updatePayment.Handle).Methods(http.MethodPatch)
	staff.HandleFunc("/front-desk/arrivals", frontDesk.HandleArrivals).Methods(http.MethodGet)
	staff.HandleFunc("/front-desk/departures", frontDesk.HandleDepartures).Methods(http.MethodGet)

	// Maintenance workflow routes
	workers := authed.PathPrefix("").Subrouter()
	workers.Use(middleware.RequireRoles(
		domain.RoleReceptionist, domain.RoleMaintenance, domain.RoleManager,
	))

	workers.HandleFunc("/maintenance", listRequests.Handle).Methods(http.MethodGet)
	workers.HandleFunc("/maintenance/{requestId}", getRequest.Handle).Methods(http.MethodGet)
	workers.HandleFunc("/rooms/{roomId}/cleaning", recordCleaning.Handle).Methods(http.MethodPost)

	crew := authed.PathPrefix("").Subrouter()
	crew.Use(middleware.RequireRoles(domain.RoleMaintenance, domain.RoleManager))

	crew.HandleFunc("/maintenance/{requestId}/start", startRequest.Handle).Methods(http.MethodPatch)
	crew.HandleFunc("/maintenance/{requestId}/complete", completeRequest.Handle).Methods(http.MethodPatch)

	// Manager routes
	managers := authed.PathPrefix("").Subrouter()
	managers.Use(middleware.RequireRoles(domain.RoleManager))

	managers.HandleFunc("/rooms", createRoom.Handle).Methods(http.MethodPost)
	managers.HandleFunc("/rooms/{roomId}", updateRoom.Handle).Methods(http.MethodPatch)
	managers.HandleFunc("/rooms/{roomId}", deleteRoom.Handle).Methods(http.MethodDelete)
	managers.HandleFunc("/rooms/{roomId}/status", setRoomStatus.Handle).Methods(http.MethodPatch)

	managers.HandleFunc("/users", createUser.Handle).Methods(http.MethodPost)
	managers.HandleFunc("/users", listUsers.Handle).Methods(http.MethodGet)
	managers.HandleFunc("/users/{userId}/enabled", setUserEnabled.Handle).Methods(http.MethodPatch)

	managers.HandleFunc("/maintenance/{requestId}/assign", assignRequest.Handle).Methods(http.MethodPatch)
	managers.HandleFunc("/maintenance/{requestId}/cancel", cancelRequest.Handle).Methods(http.MethodPatch)
	managers.HandleFunc("/maintenance/{requestId}/priority", updatePriority.Handle).Methods(http.MethodPatch)

	managers.HandleFunc("/reports/occupancy", reports.HandleOccupancy).Methods(http.MethodGet)
	managers.HandleFunc("/reports/revenue", reports.HandleRevenue).Methods(http.MethodGet)
	managers.HandleFunc("/reports/maintenance", reports.HandleMaintenance).Methods(http.MethodGet)
	managers.HandleFunc("/reports/summary", reports.HandleSummary).Methods(http.MethodGet)

	// Background sweeps
	var scheduler *jobs.Scheduler
	if cfg.Jobs.Enabled {
		scheduler = jobs.NewScheduler(
			bookingRepository,
			maintenanceSvc,
			metricsCollector,
			&bookingsService.RealTimeProvider{},
			log,
		)
		if err := scheduler.Register(cfg.Jobs.NoShowSchedule, cfg.Jobs.OverdueSchedule); err != nil {
			log.Fatal("Failed to register background jobs: %v", err)
		}
		scheduler.Start()
	}

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

	if scheduler != nil {
		scheduler.Stop()
	}
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
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
