package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/shiftwise/shiftwise-backend-go/internal/config"
	appHTTP "github.com/shiftwise/shiftwise-backend-go/internal/handler/http"
	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/cron"
	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/database"
	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/jwt"
	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/storage"
	"github.com/shiftwise/shiftwise-backend-go/internal/repository/postgresql"
	assignmentService "github.com/shiftwise/shiftwise-backend-go/internal/service/assignment"
	serviceAuth "github.com/shiftwise/shiftwise-backend-go/internal/service/auth"
	bookingService "github.com/shiftwise/shiftwise-backend-go/internal/service/booking"
	completionService "github.com/shiftwise/shiftwise-backend-go/internal/service/completion"
	"github.com/shiftwise/shiftwise-backend-go/internal/service/file"
	performanceService "github.com/shiftwise/shiftwise-backend-go/internal/service/performance"
	shiftService "github.com/shiftwise/shiftwise-backend-go/internal/service/shift"
	workerService "github.com/shiftwise/shiftwise-backend-go/internal/service/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	agencyRepo := postgresql.NewAgencyRepository(db)
	workerRepo := postgresql.NewWorkerRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	assignmentRepo := postgresql.NewAssignmentRepository(db)
	performanceRepo := postgresql.NewPerformanceRepository(db)
	JWTRepository := postgresql.NewJWTRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(
			cfg.Storage.BasePath,
			cfg.Storage.BaseURL,
		)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	fileService := file.NewFileService(fileStorage)
	authService := serviceAuth.NewAuthService(db, agencyRepo, workerRepo, JWTService, JWTRepository)
	shiftSvc := shiftService.NewShiftService(db, shiftRepo, agencyRepo)
	assignmentSvc := assignmentService.NewAssignmentService(db, shiftRepo, assignmentRepo, workerRepo)
	bookingSvc := bookingService.NewBookingService(db, shiftRepo, assignmentRepo, workerRepo)
	completionSvc := completionService.NewCompletionService(
		db,
		shiftRepo,
		assignmentRepo,
		workerRepo,
		fileService,
		cfg.Shift.CompletionMaxDistanceMiles,
	)
	performanceSvc := performanceService.NewPerformanceService(db, performanceRepo, shiftRepo, assignmentRepo, workerRepo)
	workerSvc := workerService.NewWorkerService(db, workerRepo)

	authHandler := appHTTP.NewAuthHandler(JWTService, authService)
	shiftHandler := appHTTP.NewShiftHandler(shiftSvc)
	assignmentHandler := appHTTP.NewAssignmentHandler(assignmentSvc, bookingSvc, completionSvc)
	performanceHandler := appHTTP.NewPerformanceHandler(performanceSvc)
	workerHandler := appHTTP.NewWorkerHandler(workerSvc)

	closeInterval, err := time.ParseDuration(cfg.Shift.CloseInterval)
	if err != nil {
		log.Fatal("Invalid shift close interval: ", err)
	}
	scheduler := cron.NewScheduler()
	shiftJobs := cron.NewShiftJobs(shiftRepo, closeInterval)
	shiftJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			Env:             cfg.App.Env,
			StorageBasePath: cfg.Storage.BasePath,
		},
		JWTService,
		authHandler,
		shiftHandler,
		assignmentHandler,
		performanceHandler,
		workerHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
