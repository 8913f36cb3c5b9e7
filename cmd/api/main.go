package main

import (
	"context"
	"fmt"
	common_api "go-insights/internal/common/api"
	"go-insights/internal/config"
	"go-insights/internal/database"
	"go-insights/internal/features/auth"
	"go-insights/internal/features/category"
	"go-insights/internal/features/contact"
	"go-insights/internal/features/email"
	"go-insights/internal/features/insight"
	"go-insights/internal/features/report"
	"go-insights/internal/features/system"
	"go-insights/internal/logger"
	"go-insights/internal/middleware"
	"go-insights/pkg/utils"
	"log"
	"time"

	_ "go-insights/docs" // Import swagger docs

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// NewFiberServer creates a new Fiber app instance
func NewFiberServer(zapLog *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"success": false,
				"message": err.Error(),
			})
		},
	})

	// Use custom CORS middleware
	app.Use(middleware.CORSMiddleware())

	// Log every request with the shared zap logger
	app.Use(middleware.RequestLogger(zapLog))

	return app
}

// AsRoute is a helper function to reduce boilerplate.
// It tags the constructor so Fx knows to add it to the "routes" group.
func AsRoute(f any) any {
	return fx.Annotate(
		f,
		fx.As(new(common_api.Route)),    // Cast to Interface
		fx.ResultTags(`group:"routes"`), // Add to Group
	)
}

// RegisterAllRoutes takes the group "routes" (slice of interfaces)
// and calls Setup() on each one.
func RegisterAllRoutes(app *fiber.App, routes []common_api.Route) {
	log.Printf("Registering %d routes...\n", len(routes))
	for i, route := range routes {
		log.Printf("Setting up route %d: %T\n", i+1, route)
		route.Setup(app)
	}
	log.Println("All routes registered successfully")
}

// RegisterAllRoutesWithAnnotation wraps RegisterAllRoutes with fx annotations
var RegisterAllRoutesWithAnnotation = fx.Annotate(
	RegisterAllRoutes,
	fx.ParamTags(``, `group:"routes"`),
)

// StartServer creates a lifecycle hook to start Fiber in a goroutine
// and shut it down when the app exits.
func StartServer(lc fx.Lifecycle, app *fiber.App, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := fmt.Sprintf(":%s", cfg.Port)
				if err := app.Listen(port); err != nil {
					log.Fatalf("Server failed to start: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.Shutdown()
		},
	})
}

// InitializeIndexes ensures that necessary database indexes are created
func InitializeIndexes(
	lc fx.Lifecycle,
	reportRepo report.ReportRepository,
	insightRepo insight.InsightRepository,
	categoryRepo category.CategoryRepository,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				// Use a background context with timeout for index creation
				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := reportRepo.EnsureIndexes(ctx); err != nil {
					log.Printf("Failed to ensure report indexes: %v", err)
				}
				if err := insightRepo.EnsureIndexes(ctx); err != nil {
					log.Printf("Failed to ensure insight indexes: %v", err)
				}
				if err := categoryRepo.EnsureIndexes(ctx); err != nil {
					log.Printf("Failed to ensure category indexes: %v", err)
				}
			}()
			return nil
		},
	})
}

// @title           Market Research Insights API
// @version         1.0
// @description     REST backend for market-research reports, insights, categories and contact submissions.

// @host            localhost:5000
// @BasePath        /
func main() {
	app := fx.New(
		fx.Provide(
			// Load Config
			config.LoadConfig,

			// Initialize Logger
			logger.NewLogger,

			// Initialize Fiber Server
			NewFiberServer,

			// Initialize Database
			database.NewDatabase,

			// Initialize Repository
			report.NewReportRepository,
			insight.NewInsightRepository,
			contact.NewContactRepository,
			category.NewCategoryRepository,
			email.NewEmailRepository,

			report.NewReportService,
			insight.NewInsightService,
			contact.NewContactService,
			category.NewCategoryService,
			email.NewEmailService,
			auth.NewAuthService,
			contact.NewRetentionSweeper,

			// Interface Adapters to satisfy Fx
			func(s email.EmailService) contact.Notifier { return s },

			// Initialize Controller
			report.NewReportController,
			insight.NewInsightController,
			contact.NewContactController,
			category.NewCategoryController,
			auth.NewAuthController,

			// Initialize API Routes
			AsRoute(report.NewReportApi),
			AsRoute(insight.NewInsightApi),
			AsRoute(contact.NewContactApi),
			AsRoute(category.NewCategoryApi),
			AsRoute(auth.NewAuthApi),
			AsRoute(system.NewHealthApi),
			AsRoute(system.NewSwaggerApi),
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Invoke(
			func(cfg *config.Config) {
				utils.SetSecret(cfg.JWTSecret)
			},

			// Register Routes & Start
			RegisterAllRoutesWithAnnotation,
			StartServer,
			contact.RegisterRetentionSweeper,
			InitializeIndexes,
		),
	)

	app.Run()
}
