package main

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"go-insights/internal/common/apperr"
	"go-insights/internal/config"
	"go-insights/internal/database"
	"go-insights/internal/features/category"
	"go-insights/internal/features/insight"
	"go-insights/internal/features/report"
	"go-insights/internal/logger"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// Seed runs the database seeding
func Seed(
	lc fx.Lifecycle,
	categoryService category.CategoryService,
	reportService report.ReportService,
	insightService insight.InsightService,
	logger *zap.Logger,
	shutdowner fx.Shutdowner,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				defer func() {
					if err := shutdowner.Shutdown(); err != nil {
						logger.Error("Failed to shutdown", zap.Error(err))
					}
				}()

				logger.Info("🌱 Starting Database Seeding from JSON...")

				// Helper to read JSON
				readJSON := func(path string, v interface{}) error {
					b, err := os.ReadFile(path)
					if err != nil {
						return err
					}
					return json.Unmarshal(b, v)
				}

				// Data Paths (Assuming running from backend root)
				categoriesPath := "cmd/seed/data/categories.json"
				reportsPath := "cmd/seed/data/reports.json"
				insightsPath := "cmd/seed/data/insights.json"

				// 1. Seed Categories
				var categories []category.Category
				if err := readJSON(categoriesPath, &categories); err != nil {
					logger.Error("Failed to read categories.json", zap.Error(err))
				} else {
					for i := range categories {
						c := categories[i]
						if _, err := categoryService.Create(ctx, &c); err != nil {
							if apperr.IsKind(err, apperr.KindDuplicateKey) {
								logger.Info("Category exists, skipping", zap.String("slug", c.Slug))
								continue
							}
							logger.Error("Failed to seed category", zap.String("slug", c.Slug), zap.Error(err))
							continue
						}
						logger.Info("Seeded category", zap.String("slug", c.Slug))
					}
				}

				// 2. Seed Reports
				var reports []report.Report
				if err := readJSON(reportsPath, &reports); err != nil {
					logger.Error("Failed to read reports.json", zap.Error(err))
				} else {
					for i := range reports {
						r := reports[i]
						if _, err := reportService.Create(ctx, &r); err != nil {
							if apperr.IsKind(err, apperr.KindDuplicateKey) {
								logger.Info("Report exists, skipping", zap.String("slug", r.Slug))
								continue
							}
							logger.Error("Failed to seed report", zap.String("slug", r.Slug), zap.Error(err))
							continue
						}
						logger.Info("Seeded report", zap.String("slug", r.Slug))
					}
				}

				// 3. Seed Insights
				var insights []insight.Insight
				if err := readJSON(insightsPath, &insights); err != nil {
					logger.Error("Failed to read insights.json", zap.Error(err))
				} else {
					for i := range insights {
						ins := insights[i]
						if _, err := insightService.Create(ctx, &ins); err != nil {
							if apperr.IsKind(err, apperr.KindDuplicateKey) {
								logger.Info("Insight exists, skipping", zap.String("slug", ins.Slug))
								continue
							}
							logger.Error("Failed to seed insight", zap.String("slug", ins.Slug), zap.Error(err))
							continue
						}
						logger.Info("Seeded insight", zap.String("slug", ins.Slug))
					}
				}

				logger.Info("✅ Database Seeding Completed")
			}()
			return nil
		},
	})
}

func main() {
	app := fx.New(
		fx.Provide(
			config.LoadConfig,
			logger.NewLogger,
			database.NewDatabase,

			category.NewCategoryRepository,
			report.NewReportRepository,
			insight.NewInsightRepository,

			category.NewCategoryService,
			report.NewReportService,
			insight.NewInsightService,
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Invoke(Seed),
	)

	if err := app.Err(); err != nil {
		log.Fatalf("Failed to initialize seeder: %v", err)
	}

	app.Run()
}
