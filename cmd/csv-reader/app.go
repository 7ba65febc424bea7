package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"csv-reader/internal/config"
	"csv-reader/internal/controllers"
	"csv-reader/internal/logger"
	"csv-reader/internal/models"
	"csv-reader/internal/services"
	"csv-reader/internal/shutdown"
	"csv-reader/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppID      = "com.csvreader.viewer"
	AppVersion = "v0.0.5"
)

// Application owns the toolkit app, the main window and the MVC components.
type Application struct {
	cfg     *config.Config
	fyneApp fyne.App
	window  fyne.Window
	logger  logger.Logger

	controller  *controllers.MainController
	view        *views.MainView
	repo        *models.DatasetRepository
	dataService *services.DataService
	shutdown    *shutdown.Manager
}

func NewApplication(cfg *config.Config) *Application {
	appLogger := logger.New(cfg.Level(), cfg.JSONLogs)

	app.SetMetadata(fyne.AppMetadata{
		ID:      AppID,
		Name:    controllers.AppTitle,
		Version: AppVersion,
	})
	fyneApp := app.NewWithID(AppID)

	window := fyneApp.NewWindow(controllers.AppTitle)
	window.Resize(fyne.NewSize(800, 600))
	window.CenterOnScreen()

	shutdownManager := shutdown.NewManager(appLogger)

	repo := models.NewDatasetRepository()
	recent := services.NewRecentFiles(fyneApp.Preferences(), cfg.MaxRecentFiles)
	dataService := services.NewDataService(appLogger)

	controller := controllers.NewMainController(
		shutdownManager.Context(),
		dataService,
		recent,
		repo,
		appLogger,
		AppVersion,
	)
	view := views.NewMainView(fyneApp, window, AppVersion)
	view.SetActions(controller)
	controller.SetView(view)

	shutdownManager.Register("controller", controller)

	appLogger.Info("Application", "application initialized", map[string]interface{}{
		"version":          AppVersion,
		"go_version":       runtime.Version(),
		"log_level":        cfg.LogLevel,
		"max_recent_files": cfg.MaxRecentFiles,
	})

	return &Application{
		cfg:         cfg,
		fyneApp:     fyneApp,
		window:      window,
		logger:      appLogger,
		controller:  controller,
		view:        view,
		repo:        repo,
		dataService: dataService,
		shutdown:    shutdownManager,
	}
}

// Run shows the window and blocks until the user quits. file, when set, is
// opened once the UI is up; otherwise the last viewed file is reopened.
func (a *Application) Run(file string) error {
	startup := a.controller.LoadLastViewed
	if file != "" {
		if services.IsSupported(file) {
			startup = func() { a.controller.LoadFile(file) }
		} else {
			fmt.Fprintf(os.Stderr, "Error: unsupported file type: %s\n", file)
			a.logger.Warning("Application", "unsupported file argument", map[string]interface{}{"path": file})
			startup = func() {}
		}
	}
	a.fyneApp.Lifecycle().SetOnStarted(startup)

	a.shutdown.Listen(func() {
		fyne.Do(a.fyneApp.Quit)
	})

	go a.startPerformanceMonitoring(a.shutdown.Context())

	a.window.ShowAndRun()

	a.shutdown.Shutdown()
	a.logger.Info("Application", "application terminated", nil)
	return nil
}

func (a *Application) startPerformanceMonitoring(ctx context.Context) {
	ticker := time.NewTicker(a.cfg.MetricsInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.logPerformanceMetrics()
		case <-ctx.Done():
			return
		}
	}
}

func (a *Application) logPerformanceMetrics() {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	stats := a.repo.Stats()
	timings := a.dataService.Timings()
	a.logger.Debug("Application", "performance metrics", map[string]interface{}{
		"go_memory_mb":      memStats.Alloc / 1024 / 1024,
		"go_total_alloc_mb": memStats.TotalAlloc / 1024 / 1024,
		"go_gc_runs":        memStats.NumGC,
		"goroutine_count":   runtime.NumGoroutine(),
		"dataset_loaded":    stats.Loaded,
		"rows_in_memory":    stats.Rows,
		"columns":           stats.Columns,
		"datasets_loaded":   stats.Replaced,
		"avg_csv_load_ms":   timings.Average(services.TypeCSV).Milliseconds(),
		"avg_xlsx_load_ms":  timings.Average(services.TypeXLSX).Milliseconds(),
	})
}
