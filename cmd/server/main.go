package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/rlopes-dev/estoque-painel/internal/config"
	"github.com/rlopes-dev/estoque-painel/internal/export"
	"github.com/rlopes-dev/estoque-painel/internal/forms"
	"github.com/rlopes-dev/estoque-painel/internal/notify"
	"github.com/rlopes-dev/estoque-painel/internal/refresh"
	"github.com/rlopes-dev/estoque-painel/internal/scheduler"
	"github.com/rlopes-dev/estoque-painel/internal/server/handlers"
	"github.com/rlopes-dev/estoque-painel/internal/server/router"
	"github.com/rlopes-dev/estoque-painel/internal/view"
	"github.com/rlopes-dev/estoque-painel/internal/view/chart"
	"github.com/rlopes-dev/estoque-painel/pkg/clients/inventory"
	"github.com/rlopes-dev/estoque-painel/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New(os.Getenv("LOG_LEVEL")))
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	gateway := inventory.NewClient(cfg.Backend)

	surface := view.NewSurface()
	chartCtx := chart.NewContext(chart.Headless())
	defer chartCtx.Close()

	statsRenderer := view.NewStatsRenderer(gateway, surface, chartCtx, baseLogger.Named("view.stats"))
	stockRenderer := view.NewStockRenderer(gateway, surface, baseLogger.Named("view.estoque"))
	historyRenderer := view.NewHistoryRenderer(gateway, surface, baseLogger.Named("view.historico"))
	usersRenderer := view.NewUsersRenderer(gateway, surface, cfg.Panel.AdminEnabled, baseLogger.Named("view.usuarios"))

	orchestrator := refresh.NewOrchestrator(baseLogger.Named("refresh"),
		statsRenderer, stockRenderer, historyRenderer, usersRenderer)

	notifier := notify.NewEmitter(cfg.Panel.NotifyTTL, cfg.Panel.NotifyMax, baseLogger.Named("notify"))
	defer notifier.Close()

	submitter := forms.NewSubmitter(gateway, notifier, orchestrator, baseLogger.Named("forms"))
	submitter.Register(forms.Spec{
		ID:         "formEntrada",
		Endpoint:   inventory.PathEntrada,
		Fields:     map[string]string{"cod": "entCod", "qtd": "entQtd", "data": "entData"},
		DateFields: []string{"data"},
	})
	submitter.Register(forms.Spec{
		ID:         "formSaida",
		Endpoint:   inventory.PathSaida,
		Fields:     map[string]string{"cod": "saiCod", "qtd": "saiQtd", "data": "saiData"},
		DateFields: []string{"data"},
	})
	submitter.Register(forms.Spec{
		ID:       "formItem",
		Endpoint: inventory.PathItens,
		Fields:   map[string]string{"cod": "newCod", "descricao": "newDesc", "unid": "newUnid", "estoque_minimo": "newMin"},
		Modal:    true,
	})

	userActions := forms.NewUserActions(gateway, notifier, usersRenderer, baseLogger.Named("forms.usuarios"))

	exporter := export.NewExporter(gateway, baseLogger.Named("export"))

	panelHandler := handlers.NewPanelHandler(orchestrator, surface, stockRenderer, submitter, userActions, notifier, baseLogger.Named("handlers.painel"))
	exportHandler := handlers.NewExportHandler(exporter, baseLogger.Named("handlers.export"))
	engine := router.New(panelHandler, exportHandler, baseLogger.Named("router"))

	sched := scheduler.NewScheduler(cfg.Refresh, orchestrator, baseLogger.Named("scheduler"))
	sched.Start()
	defer sched.Stop()

	// Initial render of every panel, same as the page load path.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		orchestrator.RefreshAll(ctx)
	}()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
