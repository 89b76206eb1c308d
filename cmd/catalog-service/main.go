package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/iyhunko/product-catalog/internal/catalog"
	"github.com/iyhunko/product-catalog/internal/config"
	httpAPI "github.com/iyhunko/product-catalog/internal/http"
	"github.com/iyhunko/product-catalog/internal/http/controller"
	"github.com/iyhunko/product-catalog/internal/logger"
	"github.com/iyhunko/product-catalog/internal/metrics"
	"github.com/iyhunko/product-catalog/internal/model"
	"github.com/iyhunko/product-catalog/internal/outbox"
	"github.com/iyhunko/product-catalog/internal/pokeapi"
	sqspkg "github.com/iyhunko/product-catalog/internal/sqs"
)

const shutdownTimeout = 10 * time.Second

func main() {
	conf, err := config.LoadFromEnv()
	handleErr("loading config", err)
	logger.InitJSONLogger(conf.DebugMode)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Deletions are always logged; SQS is optional for the catalog service
	notifier := catalog.MultiNotifier{catalog.LogNotifier{}}
	var outboxWorker *outbox.Worker
	if conf.AWS.SQSQueueURL != "" {
		sqsClient, err := sqspkg.NewClient(ctx, conf.AWS.Region, conf.AWS.Endpoint)
		handleErr("creating SQS client", err)
		queued := outbox.New(outbox.DefaultCapacity)
		outboxWorker = outbox.NewWorker(queued, sqspkg.NewPublisher(sqsClient, conf.AWS.SQSQueueURL), conf.AWS.OutboxInterval)
		go outboxWorker.Start(ctx)
		notifier = append(notifier, queued)
		slog.Info("Publishing catalog notifications", slog.String("queueURL", conf.AWS.SQSQueueURL))
	}

	var seed []model.Product
	if conf.SeedDemoProducts {
		seed = catalog.DemoProducts()
	}
	store := catalog.NewStore(seed, catalog.WithNotifier(notifier))

	searchView := catalog.NewSearchView(conf.Search.DebounceWindow)
	defer searchView.Close()

	remote := pokeapi.NewView(
		pokeapi.NewClient(conf.PokeAPI.BaseURL, conf.PokeAPI.Timeout),
		conf.PokeAPI.Pokemon,
		conf.PokeAPI.Ability,
	)
	go remote.Load(ctx)

	if !conf.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}
	router := httpAPI.InitRouter(gin.New(), httpAPI.Controllers{
		General: controller.New(conf, store),
		Product: controller.NewProductController(store, searchView),
		View:    controller.NewViewController(searchView),
		Remote:  controller.NewRemoteController(remote),
	})
	httpServer := &http.Server{
		Addr:              ":" + conf.HTTPServer.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		// a remote reload waits for both fetches
		WriteTimeout: conf.PokeAPI.Timeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}
	metricsServer := metrics.NewMetricsServer(conf)

	go serve("HTTP", httpServer)
	go serve("metrics", metricsServer)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	slog.Info("Shutting down gracefully...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := errors.Join(httpServer.Shutdown(shutdownCtx), metricsServer.Shutdown(shutdownCtx)); err != nil {
		slog.Error("Shutdown incomplete", slog.Any("err", err))
	}
	if outboxWorker != nil {
		outboxWorker.Stop()
		// deliver what the last requests queued
		outboxWorker.Flush(shutdownCtx)
	}
}

func serve(name string, server *http.Server) {
	slog.Info("Server starting", slog.String("server", name), slog.String("addr", server.Addr))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		handleErr("listening to "+name+" requests", err)
	}
}

func handleErr(msg string, err error) {
	if err != nil {
		slog.Error("error while "+msg, slog.Any("err", err))
		os.Exit(1)
	}
}
