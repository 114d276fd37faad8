package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"gstreturns/internal/cache/redis"
	"gstreturns/internal/config"
	"gstreturns/internal/gst"
	"gstreturns/internal/handler"
	"gstreturns/internal/logger"
	"gstreturns/internal/port"
	"gstreturns/internal/repository/postgres"
	"gstreturns/internal/returns"
	"gstreturns/internal/router"
	"gstreturns/internal/service"
	s3storage "gstreturns/internal/storage/s3"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	zlog, err := logger.New(cfg.Server.Environment, cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = zlog.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize the GST engine
	rates, err := gst.NewRateTable(cfg.GST.ValidRates)
	if err != nil {
		return fmt.Errorf("invalid rate table: %w", err)
	}
	loc, err := cfg.GST.Location()
	if err != nil {
		zlog.Warn("timezone database unavailable, using fixed IST offset", zap.Error(err))
		loc = returns.IST
	}
	calc := gst.NewCalculator(rates)
	assembler := returns.NewAssembler(calc, returns.Rules{
		B2CLThreshold:    cfg.GST.B2CLThreshold,
		LateFeePerDay:    cfg.GST.LateFeePerDay,
		LateFeeCapPerAct: cfg.GST.LateFeeCapPerAct,
		DueDay:           cfg.GST.DueDay,
		Location:         loc,
	})

	// Initialize cache
	redisClient, err := redis.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	// Initialize repositories
	businessRepo := postgres.NewBusinessRepo(db)
	invoiceRepo := postgres.NewInvoiceRepo(db)
	purchaseRepo := postgres.NewPurchaseRepo(db)
	returnRepo := redis.NewReturnCache(postgres.NewReturnRepo(db), redisClient, cfg.Redis.TTL, zlog)
	duplicateFinder := postgres.NewDuplicateFinderRepo(db)

	// Initialize storage
	var archive port.ObjectStorage
	if cfg.S3.Bucket != "" {
		archive, err = s3storage.NewArchiveStore(ctx, &cfg.S3)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 client: %w", err)
		}
	}

	// Initialize services
	taxSvc := service.NewTaxService(calc, duplicateFinder)
	returnSvc := service.NewReturnService(businessRepo, invoiceRepo, purchaseRepo, returnRepo,
		assembler, archive, &cfg.S3, zlog.Named("returns"), time.Now)

	// Initialize handlers
	taxH := handler.NewTaxHandler(taxSvc)
	returnH := handler.NewReturnHandler(returnSvc)
	healthH := handler.NewHealthHandler(db, redisClient)

	// Setup router
	r := router.Setup(zlog, cfg.CORS.AllowedOrigins, taxH, returnH, healthH)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		zlog.Info("server starting",
			zap.String("addr", cfg.Server.Port),
			zap.String("environment", cfg.Server.Environment),
			zap.Bool("cache", redisClient != nil),
			zap.Bool("archive", archive != nil))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	zlog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}
