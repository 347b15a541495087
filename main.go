package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AntonioChieffallo/Student-Grade-Manager/api"
	"github.com/AntonioChieffallo/Student-Grade-Manager/config"
	"github.com/AntonioChieffallo/Student-Grade-Manager/core"
	"github.com/AntonioChieffallo/Student-Grade-Manager/mock"
	"github.com/AntonioChieffallo/Student-Grade-Manager/util"
	"github.com/gin-gonic/gin"
	"github.com/go-kit/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, closer, err := util.NewLogger(cfg.LogDir, cfg.LogPrefix)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	ledger := core.Default()

	if cfg.SeedDemo {
		startTime := time.Now()
		logger.Log("msg", "Seeding demo transcript...")
		mock.Seed(ledger)
		util.LogWithTiming(logger, startTime, "Seeded %d courses", ledger.Len())
		logReport(logger, ledger)
	}

	gin.SetMode(gin.ReleaseMode)
	server := api.NewServer(api.ServerConfig{
		Logger:     log.With(logger, "component", "api"),
		ListenAddr: cfg.APIListenAddr,
	}, ledger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Log("msg", "API server failed", "err", err)
			os.Exit(1)
		}
		return
	case <-ctx.Done():
	}

	logger.Log("msg", "shutting down gracefully")
	err = util.TimeFunction(logger, "shutdown", func() error {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})
	if err != nil {
		os.Exit(1)
	}
}

func logReport(logger log.Logger, ledger *core.Ledger) {
	report := ledger.Report()
	for _, c := range report.Courses {
		logger.Log(
			"msg", "course",
			"name", c.Name,
			"credits", c.Credits,
			"average", fmt.Sprintf("%.1f", c.Average),
			"letter", c.Letter,
			"points", c.GradePoints,
		)
	}
	logger.Log("msg", "transcript loaded", "total_credits", report.TotalCredits, "gpa", fmt.Sprintf("%.2f", report.GPA))
}
