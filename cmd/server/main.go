package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/life-rhythms-go/internal/api"
	"github.com/jengzang/life-rhythms-go/internal/config"
	"github.com/jengzang/life-rhythms-go/internal/dataset"
	"github.com/jengzang/life-rhythms-go/internal/handler"
	"github.com/jengzang/life-rhythms-go/internal/service"
)

func main() {
	// 加载配置
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	policy, err := dataset.ParseDuplicatePolicy(cfg.Duplicates)
	if err != nil {
		log.Fatalf("Invalid DATASET_DUPLICATES: %v", err)
	}

	// 加载数据集
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	ds, err := dataset.Load(ctx, dataset.Options{
		Path:       cfg.DatasetPath,
		Table:      cfg.DatasetTable,
		Duplicates: policy,
	})
	cancel()
	if err != nil {
		log.Fatalf("Failed to load dataset: %v", err)
	}

	// 初始化路由
	dashboardHandler := handler.NewDashboardHandler(service.NewDashboardService(ds, cfg.DefaultHour))
	router := api.SetupRouter(cfg, dashboardHandler)

	server := &http.Server{
		Addr:         cfg.Port,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	// 启动服务器
	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-shutdownCh

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Graceful shutdown failed: %v", err)
	}
	log.Printf("Server stopped")
}
