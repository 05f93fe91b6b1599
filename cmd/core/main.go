package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gopkg.in/yaml.v3"

	rest_adapter "github.com/JoeShih716/go-mem-bank/internal/app/core/adapter/in/rest"
	memory_adapter "github.com/JoeShih716/go-mem-bank/internal/app/core/adapter/out/memory"
	"github.com/JoeShih716/go-mem-bank/internal/app/core/usecase"
)

const (
	EngineMutex  = "mutex"
	EngineSerial = "serial"
)

type Config struct {
	// Engine 設定使用哪種引擎: "mutex" (預設) 或 "serial"
	Engine string `yaml:"engine"`
	HTTP   struct {
		Addr string `yaml:"addr"`
	} `yaml:"http"`
	Limits memory_adapter.Config `yaml:"limits"`
}

func main() {
	// 1. 載入設定
	cfg := loadConfig()

	// 2. 初始化引擎
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var bank usecase.Bank
	switch cfg.Engine {
	case EngineMutex:
		bank = memory_adapter.NewMutexBank(cfg.Limits)
	case EngineSerial:
		serialBank := memory_adapter.NewSerialBank(cfg.Limits)
		serialBank.Start(ctx)
		bank = serialBank
	default:
		log.Fatalf("Invalid engine type: %q", cfg.Engine)
	}
	log.Printf("Bank engine initialized (engine=%s)", cfg.Engine)

	// 3. 初始化 UseCase
	coreUseCase := usecase.NewCoreUseCase(bank)

	// 4. 初始化 HTTP Adapter (Driving Adapter)
	restServer := rest_adapter.NewServer(coreUseCase)

	srv := &http.Server{
		Addr:    cfg.HTTP.Addr,
		Handler: restServer.Router(),
	}

	// 5. 啟動 HTTP Server
	go func() {
		log.Printf("Starting HTTP server on %s", cfg.HTTP.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to serve: %v", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP shutdown error: %v", err)
	}
	// 取消引擎 context，SerialBank 會把輸送帶上剩餘的請求處理完
	cancel()
	log.Println("Server exited")
}

func loadConfig() Config {
	cfgData, err := os.ReadFile("config/config.yaml")
	if err != nil {
		log.Fatalf("Failed to read config file: %v", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(cfgData, &cfg); err != nil {
		log.Fatalf("Failed to parse config: %v", err)
	}

	// 補全預設配置 (如果 yaml 沒寫)
	if cfg.Engine == "" {
		cfg.Engine = EngineMutex
	}
	if cfg.HTTP.Addr == "" {
		cfg.HTTP.Addr = ":8080"
	}
	return cfg
}
