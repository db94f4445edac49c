package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	_ "bputApi/docs"
)

// @title BPUT Results API
// @version 1.0
// @description Proxy com endpoints estáveis para o portal de resultados da BPUT.
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("Falha ao carregar configuração: %v", err)
	}

	logger, err := NewLogger(cfg)
	if err != nil {
		log.Fatalf("Falha ao iniciar logger: %v", err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	extractor, err := NewOptionExtractor(cfg.OptionExtractor)
	if err != nil {
		logger.Fatal("extractor inválido", zap.Error(err))
	}

	router := NewRouter(cfg, NewBputClient(cfg, logger), extractor, logger)

	srv := &http.Server{
		Addr:    "0.0.0.0:" + cfg.AppPort,
		Handler: router,
	}

	logger.Info("🚀 Servidor rodando", zap.String("addr", srv.Addr), zap.String("upstream", cfg.UpstreamBaseURL))
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("servidor falhou", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("desligando servidor...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("shutdown forçado", zap.Error(err))
	}
	logger.Info("servidor parado")
}
