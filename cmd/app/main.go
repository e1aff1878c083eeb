package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/BloggingApp/post-manager/internal/config"
	"github.com/BloggingApp/post-manager/internal/handler"
	"github.com/BloggingApp/post-manager/internal/repository"
	"github.com/BloggingApp/post-manager/internal/server"
	"github.com/BloggingApp/post-manager/internal/service"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	if err := loadEnv(); err != nil {
		logger.Sugar().Infof("no .env file loaded: %s", err.Error())
	}

	if err := initConfig(); err != nil {
		logger.Sugar().Panicf("failed to initialize yaml config: %s", err.Error())
	}

	gatewayConfig := config.GatewayConfig{
		BaseURL: viper.GetString("remote.base-url"),
	}
	sessionConfig := config.SessionConfig{
		Max:        viper.GetInt("session.max"),
		CookieName: viper.GetString("session.cookie"),
	}

	repos := repository.New(gatewayConfig)
	services, err := service.New(logger, repos, sessionConfig)
	if err != nil {
		logger.Sugar().Panicf("failed to initialize services: %s", err.Error())
	}
	handlers := handler.New(services, handler.Config{
		ClientOrigin: viper.GetString("client.origin"),
		CookieName:   sessionConfig.CookieName,
	})

	srv := server.New()
	serverConfig := config.ServerConfig{
		Port:           viper.GetString("app.port"),
		Handler:        handlers.InitRoutes(),
		MaxHeaderBytes: 1 << 20,
		ReadTimeout:    time.Second * 10,
		WriteTimeout:   time.Second * 10,
	}
	go func(srv *server.Server, cfg config.ServerConfig) {
		if err := srv.Run(cfg); err != nil {
			logger.Sugar().Panicf("failed to run http server: %s", err.Error())
		}
	}(srv, serverConfig)

	logger.Sugar().Infof("Server started on port %s, remote API: %s", serverConfig.Port, gatewayConfig.BaseURL)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logger.Info("Server shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("failed to shut down http server: %s", err.Error())
	}
}

func loadEnv() error {
	return godotenv.Load()
}

func initConfig() error {
	viper.AddConfigPath(".")
	viper.SetConfigType("yaml")
	viper.SetConfigName("app")

	viper.SetDefault("app.port", "8000")
	viper.SetDefault("remote.base-url", "https://jsonplaceholder.typicode.com")
	viper.SetDefault("session.max", service.DEFAULT_MAX_SESSIONS)
	viper.SetDefault("session.cookie", "pm_session")

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
	}
	return nil
}
