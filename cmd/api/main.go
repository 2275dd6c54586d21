package main

import (
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/rashedq/repair-ops/internal/config"
	"github.com/rashedq/repair-ops/internal/handlers"
	"github.com/rashedq/repair-ops/internal/repository"
	"github.com/rashedq/repair-ops/internal/services"
	xhttp "github.com/rashedq/repair-ops/pkg/http"
	"github.com/rashedq/repair-ops/pkg/logger"
	"github.com/rashedq/repair-ops/pkg/pg"
	"github.com/rashedq/repair-ops/pkg/prom"
	"github.com/rashedq/repair-ops/pkg/redis"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {

	err := config.Load(argContainsEnvPath())
	if err != nil {
		logger.Error("failed to load config", "error", err)
		return
	}

	s := xhttp.NewServer(xhttp.DefaultServerOption)
	s.Server.ReadBufferSize = 1024 * 16
	s.Server.WriteBufferSize = 1024 * 16
	s.Use(xhttp.CompressMiddleware(6))
	s.Use(xhttp.TimeoutMiddleware(time.Second * 5))
	s.Use(xhttp.RequestLoggerMiddleware)
	s.Use(xhttp.RecoverMiddleware)
	s.Router = xhttp.CreateDefaultRouter()

	readConf := pg.Config{
		User:     config.Get().PostgresReadUser,
		Host:     config.Get().PostgresReadHost,
		Port:     config.Get().PostgresReadPort,
		Password: config.Get().PostgresReadPassword,
		Database: config.Get().PostgresReadDatabase,
	}
	writeConf := pg.Config{
		User:     config.Get().PostgresWriteUser,
		Host:     config.Get().PostgresWriteHost,
		Port:     config.Get().PostgresWritePort,
		Password: config.Get().PostgresWritePassword,
		Database: config.Get().PostgresWriteDatabase,
	}

	pgDebug := false
	if config.Get().AppEnv == "dev" {
		pgDebug = true
	}
	db, err := pg.CreateReadWrite(readConf, writeConf, pgDebug)
	if err != nil {
		logger.Error("failed connecting to pg", "error", err)
		return
	}

	redisAdap, err := redis.NewRedisAdapter("default", config.Get().RedisUniversalKeyPrefix, &redis.Options{
		Addrs:      []string{config.Get().RedisAddr},
		ClientName: "default",
		DB:         config.Get().RedisDatabase,
		Username:   config.Get().RedisUsername,
		Password:   config.Get().RedisPassword,
	})
	if err != nil {
		logger.Error("failed connecting to redis", "error", err)
		return
	}

	var hostname string
	hostname, err = os.Hostname()
	if err != nil {
		hostname = "unknown"
	}
	err = prom.Create(hostname, config.Get().AppEnv, config.Get().PromNamespace)
	if err != nil {
		logger.Error("failed to create prometheus metrics", "error", err)
		return
	}
	if config.Get().AppDebugMetricsAddr != "" {
		go func() {
			prom.ListenAndServer(config.Get().AppDebugMetricsAddr, config.Get().AppDebugMetricsURI)
		}()
	}

	invoiceRepo := repository.NewInvoiceRepository(db)
	templateRepo := repository.NewTemplateRepository(db)
	messageLogRepo := repository.NewMessageLogRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	userRepo := repository.NewUserRepository(db)

	// services
	settingsService := services.NewSettingsService(settingsRepo, redisAdap)
	invoiceService := services.NewInvoiceService(invoiceRepo, userRepo).
		WithCreateAttempts(config.Get().CreateRetryAttempts)
	messageService := services.NewMessageService(invoiceRepo, templateRepo, messageLogRepo, settingsService)
	templateService := services.NewTemplateService(templateRepo)
	healthService := services.NewHealthService(settingsRepo)

	// v1 handlers
	invoiceHandler := handlers.NewInvoiceHandler(invoiceService)
	messageHandler := handlers.NewMessageHandler(messageService)
	templateHandler := handlers.NewTemplateHandler(templateService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)
	healthHandler := handlers.NewHealthHandler(healthService)

	g := s.Router.Group("/api/v1")
	handlers.RegisterInvoiceRoutes(g, invoiceHandler)
	handlers.RegisterMessageRoutes(g, messageHandler)
	handlers.RegisterTemplateRoutes(g, templateHandler)
	handlers.RegisterSettingsRoutes(g, settingsHandler)
	handlers.RegisterHealthRoutes(g, healthHandler)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Kill)

	go func() {
		var err = s.ListenAndServe(config.Get().HttpListenAddr)
		if err != nil {
			logger.Error("error in running http-server", "error", err)
		}
	}()

	select {
	case <-c:
		s.Shutdown()
	}
}

func argContainsEnvPath() string {
	for _, v := range os.Args {
		if strings.Contains(v, "--env=") {
			s := strings.Split(v, "=")
			if _, err := os.Open(s[1]); err != nil {
				logger.Error("failed to open the passed env file, got error" + err.Error())
				return ""
			}
			return s[1]
		}
	}
	return ""
}
