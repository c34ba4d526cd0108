package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.mongodb.org/mongo-driver/mongo"

	bloghandler "github.com/meeraai/site-backend/internal/blog/handler"
	blogrepo "github.com/meeraai/site-backend/internal/blog/repository"
	blogservice "github.com/meeraai/site-backend/internal/blog/service"
	"github.com/meeraai/site-backend/internal/careers"
	"github.com/meeraai/site-backend/internal/config"
	"github.com/meeraai/site-backend/internal/database"
	"github.com/meeraai/site-backend/internal/mailer"
	positionhandler "github.com/meeraai/site-backend/internal/position/handler"
	positionrepo "github.com/meeraai/site-backend/internal/position/repository"
	positionservice "github.com/meeraai/site-backend/internal/position/service"
	"github.com/meeraai/site-backend/pkg/logger"
	"github.com/meeraai/site-backend/pkg/metrics"
	"github.com/meeraai/site-backend/pkg/middleware"
)

var startTime = time.Now()

func main() {
	// initialize logging (can be controlled with LOG_LEVEL env: debug|info|warn|error|fatal)
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Infof("config loaded: mongo=%v smtp=%v origins=%d", cfg.MongoDB.URI != "", cfg.SMTP.Host != "", len(cfg.CORS.AllowedOrigins))

	uploadStore, err := careers.NewStore(cfg.Upload.Dir)
	if err != nil {
		logger.Fatalf("failed to prepare upload dir: %v", err)
	}

	// Verify the SMTP relay is reachable. Non-fatal: mail failures surface
	// per request, this just gives an early signal in the logs.
	smtpMailer := mailer.NewSMTPMailer(cfg.SMTP, cfg.Mail.FromName)
	smtpReady := false
	if cfg.SMTP.Host != "" {
		if err := smtpMailer.Verify(); err != nil {
			logger.Errorf("SMTP connection error: %v", err)
		} else {
			smtpReady = true
			logger.Info("SMTP server is ready to take our messages")
		}
	} else {
		logger.Warn("SMTP_HOST not set; mail sends will fail")
	}

	r := gin.New()
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	r.Use(gin.Logger(), gin.Recovery())

	// Connect to MongoDB with retry/backoff to tolerate startup races.
	ctx := context.Background()
	const maxAttempts = 5
	backoff := time.Second
	var client *mongo.Client
	var errConn error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		client, errConn = database.ConnectMongo(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
		if errConn == nil {
			break
		}
		logger.Warnf("attempt %d/%d: failed to connect to MongoDB: %v", attempt, maxAttempts, errConn)
		if attempt < maxAttempts {
			time.Sleep(backoff)
			backoff *= 2
		}
	}

	mongoReady := false
	if errConn != nil {
		logger.Warnf("could not connect to MongoDB after %d attempts: %v", maxAttempts, errConn)
	} else {
		mongoReady = true
		defer func() { _ = client.Disconnect(ctx) }()
		logger.Infof("MongoDB connected: database=%s", cfg.MongoDB.Database)

		db := client.Database(cfg.MongoDB.Database)
		blogSvc := blogservice.NewService(blogrepo.NewMongoRepo(db.Collection("blogs")))
		bloghandler.NewHandler(blogSvc).Register(r)
		positionSvc := positionservice.NewService(positionrepo.NewMongoRepo(db.Collection("positions")))
		positionhandler.NewHandler(positionSvc).Register(r)
	}

	pipeline := careers.NewPipeline(uploadStore, smtpMailer, cfg.Mail.ContactEmail)
	careers.NewHandler(pipeline).Register(r)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	// readiness endpoint — 200 only when the document store is available
	r.GET("/ready", func(c *gin.Context) {
		deps := map[string]bool{"mongo": mongoReady, "smtp": smtpReady}
		status := http.StatusOK
		state := "ready"
		if !mongoReady {
			status = http.StatusServiceUnavailable
			state = "not_ready"
		}
		c.JSON(status, gin.H{"status": state, "deps": deps, "uptime": time.Since(startTime).String()})
	})

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.Infof("server is running on %s", addr)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}
