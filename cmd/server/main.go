package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	grpcRouter "github.com/dtroode/gocalendar/internal/api/grpc/router"
	grpcServer "github.com/dtroode/gocalendar/internal/api/grpc/server"
	httpctx "github.com/dtroode/gocalendar/internal/api/http/context"
	httpRouter "github.com/dtroode/gocalendar/internal/api/http/router"
	httpServer "github.com/dtroode/gocalendar/internal/api/http/server"
	"github.com/dtroode/gocalendar/internal/config"
	"github.com/dtroode/gocalendar/internal/logger"
	"github.com/dtroode/gocalendar/internal/mail"
	"github.com/dtroode/gocalendar/internal/model"
	"github.com/dtroode/gocalendar/internal/notification"
	"github.com/dtroode/gocalendar/internal/password"
	"github.com/dtroode/gocalendar/internal/repository/postgres"
	"github.com/dtroode/gocalendar/internal/repository/sqlite"
	"github.com/dtroode/gocalendar/internal/server"
	"github.com/dtroode/gocalendar/internal/service"
	storage "github.com/dtroode/gocalendar/internal/storage/minio"
	"github.com/dtroode/gocalendar/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

// stores bundles the repositories of one database backend.
type stores struct {
	users   model.UserStore
	entries model.EntryStore
	pinger  model.Pinger
	close   func() error
}

func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_FILE"), "path to YAML config file")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel, cfg.LogFormat)

	st, err := openStores(ctx, cfg.Database)
	if err != nil {
		logger.Fatal("failed to initialize storage", "driver", cfg.Database.Driver, "error", err)
	}

	hasher, err := password.NewBcrypt(cfg.Password.BcryptCost)
	if err != nil {
		logger.Fatal("failed to initialize password hasher", "error", err)
	}
	tokenManager := token.NewJWT(cfg.JWT.Secret, cfg.JWT.TTL)

	sender, err := newSender(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize mail sender", "error", err)
	}
	dispatcher := notification.NewDispatcher(sender, notification.Options{
		From:        cfg.Mail.From,
		Subject:     cfg.Mail.Subject,
		Workers:     cfg.Notify.Workers,
		QueueSize:   cfg.Notify.QueueSize,
		SendTimeout: cfg.Notify.SendTimeout,
	}, logger)
	dispatcher.Start()

	authService := service.NewAuth(st.users, hasher, tokenManager, logger)
	entryService := service.NewEntry(st.entries, dispatcher, logger)

	sl, err := server.NewSecurityLayer(cfg.HTTP.EnableHTTPS, cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	if err != nil {
		logger.Fatal("failed to initialize security layer", "error", err)
	}

	router := httpRouter.New(authService, entryService, authService, httpctx.NewManager(), logger, httpRouter.Options{
		RequestTimeout:     cfg.HTTP.RequestTimeout,
		CORSAllowedOrigins: cfg.HTTP.CORSAllowedOrigins,
	})
	servers := []model.Server{
		httpServer.NewHTTPServer(router.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port), httpServer.Timeouts{
			Read:  cfg.HTTP.ReadTimeout,
			Write: cfg.HTTP.WriteTimeout,
			Idle:  2 * cfg.HTTP.WriteTimeout,
		}),
	}
	if cfg.GRPC.Enabled {
		gs := grpcRouter.New(st.pinger, logger).Register()
		servers = append(servers, grpcServer.NewGRPCServer(gs, fmt.Sprintf(":%s", cfg.GRPC.Port)))
	}

	var wg sync.WaitGroup
	for _, s := range servers {
		wg.Add(1)
		go func(s model.Server) {
			defer wg.Done()
			logger.Info("Starting server on", "address", s.Address())
			if err := s.Start(sl); err != nil {
				logger.Error("failed to start server", "error", err, "address", s.Address())
				stop()
			}
		}(s)
	}

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	for _, s := range servers {
		if err := s.Stop(shutdownCtx); err != nil {
			logger.Error("error during server shutdown", "error", err, "address", s.Address())
		}
	}
	wg.Wait()

	if err := dispatcher.Stop(shutdownCtx); err != nil {
		logger.Error("notification queue not drained", "error", err)
	}
	if err := st.close(); err != nil {
		logger.Error("failed to close storage", "error", err)
	}

	logger.Info("shutdown complete")
}

func openStores(ctx context.Context, cfg config.Database) (stores, error) {
	switch cfg.Driver {
	case "sqlite":
		conn, err := sqlite.NewConnection(cfg.DSN)
		if err != nil {
			return stores{}, err
		}
		return stores{
			users:   sqlite.NewUserRepository(conn),
			entries: sqlite.NewEntryRepository(conn),
			pinger:  conn,
			close:   conn.Close,
		}, nil
	default:
		conn, err := postgres.NewConnection(ctx, cfg.DSN, cfg.MaxConns)
		if err != nil {
			return stores{}, err
		}
		return stores{
			users:   postgres.NewUserRepository(conn.DB),
			entries: postgres.NewEntryRepository(conn.DB),
			pinger:  conn,
			close:   conn.Close,
		}, nil
	}
}

// newSender delivers over SMTP when a host is configured and archives
// every message to object storage when enabled.
func newSender(ctx context.Context, cfg *config.Config, logger *logger.Logger) (model.Sender, error) {
	var sender model.Sender
	if cfg.SMTP.Host != "" {
		sender = mail.NewSMTPSender(mail.SMTPConfig{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
		})
	} else {
		logger.Warn("SMTP host is not set, notifications will only be logged")
		sender = mail.NewLogSender(logger)
	}

	if !cfg.Storage.Enabled {
		return sender, nil
	}

	archive, err := storage.NewArchive(ctx, storage.Config{
		Endpoint:  cfg.Storage.Endpoint,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Bucket:    cfg.Storage.Bucket,
		UseSSL:    cfg.Storage.UseSSL,
	})
	if err != nil {
		return nil, err
	}
	return mail.NewArchivingSender(sender, archive, logger), nil
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
