package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"

	"github.com/PaulBabatuyi/portfolio/internal/auth"
	"github.com/PaulBabatuyi/portfolio/internal/captcha"
	"github.com/PaulBabatuyi/portfolio/internal/config"
	"github.com/PaulBabatuyi/portfolio/internal/contentcache"
	"github.com/PaulBabatuyi/portfolio/internal/data"
	"github.com/PaulBabatuyi/portfolio/internal/db"
	"github.com/PaulBabatuyi/portfolio/internal/logging"
	"github.com/PaulBabatuyi/portfolio/internal/mailer"
	"github.com/PaulBabatuyi/portfolio/internal/metrics"
	"github.com/PaulBabatuyi/portfolio/internal/middleware"
	"github.com/PaulBabatuyi/portfolio/internal/ratelimit"
	"github.com/PaulBabatuyi/portfolio/internal/storage"
)

const (
	loginBurst      = 3
	shutdownTimeout = 15 * time.Second
)

func main() {
	conf, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %s\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(conf.Logging, "portfolio")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %s\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, conf, logger); err != nil {
		logger.Error("exited-with-failure", err)
		os.Exit(1)
	}
	logger.Info("exited")
}

func run(ctx context.Context, conf *config.Config, logger lager.Logger) error {
	dbClient, err := db.New(ctx, conf.MongoURI, conf.MongoDatabase)
	if err != nil {
		return fmt.Errorf("connect to DB: %w", err)
	}
	defer func() {
		_ = dbClient.Close(context.Background())
	}()

	if err := dbClient.CreateIndexes(ctx); err != nil {
		return fmt.Errorf("create indexes: %w", err)
	}

	users := data.NewUsersStore(dbClient.Collection(db.Users))
	if err := ensureAdmin(ctx, users, conf.Admin, logger); err != nil {
		return err
	}

	jwtMgr, err := newJWTManager(conf.JWT)
	if err != nil {
		return err
	}

	clk := clock.NewClock()

	limiter := ratelimit.NewLimiter(clk, logger)
	limiter.StartSweeper(conf.RateLimitSweepInterval)
	defer limiter.Stop()

	loginThrottle := middleware.NewLimiterStore(conf.LoginRateLimitRPM, loginBurst, time.Minute, clk, logger)
	defer loginThrottle.Stop()

	m := metrics.New(true, logger)
	m.TrackWindow(limiter.Short().Name(), limiter.Short().Len)
	m.TrackWindow(limiter.Daily().Name(), limiter.Daily().Len)

	var objects objectStore = storage.Disabled{}
	if conf.Storage.Endpoint != "" {
		client, err := storage.New(ctx, storage.Config(conf.Storage), logger)
		if err != nil {
			return err
		}
		objects = client
	} else {
		logger.Info("storage-disabled")
	}

	notifications := mailer.New(mailer.Config(conf.SMTP), logger)
	defer notifications.Wait()

	msgs := data.NewMessagesStore(dbClient.Collection(db.Messages))
	testimonials := data.NewTestimonialsStore(dbClient.Collection(db.Testimonials))
	hub := NewConnectionHub()

	app := &application{
		logger:       logger.Session("http"),
		clock:        clk,
		jwt:          jwtMgr,
		cookieSecure: conf.JWT.CookieSecure,
		loginLimiter: loginThrottle,
		limiter:      limiter,
		verifier:     captcha.NewTurnstileVerifier(conf.TurnstileSecret, nil, logger),
		notifier:     notifications,
		hub:          hub,
		metrics:      m,
		cache:        contentcache.New(conf.ContentCacheTTL, logger),
		ping:         dbClient.Ping,
		users:        users,
		messages:     msgs,
		testimonials: testimonials,
		resumes:      data.NewResumesStore(dbClient.Collection(db.Resumes)),
		contact:      data.NewContactInfoStore(dbClient.Collection(db.ContactInfo)),
		objects:      objects,
		content: contentStores{
			projects:   data.NewContentStore[data.Project](dbClient.Collection(db.Projects)),
			skills:     data.NewContentStore[data.Skill](dbClient.Collection(db.Skills)),
			experience: data.NewContentStore[data.Experience](dbClient.Collection(db.Experiences)),
			education:  data.NewContentStore[data.Education](dbClient.Collection(db.Education)),
			hobbies:    data.NewContentStore[data.Hobby](dbClient.Collection(db.Hobbies)),
		},
	}

	httpServer := &http.Server{
		Addr:              ":" + conf.HTTPPort,
		Handler:           app.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	inbox := newServer(users, msgs, testimonials, jwtMgr, hub, clk, logger)
	var grpcOpts []grpc.ServerOption
	if conf.TLSCert != "" && conf.TLSKey != "" {
		creds, err := credentials.NewServerTLSFromFile(conf.TLSCert, conf.TLSKey)
		if err != nil {
			return fmt.Errorf("load TLS certs: %w", err)
		}
		grpcOpts = append(grpcOpts, grpc.Creds(creds))
	}
	grpcServer, healthServer := newGRPCServer(inbox, loginThrottle, grpcOpts...)
	lis, err := net.Listen("tcp", ":"+conf.GRPCPort)
	if err != nil {
		return fmt.Errorf("listen on gRPC port: %w", err)
	}

	errCh := make(chan error, 2)
	go func() {
		logger.Info("http-server-listening", lager.Data{"addr": httpServer.Addr})
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()
	go func() {
		logger.Info("grpc-server-listening", lager.Data{"addr": lis.Addr().String()})
		if err := grpcServer.Serve(lis); err != nil {
			errCh <- fmt.Errorf("grpc server: %w", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM or when either server fails
	var serveErr error
	select {
	case <-ctx.Done():
	case serveErr = <-errCh:
	}
	logger.Info("shutting-down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	healthServer.Shutdown()
	inbox.Shutdown()
	if !stopGRPC(shutdownCtx, grpcServer) {
		logger.Info("grpc-drain-timed-out")
	}
	if err := httpServer.Shutdown(shutdownCtx); err != nil && serveErr == nil {
		serveErr = fmt.Errorf("http shutdown: %w", err)
	}
	return serveErr
}

func newJWTManager(conf config.JWTConfig) (*auth.JWTManager, error) {
	keys, err := conf.KeyMap()
	if err != nil {
		return nil, err
	}
	if len(keys) > 0 {
		return auth.NewJWTManagerFromKeys(keys, conf.ActiveKid, conf.TTL), nil
	}
	return auth.NewJWTManager(conf.Secret, conf.TTL), nil
}

func ensureAdmin(ctx context.Context, users *data.UsersStore, conf config.AdminConfig, logger lager.Logger) error {
	if conf.Email == "" {
		logger.Info("admin-bootstrap-skipped")
		return nil
	}
	hash, err := auth.HashPassword(conf.Password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	created, err := users.EnsureAdmin(ctx, conf.Email, hash, auth.RoleAdmin)
	if err != nil {
		return fmt.Errorf("ensure admin user: %w", err)
	}
	logger.Info("admin-ensured", lager.Data{"created": created})
	return nil
}
