package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"urmonov-web/handlers"
	"urmonov-web/internal/grpc/server"
	"urmonov-web/pkg/config"
	"urmonov-web/pkg/content"
	"urmonov-web/pkg/forms"
	"urmonov-web/pkg/locale"
	"urmonov-web/pkg/logger"
	"urmonov-web/pkg/notify"
	"urmonov-web/pkg/ratelimit"
	"urmonov-web/pkg/translator"
	"urmonov-web/pkg/websocket"
	"urmonov-web/web"
)

// Forma limiti oynasi va xotiradagi limiter tozalash oralig'i
const (
	formRateWindow  = time.Minute
	limiterSweep    = 5 * time.Minute
	limiterMaxIdle  = 30 * time.Minute
	shutdownTimeout = 10 * time.Second
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the website (HTTP and optional gRPC health)",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve(ctx context.Context) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := logger.InitLogger(cfg.Environment); err != nil {
		return fmt.Errorf("logger: %w", err)
	}

	client := content.NewClient(cfg.APIURL, cfg.HTTPTimeout)

	renderer, err := handlers.NewRenderer(web.Templates, cfg.AssetHost)
	if err != nil {
		return fmt.Errorf("templates: %w", err)
	}
	static, err := fs.Sub(web.Static, "static")
	if err != nil {
		return fmt.Errorf("static: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)

	limiter, err := newLimiter(ctx, cfg, g)
	if err != nil {
		return err
	}

	submitter, err := newSubmitter(ctx, cfg, client)
	if err != nil {
		return err
	}

	hub := websocket.NewHub()
	g.Go(func() error {
		hub.Run(ctx)
		return nil
	})

	gate := handlers.NewGate()
	gate.Start(ctx, cfg.SplashDelay, renderer.Preload)

	defLocale, _ := locale.Parse(cfg.DefaultLocale)
	h := handlers.New(handlers.Deps{
		Content:       client,
		AssetHost:     cfg.AssetHost,
		Renderer:      renderer,
		Static:        static,
		Submitter:     submitter,
		Board:         notify.NewBoard(cfg.NotificationTTL, hub),
		Hub:           hub,
		Limiter:       limiter,
		Gate:          gate,
		DefaultLocale: defLocale,
		SecureCookies: cfg.IsProduction(),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           h.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	g.Go(func() error {
		logger.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.Info("Shutting down HTTP server")
		return srv.Shutdown(shutdownCtx)
	})

	if cfg.GRPCPort != "" {
		lis, err := net.Listen("tcp", ":"+cfg.GRPCPort)
		if err != nil {
			return fmt.Errorf("grpc listen: %w", err)
		}
		gs := server.New()
		gs.ServeWhenReady(ctx, gate.Ready())
		g.Go(func() error {
			return gs.Serve(ctx, lis)
		})
	}

	return g.Wait()
}

// newSubmitter - OPENAI_API_KEY bo'lsa OpenAI-compatible API, GEMINI_API_KEY
// bo'lsa Gemini, aks holda tarjimasiz
func newSubmitter(ctx context.Context, cfg *config.Config, client *content.Client) (*forms.Submitter, error) {
	switch {
	case cfg.OpenAIAPIKey != "":
		logger.Info("Form translation enabled", zap.String("model", cfg.TranslateModel))
		return forms.NewSubmitter(client, translator.New(cfg.OpenAIAPIKey, cfg.TranslateBaseURL, cfg.TranslateModel)), nil
	case cfg.GeminiAPIKey != "":
		g, err := translator.NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return nil, fmt.Errorf("translator: %w", err)
		}
		logger.Info("Form translation enabled", zap.String("model", cfg.GeminiModel))
		return forms.NewSubmitter(client, g), nil
	default:
		return forms.NewSubmitter(client, nil), nil
	}
}

// newLimiter - REDIS_ADDR berilsa Redis, aks holda xotiradagi limiter
func newLimiter(ctx context.Context, cfg *config.Config, g *errgroup.Group) (ratelimit.Limiter, error) {
	if cfg.HasRedis() {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			// limiter xatoda so'rovni o'tkazadi, server baribir ishga tushadi
			logger.Warn("Redis unavailable at startup", zap.String("addr", cfg.RedisAddr), zap.Error(err))
		}
		g.Go(func() error {
			<-ctx.Done()
			return rdb.Close()
		})
		return ratelimit.NewRedisLimiter(rdb, cfg.FormRateLimit, formRateWindow), nil
	}

	mem := ratelimit.NewMemoryLimiter(cfg.FormRateLimit, formRateWindow)
	g.Go(func() error {
		mem.RunCleanup(ctx, limiterSweep, limiterMaxIdle)
		return nil
	})
	return mem, nil
}
