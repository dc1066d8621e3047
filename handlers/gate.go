package handlers

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"urmonov-web/pkg/logger"
)

// Gate - splash holati. Sahifalar kechikish tugaguncha VA shablonlar
// yuklanguncha ochilmaydi.
type Gate struct {
	open    atomic.Bool
	ready   chan struct{}
	started time.Time
	delay   time.Duration
}

// NewGate creates a closed gate.
func NewGate() *Gate {
	return &Gate{ready: make(chan struct{})}
}

// Start waits for both the delay and preload, whichever finishes later,
// then opens the gate. A preload error is logged and the gate opens anyway.
func (g *Gate) Start(ctx context.Context, delay time.Duration, preload func(context.Context) error) {
	g.started = time.Now()
	g.delay = delay

	var eg errgroup.Group
	eg.Go(func() error {
		t := time.NewTimer(delay)
		defer t.Stop()
		select {
		case <-t.C:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})
	eg.Go(func() error {
		return preload(ctx)
	})

	go func() {
		if err := eg.Wait(); err != nil {
			logger.Error("Splash preload failed, opening anyway", zap.Error(err))
		}
		g.markOpen()
	}()
}

// OpenNow opens the gate without waiting.
func (g *Gate) OpenNow() {
	g.markOpen()
}

func (g *Gate) markOpen() {
	if g.open.CompareAndSwap(false, true) {
		close(g.ready)
		logger.Info("Splash gate opened", zap.Duration("after", time.Since(g.started)))
	}
}

// IsOpen reports whether pages are served.
func (g *Gate) IsOpen() bool {
	return g.open.Load()
}

// Ready is closed once the gate opens.
func (g *Gate) Ready() <-chan struct{} {
	return g.ready
}

// retryAfter - Retry-After sarlavhasi uchun soniyalar (kamida 1)
func (g *Gate) retryAfter() int {
	left := g.delay - time.Since(g.started)
	if left <= 0 {
		return 1
	}
	return int(math.Ceil(left.Seconds()))
}

// Middleware serves splash with 503 until the gate opens.
func (g *Gate) Middleware(splash http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if g.IsOpen() {
				next.ServeHTTP(w, r)
				return
			}
			w.Header().Set("Retry-After", strconv.Itoa(g.retryAfter()))
			w.Header().Set("Cache-Control", "no-store")
			splash(w, r)
		})
	}
}
