package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"smart-answer/internal/app"
	"smart-answer/internal/httputil"
)

const shutdownTimeout = 10 * time.Second

type solveRequest struct {
	Question string   `json:"question" validate:"notblank"`
	Options  []string `json:"options"`
}

func main() {
	deps, err := app.Build()
	if err != nil {
		slog.Default().Error("failed to build dependencies", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", deps.Config.Port),
		Handler:           newRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		deps.Log.Info("solver listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		deps.Log.Error("server failed", "err", err)
		os.Exit(1)
	}
	deps.Log.Info("solver stopped")
}

func newRouter(deps app.Deps) *chi.Mux {
	r := httputil.NewRouter(deps.Log, time.Duration(deps.Config.RequestTimeoutSeconds)*time.Second)

	r.Post("/solve", solveHandler(deps))
	r.Get("/health", httputil.HealthHandler())
	r.Get("/healthz", httputil.HealthHandler())
	return r
}

func solveHandler(deps app.Deps) http.HandlerFunc {
	maxBodyBytes := deps.Config.MaxBodyBytes
	optionsRule := fmt.Sprintf("max=%d,dive,max=%d", deps.Config.MaxOptions, deps.Config.MaxOptionLength)

	return func(w http.ResponseWriter, r *http.Request) {
		if maxBodyBytes > 0 {
			r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		}

		var req solveRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				httputil.Fail(deps.Log, w, fmt.Sprintf("request body too large (max %d bytes)", maxBodyBytes), err, http.StatusBadRequest)
				return
			}
			httputil.Fail(deps.Log, w, "invalid payload", err, http.StatusBadRequest)
			return
		}

		if err := httputil.Validator.Struct(&req); err != nil {
			httputil.ValidationError(deps.Log, w, err)
			return
		}
		if err := httputil.Validator.Var(req.Options, optionsRule); err != nil {
			httputil.Fail(deps.Log, w, fmt.Sprintf("options must have at most %d entries of at most %d characters",
				deps.Config.MaxOptions, deps.Config.MaxOptionLength), err, http.StatusBadRequest)
			return
		}
		if req.Options == nil {
			req.Options = []string{}
		}

		res, err := deps.Solver.Solve(r.Context(), req.Question, req.Options)
		if err != nil {
			// Both error kinds are server-side; the message tells them apart.
			httputil.Fail(deps.Log, w, err.Error(), err, http.StatusInternalServerError)
			return
		}

		httputil.WriteJSON(w, http.StatusOK, res)
	}
}
