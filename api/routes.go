package api

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budgetwise/internal/handlers/v1/account"
	"github.com/carson-networks/budgetwise/internal/handlers/v1/status"
	"github.com/carson-networks/budgetwise/internal/logging"
	"github.com/carson-networks/budgetwise/internal/metrics"
	"github.com/carson-networks/budgetwise/internal/service"
)

type pinger interface {
	PingContext(ctx context.Context) error
}

type Rest struct {
	Logger  *logrus.Logger
	Port    string
	Service *service.Service
	DB      pinger
}

// Handler builds the router: the huma account API plus the plain status and metrics endpoints.
func (r *Rest) Handler() http.Handler {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler(r.DB)
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))
	mux.Handle("/metrics", promhttp.Handler())

	api := humago.New(mux, huma.DefaultConfig("Budget Server", "1.0.0"))
	api.UseMiddleware(metrics.HumaMiddleware(), logging.HumaMiddleware(r.Logger))

	account.NewListAccountsHandler(r.Service.Account).Register(api)
	account.NewCreateAccountHandler(r.Service.Account).Register(api)
	account.NewDeleteAccountHandler(r.Service.Account).Register(api)

	return mux
}

// Serve listens until ctx is cancelled, then shuts the server down gracefully.
// It returns only after in-flight requests have drained.
func (r *Rest) Serve(ctx context.Context) {
	server := &http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Handler(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	listener, err := net.Listen("tcp", server.Addr)
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
		return
	}
	r.serve(ctx, server, listener)
}

func (r *Rest) serve(ctx context.Context, server *http.Server, listener net.Listener) {
	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			r.Logger.WithError(err).Error("HttpServer.Serve.shutdown error")
		}
	}()

	r.Logger.WithField("addr", listener.Addr().String()).Info("HttpServer.Serve.listening")
	err := server.Serve(listener)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
		return
	}

	<-shutdownDone
	r.Logger.Info("HttpServer.Serve.shutting down")
}
