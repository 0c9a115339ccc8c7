package http

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/avGenie/go-topup-store/internal/app/config"
	"github.com/avGenie/go-topup-store/internal/app/controller/http/middleware/logger"
	"github.com/avGenie/go-topup-store/internal/app/controller/http/middleware/recovery"
	"github.com/avGenie/go-topup-store/internal/app/controller/http/purchase"
	"github.com/avGenie/go-topup-store/internal/app/entity"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

const indexFile = "index.html"

type HTTPServer struct {
	server *http.Server

	config   config.Config
	purchase purchase.Purchase
}

func New(config config.Config, notifier purchase.OrderNotifier) *HTTPServer {
	purchase := purchase.New(notifier, entity.DefaultCatalog)

	server := &http.Server{
		Addr:    config.NetAddr(),
		Handler: createMux(config, purchase),
	}

	return &HTTPServer{
		server:   server,
		config:   config,
		purchase: purchase,
	}
}

func (s *HTTPServer) StartHTTPServer() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, os.Interrupt)
	defer cancel()

	go func() {
		zap.L().Info("starting HTTP server", zap.String("address", s.server.Addr))

		err := s.server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("fatal error while starting server", zap.Error(err))
		}
	}()

	<-ctx.Done()

	zap.L().Info("Got interruption signal. Shutting down HTTP server gracefully...")
	err := s.server.Shutdown(context.Background())
	if err != nil {
		zap.L().Error("error while shutting down server", zap.Error(err))
	}
}

func createMux(config config.Config, purchase purchase.Purchase) *chi.Mux {
	r := chi.NewRouter()

	r.Use(logger.LoggerMiddleware)
	r.Use(recovery.RecoveryMiddleware(purchaseFault))

	r.Group(func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: config.CORSOrigins,
			AllowedMethods: []string{http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Content-Type"},
		}))
		r.Post("/api/purchase", purchase.CreatePurchase())
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, filepath.Join(config.StaticDir, indexFile))
	})
	r.Handle("/*", http.FileServer(http.Dir(config.StaticDir)))

	return r
}

func purchaseFault(w http.ResponseWriter) {
	purchase.SendInternalError(w)
}
