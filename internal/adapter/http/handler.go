package httpadapter

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"crowdfund-ledger/internal/adapter/auth"
	"crowdfund-ledger/internal/core/domain"
	"crowdfund-ledger/internal/core/port"
	"crowdfund-ledger/internal/metrics"
)

// CallerVerifier turns a bearer token into the address that signed it.
type CallerVerifier interface {
	Verify(token string) (domain.Address, error)
}

// Options carries the read-side collaborators of a Handler. Verifier may be
// nil, in which case bearer tokens are ignored.
type Options struct {
	Events       port.EventReader
	Tokens       port.TokenLedger
	Clock        port.Clock
	Verifier     CallerVerifier
	DefaultToken domain.Address
}

// Handler is the inbound HTTP adapter. Campaign operations go through the
// use case; ledger, event and balance reads go straight to their ports.
type Handler struct {
	svc    port.CampaignUseCase
	opts   Options
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.CampaignUseCase, logger *slog.Logger, opts Options) *Handler {
	h := &Handler{svc: svc, opts: opts, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recoverer, h.countRequests)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(h.authenticate)
		r.Get("/ledger", h.handleLedger)
		r.Get("/token/balances/{address}", h.handleBalance)
		r.Route("/campaign", func(r chi.Router) {
			r.Post("/initialize", h.handleInitialize)
			r.Get("/status", h.handleStatus)
			r.Post("/deposits", h.handleDeposit)
			r.Get("/deposits/{address}", h.handleGetDeposit)
			r.Post("/withdraw", h.handleWithdraw)
			r.Post("/refunds", h.handleRefund)
			r.Get("/events", h.handleEvents)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// authenticate attaches the address proven by a bearer token to the request
// context. Requests without a token pass through unauthenticated; the ledger
// rejects them where a signature is required.
func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if h.opts.Verifier == nil || header == "" {
			next.ServeHTTP(w, r)
			return
		}
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			writeJSONError(w, http.StatusUnauthorized, "invalid_proof", "expected a bearer token")
			return
		}
		caller, err := h.opts.Verifier.Verify(token)
		if err != nil {
			h.logger.Debug("caller proof rejected", slog.Any("error", err))
			writeJSONError(w, http.StatusUnauthorized, "invalid_proof", err.Error())
			return
		}
		next.ServeHTTP(w, r.WithContext(auth.WithCaller(r.Context(), caller)))
	})
}

func (h *Handler) countRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		route := "unmatched"
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		metrics.HTTPRequests.WithLabelValues(route, strconv.Itoa(status)).Inc()
	})
}
