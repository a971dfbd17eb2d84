package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/arith/internal/arith/calc"
	"github.com/aussiebroadwan/arith/internal/arith/metrics"
	"github.com/aussiebroadwan/arith/internal/arith/service"
	"github.com/aussiebroadwan/arith/internal/arith/store"
	"github.com/aussiebroadwan/arith/pkg/arithsdk"
	"github.com/aussiebroadwan/arith/pkg/httpx"
	"github.com/aussiebroadwan/arith/pkg/slogx"

	_ "github.com/aussiebroadwan/arith/api/arith" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store             store.Store
	TokenService      *service.TokenService
	UserService       *service.UserService
	HistoryService    *service.HistoryService
	CalculatorService *service.CalculatorService
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		metrics.InstrumentHandler,
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerArithmetic()
	r.registerSystem()

	r.Mux.Handle("GET /swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title						Arith API
//	@version					0.1.0
//	@description				Authenticated arithmetic with a per-user history of every operation.
//	@description
//	@description				Tokens are HS256 JWTs obtained from /v1/token or /v1/register.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/arith
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8000
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(http.HandlerFunc(r.dispatch), r.middlewares...).ServeHTTP(w, req)
}

// dispatch routes through the mux, answering unmatched requests with the
// JSON error body instead of the mux's plain-text 404 and 405.
func (r *Router) dispatch(w http.ResponseWriter, req *http.Request) {
	h, pattern := r.Mux.Handler(req)
	if pattern != "" {
		r.Mux.ServeHTTP(w, req)
		return
	}
	h.ServeHTTP(&unmatchedWriter{ResponseWriter: w}, req)
}

// unmatchedWriter swaps the mux's http.Error output for an APIError. The
// Allow header set on 405 is kept.
type unmatchedWriter struct {
	http.ResponseWriter
	wrote bool
}

func (uw *unmatchedWriter) WriteHeader(code int) {
	if uw.wrote {
		return
	}
	uw.wrote = true
	uw.Header().Del("X-Content-Type-Options")

	apiErr := arithsdk.ErrNotFound
	if code == http.StatusMethodNotAllowed {
		apiErr = arithsdk.ErrMethodNotAllowed
	}
	apiErr.WriteError(uw.ResponseWriter)
}

func (uw *unmatchedWriter) Write(b []byte) (int, error) {
	if !uw.wrote {
		uw.WriteHeader(http.StatusNotFound)
	}
	return len(b), nil
}

func (r *Router) registerAuth() {
	// POST /register - strict rate limit by IP (account creation)
	registerHandler := &RegisterHandler{UserService: r.UserService, TokenService: r.TokenService}
	r.Mux.Handle("POST /v1/register",
		httpx.Chain(registerHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /token - strict rate limit by IP + username to slow down guessing
	tokenHandler := &TokenHandler{UserService: r.UserService, TokenService: r.TokenService}
	r.Mux.Handle("POST /v1/token",
		httpx.Chain(tokenHandler,
			httpx.RateLimitByIPAndFormField(httpx.StrictLimit, "username"),
		),
	)
}

func (r *Router) registerArithmetic() {
	authn := authnMiddleware(r.TokenService)

	for _, kind := range calc.Kinds {
		h := &CalcHandler{Calculator: r.CalculatorService, Kind: kind}
		handler := http.HandlerFunc(h.HandleBinary)
		if kind.Arity() == 1 {
			handler = h.HandleSqrt
		}

		r.Mux.Handle("POST /v1/"+kind.String(),
			httpx.Chain(handler,
				authn,
				httpx.RateLimitByUser(httpx.LenientLimit),
			),
		)
	}

	historyHandler := &HistoryHandler{History: r.HistoryService}
	r.Mux.Handle("GET /v1/history",
		httpx.Chain(historyHandler,
			authn,
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("GET /{$}",
		httpx.Chain(http.HandlerFunc(HelloHandler),
			authn,
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - public limits (probes poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /metrics", metrics.Handler())
}
