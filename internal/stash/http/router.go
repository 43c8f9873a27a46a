package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/stash/internal/stash/service"
	"github.com/aussiebroadwan/stash/internal/stash/store"
	"github.com/aussiebroadwan/stash/pkg/httpx"
	"github.com/aussiebroadwan/stash/pkg/slogx"

	_ "github.com/aussiebroadwan/stash/api/stash" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store  store.Store
	cookie httpx.CookieConfig
	limits httpx.RateLimitProfiles

	AccountService *service.AccountService
	SessionService *service.SessionService
	ClipService    *service.ClipService
}

func NewRouter(
	buildVersion string,
	st store.Store,
	cookie httpx.CookieConfig,
	limits httpx.RateLimitProfiles,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		logger:       logger,
		store:        st,
		cookie:       cookie,
		limits:       limits,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAccounts()
	r.registerClips()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpx.Chain(httpSwagger.Handler(),
		httpx.RateLimitByIP(r.limits.Public),
	))
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title						Stash API
//	@version					0.1.0
//	@description				Accounts with cookie sessions, and short text clips addressed by a four digit code.
//	@description
//	@description				Clips sent with a passphrase are stored encrypted and can only be read through the open endpoint.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/stash
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8000
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	SessionCookie
//	@in							cookie
//	@name						STASH_SESSION
//	@description				Session token issued by register and login.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAccounts() {
	h := &AccountsHandler{
		AccountService: r.AccountService,
		SessionService: r.SessionService,
		Cookie:         r.cookie,
	}

	// Register and login check passwords: strict, keyed by IP + account name
	r.Mux.Handle("POST /v1/accounts/register",
		httpx.Chain(http.HandlerFunc(h.HandleRegister),
			httpx.RequireForm(httpx.DefaultMaxFormBytes),
			httpx.RateLimitByIPAndFormField(r.limits.Strict, "name"),
		),
	)
	r.Mux.Handle("POST /v1/accounts/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RequireForm(httpx.DefaultMaxFormBytes),
			httpx.RateLimitByIPAndFormField(r.limits.Strict, "name"),
		),
	)

	// Logout only clears the cookie, no body is required
	r.Mux.Handle("POST /v1/accounts/logout",
		httpx.Chain(http.HandlerFunc(h.HandleLogout),
			httpx.RateLimitByIP(r.limits.Lenient),
		),
	)

	r.Mux.Handle("GET /v1/accounts/me",
		httpx.Chain(http.HandlerFunc(h.HandleMe),
			httpx.SessionMiddleware(r.SessionService, r.cookie.Name),
			httpx.RateLimitByAccount(r.limits.Lenient),
		),
	)
}

func (r *Router) registerClips() {
	h := &ClipsHandler{ClipService: r.ClipService}

	r.Mux.Handle("POST /v1/clips",
		httpx.Chain(http.HandlerFunc(h.HandleSend),
			httpx.RequireForm(httpx.DefaultMaxFormBytes),
			httpx.RateLimitByIP(r.limits.Moderate),
		),
	)
	r.Mux.Handle("GET /v1/clips/{code}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.RateLimitByIP(r.limits.Lenient),
		),
	)

	// Open checks a passphrase: strict
	r.Mux.Handle("POST /v1/clips/{code}/open",
		httpx.Chain(http.HandlerFunc(h.HandleOpen),
			httpx.RequireForm(httpx.DefaultMaxFormBytes),
			httpx.RateLimitByIP(r.limits.Strict),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - public limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(r.limits.Public),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.SessionService),
			httpx.RateLimitByIP(r.limits.Public),
		),
	)
}
