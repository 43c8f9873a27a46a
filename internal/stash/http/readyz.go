package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/stash/internal/stash/service"
	"github.com/aussiebroadwan/stash/internal/stash/store"
	"github.com/aussiebroadwan/stash/pkg/httpx"
	"github.com/aussiebroadwan/stash/pkg/slogx"
	"github.com/aussiebroadwan/stash/pkg/stashsdk"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe endpoint returning service health status and checks for critical dependencies
//	@Description	Includes uptime, version, and status of the database and the session signer
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	stashsdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	stashsdk.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(
	startTime time.Time,
	version string,
	st store.Store,
	sessions *service.SessionService,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := map[string]string{
			"database": "ok",
			"signer":   "ok",
		}
		overallStatus := "ok"
		statusCode := http.StatusOK

		// Check database connectivity. The error stays in the logs since it
		// can carry connection details.
		if err := st.Ping(r.Context()); err != nil {
			slogx.FromContext(r.Context()).Warn("readiness: database ping failed", "err", err)
			checks["database"] = "error"
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		if sessions == nil || sessions.Signer == nil {
			checks["signer"] = "error: no signing key loaded"
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		response := stashsdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		}
		httpx.WriteJSON(w, statusCode, response)
	}
}
