package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/linkdock/linkdock/internal/domain"
	"github.com/linkdock/linkdock/internal/httpserver/deps"
	"github.com/linkdock/linkdock/internal/logger"
	"github.com/linkdock/linkdock/internal/utils"
)

type healthzResponse struct {
	Status        string  `json:"status"`
	Timestamp     string  `json:"timestamp"`
	UptimeSeconds float64 `json:"uptime_seconds"`
	Version       string  `json:"version,omitempty"`
	Commit        string  `json:"commit,omitempty"`
	BuildDate     string  `json:"build_date,omitempty"`
	GoVersion     string  `json:"go_version,omitempty"`
}

// Healthz reports liveness of the server itself, not of any bookmark.
func Healthz(d deps.Deps) http.HandlerFunc {
	start := d.StartTime
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		writeJSON(w, http.StatusOK, healthzResponse{
			Status:        "ok",
			Timestamp:     d.TimeNow().UTC().Format(time.RFC3339),
			UptimeSeconds: time.Since(start).Seconds(),
			Version:       d.Version,
			Commit:        d.Commit,
			BuildDate:     d.BuildDate,
			GoVersion:     d.GoVersion,
		})
	}
}

type pingResponse struct {
	Status     string `json:"status"`
	StatusCode int    `json:"statusCode"`
}

// Ping performs a one-shot HEAD request against an arbitrary URL so the
// UI can test reachability before saving a bookmark. Only a 2xx answer
// counts as online; any other answer carries its status code, and a
// transport failure reports code 0.
func Ping(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		target := r.URL.Query().Get("url")
		if target == "" {
			writeError(w, http.StatusBadRequest, "Missing url parameter")
			return
		}
		if err := domain.ValidateProbeURL(target); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid url parameter")
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), d.PingTimeout)
		defer cancel()

		req, err := http.NewRequestWithContext(ctx, http.MethodHead, target, nil)
		if err != nil {
			writeJSON(w, http.StatusOK, pingResponse{Status: domain.StatusOffline})
			return
		}

		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			writeJSON(w, http.StatusOK, pingResponse{Status: domain.StatusOffline})
			return
		}
		defer utils.Close(resp.Body)

		status := domain.StatusOffline
		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			status = domain.StatusOnline
		}
		writeJSON(w, http.StatusOK, pingResponse{
			Status:     status,
			StatusCode: resp.StatusCode,
		})
	}
}

// TriggerSweep asks the background sweeper for an immediate pass over
// every bookmark that has health checking enabled.
func TriggerSweep(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if d.SweepTrigger == nil {
			writeError(w, http.StatusServiceUnavailable, "Health sweeper is disabled")
			return
		}

		select {
		case d.SweepTrigger <- struct{}{}:
			d.Logger.Info("manual health sweep triggered",
				logger.String("remote_ip", r.RemoteAddr))
			writeJSON(w, http.StatusAccepted, map[string]string{"status": "sweep triggered"})
		default:
			d.Logger.Warn("health sweep already in progress",
				logger.String("remote_ip", r.RemoteAddr))
			writeError(w, http.StatusTooManyRequests, "Sweep already in progress")
		}
	}
}
