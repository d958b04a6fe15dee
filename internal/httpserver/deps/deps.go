package deps

import (
	"time"

	"github.com/linkdock/linkdock/internal/executor"
	"github.com/linkdock/linkdock/internal/health"
	"github.com/linkdock/linkdock/internal/logger"
	filestore "github.com/linkdock/linkdock/internal/store/file"
)

type Deps struct {
	Logger    logger.Logger
	StartTime time.Time
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
	TimeNow   func() time.Time // for testing, defaults to time.Now

	Store   *filestore.Store // document store backing all CRUD
	Checker *health.Checker  // health check engine
	Runner  *executor.Runner // API execution engine

	PingTimeout time.Duration // one-off reachability probe timeout

	SweepTrigger chan struct{} // channel to trigger a manual health sweep (nil if sweep disabled)

	ProbeBurst        int // token bucket burst for execute/ping endpoints
	ProbeRefillPerMin int // token refill rate per client IP

	AllowedHosts []string // Host headers allowed to access the server
	AllowedCIDRS []string // IPs/CIDRs allowed to access the server
	TrustProxy   bool     // true if running behind a trusted reverse proxy
}
