package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Component names used by the plugin services.
const (
	ComponentGRPC      = "grpc"
	ComponentAuthority = "authority"
)

// Values of HealthStatus.Status.
const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
	StatusReady     = "ready"
	StatusNotReady  = "not_ready"
)

// HealthStatus is the body served by /health and /ready.
type HealthStatus struct {
	Status     string            `json:"status"`
	Timestamp  time.Time         `json:"timestamp"`
	Components map[string]string `json:"components,omitempty"`
	Message    string            `json:"message,omitempty"`
	Version    string            `json:"version,omitempty"`
	Uptime     string            `json:"uptime,omitempty"`
}

// ComponentUp mirrors every UpdateComponent call as a 0/1 gauge.
var ComponentUp = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "rlvm_component_up",
		Help: "Whether a process component last reported healthy",
	},
	[]string{"component"},
)

func init() {
	prometheus.MustRegister(ComponentUp)
}

type componentState struct {
	Healthy bool
	Message string
	Updated time.Time
}

// registry is the process-wide component table. Only the components listed in
// critical gate readiness.
type registry struct {
	mu         sync.RWMutex
	components map[string]componentState
	critical   []string
	started    time.Time
	version    string
}

var healthChecker = newHealthChecker()

func newHealthChecker() *registry {
	return &registry{
		components: make(map[string]componentState),
		critical:   []string{ComponentGRPC},
		started:    time.Now(),
	}
}

// SetVersion sets the version reported by /health and /ready.
func SetVersion(version string) {
	healthChecker.mu.Lock()
	healthChecker.version = version
	healthChecker.mu.Unlock()
}

// SetCriticalComponents replaces the set of components that must be healthy
// before the process reports ready.
func SetCriticalComponents(names ...string) {
	healthChecker.mu.Lock()
	healthChecker.critical = append([]string(nil), names...)
	healthChecker.mu.Unlock()
}

// UpdateComponent records the health of a component.
func UpdateComponent(name string, healthy bool, message string) {
	healthChecker.mu.Lock()
	healthChecker.components[name] = componentState{
		Healthy: healthy,
		Message: message,
		Updated: time.Now(),
	}
	healthChecker.mu.Unlock()

	up := 0.0
	if healthy {
		up = 1
	}
	ComponentUp.WithLabelValues(name).Set(up)
}

// GetHealth reports every component that has ever been updated. Any unhealthy
// component makes the process unhealthy.
func GetHealth() HealthStatus {
	healthChecker.mu.RLock()
	defer healthChecker.mu.RUnlock()

	hs := healthChecker.status(StatusHealthy)
	for name, c := range healthChecker.components {
		if c.Healthy {
			hs.Components[name] = StatusHealthy
			continue
		}
		hs.Status = StatusUnhealthy
		hs.Components[name] = StatusUnhealthy + ": " + c.Message
	}
	return hs
}

// GetReadiness reports only the critical components. A critical component
// that never reported counts as not ready.
func GetReadiness() HealthStatus {
	healthChecker.mu.RLock()
	defer healthChecker.mu.RUnlock()

	hs := healthChecker.status(StatusReady)
	for _, name := range healthChecker.critical {
		c, ok := healthChecker.components[name]
		switch {
		case !ok:
			hs.Status = StatusNotReady
			hs.Message = "waiting for " + name + " initialization"
			hs.Components[name] = "not registered"
		case !c.Healthy:
			hs.Status = StatusNotReady
			hs.Message = "waiting for " + name
			hs.Components[name] = "not ready: " + c.Message
		default:
			hs.Components[name] = StatusReady
		}
	}
	return hs
}

// status must be called with r.mu held.
func (r *registry) status(initial string) HealthStatus {
	return HealthStatus{
		Status:     initial,
		Timestamp:  time.Now(),
		Components: make(map[string]string),
		Version:    r.version,
		Uptime:     time.Since(r.started).Round(time.Second).String(),
	}
}
