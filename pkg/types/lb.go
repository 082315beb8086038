package types

// Target represents a registered target in a target group
type Target struct {
	ID     string // instance ID or IP
	Port   int
	AZ     string
	Health string // healthy, unhealthy, draining, unused, initial
	Reason string // e.g. Target.FailedHealthChecks, empty when healthy
}

// Healthy reports whether the target passed its last health check.
func (t Target) Healthy() bool {
	return t.Health == "healthy"
}
