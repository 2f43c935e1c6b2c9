package bindz

// MetricsProvider allows integration with metrics systems like Prometheus, StatsD, etc.
// Implement this interface to receive callbacks on State activity.
// See pkg/prometheus for a ready-made implementation.
type MetricsProvider interface {
	// OnChange is called after a State commits a new value and before its
	// observers run. Observers is the number of observers about to be notified.
	OnChange(name string, observers int)
}

// NoOpMetricsProvider is a no-op implementation of MetricsProvider.
// Use this as an embedded type to implement only the methods you need.
type NoOpMetricsProvider struct{}

func (NoOpMetricsProvider) OnChange(_ string, _ int) {}
