package health

import "context"

// StorePinger checks corpus store availability.
type StorePinger interface {
	Ping(ctx context.Context) error
}

// EmbedderChecker checks query-embedding provider availability.
type EmbedderChecker interface {
	HealthCheck(ctx context.Context) error
}
