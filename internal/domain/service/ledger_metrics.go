package service

// LedgerMetrics records domain-level measurements. Implementations must be safe for concurrent use.
type LedgerMetrics interface {
	IncRegistration()
	IncProductCreated()
	ObservePurchase(impact float64)
	IncIdempotentReplay()
	IncDrift()
}
