package service

import "github.com/prometheus/client_golang/prometheus"

var seedSettlements = prometheus.NewCounterVec(prometheus.CounterOpts{
	Namespace: "plot",
	Name:      "seed_settlements_total",
	Help:      "Seeds marked or unmarked as paid, by action and payer.",
}, []string{"action", "payer"})

// RegisterMetrics registers the service-level collectors on reg.
func RegisterMetrics(reg prometheus.Registerer) error {
	return reg.Register(seedSettlements)
}
