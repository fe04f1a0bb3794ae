package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	threatsCreatedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "argus_threats_created_total",
		Help: "Total number of IOC records created",
	})
	threatsDeletedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "argus_threats_deleted_total",
		Help: "Total number of IOC records deleted",
	})
	threatConflictsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "argus_threat_conflicts_total",
		Help: "Total number of create attempts rejected as duplicate values",
	})
)

// Register registers Prometheus collectors. Call once at startup.
func Register(registry *prometheus.Registry) {
	registry.MustRegister(threatsCreatedTotal, threatsDeletedTotal, threatConflictsTotal)
}

// IncThreatCreated increments the created records counter.
func IncThreatCreated() { threatsCreatedTotal.Inc() }

// IncThreatDeleted increments the deleted records counter.
func IncThreatDeleted() { threatsDeletedTotal.Inc() }

// IncThreatConflict increments the duplicate-value rejections counter.
func IncThreatConflict() { threatConflictsTotal.Inc() }
