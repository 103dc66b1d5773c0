// Package metrics registers the pipeline's Prometheus collectors, mirroring
// the teacher's core/... Prometheus usage pattern: package-level collectors
// registered once via promauto, incremented from the hot paths that matter.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RecordsStored counts rows successfully written to the persistence
	// sink, labelled by network and table.
	RecordsStored = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "eventify",
		Name:      "records_stored_total",
		Help:      "Records successfully written to the persistence sink.",
	}, []string{"network", "table"})

	// RecordsPublished counts messages successfully pushed to the
	// propagation sink, labelled by network and channel.
	RecordsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "eventify",
		Name:      "records_published_total",
		Help:      "Records successfully pushed to the propagation queue.",
	}, []string{"network", "channel"})

	// StoreFailures counts persistence sink failures, labelled by network
	// and table — independent of RecordsPublished per §7's
	// independent-sink-failure contract.
	StoreFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "eventify",
		Name:      "store_failures_total",
		Help:      "Persistence sink write failures.",
	}, []string{"network", "table"})

	// PublishFailures counts propagation sink failures.
	PublishFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "eventify",
		Name:      "publish_failures_total",
		Help:      "Propagation sink publish failures.",
	}, []string{"network", "channel"})

	// TaskRestarts counts manager-supervised task restarts, labelled by
	// network and task name, per §4.6's Restarting state.
	TaskRestarts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "eventify",
		Name:      "task_restarts_total",
		Help:      "Supervised collector task restarts after a retryable error.",
	}, []string{"network", "task"})

	// TaskDeaths counts manager-supervised tasks reaching the Dead state.
	TaskDeaths = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "eventify",
		Name:      "task_deaths_total",
		Help:      "Supervised collector tasks that reached a fatal error.",
	}, []string{"network", "task"})
)
