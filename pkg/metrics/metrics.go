// Package metrics provides Prometheus observability for the scheduling
// engine. The engine degrades malformed or duplicate input to skips rather
// than errors; these counters keep that behavior visible.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry is the custom prometheus registry for the application.
var Registry = prometheus.NewRegistry()

// factory registers metrics against our custom Registry directly.
var factory = promauto.With(Registry)

// MalformedTimeValues counts HH:MM values that failed to parse and were
// skipped. A rising value means dirty coverage or roster data upstream.
var MalformedTimeValues = factory.NewCounter(prometheus.CounterOpts{
	Namespace: "staffplan",
	Name:      "malformed_time_values_total",
	Help:      "Count of unparseable HH:MM values skipped during scheduling",
})

// DuplicateTasksSkipped counts flattened tasks discarded because another
// coverage row declared the identical slot.
var DuplicateTasksSkipped = factory.NewCounter(prometheus.CounterOpts{
	Namespace: "staffplan",
	Name:      "duplicate_tasks_skipped_total",
	Help:      "Count of duplicate shift tasks discarded during flattening",
})

// InactiveRowsSkipped counts coverage rows ignored because they are inactive.
var InactiveRowsSkipped = factory.NewCounter(prometheus.CounterOpts{
	Namespace: "staffplan",
	Name:      "inactive_rows_skipped_total",
	Help:      "Count of inactive coverage rows skipped during flattening",
})

// TasksPreCovered counts tasks excluded from auto-assignment because a
// pre-existing assignment already staffed the station in that window.
var TasksPreCovered = factory.NewCounter(prometheus.CounterOpts{
	Namespace: "staffplan",
	Name:      "tasks_precovered_total",
	Help:      "Count of tasks already satisfied by pre-existing assignments",
})

// TasksUnassigned counts tasks for which no eligible worker existed.
var TasksUnassigned = factory.NewCounter(prometheus.CounterOpts{
	Namespace: "staffplan",
	Name:      "tasks_unassigned_total",
	Help:      "Count of tasks left unassigned after candidate filtering",
})

// AssignmentsCreated counts draft assignments produced by the engine.
var AssignmentsCreated = factory.NewCounter(prometheus.CounterOpts{
	Namespace: "staffplan",
	Name:      "assignments_created_total",
	Help:      "Count of draft assignments created by the engine",
})
