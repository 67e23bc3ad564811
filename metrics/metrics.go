// Package metrics provides Prometheus observability metrics for the ticket
// assigner. Gauges describe the last completed batch run; counters accumulate
// across runs within one process.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry is the custom prometheus registry for our application
var Registry = prometheus.NewRegistry()

// factory allows us to register metrics to our custom Registry directly
var factory = promauto.With(Registry)

// =============================================================================
// CRITICAL METRICS - Assignment Visibility
// =============================================================================

// TicketsAssignedTotal counts tickets routed to an agent.
var TicketsAssignedTotal = factory.NewCounter(prometheus.CounterOpts{
	Namespace: "assigner",
	Name:      "tickets_assigned_total",
	Help:      "Total number of tickets assigned to agents",
})

// AssignmentsByAgent tracks how many tickets of the last batch went to each
// agent. Skew here indicates the roster's skills don't cover the ticket mix.
var AssignmentsByAgent = factory.NewGaugeVec(prometheus.GaugeOpts{
	Namespace: "assigner",
	Name:      "assignments_by_agent",
	Help:      "Tickets assigned per agent in the last batch run",
}, []string{"agent_id"})

// AgentFinalLoad tracks each agent's simulated load at the end of the last
// batch (baseline current_load plus assignments received).
var AgentFinalLoad = factory.NewGaugeVec(prometheus.GaugeOpts{
	Namespace: "assigner",
	Name:      "agent_final_load",
	Help:      "Simulated agent load after the last batch run",
}, []string{"agent_id"})

// PriorityTierTotal counts classified tickets by urgency tier.
var PriorityTierTotal = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "triage",
	Name:      "priority_tier_total",
	Help:      "Tickets classified per priority tier (including default)",
}, []string{"tier"})

// TicketsWithoutSkillsTotal counts tickets whose text matched no skill
// keyword. High values suggest the keyword table lags the ticket vocabulary.
var TicketsWithoutSkillsTotal = factory.NewCounter(prometheus.CounterOpts{
	Namespace: "triage",
	Name:      "tickets_without_skills_total",
	Help:      "Tickets whose text matched no skill keyword",
})

// =============================================================================
// IMPORTANT METRICS - Operational Health
// =============================================================================

// ParserErrorsTotal tracks input failures by error type.
var ParserErrorsTotal = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "parser",
	Name:      "errors_total",
	Help:      "Total input parse/validation errors by error type",
}, []string{"error_type"})

// ParserAgentsTotal tracks the roster size of the last parsed dataset.
var ParserAgentsTotal = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "parser",
	Name:      "agents_total",
	Help:      "Number of agents in the last parsed dataset",
})

// ParserTicketsTotal tracks the batch size of the last parsed dataset.
var ParserTicketsTotal = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "parser",
	Name:      "tickets_total",
	Help:      "Number of tickets in the last parsed dataset",
})

// ParserDurationSeconds tracks time to parse and validate the input file.
var ParserDurationSeconds = factory.NewHistogram(prometheus.HistogramOpts{
	Namespace: "parser",
	Name:      "duration_seconds",
	Help:      "Time taken to parse and validate the input dataset",
	Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
})

// AssignDurationSeconds tracks time to run the assignment batch.
var AssignDurationSeconds = factory.NewHistogram(prometheus.HistogramOpts{
	Namespace: "assigner",
	Name:      "duration_seconds",
	Help:      "Time taken to assign the full ticket batch",
	Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
})

// =============================================================================
// Helper Functions
// =============================================================================

// ResetBatchGauges resets the per-batch gauges before a new run.
func ResetBatchGauges() {
	ParserAgentsTotal.Set(0)
	ParserTicketsTotal.Set(0)
	AssignmentsByAgent.Reset()
	AgentFinalLoad.Reset()
}
