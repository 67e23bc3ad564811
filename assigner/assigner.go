// Package assigner implements the batch assignment engine: it annotates
// every ticket, orders the batch by urgency and age, and greedily routes
// each ticket to the best-scoring agent while threading a simulated load
// counter through subsequent scoring decisions.
package assigner

import (
	"sort"

	"ticket-assigner/errors"
	"ticket-assigner/metrics"
	"ticket-assigner/models"
	"ticket-assigner/scoring"
	"ticket-assigner/triage"
)

// Engine owns the only mutable state of a batch run: the per-agent simulated
// load counters. The roster itself is never mutated. An Engine is not safe
// for concurrent use; the assignment pass is sequential by design because
// every iteration reads loads written by earlier ones.
type Engine struct {
	agents []models.Agent
	loads  map[string]int
}

// New creates an engine for a fixed agent roster. Scoring against an empty
// roster is undefined, so an empty roster is rejected here as well as at
// parse time.
func New(agents []models.Agent) (*Engine, error) {
	if len(agents) == 0 {
		return nil, errors.ErrEmptyRoster
	}
	return &Engine{agents: agents}, nil
}

// Assign runs one batch: every input ticket yields exactly one assignment,
// returned in processing order (priority descending, then creation timestamp
// ascending). Each call is an independent run; load counters re-seed from
// the roster's baseline current_load.
func (e *Engine) Assign(tickets []models.Ticket) []models.Assignment {
	e.loads = make(map[string]int, len(e.agents))
	for _, agent := range e.agents {
		e.loads[agent.AgentID] = agent.CurrentLoad
	}

	annotated := annotate(tickets)

	// Stable sort keeps equal-key tickets in input order, which keeps the
	// whole run deterministic.
	sort.SliceStable(annotated, func(i, j int) bool {
		if annotated[i].PriorityScore != annotated[j].PriorityScore {
			return annotated[i].PriorityScore > annotated[j].PriorityScore
		}
		return annotated[i].Ticket.CreationTimestamp < annotated[j].Ticket.CreationTimestamp
	})

	assignments := make([]models.Assignment, 0, len(annotated))
	for _, at := range annotated {
		agent, breakdown := e.pickAgent(at)
		e.loads[agent.AgentID]++

		assignments = append(assignments, models.Assignment{
			TicketID:        at.Ticket.TicketID,
			Title:           at.Ticket.Title,
			AssignedAgentID: agent.AgentID,
			Rationale:       scoring.Rationale(agent, at.RequiredSkills, breakdown, at.PriorityScore),
		})

		metrics.TicketsAssignedTotal.Inc()
		metrics.AssignmentsByAgent.WithLabelValues(agent.AgentID).Inc()
	}

	for id, load := range e.loads {
		metrics.AgentFinalLoad.WithLabelValues(id).Set(float64(load))
	}

	return assignments
}

// pickAgent scores the full roster against one ticket, using each agent's
// current simulated load, and returns the highest-scoring agent. The strict
// '>' comparison makes the first maximal agent in roster order win ties.
func (e *Engine) pickAgent(at models.AnnotatedTicket) (models.Agent, models.ScoreBreakdown) {
	best := e.agents[0]
	bestScore := scoring.Score(best, at.RequiredSkills, at.PriorityScore, e.loads[best.AgentID])

	for _, agent := range e.agents[1:] {
		s := scoring.Score(agent, at.RequiredSkills, at.PriorityScore, e.loads[agent.AgentID])
		if s.Total > bestScore.Total {
			best, bestScore = agent, s
		}
	}
	return best, bestScore
}

// Loads returns a copy of the simulated load counters from the last Assign
// call, for the console summary and final-load metrics.
func (e *Engine) Loads() map[string]int {
	loads := make(map[string]int, len(e.loads))
	for id, load := range e.loads {
		loads[id] = load
	}
	return loads
}

// annotate derives required skills and priority for every ticket from its
// title and description. Annotation has no ordering dependency between
// tickets.
func annotate(tickets []models.Ticket) []models.AnnotatedTicket {
	annotated := make([]models.AnnotatedTicket, 0, len(tickets))
	for _, ticket := range tickets {
		text := ticket.Title + " " + ticket.Description
		skills := triage.ExtractSkills(text)
		priority := triage.ClassifyPriority(text)

		if len(skills) == 0 {
			metrics.TicketsWithoutSkillsTotal.Inc()
		}
		metrics.PriorityTierTotal.WithLabelValues(triage.TierName(priority)).Inc()

		annotated = append(annotated, models.AnnotatedTicket{
			Ticket:         ticket,
			PriorityScore:  priority,
			RequiredSkills: skills,
		})
	}
	return annotated
}
