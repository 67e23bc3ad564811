package models

// Agent represents a support agent from the input roster.
// The roster is read-only during a run; the engine tracks per-run load
// separately and never mutates CurrentLoad.
type Agent struct {
	AgentID            string             `json:"agent_id"`
	Name               string             `json:"name"`
	Skills             map[string]float64 `json:"skills"`
	ExperienceLevel    float64            `json:"experience_level"`
	AvailabilityStatus string             `json:"availability_status"`
	CurrentLoad        int                `json:"current_load"`
}

// Ticket represents a raw support ticket from the input batch.
type Ticket struct {
	TicketID string `json:"ticket_id"`
	Title    string `json:"title"`
	// Description is concatenated with Title for skill and priority analysis.
	Description string `json:"description"`
	// CreationTimestamp is kept as an opaque string and compared
	// lexicographically, so inputs must use a consistently sortable format.
	CreationTimestamp string `json:"creation_timestamp"`
}

// Dataset is the top-level input document.
type Dataset struct {
	Agents  []Agent  `json:"agents"`
	Tickets []Ticket `json:"tickets"`
}

// AnnotatedTicket is a ticket enriched with the attributes derived from its
// free text. Created once per run and discarded afterwards.
type AnnotatedTicket struct {
	Ticket Ticket
	// PriorityScore is one of 2, 5, 6, 8, 10.
	PriorityScore int
	// RequiredSkills is deduplicated; order is keyword-table discovery
	// order and only matters for rationale display.
	RequiredSkills []string
}

// ScoreBreakdown holds the five suitability components and their sum for one
// agent against one ticket. The components feed the rationale text; only
// Total decides the assignment.
type ScoreBreakdown struct {
	SkillMatch    float64
	Experience    float64
	Workload      float64
	Availability  float64
	PriorityBonus float64
	Total         float64
}

// Assignment is one line of the output document: a ticket routed to an agent
// with a human-readable justification.
type Assignment struct {
	TicketID        string `json:"ticket_id"`
	Title           string `json:"title"`
	AssignedAgentID string `json:"assigned_agent_id"`
	Rationale       string `json:"rationale"`
}
