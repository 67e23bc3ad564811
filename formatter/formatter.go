package formatter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"ticket-assigner/models"
)

// OutputDocument is the result file contract: the assignment list wrapped
// under a single top-level key, in processing order.
type OutputDocument struct {
	SampleOutput []models.Assignment `json:"sample_output"`
}

// FormatJSON returns the JSON result document for the assignments.
func FormatJSON(assignments []models.Assignment) string {
	doc := OutputDocument{SampleOutput: assignments}
	if doc.SampleOutput == nil {
		// An empty batch still renders as an empty array, not null.
		doc.SampleOutput = []models.Assignment{}
	}
	jsonBytes, _ := json.MarshalIndent(doc, "", "  ")
	return string(jsonBytes) + "\n"
}

// FormatCSV returns the assignments as CSV, one row per ticket in
// processing order.
func FormatCSV(assignments []models.Assignment) string {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	writer.Write([]string{"ticket_id", "title", "assigned_agent_id", "rationale"})
	for _, a := range assignments {
		writer.Write([]string{a.TicketID, a.Title, a.AssignedAgentID, a.Rationale})
	}

	writer.Flush()
	return sb.String()
}

// FormatText returns the console distribution summary: per-agent assignment
// counts sorted by agent id. Informational only, not part of the output
// contract.
func FormatText(assignments []models.Assignment, agents []models.Agent) string {
	counts := make(map[string]int)
	for _, a := range assignments {
		counts[a.AssignedAgentID]++
	}

	names := make(map[string]string, len(agents))
	for _, agent := range agents {
		names[agent.AgentID] = agent.Name
	}

	agentIDs := make([]string, 0, len(counts))
	for id := range counts {
		agentIDs = append(agentIDs, id)
	}
	sort.Strings(agentIDs)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Assigned %d tickets\n", len(assignments)))
	sb.WriteString("\nAssignment Distribution:\n")
	if len(agentIDs) == 0 {
		sb.WriteString("  none\n")
		return sb.String()
	}
	for _, id := range agentIDs {
		sb.WriteString(fmt.Sprintf("  %s (%s): %d tickets\n", id, names[id], counts[id]))
	}
	return sb.String()
}
