package scoring

import (
	"fmt"
	"strconv"
	"strings"

	"ticket-assigner/models"
)

// Rationale text thresholds. workloadMention is deliberately higher than the
// score's own load baseline: the clause only appears for clearly underloaded
// agents.
const (
	workloadMention = 15
	maxSkillsShown  = 3
)

// Rationale renders the explanation string for an assignment. It is purely
// descriptive: it reads the breakdown the scorer already produced and must
// never influence which agent wins.
func Rationale(agent models.Agent, requiredSkills []string, breakdown models.ScoreBreakdown, priorityScore int) string {
	var relevant []string
	for _, skill := range requiredSkills {
		if prof, ok := agent.Skills[skill]; ok {
			relevant = append(relevant, fmt.Sprintf("'%s' (%s)", skill, formatNumber(prof)))
		}
	}
	if len(relevant) > maxSkillsShown {
		relevant = relevant[:maxSkillsShown]
	}

	var parts []string
	if len(relevant) > 0 {
		parts = append(parts, fmt.Sprintf("Assigned to %s (%s) based on expertise in %s",
			agent.Name, agent.AgentID, strings.Join(relevant, ", ")))
	} else {
		parts = append(parts, fmt.Sprintf("Assigned to %s (%s) based on experience level (%s)",
			agent.Name, agent.AgentID, formatNumber(agent.ExperienceLevel)))
	}

	if breakdown.Workload > workloadMention {
		parts = append(parts, "and lower current workload")
	}

	if priorityScore >= priorityBonusThreshold {
		parts = append(parts, "High priority ticket requiring immediate attention")
	}

	return strings.Join(parts, ". ") + "."
}

// formatNumber prints proficiency and experience values without a trailing
// ".0" for whole numbers.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
