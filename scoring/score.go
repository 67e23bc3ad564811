// Package scoring computes the agent-suitability score for a ticket and
// renders the rationale text for the chosen agent.
package scoring

import (
	"ticket-assigner/models"
)

// Scoring constants. The composite score is a plain sum of the five
// components with no normalization; these weights are part of the output
// contract, not tunables.
const (
	skillScale = 10 // proficiency 0-10 scaled to a 0-100 component

	experienceWeight = 1.5
	experienceCap    = 20

	// An agent at or above maxReasonableLoad earns no workload credit;
	// each unit below it is worth loadWeight points.
	maxReasonableLoad = 5
	loadWeight        = 6

	availabilityBonus = 10

	priorityBonusThreshold = 8
	priorityBonusWeight    = 0.5
)

// StatusAvailable is the only availability status that earns the bonus;
// every other value is treated uniformly as not available.
const StatusAvailable = "Available"

// Score computes the suitability breakdown for one agent against one
// ticket. currentLoad is the agent's simulated load at this point in the
// batch run, not the roster's baseline current_load.
func Score(agent models.Agent, requiredSkills []string, priorityScore, currentLoad int) models.ScoreBreakdown {
	var b models.ScoreBreakdown

	// Skill match: mean proficiency over the required skills, counting
	// missing tags as 0. A ticket with no required skills scores 0 here.
	if len(requiredSkills) > 0 {
		var sum float64
		for _, skill := range requiredSkills {
			sum += agent.Skills[skill]
		}
		b.SkillMatch = sum / float64(len(requiredSkills)) * skillScale
	}

	b.Experience = agent.ExperienceLevel * experienceWeight
	if b.Experience > experienceCap {
		b.Experience = experienceCap
	}

	b.Workload = float64(maxReasonableLoad-currentLoad) * loadWeight
	if b.Workload < 0 {
		b.Workload = 0
	}

	if agent.AvailabilityStatus == StatusAvailable {
		b.Availability = availabilityBonus
	}

	if priorityScore >= priorityBonusThreshold {
		b.PriorityBonus = float64(priorityScore) * priorityBonusWeight
	}

	b.Total = b.SkillMatch + b.Experience + b.Workload + b.Availability + b.PriorityBonus
	return b
}
