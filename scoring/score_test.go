package scoring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ticket-assigner/models"
	"ticket-assigner/scoring"
)

func TestScore(t *testing.T) {
	agent := models.Agent{
		AgentID:            "A001",
		Name:               "Alice",
		Skills:             map[string]float64{"Networking": 9, "VPN_Troubleshooting": 7},
		ExperienceLevel:    4,
		AvailabilityStatus: "Available",
		CurrentLoad:        0,
	}

	tests := map[string]struct {
		agent          models.Agent
		requiredSkills []string
		priorityScore  int
		currentLoad    int
		expected       models.ScoreBreakdown
	}{
		"AllComponents": {
			agent:          agent,
			requiredSkills: []string{"Networking", "VPN_Troubleshooting"},
			priorityScore:  10,
			currentLoad:    2,
			expected: models.ScoreBreakdown{
				SkillMatch:    80, // (9+7)/2 * 10
				Experience:    6,  // 4 * 1.5
				Workload:      18, // (5-2) * 6
				Availability:  10,
				PriorityBonus: 5, // 10 * 0.5
				Total:         119,
			},
		},
		"MissingSkillCountsAsZero": {
			agent:          agent,
			requiredSkills: []string{"Networking", "Database_SQL", "Cloud_AWS"},
			priorityScore:  6,
			currentLoad:    5,
			expected: models.ScoreBreakdown{
				SkillMatch:   30, // (9+0+0)/3 * 10
				Experience:   6,
				Availability: 10,
				Total:        46,
			},
		},
		"NoRequiredSkills": {
			agent:          agent,
			requiredSkills: nil,
			priorityScore:  6,
			currentLoad:    5,
			expected: models.ScoreBreakdown{
				Experience:   6,
				Availability: 10,
				Total:        16,
			},
		},
		"ExperienceCapped": {
			agent: models.Agent{
				AgentID:            "A002",
				Name:               "Bob",
				ExperienceLevel:    20,
				AvailabilityStatus: "Available",
			},
			priorityScore: 6,
			currentLoad:   5,
			expected: models.ScoreBreakdown{
				Experience:   20, // min(20*1.5, 20)
				Availability: 10,
				Total:        30,
			},
		},
		"NotAvailable": {
			agent: models.Agent{
				AgentID:            "A003",
				Name:               "Carol",
				ExperienceLevel:    4,
				AvailabilityStatus: "Away",
			},
			priorityScore: 6,
			currentLoad:   5,
			expected: models.ScoreBreakdown{
				Experience: 6,
				Total:      6,
			},
		},
		"PriorityBonusAtThreshold": {
			agent: models.Agent{
				AgentID:            "A004",
				Name:               "Dan",
				AvailabilityStatus: "Away",
			},
			priorityScore: 8,
			currentLoad:   5,
			expected: models.ScoreBreakdown{
				PriorityBonus: 4, // 8 * 0.5
				Total:         4,
			},
		},
		"NoPriorityBonusBelowThreshold": {
			agent: models.Agent{
				AgentID:            "A004",
				Name:               "Dan",
				AvailabilityStatus: "Away",
			},
			priorityScore: 6,
			currentLoad:   5,
			expected:      models.ScoreBreakdown{},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := scoring.Score(tc.agent, tc.requiredSkills, tc.priorityScore, tc.currentLoad)
			assert.InDelta(t, tc.expected.SkillMatch, got.SkillMatch, 1e-9)
			assert.InDelta(t, tc.expected.Experience, got.Experience, 1e-9)
			assert.InDelta(t, tc.expected.Workload, got.Workload, 1e-9)
			assert.InDelta(t, tc.expected.Availability, got.Availability, 1e-9)
			assert.InDelta(t, tc.expected.PriorityBonus, got.PriorityBonus, 1e-9)
			assert.InDelta(t, tc.expected.Total, got.Total, 1e-9)
		})
	}
}

func TestScoreWorkloadMonotonicAndClamped(t *testing.T) {
	agent := models.Agent{AgentID: "A001", Name: "Alice", AvailabilityStatus: "Available"}

	prev := scoring.Score(agent, nil, 6, 0).Workload
	assert.Equal(t, 30.0, prev)

	for load := 1; load <= 10; load++ {
		cur := scoring.Score(agent, nil, 6, load).Workload
		assert.LessOrEqual(t, cur, prev, "workload score must not increase with load")
		assert.GreaterOrEqual(t, cur, 0.0)
		prev = cur
	}

	// Clamped at zero from the reasonable-load baseline onward.
	assert.Equal(t, 0.0, scoring.Score(agent, nil, 6, 5).Workload)
	assert.Equal(t, 0.0, scoring.Score(agent, nil, 6, 9).Workload)
}

func TestScoreAvailabilityDelta(t *testing.T) {
	available := models.Agent{
		AgentID:            "A001",
		Name:               "Alice",
		Skills:             map[string]float64{"Networking": 8},
		ExperienceLevel:    5,
		AvailabilityStatus: "Available",
	}
	away := available
	away.AgentID = "A002"
	away.AvailabilityStatus = "Away"

	for _, load := range []int{0, 3, 7} {
		a := scoring.Score(available, []string{"Networking"}, 10, load)
		b := scoring.Score(away, []string{"Networking"}, 10, load)
		assert.InDelta(t, 10, a.Total-b.Total, 1e-9)
	}
}
