package scoring_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"ticket-assigner/models"
	"ticket-assigner/scoring"
)

func TestRationale(t *testing.T) {
	expert := models.Agent{
		AgentID:            "A001",
		Name:               "Alice Smith",
		Skills:             map[string]float64{"Networking": 9, "VPN_Troubleshooting": 7.5},
		ExperienceLevel:    4,
		AvailabilityStatus: "Available",
	}
	junior := models.Agent{
		AgentID:            "A002",
		Name:               "Bob Jones",
		Skills:             map[string]float64{},
		ExperienceLevel:    5,
		AvailabilityStatus: "Available",
	}

	tests := map[string]struct {
		agent          models.Agent
		requiredSkills []string
		breakdown      models.ScoreBreakdown
		priorityScore  int
		expected       string
	}{
		"ExpertiseWithWorkloadAndUrgency": {
			agent:          expert,
			requiredSkills: []string{"Networking"},
			breakdown:      models.ScoreBreakdown{Workload: 18},
			priorityScore:  10,
			expected: "Assigned to Alice Smith (A001) based on expertise in 'Networking' (9). " +
				"and lower current workload. High priority ticket requiring immediate attention.",
		},
		"FractionalProficiency": {
			agent:          expert,
			requiredSkills: []string{"VPN_Troubleshooting"},
			breakdown:      models.ScoreBreakdown{},
			priorityScore:  6,
			expected:       "Assigned to Alice Smith (A001) based on expertise in 'VPN_Troubleshooting' (7.5).",
		},
		"ExperienceFallback": {
			agent:          junior,
			requiredSkills: []string{"Database_SQL"},
			breakdown:      models.ScoreBreakdown{},
			priorityScore:  6,
			expected:       "Assigned to Bob Jones (A002) based on experience level (5).",
		},
		"WorkloadAtThresholdNotMentioned": {
			agent:          junior,
			requiredSkills: nil,
			breakdown:      models.ScoreBreakdown{Workload: 15},
			priorityScore:  6,
			expected:       "Assigned to Bob Jones (A002) based on experience level (5).",
		},
		"UrgencyAtThreshold": {
			agent:          junior,
			requiredSkills: nil,
			breakdown:      models.ScoreBreakdown{},
			priorityScore:  8,
			expected: "Assigned to Bob Jones (A002) based on experience level (5). " +
				"High priority ticket requiring immediate attention.",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := scoring.Rationale(tc.agent, tc.requiredSkills, tc.breakdown, tc.priorityScore)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestRationaleShowsAtMostThreeSkills(t *testing.T) {
	agent := models.Agent{
		AgentID: "A001",
		Name:    "Alice Smith",
		Skills: map[string]float64{
			"Networking":             9,
			"VPN_Troubleshooting":    8,
			"DNS_Configuration":      7,
			"Firewall_Configuration": 6,
		},
		ExperienceLevel: 10,
	}
	required := []string{"Networking", "VPN_Troubleshooting", "DNS_Configuration", "Firewall_Configuration"}

	got := scoring.Rationale(agent, required, models.ScoreBreakdown{}, 6)

	// First three required skills in discovery order, fourth omitted.
	assert.Contains(t, got, "'Networking' (9)")
	assert.Contains(t, got, "'VPN_Troubleshooting' (8)")
	assert.Contains(t, got, "'DNS_Configuration' (7)")
	assert.NotContains(t, got, "Firewall_Configuration")
	assert.True(t, strings.HasSuffix(got, "."))
}
