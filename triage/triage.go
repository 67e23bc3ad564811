// Package triage derives the two latent ticket attributes, required skills
// and priority score, from ticket free text via case-insensitive substring
// matching against static keyword tables.
package triage

import "strings"

// ExtractSkills returns the skill tags whose trigger phrases occur in text.
// Matching is case-insensitive; each tag appears at most once, in table
// order. A text matching nothing yields an empty slice, which is not an
// error — the skill-match score simply degrades to zero downstream.
func ExtractSkills(text string) []string {
	lower := strings.ToLower(text)

	var skills []string
	for _, entry := range skillKeywords {
		for _, phrase := range entry.Phrases {
			if strings.Contains(lower, phrase) {
				skills = append(skills, entry.Tag)
				break
			}
		}
	}
	return skills
}

// ClassifyPriority returns the urgency score for text. Tiers are tested in
// severity order and the first tier with any phrase match wins, so mixed
// signals resolve to the most urgent tier. Texts matching no tier score
// DefaultPriority.
func ClassifyPriority(text string) int {
	lower := strings.ToLower(text)

	for _, tier := range priorityTiers {
		for _, phrase := range tier.Phrases {
			if strings.Contains(lower, phrase) {
				return tier.Score
			}
		}
	}
	return DefaultPriority
}

// TierName maps a priority score back to its tier name, for logs and metric
// labels. Unknown scores (including DefaultPriority) report as "default".
func TierName(score int) string {
	for _, tier := range priorityTiers {
		if tier.Score == score {
			return tier.Name
		}
	}
	return "default"
}
