// Package parser decodes and validates the JSON input dataset.
package parser

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"

	apperrors "ticket-assigner/errors"
	"ticket-assigner/metrics"
	"ticket-assigner/models"
)

// Raw records use pointer fields so that an absent field is distinguishable
// from a zero value: experience_level 0 and current_load 0 are valid, a
// missing field is not. skills is the one optional field and may be an empty
// mapping.
type rawAgent struct {
	AgentID            *string            `json:"agent_id" validate:"required"`
	Name               *string            `json:"name" validate:"required"`
	Skills             map[string]float64 `json:"skills"`
	ExperienceLevel    *float64           `json:"experience_level" validate:"required"`
	AvailabilityStatus *string            `json:"availability_status" validate:"required"`
	CurrentLoad        *int               `json:"current_load" validate:"required"`
}

type rawTicket struct {
	TicketID          *string `json:"ticket_id" validate:"required"`
	Title             *string `json:"title" validate:"required"`
	Description       *string `json:"description" validate:"required"`
	CreationTimestamp *string `json:"creation_timestamp" validate:"required"`
}

type rawDataset struct {
	Agents  []rawAgent  `json:"agents"`
	Tickets []rawTicket `json:"tickets"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Parse reads the JSON dataset from the reader and returns the agent roster
// and ticket batch. Any malformed document, missing required field, or empty
// roster is fatal: the caller gets no partial dataset. A dataset with zero
// tickets is valid and yields an empty batch.
func Parse(r io.Reader) (*models.Dataset, error) {
	var doc rawDataset
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		metrics.ParserErrorsTotal.WithLabelValues("malformed_document").Inc()
		return nil, fmt.Errorf("%w: %v", apperrors.ErrMalformedDocument, err)
	}

	if len(doc.Agents) == 0 {
		metrics.ParserErrorsTotal.WithLabelValues("empty_roster").Inc()
		return nil, apperrors.ErrEmptyRoster
	}

	dataset := &models.Dataset{
		Agents:  make([]models.Agent, 0, len(doc.Agents)),
		Tickets: make([]models.Ticket, 0, len(doc.Tickets)),
	}

	for i, ra := range doc.Agents {
		if err := validate.Struct(ra); err != nil {
			metrics.ParserErrorsTotal.WithLabelValues("missing_field").Inc()
			return nil, &apperrors.InputError{
				Section: "agents",
				Index:   i,
				ID:      deref(ra.AgentID),
				Err:     fmt.Errorf("%w: %v", apperrors.ErrMissingField, err),
			}
		}
		dataset.Agents = append(dataset.Agents, models.Agent{
			AgentID:            *ra.AgentID,
			Name:               *ra.Name,
			Skills:             ra.Skills,
			ExperienceLevel:    *ra.ExperienceLevel,
			AvailabilityStatus: *ra.AvailabilityStatus,
			CurrentLoad:        *ra.CurrentLoad,
		})
	}

	for i, rt := range doc.Tickets {
		if err := validate.Struct(rt); err != nil {
			metrics.ParserErrorsTotal.WithLabelValues("missing_field").Inc()
			return nil, &apperrors.InputError{
				Section: "tickets",
				Index:   i,
				ID:      deref(rt.TicketID),
				Err:     fmt.Errorf("%w: %v", apperrors.ErrMissingField, err),
			}
		}
		dataset.Tickets = append(dataset.Tickets, models.Ticket{
			TicketID:          *rt.TicketID,
			Title:             *rt.Title,
			Description:       *rt.Description,
			CreationTimestamp: *rt.CreationTimestamp,
		})
	}

	metrics.ParserAgentsTotal.Set(float64(len(dataset.Agents)))
	metrics.ParserTicketsTotal.Set(float64(len(dataset.Tickets)))

	return dataset, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
