package dto

import (
	"darshan/internal/domains/event/model"
	"darshan/shared"
	"darshan/shared/constant"
	gDto "darshan/shared/dto"
	gModel "darshan/shared/model"
	"darshan/shared/timezone"
	"fmt"

	"github.com/google/uuid"
)

type CreateEventRequest struct {
	Name        string `json:"name"         validate:"notblank,max=200"`
	StartsAt    string `json:"starts_at"    validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	Description string `json:"description"  validate:"omitempty"`
	TicketLimit int    `json:"ticket_limit" validate:"omitempty,gte=0"`
	TimeSlot    string `json:"time_slot"    validate:"omitempty,max=50"`
}

func (c *CreateEventRequest) ToModel(museumID, actor string) (model.Event, error) {
	startsAt, err := timezone.Parse(constant.DateFormat, c.StartsAt)
	if err != nil {
		return model.Event{}, fmt.Errorf("failed to parse starts_at: %w", err)
	}

	now := timezone.Now()

	return model.Event{
		ID:          uuid.NewString(),
		MuseumID:    museumID,
		Name:        c.Name,
		StartsAt:    startsAt,
		Description: c.Description,
		TicketLimit: c.TicketLimit,
		TimeSlot:    c.TimeSlot,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  actor,
			ModifiedBy: actor,
		},
	}, nil
}

type EventResponse struct {
	ID          string `json:"id"`
	MuseumID    string `json:"museum_id"`
	Name        string `json:"name"`
	StartsAt    string `json:"starts_at"`
	Description string `json:"description"`
	TicketLimit int    `json:"ticket_limit"`
	TimeSlot    string `json:"time_slot"`
	gDto.Metadata
}

func (r *EventResponse) FromModel(model model.Event) {
	r.ID = model.ID
	r.MuseumID = model.MuseumID
	r.Name = model.Name
	r.StartsAt = timezone.Format(model.StartsAt, constant.DateFormat)
	r.Description = model.Description
	r.TicketLimit = model.TicketLimit
	r.TimeSlot = model.TimeSlot
	r.Metadata.FromModel(model.Metadata)
}

type GetEventsResponse struct {
	Events    []EventResponse `json:"events"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetEventsResponse) FromModels(models []model.Event, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Events = make([]EventResponse, len(models))
	for i, mod := range models {
		r.Events[i].FromModel(mod)
	}
}
