package model

import (
	"darshan/shared/model"
	"time"
)

const (
	TableName  = "events"
	EntityName = "event"

	FieldID          = "id"
	FieldMuseumID    = "museum_id"
	FieldName        = "name"
	FieldStartsAt    = "starts_at"
	FieldDescription = "description"
	FieldTicketLimit = "ticket_limit"
	FieldTimeSlot    = "time_slot"
)

type Event struct {
	ID          string    `db:"id"`
	MuseumID    string    `db:"museum_id"`
	Name        string    `db:"name"`
	StartsAt    time.Time `db:"starts_at"`
	Description string    `db:"description"`
	TicketLimit int       `db:"ticket_limit"`
	TimeSlot    string    `db:"time_slot"`
	model.Metadata
}
