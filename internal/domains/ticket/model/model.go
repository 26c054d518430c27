package model

import (
	"darshan/shared/model"
	"time"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "tickets"
	EntityName = "ticket"

	FieldID               = "id"
	FieldMuseumID         = "museum_id"
	FieldUserPhone        = "user_phone"
	FieldUserEmail        = "user_email"
	FieldNationality      = "nationality"
	FieldVisitingDate     = "visiting_date"
	FieldBookingDate      = "booking_date"
	FieldAdults           = "adults"
	FieldChildren         = "children"
	FieldTotalAmount      = "total_amount"
	FieldPaymentStatus    = "payment_status"
	FieldVerificationCode = "verification_code"
	FieldTransactionID    = "transaction_id"
	FieldPaymentReference = "payment_reference"
	FieldPaymentIntentID  = "payment_intent_id"

	ConstraintVerificationCode = "tickets_verification_code_key"
	ConstraintTransactionID    = "tickets_transaction_id_key"
)

type PaymentStatus string

const (
	StatusPending   PaymentStatus = "pending"
	StatusPaid      PaymentStatus = "paid"
	StatusCancelled PaymentStatus = "cancelled"
	StatusRefunded  PaymentStatus = "refunded"
)

var transitions = map[PaymentStatus][]PaymentStatus{
	StatusPending: {StatusPaid, StatusCancelled},
	StatusPaid:    {StatusRefunded},
}

func (s PaymentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusCancelled, StatusRefunded:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether next is a legal forward step from s.
// Staying in the same status is not a transition.
func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

type Ticket struct {
	ID               string          `db:"id"`
	MuseumID         string          `db:"museum_id"`
	MuseumName       string          `db:"museum_name" table:"museums" column:"name"`
	UserPhone        string          `db:"user_phone"`
	UserEmail        string          `db:"user_email"`
	Nationality      string          `db:"nationality"`
	VisitingDate     time.Time       `db:"visiting_date"`
	BookingDate      time.Time       `db:"booking_date"`
	Adults           int             `db:"adults"`
	Children         int             `db:"children"`
	TotalAmount      decimal.Decimal `db:"total_amount"`
	PaymentStatus    PaymentStatus   `db:"payment_status"`
	VerificationCode *string         `db:"verification_code"`
	TransactionID    *string         `db:"transaction_id"`
	PaymentReference string          `db:"payment_reference"`
	PaymentIntentID  *string         `db:"payment_intent_id"`
	model.Metadata
}

func (Ticket) GetJoinQuery() string {
	return "LEFT JOIN museums ON museums.id = tickets.museum_id"
}

func (t Ticket) Persons() int {
	return t.Adults + t.Children
}

const (
	VisitorTableName  = "ticket_visitors"
	VisitorEntityName = "ticket_visitor"

	FieldVisitorTicketID = "ticket_id"
)

// Person is an itemized visitor on a ticket. Pricing never reads it.
type Person struct {
	ID          string `db:"id"`
	TicketID    string `db:"ticket_id"`
	Nationality string `db:"nationality"`
	Gender      string `db:"gender"`
	IsIndian    bool   `db:"is_indian"`
	model.Metadata
}

const (
	StatusEventTableName  = "ticket_status_events"
	StatusEventEntityName = "ticket_status_event"

	FieldStatusEventTicketID = "ticket_id"

	SourceBooking = "booking"
	SourceVerify  = "verify"
	SourceWebhook = "webhook"
)

// StatusEvent is one row of the payment status audit trail.
type StatusEvent struct {
	ID         string    `db:"id"`
	TicketID   string    `db:"ticket_id"`
	FromStatus string    `db:"from_status"`
	ToStatus   string    `db:"to_status"`
	Source     string    `db:"source"`
	Reference  string    `db:"reference"`
	CreatedAt  time.Time `db:"created_at"`
	CreatedBy  string    `db:"created_by"`
}

type Summary struct {
	TotalSales   decimal.Decimal `db:"total_sales"`
	TotalTickets int             `db:"total_tickets"`
	TotalPersons int             `db:"total_persons"`
}
