package dto

import (
	museumModel "darshan/internal/domains/museum/model"
	"darshan/internal/domains/ticket/fee"
	"darshan/internal/domains/ticket/model"
	"darshan/shared/constant"
	gModel "darshan/shared/model"
	"darshan/shared/timezone"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type VisitorRequest struct {
	Nationality string `json:"nationality" validate:"notblank,max=100"`
	Gender      string `json:"gender"      validate:"required,oneof=male female other"`
}

type CreateTicketRequest struct {
	UserPhone    string           `json:"user_phone"    validate:"notblank,max=15"`
	UserEmail    string           `json:"user_email"    validate:"required,email,max=254"`
	Adults       *int             `json:"adults"        validate:"required,gte=0,max=1000"`
	Children     *int             `json:"children"      validate:"required,gte=0,max=1000"`
	VisitingDate string           `json:"visiting_date" validate:"required,datetime=2006-01-02"`
	MuseumName   string           `json:"museum_name"   validate:"notblank,max=255"`
	Nationality  string           `json:"nationality"   validate:"notblank,max=100"`
	Visitors     []VisitorRequest `json:"visitors"      validate:"omitempty,dive"`
}

func (c *CreateTicketRequest) AdultCount() int {
	if c.Adults == nil {
		return 0
	}

	return *c.Adults
}

func (c *CreateTicketRequest) ChildCount() int {
	if c.Children == nil {
		return 0
	}

	return *c.Children
}

// ToModel builds the pending ticket exactly as it is written in the booking transaction.
func (c *CreateTicketRequest) ToModel(id string, museum museumModel.Museum, visitingDate time.Time, total decimal.Decimal, reference, actor string) model.Ticket {
	now := timezone.Now()

	return model.Ticket{
		ID:               id,
		MuseumID:         museum.ID,
		MuseumName:       museum.Name,
		UserPhone:        c.UserPhone,
		UserEmail:        c.UserEmail,
		Nationality:      c.Nationality,
		VisitingDate:     visitingDate,
		BookingDate:      now,
		Adults:           c.AdultCount(),
		Children:         c.ChildCount(),
		TotalAmount:      total,
		PaymentStatus:    model.StatusPending,
		PaymentReference: reference,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  actor,
			ModifiedBy: actor,
		},
	}
}

func (c *CreateTicketRequest) VisitorModels(ticketID, actor string) []model.Person {
	now := timezone.Now()
	persons := make([]model.Person, len(c.Visitors))

	for i, visitor := range c.Visitors {
		persons[i] = model.Person{
			ID:          uuid.NewString(),
			TicketID:    ticketID,
			Nationality: visitor.Nationality,
			Gender:      visitor.Gender,
			IsIndian:    fee.IsIndian(visitor.Nationality),
			Metadata: gModel.Metadata{
				CreatedAt:  now,
				ModifiedAt: now,
				CreatedBy:  actor,
				ModifiedBy: actor,
			},
		}
	}

	return persons
}

type BookingResponse struct {
	TicketID         string `json:"ticket_id"`
	UserPhone        string `json:"user_phone"`
	UserEmail        string `json:"user_email"`
	Adults           int    `json:"adults"`
	Children         int    `json:"children"`
	VisitingDate     string `json:"visiting_date"`
	MuseumName       string `json:"museum_name"`
	Nationality      string `json:"nationality"`
	TotalAmount      string `json:"total_amount"`
	PaymentStatus    string `json:"payment_status"`
	PaymentReference string `json:"payment_reference"`
	PaymentIntentID  string `json:"payment_intent_id,omitempty"`
	ClientSecret     string `json:"client_secret,omitempty"`
}

func (r *BookingResponse) FromModel(ticket model.Ticket) {
	r.TicketID = ticket.ID
	r.UserPhone = ticket.UserPhone
	r.UserEmail = ticket.UserEmail
	r.Adults = ticket.Adults
	r.Children = ticket.Children
	r.VisitingDate = ticket.VisitingDate.Format(constant.DateOnlyFormat)
	r.MuseumName = ticket.MuseumName
	r.Nationality = ticket.Nationality
	r.TotalAmount = ticket.TotalAmount.StringFixed(2)
	r.PaymentStatus = string(ticket.PaymentStatus)
	r.PaymentReference = ticket.PaymentReference
}

type VerifyPaymentRequest struct {
	TicketID      string `json:"ticket_id"      validate:"omitempty"`
	TransactionID string `json:"transaction_id" validate:"notblank,max=255"`
}

type VerifyPaymentResponse struct {
	TicketID         string `json:"ticket_id"`
	VerificationCode string `json:"verification_code"`
	PaymentStatus    string `json:"payment_status"`
	Amount           string `json:"amount"`
	Adults           int    `json:"adults"`
	Children         int    `json:"children"`
}

func (r *VerifyPaymentResponse) FromModel(ticket model.Ticket) {
	r.TicketID = ticket.ID
	r.VerificationCode = deref(ticket.VerificationCode)
	r.PaymentStatus = string(ticket.PaymentStatus)
	r.Amount = ticket.TotalAmount.StringFixed(2)
	r.Adults = ticket.Adults
	r.Children = ticket.Children
}

type VerifyEntryRequest struct {
	TicketID         string `json:"ticket_id"         validate:"omitempty"`
	VerificationCode string `json:"verification_code" validate:"notblank,max=20"`
}

type VerifyEntryResponse struct {
	Status        string `json:"status"`
	TicketID      string `json:"ticket_id"`
	PaymentStatus string `json:"payment_status"`
	Valid         bool   `json:"valid"`
	MuseumName    string `json:"museum_name"`
	VisitingDate  string `json:"visiting_date"`
	Adults        int    `json:"adults"`
	Children      int    `json:"children"`
}

func (r *VerifyEntryResponse) FromModel(ticket model.Ticket) {
	r.Status = "success"
	r.TicketID = ticket.ID
	r.PaymentStatus = string(ticket.PaymentStatus)
	r.Valid = ticket.PaymentStatus == model.StatusPaid
	r.MuseumName = ticket.MuseumName
	r.VisitingDate = ticket.VisitingDate.Format(constant.DateOnlyFormat)
	r.Adults = ticket.Adults
	r.Children = ticket.Children
}

type WebhookResponse struct {
	EventID       string `json:"event_id"`
	Type          string `json:"type"`
	Outcome       string `json:"outcome"`
	TicketID      string `json:"ticket_id,omitempty"`
	PaymentStatus string `json:"payment_status,omitempty"`
}

type PaymentIntentResponse struct {
	TicketID        string `json:"ticket_id"`
	PaymentIntentID string `json:"payment_intent_id"`
	ClientSecret    string `json:"client_secret"`
	Status          string `json:"status"`
}

type SummaryRequest struct {
	MuseumID      string `json:"museum_id"      validate:"omitempty,uuid4"`
	PaymentStatus string `json:"payment_status" validate:"omitempty,oneof=pending paid cancelled refunded"`
}

type SummaryResponse struct {
	TotalSales   string `json:"total_sales"`
	TotalTickets int    `json:"total_tickets"`
	TotalPersons int    `json:"total_persons"`
}

func (r *SummaryResponse) FromModel(summary model.Summary) {
	r.TotalSales = summary.TotalSales.StringFixed(2)
	r.TotalTickets = summary.TotalTickets
	r.TotalPersons = summary.TotalPersons
}

// PaymentViewResponse feeds the checkout page.
type PaymentViewResponse struct {
	TicketID         string
	MuseumName       string
	VisitingDate     string
	TotalAmount      string
	Adults           int
	Children         int
	PaymentStatus    string
	VerificationCode string
	ClientSecret     string
}

func (r *PaymentViewResponse) FromModel(ticket model.Ticket) {
	r.TicketID = ticket.ID
	r.MuseumName = ticket.MuseumName
	r.VisitingDate = ticket.VisitingDate.Format(constant.DateOnlyFormat)
	r.TotalAmount = ticket.TotalAmount.StringFixed(2)
	r.Adults = ticket.Adults
	r.Children = ticket.Children
	r.PaymentStatus = string(ticket.PaymentStatus)
	r.VerificationCode = deref(ticket.VerificationCode)
}

const (
	NotificationBooked    = "ticket.booked"
	NotificationPaid      = "ticket.paid"
	NotificationCancelled = "ticket.cancelled"
	NotificationRefunded  = "ticket.refunded"
)

var notifications = map[model.PaymentStatus]string{
	model.StatusPending:   NotificationBooked,
	model.StatusPaid:      NotificationPaid,
	model.StatusCancelled: NotificationCancelled,
	model.StatusRefunded:  NotificationRefunded,
}

// TicketNotification is published for the email and SMS senders.
type TicketNotification struct {
	Event            string `json:"event"`
	TicketID         string `json:"ticket_id"`
	MuseumID         string `json:"museum_id"`
	MuseumName       string `json:"museum_name,omitempty"`
	UserEmail        string `json:"user_email"`
	UserPhone        string `json:"user_phone"`
	VisitingDate     string `json:"visiting_date"`
	TotalAmount      string `json:"total_amount"`
	PaymentStatus    string `json:"payment_status"`
	PaymentReference string `json:"payment_reference,omitempty"`
	VerificationCode string `json:"verification_code,omitempty"`
	OccurredAt       string `json:"occurred_at"`
}

func (n *TicketNotification) FromModel(ticket model.Ticket) {
	n.Event = notifications[ticket.PaymentStatus]
	n.TicketID = ticket.ID
	n.MuseumID = ticket.MuseumID
	n.MuseumName = ticket.MuseumName
	n.UserEmail = ticket.UserEmail
	n.UserPhone = ticket.UserPhone
	n.VisitingDate = ticket.VisitingDate.Format(constant.DateOnlyFormat)
	n.TotalAmount = ticket.TotalAmount.StringFixed(2)
	n.PaymentStatus = string(ticket.PaymentStatus)
	n.PaymentReference = ticket.PaymentReference
	n.VerificationCode = deref(ticket.VerificationCode)
	n.OccurredAt = timezone.Format(timezone.Now(), constant.DateFormat)
}

func deref(value *string) string {
	if value == nil {
		return ""
	}

	return *value
}
