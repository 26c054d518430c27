package dto_test

import (
	museumModel "darshan/internal/domains/museum/model"
	"darshan/internal/domains/ticket/model"
	"darshan/internal/domains/ticket/model/dto"
	"darshan/shared/failure"
	"darshan/shared/validator"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int {
	return &v
}

func validRequest() dto.CreateTicketRequest {
	return dto.CreateTicketRequest{
		UserPhone:    "9876543210",
		UserEmail:    "visitor@example.com",
		Adults:       intPtr(2),
		Children:     intPtr(1),
		VisitingDate: "2030-01-15",
		MuseumName:   "City Museum",
		Nationality:  "Indian",
	}
}

func TestCreateTicketRequest_Validation(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(req *dto.CreateTicketRequest)
		wantErr  bool
		contains []string
	}{
		{
			name:   "valid request",
			mutate: func(_ *dto.CreateTicketRequest) {},
		},
		{
			name: "zero children is not missing",
			mutate: func(req *dto.CreateTicketRequest) {
				req.Children = intPtr(0)
			},
		},
		{
			name: "missing fields are all named",
			mutate: func(req *dto.CreateTicketRequest) {
				req.UserPhone = ""
				req.MuseumName = "  "
			},
			wantErr:  true,
			contains: []string{"user_phone", "museum_name"},
		},
		{
			name: "missing adults",
			mutate: func(req *dto.CreateTicketRequest) {
				req.Adults = nil
			},
			wantErr:  true,
			contains: []string{"adults"},
		},
		{
			name: "negative children",
			mutate: func(req *dto.CreateTicketRequest) {
				req.Children = intPtr(-1)
			},
			wantErr:  true,
			contains: []string{"children"},
		},
		{
			name: "oversized adult count",
			mutate: func(req *dto.CreateTicketRequest) {
				req.Adults = intPtr(100000000)
			},
			wantErr:  true,
			contains: []string{"adults"},
		},
		{
			name: "oversized child count",
			mutate: func(req *dto.CreateTicketRequest) {
				req.Children = intPtr(1001)
			},
			wantErr:  true,
			contains: []string{"children"},
		},
		{
			name: "malformed visiting date",
			mutate: func(req *dto.CreateTicketRequest) {
				req.VisitingDate = "15/01/2030"
			},
			wantErr:  true,
			contains: []string{"visiting_date"},
		},
		{
			name: "invalid email",
			mutate: func(req *dto.CreateTicketRequest) {
				req.UserEmail = "not-an-email"
			},
			wantErr:  true,
			contains: []string{"user_email"},
		},
		{
			name: "invalid visitor gender",
			mutate: func(req *dto.CreateTicketRequest) {
				req.Visitors = []dto.VisitorRequest{{Nationality: "Indian", Gender: "unknown"}}
			},
			wantErr:  true,
			contains: []string{"gender"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			err := validator.ValidateStruct(&req)
			if !tt.wantErr {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, failure.KindValidation, failure.GetKind(err))

			for _, field := range tt.contains {
				assert.Contains(t, err.Error(), field)
			}
		})
	}
}

func TestCreateTicketRequest_ToModel(t *testing.T) {
	req := validRequest()
	museum := museumModel.Museum{ID: "museum-1", Name: "City Museum"}
	visiting := time.Date(2030, time.January, 15, 0, 0, 0, 0, time.UTC)

	ticket := req.ToModel("ticket-1", museum, visiting, decimal.RequireFromString("250.00"), "https://pay.example.com/v1/payment/ticket-1", "system")

	assert.Equal(t, "ticket-1", ticket.ID)
	assert.Equal(t, "museum-1", ticket.MuseumID)
	assert.Equal(t, "City Museum", ticket.MuseumName)
	assert.Equal(t, 2, ticket.Adults)
	assert.Equal(t, 1, ticket.Children)
	assert.Equal(t, model.StatusPending, ticket.PaymentStatus)
	assert.Nil(t, ticket.VerificationCode)
	assert.Nil(t, ticket.TransactionID)
	assert.Equal(t, "250.00", ticket.TotalAmount.StringFixed(2))
	assert.False(t, ticket.BookingDate.IsZero())
}

func TestCreateTicketRequest_VisitorModels(t *testing.T) {
	req := validRequest()
	req.Visitors = []dto.VisitorRequest{
		{Nationality: " indian ", Gender: "female"},
		{Nationality: "French", Gender: "male"},
	}

	persons := req.VisitorModels("ticket-1", "system")

	require.Len(t, persons, 2)
	assert.True(t, persons[0].IsIndian)
	assert.False(t, persons[1].IsIndian)
	assert.Equal(t, "ticket-1", persons[1].TicketID)
	assert.NotEqual(t, persons[0].ID, persons[1].ID)
}

func TestVerifyEntryResponse_FromModel(t *testing.T) {
	code := "ABCDE-FGHJK"

	tests := []struct {
		name   string
		status model.PaymentStatus
		valid  bool
	}{
		{name: "paid ticket is valid", status: model.StatusPaid, valid: true},
		{name: "refunded ticket is not valid", status: model.StatusRefunded, valid: false},
		{name: "pending ticket is not valid", status: model.StatusPending, valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var res dto.VerifyEntryResponse
			res.FromModel(model.Ticket{ID: "ticket-1", PaymentStatus: tt.status, VerificationCode: &code})

			assert.Equal(t, "success", res.Status)
			assert.Equal(t, tt.valid, res.Valid)
			assert.Equal(t, string(tt.status), res.PaymentStatus)
		})
	}
}

func TestTicketNotification_FromModel(t *testing.T) {
	code := "ABCDE-FGHJK"

	var notification dto.TicketNotification
	notification.FromModel(model.Ticket{
		ID:               "ticket-1",
		PaymentStatus:    model.StatusPaid,
		VerificationCode: &code,
		TotalAmount:      decimal.NewFromInt(1500),
	})

	assert.Equal(t, dto.NotificationPaid, notification.Event)
	assert.Equal(t, "1500.00", notification.TotalAmount)
	assert.Equal(t, code, notification.VerificationCode)
}

func TestSummaryResponse_FromModel(t *testing.T) {
	var res dto.SummaryResponse
	res.FromModel(model.Summary{TotalSales: decimal.RequireFromString("1750.5"), TotalTickets: 2, TotalPersons: 7})

	assert.Equal(t, "1750.50", res.TotalSales)
	assert.Equal(t, 2, res.TotalTickets)
	assert.Equal(t, 7, res.TotalPersons)
}
