package service_test

import (
	"context"
	"darshan/config"
	jwtMocks "darshan/infras/jwt/mocks"
	kafkaMocks "darshan/infras/kafka/mocks"
	metricsMocks "darshan/infras/metrics/mocks"
	"darshan/infras/otel/mocks"
	"darshan/infras/payment"
	paymentMocks "darshan/infras/payment/mocks"
	museumMocks "darshan/internal/domains/museum/mocks"
	museumModel "darshan/internal/domains/museum/model"
	ticketMocks "darshan/internal/domains/ticket/mocks"
	"darshan/internal/domains/ticket/model"
	"darshan/internal/domains/ticket/model/dto"
	"darshan/internal/domains/ticket/service"
	cacheMocks "darshan/shared/cache/mocks"
	"darshan/shared/constant"
	gDto "darshan/shared/dto"
	"darshan/shared/failure"
	"darshan/shared/timezone"
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	museumID      = "0f8fad5b-d9cb-469f-a165-70867728950e"
	ticketID      = "7c9e6679-7425-40de-944b-e07fc1f90ae7"
	transactionID = "txn_123"
	intentID      = "pi_123"
	checkoutURL   = "https://pay.example.com/v1/payment/x?token=abc"
)

type fixture struct {
	repo       *ticketMocks.MockTicketRepository
	museumRepo *museumMocks.MockMuseumRepository
	payment    *paymentMocks.MockProcessor
	jwt        *jwtMocks.MockJWT
	kafka      *kafkaMocks.MockClient
	metrics    *metricsMocks.MockMetrics
	cache      *cacheMocks.MockRedisCache
	svc        service.Ticket
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := &fixture{
		repo:       ticketMocks.NewMockTicketRepository(ctrl),
		museumRepo: museumMocks.NewMockMuseumRepository(ctrl),
		payment:    paymentMocks.NewMockProcessor(ctrl),
		jwt:        jwtMocks.NewMockJWT(ctrl),
		kafka:      kafkaMocks.NewMockClient(ctrl),
		metrics:    metricsMocks.NewMockMetrics(ctrl),
		cache:      cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Kafka.Topics.Ticket = "ticket-events"

	f.svc = service.New(f.repo, f.museumRepo, f.payment, f.jwt, f.kafka, f.metrics, cfg, f.cache, mocks.NewOtel())

	f.kafka.EXPECT().SendMessages(gomock.Any(), "ticket-events", gomock.Any()).Return(nil).AnyTimes()

	return f
}

func runTx(ctx context.Context, fn func(context.Context, *sqlx.Tx) error) error {
	return fn(ctx, nil)
}

func intPtr(v int) *int {
	return &v
}

func strPtr(v string) *string {
	return &v
}

func cityMuseum() museumModel.Museum {
	return museumModel.Museum{
		ID:               museumID,
		Name:             "City Museum",
		IndianAdultFee:   decimal.NewFromInt(100),
		IndianChildFee:   decimal.NewFromInt(50),
		InternationalFee: decimal.NewFromInt(500),
	}
}

func futureDate(days int) time.Time {
	return timezone.Today().AddDate(0, 0, days)
}

func bookingRequest(nationality string) dto.CreateTicketRequest {
	return dto.CreateTicketRequest{
		UserPhone:    "9876543210",
		UserEmail:    "visitor@example.com",
		Adults:       intPtr(2),
		Children:     intPtr(1),
		VisitingDate: futureDate(7).Format(constant.DateOnlyFormat),
		MuseumName:   "City Museum",
		Nationality:  nationality,
	}
}

func (f *fixture) expectBookingWrite(t *testing.T, wantTotal string) {
	t.Helper()

	f.jwt.EXPECT().CheckoutURL(gomock.Any()).Return(checkoutURL, nil)
	f.repo.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
	f.repo.EXPECT().
		InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, ticket model.Ticket) error {
			assert.Equal(t, model.StatusPending, ticket.PaymentStatus)
			assert.Equal(t, wantTotal, ticket.TotalAmount.StringFixed(2))
			assert.Equal(t, checkoutURL, ticket.PaymentReference)
			assert.Equal(t, museumID, ticket.MuseumID)
			assert.Nil(t, ticket.VerificationCode)

			return nil
		})
	f.repo.EXPECT().InsertVisitorsTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.repo.EXPECT().
		InsertStatusEventTx(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, event model.StatusEvent) error {
			assert.Equal(t, string(model.StatusPending), event.ToStatus)
			assert.Equal(t, model.SourceBooking, event.Source)

			return nil
		})
	f.metrics.EXPECT().BookingCreated("City Museum")
}

func TestTicketService_Book(t *testing.T) {
	tests := []struct {
		name          string
		req           func() dto.CreateTicketRequest
		setupMock     func(t *testing.T, f *fixture)
		wantKind      failure.Kind
		wantTotal     string
		wantSecret    string
		wantIntentID  string
		wantInMessage string
	}{
		{
			name: "indian visitors pay the domestic tier",
			req:  func() dto.CreateTicketRequest { return bookingRequest("Indian") },
			setupMock: func(t *testing.T, f *fixture) {
				f.museumRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(cityMuseum(), nil)
				f.expectBookingWrite(t, "250.00")
				f.payment.EXPECT().Enabled().Return(false)
			},
			wantTotal: "250.00",
		},
		{
			name: "international visitors pay one rate",
			req:  func() dto.CreateTicketRequest { return bookingRequest("French") },
			setupMock: func(t *testing.T, f *fixture) {
				f.museumRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(cityMuseum(), nil)
				f.expectBookingWrite(t, "1500.00")
				f.payment.EXPECT().Enabled().Return(false)
			},
			wantTotal: "1500.00",
		},
		{
			name: "payment intent is created after commit",
			req:  func() dto.CreateTicketRequest { return bookingRequest("Indian") },
			setupMock: func(t *testing.T, f *fixture) {
				f.museumRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(cityMuseum(), nil)
				f.expectBookingWrite(t, "250.00")
				f.payment.EXPECT().Enabled().Return(true)
				f.payment.EXPECT().
					CreateIntent(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, amount decimal.Decimal) (payment.Intent, error) {
						assert.Equal(t, "250.00", amount.StringFixed(2))

						return payment.Intent{ID: intentID, ClientSecret: "secret_123"}, nil
					})
				f.metrics.EXPECT().PaymentIntent("created", gomock.Any())
				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, mod map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, intentID, mod[model.FieldPaymentIntentID])

						return nil
					})
			},
			wantTotal:    "250.00",
			wantSecret:   "secret_123",
			wantIntentID: intentID,
		},
		{
			name: "processor failure keeps the pending booking",
			req:  func() dto.CreateTicketRequest { return bookingRequest("Indian") },
			setupMock: func(t *testing.T, f *fixture) {
				f.museumRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(cityMuseum(), nil)
				f.expectBookingWrite(t, "250.00")
				f.payment.EXPECT().Enabled().Return(true)
				f.payment.EXPECT().CreateIntent(gomock.Any(), gomock.Any(), gomock.Any()).Return(payment.Intent{}, errors.New("timeout"))
				f.metrics.EXPECT().PaymentIntent("failed", gomock.Any())
			},
			wantTotal: "250.00",
		},
		{
			name: "missing fields are named",
			req: func() dto.CreateTicketRequest {
				req := bookingRequest("Indian")
				req.UserPhone = ""
				req.MuseumName = ""

				return req
			},
			setupMock: func(_ *testing.T, f *fixture) {
				f.metrics.EXPECT().BookingRejected(string(failure.KindValidation))
			},
			wantKind:      failure.KindValidation,
			wantInMessage: "user_phone is required, museum_name is required",
		},
		{
			name: "empty booking",
			req: func() dto.CreateTicketRequest {
				req := bookingRequest("Indian")
				req.Adults = intPtr(0)
				req.Children = intPtr(0)

				return req
			},
			setupMock: func(_ *testing.T, f *fixture) {
				f.metrics.EXPECT().BookingRejected(string(failure.KindValidation))
			},
			wantKind: failure.KindValidation,
		},
		{
			name: "more visitors than persons",
			req: func() dto.CreateTicketRequest {
				req := bookingRequest("Indian")
				req.Adults = intPtr(1)
				req.Children = intPtr(0)
				req.Visitors = []dto.VisitorRequest{
					{Nationality: "Indian", Gender: "male"},
					{Nationality: "Indian", Gender: "female"},
				}

				return req
			},
			setupMock: func(_ *testing.T, f *fixture) {
				f.metrics.EXPECT().BookingRejected(string(failure.KindValidation))
			},
			wantKind: failure.KindValidation,
		},
		{
			name: "unknown museum",
			req:  func() dto.CreateTicketRequest { return bookingRequest("Indian") },
			setupMock: func(_ *testing.T, f *fixture) {
				f.museumRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(museumModel.Museum{}, nil)
				f.metrics.EXPECT().BookingRejected(string(failure.KindNotFound))
			},
			wantKind: failure.KindNotFound,
		},
		{
			name: "visiting date in the past",
			req: func() dto.CreateTicketRequest {
				req := bookingRequest("Indian")
				req.VisitingDate = futureDate(-1).Format(constant.DateOnlyFormat)

				return req
			},
			setupMock: func(_ *testing.T, f *fixture) {
				f.museumRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(cityMuseum(), nil)
				f.metrics.EXPECT().BookingRejected(string(failure.KindInvalidRequest))
			},
			wantKind: failure.KindInvalidRequest,
		},
		{
			name: "museum closed on the visiting weekday",
			req:  func() dto.CreateTicketRequest { return bookingRequest("Indian") },
			setupMock: func(_ *testing.T, f *fixture) {
				museum := cityMuseum()
				museum.ClosedOn = futureDate(7).Weekday().String() + "s and national holidays"

				f.museumRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(museum, nil)
				f.metrics.EXPECT().BookingRejected(string(failure.KindInvalidRequest))
			},
			wantKind:      failure.KindInvalidRequest,
			wantInMessage: "closed on " + futureDate(7).Weekday().String(),
		},
		{
			name: "total beyond the storable amount",
			req:  func() dto.CreateTicketRequest { return bookingRequest("French") },
			setupMock: func(_ *testing.T, f *fixture) {
				museum := cityMuseum()
				museum.InternationalFee = decimal.RequireFromString("99999999.99")

				f.museumRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(museum, nil)
				f.metrics.EXPECT().BookingRejected(string(failure.KindValidation))
			},
			wantKind:      failure.KindValidation,
			wantInMessage: "maximum amount",
		},
		{
			name: "write failure creates no ticket",
			req:  func() dto.CreateTicketRequest { return bookingRequest("Indian") },
			setupMock: func(_ *testing.T, f *fixture) {
				f.museumRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(cityMuseum(), nil)
				f.jwt.EXPECT().CheckoutURL(gomock.Any()).Return(checkoutURL, nil)
				f.repo.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
				f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))
				f.metrics.EXPECT().BookingRejected(string(failure.KindInternal))
			},
			wantKind: failure.KindInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(t, f)

			res, err := f.svc.Book(t.Context(), tt.req())

			time.Sleep(10 * time.Millisecond)

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, failure.GetKind(err))

				if tt.wantInMessage != "" {
					assert.Contains(t, err.Error(), tt.wantInMessage)
				}

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, res.TicketID)
			assert.Equal(t, tt.wantTotal, res.TotalAmount)
			assert.Equal(t, string(model.StatusPending), res.PaymentStatus)
			assert.Equal(t, checkoutURL, res.PaymentReference)
			assert.Equal(t, tt.wantSecret, res.ClientSecret)
			assert.Equal(t, tt.wantIntentID, res.PaymentIntentID)
		})
	}
}

func pendingTicket() model.Ticket {
	return model.Ticket{
		ID:            ticketID,
		MuseumID:      museumID,
		MuseumName:    "City Museum",
		Adults:        2,
		Children:      1,
		TotalAmount:   decimal.RequireFromString("250.00"),
		PaymentStatus: model.StatusPending,
	}
}

func paidTicket(txn string) model.Ticket {
	ticket := pendingTicket()
	ticket.PaymentStatus = model.StatusPaid
	ticket.TransactionID = strPtr(txn)
	ticket.VerificationCode = strPtr("ABCDE-FGHJK")

	return ticket
}

func withStatus(status model.PaymentStatus) model.Ticket {
	ticket := pendingTicket()
	ticket.PaymentStatus = status

	return ticket
}

func (f *fixture) expectLocked(ticket model.Ticket) {
	f.repo.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
	f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(ticket, nil)
}

func TestTicketService_VerifyPayment(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		req       dto.VerifyPaymentRequest
		setupMock func(t *testing.T, f *fixture)
		wantKind  failure.Kind
		wantCode  string
	}{
		{
			name: "pending ticket becomes paid",
			id:   ticketID,
			req:  dto.VerifyPaymentRequest{TicketID: ticketID, TransactionID: transactionID},
			setupMock: func(t *testing.T, f *fixture) {
				f.expectLocked(pendingTicket())
				f.repo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, mod map[string]any, filter gDto.FilterGroup) error {
						assert.Equal(t, string(model.StatusPaid), mod[model.FieldPaymentStatus])
						assert.Equal(t, transactionID, mod[model.FieldTransactionID])
						assert.Regexp(t, `^[A-Z2-9]{5}-[A-Z2-9]{5}$`, mod[model.FieldVerificationCode])

						where, _ := filter.GetWhereClause()
						assert.Equal(t, "(tickets.id = :id)", where)

						return nil
					})
				f.repo.EXPECT().
					InsertStatusEventTx(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, event model.StatusEvent) error {
						assert.Equal(t, "pending", event.FromStatus)
						assert.Equal(t, "paid", event.ToStatus)
						assert.Equal(t, model.SourceVerify, event.Source)
						assert.Equal(t, transactionID, event.Reference)

						return nil
					})
				f.metrics.EXPECT().Transition("pending", "paid", model.SourceVerify)
			},
		},
		{
			name: "same transaction on a paid ticket is idempotent",
			id:   ticketID,
			req:  dto.VerifyPaymentRequest{TransactionID: transactionID},
			setupMock: func(_ *testing.T, f *fixture) {
				f.expectLocked(paidTicket(transactionID))
			},
			wantCode: "ABCDE-FGHJK",
		},
		{
			name: "different transaction on a paid ticket conflicts",
			id:   ticketID,
			req:  dto.VerifyPaymentRequest{TransactionID: "txn_other"},
			setupMock: func(_ *testing.T, f *fixture) {
				f.expectLocked(paidTicket(transactionID))
			},
			wantKind: failure.KindConflict,
		},
		{
			name: "refunded ticket cannot be paid",
			id:   ticketID,
			req:  dto.VerifyPaymentRequest{TransactionID: transactionID},
			setupMock: func(_ *testing.T, f *fixture) {
				f.expectLocked(withStatus(model.StatusRefunded))
			},
			wantKind: failure.KindInvalidStateTransition,
		},
		{
			name: "cancelled ticket cannot be paid",
			id:   ticketID,
			req:  dto.VerifyPaymentRequest{TransactionID: transactionID},
			setupMock: func(_ *testing.T, f *fixture) {
				f.expectLocked(withStatus(model.StatusCancelled))
			},
			wantKind: failure.KindInvalidStateTransition,
		},
		{
			name: "unknown ticket",
			id:   ticketID,
			req:  dto.VerifyPaymentRequest{TransactionID: transactionID},
			setupMock: func(_ *testing.T, f *fixture) {
				f.expectLocked(model.Ticket{})
			},
			wantKind: failure.KindNotFound,
		},
		{
			name:      "malformed ticket id",
			id:        "not-a-uuid",
			req:       dto.VerifyPaymentRequest{TransactionID: transactionID},
			setupMock: func(_ *testing.T, _ *fixture) {},
			wantKind:  failure.KindNotFound,
		},
		{
			name:      "body ticket id must match the path",
			id:        ticketID,
			req:       dto.VerifyPaymentRequest{TicketID: museumID, TransactionID: transactionID},
			setupMock: func(_ *testing.T, _ *fixture) {},
			wantKind:  failure.KindValidation,
		},
		{
			name:      "missing transaction id",
			id:        ticketID,
			req:       dto.VerifyPaymentRequest{},
			setupMock: func(_ *testing.T, _ *fixture) {},
			wantKind:  failure.KindValidation,
		},
		{
			name: "verification code collision is retried",
			id:   ticketID,
			req:  dto.VerifyPaymentRequest{TransactionID: transactionID},
			setupMock: func(_ *testing.T, f *fixture) {
				f.repo.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(runTx).Times(2)
				f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(pendingTicket(), nil).Times(2)
				gomock.InOrder(
					f.repo.EXPECT().
						UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
						Return(&pq.Error{Code: "23505", Constraint: model.ConstraintVerificationCode}),
					f.repo.EXPECT().
						UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
						Return(nil),
				)
				f.repo.EXPECT().InsertStatusEventTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.metrics.EXPECT().Transition("pending", "paid", model.SourceVerify)
			},
		},
		{
			name: "transaction id recorded on another ticket",
			id:   ticketID,
			req:  dto.VerifyPaymentRequest{TransactionID: transactionID},
			setupMock: func(_ *testing.T, f *fixture) {
				f.expectLocked(pendingTicket())
				f.repo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&pq.Error{Code: "23505", Constraint: model.ConstraintTransactionID})
			},
			wantKind: failure.KindConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(t, f)

			res, err := f.svc.VerifyPayment(t.Context(), tt.id, tt.req)

			time.Sleep(10 * time.Millisecond)

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, failure.GetKind(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, ticketID, res.TicketID)
			assert.Equal(t, string(model.StatusPaid), res.PaymentStatus)
			assert.Equal(t, "250.00", res.Amount)
			assert.NotEmpty(t, res.VerificationCode)

			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, res.VerificationCode)
			}
		})
	}
}

func TestTicketService_HandleWebhook(t *testing.T) {
	payload := []byte(`{"id":"evt_1"}`)

	tests := []struct {
		name        string
		setupMock   func(t *testing.T, f *fixture)
		wantKind    failure.Kind
		wantOutcome string
		wantStatus  string
	}{
		{
			name: "invalid signature is rejected before any lookup",
			setupMock: func(_ *testing.T, f *fixture) {
				f.payment.EXPECT().ParseWebhook(payload, "sig").Return(payment.Event{}, payment.ErrInvalidSignature)
				f.metrics.EXPECT().WebhookEvent("unknown", "rejected")
			},
			wantKind: failure.KindValidation,
		},
		{
			name: "malformed event is rejected",
			setupMock: func(_ *testing.T, f *fixture) {
				f.payment.EXPECT().ParseWebhook(payload, "sig").Return(payment.Event{}, payment.ErrMalformedEvent)
				f.metrics.EXPECT().WebhookEvent("unknown", "rejected")
			},
			wantKind: failure.KindValidation,
		},
		{
			name: "repeated delivery is acknowledged",
			setupMock: func(_ *testing.T, f *fixture) {
				f.payment.EXPECT().ParseWebhook(payload, "sig").Return(payment.Event{ID: "evt_1", Type: payment.EventPaymentSucceeded, TicketID: ticketID}, nil)
				f.cache.EXPECT().Get(gomock.Any(), "webhook:evt_1", gomock.Any()).Return(nil)
				f.metrics.EXPECT().WebhookEvent(payment.EventPaymentSucceeded, "duplicate")
			},
			wantOutcome: "duplicate",
		},
		{
			name: "unhandled event type is ignored",
			setupMock: func(_ *testing.T, f *fixture) {
				f.payment.EXPECT().ParseWebhook(payload, "sig").Return(payment.Event{ID: "evt_1", Type: "customer.created"}, nil)
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				f.cache.EXPECT().Save(gomock.Any(), "webhook:evt_1", "ignored", gomock.Any()).Return(nil)
				f.metrics.EXPECT().WebhookEvent("customer.created", "ignored")
			},
			wantOutcome: "ignored",
		},
		{
			name: "event without ticket metadata is ignored",
			setupMock: func(_ *testing.T, f *fixture) {
				f.payment.EXPECT().ParseWebhook(payload, "sig").Return(payment.Event{ID: "evt_1", Type: payment.EventPaymentCanceled}, nil)
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				f.cache.EXPECT().Save(gomock.Any(), "webhook:evt_1", gomock.Any(), gomock.Any()).Return(nil)
				f.metrics.EXPECT().WebhookEvent(payment.EventPaymentCanceled, "ignored")
			},
			wantOutcome: "ignored",
		},
		{
			name: "succeeded marks the ticket paid",
			setupMock: func(t *testing.T, f *fixture) {
				f.payment.EXPECT().ParseWebhook(payload, "sig").Return(payment.Event{
					ID: "evt_1", Type: payment.EventPaymentSucceeded, TicketID: ticketID, PaymentIntentID: intentID,
				}, nil)
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				f.expectLocked(pendingTicket())
				f.repo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, mod map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, intentID, mod[model.FieldTransactionID])
						assert.NotEmpty(t, mod[model.FieldVerificationCode])

						return nil
					})
				f.repo.EXPECT().InsertStatusEventTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.metrics.EXPECT().Transition("pending", "paid", model.SourceWebhook)
				f.metrics.EXPECT().WebhookEvent(payment.EventPaymentSucceeded, "handled")
				f.cache.EXPECT().Save(gomock.Any(), "webhook:evt_1", "handled", gomock.Any()).Return(nil)
			},
			wantOutcome: "handled",
			wantStatus:  "paid",
		},
		{
			name: "canceled after paid is a stale transition",
			setupMock: func(_ *testing.T, f *fixture) {
				f.payment.EXPECT().ParseWebhook(payload, "sig").Return(payment.Event{ID: "evt_1", Type: payment.EventPaymentCanceled, TicketID: ticketID}, nil)
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				f.expectLocked(paidTicket(intentID))
				f.metrics.EXPECT().WebhookEvent(payment.EventPaymentCanceled, "rejected")
			},
			wantKind: failure.KindInvalidStateTransition,
		},
		{
			name: "refund on a pending ticket is rejected",
			setupMock: func(_ *testing.T, f *fixture) {
				f.payment.EXPECT().ParseWebhook(payload, "sig").Return(payment.Event{ID: "evt_1", Type: payment.EventChargeRefunded, TicketID: ticketID}, nil)
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				f.expectLocked(pendingTicket())
				f.metrics.EXPECT().WebhookEvent(payment.EventChargeRefunded, "rejected")
			},
			wantKind: failure.KindInvalidStateTransition,
		},
		{
			name: "refund found through the payment intent",
			setupMock: func(_ *testing.T, f *fixture) {
				f.payment.EXPECT().ParseWebhook(payload, "sig").Return(payment.Event{ID: "evt_1", Type: payment.EventChargeRefunded, PaymentIntentID: intentID}, nil)
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				f.repo.EXPECT().GetByPaymentIntent(gomock.Any(), intentID).Return(paidTicket(intentID), nil)
				f.expectLocked(paidTicket(intentID))
				f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.repo.EXPECT().InsertStatusEventTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.metrics.EXPECT().Transition("paid", "refunded", model.SourceWebhook)
				f.metrics.EXPECT().WebhookEvent(payment.EventChargeRefunded, "handled")
				f.cache.EXPECT().Save(gomock.Any(), "webhook:evt_1", gomock.Any(), gomock.Any()).Return(nil)
			},
			wantOutcome: "handled",
			wantStatus:  "refunded",
		},
		{
			name: "unknown ticket is acknowledged",
			setupMock: func(_ *testing.T, f *fixture) {
				f.payment.EXPECT().ParseWebhook(payload, "sig").Return(payment.Event{ID: "evt_1", Type: payment.EventPaymentSucceeded, TicketID: ticketID}, nil)
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				f.expectLocked(model.Ticket{})
				f.metrics.EXPECT().WebhookEvent(payment.EventPaymentSucceeded, "ignored")
				f.cache.EXPECT().Save(gomock.Any(), "webhook:evt_1", gomock.Any(), gomock.Any()).Return(nil)
			},
			wantOutcome: "ignored",
		},
		{
			name: "dedupe write failure still acknowledges",
			setupMock: func(_ *testing.T, f *fixture) {
				f.payment.EXPECT().ParseWebhook(payload, "sig").Return(payment.Event{ID: "evt_1", Type: "customer.created"}, nil)
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				f.metrics.EXPECT().WebhookEvent("customer.created", "ignored")
				f.cache.EXPECT().Save(gomock.Any(), "webhook:evt_1", "ignored", gomock.Any()).Return(errors.New("redis down"))
			},
			wantOutcome: "ignored",
		},
		{
			name: "lookup failure is reported",
			setupMock: func(_ *testing.T, f *fixture) {
				f.payment.EXPECT().ParseWebhook(payload, "sig").Return(payment.Event{ID: "evt_1", Type: payment.EventChargeRefunded, PaymentIntentID: intentID}, nil)
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				f.repo.EXPECT().GetByPaymentIntent(gomock.Any(), intentID).Return(model.Ticket{}, errors.New("connection refused"))
				f.metrics.EXPECT().WebhookEvent(payment.EventChargeRefunded, "failed")
			},
			wantKind: failure.KindInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(t, f)

			res, err := f.svc.HandleWebhook(t.Context(), payload, "sig")

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, failure.GetKind(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "evt_1", res.EventID)
			assert.Equal(t, tt.wantOutcome, res.Outcome)
			assert.Equal(t, tt.wantStatus, res.PaymentStatus)
		})
	}
}

func TestTicketService_VerifyEntry(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.VerifyEntryRequest
		setupMock func(t *testing.T, f *fixture)
		wantKind  failure.Kind
		wantValid bool
	}{
		{
			name: "matching pair on a paid ticket",
			req:  dto.VerifyEntryRequest{VerificationCode: "abcdefghjk"},
			setupMock: func(t *testing.T, f *fixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, filter gDto.FilterGroup, _ ...string) (model.Ticket, error) {
						where, args := filter.GetWhereClause()
						assert.Equal(t, "(tickets.id = :id AND tickets.verification_code = :verification_code)", where)
						assert.Equal(t, "ABCDE-FGHJK", args["verification_code"])

						return paidTicket(transactionID), nil
					})
			},
			wantValid: true,
		},
		{
			name: "refunded ticket reports invalid",
			req:  dto.VerifyEntryRequest{VerificationCode: "ABCDE-FGHJK"},
			setupMock: func(_ *testing.T, f *fixture) {
				ticket := paidTicket(transactionID)
				ticket.PaymentStatus = model.StatusRefunded

				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(ticket, nil)
			},
			wantValid: false,
		},
		{
			name: "pair does not match",
			req:  dto.VerifyEntryRequest{VerificationCode: "ZZZZZ-ZZZZZ"},
			setupMock: func(_ *testing.T, f *fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Ticket{}, nil)
			},
			wantKind: failure.KindNotFound,
		},
		{
			name:      "missing code",
			req:       dto.VerifyEntryRequest{},
			setupMock: func(_ *testing.T, _ *fixture) {},
			wantKind:  failure.KindValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(t, f)

			res, err := f.svc.VerifyEntry(t.Context(), ticketID, tt.req)

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, failure.GetKind(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "success", res.Status)
			assert.Equal(t, tt.wantValid, res.Valid)
		})
	}
}

func TestTicketService_Summary(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().
		Summary(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (model.Summary, error) {
			where, args := filter.GetWhereClause()
			assert.Equal(t, "(tickets.museum_id = :museum_id AND tickets.payment_status = :payment_status)", where)
			assert.Equal(t, "paid", args["payment_status"])

			return model.Summary{TotalSales: decimal.RequireFromString("1750"), TotalTickets: 2, TotalPersons: 6}, nil
		})

	res, err := f.svc.Summary(t.Context(), dto.SummaryRequest{MuseumID: museumID, PaymentStatus: "paid"})
	require.NoError(t, err)
	assert.Equal(t, "1750.00", res.TotalSales)
	assert.Equal(t, 2, res.TotalTickets)
	assert.Equal(t, 6, res.TotalPersons)

	_, err = f.svc.Summary(t.Context(), dto.SummaryRequest{PaymentStatus: "settled"})
	assert.Equal(t, failure.KindValidation, failure.GetKind(err))
}

func TestTicketService_CreatePaymentIntent(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(f *fixture)
		wantKind  failure.Kind
	}{
		{
			name: "pending ticket gets an intent",
			setupMock: func(f *fixture) {
				ticket := pendingTicket()
				ticket.PaymentIntentID = strPtr(intentID)

				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(ticket, nil)
				f.payment.EXPECT().Enabled().Return(true)
				f.payment.EXPECT().CreateIntent(gomock.Any(), ticketID, gomock.Any()).Return(payment.Intent{ID: intentID, ClientSecret: "secret", Status: "requires_payment_method"}, nil)
				f.metrics.EXPECT().PaymentIntent("created", gomock.Any())
			},
		},
		{
			name: "paid ticket cannot be charged again",
			setupMock: func(f *fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(paidTicket(transactionID), nil)
			},
			wantKind: failure.KindInvalidStateTransition,
		},
		{
			name: "processor disabled",
			setupMock: func(f *fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pendingTicket(), nil)
				f.payment.EXPECT().Enabled().Return(false)
				f.metrics.EXPECT().PaymentIntent("disabled", gomock.Any())
			},
			wantKind: failure.KindUpstream,
		},
		{
			name: "processor failure",
			setupMock: func(f *fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pendingTicket(), nil)
				f.payment.EXPECT().Enabled().Return(true)
				f.payment.EXPECT().CreateIntent(gomock.Any(), ticketID, gomock.Any()).Return(payment.Intent{}, errors.New("timeout"))
				f.metrics.EXPECT().PaymentIntent("failed", gomock.Any())
			},
			wantKind: failure.KindUpstream,
		},
		{
			name: "unknown ticket",
			setupMock: func(f *fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Ticket{}, nil)
			},
			wantKind: failure.KindNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.CreatePaymentIntent(t.Context(), ticketID)

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, failure.GetKind(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, intentID, res.PaymentIntentID)
			assert.Equal(t, "secret", res.ClientSecret)
		})
	}
}

func TestTicketService_PaymentView(t *testing.T) {
	tests := []struct {
		name      string
		token     string
		setupMock func(f *fixture)
		wantKind  failure.Kind
	}{
		{
			name:  "valid token renders the ticket",
			token: "good",
			setupMock: func(f *fixture) {
				f.jwt.EXPECT().ValidateCheckoutToken("good", ticketID).Return(nil, nil)
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(paidTicket(transactionID), nil)
			},
		},
		{
			name:      "missing token",
			setupMock: func(_ *fixture) {},
			wantKind:  failure.KindUnauthorized,
		},
		{
			name:  "token for another ticket",
			token: "bad",
			setupMock: func(f *fixture) {
				f.jwt.EXPECT().ValidateCheckoutToken("bad", ticketID).Return(nil, errors.New("invalid token claim"))
			},
			wantKind: failure.KindUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.PaymentView(t.Context(), ticketID, tt.token)

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, failure.GetKind(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "City Museum", res.MuseumName)
			assert.Equal(t, "250.00", res.TotalAmount)
			assert.Equal(t, "paid", res.PaymentStatus)
			assert.Equal(t, "ABCDE-FGHJK", res.VerificationCode)
		})
	}
}
