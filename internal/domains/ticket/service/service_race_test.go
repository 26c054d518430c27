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
	"darshan/internal/domains/ticket/model"
	"darshan/internal/domains/ticket/model/dto"
	"darshan/internal/domains/ticket/service"
	cacheMocks "darshan/shared/cache/mocks"
	gDto "darshan/shared/dto"
	"darshan/shared/failure"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// memoryStore serializes transactions the way a row lock would.
type memoryStore struct {
	txMu    sync.Mutex
	mu      sync.Mutex
	tickets map[string]model.Ticket
	events  []model.StatusEvent
	codes   int
}

func newMemoryStore(tickets ...model.Ticket) *memoryStore {
	store := &memoryStore{tickets: map[string]model.Ticket{}}
	for _, ticket := range tickets {
		store.tickets[ticket.ID] = ticket
	}

	return store
}

func idFrom(filter gDto.FilterGroup) string {
	_, args := filter.GetWhereClause()
	id, _ := args[model.FieldID].(string)

	return id
}

func (m *memoryStore) WithTx(ctx context.Context, fn func(ctx context.Context, tx *sqlx.Tx) error) error {
	m.txMu.Lock()
	defer m.txMu.Unlock()

	return fn(ctx, nil)
}

func (m *memoryStore) InsertTx(_ context.Context, _ *sqlx.Tx, ticket model.Ticket) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.tickets[ticket.ID] = ticket

	return nil
}

func (m *memoryStore) InsertVisitorsTx(_ context.Context, _ *sqlx.Tx, _ []model.Person) error {
	return nil
}

func (m *memoryStore) InsertStatusEventTx(_ context.Context, _ *sqlx.Tx, event model.StatusEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.events = append(m.events, event)

	return nil
}

func (m *memoryStore) GetForUpdateTx(ctx context.Context, _ *sqlx.Tx, filter gDto.FilterGroup) (model.Ticket, error) {
	return m.Get(ctx, filter)
}

func (m *memoryStore) UpdateTx(_ context.Context, _ *sqlx.Tx, mod map[string]any, filter gDto.FilterGroup) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	ticket, ok := m.tickets[idFrom(filter)]
	if !ok {
		return errors.New("no rows")
	}

	if status, ok := mod[model.FieldPaymentStatus].(string); ok {
		ticket.PaymentStatus = model.PaymentStatus(status)
	}

	if code, ok := mod[model.FieldVerificationCode].(string); ok {
		ticket.VerificationCode = &code
		m.codes++
	}

	if txn, ok := mod[model.FieldTransactionID].(string); ok {
		ticket.TransactionID = &txn
	}

	m.tickets[ticket.ID] = ticket

	return nil
}

func (m *memoryStore) Get(_ context.Context, filter gDto.FilterGroup, _ ...string) (model.Ticket, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.tickets[idFrom(filter)], nil
}

func (m *memoryStore) GetByPaymentIntent(_ context.Context, paymentIntentID string) (model.Ticket, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, ticket := range m.tickets {
		if ticket.PaymentIntentID != nil && *ticket.PaymentIntentID == paymentIntentID {
			return ticket, nil
		}
	}

	return model.Ticket{}, nil
}

func (m *memoryStore) Update(ctx context.Context, mod map[string]any, filter gDto.FilterGroup) error {
	return m.UpdateTx(ctx, nil, mod, filter)
}

func (m *memoryStore) Summary(_ context.Context, _ gDto.FilterGroup) (model.Summary, error) {
	return model.Summary{}, nil
}

func newRaceService(t *testing.T, store *memoryStore) (service.Ticket, *paymentMocks.MockProcessor, *metricsMocks.MockMetrics) {
	t.Helper()

	ctrl := gomock.NewController(t)

	processor := paymentMocks.NewMockProcessor(ctrl)
	metrics := metricsMocks.NewMockMetrics(ctrl)
	kafka := kafkaMocks.NewMockClient(ctrl)
	redisCache := cacheMocks.NewMockRedisCache(ctrl)

	kafka.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	redisCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).AnyTimes()
	redisCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	metrics.EXPECT().WebhookEvent(gomock.Any(), gomock.Any()).AnyTimes()

	cfg := &config.Config{}
	cfg.Kafka.Topics.Ticket = "ticket-events"

	svc := service.New(store, museumMocks.NewMockMuseumRepository(ctrl), processor, jwtMocks.NewMockJWT(ctrl), kafka, metrics, cfg, redisCache, mocks.NewOtel())

	return svc, processor, metrics
}

func TestTicketService_ConcurrentSettlement(t *testing.T) {
	store := newMemoryStore(pendingTicket())
	svc, processor, metrics := newRaceService(t, store)

	metrics.EXPECT().Transition(gomock.Any(), gomock.Any(), gomock.Any()).Times(1)
	processor.EXPECT().
		ParseWebhook(gomock.Any(), gomock.Any()).
		Return(payment.Event{ID: "evt_1", Type: payment.EventPaymentSucceeded, TicketID: ticketID, PaymentIntentID: transactionID}, nil).
		AnyTimes()

	const callers = 16

	var (
		wg      sync.WaitGroup
		codesMu sync.Mutex
		codes   = map[string]struct{}{}
	)

	for i := range callers {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()

			if i%2 == 0 {
				res, err := svc.VerifyPayment(context.Background(), ticketID, dto.VerifyPaymentRequest{TransactionID: transactionID})
				if !assert.NoError(t, err) {
					return
				}

				codesMu.Lock()
				codes[res.VerificationCode] = struct{}{}
				codesMu.Unlock()

				return
			}

			res, err := svc.HandleWebhook(context.Background(), []byte(`{}`), "sig")
			assert.NoError(t, err)
			assert.Equal(t, string(model.StatusPaid), res.PaymentStatus)
		}(i)
	}

	wg.Wait()
	time.Sleep(10 * time.Millisecond)

	assert.Equal(t, 1, store.codes)
	assert.Len(t, store.events, 1)
	assert.Len(t, codes, 1)
	assert.Equal(t, model.StatusPaid, store.tickets[ticketID].PaymentStatus)
}

func TestTicketService_RefundedCannotBePaid(t *testing.T) {
	refunded := paidTicket(transactionID)
	refunded.PaymentStatus = model.StatusRefunded

	store := newMemoryStore(refunded)
	svc, _, _ := newRaceService(t, store)

	_, err := svc.VerifyPayment(t.Context(), ticketID, dto.VerifyPaymentRequest{TransactionID: transactionID})
	require.Error(t, err)
	assert.Equal(t, failure.KindInvalidStateTransition, failure.GetKind(err))

	assert.Equal(t, model.StatusRefunded, store.tickets[ticketID].PaymentStatus)
	assert.Empty(t, store.events)
}
