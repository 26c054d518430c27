package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Ticket=MockTicketService

import (
	"context"
	"darshan/config"
	"darshan/infras/jwt"
	"darshan/infras/kafka"
	"darshan/infras/metrics"
	"darshan/infras/otel"
	"darshan/infras/payment"
	"darshan/infras/postgres"
	museumModel "darshan/internal/domains/museum/model"
	museumRepo "darshan/internal/domains/museum/repository"
	"darshan/internal/domains/ticket/fee"
	"darshan/internal/domains/ticket/model"
	"darshan/internal/domains/ticket/model/dto"
	"darshan/internal/domains/ticket/repository"
	"darshan/internal/domains/ticket/verification"
	"darshan/shared"
	"darshan/shared/cache"
	"darshan/shared/constant"
	gDto "darshan/shared/dto"
	"darshan/shared/failure"
	"darshan/shared/timezone"
	"darshan/shared/validator"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	CacheWebhookEvent = "webhook"

	// processors retry deliveries for up to three days
	webhookDedupeTTL = 72 * 60 * 60

	maxCodeAttempts = 3

	errTicketNotFound = "ticket not found"
)

var webhookTransitions = map[string]model.PaymentStatus{
	payment.EventPaymentSucceeded: model.StatusPaid,
	payment.EventPaymentCanceled:  model.StatusCancelled,
	payment.EventChargeRefunded:   model.StatusRefunded,
}

type Ticket interface {
	Book(ctx context.Context, req dto.CreateTicketRequest) (dto.BookingResponse, error)
	CreatePaymentIntent(ctx context.Context, id string) (dto.PaymentIntentResponse, error)
	VerifyPayment(ctx context.Context, id string, req dto.VerifyPaymentRequest) (dto.VerifyPaymentResponse, error)
	HandleWebhook(ctx context.Context, payload []byte, signature string) (dto.WebhookResponse, error)
	VerifyEntry(ctx context.Context, id string, req dto.VerifyEntryRequest) (dto.VerifyEntryResponse, error)
	Summary(ctx context.Context, req dto.SummaryRequest) (dto.SummaryResponse, error)
	PaymentView(ctx context.Context, id, token string) (dto.PaymentViewResponse, error)
}

type serviceImpl struct {
	repo       repository.Ticket
	museumRepo museumRepo.Museum
	payment    payment.Processor
	jwt        jwt.JWT
	kafka      kafka.Client
	metrics    metrics.Metrics
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
}

func New(
	repo repository.Ticket,
	museumRepo museumRepo.Museum,
	payment payment.Processor,
	jwt jwt.JWT,
	kafka kafka.Client,
	metrics metrics.Metrics,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Ticket {
	return &serviceImpl{
		repo:       repo,
		museumRepo: museumRepo,
		payment:    payment,
		jwt:        jwt,
		kafka:      kafka,
		metrics:    metrics,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
	}
}

// Book prices and stores a pending ticket. The ticket, its visitors and the first
// audit row are written in one transaction; the processor is only called after commit.
func (s *serviceImpl) Book(ctx context.Context, req dto.CreateTicketRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ticket.Book")
	defer scope.End()
	defer scope.TraceIfError(err)

	defer func() {
		if err != nil {
			s.metrics.BookingRejected(string(failure.GetKind(err)))
		}
	}()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	persons := req.AdultCount() + req.ChildCount()
	if persons < 1 {
		return res, failure.Validation("at least one adult or child is required") //nolint:wrapcheck
	}

	if len(req.Visitors) > persons {
		return res, failure.Validation("visitors cannot exceed adults plus children") //nolint:wrapcheck
	}

	museum, err := s.museumRepo.Get(ctx, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: museumModel.FieldName, Value: req.MuseumName, Operator: gDto.FilterOperatorEq, Table: museumModel.TableName},
		},
	})
	if err != nil {
		log.Error().Err(err).Str("museum_name", req.MuseumName).Msg("failed to get museum")

		return res, fmt.Errorf("failed to get museum: %w", err)
	}

	if museum.ID == "" {
		return res, failure.NotFound("museum not found") //nolint:wrapcheck
	}

	visitingDate, err := timezone.Parse(constant.DateOnlyFormat, req.VisitingDate)
	if err != nil {
		return res, failure.Validation("visiting_date must match the format " + constant.DateOnlyFormat) //nolint:wrapcheck
	}

	if visitingDate.Before(timezone.Today()) {
		return res, failure.InvalidRequest("visiting_date cannot be in the past") //nolint:wrapcheck
	}

	if museum.IsClosedOn(visitingDate) {
		return res, failure.InvalidRequest(fmt.Sprintf("%s is closed on %s", museum.Name, visitingDate.Weekday())) //nolint:wrapcheck
	}

	total, err := fee.Compute(fee.Schedule{
		IndianAdult:   museum.IndianAdultFee,
		IndianChild:   museum.IndianChildFee,
		International: museum.InternationalFee,
	}, req.Nationality, req.AdultCount(), req.ChildCount())
	if err != nil {
		return res, failure.Validation(err.Error()) //nolint:wrapcheck
	}

	id := uuid.NewString()

	reference, err := s.jwt.CheckoutURL(id)
	if err != nil {
		log.Error().Err(err).Msg("failed to build payment reference")

		return res, fmt.Errorf("failed to build payment reference: %w", err)
	}

	actor := actorFrom(ctx)
	ticket := req.ToModel(id, museum, visitingDate, total, reference, actor)

	err = s.repo.WithTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		if err := s.repo.InsertTx(ctx, tx, ticket); err != nil {
			return fmt.Errorf("failed to insert ticket: %w", err)
		}

		if err := s.repo.InsertVisitorsTx(ctx, tx, req.VisitorModels(id, actor)); err != nil {
			return fmt.Errorf("failed to insert visitors: %w", err)
		}

		return s.repo.InsertStatusEventTx(ctx, tx, newStatusEvent(id, "", model.StatusPending, model.SourceBooking, "", actor))
	})
	if err != nil {
		log.Error().Err(err).Str("museum_id", museum.ID).Msg("failed to book ticket")

		return res, fmt.Errorf("failed to book ticket: %w", err)
	}

	s.metrics.BookingCreated(museum.Name)
	res.FromModel(ticket)

	if s.payment.Enabled() {
		intent, intentErr := s.createIntent(ctx, ticket)
		if intentErr != nil {
			log.Warn().Err(intentErr).Str("ticket_id", id).Msg("payment intent not created, ticket stays pending")
		} else {
			res.PaymentIntentID = intent.ID
			res.ClientSecret = intent.ClientSecret
		}
	}

	s.publish(ctx, ticket)

	return res, nil
}

func (s *serviceImpl) CreatePaymentIntent(ctx context.Context, id string) (res dto.PaymentIntentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ticket.CreatePaymentIntent")
	defer scope.End()
	defer scope.TraceIfError(err)

	ticket, err := s.getTicket(ctx, id)
	if err != nil {
		return res, err
	}

	if ticket.PaymentStatus != model.StatusPending {
		return res, failure.InvalidStateTransition(fmt.Sprintf("ticket is %s, only pending tickets can be paid", ticket.PaymentStatus)) //nolint:wrapcheck
	}

	if !s.payment.Enabled() {
		s.metrics.PaymentIntent(metrics.ResultDisabled, 0)

		return res, failure.Upstream("payment processor is not configured") //nolint:wrapcheck
	}

	intent, err := s.createIntent(ctx, ticket)
	if err != nil {
		log.Error().Err(err).Str("ticket_id", id).Msg("failed to create payment intent")

		return res, failure.Upstream("payment processor request failed") //nolint:wrapcheck
	}

	res = dto.PaymentIntentResponse{
		TicketID:        ticket.ID,
		PaymentIntentID: intent.ID,
		ClientSecret:    intent.ClientSecret,
		Status:          intent.Status,
	}

	return res, nil
}

func (s *serviceImpl) VerifyPayment(ctx context.Context, id string, req dto.VerifyPaymentRequest) (res dto.VerifyPaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ticket.VerifyPayment")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	if req.TicketID != "" && req.TicketID != id {
		return res, failure.Validation("ticket_id does not match the ticket in the path") //nolint:wrapcheck
	}

	if _, parseErr := uuid.Parse(id); parseErr != nil {
		return res, failure.NotFound(errTicketNotFound) //nolint:wrapcheck
	}

	ticket, err := s.applyTransition(ctx, transition{
		ticketID:      id,
		to:            model.StatusPaid,
		source:        model.SourceVerify,
		reference:     req.TransactionID,
		transactionID: req.TransactionID,
		strict:        true,
	})
	if err != nil {
		return res, err
	}

	res.FromModel(ticket)

	return res, nil
}

// HandleWebhook applies a processor notification. Deliveries are at-least-once and
// unordered, so repeats are acknowledged and stale transitions are rejected.
func (s *serviceImpl) HandleWebhook(ctx context.Context, payload []byte, signature string) (res dto.WebhookResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ticket.HandleWebhook")
	defer scope.End()
	defer scope.TraceIfError(err)

	event, err := s.payment.ParseWebhook(payload, signature)
	if err != nil {
		s.metrics.WebhookEvent(metrics.EventUnknown, metrics.OutcomeRejected)

		if errors.Is(err, payment.ErrInvalidSignature) {
			log.Warn().Err(err).Msg("rejected webhook with invalid signature")

			return res, failure.Validation("invalid webhook signature") //nolint:wrapcheck
		}

		log.Warn().Err(err).Msg("rejected malformed webhook")

		return res, failure.Validation("malformed webhook payload") //nolint:wrapcheck
	}

	res.EventID = event.ID
	res.Type = event.Type

	cacheKey := shared.BuildCacheKey(CacheWebhookEvent, event.ID)

	var seen string
	if cacheErr := s.cache.Get(ctx, cacheKey, &seen); cacheErr == nil {
		log.Debug().Str("event_id", event.ID).Msg("duplicate webhook delivery")

		res.Outcome = metrics.OutcomeDuplicate
		s.metrics.WebhookEvent(event.Type, res.Outcome)

		return res, nil
	}

	to, ok := webhookTransitions[event.Type]
	if !ok {
		return s.acknowledge(ctx, res, cacheKey, metrics.OutcomeIgnored), nil
	}

	ticketID, err := s.webhookTicketID(ctx, event)
	if err != nil {
		s.metrics.WebhookEvent(event.Type, metrics.OutcomeFailed)

		return res, err
	}

	if ticketID == "" {
		log.Warn().Str("event_id", event.ID).Str("type", event.Type).Msg("webhook carries no known ticket")

		return s.acknowledge(ctx, res, cacheKey, metrics.OutcomeIgnored), nil
	}

	res.TicketID = ticketID

	ticket, err := s.applyTransition(ctx, transition{
		ticketID:      ticketID,
		to:            to,
		source:        model.SourceWebhook,
		reference:     event.ID,
		transactionID: event.PaymentIntentID,
	})
	if err != nil {
		switch failure.GetKind(err) {
		case failure.KindNotFound:
			log.Warn().Str("event_id", event.ID).Str("ticket_id", ticketID).Msg("webhook for unknown ticket")

			return s.acknowledge(ctx, res, cacheKey, metrics.OutcomeIgnored), nil
		case failure.KindInvalidStateTransition:
			log.Warn().Err(err).Str("event_id", event.ID).Str("ticket_id", ticketID).Msg("rejected stale webhook transition")
			s.metrics.WebhookEvent(event.Type, metrics.OutcomeRejected)
		default:
			s.metrics.WebhookEvent(event.Type, metrics.OutcomeFailed)
		}

		return res, err
	}

	res.PaymentStatus = string(ticket.PaymentStatus)

	return s.acknowledge(ctx, res, cacheKey, metrics.OutcomeHandled), nil
}

func (s *serviceImpl) VerifyEntry(ctx context.Context, id string, req dto.VerifyEntryRequest) (res dto.VerifyEntryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ticket.VerifyEntry")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	if req.TicketID != "" && req.TicketID != id {
		return res, failure.Validation("ticket_id does not match the ticket in the path") //nolint:wrapcheck
	}

	if _, parseErr := uuid.Parse(id); parseErr != nil {
		return res, failure.NotFound(errTicketNotFound) //nolint:wrapcheck
	}

	ticket, err := s.repo.Get(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldID, Value: id, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldVerificationCode, Value: verification.Normalize(req.VerificationCode), Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	})
	if err != nil {
		log.Error().Err(err).Str("ticket_id", id).Msg("failed to get ticket")

		return res, fmt.Errorf("failed to get ticket: %w", err)
	}

	if ticket.ID == "" {
		return res, failure.NotFound("ticket not found or verification code does not match") //nolint:wrapcheck
	}

	res.FromModel(ticket)

	return res, nil
}

func (s *serviceImpl) Summary(ctx context.Context, req dto.SummaryRequest) (res dto.SummaryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ticket.Summary")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if req.MuseumID != "" {
		filter.Filters = append(filter.Filters, gDto.Filter{Field: model.FieldMuseumID, Value: req.MuseumID, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	if req.PaymentStatus != "" {
		filter.Filters = append(filter.Filters, gDto.Filter{Field: model.FieldPaymentStatus, Value: req.PaymentStatus, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	summary, err := s.repo.Summary(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to summarize tickets")

		return res, fmt.Errorf("failed to summarize tickets: %w", err)
	}

	res.FromModel(summary)

	return res, nil
}

// PaymentView backs the checkout page. The token must have been issued for this ticket.
func (s *serviceImpl) PaymentView(ctx context.Context, id, token string) (res dto.PaymentViewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ticket.PaymentView")
	defer scope.End()
	defer scope.TraceIfError(err)

	if token == "" {
		return res, failure.Unauthorized("checkout token is required") //nolint:wrapcheck
	}

	if _, err = s.jwt.ValidateCheckoutToken(token, id); err != nil {
		log.Warn().Err(err).Str("ticket_id", id).Msg("rejected checkout token")

		return res, failure.Unauthorized("invalid or expired checkout token") //nolint:wrapcheck
	}

	ticket, err := s.getTicket(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(ticket)

	if ticket.PaymentStatus == model.StatusPending && s.payment.Enabled() {
		intent, intentErr := s.createIntent(ctx, ticket)
		if intentErr != nil {
			log.Warn().Err(intentErr).Str("ticket_id", id).Msg("payment intent not available for checkout page")
		} else {
			res.ClientSecret = intent.ClientSecret
		}
	}

	return res, nil
}

func (s *serviceImpl) getTicket(ctx context.Context, id string) (model.Ticket, error) {
	if _, err := uuid.Parse(id); err != nil {
		return model.Ticket{}, failure.NotFound(errTicketNotFound) //nolint:wrapcheck
	}

	ticket, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("ticket_id", id).Msg("failed to get ticket")

		return ticket, fmt.Errorf("failed to get ticket: %w", err)
	}

	if ticket.ID == "" {
		return ticket, failure.NotFound(errTicketNotFound) //nolint:wrapcheck
	}

	return ticket, nil
}

// webhookTicketID prefers the ticket metadata and falls back to the intent id for
// objects such as refunds that do not copy the intent's metadata.
func (s *serviceImpl) webhookTicketID(ctx context.Context, event payment.Event) (string, error) {
	if event.TicketID != "" {
		if _, err := uuid.Parse(event.TicketID); err != nil {
			return "", nil
		}

		return event.TicketID, nil
	}

	if event.PaymentIntentID == "" {
		return "", nil
	}

	ticket, err := s.repo.GetByPaymentIntent(ctx, event.PaymentIntentID)
	if err != nil {
		log.Error().Err(err).Str("payment_intent_id", event.PaymentIntentID).Msg("failed to get ticket by payment intent")

		return "", fmt.Errorf("failed to get ticket by payment intent: %w", err)
	}

	return ticket.ID, nil
}

func (s *serviceImpl) acknowledge(ctx context.Context, res dto.WebhookResponse, cacheKey, outcome string) dto.WebhookResponse {
	res.Outcome = outcome
	s.metrics.WebhookEvent(res.Type, outcome)

	if err := s.cache.Save(ctx, cacheKey, outcome, webhookDedupeTTL); err != nil {
		log.Error().Err(err).Str("event_id", res.EventID).Msg("failed to remember webhook event")
	}

	return res
}

func (s *serviceImpl) createIntent(ctx context.Context, ticket model.Ticket) (payment.Intent, error) {
	start := time.Now()

	intent, err := s.payment.CreateIntent(ctx, ticket.ID, ticket.TotalAmount)
	if err != nil {
		s.metrics.PaymentIntent(metrics.ResultFailed, time.Since(start))

		return intent, fmt.Errorf("failed to create payment intent: %w", err)
	}

	s.metrics.PaymentIntent(metrics.ResultCreated, time.Since(start))

	if ticket.PaymentIntentID != nil && *ticket.PaymentIntentID == intent.ID {
		return intent, nil
	}

	mod := map[string]any{
		model.FieldPaymentIntentID: intent.ID,
		constant.FieldModifiedAt:   timezone.Now(),
		constant.FieldModifiedBy:   actorFrom(ctx),
	}

	// the intent metadata still carries the ticket id, so a failed write is recoverable
	if err = s.repo.Update(ctx, mod, shared.FilterByID(ticket.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Str("ticket_id", ticket.ID).Str("payment_intent_id", intent.ID).Msg("failed to store payment intent id")
	}

	return intent, nil
}

type transition struct {
	ticketID      string
	to            model.PaymentStatus
	source        string
	reference     string
	transactionID string
	// strict rejects a repeat that names a different transaction than the one recorded
	strict bool
}

// applyTransition is the only writer of payment_status. The row is locked for the
// whole read-validate-write so concurrent callers serialize on the ticket.
func (s *serviceImpl) applyTransition(ctx context.Context, t transition) (ticket model.Ticket, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ticket.applyTransition")
	defer scope.End()
	defer scope.TraceIfError(err)

	var (
		from    model.PaymentStatus
		changed bool
	)

	for attempt := 1; ; attempt++ {
		ticket, from, changed, err = s.transitionOnce(ctx, t)
		if err == nil || !isCodeCollision(err) || attempt >= maxCodeAttempts {
			break
		}

		log.Warn().Str("ticket_id", t.ticketID).Int("attempt", attempt).Msg("verification code collision, retrying")
	}

	if err != nil {
		if postgres.IsUniqueViolation(err) && postgres.ConstraintName(err) == model.ConstraintTransactionID {
			return ticket, failure.Conflict("transaction_id is already recorded on another ticket") //nolint:wrapcheck
		}

		var fail *failure.Failure
		if !errors.As(err, &fail) {
			log.Error().Err(err).Str("ticket_id", t.ticketID).Str("to", string(t.to)).Msg("failed to apply payment transition")
		}

		return ticket, err
	}

	if changed {
		s.metrics.Transition(string(from), string(t.to), t.source)
		s.publish(ctx, ticket)
	}

	return ticket, nil
}

func (s *serviceImpl) transitionOnce(ctx context.Context, t transition) (ticket model.Ticket, from model.PaymentStatus, changed bool, err error) {
	filter := shared.FilterByID(t.ticketID, model.FieldID, model.TableName)
	actor := actorFrom(ctx)

	err = s.repo.WithTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		current, err := s.repo.GetForUpdateTx(ctx, tx, filter)
		if err != nil {
			return fmt.Errorf("failed to lock ticket: %w", err)
		}

		if current.ID == "" {
			return failure.NotFound(errTicketNotFound) //nolint:wrapcheck
		}

		ticket = current
		from = current.PaymentStatus

		if current.PaymentStatus == t.to {
			if t.strict && t.transactionID != "" && deref(current.TransactionID) != t.transactionID {
				return failure.Conflict(fmt.Sprintf("ticket is already %s with a different transaction_id", current.PaymentStatus)) //nolint:wrapcheck
			}

			return nil
		}

		if !current.PaymentStatus.CanTransitionTo(t.to) {
			return failure.InvalidStateTransition(fmt.Sprintf("cannot move ticket from %s to %s", current.PaymentStatus, t.to)) //nolint:wrapcheck
		}

		mod := map[string]any{
			model.FieldPaymentStatus: string(t.to),
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: actor,
		}

		if t.to == model.StatusPaid {
			code, err := verification.NewCode()
			if err != nil {
				return fmt.Errorf("failed to generate verification code: %w", err)
			}

			mod[model.FieldVerificationCode] = code
			ticket.VerificationCode = &code

			if t.transactionID != "" {
				transactionID := t.transactionID
				mod[model.FieldTransactionID] = transactionID
				ticket.TransactionID = &transactionID
			}
		}

		if err := s.repo.UpdateTx(ctx, tx, mod, filter); err != nil {
			return fmt.Errorf("failed to update payment status: %w", err)
		}

		if err := s.repo.InsertStatusEventTx(ctx, tx, newStatusEvent(t.ticketID, current.PaymentStatus, t.to, t.source, t.reference, actor)); err != nil {
			return fmt.Errorf("failed to insert status event: %w", err)
		}

		ticket.PaymentStatus = t.to
		changed = true

		return nil
	})
	if err != nil {
		return model.Ticket{}, from, false, err //nolint:wrapcheck
	}

	return ticket, from, changed, nil
}

func (s *serviceImpl) publish(ctx context.Context, ticket model.Ticket) {
	var notification dto.TicketNotification
	notification.FromModel(ticket)

	go func() {
		c := context.WithoutCancel(ctx)

		err := s.kafka.SendMessages(c, s.cfg.Kafka.Topics.Ticket, kafka.Message{Key: ticket.ID, Value: notification})
		if err != nil {
			log.Error().Err(err).Str("ticket_id", ticket.ID).Str("event", notification.Event).Msg("failed to publish ticket notification")
		}
	}()
}

func isCodeCollision(err error) bool {
	return postgres.IsUniqueViolation(err) && postgres.ConstraintName(err) == model.ConstraintVerificationCode
}

func newStatusEvent(ticketID string, from, to model.PaymentStatus, source, reference, actor string) model.StatusEvent {
	return model.StatusEvent{
		ID:         uuid.NewString(),
		TicketID:   ticketID,
		FromStatus: string(from),
		ToStatus:   string(to),
		Source:     source,
		Reference:  reference,
		CreatedAt:  timezone.Now(),
		CreatedBy:  actor,
	}
}

func actorFrom(ctx context.Context) string {
	actor, _ := ctx.Value(constant.ContextKeyActor).(string)
	if actor == "" {
		return constant.ContextSystem
	}

	return actor
}

func deref(value *string) string {
	if value == nil {
		return ""
	}

	return *value
}
