package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"roombooking/config"
	"roombooking/infras/kafka"
	"roombooking/infras/otel"
	"roombooking/internal/domains/booking/model"
	"roombooking/internal/domains/booking/model/dto"
	"roombooking/internal/domains/booking/repository"
	sessionModel "roombooking/internal/domains/session/model"
	"roombooking/shared"
	"roombooking/shared/cache"
	"roombooking/shared/constant"
	"roombooking/shared/failure"
	"roombooking/shared/timezone"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const (
	cacheGetMyBookings = "booking:mine"
)

// Booking submits and manages the signed-in user's occupied dates. Every method takes the
// session explicitly; a nil session yields a redirect to the authentication route.
type Booking interface {
	Submit(ctx context.Context, sess *sessionModel.Session, req dto.SubmitBookingRequest, onSuccess model.OnSuccess) (dto.SubmitBookingResponse, error)
	GetMine(ctx context.Context, sess *sessionModel.Session) (dto.GetBookingsResponse, error)
	Cancel(ctx context.Context, sess *sessionModel.Session, id string) error
}

type serviceImpl struct {
	repo   repository.Booking
	cfg    *config.Config
	cache  cache.RedisCache
	events kafka.Client
	otel   otel.Otel
}

func New(repo repository.Booking, cfg *config.Config, cache cache.RedisCache, events kafka.Client, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:   repo,
		cfg:    cfg,
		cache:  cache,
		events: events,
		otel:   otel,
	}
}

// Submit books every calendar day of the requested range with one request per day.
// A failed day is logged and recorded but never stops the remaining days, and days
// already booked are kept. Per-day failures are reported in the response, not as an error.
func (s *serviceImpl) Submit(
	ctx context.Context,
	sess *sessionModel.Session,
	req dto.SubmitBookingRequest,
	onSuccess model.OnSuccess,
) (res dto.SubmitBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Submit")
	defer scope.End()
	defer scope.TraceIfError(err)

	if sess == nil || !sess.Valid() {
		log.Warn().Str("room_id", req.RoomID).Msg("booking attempted without a session")

		return res, failure.Redirect(constant.RouteAuth)
	}

	rng, err := req.ToDateRange()
	if err != nil {
		return res, failure.BadRequest(err)
	}

	if onSuccess == nil {
		onSuccess = func(model.OccupiedDate) {}
	}

	scope.SetAttributes(map[string]any{
		"booking.room_id":    req.RoomID,
		"booking.start_date": timezone.FormatDate(rng.Start),
		"booking.end_date":   timezone.FormatDate(rng.End),
		"booking.days":       rng.Len(),
	})

	var outcomes []model.Outcome
	if s.cfg.Booking.MaxConcurrency <= 1 {
		outcomes = s.submitSequential(ctx, sess, req.RoomID, rng, onSuccess)
	} else {
		outcomes = s.submitConcurrent(ctx, sess, req.RoomID, rng, onSuccess)
	}

	res.FromOutcomes(req.RoomID, rng, outcomes)

	log.Info().
		Str("room_id", req.RoomID).
		Str("start_date", res.StartDate).
		Str("end_date", res.EndDate).
		Int("total", res.Total).
		Int("succeeded", len(res.Succeeded)).
		Int("failed", len(res.Failed)).
		Msg("booking range submitted")

	if len(res.Succeeded) > 0 {
		userID := sess.User.ID.String()
		cacheKey := shared.BuildCacheKey(cacheGetMyBookings, userID)

		events := make([]model.Event, 0, len(res.Succeeded))
		for _, day := range res.Succeeded {
			events = append(events, model.Event{
				Type:      model.EventDayBooked,
				BookingID: day.BookingID,
				RoomID:    req.RoomID,
				UserID:    userID,
				Date:      day.Date,
			})
		}

		// Cleared before returning so the caller's next GetMine sees the new days.
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheKey)

		go s.publish(context.WithoutCancel(ctx), events...)
	}

	return res, nil
}

func (s *serviceImpl) submitSequential(
	ctx context.Context,
	sess *sessionModel.Session,
	roomID string,
	rng model.DateRange,
	onSuccess model.OnSuccess,
) []model.Outcome {
	outcomes := make([]model.Outcome, 0, rng.Len())

	for day := range rng.Days() {
		outcome := s.submitDay(ctx, sess, roomID, day)
		if outcome.Succeeded() {
			onSuccess(outcome.Booking)
		}

		outcomes = append(outcomes, outcome)
	}

	return outcomes
}

// submitConcurrent keeps at most MaxConcurrency requests in flight. Callbacks are
// serialized and outcomes stay in date order.
func (s *serviceImpl) submitConcurrent(
	ctx context.Context,
	sess *sessionModel.Session,
	roomID string,
	rng model.DateRange,
	onSuccess model.OnSuccess,
) []model.Outcome {
	outcomes := make([]model.Outcome, rng.Len())

	var (
		g  errgroup.Group
		mu sync.Mutex
	)

	g.SetLimit(s.cfg.Booking.MaxConcurrency)

	i := 0
	for day := range rng.Days() {
		idx := i
		i++

		g.Go(func() error {
			outcome := s.submitDay(ctx, sess, roomID, day)
			outcomes[idx] = outcome

			if outcome.Succeeded() {
				mu.Lock()
				defer mu.Unlock()

				onSuccess(outcome.Booking)
			}

			return nil
		})
	}

	_ = g.Wait()

	return outcomes
}

func (s *serviceImpl) submitDay(ctx context.Context, sess *sessionModel.Session, roomID string, day time.Time) model.Outcome {
	date := timezone.FormatDate(day)

	if err := ctx.Err(); err != nil {
		log.Warn().Err(err).Str("room_id", roomID).Str("date", date).Msg("booking cancelled before request")

		return model.Outcome{Date: date, Err: fmt.Errorf("booking cancelled: %w", err)}
	}

	booked, err := s.repo.Insert(ctx, sess.Token, roomID, sess.User.ID.String(), date)
	if err != nil {
		log.Error().
			Err(err).
			Str("room_id", roomID).
			Str("date", date).
			Int("status", failure.GetCode(err)).
			Msg("failed to book day")

		return model.Outcome{Date: date, Err: err}
	}

	log.Info().
		Str("room_id", roomID).
		Str("date", date).
		Str("booking_id", booked.ID.String()).
		Msg("booked day")

	return model.Outcome{Date: date, Booking: booked}
}

func (s *serviceImpl) GetMine(ctx context.Context, sess *sessionModel.Session) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetMine")
	defer scope.End()
	defer scope.TraceIfError(err)

	if sess == nil || !sess.Valid() {
		return res, failure.Redirect(constant.RouteAuth)
	}

	userID := sess.User.ID.String()
	cacheKey := shared.BuildCacheKey(cacheGetMyBookings, userID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	bookings, err := s.repo.GetAll(ctx, sess.Token)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	// Staff accounts see every booking; keep only the caller's own.
	mine := make([]model.OccupiedDate, 0, len(bookings))
	for _, booking := range bookings {
		if booking.User.ID != "" && booking.User.ID.String() != userID {
			continue
		}

		mine = append(mine, booking)
	}

	res.FromModels(mine)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Cancel(ctx context.Context, sess *sessionModel.Session, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	if sess == nil || !sess.Valid() {
		return failure.Redirect(constant.RouteAuth)
	}

	if err = s.repo.Delete(ctx, sess.Token, id); err != nil {
		switch failure.GetCode(err) {
		case http.StatusNotFound:
			return failure.NotFound("booking not found")
		case http.StatusForbidden:
			return failure.Forbidden("booking belongs to another user")
		}

		log.Error().Err(err).Str("booking_id", id).Msg("failed to cancel booking")

		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	userID := sess.User.ID.String()
	cacheKey := shared.BuildCacheKey(cacheGetMyBookings, userID)

	shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheKey)

	go s.publish(context.WithoutCancel(ctx), model.Event{Type: model.EventBookingCanceled, BookingID: id, UserID: userID})

	return nil
}

// publish is best effort: a booking that reached the API is never undone because
// its event could not be delivered.
func (s *serviceImpl) publish(ctx context.Context, events ...model.Event) {
	messages := make([]kafka.Message, 0, len(events))
	for _, event := range events {
		messages = append(messages, kafka.Message{Key: event.BookingID, Value: event})
	}

	if err := s.events.SendMessages(ctx, s.cfg.External.Kafka.Topic, messages...); err != nil {
		log.Warn().Err(err).Int("events", len(events)).Msg("failed to publish booking events")
	}
}
