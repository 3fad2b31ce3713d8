package booking

import (
	"net/http"
	"roombooking/infras/otel"
	"roombooking/internal/domains/booking/model"
	"roombooking/internal/domains/booking/model/dto"
	"roombooking/internal/domains/booking/service"
	sessionModel "roombooking/internal/domains/session/model"
	sessionService "roombooking/internal/domains/session/service"
	"roombooking/shared/constant"
	"roombooking/shared/validator"
	"roombooking/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service  service.Booking
	sessions sessionService.Session
	otel     otel.Otel
}

func New(service service.Booking, sessions sessionService.Session, otel otel.Otel) Handler {
	return Handler{
		service:  service,
		sessions: sessions,
		otel:     otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post(constant.RouteRoot, handler.SubmitBooking)

	router.Route(constant.RouteMyBookings, func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetMyBookings)
		routerGroup.Delete("/{id}", handler.CancelBooking)
	})
}

func (handler *Handler) current() *sessionModel.Session {
	sess, ok := handler.sessions.Current()
	if !ok {
		return nil
	}

	return &sess
}

// SubmitBooking reserves every day of the requested range, one request per day.
// Responds 201 when every day was booked and 207 when some days failed.
// @Summary Book a room for a date range
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.SubmitBookingRequest true "Booking Request"
// @Success 201 {object} response.Data[dto.SubmitBookingResponse]
// @Success 207 {object} response.Data[dto.SubmitBookingResponse]
// @Failure 303 {object} response.Error
// @Failure 400 {object} response.Error
// @Router / [post]
func (handler *Handler) SubmitBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitBooking")
	defer scope.End()

	req := dto.SubmitBookingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Submit(ctx, handler.current(), req, func(booked model.OccupiedDate) {
		log.Info().Str("room_id", req.RoomID).Str("date", booked.Date).Str("booking_id", booked.ID.String()).Msg("day booked")
		scope.AddEvent("Day booked", map[string]any{"date": booked.Date})
	})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to submit booking")

		response.WithError(w, err)

		return
	}

	code := http.StatusCreated
	if !res.Complete() {
		code = http.StatusMultiStatus
	}

	response.WithJSON(w, code, res)
}

// GetMyBookings lists the reservations of the signed-in user.
// @Summary My bookings
// @Tags Booking
// @Produce json
// @Success 200 {object} response.Data[dto.GetBookingsResponse]
// @Failure 303 {object} response.Error
// @Router /my-bookings [get]
func (handler *Handler) GetMyBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyBookings")
	defer scope.End()

	res, err := handler.service.GetMine(ctx, handler.current())
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CancelBooking releases a single reserved day.
// @Summary Cancel a booking
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message
// @Failure 303 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /my-bookings/{id} [delete]
func (handler *Handler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Cancel(ctx, handler.current(), id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking cancelled", map[string]any{"id": id})

	response.WithMessage(w, http.StatusOK, "Booking cancelled successfully")
}
