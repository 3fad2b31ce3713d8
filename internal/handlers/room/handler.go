package room

import (
	"net/http"
	"roombooking/infras/otel"
	"roombooking/internal/domains/room/model/dto"
	"roombooking/internal/domains/room/service"
	"roombooking/shared/constant"
	"roombooking/shared/failure"
	"roombooking/shared/validator"
	"roombooking/transport/http/response"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

const (
	queryType     = "type"
	queryCurrency = "currency"
	queryGuests   = "guests"

	sortByOptions = dto.SortByName + " " + dto.SortByPrice + " " + dto.SortByOccupancy
	sortByRule    = "omitempty,oneof=" + sortByOptions
)

type Handler struct {
	service service.Room
	otel    otel.Otel
}

func New(service service.Room, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route(constant.RouteAllRooms, func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetRooms)
		routerGroup.Get("/{id}", handler.GetRoomByID)
	})
}

// GetRooms lists the rooms offered by the remote service.
// @Summary Get all rooms
// @Tags Room
// @Produce json
// @Param type query string false "suite, standard or deluxe"
// @Param currency query string false "USD or EUR"
// @Param guests query integer false "Minimum occupancy"
// @Param sort_by query string false "name, price or max_occupancy"
// @Param sort_dir query string false "ASC or DESC"
// @Param page query integer false "Page, used with limit"
// @Param limit query integer false "Rooms per page"
// @Success 200 {object} response.Data[dto.GetRoomsResponse] "List of rooms"
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /all-rooms [get]
func (handler *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	query := r.URL.Query()

	req := dto.GetRoomsRequest{
		Type:     query.Get(queryType),
		Currency: query.Get(queryCurrency),
	}
	req.FromRequest(r, false)

	if guests := query.Get(queryGuests); guests != "" {
		n, err := strconv.Atoi(guests)
		if err != nil {
			err = failure.BadRequestFromString("guests must be a number")
			scope.TraceError(err)
			response.WithError(w, err)

			return
		}

		req.Guests = n
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := validator.ValidateVar(req.SortBy, sortByRule); err != nil {
		scope.TraceError(err)
		response.WithError(w, failure.BadRequestFromString("sort_by must be one of "+sortByOptions))

		return
	}

	rooms, err := handler.service.GetAll(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rooms")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Rooms retrieved successfully")

	response.WithJSON(w, http.StatusOK, rooms)
}

// GetRoomByID retrieves a room by its ID.
// @Summary Get a room by ID
// @Tags Room
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} response.Data[dto.RoomResponse] "Room details"
// @Failure 404 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /all-rooms/{id} [get]
func (handler *Handler) GetRoomByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	room, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room retrieved successfully")

	response.WithJSON(w, http.StatusOK, room)
}
