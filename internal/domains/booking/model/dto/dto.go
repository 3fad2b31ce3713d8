package dto

import (
	"errors"
	"sort"

	"roombooking/infras/bookingapi"
	"roombooking/internal/domains/booking/model"
	"roombooking/shared/constant"
	"roombooking/shared/timezone"
)

type SubmitBookingRequest struct {
	RoomID    string `json:"room_id"    validate:"required"`
	StartDate string `json:"start_date" validate:"required,isodate"`
	EndDate   string `json:"end_date"   validate:"omitempty,isodate"`
}

// ToDateRange parses the dates and rejects ranges that end before they start.
func (r *SubmitBookingRequest) ToDateRange() (model.DateRange, error) {
	var rng model.DateRange

	start, err := timezone.ParseDate(r.StartDate)
	if err != nil {
		return rng, err
	}

	rng.Start = start

	if r.EndDate != constant.Empty {
		end, err := timezone.ParseDate(r.EndDate)
		if err != nil {
			return rng, err
		}

		rng.End = end
	}

	rng = rng.Normalize()

	if err := rng.Validate(); err != nil {
		return rng, err
	}

	return rng, nil
}

type DayResult struct {
	Date       string `json:"date"`
	BookingID  string `json:"booking_id,omitempty"`
	StatusCode int    `json:"status_code,omitempty"`
	Error      string `json:"error,omitempty"`
}

// SubmitBookingResponse enumerates every day of the range as either booked or failed.
type SubmitBookingResponse struct {
	RoomID    string      `json:"room_id"`
	StartDate string      `json:"start_date"`
	EndDate   string      `json:"end_date"`
	Total     int         `json:"total"`
	Succeeded []DayResult `json:"succeeded"`
	Failed    []DayResult `json:"failed"`
}

func (r *SubmitBookingResponse) FromOutcomes(roomID string, rng model.DateRange, outcomes []model.Outcome) {
	rng = rng.Normalize()

	r.RoomID = roomID
	r.StartDate = timezone.FormatDate(rng.Start)
	r.EndDate = timezone.FormatDate(rng.End)
	r.Total = len(outcomes)
	r.Succeeded = []DayResult{}
	r.Failed = []DayResult{}

	for _, outcome := range outcomes {
		day := DayResult{Date: outcome.Date}

		if outcome.Succeeded() {
			day.BookingID = outcome.Booking.ID.String()
			r.Succeeded = append(r.Succeeded, day)

			continue
		}

		var apiErr *bookingapi.APIError
		if errors.As(outcome.Err, &apiErr) {
			day.StatusCode = apiErr.StatusCode
		}

		day.Error = outcome.Err.Error()
		r.Failed = append(r.Failed, day)
	}
}

// Complete reports whether every day was booked.
func (r *SubmitBookingResponse) Complete() bool {
	return len(r.Failed) == 0
}

type BookingResponse struct {
	ID     string `json:"id"`
	RoomID string `json:"room_id"`
	Date   string `json:"date"`
}

func (r *BookingResponse) FromModel(model model.OccupiedDate) {
	r.ID = model.ID.String()
	r.RoomID = model.Room.ID.String()
	r.Date = model.Date
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalData int               `json:"total_data"`
}

// FromModels keeps the bookings in date order.
func (r *GetBookingsResponse) FromModels(models []model.OccupiedDate) {
	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}

	sort.SliceStable(r.Bookings, func(i, j int) bool {
		return r.Bookings[i].Date < r.Bookings[j].Date
	})

	r.TotalData = len(r.Bookings)
}
