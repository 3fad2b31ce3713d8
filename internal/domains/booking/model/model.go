package model

import (
	"errors"
	"iter"
	"time"

	"roombooking/infras/bookingapi"
	"roombooking/shared/timezone"
)

const (
	EntityName = "booking"
)

var ErrInvertedRange = errors.New("start date must not be after end date")

// DateRange is an inclusive span of calendar days. A zero End means a single day.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Normalize reduces both ends to civil dates and fills a missing End with Start.
func (r DateRange) Normalize() DateRange {
	start := timezone.Truncate(r.Start)

	if r.End.IsZero() {
		return DateRange{Start: start, End: start}
	}

	return DateRange{Start: start, End: timezone.Truncate(r.End)}
}

func (r DateRange) Validate() error {
	n := r.Normalize()
	if n.Start.After(n.End) {
		return ErrInvertedRange
	}

	return nil
}

// Days yields every calendar day of the normalized range in order, advancing by
// calendar date so month and year rollovers need no special casing.
func (r DateRange) Days() iter.Seq[time.Time] {
	n := r.Normalize()

	return func(yield func(time.Time) bool) {
		for day := n.Start; !day.After(n.End); day = timezone.NextDay(day) {
			if !yield(day) {
				return
			}
		}
	}
}

func (r DateRange) Len() int {
	count := 0
	for range r.Days() {
		count++
	}

	return count
}

// ReservationRequest is one day's occupancy record as the booking API expects it.
// Room and User are full resource URLs.
type ReservationRequest struct {
	Room string `json:"room"`
	User string `json:"user"`
	Date string `json:"date"`
}

type OccupiedDate struct {
	ID   bookingapi.ID  `json:"id"`
	Room bookingapi.Ref `json:"room"`
	User bookingapi.Ref `json:"user"`
	Date string         `json:"date"`
}

// Outcome is the result of submitting a single day.
type Outcome struct {
	Date    string
	Booking OccupiedDate
	Err     error
}

func (o Outcome) Succeeded() bool {
	return o.Err == nil
}

// OnSuccess is called once for every day the API accepted.
type OnSuccess func(booked OccupiedDate)

const (
	EventDayBooked       = "day_booked"
	EventBookingCanceled = "booking_cancelled"
)

// Event is published for every booked or cancelled day.
type Event struct {
	Type      string `json:"type"`
	BookingID string `json:"booking_id"`
	RoomID    string `json:"room_id,omitempty"`
	UserID    string `json:"user_id"`
	Date      string `json:"date,omitempty"`
}
