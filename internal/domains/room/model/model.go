package model

import "roombooking/infras/bookingapi"

const (
	EntityName = "room"

	TypeSuite    = "suite"
	TypeStandard = "standard"
	TypeDeluxe   = "deluxe"

	CurrencyUSD = "USD"
	CurrencyEUR = "EUR"
)

type Image struct {
	Image   string `json:"image"`
	Caption string `json:"caption"`
}

// Room mirrors the remote room resource, including its camelCase field names.
type Room struct {
	ID            bookingapi.ID `json:"id"`
	Name          string        `json:"name"`
	Type          string        `json:"type"`
	PricePerNight int           `json:"pricePerNight"`
	Currency      string        `json:"currency"`
	MaxOccupancy  int           `json:"maxOccupancy"`
	Description   string        `json:"description"`
	Images        []Image       `json:"images"`
}
