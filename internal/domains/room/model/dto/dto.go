package dto

import (
	"cmp"
	"roombooking/internal/domains/room/model"
	gDto "roombooking/shared/dto"
	"slices"
)

const (
	SortByName      = "name"
	SortByPrice     = "price"
	SortByOccupancy = "max_occupancy"
)

// GetRoomsRequest narrows the listing. Zero values match every room.
type GetRoomsRequest struct {
	gDto.QueryParams

	Type     string `json:"type"     validate:"omitempty,oneof=suite standard deluxe"`
	Currency string `json:"currency" validate:"omitempty,oneof=USD EUR"`
	Guests   int    `json:"guests"   validate:"omitempty,min=1"`
}

func (r GetRoomsRequest) Match(room model.Room) bool {
	if r.Type != "" && r.Type != room.Type {
		return false
	}

	if r.Currency != "" && r.Currency != room.Currency {
		return false
	}

	return r.Guests == 0 || room.MaxOccupancy >= r.Guests
}

type ImageResponse struct {
	URL     string `json:"url"`
	Caption string `json:"caption,omitempty"`
}

type RoomResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Type          string          `json:"type"`
	PricePerNight int             `json:"price_per_night"`
	Currency      string          `json:"currency"`
	MaxOccupancy  int             `json:"max_occupancy"`
	Description   string          `json:"description"`
	Images        []ImageResponse `json:"images"`
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID.String()
	r.Name = model.Name
	r.Type = model.Type
	r.PricePerNight = model.PricePerNight
	r.Currency = model.Currency
	r.MaxOccupancy = model.MaxOccupancy
	r.Description = model.Description

	r.Images = make([]ImageResponse, len(model.Images))
	for i, img := range model.Images {
		r.Images[i] = ImageResponse{URL: img.Image, Caption: img.Caption}
	}
}

type GetRoomsResponse struct {
	Rooms      []RoomResponse   `json:"rooms"`
	TotalData  int              `json:"total_data"`
	Pagination *gDto.Pagination `json:"pagination,omitempty"`
}

// FromModels filters, sorts and pages the catalogue. TotalData counts every
// matching room, not only the returned page.
func (r *GetRoomsResponse) FromModels(models []model.Room, req GetRoomsRequest) {
	rooms := make([]RoomResponse, 0, len(models))

	for _, mod := range models {
		if !req.Match(mod) {
			continue
		}

		var room RoomResponse
		room.FromModel(mod)

		rooms = append(rooms, room)
	}

	if compare := roomOrder(req.SortBy); compare != nil {
		slices.SortStableFunc(rooms, func(a, b RoomResponse) int {
			if req.Descending() {
				return compare(b, a)
			}

			return compare(a, b)
		})
	}

	r.TotalData = len(rooms)
	r.Rooms, r.Pagination = gDto.Paginate(rooms, req.QueryParams)
}

func roomOrder(sortBy string) func(a, b RoomResponse) int {
	switch sortBy {
	case SortByName:
		return func(a, b RoomResponse) int { return cmp.Compare(a.Name, b.Name) }
	case SortByPrice:
		return func(a, b RoomResponse) int { return cmp.Compare(a.PricePerNight, b.PricePerNight) }
	case SortByOccupancy:
		return func(a, b RoomResponse) int { return cmp.Compare(a.MaxOccupancy, b.MaxOccupancy) }
	}

	return nil
}
