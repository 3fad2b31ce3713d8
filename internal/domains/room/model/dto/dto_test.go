package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roombooking/internal/domains/room/model"
	"roombooking/internal/domains/room/model/dto"
	gDto "roombooking/shared/dto"
)

func catalogue() []model.Room {
	return []model.Room{
		{ID: "1", Name: "Garden", Type: model.TypeStandard, PricePerNight: 80, Currency: model.CurrencyUSD, MaxOccupancy: 2},
		{ID: "2", Name: "Attic", Type: model.TypeSuite, PricePerNight: 200, Currency: model.CurrencyEUR, MaxOccupancy: 4},
		{ID: "3", Name: "Sea view", Type: model.TypeDeluxe, PricePerNight: 150, Currency: model.CurrencyEUR, MaxOccupancy: 3,
			Images: []model.Image{{Image: "http://api/media/sea.jpg", Caption: "balcony"}}},
	}
}

func ids(rooms []dto.RoomResponse) []string {
	out := make([]string, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, r.ID)
	}

	return out
}

func TestGetRoomsResponse_FromModels(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.GetRoomsRequest
		wantIDs   []string
		wantTotal int
		wantPages int
	}{
		{name: "everything in api order", wantIDs: []string{"1", "2", "3"}, wantTotal: 3},
		{name: "currency filter", req: dto.GetRoomsRequest{Currency: model.CurrencyEUR}, wantIDs: []string{"2", "3"}, wantTotal: 2},
		{name: "guests filter", req: dto.GetRoomsRequest{Guests: 3}, wantIDs: []string{"2", "3"}, wantTotal: 2},
		{
			name:      "sorted by price",
			req:       dto.GetRoomsRequest{QueryParams: gDto.QueryParams{SortBy: dto.SortByPrice}},
			wantIDs:   []string{"1", "3", "2"},
			wantTotal: 3,
		},
		{
			name:      "sorted by name descending",
			req:       dto.GetRoomsRequest{QueryParams: gDto.QueryParams{SortBy: dto.SortByName, SortDir: gDto.SortDirDesc}},
			wantIDs:   []string{"3", "1", "2"},
			wantTotal: 3,
		},
		{
			name:      "second page by occupancy",
			req:       dto.GetRoomsRequest{QueryParams: gDto.QueryParams{SortBy: dto.SortByOccupancy, Page: 2, Limit: 2}},
			wantIDs:   []string{"2"},
			wantTotal: 3,
			wantPages: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var res dto.GetRoomsResponse
			res.FromModels(catalogue(), tt.req)

			assert.Equal(t, tt.wantIDs, ids(res.Rooms))
			assert.Equal(t, tt.wantTotal, res.TotalData)

			if tt.wantPages == 0 {
				assert.Nil(t, res.Pagination)

				return
			}

			require.NotNil(t, res.Pagination)
			assert.Equal(t, tt.wantPages, res.Pagination.TotalPage)
		})
	}
}

func TestRoomResponse_FromModel(t *testing.T) {
	var res dto.RoomResponse
	res.FromModel(catalogue()[2])

	assert.Equal(t, "3", res.ID)
	assert.Equal(t, 150, res.PricePerNight)
	assert.Equal(t, []dto.ImageResponse{{URL: "http://api/media/sea.jpg", Caption: "balcony"}}, res.Images)
}
