package model_test

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roombooking/internal/domains/booking/model"
	"roombooking/shared/timezone"
)

func collect(rng model.DateRange) []string {
	days := []string{}
	for day := range rng.Days() {
		days = append(days, timezone.FormatDate(day))
	}

	return days
}

func TestDateRange_Days(t *testing.T) {
	tests := []struct {
		name string
		rng  model.DateRange
		want []string
	}{
		{
			name: "single day without end",
			rng:  model.DateRange{Start: timezone.Date(2024, time.March, 5)},
			want: []string{"2024-03-05"},
		},
		{
			name: "single day with equal end",
			rng:  model.DateRange{Start: timezone.Date(2024, time.March, 5), End: timezone.Date(2024, time.March, 5)},
			want: []string{"2024-03-05"},
		},
		{
			name: "month rollover",
			rng:  model.DateRange{Start: timezone.Date(2024, time.January, 30), End: timezone.Date(2024, time.February, 2)},
			want: []string{"2024-01-30", "2024-01-31", "2024-02-01", "2024-02-02"},
		},
		{
			name: "leap day",
			rng:  model.DateRange{Start: timezone.Date(2024, time.February, 28), End: timezone.Date(2024, time.March, 1)},
			want: []string{"2024-02-28", "2024-02-29", "2024-03-01"},
		},
		{
			name: "year rollover",
			rng:  model.DateRange{Start: timezone.Date(2023, time.December, 31), End: timezone.Date(2024, time.January, 1)},
			want: []string{"2023-12-31", "2024-01-01"},
		},
		{
			name: "time of day is ignored",
			rng: model.DateRange{
				Start: timezone.Date(2024, time.March, 5).Add(23 * time.Hour),
				End:   timezone.Date(2024, time.March, 6).Add(time.Hour),
			},
			want: []string{"2024-03-05", "2024-03-06"},
		},
		{
			name: "inverted range is empty",
			rng:  model.DateRange{Start: timezone.Date(2024, time.March, 6), End: timezone.Date(2024, time.March, 5)},
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, collect(tt.rng))
			assert.Equal(t, len(tt.want), tt.rng.Len())
		})
	}
}

func TestDateRange_DaysStopsEarly(t *testing.T) {
	rng := model.DateRange{Start: timezone.Date(2024, time.January, 1), End: timezone.Date(2024, time.January, 31)}

	seen := 0
	for range rng.Days() {
		seen++
		if seen == 3 {
			break
		}
	}

	assert.Equal(t, 3, seen)
}

func TestDateRange_Normalize(t *testing.T) {
	start := timezone.Date(2024, time.March, 5)

	n := model.DateRange{Start: start.Add(10 * time.Hour)}.Normalize()

	assert.Equal(t, start, n.Start)
	assert.Equal(t, start, n.End)
}

func TestDateRange_Validate(t *testing.T) {
	valid := model.DateRange{Start: timezone.Date(2024, time.March, 5), End: timezone.Date(2024, time.March, 7)}
	inverted := model.DateRange{Start: timezone.Date(2024, time.March, 7), End: timezone.Date(2024, time.March, 5)}
	single := model.DateRange{Start: timezone.Date(2024, time.March, 7)}

	assert.NoError(t, valid.Validate())
	assert.NoError(t, single.Validate())
	assert.ErrorIs(t, inverted.Validate(), model.ErrInvertedRange)
}

func TestDateRange_DaysInZoneWithoutMidnight(t *testing.T) {
	santiago, err := time.LoadLocation("America/Santiago")
	require.NoError(t, err)

	parsed := func(value string) time.Time {
		day, err := timezone.ParseDate(value)
		require.NoError(t, err)

		return day
	}

	want := []string{"2024-09-08", "2024-09-09", "2024-09-10"}

	tests := []struct {
		name string
		rng  model.DateRange
	}{
		{
			name: "parsed dates",
			rng:  model.DateRange{Start: parsed("2024-09-08"), End: parsed("2024-09-10")},
		},
		{
			name: "local instants",
			rng: model.DateRange{
				Start: time.Date(2024, time.September, 8, 1, 0, 0, 0, santiago),
				End:   time.Date(2024, time.September, 10, 0, 0, 0, 0, santiago),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, want, collect(tt.rng))
			assert.Equal(t, len(want), tt.rng.Len())
		})
	}
}
