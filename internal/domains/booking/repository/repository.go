package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"roombooking/infras/bookingapi"
	"roombooking/infras/otel"
	"roombooking/internal/domains/booking/model"
	"roombooking/shared/constant"
)

// Booking manages occupied dates on the remote API on behalf of the credential holder.
type Booking interface {
	Insert(ctx context.Context, credential, roomID, userID, date string) (model.OccupiedDate, error)
	GetAll(ctx context.Context, credential string) ([]model.OccupiedDate, error)
	Delete(ctx context.Context, credential, id string) error
}

type repositoryImpl struct {
	client bookingapi.Client
	otel   otel.Otel
}

func New(client bookingapi.Client, otel otel.Otel) Booking {
	return &repositoryImpl{
		client: client,
		otel:   otel,
	}
}

// Insert posts one ReservationRequest referencing the room and user by resource URL.
func (r *repositoryImpl) Insert(ctx context.Context, credential, roomID, userID, date string) (res model.OccupiedDate, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Insert")
	defer scope.End()
	defer scope.TraceIfError(err)

	req := model.ReservationRequest{
		Room: r.client.ResourceURL(constant.ResourceRooms, roomID),
		User: r.client.ResourceURL(constant.ResourceUsers, userID),
		Date: date,
	}

	scope.SetAttributes(map[string]any{
		"booking.room": req.Room,
		"booking.date": req.Date,
	})

	if err = r.client.Post(ctx, r.client.CollectionURL(constant.ResourceOccupiedDates), credential, req, &res); err != nil {
		return res, fmt.Errorf("failed to insert occupied date: %w", err)
	}

	if res.Date == constant.Empty {
		res.Date = date
	}

	return res, nil
}

func (r *repositoryImpl) GetAll(ctx context.Context, credential string) (res []model.OccupiedDate, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = r.client.GetList(ctx, r.client.CollectionURL(constant.ResourceOccupiedDates), credential, &res); err != nil {
		return nil, fmt.Errorf("failed to list occupied dates: %w", err)
	}

	return res, nil
}

func (r *repositoryImpl) Delete(ctx context.Context, credential, id string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = r.client.Delete(ctx, r.client.ResourceURL(constant.ResourceOccupiedDates, id), credential); err != nil {
		return fmt.Errorf("failed to delete occupied date: %w", err)
	}

	return nil
}
