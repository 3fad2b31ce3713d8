package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"roombooking/infras/bookingapi"
	"roombooking/infras/otel"
	"roombooking/internal/domains/room/model"
	"roombooking/shared/constant"
)

type Room interface {
	GetAll(ctx context.Context) ([]model.Room, error)
	Get(ctx context.Context, id string) (model.Room, error)
}

type repositoryImpl struct {
	client bookingapi.Client
	otel   otel.Otel
}

func New(client bookingapi.Client, otel otel.Otel) Room {
	return &repositoryImpl{
		client: client,
		otel:   otel,
	}
}

func (r *repositoryImpl) GetAll(ctx context.Context) (res []model.Room, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = r.client.GetList(ctx, r.client.CollectionURL(constant.ResourceRooms), constant.Empty, &res); err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}

	return res, nil
}

func (r *repositoryImpl) Get(ctx context.Context, id string) (res model.Room, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = r.client.Get(ctx, r.client.ResourceURL(constant.ResourceRooms, id), constant.Empty, &res); err != nil {
		return res, fmt.Errorf("failed to get room: %w", err)
	}

	return res, nil
}
