package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"roombooking/infras/bookingapi"
	"roombooking/infras/otel"
	"roombooking/internal/domains/auth/model"
	sessionModel "roombooking/internal/domains/session/model"
	"roombooking/shared/constant"
)

// Auth exchanges credentials for a session with the remote API.
type Auth interface {
	Login(ctx context.Context, creds model.Credentials) (sessionModel.Session, error)
	Register(ctx context.Context, reg model.Registration) (sessionModel.Session, error)
}

type repositoryImpl struct {
	client bookingapi.Client
	otel   otel.Otel
}

func New(client bookingapi.Client, otel otel.Otel) Auth {
	return &repositoryImpl{
		client: client,
		otel:   otel,
	}
}

func (r *repositoryImpl) Login(ctx context.Context, creds model.Credentials) (res sessionModel.Session, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".auth.Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = r.client.Post(ctx, r.client.CollectionURL(constant.ResourceLogin), constant.Empty, creds, &res); err != nil {
		return res, fmt.Errorf("failed to login: %w", err)
	}

	return res, nil
}

func (r *repositoryImpl) Register(ctx context.Context, reg model.Registration) (res sessionModel.Session, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".auth.Register")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = r.client.Post(ctx, r.client.CollectionURL(constant.ResourceRegister), constant.Empty, reg, &res); err != nil {
		return res, fmt.Errorf("failed to register: %w", err)
	}

	return res, nil
}
