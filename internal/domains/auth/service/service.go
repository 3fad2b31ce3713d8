package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Auth=MockAuthService

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"roombooking/infras/otel"
	"roombooking/internal/domains/auth/model/dto"
	"roombooking/internal/domains/auth/repository"
	sessionModel "roombooking/internal/domains/session/model"
	sessionService "roombooking/internal/domains/session/service"
	"roombooking/shared/constant"
	"roombooking/shared/failure"

	"github.com/rs/zerolog/log"
)

type Auth interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.SessionResponse, error)
	Register(ctx context.Context, req dto.RegisterRequest) (dto.SessionResponse, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (dto.SessionResponse, error)
}

type serviceImpl struct {
	repo     repository.Auth
	sessions sessionService.Session
	otel     otel.Otel
}

func New(repo repository.Auth, sessions sessionService.Session, otel otel.Otel) Auth {
	return &serviceImpl{
		repo:     repo,
		sessions: sessions,
		otel:     otel,
	}
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.SessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, ok := s.sessions.Current(); ok {
		return res, failure.GuestOnlyError
	}

	sess, err := s.repo.Login(ctx, req.ToCredentials())
	if err != nil {
		if isClientError(err) {
			log.Warn().Str("email", req.Email).Msg("login rejected by booking api")

			return res, failure.Unauthorized("invalid email or password")
		}

		log.Error().Err(err).Msg("failed to login")

		return res, fmt.Errorf("failed to login: %w", err)
	}

	return s.start(ctx, sess)
}

func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (res dto.SessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, ok := s.sessions.Current(); ok {
		return res, failure.GuestOnlyError
	}

	sess, err := s.repo.Register(ctx, req.ToRegistration())
	if err != nil {
		if isClientError(err) {
			log.Warn().Err(err).Str("email", req.Email).Msg("registration rejected by booking api")

			var fail *failure.Failure
			if errors.As(err, &fail) {
				return res, fail
			}

			return res, failure.BadRequest(err)
		}

		log.Error().Err(err).Msg("failed to register")

		return res, fmt.Errorf("failed to register: %w", err)
	}

	return s.start(ctx, sess)
}

func (s *serviceImpl) Logout(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Logout")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, ok := s.sessions.Current(); !ok {
		return failure.SessionRequiredError
	}

	if err = s.sessions.Clear(ctx); err != nil {
		log.Error().Err(err).Msg("failed to clear session")

		return fmt.Errorf("failed to clear session: %w", err)
	}

	return nil
}

func (s *serviceImpl) Current(ctx context.Context) (res dto.SessionResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Current")
	defer scope.End()

	sess, ok := s.sessions.Current()
	if !ok {
		return res, failure.SessionRequiredError
	}

	res.FromModel(sess)

	return res, nil
}

func (s *serviceImpl) start(ctx context.Context, sess sessionModel.Session) (res dto.SessionResponse, err error) {
	if !sess.Valid() {
		log.Error().Msg("booking api returned an incomplete session")

		return res, failure.New(http.StatusBadGateway, "booking api returned an incomplete session")
	}

	if err = s.sessions.Set(ctx, sess); err != nil {
		log.Error().Err(err).Msg("failed to store session")

		return res, fmt.Errorf("failed to store session: %w", err)
	}

	res.FromModel(sess)

	return res, nil
}

func isClientError(err error) bool {
	code := failure.GetCode(err)

	return code >= http.StatusBadRequest && code < http.StatusInternalServerError
}
