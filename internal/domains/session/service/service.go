package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Session=MockSessionService

import (
	"context"
	"fmt"
	"roombooking/infras/otel"
	"roombooking/internal/domains/session/model"
	"roombooking/internal/domains/session/repository"
	"roombooking/shared/constant"
	"sync"

	"github.com/rs/zerolog/log"
)

// Session is the process-wide store of the authenticated identity. The persisted value
// is read once by Init and kept in memory afterwards.
type Session interface {
	Init(ctx context.Context) error
	Current() (model.Session, bool)
	Set(ctx context.Context, sess model.Session) error
	Clear(ctx context.Context) error
}

type serviceImpl struct {
	mu      sync.RWMutex
	loaded  bool
	current *model.Session
	repo    repository.Session
	otel    otel.Otel
}

func New(repo repository.Session, otel otel.Otel) Session {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Init(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".session.Init")
	defer scope.End()
	defer scope.TraceIfError(err)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return nil
	}

	sess, ok, err := s.repo.Load(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load session")

		return fmt.Errorf("failed to load session: %w", err)
	}

	s.loaded = true

	if !ok {
		log.Debug().Msg("no stored session, starting as guest")

		return nil
	}

	s.current = &sess

	log.Debug().Str("user_id", sess.User.ID.String()).Msg("restored stored session")

	return nil
}

func (s *serviceImpl) Current() (model.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return model.Session{}, false
	}

	return *s.current, true
}

func (s *serviceImpl) Set(ctx context.Context, sess model.Session) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".session.Set")
	defer scope.End()
	defer scope.TraceIfError(err)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err = s.repo.Store(ctx, sess); err != nil {
		log.Error().Err(err).Msg("failed to store session")

		return fmt.Errorf("failed to store session: %w", err)
	}

	s.loaded = true
	s.current = &sess

	return nil
}

func (s *serviceImpl) Clear(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".session.Clear")
	defer scope.End()
	defer scope.TraceIfError(err)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err = s.repo.Remove(ctx); err != nil {
		log.Error().Err(err).Msg("failed to remove session")

		return fmt.Errorf("failed to remove session: %w", err)
	}

	s.loaded = true
	s.current = nil

	return nil
}
