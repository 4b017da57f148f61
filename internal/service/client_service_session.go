package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/hirunaj/pawtrail/internal/adapter"
	"github.com/hirunaj/pawtrail/internal/logger"
	"github.com/hirunaj/pawtrail/internal/store"
	"github.com/hirunaj/pawtrail/models"
)

// sessionKey is the KV slot key holding the serialized session.
const sessionKey = "session"

// storedSession is the on-device session payload.
type storedSession struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

type clientSessionService struct {
	adapter adapter.ServerAdapter
	kv      store.KVSlot
	logger  *logger.Logger

	mu   sync.RWMutex
	user models.User
	live bool
}

// NewClientSessionService constructs a [ClientSessionService] over the given
// transport and local KV slot.
func NewClientSessionService(serverAdapter adapter.ServerAdapter, kv store.KVSlot, logger *logger.Logger) ClientSessionService {
	return &clientSessionService{
		adapter: serverAdapter,
		kv:      kv,
		logger:  logger,
	}
}

// SignUp implements [ClientSessionService].
func (s *clientSessionService) SignUp(ctx context.Context, login, password string) (models.User, error) {
	resp, err := s.adapter.Register(ctx, login, password)
	if err != nil {
		return models.User{}, fmt.Errorf("sign up: %w", err)
	}

	return s.storeSession(ctx, resp)
}

// SignIn implements [ClientSessionService].
func (s *clientSessionService) SignIn(ctx context.Context, login, password string) (models.User, error) {
	resp, err := s.adapter.Login(ctx, login, password)
	if err != nil {
		return models.User{}, fmt.Errorf("sign in: %w", err)
	}

	return s.storeSession(ctx, resp)
}

// RestoreSession implements [ClientSessionService]. The stored token is
// trusted as-is; an expired one surfaces as [adapter.ErrUnauthorized] on the
// first authenticated call.
func (s *clientSessionService) RestoreSession(ctx context.Context) (models.User, error) {
	raw, found, err := s.kv.Get(ctx, sessionKey)
	if err != nil {
		return models.User{}, fmt.Errorf("read stored session: %w", err)
	}
	if !found {
		return models.User{}, ErrNoStoredSession
	}

	var session storedSession
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		s.logger.Err(err).Str("func", "*clientSessionService.RestoreSession").
			Msg("stored session is corrupt, discarding")
		_ = s.kv.Remove(ctx, sessionKey)
		return models.User{}, ErrNoStoredSession
	}

	s.adapter.SetToken(session.Token)
	s.setUser(session.User)

	return session.User, nil
}

// SignOut implements [ClientSessionService].
func (s *clientSessionService) SignOut(ctx context.Context) error {
	s.adapter.SetToken("")

	s.mu.Lock()
	s.user = models.User{}
	s.live = false
	s.mu.Unlock()

	if err := s.kv.Remove(ctx, sessionKey); err != nil {
		return fmt.Errorf("remove stored session: %w", err)
	}

	return nil
}

// CurrentUser implements [ClientSessionService].
func (s *clientSessionService) CurrentUser() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user, s.live
}

func (s *clientSessionService) storeSession(ctx context.Context, resp models.AuthResponse) (models.User, error) {
	payload, err := json.Marshal(storedSession{Token: resp.Token, User: resp.User})
	if err != nil {
		return models.User{}, fmt.Errorf("encode session: %w", err)
	}

	if err := s.kv.Set(ctx, sessionKey, string(payload)); err != nil {
		return models.User{}, fmt.Errorf("store session: %w", err)
	}

	s.setUser(resp.User)
	return resp.User, nil
}

func (s *clientSessionService) setUser(user models.User) {
	s.mu.Lock()
	s.user = user
	s.live = true
	s.mu.Unlock()
}
