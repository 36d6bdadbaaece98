package sessioncart

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"polyglot/internal/backends"
	"polyglot/internal/clients"
	"polyglot/internal/registry"
	id "polyglot/pkg/domain"
	dErrors "polyglot/pkg/domain-errors"
	"polyglot/pkg/platform/sentinel"
	"polyglot/pkg/testutil"
)

// memoryStore mirrors RedisStore's semantics without Redis.
type memoryStore struct {
	mu       sync.Mutex
	seq      int
	sessions map[id.SessionToken]id.UserID
	byUser   map[id.UserID]id.SessionToken
	cartIDs  map[id.UserID]id.CartID
	carts    map[id.CartID]id.Cart
	lastTTL  time.Duration
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		sessions: map[id.SessionToken]id.UserID{},
		byUser:   map[id.UserID]id.SessionToken{},
		cartIDs:  map[id.UserID]id.CartID{},
		carts:    map[id.CartID]id.Cart{},
	}
}

func (m *memoryStore) next(prefix string) string {
	m.seq++
	return prefix + strconv.Itoa(m.seq)
}

func (m *memoryStore) CreateSession(_ context.Context, userID id.UserID, ttl time.Duration) (id.SessionToken, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if old, ok := m.byUser[userID]; ok {
		delete(m.sessions, old)
	}
	token := id.SessionToken(m.next("tok-"))
	m.sessions[token] = userID
	m.byUser[userID] = token
	m.lastTTL = ttl
	return token, nil
}

func (m *memoryStore) DropSession(_ context.Context, userID id.UserID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	token, ok := m.byUser[userID]
	if !ok {
		return false, nil
	}
	delete(m.sessions, token)
	delete(m.byUser, userID)
	return true, nil
}

func (m *memoryStore) SessionExists(_ context.Context, token id.SessionToken) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.sessions[token]
	return ok, nil
}

func (m *memoryStore) UserHasSession(_ context.Context, userID id.UserID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.byUser[userID]
	return ok, nil
}

func (m *memoryStore) CreateCart(_ context.Context, userID id.UserID) (id.CartID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.carts, m.cartIDs[userID])
	cartID := id.CartID(m.next("cart-"))
	m.cartIDs[userID] = cartID
	m.carts[cartID] = id.Cart{}
	return cartID, nil
}

func (m *memoryStore) ResetCart(ctx context.Context, userID id.UserID) (id.CartID, error) {
	return m.CreateCart(ctx, userID)
}

func (m *memoryStore) DeleteCart(_ context.Context, userID id.UserID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cartID, ok := m.cartIDs[userID]
	if !ok {
		return false, nil
	}
	delete(m.carts, cartID)
	delete(m.cartIDs, userID)
	return true, nil
}

func (m *memoryStore) GetCart(_ context.Context, userID id.UserID) (id.CartID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cartID, ok := m.cartIDs[userID]
	if !ok {
		return "", sentinel.ErrNotFound
	}
	return cartID, nil
}

func (m *memoryStore) CartExists(_ context.Context, userID id.UserID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.cartIDs[userID]
	return ok, nil
}

func (m *memoryStore) UpdateCart(_ context.Context, userID id.UserID, productID id.ProductID, delta int) (id.Cart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cartID, ok := m.cartIDs[userID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cart := m.carts[cartID]
	if qty := cart[productID] + delta; qty > 0 {
		cart[productID] = qty
	} else {
		delete(cart, productID)
	}
	return cart.Snapshot(), nil
}

func (m *memoryStore) ReadCart(_ context.Context, userID id.UserID) (id.Cart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cartID, ok := m.cartIDs[userID]
	if !ok {
		return id.Cart{}, nil
	}
	return m.carts[cartID].Snapshot(), nil
}

type SessionCartHandlerSuite struct {
	suite.Suite
	store  *memoryStore
	server *httptest.Server
	client *clients.SessionCartClient
}

func TestSessionCartHandlerSuite(t *testing.T) {
	suite.Run(t, new(SessionCartHandlerSuite))
}

func (s *SessionCartHandlerSuite) SetupTest() {
	s.store = newMemoryStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.server = httptest.NewServer(backends.NewRouter("sessioncart", logger, New(s.store, logger)))

	reg, err := registry.Parse([]byte("services:\n  sessioncart:\n    base_url: " + s.server.URL + "\n"))
	s.Require().NoError(err)
	caller, err := clients.NewCaller(reg, clients.WithTimeout(2*time.Second))
	s.Require().NoError(err)
	s.client = clients.NewSessionCartClient(caller)
}

func (s *SessionCartHandlerSuite) TearDownTest() {
	s.server.Close()
}

func (s *SessionCartHandlerSuite) TestSessionLifecycle() {
	ctx := context.Background()

	token, err := s.client.CreateSession(ctx, 7, 90*time.Second)
	s.Require().NoError(err)
	s.NotEmpty(token)
	s.Equal(90*time.Second, s.store.lastTTL)

	ok, err := s.client.SessionExists(ctx, token)
	s.Require().NoError(err)
	s.True(ok)

	active, err := s.client.UserHasSession(ctx, 7)
	s.Require().NoError(err)
	s.True(active)

	dropped, err := s.client.DropSession(ctx, 7)
	s.Require().NoError(err)
	s.True(dropped)

	ok, err = s.client.SessionExists(ctx, token)
	s.Require().NoError(err)
	s.False(ok)
}

func (s *SessionCartHandlerSuite) TestCreateSessionDefaultsTTL() {
	_, err := s.client.CreateSession(context.Background(), 7, 0)
	s.Require().NoError(err)
	s.Equal(DefaultSessionTTL, s.store.lastTTL)
}

func (s *SessionCartHandlerSuite) TestDropWithoutSession() {
	s.T().Run("client reports false without an error", func(t *testing.T) {
		dropped, err := s.client.DropSession(context.Background(), 99)
		require.NoError(t, err)
		assert.False(t, dropped)
	})

	s.T().Run("wire answer is 400 carrying data false", func(t *testing.T) {
		req := testutil.NewJSONRequest(t, http.MethodPost, "/sessions/drop", map[string]int{"user_id": 99})
		rr := testutil.DoRequest(s.server.Config.Handler, req)
		testutil.AssertStatus(t, rr, http.StatusBadRequest)
		testutil.AssertJSONContains(t, rr, "data", false)
	})
}

func (s *SessionCartHandlerSuite) TestCartLifecycle() {
	ctx := context.Background()

	exists, err := s.client.CartExists(ctx, 7)
	s.Require().NoError(err)
	s.False(exists)

	_, err = s.client.GetCart(ctx, 7)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))

	cartID, err := s.client.CreateCart(ctx, 7)
	s.Require().NoError(err)
	got, err := s.client.GetCart(ctx, 7)
	s.Require().NoError(err)
	s.Equal(cartID, got)

	cart, err := s.client.UpdateCart(ctx, 7, 3, 2)
	s.Require().NoError(err)
	s.Equal(id.Cart{3: 2}, cart)

	cart, err = s.client.UpdateCart(ctx, 7, 3, -5)
	s.Require().NoError(err)
	s.Empty(cart)

	_, err = s.client.UpdateCart(ctx, 7, 4, 1)
	s.Require().NoError(err)
	newID, err := s.client.ResetCart(ctx, 7)
	s.Require().NoError(err)
	s.NotEqual(cartID, newID)

	cart, err = s.client.ReadCart(ctx, 7)
	s.Require().NoError(err)
	s.Empty(cart)

	deleted, err := s.client.DeleteCart(ctx, 7)
	s.Require().NoError(err)
	s.True(deleted)
	deleted, err = s.client.DeleteCart(ctx, 7)
	s.Require().NoError(err)
	s.False(deleted)
}

func (s *SessionCartHandlerSuite) TestUpdateWithoutCart() {
	_, err := s.client.UpdateCart(context.Background(), 8, 1, 1)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *SessionCartHandlerSuite) TestValidation() {
	req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/carts/update", map[string]int{"user_id": 7, "quantity": 1})
	rr := testutil.DoRequest(s.server.Config.Handler, req)
	testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, string(dErrors.CodeValidation))
}
