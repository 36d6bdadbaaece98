package orchestrator

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"polyglot/internal/audit"
	"polyglot/internal/health"
	"polyglot/internal/orchestrator/mocks"
	"polyglot/internal/registry"
	"polyglot/internal/saga"
	id "polyglot/pkg/domain"
	dErrors "polyglot/pkg/domain-errors"
)

type recordingAuditor struct {
	mu      sync.Mutex
	entries []audit.Entry
}

func (a *recordingAuditor) Record(_ context.Context, e audit.Entry) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.entries = append(a.entries, e)
}

func (a *recordingAuditor) actions() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]string, 0, len(a.entries))
	for _, e := range a.entries {
		out = append(out, e.Action)
	}
	return out
}

func (a *recordingAuditor) last(action string) (audit.Entry, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for i := len(a.entries) - 1; i >= 0; i-- {
		if a.entries[i].Action == action {
			return a.entries[i], true
		}
	}
	return audit.Entry{}, false
}

// =============================================================================
// Orchestrator Service Test Suite
// =============================================================================
// Remote collaborators are gomock mocks; health uses the real monitor with
// flags set directly so no probes run.

type ServiceSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	catalog    *mocks.MockCatalog
	sessions   *mocks.MockSessionCart
	statements *mocks.MockStatements
	graph      *mocks.MockGraph
	logs       *mocks.MockLogReader
	monitor    *health.Monitor
	auditor    *recordingAuditor
	now        time.Time
	service    *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.catalog = mocks.NewMockCatalog(s.ctrl)
	s.sessions = mocks.NewMockSessionCart(s.ctrl)
	s.statements = mocks.NewMockStatements(s.ctrl)
	s.graph = mocks.NewMockGraph(s.ctrl)
	s.logs = mocks.NewMockLogReader(s.ctrl)
	s.auditor = &recordingAuditor{}
	s.now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	reg := registry.Default()
	var err error
	s.monitor, err = health.New(reg)
	s.Require().NoError(err)
	for _, svc := range reg.Services() {
		s.monitor.Set(svc, true)
	}

	s.service, err = New(Backends{
		Catalog:    s.catalog,
		Sessions:   s.sessions,
		Statements: s.statements,
		Graph:      s.graph,
		Logs:       s.logs,
	}, s.monitor, s.auditor, reg,
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithClock(func() time.Time { return s.now }),
	)
	s.Require().NoError(err)
}

func (s *ServiceSuite) session(userID id.UserID, username string, admin bool) *Session {
	sess := Session{
		Token:     id.NewSessionToken(),
		UserID:    userID,
		Username:  username,
		CartID:    id.NewCartID(),
		IsAdmin:   admin,
		CreatedAt: s.now,
		ExpiresAt: s.now.Add(time.Hour),
	}
	s.service.Sessions().Put(sess)
	return &sess
}

func (s *ServiceSuite) expectLogin(username string, userID id.UserID, token id.SessionToken, cartID id.CartID) {
	s.catalog.EXPECT().Authenticate(gomock.Any(), username, "pw").Return(true, nil)
	s.catalog.EXPECT().ResolveUserID(gomock.Any(), username).Return(userID, nil)
	s.catalog.EXPECT().IsAdmin(gomock.Any(), username).Return(false, nil)
	s.sessions.EXPECT().CreateSession(gomock.Any(), userID, DefaultSessionTTL).Return(token, nil)
	s.sessions.EXPECT().CartExists(gomock.Any(), userID).Return(true, nil)
	s.sessions.EXPECT().GetCart(gomock.Any(), userID).Return(cartID, nil)
}

// =============================================================================
// Constructor Tests
// =============================================================================

func (s *ServiceSuite) TestNew() {
	s.Run("missing backend returns error", func() {
		_, err := New(Backends{}, s.monitor, s.auditor, registry.Default())
		s.Require().Error(err)
		s.Contains(err.Error(), "catalog client is required")
	})

	s.Run("missing auditor returns error", func() {
		_, err := New(Backends{
			Catalog: s.catalog, Sessions: s.sessions, Statements: s.statements, Graph: s.graph, Logs: s.logs,
		}, s.monitor, nil, registry.Default())
		s.Require().Error(err)
		s.Contains(err.Error(), "auditor is required")
	})
}

// =============================================================================
// Identity Tests
// =============================================================================

func (s *ServiceSuite) TestLogin() {
	ctx := context.Background()

	s.Run("success opens a session and reuses the existing cart", func() {
		token, cartID := id.NewSessionToken(), id.NewCartID()
		s.expectLogin("testuser1", 7, token, cartID)

		res, err := s.service.Login(ctx, nil, "testuser1", "pw")
		s.Require().NoError(err)
		s.True(res.OK())
		s.Equal("Welcome back testuser1", res.Message)
		s.Equal(id.UserID(7), res.Value.UserID)
		s.Equal(token, res.Value.Token)
		s.Equal(cartID, res.Value.CartID)
		s.Equal(s.now.Add(DefaultSessionTTL), res.Value.ExpiresAt)

		got, ok := s.service.Resolve(token)
		s.Require().True(ok)
		s.Equal("testuser1", got.Username)

		entry, ok := s.auditor.last("Login Success")
		s.Require().True(ok)
		s.Equal([]string{"PSQL", "REDIS"}, entry.Tags)
		s.Equal(token, entry.Parameters["session"])
	})

	s.Run("creates a cart when none exists", func() {
		s.catalog.EXPECT().Authenticate(gomock.Any(), "newbie", "pw").Return(true, nil)
		s.catalog.EXPECT().ResolveUserID(gomock.Any(), "newbie").Return(id.UserID(21), nil)
		s.catalog.EXPECT().IsAdmin(gomock.Any(), "newbie").Return(true, nil)
		s.sessions.EXPECT().CreateSession(gomock.Any(), id.UserID(21), DefaultSessionTTL).Return(id.NewSessionToken(), nil)
		s.sessions.EXPECT().CartExists(gomock.Any(), id.UserID(21)).Return(false, nil)
		s.sessions.EXPECT().CreateCart(gomock.Any(), id.UserID(21)).Return(id.CartID("fresh"), nil)

		res, err := s.service.Login(ctx, nil, "newbie", "pw")
		s.Require().NoError(err)
		s.Equal(id.CartID("fresh"), res.Value.CartID)
		s.True(res.Value.IsAdmin)
	})

	s.Run("incorrect credentials is a notice and audits Login Fail", func() {
		s.catalog.EXPECT().Authenticate(gomock.Any(), "testuser1", "wrong").Return(false, nil)

		res, err := s.service.Login(ctx, nil, "testuser1", "wrong")
		s.Require().NoError(err)
		s.Equal(NoticeIncorrectCredentials, res.Notice)
		s.Equal("Incorrect credentials", res.Message)
		s.Nil(res.Value)

		entry, ok := s.auditor.last("Login Fail")
		s.Require().True(ok)
		s.Equal(id.AnonymousUserID, entry.UserID)
		s.Equal([]string{"PSQL"}, entry.Tags)
	})

	s.Run("caller with a live session is already logged in", func() {
		current := s.session(8, "alice", false)

		res, err := s.service.Login(ctx, current, "bob", "pw")
		s.Require().NoError(err)
		s.Equal(NoticeAlreadyLoggedIn, res.Notice)
		s.Equal("Already logged in as alice", res.Message)
	})

	s.Run("caller with a live session needs no credentials", func() {
		current := s.session(10, "erin", false)

		res, err := s.service.Login(ctx, current, "", "")
		s.Require().NoError(err)
		s.Equal(NoticeAlreadyLoggedIn, res.Notice)
		s.Equal(current.Token, res.Value.Token)
	})

	s.Run("second login for the same user creates no second session", func() {
		existing := s.session(9, "carol", false)
		s.catalog.EXPECT().Authenticate(gomock.Any(), "carol", "pw").Return(true, nil)
		s.catalog.EXPECT().ResolveUserID(gomock.Any(), "carol").Return(id.UserID(9), nil)
		s.catalog.EXPECT().IsAdmin(gomock.Any(), "carol").Return(false, nil)

		res, err := s.service.Login(ctx, nil, "carol", "pw")
		s.Require().NoError(err)
		s.Equal(NoticeAlreadyLoggedIn, res.Notice)
		s.Equal(existing.Token, res.Value.Token)
	})

	s.Run("catalog down is unavailable", func() {
		s.monitor.Set(registry.Catalog, false)
		defer s.monitor.Set(registry.Catalog, true)

		_, err := s.service.Login(ctx, nil, "testuser1", "pw")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeUnavailable))
	})

	s.Run("missing password is a validation error", func() {
		_, err := s.service.Login(ctx, nil, "testuser1", "")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("session store failure propagates and stores nothing", func() {
		s.catalog.EXPECT().Authenticate(gomock.Any(), "dave", "pw").Return(true, nil)
		s.catalog.EXPECT().ResolveUserID(gomock.Any(), "dave").Return(id.UserID(30), nil)
		s.catalog.EXPECT().IsAdmin(gomock.Any(), "dave").Return(false, nil)
		s.sessions.EXPECT().CreateSession(gomock.Any(), id.UserID(30), DefaultSessionTTL).
			Return(id.SessionToken(""), dErrors.New(dErrors.CodeUpstream, "redis down"))

		_, err := s.service.Login(ctx, nil, "dave", "pw")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeUpstream))
		_, ok := s.service.Sessions().ByUser(30)
		s.False(ok)
	})
}

func (s *ServiceSuite) TestLogout() {
	ctx := context.Background()

	s.Run("anonymous reports no active session and mutates nothing", func() {
		before := s.service.Sessions().Len()

		res, err := s.service.Logout(ctx, nil)
		s.Require().NoError(err)
		s.Equal(NoticeNoActiveSession, res.Notice)
		s.Equal("No active session", res.Message)
		s.Equal(before, s.service.Sessions().Len())
		s.Contains(s.auditor.actions(), "Logout Fail")
	})

	s.Run("drops the session at the store and in the table", func() {
		sess := s.session(7, "testuser1", false)
		s.sessions.EXPECT().DropSession(gomock.Any(), id.UserID(7)).Return(true, nil)

		res, err := s.service.Logout(ctx, sess)
		s.Require().NoError(err)
		s.Equal("User testuser1 logged out", res.Message)
		_, ok := s.service.Resolve(sess.Token)
		s.False(ok)

		entry, ok := s.auditor.last("Logout Success")
		s.Require().True(ok)
		s.Equal(id.UserID(7), entry.UserID)
	})

	s.Run("store reporting no session still logs out locally", func() {
		sess := s.session(7, "testuser1", false)
		s.sessions.EXPECT().DropSession(gomock.Any(), id.UserID(7)).Return(false, nil)

		res, err := s.service.Logout(ctx, sess)
		s.Require().NoError(err)
		s.True(res.OK())
		_, ok := s.service.Resolve(sess.Token)
		s.False(ok)
	})

	s.Run("transport failure keeps the session", func() {
		sess := s.session(7, "testuser1", false)
		s.sessions.EXPECT().DropSession(gomock.Any(), id.UserID(7)).Return(false, dErrors.New(dErrors.CodeTimeout, "timeout"))

		_, err := s.service.Logout(ctx, sess)
		s.Require().Error(err)
		_, ok := s.service.Resolve(sess.Token)
		s.True(ok)
	})
}

func (s *ServiceSuite) TestSessionStatus() {
	ctx := context.Background()

	s.Run("expired at the store evicts locally", func() {
		sess := s.session(7, "testuser1", false)
		s.sessions.EXPECT().SessionExists(gomock.Any(), sess.Token).Return(false, nil)

		res, err := s.service.SessionStatus(ctx, sess)
		s.Require().NoError(err)
		s.False(res.Value)
		_, ok := s.service.Resolve(sess.Token)
		s.False(ok)
	})

	s.Run("anonymous is a notice", func() {
		res, err := s.service.SessionStatus(ctx, nil)
		s.Require().NoError(err)
		s.Equal(NoticeNoActiveSession, res.Notice)
	})
}

// =============================================================================
// Cart Tests
// =============================================================================

func (s *ServiceSuite) TestCart() {
	ctx := context.Background()

	s.Run("anonymous update is a notice, never an error", func() {
		res, err := s.service.UpdateCart(ctx, nil, 5, 1)
		s.Require().NoError(err)
		s.Equal(NoticeNoActiveSession, res.Notice)
	})

	s.Run("update returns the store's cart", func() {
		sess := s.session(7, "testuser1", false)
		s.sessions.EXPECT().UpdateCart(gomock.Any(), id.UserID(7), id.ProductID(5), 1).Return(id.Cart{5: 1}, nil)

		res, err := s.service.UpdateCart(ctx, sess, 5, 1)
		s.Require().NoError(err)
		s.Equal(id.Cart{5: 1}, res.Value)
	})

	s.Run("non-positive product id is rejected", func() {
		sess := s.session(7, "testuser1", false)
		_, err := s.service.UpdateCart(ctx, sess, 0, 1)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("clear uses the atomic reset when supported", func() {
		sess := s.session(7, "testuser1", false)
		gomock.InOrder(
			s.sessions.EXPECT().SupportsReset().Return(true),
			s.sessions.EXPECT().ResetCart(gomock.Any(), id.UserID(7)).Return(id.CartID("new-cart"), nil),
			s.sessions.EXPECT().ReadCart(gomock.Any(), id.UserID(7)).Return(id.Cart{}, nil),
		)

		res, err := s.service.ClearCart(ctx, sess)
		s.Require().NoError(err)
		s.Empty(res.Value)
		s.Equal(id.CartID("new-cart"), sess.CartID)
		stored, _ := s.service.Resolve(sess.Token)
		s.Equal(id.CartID("new-cart"), stored.CartID)
	})

	s.Run("clear falls back to delete and create", func() {
		sess := s.session(7, "testuser1", false)
		gomock.InOrder(
			s.sessions.EXPECT().SupportsReset().Return(false),
			s.sessions.EXPECT().DeleteCart(gomock.Any(), id.UserID(7)).Return(true, nil),
			s.sessions.EXPECT().CreateCart(gomock.Any(), id.UserID(7)).Return(id.CartID("recreated"), nil),
			s.sessions.EXPECT().ReadCart(gomock.Any(), id.UserID(7)).Return(id.Cart{}, nil),
		)

		_, err := s.service.ClearCart(ctx, sess)
		s.Require().NoError(err)
		s.Equal(id.CartID("recreated"), sess.CartID)
	})

	s.Run("session store down is unavailable", func() {
		s.monitor.Set(registry.SessionCart, false)
		defer s.monitor.Set(registry.SessionCart, true)

		_, err := s.service.ReadCart(ctx, s.session(7, "testuser1", false))
		s.True(dErrors.HasCode(err, dErrors.CodeUnavailable))
	})
}

// =============================================================================
// Purchase Tests
// =============================================================================

func (s *ServiceSuite) TestPurchase() {
	ctx := context.Background()

	s.Run("empty cart creates no statement", func() {
		sess := s.session(7, "testuser1", false)
		s.sessions.EXPECT().ReadCart(gomock.Any(), id.UserID(7)).Return(id.Cart{}, nil)

		res, err := s.service.Purchase(ctx, sess)
		s.Require().NoError(err)
		s.Equal(NoticeCartEmpty, res.Notice)
		s.Equal("Cart is empty", res.Message)
	})

	s.Run("steps run in order with edges ascending by product id", func() {
		sess := s.session(7, "testuser1", false)
		cart := id.Cart{9: 1, 2: 3, 5: 1}
		gomock.InOrder(
			s.sessions.EXPECT().ReadCart(gomock.Any(), id.UserID(7)).Return(cart, nil),
			s.graph.EXPECT().RecordPurchase(gomock.Any(), id.UserID(7), id.ProductID(2)).Return(true, nil),
			s.graph.EXPECT().RecordPurchase(gomock.Any(), id.UserID(7), id.ProductID(5)).Return(true, nil),
			s.graph.EXPECT().RecordPurchase(gomock.Any(), id.UserID(7), id.ProductID(9)).Return(true, nil),
			s.statements.EXPECT().CreateStatement(gomock.Any(), id.UserID(7), cart).Return(id.StatementID(42), nil),
			s.sessions.EXPECT().SupportsReset().Return(true),
			s.sessions.EXPECT().ResetCart(gomock.Any(), id.UserID(7)).Return(id.CartID("after"), nil),
		)

		res, err := s.service.Purchase(ctx, sess)
		s.Require().NoError(err)
		s.Equal(id.StatementID(42), res.Value.StatementID)
		s.Equal(cart, res.Value.Items)

		entry, ok := s.auditor.last("Purchase")
		s.Require().True(ok)
		s.Equal([]string{"REDIS", "MONGODB", "NEO4J"}, entry.Tags)
	})

	s.Run("statement failure stops the saga without compensation", func() {
		sess := s.session(7, "testuser1", false)
		boom := dErrors.New(dErrors.CodeUpstream, "ledger down")
		gomock.InOrder(
			s.sessions.EXPECT().ReadCart(gomock.Any(), id.UserID(7)).Return(id.Cart{5: 1}, nil),
			s.graph.EXPECT().RecordPurchase(gomock.Any(), id.UserID(7), id.ProductID(5)).Return(true, nil),
			s.statements.EXPECT().CreateStatement(gomock.Any(), id.UserID(7), id.Cart{5: 1}).Return(id.StatementID(0), boom),
		)

		_, err := s.service.Purchase(ctx, sess)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeUpstream))

		var stepErr *saga.StepError
		s.Require().True(errors.As(err, &stepErr))
		s.Equal("create_statement", stepErr.Step)
		s.Equal([]string{"purchase_edge:5"}, stepErr.Completed)

		entry, ok := s.auditor.last("Purchase Fail")
		s.Require().True(ok)
		s.Equal("create_statement", entry.Parameters["failed_step"])
	})

	s.Run("graph down refuses before reading the cart", func() {
		s.monitor.Set(registry.Graph, false)
		defer s.monitor.Set(registry.Graph, true)

		_, err := s.service.Purchase(ctx, s.session(7, "testuser1", false))
		s.True(dErrors.HasCode(err, dErrors.CodeUnavailable))
	})
}

// =============================================================================
// Statement, Social, Catalog and Log Tests
// =============================================================================

func (s *ServiceSuite) TestReadStatement() {
	ctx := context.Background()

	s.Run("statement outside the caller's list does not belong", func() {
		sess := s.session(8, "bob", false)
		s.statements.EXPECT().ListStatements(gomock.Any(), id.UserID(8)).Return([]id.StatementID{1, 2}, nil)

		res, err := s.service.ReadStatement(ctx, sess, 42)
		s.Require().NoError(err)
		s.Equal(NoticeNotOwned, res.Notice)
		s.Equal("Statement 42 does not belong to bob", res.Message)
		s.Contains(s.auditor.actions(), "Read Statement Fail")
	})

	s.Run("not found at the ledger does not belong", func() {
		sess := s.session(7, "testuser1", false)
		s.statements.EXPECT().ListStatements(gomock.Any(), id.UserID(7)).Return([]id.StatementID{42}, nil)
		s.statements.EXPECT().ReadStatement(gomock.Any(), id.StatementID(42)).
			Return(id.Statement{}, dErrors.New(dErrors.CodeNotFound, "missing"))

		res, err := s.service.ReadStatement(ctx, sess, 42)
		s.Require().NoError(err)
		s.Equal(NoticeNotOwned, res.Notice)
	})

	s.Run("owned statement is returned", func() {
		sess := s.session(7, "testuser1", false)
		stmt := id.Statement{ID: 42, UserID: 7, Purchase: id.Cart{5: 1}}
		s.statements.EXPECT().ListStatements(gomock.Any(), id.UserID(7)).Return([]id.StatementID{42}, nil)
		s.statements.EXPECT().ReadStatement(gomock.Any(), id.StatementID(42)).Return(stmt, nil)

		res, err := s.service.ReadStatement(ctx, sess, 42)
		s.Require().NoError(err)
		s.Equal(stmt, res.Value)
		s.Contains(s.auditor.actions(), "Read Statement Success")
	})
}

func (s *ServiceSuite) TestFollowAndRecommend() {
	ctx := context.Background()

	s.Run("following yourself is a validation error", func() {
		_, err := s.service.Follow(ctx, s.session(7, "testuser1", false), 7)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("follow calls the graph", func() {
		s.graph.EXPECT().Follow(gomock.Any(), id.UserID(7), id.UserID(8)).Return(true, nil)

		res, err := s.service.Follow(ctx, s.session(7, "testuser1", false), 8)
		s.Require().NoError(err)
		s.True(res.Value)
	})

	s.Run("recommendations are returned to the caller", func() {
		s.graph.EXPECT().Recommend(gomock.Any(), id.UserID(7)).Return([]id.ProductID{3, 4}, nil)

		res, err := s.service.Recommend(ctx, s.session(7, "testuser1", false))
		s.Require().NoError(err)
		s.Equal([]id.ProductID{3, 4}, res.Value)
	})

	s.Run("anonymous recommend is a notice", func() {
		res, err := s.service.Recommend(ctx, nil)
		s.Require().NoError(err)
		s.Equal(NoticeNoActiveSession, res.Notice)
	})
}

func (s *ServiceSuite) TestFetchProducts() {
	ctx := context.Background()

	s.Run("anonymous callers may search", func() {
		filter := map[string]any{"vendor": "Acme"}
		s.catalog.EXPECT().FetchProducts(gomock.Any(), filter).Return([]id.Product{{ID: 5, Vendor: "Acme"}}, nil)

		res, err := s.service.FetchProducts(ctx, nil, filter)
		s.Require().NoError(err)
		s.Len(res.Value, 1)

		entry, ok := s.auditor.last("fetch_products")
		s.Require().True(ok)
		s.Equal(id.AnonymousUserID, entry.UserID)
	})
}

func (s *ServiceSuite) TestReadLogs() {
	ctx := context.Background()

	s.Run("defaults to the caller and limit 10", func() {
		s.logs.EXPECT().ReadLogs(gomock.Any(), id.UserID(7), DefaultLogLimit).Return(nil, nil)

		res, err := s.service.ReadLogs(ctx, s.session(7, "testuser1", false), 0, 0)
		s.Require().NoError(err)
		s.NotNil(res.Value)
	})

	s.Run("non-admin cannot read another user's log", func() {
		_, err := s.service.ReadLogs(ctx, s.session(7, "testuser1", false), 8, 5)
		s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
	})

	s.Run("admin reads any user's log with the limit capped", func() {
		s.logs.EXPECT().ReadLogs(gomock.Any(), id.UserID(8), MaxLogLimit).Return([]id.LogEntry{{UserID: 8, Action: "Read Cart"}}, nil)

		res, err := s.service.ReadLogs(ctx, s.session(1, "admin", true), 8, 5000)
		s.Require().NoError(err)
		s.Len(res.Value, 1)
	})

	s.Run("only admins read entries recorded without a session", func() {
		_, err := s.service.ReadLogs(ctx, s.session(7, "testuser1", false), id.AnonymousUserID, 0)
		s.True(dErrors.HasCode(err, dErrors.CodeForbidden))

		s.logs.EXPECT().ReadLogs(gomock.Any(), id.AnonymousUserID, DefaultLogLimit).
			Return([]id.LogEntry{{UserID: id.AnonymousUserID, Action: "Login Fail"}}, nil)
		res, err := s.service.ReadLogs(ctx, s.session(1, "admin", true), id.AnonymousUserID, 0)
		s.Require().NoError(err)
		s.Equal("Login Fail", res.Value[0].Action)
	})

	s.Run("log store down is unavailable", func() {
		s.monitor.Set(registry.LogStore, false)
		defer s.monitor.Set(registry.LogStore, true)

		_, err := s.service.ReadLogs(ctx, s.session(7, "testuser1", false), 0, 0)
		s.True(dErrors.HasCode(err, dErrors.CodeUnavailable))
	})
}
