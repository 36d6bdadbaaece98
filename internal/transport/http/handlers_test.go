package httptransport

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"polyglot/internal/orchestrator"
	"polyglot/internal/registry"
	id "polyglot/pkg/domain"
	dErrors "polyglot/pkg/domain-errors"
	"polyglot/pkg/testutil"
)

func (s *HandlerSuite) TestHandler_Cart() {
	s.T().Run("update cart forwards product and quantity", func(t *testing.T) {
		f := s.newHandler(t)
		_, bearer := f.login(t, 7, "alice")
		f.service.EXPECT().UpdateCart(gomock.Any(), sessionOf(7), id.ProductID(3), 2).
			Return(orchestrator.Result[id.Cart]{Value: id.Cart{3: 2}}, nil)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/cart/update", updateCartRequest{ProductID: 3, Quantity: 2})
		rr := testutil.DoRequest(f.router, testutil.WithBearer(req, bearer))

		testutil.AssertStatusOK(t, rr)
		assert.Equal(t, id.Cart{3: 2}, testutil.UnmarshalData[id.Cart](t, rr))
	})

	s.T().Run("update cart rejects a missing product id", func(t *testing.T) {
		f := s.newHandler(t)
		f.service.EXPECT().UpdateCart(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/cart/update", map[string]int{"quantity": 1})
		rr := testutil.DoRequest(f.router, req)

		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, string(dErrors.CodeValidation))
	})

	s.T().Run("anonymous read gets the no-session notice", func(t *testing.T) {
		f := s.newHandler(t)
		f.service.EXPECT().ReadCart(gomock.Any(), anonymous()).
			Return(orchestrator.Result[id.Cart]{Notice: orchestrator.NoticeNoActiveSession, Message: "No active session"}, nil)

		rr := testutil.DoRequest(f.router, testutil.NewRequest(t, http.MethodGet, "/cart"))

		testutil.AssertStatusOK(t, rr)
		env := testutil.UnmarshalEnvelope(t, rr)
		assert.Equal(t, string(orchestrator.NoticeNoActiveSession), env.Notice)
		assert.Empty(t, env.Data)
	})

	s.T().Run("clear cart returns the empty cart", func(t *testing.T) {
		f := s.newHandler(t)
		_, bearer := f.login(t, 7, "alice")
		f.service.EXPECT().ClearCart(gomock.Any(), sessionOf(7)).
			Return(orchestrator.Result[id.Cart]{Value: id.Cart{}}, nil)

		req := testutil.NewRequest(t, http.MethodPost, "/cart/clear")
		rr := testutil.DoRequest(f.router, testutil.WithBearer(req, bearer))

		testutil.AssertStatusOK(t, rr)
	})
}

func (s *HandlerSuite) TestHandler_Purchase() {
	s.T().Run("successful purchase returns the receipt", func(t *testing.T) {
		f := s.newHandler(t)
		_, bearer := f.login(t, 7, "alice")
		f.service.EXPECT().Purchase(gomock.Any(), sessionOf(7)).
			Return(orchestrator.Result[orchestrator.Receipt]{
				Value: orchestrator.Receipt{StatementID: 11, Items: id.Cart{3: 2}},
			}, nil)

		req := testutil.NewRequest(t, http.MethodPost, "/purchase")
		rr := testutil.DoRequest(f.router, testutil.WithBearer(req, bearer))

		testutil.AssertStatusOK(t, rr)
		env := testutil.UnmarshalEnvelope(t, rr)
		assert.NotEmpty(t, env.Data)
	})

	s.T().Run("empty cart is a notice", func(t *testing.T) {
		f := s.newHandler(t)
		_, bearer := f.login(t, 7, "alice")
		f.service.EXPECT().Purchase(gomock.Any(), sessionOf(7)).
			Return(orchestrator.Result[orchestrator.Receipt]{Notice: orchestrator.NoticeCartEmpty, Message: "Cart is empty"}, nil)

		req := testutil.NewRequest(t, http.MethodPost, "/purchase")
		rr := testutil.DoRequest(f.router, testutil.WithBearer(req, bearer))

		testutil.AssertStatusOK(t, rr)
		assert.Equal(t, "Cart is empty", testutil.UnmarshalEnvelope(t, rr).Message)
	})

	s.T().Run("saga failure surfaces as upstream error", func(t *testing.T) {
		f := s.newHandler(t)
		_, bearer := f.login(t, 7, "alice")
		f.service.EXPECT().Purchase(gomock.Any(), sessionOf(7)).
			Return(orchestrator.Result[orchestrator.Receipt]{}, dErrors.New(dErrors.CodeUpstream, "statement store failed"))

		req := testutil.NewRequest(t, http.MethodPost, "/purchase")
		rr := testutil.DoRequest(f.router, testutil.WithBearer(req, bearer))

		testutil.AssertStatusAndError(t, rr, http.StatusBadGateway, string(dErrors.CodeUpstream))
	})
}

func (s *HandlerSuite) TestHandler_Statements() {
	s.T().Run("list returns statement ids", func(t *testing.T) {
		f := s.newHandler(t)
		_, bearer := f.login(t, 7, "alice")
		f.service.EXPECT().ListStatements(gomock.Any(), sessionOf(7)).
			Return(orchestrator.Result[[]id.StatementID]{Value: []id.StatementID{1, 4}}, nil)

		req := testutil.NewRequest(t, http.MethodGet, "/statements")
		rr := testutil.DoRequest(f.router, testutil.WithBearer(req, bearer))

		testutil.AssertStatusOK(t, rr)
		assert.Equal(t, []id.StatementID{1, 4}, testutil.UnmarshalData[[]id.StatementID](t, rr))
	})

	s.T().Run("read parses the statement id from the path", func(t *testing.T) {
		f := s.newHandler(t)
		_, bearer := f.login(t, 7, "alice")
		created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
		f.service.EXPECT().ReadStatement(gomock.Any(), sessionOf(7), id.StatementID(4)).
			Return(orchestrator.Result[id.Statement]{
				Value: id.Statement{ID: 4, UserID: 7, Purchase: id.Cart{3: 1}, CreationDate: created},
			}, nil)

		req := testutil.NewRequest(t, http.MethodGet, "/statements/4")
		rr := testutil.DoRequest(f.router, testutil.WithBearer(req, bearer))

		testutil.AssertStatusOK(t, rr)
		got := testutil.UnmarshalData[id.Statement](t, rr)
		assert.Equal(t, id.StatementID(4), got.ID)
		assert.True(t, created.Equal(got.CreationDate))
	})

	s.T().Run("read rejects a non-numeric id", func(t *testing.T) {
		f := s.newHandler(t)
		f.service.EXPECT().ReadStatement(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		rr := testutil.DoRequest(f.router, testutil.NewRequest(t, http.MethodGet, "/statements/abc"))

		testutil.AssertStatus(t, rr, http.StatusBadRequest)
	})

	s.T().Run("statement of another user is a notice", func(t *testing.T) {
		f := s.newHandler(t)
		_, bearer := f.login(t, 7, "alice")
		f.service.EXPECT().ReadStatement(gomock.Any(), sessionOf(7), id.StatementID(9)).
			Return(orchestrator.Result[id.Statement]{
				Notice:  orchestrator.NoticeNotOwned,
				Message: "Statement 9 does not belong to alice",
			}, nil)

		req := testutil.NewRequest(t, http.MethodGet, "/statements/9")
		rr := testutil.DoRequest(f.router, testutil.WithBearer(req, bearer))

		testutil.AssertStatusOK(t, rr)
		assert.Equal(t, string(orchestrator.NoticeNotOwned), testutil.UnmarshalEnvelope(t, rr).Notice)
	})
}

func (s *HandlerSuite) TestHandler_Social() {
	s.T().Run("follow forwards the target user", func(t *testing.T) {
		f := s.newHandler(t)
		_, bearer := f.login(t, 7, "alice")
		f.service.EXPECT().Follow(gomock.Any(), sessionOf(7), id.UserID(8)).
			Return(orchestrator.Result[bool]{Value: true}, nil)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/follow", followRequest{UserID: 8})
		rr := testutil.DoRequest(f.router, testutil.WithBearer(req, bearer))

		testutil.AssertStatusOK(t, rr)
		assert.True(t, testutil.UnmarshalData[bool](t, rr))
	})

	s.T().Run("follow yourself is a validation error", func(t *testing.T) {
		f := s.newHandler(t)
		_, bearer := f.login(t, 7, "alice")
		f.service.EXPECT().Follow(gomock.Any(), sessionOf(7), id.UserID(7)).
			Return(orchestrator.Result[bool]{}, dErrors.New(dErrors.CodeValidation, "cannot follow yourself"))

		req := testutil.NewJSONRequest(t, http.MethodPost, "/follow", followRequest{UserID: 7})
		rr := testutil.DoRequest(f.router, testutil.WithBearer(req, bearer))

		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, string(dErrors.CodeValidation))
	})

	s.T().Run("recommendations return product ids", func(t *testing.T) {
		f := s.newHandler(t)
		_, bearer := f.login(t, 7, "alice")
		f.service.EXPECT().Recommend(gomock.Any(), sessionOf(7)).
			Return(orchestrator.Result[[]id.ProductID]{Value: []id.ProductID{5, 6}}, nil)

		req := testutil.NewRequest(t, http.MethodGet, "/recommendations")
		rr := testutil.DoRequest(f.router, testutil.WithBearer(req, bearer))

		testutil.AssertStatusOK(t, rr)
		assert.Equal(t, []id.ProductID{5, 6}, testutil.UnmarshalData[[]id.ProductID](t, rr))
	})
}

func (s *HandlerSuite) TestHandler_FetchProducts() {
	s.T().Run("filter body is passed through", func(t *testing.T) {
		f := s.newHandler(t)
		f.service.EXPECT().FetchProducts(gomock.Any(), anonymous(), map[string]any{"vendor": "Acme"}).
			Return(orchestrator.Result[[]id.Product]{Value: []id.Product{{ID: 1, Vendor: "Acme"}}}, nil)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/products/search", map[string]string{"vendor": "Acme"})
		rr := testutil.DoRequest(f.router, req)

		testutil.AssertStatusOK(t, rr)
		got := testutil.UnmarshalData[[]id.Product](t, rr)
		require.Len(t, got, 1)
		assert.Equal(t, "Acme", got[0].Vendor)
	})

	s.T().Run("missing body searches everything", func(t *testing.T) {
		f := s.newHandler(t)
		f.service.EXPECT().FetchProducts(gomock.Any(), anonymous(), map[string]any{}).
			Return(orchestrator.Result[[]id.Product]{Value: []id.Product{}}, nil)

		rr := testutil.DoRequest(f.router, testutil.NewRequest(t, http.MethodPost, "/products/search"))

		testutil.AssertStatusOK(t, rr)
	})
}

func (s *HandlerSuite) TestHandler_ReadLogs() {
	s.T().Run("query parameters are parsed", func(t *testing.T) {
		f := s.newHandler(t)
		_, bearer := f.login(t, 7, "alice")
		f.service.EXPECT().ReadLogs(gomock.Any(), sessionOf(7), id.UserID(8), 5).
			Return(orchestrator.Result[[]id.LogEntry]{Value: []id.LogEntry{{UserID: 8, Action: "Purchase"}}}, nil)

		req := testutil.NewRequest(t, http.MethodGet, "/logs?user_id=8&limit=5")
		rr := testutil.DoRequest(f.router, testutil.WithBearer(req, bearer))

		testutil.AssertStatusOK(t, rr)
		got := testutil.UnmarshalData[[]id.LogEntry](t, rr)
		require.Len(t, got, 1)
		assert.Equal(t, "Purchase", got[0].Action)
	})

	s.T().Run("defaults leave user and limit zero", func(t *testing.T) {
		f := s.newHandler(t)
		_, bearer := f.login(t, 7, "alice")
		f.service.EXPECT().ReadLogs(gomock.Any(), sessionOf(7), id.UserID(0), 0).
			Return(orchestrator.Result[[]id.LogEntry]{Value: []id.LogEntry{}}, nil)

		req := testutil.NewRequest(t, http.MethodGet, "/logs")
		rr := testutil.DoRequest(f.router, testutil.WithBearer(req, bearer))

		testutil.AssertStatusOK(t, rr)
	})

	s.T().Run("negative limit is rejected", func(t *testing.T) {
		f := s.newHandler(t)
		f.service.EXPECT().ReadLogs(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		rr := testutil.DoRequest(f.router, testutil.NewRequest(t, http.MethodGet, "/logs?limit=-1"))

		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, string(dErrors.CodeValidation))
	})

	s.T().Run("reading another user's logs without admin is forbidden", func(t *testing.T) {
		f := s.newHandler(t)
		_, bearer := f.login(t, 7, "alice")
		f.service.EXPECT().ReadLogs(gomock.Any(), sessionOf(7), id.UserID(8), 0).
			Return(orchestrator.Result[[]id.LogEntry]{}, dErrors.New(dErrors.CodeForbidden, "admin required"))

		req := testutil.NewRequest(t, http.MethodGet, "/logs?user_id=8")
		rr := testutil.DoRequest(f.router, testutil.WithBearer(req, bearer))

		testutil.AssertStatusAndError(t, rr, http.StatusForbidden, string(dErrors.CodeForbidden))
	})
}

func (s *HandlerSuite) TestHandler_ReadAnonymousLogs() {
	s.T().Run("anonymous entries are addressable", func(t *testing.T) {
		f := s.newHandler(t)
		_, bearer := f.login(t, 1, "admin")
		f.service.EXPECT().ReadLogs(gomock.Any(), sessionOf(1), id.AnonymousUserID, 0).
			Return(orchestrator.Result[[]id.LogEntry]{Value: []id.LogEntry{{UserID: id.AnonymousUserID, Action: "Login Fail"}}}, nil)

		req := testutil.NewRequest(t, http.MethodGet, "/logs?user_id=-1")
		rr := testutil.DoRequest(f.router, testutil.WithBearer(req, bearer))

		testutil.AssertStatusOK(t, rr)
		got := testutil.UnmarshalData[[]id.LogEntry](t, rr)
		require.Len(t, got, 1)
		assert.Equal(t, "Login Fail", got[0].Action)
	})

	s.T().Run("other non-positive ids are rejected", func(t *testing.T) {
		f := s.newHandler(t)
		f.service.EXPECT().ReadLogs(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		for _, raw := range []string{"0", "-2", "abc"} {
			rr := testutil.DoRequest(f.router, testutil.NewRequest(t, http.MethodGet, "/logs?user_id="+raw))
			assert.Equal(t, http.StatusBadRequest, rr.Code, raw)
		}
	})
}

func (s *HandlerSuite) TestRouter_Ambient() {
	s.T().Run("root answers running", func(t *testing.T) {
		f := s.newHandler(t)
		rr := testutil.DoRequest(f.router, testutil.NewRequest(t, http.MethodGet, "/"))

		testutil.AssertStatusOK(t, rr)
		testutil.AssertJSONContains(t, rr, "status", "running")
	})

	s.T().Run("health reports the cached snapshot", func(t *testing.T) {
		f := s.newHandler(t)
		f.health.EXPECT().Snapshot().Return(map[registry.ServiceName]bool{
			registry.Catalog:     true,
			registry.SessionCart: false,
		})

		rr := testutil.DoRequest(f.router, testutil.NewRequest(t, http.MethodGet, "/health"))

		testutil.AssertStatusOK(t, rr)
		got := testutil.UnmarshalData[map[string]bool](t, rr)
		assert.True(t, got[string(registry.Catalog)])
		assert.False(t, got[string(registry.SessionCart)])
	})

	s.T().Run("metrics are exposed", func(t *testing.T) {
		f := s.newHandler(t)
		rr := testutil.DoRequest(f.router, testutil.NewRequest(t, http.MethodGet, "/metrics"))

		testutil.AssertStatusOK(t, rr)
	})

	s.T().Run("request id is echoed", func(t *testing.T) {
		f := s.newHandler(t)
		req := testutil.NewRequest(t, http.MethodGet, "/")
		req.Header.Set("X-Request-ID", "req-123")
		rr := testutil.DoRequest(f.router, req)

		assert.Equal(t, "req-123", rr.Header().Get("X-Request-ID"))
	})
}
