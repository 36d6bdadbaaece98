package orchestrator

import (
	"context"
	"strings"

	"polyglot/internal/registry"
	id "polyglot/pkg/domain"
	dErrors "polyglot/pkg/domain-errors"
)

// Login authenticates against the catalog and opens a session. A caller that
// already holds a live session, or a user that already has one in the table,
// gets NoticeAlreadyLoggedIn and no second session is created.
func (s *Service) Login(ctx context.Context, current *Session, username, password string) (res Result[*Session], err error) {
	defer func() { s.metrics.observe("login", res.Notice, err) }()

	if err := s.health.Require(registry.Catalog); err != nil {
		return res, err
	}
	username = strings.TrimSpace(username)
	s.record(ctx, current, "login", map[string]any{"user_name": username}, registry.Catalog)

	if s.authenticated(current) {
		return Result[*Session]{Value: current, Notice: NoticeAlreadyLoggedIn, Message: alreadyLoggedInMessage(current.Username)}, nil
	}
	if username == "" || password == "" {
		return res, dErrors.New(dErrors.CodeValidation, "username and password are required")
	}

	ok, err := s.catalog.Authenticate(ctx, username, password)
	if err != nil {
		return res, err
	}
	if !ok {
		s.record(ctx, nil, "Login Fail", nil, registry.Catalog)
		return noticed[*Session](NoticeIncorrectCredentials, "Incorrect credentials"), nil
	}

	userID, err := s.catalog.ResolveUserID(ctx, username)
	if err != nil {
		return res, err
	}
	isAdmin, err := s.catalog.IsAdmin(ctx, username)
	if err != nil {
		return res, err
	}

	unlock := s.locks.lock(userID)
	defer unlock()

	if existing, ok := s.table.ByUser(userID); ok {
		return Result[*Session]{Value: existing, Notice: NoticeAlreadyLoggedIn, Message: alreadyLoggedInMessage(existing.Username)}, nil
	}

	token, err := s.sessions.CreateSession(ctx, userID, s.sessionTTL)
	if err != nil {
		return res, err
	}
	cartID, err := s.userCart(ctx, userID)
	if err != nil {
		return res, err
	}

	now := s.now()
	sess := Session{
		Token:     token,
		UserID:    userID,
		Username:  username,
		CartID:    cartID,
		IsAdmin:   isAdmin,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL),
	}
	s.table.Put(sess)
	s.metrics.setSessions(s.table.Len())

	s.recordFor(ctx, userID, "Login Success", map[string]any{
		"user":    username,
		"session": token,
		"cart":    cartID,
	}, registry.Catalog, registry.SessionCart)
	s.logger.InfoContext(ctx, "user logged in", "user_id", userID, "admin", isAdmin)

	return Result[*Session]{Value: &sess, Message: welcomeMessage(username)}, nil
}

// userCart returns the user's existing cart or creates one.
func (s *Service) userCart(ctx context.Context, userID id.UserID) (id.CartID, error) {
	exists, err := s.sessions.CartExists(ctx, userID)
	if err != nil {
		return "", err
	}
	if exists {
		return s.sessions.GetCart(ctx, userID)
	}
	return s.sessions.CreateCart(ctx, userID)
}

// Logout drops the caller's session at the store and in the table. The
// store's drop result is not inspected: a session the store already expired
// still logs out locally.
func (s *Service) Logout(ctx context.Context, current *Session) (res Result[string], err error) {
	defer func() { s.metrics.observe("logout", res.Notice, err) }()

	if err := s.health.Require(registry.Catalog); err != nil {
		return res, err
	}
	s.record(ctx, current, "logout", nil, registry.Catalog)
	if !s.authenticated(current) {
		user := ""
		if current != nil {
			user = current.Username
		}
		s.record(ctx, nil, "Logout Fail", map[string]any{"user": user}, registry.Catalog)
		return noSession[string](), nil
	}

	userID, username, token := current.UserID, current.Username, current.Token

	unlock := s.locks.lock(userID)
	defer unlock()

	dropped, err := s.sessions.DropSession(ctx, userID)
	if err != nil {
		return res, err
	}
	if !dropped {
		s.logger.DebugContext(ctx, "session store held no session", "user_id", userID)
	}
	s.table.Remove(token)
	s.metrics.setSessions(s.table.Len())

	s.recordFor(ctx, userID, "Logout Success", map[string]any{"user": username}, registry.Catalog)
	return Result[string]{Value: username, Message: loggedOutMessage(username)}, nil
}

// SessionStatus asks the session store whether the caller's session still
// exists there. A session the store has expired is evicted from the table.
func (s *Service) SessionStatus(ctx context.Context, current *Session) (res Result[bool], err error) {
	defer func() { s.metrics.observe("session_status", res.Notice, err) }()

	if err := s.health.Require(registry.SessionCart); err != nil {
		return res, err
	}
	if !s.authenticated(current) {
		return noSession[bool](), nil
	}
	exists, err := s.sessions.SessionExists(ctx, current.Token)
	if err != nil {
		return res, err
	}
	if !exists {
		s.table.Remove(current.Token)
		s.metrics.setSessions(s.table.Len())
	}
	return value(exists), nil
}
