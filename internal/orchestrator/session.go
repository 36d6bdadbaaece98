package orchestrator

import (
	"sync"
	"time"

	id "polyglot/pkg/domain"
)

// Session is one authenticated caller. Copies are handed out; the table owns
// the canonical value.
type Session struct {
	Token     id.SessionToken
	UserID    id.UserID
	Username  string
	CartID    id.CartID
	IsAdmin   bool
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Live reports whether the session has not expired at now.
func (s *Session) Live(now time.Time) bool {
	return s != nil && now.Before(s.ExpiresAt)
}

// SessionTable indexes live sessions by token and by user. A user holds at
// most one session.
type SessionTable struct {
	mu      sync.RWMutex
	byToken map[id.SessionToken]Session
	byUser  map[id.UserID]id.SessionToken
	now     func() time.Time
}

// NewSessionTable creates an empty table. now defaults to time.Now.
func NewSessionTable(now func() time.Time) *SessionTable {
	if now == nil {
		now = time.Now
	}
	return &SessionTable{
		byToken: make(map[id.SessionToken]Session),
		byUser:  make(map[id.UserID]id.SessionToken),
		now:     now,
	}
}

// Put stores s, replacing any previous session of the same user.
func (t *SessionTable) Put(s Session) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if prev, ok := t.byUser[s.UserID]; ok && prev != s.Token {
		delete(t.byToken, prev)
	}
	t.byToken[s.Token] = s
	t.byUser[s.UserID] = s.Token
}

// Resolve returns a copy of the live session for token. Expired sessions are
// evicted.
func (t *SessionTable) Resolve(token id.SessionToken) (*Session, bool) {
	t.mu.RLock()
	s, ok := t.byToken[token]
	t.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if !s.Live(t.now()) {
		t.Remove(token)
		return nil, false
	}
	return &s, true
}

// ByUser returns a copy of the user's live session.
func (t *SessionTable) ByUser(userID id.UserID) (*Session, bool) {
	t.mu.RLock()
	token, ok := t.byUser[userID]
	t.mu.RUnlock()
	if !ok {
		return nil, false
	}
	return t.Resolve(token)
}

// Remove deletes the session for token if present.
func (t *SessionTable) Remove(token id.SessionToken) {
	t.mu.Lock()
	defer t.mu.Unlock()
	s, ok := t.byToken[token]
	if !ok {
		return
	}
	delete(t.byToken, token)
	if t.byUser[s.UserID] == token {
		delete(t.byUser, s.UserID)
	}
}

// SetCart records a new cart handle for the session.
func (t *SessionTable) SetCart(token id.SessionToken, cartID id.CartID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if s, ok := t.byToken[token]; ok {
		s.CartID = cartID
		t.byToken[token] = s
	}
}

// Sweep evicts expired sessions and returns how many were removed.
func (t *SessionTable) Sweep() int {
	now := t.now()
	t.mu.Lock()
	defer t.mu.Unlock()
	n := 0
	for token, s := range t.byToken {
		if s.Live(now) {
			continue
		}
		delete(t.byToken, token)
		if t.byUser[s.UserID] == token {
			delete(t.byUser, s.UserID)
		}
		n++
	}
	return n
}

// Len returns the number of stored sessions, expired ones included.
func (t *SessionTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.byToken)
}

// userLocks serializes login and logout per user so one user never ends up
// with two sessions. An entry lives only while someone holds or waits for it.
type userLocks struct {
	mu    sync.Mutex
	locks map[id.UserID]*userLock
}

type userLock struct {
	sync.Mutex
	refs int
}

func (l *userLocks) lock(userID id.UserID) func() {
	l.mu.Lock()
	if l.locks == nil {
		l.locks = make(map[id.UserID]*userLock)
	}
	m, ok := l.locks[userID]
	if !ok {
		m = &userLock{}
		l.locks[userID] = m
	}
	m.refs++
	l.mu.Unlock()

	m.Lock()
	return func() {
		m.Unlock()
		l.mu.Lock()
		m.refs--
		if m.refs == 0 {
			delete(l.locks, userID)
		}
		l.mu.Unlock()
	}
}

func (l *userLocks) len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
