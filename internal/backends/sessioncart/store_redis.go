package sessioncart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"polyglot/internal/backends"
	id "polyglot/pkg/domain"
	"polyglot/pkg/platform/sentinel"
)

const (
	storeName = "redis_sessioncart"

	// user:<id> is a hash holding the user's session_id and cart_id.
	userKeyPrefix    = "user:"
	sessionKeyPrefix = "session:"
	cartKeyPrefix    = "cart:"

	fieldSession = "session_id"
	fieldCart    = "cart_id"

	maxWatchRetries = 5
)

// updateCartScript applies a quantity delta and drops the entry when it
// reaches zero or below, then returns the whole cart. A user without a cart
// yields nil.
var updateCartScript = redis.NewScript(`
local cart = redis.call('HGET', KEYS[1], 'cart_id')
if not cart then
	return false
end
local key = 'cart:' .. cart
local qty = redis.call('HINCRBY', key, ARGV[1], ARGV[2])
if qty <= 0 then
	redis.call('HDEL', key, ARGV[1])
end
return redis.call('HGETALL', key)
`)

type sessionValue struct {
	UserID id.UserID `json:"user_id"`
}

// RedisStore keeps sessions and carts in Redis. Sessions expire through key
// TTLs; carts live until deleted or reset.
type RedisStore struct {
	client  *redis.Client
	newID   func() string
	retries int
}

// RedisStoreOption configures a RedisStore.
type RedisStoreOption func(*RedisStore)

// WithIDGenerator overrides the token and cart id generator.
func WithIDGenerator(fn func() string) RedisStoreOption {
	return func(s *RedisStore) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// NewRedis constructs a Redis-backed session and cart store.
func NewRedis(client *redis.Client, opts ...RedisStoreOption) *RedisStore {
	s := &RedisStore{
		client:  client,
		newID:   func() string { return id.NewSessionToken().String() },
		retries: maxWatchRetries,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

func userKey(userID id.UserID) string         { return userKeyPrefix + userID.String() }
func sessionKey(token id.SessionToken) string { return sessionKeyPrefix + token.String() }
func cartKey(cartID string) string            { return cartKeyPrefix + cartID }

// watchUser runs fn inside a WATCH on the user's hash, retrying when another
// writer touched the hash first.
func (s *RedisStore) watchUser(ctx context.Context, userID id.UserID, fn func(tx *redis.Tx) error) error {
	key := userKey(userID)
	for i := 0; i < s.retries; i++ {
		err := s.client.Watch(ctx, fn, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return err
	}
	return fmt.Errorf("user %d: %w", userID, sentinel.ErrConflict)
}

// CreateSession issues a token that expires after ttl and replaces any
// previous session of the user.
func (s *RedisStore) CreateSession(ctx context.Context, userID id.UserID, ttl time.Duration) (id.SessionToken, error) {
	defer backends.ObserveStore(storeName, "create_session")()

	payload, err := json.Marshal(sessionValue{UserID: userID})
	if err != nil {
		return "", fmt.Errorf("encode session: %w", err)
	}
	token := id.SessionToken(s.newID())
	err = s.watchUser(ctx, userID, func(tx *redis.Tx) error {
		old, err := tx.HGet(ctx, userKey(userID), fieldSession).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			if old != "" {
				pipe.Del(ctx, sessionKey(id.SessionToken(old)))
			}
			pipe.SetEx(ctx, sessionKey(token), payload, ttl)
			pipe.HSet(ctx, userKey(userID), fieldSession, token.String())
			return nil
		})
		return err
	})
	if err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}
	return token, nil
}

// DropSession removes the user's session. It reports false when the user
// has none.
func (s *RedisStore) DropSession(ctx context.Context, userID id.UserID) (bool, error) {
	defer backends.ObserveStore(storeName, "drop_session")()

	dropped := false
	err := s.watchUser(ctx, userID, func(tx *redis.Tx) error {
		token, err := tx.HGet(ctx, userKey(userID), fieldSession).Result()
		if errors.Is(err, redis.Nil) || token == "" {
			dropped = false
			return nil
		}
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Del(ctx, sessionKey(id.SessionToken(token)))
			pipe.HDel(ctx, userKey(userID), fieldSession)
			return nil
		})
		dropped = err == nil
		return err
	})
	if err != nil {
		return false, fmt.Errorf("drop session: %w", err)
	}
	return dropped, nil
}

// SessionExists reports whether the token is still live.
func (s *RedisStore) SessionExists(ctx context.Context, token id.SessionToken) (bool, error) {
	defer backends.ObserveStore(storeName, "session_exists")()

	n, err := s.client.Exists(ctx, sessionKey(token)).Result()
	if err != nil {
		return false, fmt.Errorf("session exists: %w", err)
	}
	return n > 0, nil
}

// UserHasSession reports whether the user's recorded session is still live.
func (s *RedisStore) UserHasSession(ctx context.Context, userID id.UserID) (bool, error) {
	defer backends.ObserveStore(storeName, "user_has_session")()

	token, err := s.client.HGet(ctx, userKey(userID), fieldSession).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load user session: %w", err)
	}
	return s.SessionExists(ctx, id.SessionToken(token))
}

// CreateCart gives the user a fresh empty cart, discarding any previous one.
func (s *RedisStore) CreateCart(ctx context.Context, userID id.UserID) (id.CartID, error) {
	defer backends.ObserveStore(storeName, "create_cart")()
	return s.replaceCart(ctx, userID)
}

// ResetCart atomically swaps the user's cart for a fresh empty one.
func (s *RedisStore) ResetCart(ctx context.Context, userID id.UserID) (id.CartID, error) {
	defer backends.ObserveStore(storeName, "reset_cart")()
	return s.replaceCart(ctx, userID)
}

func (s *RedisStore) replaceCart(ctx context.Context, userID id.UserID) (id.CartID, error) {
	cartID := id.CartID(s.newID())
	err := s.watchUser(ctx, userID, func(tx *redis.Tx) error {
		old, err := tx.HGet(ctx, userKey(userID), fieldCart).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			if old != "" {
				pipe.Del(ctx, cartKey(old))
			}
			pipe.HSet(ctx, userKey(userID), fieldCart, cartID.String())
			return nil
		})
		return err
	})
	if err != nil {
		return "", fmt.Errorf("replace cart: %w", err)
	}
	return cartID, nil
}

// DeleteCart removes the user's cart and its contents. It reports false when
// the user has no cart.
func (s *RedisStore) DeleteCart(ctx context.Context, userID id.UserID) (bool, error) {
	defer backends.ObserveStore(storeName, "delete_cart")()

	deleted := false
	err := s.watchUser(ctx, userID, func(tx *redis.Tx) error {
		cartID, err := tx.HGet(ctx, userKey(userID), fieldCart).Result()
		if errors.Is(err, redis.Nil) || cartID == "" {
			deleted = false
			return nil
		}
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Del(ctx, cartKey(cartID))
			pipe.HDel(ctx, userKey(userID), fieldCart)
			return nil
		})
		deleted = err == nil
		return err
	})
	if err != nil {
		return false, fmt.Errorf("delete cart: %w", err)
	}
	return deleted, nil
}

// GetCart returns the user's cart handle, or sentinel.ErrNotFound.
func (s *RedisStore) GetCart(ctx context.Context, userID id.UserID) (id.CartID, error) {
	defer backends.ObserveStore(storeName, "get_cart")()

	cartID, err := s.client.HGet(ctx, userKey(userID), fieldCart).Result()
	if errors.Is(err, redis.Nil) {
		return "", sentinel.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get cart: %w", err)
	}
	return id.CartID(cartID), nil
}

// CartExists reports whether the user has a cart handle.
func (s *RedisStore) CartExists(ctx context.Context, userID id.UserID) (bool, error) {
	defer backends.ObserveStore(storeName, "cart_exists")()

	ok, err := s.client.HExists(ctx, userKey(userID), fieldCart).Result()
	if err != nil {
		return false, fmt.Errorf("cart exists: %w", err)
	}
	return ok, nil
}

// UpdateCart adds delta to the product's quantity and returns the cart. A
// user without a cart is sentinel.ErrNotFound.
func (s *RedisStore) UpdateCart(ctx context.Context, userID id.UserID, productID id.ProductID, delta int) (id.Cart, error) {
	defer backends.ObserveStore(storeName, "update_cart")()

	raw, err := updateCartScript.Run(ctx, s.client, []string{userKey(userID)}, productID.String(), delta).StringSlice()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("user %d has no cart: %w", userID, sentinel.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("update cart: %w", err)
	}
	if len(raw)%2 != 0 {
		return nil, fmt.Errorf("update cart: odd reply length %d", len(raw))
	}
	fields := make(map[string]string, len(raw)/2)
	for i := 0; i < len(raw); i += 2 {
		fields[raw[i]] = raw[i+1]
	}
	return parseCart(fields)
}

// ReadCart returns the user's cart contents. A user without a cart reads as
// an empty cart.
func (s *RedisStore) ReadCart(ctx context.Context, userID id.UserID) (id.Cart, error) {
	defer backends.ObserveStore(storeName, "read_cart")()

	cartID, err := s.client.HGet(ctx, userKey(userID), fieldCart).Result()
	if errors.Is(err, redis.Nil) {
		return id.Cart{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read cart handle: %w", err)
	}
	fields, err := s.client.HGetAll(ctx, cartKey(cartID)).Result()
	if err != nil {
		return nil, fmt.Errorf("read cart: %w", err)
	}
	return parseCart(fields)
}

func parseCart(fields map[string]string) (id.Cart, error) {
	cart := make(id.Cart, len(fields))
	for k, v := range fields {
		productID, err := id.ParseProductID(k)
		if err != nil {
			return nil, fmt.Errorf("cart field %q: %w", k, err)
		}
		qty, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("cart quantity %q: %w", v, err)
		}
		if qty > 0 {
			cart[productID] = qty
		}
	}
	return cart, nil
}
