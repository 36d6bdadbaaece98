//go:build integration

package sessioncart_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"polyglot/internal/backends/sessioncart"
	id "polyglot/pkg/domain"
	"polyglot/pkg/platform/sentinel"
	"polyglot/pkg/testutil/containers"
)

type RedisStoreSuite struct {
	suite.Suite
	redis *containers.RedisContainer
	store *sessioncart.RedisStore
}

func TestRedisStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisStoreSuite))
}

func (s *RedisStoreSuite) SetupSuite() {
	s.redis = containers.GetManager().GetRedis(s.T())
	s.store = sessioncart.NewRedis(s.redis.Client)
}

func (s *RedisStoreSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
}

func (s *RedisStoreSuite) TestSessionExpiresWithTTL() {
	ctx := context.Background()
	token, err := s.store.CreateSession(ctx, 7, time.Second)
	s.Require().NoError(err)

	ok, err := s.store.SessionExists(ctx, token)
	s.Require().NoError(err)
	s.True(ok)

	s.Eventually(func() bool {
		ok, err := s.store.SessionExists(ctx, token)
		return err == nil && !ok
	}, 5*time.Second, 100*time.Millisecond)

	active, err := s.store.UserHasSession(ctx, 7)
	s.Require().NoError(err)
	s.False(active)
}

func (s *RedisStoreSuite) TestNewSessionReplacesPrevious() {
	ctx := context.Background()
	first, err := s.store.CreateSession(ctx, 7, time.Minute)
	s.Require().NoError(err)
	second, err := s.store.CreateSession(ctx, 7, time.Minute)
	s.Require().NoError(err)
	s.NotEqual(first, second)

	ok, err := s.store.SessionExists(ctx, first)
	s.Require().NoError(err)
	s.False(ok)

	dropped, err := s.store.DropSession(ctx, 7)
	s.Require().NoError(err)
	s.True(dropped)
	dropped, err = s.store.DropSession(ctx, 7)
	s.Require().NoError(err)
	s.False(dropped)
}

func (s *RedisStoreSuite) TestCartNeverStoresNonPositive() {
	ctx := context.Background()
	_, err := s.store.UpdateCart(ctx, 7, 1, 1)
	s.ErrorIs(err, sentinel.ErrNotFound)

	_, err = s.store.CreateCart(ctx, 7)
	s.Require().NoError(err)

	cart, err := s.store.UpdateCart(ctx, 7, 1, 3)
	s.Require().NoError(err)
	s.Equal(id.Cart{1: 3}, cart)

	cart, err = s.store.UpdateCart(ctx, 7, 1, -3)
	s.Require().NoError(err)
	s.Empty(cart)

	cart, err = s.store.UpdateCart(ctx, 7, 2, -1)
	s.Require().NoError(err)
	s.Empty(cart)

	read, err := s.store.ReadCart(ctx, 7)
	s.Require().NoError(err)
	s.Empty(read)
}

func (s *RedisStoreSuite) TestResetCartIsAtomicSwap() {
	ctx := context.Background()
	oldID, err := s.store.CreateCart(ctx, 7)
	s.Require().NoError(err)
	_, err = s.store.UpdateCart(ctx, 7, 5, 2)
	s.Require().NoError(err)

	newID, err := s.store.ResetCart(ctx, 7)
	s.Require().NoError(err)
	s.NotEqual(oldID, newID)

	got, err := s.store.GetCart(ctx, 7)
	s.Require().NoError(err)
	s.Equal(newID, got)

	cart, err := s.store.ReadCart(ctx, 7)
	s.Require().NoError(err)
	s.Empty(cart)

	n, err := s.redis.Client.Exists(ctx, "cart:"+oldID.String()).Result()
	s.Require().NoError(err)
	s.Zero(n)
}

func (s *RedisStoreSuite) TestConcurrentUpdatesAreNotLost() {
	ctx := context.Background()
	_, err := s.store.CreateCart(ctx, 7)
	s.Require().NoError(err)

	const goroutines = 20
	var wg sync.WaitGroup
	var failures atomic.Int32
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.store.UpdateCart(ctx, 7, 9, 1); err != nil {
				failures.Add(1)
			}
		}()
	}
	wg.Wait()

	s.Zero(failures.Load())
	cart, err := s.store.ReadCart(ctx, 7)
	s.Require().NoError(err)
	s.Equal(goroutines, cart[9])
}

func (s *RedisStoreSuite) TestDeleteCart() {
	ctx := context.Background()
	deleted, err := s.store.DeleteCart(ctx, 7)
	s.Require().NoError(err)
	s.False(deleted)

	_, err = s.store.CreateCart(ctx, 7)
	s.Require().NoError(err)
	exists, err := s.store.CartExists(ctx, 7)
	s.Require().NoError(err)
	s.True(exists)

	deleted, err = s.store.DeleteCart(ctx, 7)
	s.Require().NoError(err)
	s.True(deleted)

	_, err = s.store.GetCart(ctx, 7)
	s.ErrorIs(err, sentinel.ErrNotFound)
}
