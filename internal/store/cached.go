// File: internal/store/cached.go
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"user-consent/internal/cache"
	"user-consent/internal/model"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Cached 對 Get 做 cache-aside；Update 與 Delete 成功後移除對應 key。
// 快取錯誤只記錄並退回內層 store；其他 process 的寫入最多落後 ttl。
type Cached struct {
	inner UserStore
	cache cache.Cache
	ttl   time.Duration
	log   logrus.FieldLogger

	// gens 依 id 分槽的失效計數；讀取期間計數改變就不回填
	mu   sync.Mutex
	gens [64]uint64
}

func NewCached(inner UserStore, c cache.Cache, ttl time.Duration, log logrus.FieldLogger) *Cached {
	return &Cached{inner: inner, cache: c, ttl: ttl, log: log}
}

func userKey(id int) string {
	return fmt.Sprintf("user:%d", id)
}

func (s *Cached) List(ctx context.Context) ([]*model.User, error) {
	return s.inner.List(ctx)
}

func (s *Cached) Get(ctx context.Context, id int) (*model.User, error) {
	key := userKey(id)
	raw, err := s.cache.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var r model.Record
		if err := json.Unmarshal(raw, &r); err == nil {
			return model.FromRecord(r), nil
		}
		s.log.WithField("key", key).Warn("discarding malformed cache entry")
	case !errors.Is(err, redis.Nil):
		s.log.WithError(err).WithField("key", key).Warn("cache get failed")
	}

	gen := s.generation(id)
	u, err := s.inner.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	s.fill(ctx, id, gen, u)
	return u, nil
}

func (s *Cached) generation(id int) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gens[slot(id)]
}

// fill 回填快取。Set 與失效計數的檢查在同一把鎖內，
// 否則讀取期間被刪除（例如撤回同意）的使用者會被寫回快取。
func (s *Cached) fill(ctx context.Context, id int, gen uint64, u *model.User) {
	raw, err := json.Marshal(u.Record())
	if err != nil {
		return
	}
	key := userKey(id)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gens[slot(id)] != gen {
		s.log.WithField("key", key).Debug("skip cache fill after concurrent invalidation")
		return
	}
	if err := s.cache.Set(ctx, key, raw, s.ttl).Err(); err != nil {
		s.log.WithError(err).WithField("key", key).Warn("cache set failed")
	}
}

func slot(id int) int {
	return int(uint(id) % 64)
}

func (s *Cached) Create(ctx context.Context, u *model.User) error {
	return s.inner.Create(ctx, u)
}

func (s *Cached) Update(ctx context.Context, u *model.User) error {
	if err := s.inner.Update(ctx, u); err != nil {
		return err
	}
	s.invalidate(ctx, u.ID())
	return nil
}

func (s *Cached) Delete(ctx context.Context, id int) error {
	if err := s.inner.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

// Ping 同時檢查資料庫與快取
func (s *Cached) Ping(ctx context.Context) error {
	if err := s.inner.Ping(ctx); err != nil {
		return err
	}
	if err := s.cache.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("cache ping: %w", err)
	}
	return nil
}

func (s *Cached) invalidate(ctx context.Context, id int) {
	s.mu.Lock()
	s.gens[slot(id)]++
	s.mu.Unlock()

	if err := s.cache.Del(ctx, userKey(id)).Err(); err != nil {
		s.log.WithError(err).WithField("user_id", id).Warn("cache invalidation failed")
	}
}
