package service

import (
	"os"
	"sync"
	"testing"

	"go.uber.org/zap"

	"RoutineOK/internal/cache"
	"RoutineOK/internal/kv"
	"RoutineOK/pkg/logger"
	"RoutineOK/pkg/snowflake"
)

func TestMain(m *testing.M) {
	logger.Logger = zap.NewNop()
	if err := snowflake.Init(1, 1); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// memSessions 基于进程内存储的状态机实例，发布钩子默认为 nil
func memSessions() *SessionService {
	var mu sync.Mutex
	stores := make(map[int64]*cache.Counters)

	return newSessionService(func(userID int64) *cache.Counters {
		mu.Lock()
		defer mu.Unlock()

		c, ok := stores[userID]
		if !ok {
			c = cache.NewCounters(kv.NewMemoryStore())
			stores[userID] = c
		}
		return c
	})
}
