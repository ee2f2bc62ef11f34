package service

import (
	"fmt"

	"RoutineOK/internal/cache"
	"RoutineOK/internal/kv"
	"RoutineOK/internal/store"
)

// 进程内共享状态，所有入口（例程页、小组页、审批、排行）都经由同一份，
// 各自持有副本会导致小组/成员/例程三元组失联
var (
	routineStore = store.NewRoutineStore()
	pendingStore = store.NewPendingStore()
)

// countersForUser 按用户命名空间构造持久化计数器
func countersForUser(userID int64) *cache.Counters {
	return cache.NewCounters(kv.NewRedisStore(fmt.Sprintf("user:%d", userID)))
}
