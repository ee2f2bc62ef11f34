package store

import (
	"sync"

	"RoutineOK/internal/model"
)

// PendingStore 小组 ID → 待审凭证队列
// 队列只追加，出队只发生在审批通过/驳回时；插入顺序即提交顺序
type PendingStore struct {
	mu     sync.RWMutex
	queues map[int64][]*model.ProofSubmission
}

func NewPendingStore() *PendingStore {
	return &PendingStore{queues: make(map[int64][]*model.ProofSubmission)}
}

// Submit 追加一条凭证
func (s *PendingStore) Submit(groupID int64, proof *model.ProofSubmission) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.queues[groupID] = append(s.queues[groupID], proof)
}

// List 返回该小组待审队列的副本
func (s *PendingStore) List(groupID int64) []*model.ProofSubmission {
	s.mu.RLock()
	defer s.mu.RUnlock()

	queue := s.queues[groupID]
	out := make([]*model.ProofSubmission, len(queue))
	copy(out, queue)
	return out
}

// Len 该小组待审队列长度
func (s *PendingStore) Len(groupID int64) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.queues[groupID])
}

// Peek 查找但不移除
func (s *PendingStore) Peek(groupID, proofID int64) (*model.ProofSubmission, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.queues[groupID] {
		if p.ID == proofID {
			return p, true
		}
	}
	return nil, false
}

// Remove 移除恰好一条，返回被移除的凭证；不存在时返回 false
func (s *PendingStore) Remove(groupID, proofID int64) (*model.ProofSubmission, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	queue := s.queues[groupID]
	for i, p := range queue {
		if p.ID == proofID {
			s.queues[groupID] = append(queue[:i], queue[i+1:]...)
			return p, true
		}
	}
	return nil, false
}
