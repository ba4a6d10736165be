package thread

import (
	"bytes"
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// memRepo is an in-memory Repository for service tests. It mirrors the real
// store's ordering and matching rules.
type memRepo struct {
	mu      sync.Mutex
	threads map[uuid.UUID]*Thread
}

func newMemRepo() *memRepo {
	return &memRepo{threads: make(map[uuid.UUID]*Thread)}
}

func (m *memRepo) Insert(_ context.Context, t *Thread) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *t
	m.threads[t.ID] = &cp
	return nil
}

func (m *memRepo) Find(_ context.Context, board string, id uuid.UUID) (*Thread, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.threads[id]
	if !ok || t.Board != board {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (m *memRepo) FindByBoard(_ context.Context, board string, limit int) ([]*Thread, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*Thread
	for _, t := range m.threads {
		if t.Board == board {
			cp := *t
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].BumpedOn.Equal(out[j].BumpedOn) {
			return bytes.Compare(out[i].ID[:], out[j].ID[:]) > 0
		}
		return out[i].BumpedOn.After(out[j].BumpedOn)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memRepo) SetReported(_ context.Context, board string, id uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.threads[id]
	if !ok || t.Board != board {
		return false, nil
	}
	t.Reported = true
	t.BumpedOn = time.Now().UTC()
	return true, nil
}

func (m *memRepo) AppendReply(_ context.Context, board string, threadID uuid.UUID, reply *Reply) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.threads[threadID]
	if !ok || t.Board != board {
		return false, nil
	}
	t.Replies = append(t.Replies, *reply)
	t.BumpedOn = reply.CreatedOn
	return true, nil
}

func (m *memRepo) SetReplyReported(_ context.Context, board string, threadID, replyID uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.threads[threadID]
	if !ok || t.Board != board {
		return false, nil
	}
	now := time.Now().UTC()
	for i := range t.Replies {
		if t.Replies[i].ID == replyID {
			t.Replies[i].Reported = true
			t.Replies[i].BumpedOn = now
			t.BumpedOn = now
			return true, nil
		}
	}
	return false, nil
}

func (m *memRepo) RemoveReply(_ context.Context, board string, threadID, replyID uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.threads[threadID]
	if !ok || t.Board != board {
		return false, nil
	}
	for i := range t.Replies {
		if t.Replies[i].ID == replyID {
			t.Replies = append(t.Replies[:i], t.Replies[i+1:]...)
			t.BumpedOn = time.Now().UTC()
			return true, nil
		}
	}
	return false, nil
}

func (m *memRepo) Delete(_ context.Context, board string, id uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.threads[id]
	if !ok || t.Board != board {
		return false, nil
	}
	delete(m.threads, id)
	return true, nil
}
