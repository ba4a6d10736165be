package thread

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"anonboard/internal/crypto"
	"anonboard/internal/providers/redis"
	"anonboard/internal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// ListLimit caps how many threads a board listing returns.
	ListLimit = 10
	// ReplyPreviewLimit caps how many of a thread's newest replies the
	// board listing embeds per thread.
	ReplyPreviewLimit = 3
)

type Service interface {
	CreateThread(ctx context.Context, board, text, deletePassword string) (*Thread, error)
	ListThreads(ctx context.Context, board string) ([]*ListItem, error)
	ReportThread(ctx context.Context, board string, id uuid.UUID) error
	DeleteThread(ctx context.Context, board string, id uuid.UUID, deletePassword string) error

	// Repo exposes the board store to sibling features (replies live in the
	// same documents). InvalidateBoardCache lets them drop this board's
	// cached listing after a mutation of their own.
	Repo() Repository
	InvalidateBoardCache(board string)
}

type service struct {
	repo        Repository
	redisP      *redis.RedisProvider
	eventBus    *utils.EventBus
	logger      *zap.SugaredLogger
	cachePrefix string
	cacheTTL    time.Duration
}

func NewService(
	repo Repository,
	redisP *redis.RedisProvider,
	eventBus *utils.EventBus,
	logger *zap.Logger,
	cacheTTL time.Duration,
) Service {
	return &service{
		repo:        repo,
		redisP:      redisP,
		eventBus:    eventBus,
		logger:      logger.Sugar(),
		cachePrefix: "threads:board",
		cacheTTL:    cacheTTL,
	}
}

func (s *service) Repo() Repository {
	return s.repo
}

func (s *service) CreateThread(ctx context.Context, board, text, deletePassword string) (*Thread, error) {
	if board == "" || text == "" || deletePassword == "" {
		return nil, ErrValidation
	}

	hash, err := crypto.HashPassword(deletePassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash delete password: %w", err)
	}

	now := time.Now().UTC()
	t := &Thread{
		ID:                 uuid.New(),
		Board:              board,
		Text:               text,
		DeletePasswordHash: hash,
		Replies:            []Reply{},
		CreatedOn:          now,
		BumpedOn:           now,
	}
	if err := s.repo.Insert(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to create thread: %w", err)
	}

	s.InvalidateBoardCache(board)
	s.eventBus.Publish("thread_created", map[string]interface{}{
		"board":     board,
		"thread_id": t.ID.String(),
	})
	return t, nil
}

func (s *service) ListThreads(ctx context.Context, board string) ([]*ListItem, error) {
	cacheKey := fmt.Sprintf("%s:%s", s.cachePrefix, board)

	if s.redisP != nil {
		cached, err := s.redisP.Get(ctx, cacheKey).Result()
		if err == nil && cached != "" {
			var items []*ListItem
			if json.Unmarshal([]byte(cached), &items) == nil {
				return items, nil
			}
		}
	}

	threads, err := s.repo.FindByBoard(ctx, board, ListLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list threads: %w", err)
	}

	items := make([]*ListItem, 0, len(threads))
	for _, t := range threads {
		items = append(items, &ListItem{
			ID:        t.ID,
			Text:      t.Text,
			CreatedOn: t.CreatedOn,
			BumpedOn:  t.BumpedOn,
			Replies:   previewReplies(t.Replies, ReplyPreviewLimit),
		})
	}

	if s.redisP != nil && len(items) > 0 {
		data, err := json.Marshal(items)
		if err == nil {
			s.redisP.SetEX(ctx, cacheKey, data, s.cacheTTL)
		}
	}
	return items, nil
}

func (s *service) ReportThread(ctx context.Context, board string, id uuid.UUID) error {
	found, err := s.repo.SetReported(ctx, board, id)
	if err != nil {
		return fmt.Errorf("failed to report thread: %w", err)
	}
	if !found {
		return ErrNotFound
	}

	s.InvalidateBoardCache(board)
	s.eventBus.Publish("thread_reported", map[string]interface{}{
		"board":     board,
		"thread_id": id.String(),
	})
	return nil
}

func (s *service) DeleteThread(ctx context.Context, board string, id uuid.UUID, deletePassword string) error {
	t, err := s.repo.Find(ctx, board, id)
	if err != nil {
		return fmt.Errorf("failed to load thread: %w", err)
	}
	if t == nil {
		return ErrNotFound
	}
	if !crypto.CheckPassword(deletePassword, t.DeletePasswordHash) {
		return ErrWrongPassword
	}

	found, err := s.repo.Delete(ctx, board, id)
	if err != nil {
		return fmt.Errorf("failed to delete thread: %w", err)
	}
	if !found {
		return ErrNotFound
	}

	s.InvalidateBoardCache(board)
	s.eventBus.Publish("thread_deleted", map[string]interface{}{
		"board":     board,
		"thread_id": id.String(),
	})
	return nil
}

func (s *service) InvalidateBoardCache(board string) {
	if s.redisP == nil {
		return
	}
	cacheKey := fmt.Sprintf("%s:%s", s.cachePrefix, board)
	if err := s.redisP.Del(context.Background(), cacheKey).Err(); err != nil {
		s.logger.Warnw("Failed to invalidate board cache", "board", board, "error", err)
	}
}

// previewReplies projects the newest replies (by creation time, newest
// first) into the redacted client shape. Creation order, not bump order,
// decides the preview.
func previewReplies(replies []Reply, limit int) []ReplyPreview {
	sorted := make([]Reply, len(replies))
	copy(sorted, replies)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].CreatedOn.Equal(sorted[j].CreatedOn) {
			return bytes.Compare(sorted[i].ID[:], sorted[j].ID[:]) > 0
		}
		return sorted[i].CreatedOn.After(sorted[j].CreatedOn)
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}

	previews := make([]ReplyPreview, 0, len(sorted))
	for _, r := range sorted {
		previews = append(previews, ReplyPreview{
			ID:        r.ID,
			Text:      r.Text,
			CreatedOn: r.CreatedOn,
		})
	}
	return previews
}
