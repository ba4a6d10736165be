package reply

import (
	"context"
	"fmt"
	"time"

	"anonboard/internal/app/thread"
	"anonboard/internal/crypto"
	"anonboard/internal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	CreateReply(ctx context.Context, board string, threadID uuid.UUID, text, deletePassword string) (*thread.Reply, error)
	FetchThread(ctx context.Context, board string, threadID uuid.UUID) (*thread.Detail, error)
	ReportReply(ctx context.Context, board string, threadID, replyID uuid.UUID) error
	DeleteReply(ctx context.Context, board string, threadID, replyID uuid.UUID, deletePassword string) error
}

type service struct {
	threadSvc thread.Service
	eventBus  *utils.EventBus
	logger    *zap.SugaredLogger
}

func NewService(threadSvc thread.Service, eventBus *utils.EventBus, logger *zap.Logger) Service {
	return &service{
		threadSvc: threadSvc,
		eventBus:  eventBus,
		logger:    logger.Sugar(),
	}
}

func (s *service) CreateReply(ctx context.Context, board string, threadID uuid.UUID, text, deletePassword string) (*thread.Reply, error) {
	if text == "" || deletePassword == "" {
		return nil, thread.ErrValidation
	}

	hash, err := crypto.HashPassword(deletePassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash delete password: %w", err)
	}

	now := time.Now().UTC()
	r := &thread.Reply{
		ID:                 uuid.New(),
		Text:               text,
		DeletePasswordHash: hash,
		CreatedOn:          now,
		BumpedOn:           now,
	}

	found, err := s.threadSvc.Repo().AppendReply(ctx, board, threadID, r)
	if err != nil {
		return nil, fmt.Errorf("failed to append reply: %w", err)
	}
	if !found {
		return nil, thread.ErrNotFound
	}

	s.threadSvc.InvalidateBoardCache(board)
	s.eventBus.Publish("reply_created", map[string]interface{}{
		"board":     board,
		"thread_id": threadID.String(),
		"reply_id":  r.ID.String(),
	})
	s.logger.Debugw("Reply appended", "board", board, "thread_id", threadID.String(), "reply_id", r.ID.String())
	return r, nil
}

func (s *service) FetchThread(ctx context.Context, board string, threadID uuid.UUID) (*thread.Detail, error) {
	t, err := s.threadSvc.Repo().Find(ctx, board, threadID)
	if err != nil {
		return nil, fmt.Errorf("failed to load thread: %w", err)
	}
	if t == nil {
		return nil, thread.ErrNotFound
	}

	replies := make([]thread.ReplyPreview, 0, len(t.Replies))
	for _, r := range t.Replies {
		replies = append(replies, thread.ReplyPreview{
			ID:        r.ID,
			Text:      r.Text,
			CreatedOn: r.CreatedOn,
		})
	}

	return &thread.Detail{
		ID:        t.ID,
		Text:      t.Text,
		CreatedOn: t.CreatedOn,
		BumpedOn:  t.BumpedOn,
		Replies:   replies,
	}, nil
}

func (s *service) ReportReply(ctx context.Context, board string, threadID, replyID uuid.UUID) error {
	found, err := s.threadSvc.Repo().SetReplyReported(ctx, board, threadID, replyID)
	if err != nil {
		return fmt.Errorf("failed to report reply: %w", err)
	}
	if !found {
		return thread.ErrNotFound
	}

	s.threadSvc.InvalidateBoardCache(board)
	s.eventBus.Publish("reply_reported", map[string]interface{}{
		"board":     board,
		"thread_id": threadID.String(),
		"reply_id":  replyID.String(),
	})
	return nil
}

func (s *service) DeleteReply(ctx context.Context, board string, threadID, replyID uuid.UUID, deletePassword string) error {
	t, err := s.threadSvc.Repo().Find(ctx, board, threadID)
	if err != nil {
		return fmt.Errorf("failed to load thread: %w", err)
	}
	if t == nil {
		return thread.ErrNotFound
	}

	var target *thread.Reply
	for i := range t.Replies {
		if t.Replies[i].ID == replyID {
			target = &t.Replies[i]
			break
		}
	}
	if target == nil {
		return thread.ErrNotFound
	}
	if !crypto.CheckPassword(deletePassword, target.DeletePasswordHash) {
		return thread.ErrWrongPassword
	}

	found, err := s.threadSvc.Repo().RemoveReply(ctx, board, threadID, replyID)
	if err != nil {
		return fmt.Errorf("failed to delete reply: %w", err)
	}
	if !found {
		return thread.ErrNotFound
	}

	s.threadSvc.InvalidateBoardCache(board)
	s.eventBus.Publish("reply_deleted", map[string]interface{}{
		"board":     board,
		"thread_id": threadID.String(),
		"reply_id":  replyID.String(),
	})
	return nil
}
