package thread

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository is the board store: thread documents keyed by (board, id),
// replies embedded in the row. Every mutation of a thread, including
// reply-level ones, refreshes the thread's bumped_on; reply-level mutations
// additionally refresh the reply's own bumped_on. Nested reply updates run
// inside a transaction holding FOR UPDATE on the parent row, so concurrent
// writers to the same thread never lose each other's changes.
type Repository interface {
	Insert(ctx context.Context, t *Thread) error
	Find(ctx context.Context, board string, id uuid.UUID) (*Thread, error)
	FindByBoard(ctx context.Context, board string, limit int) ([]*Thread, error)
	SetReported(ctx context.Context, board string, id uuid.UUID) (bool, error)
	AppendReply(ctx context.Context, board string, threadID uuid.UUID, reply *Reply) (bool, error)
	SetReplyReported(ctx context.Context, board string, threadID, replyID uuid.UUID) (bool, error)
	RemoveReply(ctx context.Context, board string, threadID, replyID uuid.UUID) (bool, error)
	Delete(ctx context.Context, board string, id uuid.UUID) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Insert(ctx context.Context, t *Thread) error {
	return r.db.WithContext(ctx).Create(t).Error
}

// Find returns (nil, nil) when no thread matches (board, id).
func (r *repository) Find(ctx context.Context, board string, id uuid.UUID) (*Thread, error) {
	var t Thread
	err := r.db.WithContext(ctx).
		Where("board = ? AND id = ?", board, id).
		First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// FindByBoard lists threads most recently bumped first. Ties break on id so
// the ordering stays stable across requests.
func (r *repository) FindByBoard(ctx context.Context, board string, limit int) ([]*Thread, error) {
	var threads []*Thread
	err := r.db.WithContext(ctx).
		Where("board = ?", board).
		Order("bumped_on DESC, id DESC").
		Limit(limit).
		Find(&threads).Error
	return threads, err
}

func (r *repository) SetReported(ctx context.Context, board string, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&Thread{}).
		Where("board = ? AND id = ?", board, id).
		Updates(map[string]interface{}{
			"reported":  true,
			"bumped_on": time.Now().UTC(),
		})
	return res.RowsAffected > 0, res.Error
}

func (r *repository) AppendReply(ctx context.Context, board string, threadID uuid.UUID, reply *Reply) (bool, error) {
	return r.mutateReplies(ctx, board, threadID, reply.CreatedOn, func(replies []Reply) ([]Reply, bool) {
		return append(replies, *reply), true
	})
}

func (r *repository) SetReplyReported(ctx context.Context, board string, threadID, replyID uuid.UUID) (bool, error) {
	now := time.Now().UTC()
	return r.mutateReplies(ctx, board, threadID, now, func(replies []Reply) ([]Reply, bool) {
		for i := range replies {
			if replies[i].ID == replyID {
				replies[i].Reported = true
				replies[i].BumpedOn = now
				return replies, true
			}
		}
		return replies, false
	})
}

func (r *repository) RemoveReply(ctx context.Context, board string, threadID, replyID uuid.UUID) (bool, error) {
	return r.mutateReplies(ctx, board, threadID, time.Now().UTC(), func(replies []Reply) ([]Reply, bool) {
		for i := range replies {
			if replies[i].ID == replyID {
				return append(replies[:i], replies[i+1:]...), true
			}
		}
		return replies, false
	})
}

func (r *repository) Delete(ctx context.Context, board string, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("board = ? AND id = ?", board, id).
		Delete(&Thread{})
	return res.RowsAffected > 0, res.Error
}

// mutateReplies loads the thread row under FOR UPDATE, applies mutate to the
// embedded replies, and writes the column back together with the thread's
// bumped_on. It reports whether mutate matched.
func (r *repository) mutateReplies(
	ctx context.Context,
	board string,
	threadID uuid.UUID,
	bumpedOn time.Time,
	mutate func([]Reply) ([]Reply, bool),
) (bool, error) {
	matched := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var t Thread
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("board = ? AND id = ?", board, threadID).
			First(&t).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		replies, ok := mutate([]Reply(t.Replies))
		if !ok {
			return nil
		}
		matched = true

		return tx.Model(&Thread{}).
			Where("board = ? AND id = ?", board, threadID).
			Updates(map[string]interface{}{
				"replies":   datatypes.NewJSONSlice(replies),
				"bumped_on": bumpedOn,
			}).Error
	})
	return matched, err
}
