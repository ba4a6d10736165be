package seeder

import (
	"time"

	"anonboard/internal/app/thread"
	"anonboard/internal/crypto"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Seeder fills an empty database with demo boards for local development.
// Delete passwords are stored hashed, same as real posts; the plaintext for
// every seeded post is "password".
type Seeder struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewSeeder(db *gorm.DB, logger *zap.Logger) *Seeder {
	return &Seeder{
		db:     db,
		logger: logger,
	}
}

func (s *Seeder) Seed() error {
	s.logger.Info("Running database seeders...")

	if err := s.seedThreads(); err != nil {
		return err
	}

	s.logger.Info("Database seeders completed successfully")
	return nil
}

func (s *Seeder) seedThreads() error {
	var count int64
	s.db.Model(&thread.Thread{}).Count(&count)
	if count > 0 {
		s.logger.Info("Threads already exist, skipping seed")
		return nil
	}

	hash, err := crypto.HashPassword("password")
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	threads := []thread.Thread{
		newThread("b", "Welcome to /b/", hash, now.Add(-48*time.Hour), []thread.Reply{
			newReply("First!", hash, now.Add(-47*time.Hour)),
			newReply("Obligatory second post", hash, now.Add(-46*time.Hour)),
		}),
		newThread("prog", "What are you building this weekend?", hash, now.Add(-24*time.Hour), []thread.Reply{
			newReply("A message board, apparently", hash, now.Add(-23*time.Hour)),
		}),
		newThread("mu", "Album of the year so far?", hash, now.Add(-2*time.Hour), nil),
	}

	if err := s.db.Create(&threads).Error; err != nil {
		return err
	}

	s.logger.Info("Seeded threads", zap.Int("count", len(threads)))
	return nil
}

func newThread(board, text, hash string, createdOn time.Time, replies []thread.Reply) thread.Thread {
	bumpedOn := createdOn
	if len(replies) > 0 {
		bumpedOn = replies[len(replies)-1].CreatedOn
	}
	if replies == nil {
		replies = []thread.Reply{}
	}
	return thread.Thread{
		ID:                 uuid.New(),
		Board:              board,
		Text:               text,
		DeletePasswordHash: hash,
		Replies:            replies,
		CreatedOn:          createdOn,
		BumpedOn:           bumpedOn,
	}
}

func newReply(text, hash string, createdOn time.Time) thread.Reply {
	return thread.Reply{
		ID:                 uuid.New(),
		Text:               text,
		DeletePasswordHash: hash,
		CreatedOn:          createdOn,
		BumpedOn:           createdOn,
	}
}
