package board

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	GetAllBoards(ctx context.Context) ([]*Summary, error)
	GetBoard(ctx context.Context, board string) (*Summary, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetAllBoards(ctx context.Context) ([]*Summary, error) {
	var boards []*Summary
	err := r.db.WithContext(ctx).
		Table("threads").
		Select("board, COUNT(*) AS threads, MAX(bumped_on) AS bumped_on").
		Group("board").
		Order("board ASC").
		Find(&boards).Error
	return boards, err
}

func (r *repository) GetBoard(ctx context.Context, board string) (*Summary, error) {
	var summary Summary
	err := r.db.WithContext(ctx).
		Table("threads").
		Select("board, COUNT(*) AS threads, MAX(bumped_on) AS bumped_on").
		Where("board = ?", board).
		Group("board").
		First(&summary).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &summary, nil
}
