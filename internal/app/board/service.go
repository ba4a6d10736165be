package board

import "context"

type Service interface {
	GetAllBoards(ctx context.Context) ([]*Summary, error)
	GetBoard(ctx context.Context, board string) (*Summary, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetAllBoards(ctx context.Context) ([]*Summary, error) {
	return s.repo.GetAllBoards(ctx)
}

func (s *service) GetBoard(ctx context.Context, board string) (*Summary, error) {
	return s.repo.GetBoard(ctx, board)
}
