package service

import (
	"context"

	"github.com/Alianda23/art-exhibit-hub-01/internal/domain"
	"github.com/Alianda23/art-exhibit-hub-01/internal/service/ports"
)

type ExhibitionService struct {
	repo ports.ExhibitionRepo
}

func NewExhibitionService(repo ports.ExhibitionRepo) *ExhibitionService {
	return &ExhibitionService{repo: repo}
}

func (s *ExhibitionService) GetByID(ctx context.Context, id string) (*domain.Exhibition, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ExhibitionService) List(ctx context.Context) ([]*domain.Exhibition, error) {
	return s.repo.List(ctx)
}
