package usecase

import (
	"context"

	"libraryapi/internal/entity"
)

type GenreRepository interface {
	List(ctx context.Context) ([]entity.Genre, error)
	GetByID(ctx context.Context, id string) (entity.Genre, error)
	Create(ctx context.Context, g *entity.Genre) error
	Update(ctx context.Context, g *entity.Genre) error
	Delete(ctx context.Context, id string) error
}
