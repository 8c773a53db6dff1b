package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"server/internal/domain"
)

// RecipeRepositoryPG implements domain.RecipeRepository.
type RecipeRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewRecipeRepository creates a recipe repository backed by PostgreSQL.
func NewRecipeRepository(pool *pgxpool.Pool) *RecipeRepositoryPG {
	return &RecipeRepositoryPG{pool: pool}
}

// GetByID fetches a stored recipe source.
func (r *RecipeRepositoryPG) GetByID(ctx context.Context, id string) (*domain.Recipe, error) {
	query := `
SELECT id, title, data, created_at
FROM recipes
WHERE id = $1;
`
	var rec domain.Recipe
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&rec.ID,
		&rec.Title,
		&rec.DataJSON,
		&rec.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

// Create inserts a new recipe source.
func (r *RecipeRepositoryPG) Create(ctx context.Context, recipe *domain.Recipe) error {
	query := `
INSERT INTO recipes (title, data)
VALUES ($1, $2)
RETURNING id, created_at;
`
	return r.pool.QueryRow(ctx, query, recipe.Title, recipe.DataJSON).
		Scan(&recipe.ID, &recipe.CreatedAt)
}

var _ domain.RecipeRepository = (*RecipeRepositoryPG)(nil)
