package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"server/internal/domain"
)

// BlueprintRepositoryPG implements domain.BlueprintRepository.
type BlueprintRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewBlueprintRepository creates a blueprint repository backed by PostgreSQL.
func NewBlueprintRepository(pool *pgxpool.Pool) *BlueprintRepositoryPG {
	return &BlueprintRepositoryPG{pool: pool}
}

const blueprintColumns = `id, name, kind, description, input_schema, output_schema, defaults, created_at`

// GetByID fetches a blueprint by its identifier.
func (r *BlueprintRepositoryPG) GetByID(ctx context.Context, id string) (*domain.Blueprint, error) {
	query := fmt.Sprintf(`
SELECT %s
FROM blueprints
WHERE id = $1;
`, blueprintColumns)
	return scanBlueprint(r.pool.QueryRow(ctx, query, id))
}

// GetByKind fetches a blueprint by its unique kind tag.
func (r *BlueprintRepositoryPG) GetByKind(ctx context.Context, kind domain.BlueprintKind) (*domain.Blueprint, error) {
	query := fmt.Sprintf(`
SELECT %s
FROM blueprints
WHERE kind = $1;
`, blueprintColumns)
	return scanBlueprint(r.pool.QueryRow(ctx, query, string(kind)))
}

// List returns every seeded blueprint ordered by name.
func (r *BlueprintRepositoryPG) List(ctx context.Context) ([]domain.Blueprint, error) {
	query := fmt.Sprintf(`
SELECT %s
FROM blueprints
ORDER BY name;
`, blueprintColumns)
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []domain.Blueprint
	for rows.Next() {
		bp, err := scanBlueprintRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *bp)
	}
	return out, rows.Err()
}

// SeedDefaults inserts definitions whose kind is not yet present and reports
// how many rows were added. Existing kinds are left untouched.
func (r *BlueprintRepositoryPG) SeedDefaults(ctx context.Context, defs []domain.Blueprint) (int, error) {
	query := `
INSERT INTO blueprints (name, kind, description, input_schema, output_schema, defaults)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (kind) DO NOTHING;
`
	inserted := 0
	for _, def := range defs {
		inputSchema, err := json.Marshal(def.InputSchema)
		if err != nil {
			return inserted, err
		}
		outputSchema, err := json.Marshal(def.OutputSchema)
		if err != nil {
			return inserted, err
		}
		defaults, err := json.Marshal(def.Defaults)
		if err != nil {
			return inserted, err
		}
		tag, err := r.pool.Exec(ctx, query,
			def.Name,
			string(def.Kind),
			def.Description,
			inputSchema,
			outputSchema,
			defaults,
		)
		if err != nil {
			return inserted, err
		}
		inserted += int(tag.RowsAffected())
	}
	return inserted, nil
}

func scanBlueprint(row pgx.Row) (*domain.Blueprint, error) {
	bp, err := scanBlueprintRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return bp, nil
}

func scanBlueprintRow(row pgx.Row) (*domain.Blueprint, error) {
	var bp domain.Blueprint
	var kind string
	var inputSchema, outputSchema, defaults []byte
	if err := row.Scan(
		&bp.ID,
		&bp.Name,
		&kind,
		&bp.Description,
		&inputSchema,
		&outputSchema,
		&defaults,
		&bp.CreatedAt,
	); err != nil {
		return nil, err
	}
	bp.Kind = domain.BlueprintKind(kind)
	if err := json.Unmarshal(inputSchema, &bp.InputSchema); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(outputSchema, &bp.OutputSchema); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(defaults, &bp.Defaults); err != nil {
		return nil, err
	}
	return &bp, nil
}

var _ domain.BlueprintRepository = (*BlueprintRepositoryPG)(nil)
