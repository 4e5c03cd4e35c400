package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/zdenekh/club-fines/internal/domain/player"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) ListByCategory(ctx context.Context, categoryID string) ([]player.Player, error) {
	const query = `
		SELECT id, category_id, name, role, email, created_at, updated_at, deleted_at
		FROM players
		WHERE category_id = $1 AND deleted_at IS NULL
		ORDER BY name`

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, categoryID); err != nil {
		return nil, crerr.Wrap(err, "select players by category")
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerFromRow(row))
	}

	return out, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (player.Player, bool, error) {
	const query = `
		SELECT id, category_id, name, role, email, created_at, updated_at, deleted_at
		FROM players
		WHERE id = $1 AND deleted_at IS NULL`

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, playerID); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, crerr.Wrap(err, "get player by id")
	}

	return playerFromRow(row), true, nil
}

func (r *PlayerRepository) GetByIDs(ctx context.Context, categoryID string, playerIDs []string) ([]player.Player, error) {
	const query = `
		SELECT id, category_id, name, role, email, created_at, updated_at, deleted_at
		FROM players
		WHERE category_id = $1 AND id = ANY($2) AND deleted_at IS NULL`

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, categoryID, pq.Array(playerIDs)); err != nil {
		return nil, crerr.Wrap(err, "select players by ids")
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerFromRow(row))
	}

	return out, nil
}

func (r *PlayerRepository) Create(ctx context.Context, item player.Player) error {
	const query = `
		INSERT INTO players (id, category_id, name, role, email)
		VALUES ($1, $2, $3, $4, $5)`

	if _, err := r.db.ExecContext(ctx, query,
		item.ID, item.CategoryID, item.Name, string(item.Role), item.Email,
	); err != nil {
		return crerr.Wrap(err, "insert player")
	}

	return nil
}

func (r *PlayerRepository) Update(ctx context.Context, item player.Player) error {
	const query = `
		UPDATE players
		SET name = $2, role = $3, email = $4, updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL`

	if _, err := r.db.ExecContext(ctx, query,
		item.ID, item.Name, string(item.Role), item.Email,
	); err != nil {
		return crerr.Wrap(err, "update player")
	}

	return nil
}

func (r *PlayerRepository) Delete(ctx context.Context, playerID string) error {
	const query = `
		UPDATE players
		SET deleted_at = now(), updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL`

	if _, err := r.db.ExecContext(ctx, query, playerID); err != nil {
		return crerr.Wrap(err, "delete player")
	}

	return nil
}

func playerFromRow(row playerTableModel) player.Player {
	return player.Player{
		ID:         row.ID,
		CategoryID: row.CategoryID,
		Name:       row.Name,
		Role:       player.Role(row.Role),
		Email:      row.Email,
	}
}
