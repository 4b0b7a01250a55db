package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"menu-planner/internal/logger"
	"menu-planner/internal/model"
)

// SQLiteStore is the LocalStore implementation over the embedded SQLite
// database. Entities are stored as JSON rows; the plan table keeps user_id,
// active and favorite as real columns so state transitions are single
// statements.
type SQLiteStore struct {
	db  *sql.DB
	log *logger.Logger
}

// NewSQLiteStore creates a SQLiteStore on an open database handle.
func NewSQLiteStore(db *sql.DB, log *logger.Logger) *SQLiteStore {
	return &SQLiteStore{db: db, log: log}
}

func (s *SQLiteStore) GetUser(ctx context.Context, id string) (*model.User, error) {
	var data string
	err := s.db.QueryRowContext(ctx, `SELECT data FROM users WHERE id = ?`, id).Scan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user %s: %w", id, err)
	}

	var u model.User
	if err := json.Unmarshal([]byte(data), &u); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user %s: %w", id, err)
	}
	u.ID = id
	return &u, nil
}

func (s *SQLiteStore) PutUser(ctx context.Context, u model.User) error {
	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
        INSERT INTO users (id, data, updated_at) VALUES (?, ?, ?)
        ON CONFLICT (id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		u.ID, string(data), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to put user %s: %w", u.ID, err)
	}
	return nil
}

func (s *SQLiteStore) GetAllRecipes(ctx context.Context) ([]model.Recipe, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, data FROM recipes ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	defer rows.Close()

	return s.scanRecipes(rows)
}

func (s *SQLiteStore) GetRecipesByIDs(ctx context.Context, ids []int64) ([]model.Recipe, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = "?"
		args[i] = id
	}

	query := fmt.Sprintf(`SELECT id, data FROM recipes WHERE id IN (%s) ORDER BY id`,
		strings.Join(placeholders, ","))
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get recipes by ids: %w", err)
	}
	defer rows.Close()

	return s.scanRecipes(rows)
}

// scanRecipes decodes recipe rows, skipping corrupt ones with a warning.
func (s *SQLiteStore) scanRecipes(rows *sql.Rows) ([]model.Recipe, error) {
	var recipes []model.Recipe
	for rows.Next() {
		var id int64
		var data string
		if err := rows.Scan(&id, &data); err != nil {
			return nil, fmt.Errorf("failed to scan recipe row: %w", err)
		}

		var rec model.Recipe
		if err := json.Unmarshal([]byte(data), &rec); err != nil {
			s.log.Warnw("skipping corrupt recipe row", "id", id, "error", err)
			continue
		}
		rec.ID = id
		recipes = append(recipes, rec)
	}
	return recipes, rows.Err()
}

// PutRecipes upserts a batch of recipes by id inside one transaction.
// Existing rows are fully replaced; recipes are never deleted here.
func (s *SQLiteStore) PutRecipes(ctx context.Context, recipes []model.Recipe) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin recipe upsert: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	for _, rec := range recipes {
		data, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("failed to marshal recipe %d: %w", rec.ID, err)
		}
		_, err = tx.ExecContext(ctx, `
            INSERT INTO recipes (id, data, updated_at) VALUES (?, ?, ?)
            ON CONFLICT (id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
			rec.ID, string(data), now)
		if err != nil {
			return fmt.Errorf("failed to upsert recipe %d: %w", rec.ID, err)
		}
	}

	return tx.Commit()
}

// IncrementRecipeUsage bumps the usage counter of each recipe by one.
// The counter lives inside the JSON payload, so this is a read-modify-write
// inside one transaction.
func (s *SQLiteStore) IncrementRecipeUsage(ctx context.Context, ids []int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin usage update: %w", err)
	}
	defer tx.Rollback()

	for _, id := range ids {
		var data string
		err := tx.QueryRowContext(ctx, `SELECT data FROM recipes WHERE id = ?`, id).Scan(&data)
		if err != nil {
			if err == sql.ErrNoRows {
				s.log.Warnw("usage increment for unknown recipe", "id", id)
				continue
			}
			return fmt.Errorf("failed to read recipe %d: %w", id, err)
		}

		var rec model.Recipe
		if err := json.Unmarshal([]byte(data), &rec); err != nil {
			return fmt.Errorf("failed to unmarshal recipe %d: %w", id, err)
		}
		rec.TimesUsed++

		updated, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("failed to marshal recipe %d: %w", id, err)
		}
		if _, err := tx.ExecContext(ctx,
			`UPDATE recipes SET data = ?, updated_at = ? WHERE id = ?`,
			string(updated), time.Now().UTC(), id); err != nil {
			return fmt.Errorf("failed to update recipe %d: %w", id, err)
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) GetActivePlan(ctx context.Context, userID string) (*model.MenuPlan, error) {
	row := s.db.QueryRowContext(ctx, `
        SELECT id, active, favorite, data FROM menu_plans
        WHERE user_id = ? AND active = 1
        ORDER BY created_at DESC LIMIT 1`, userID)

	p, err := scanPlan(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active plan for %s: %w", userID, err)
	}
	return p, nil
}

func (s *SQLiteStore) ListPlans(ctx context.Context, userID string) ([]model.MenuPlan, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT id, active, favorite, data FROM menu_plans
        WHERE user_id = ? ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list plans for %s: %w", userID, err)
	}
	defer rows.Close()

	var plans []model.MenuPlan
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan plan row: %w", err)
		}
		plans = append(plans, *p)
	}
	return plans, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanPlan decodes a plan row. The id/active/favorite columns win over
// whatever the JSON payload carries, since flag transitions update only
// the columns.
func scanPlan(row rowScanner) (*model.MenuPlan, error) {
	var id int64
	var active, favorite int
	var data string
	if err := row.Scan(&id, &active, &favorite, &data); err != nil {
		return nil, err
	}

	var p model.MenuPlan
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal plan %d: %w", id, err)
	}
	p.ID = id
	p.Active = active == 1
	p.Favorite = favorite == 1
	return &p, nil
}

// PutPlan inserts the plan when its ID is zero (setting the assigned id on
// the argument) and fully replaces it otherwise.
func (s *SQLiteStore) PutPlan(ctx context.Context, p *model.MenuPlan) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal plan: %w", err)
	}

	if p.ID == 0 {
		res, err := s.db.ExecContext(ctx, `
            INSERT INTO menu_plans (user_id, active, favorite, data, created_at)
            VALUES (?, ?, ?, ?, ?)`,
			p.UserID, boolToInt(p.Active), boolToInt(p.Favorite), string(data), p.CreatedAt.UTC())
		if err != nil {
			return fmt.Errorf("failed to insert plan: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to read plan id: %w", err)
		}
		p.ID = id
		return nil
	}

	_, err = s.db.ExecContext(ctx, `
        UPDATE menu_plans SET user_id = ?, active = ?, favorite = ?, data = ?
        WHERE id = ?`,
		p.UserID, boolToInt(p.Active), boolToInt(p.Favorite), string(data), p.ID)
	if err != nil {
		return fmt.Errorf("failed to update plan %d: %w", p.ID, err)
	}
	return nil
}

func (s *SQLiteStore) SetPlanFavorite(ctx context.Context, planID int64, favorite bool) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE menu_plans SET favorite = ? WHERE id = ?`, boolToInt(favorite), planID)
	if err != nil {
		return fmt.Errorf("failed to set favorite on plan %d: %w", planID, err)
	}
	return nil
}

func (s *SQLiteStore) DeactivateAllPlans(ctx context.Context, userID string) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE menu_plans SET active = 0 WHERE user_id = ?`, userID)
	if err != nil {
		return fmt.Errorf("failed to deactivate plans for %s: %w", userID, err)
	}
	return nil
}

func (s *SQLiteStore) DeletePlan(ctx context.Context, planID int64) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM menu_plans WHERE id = ?`, planID)
	if err != nil {
		return fmt.Errorf("failed to delete plan %d: %w", planID, err)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
