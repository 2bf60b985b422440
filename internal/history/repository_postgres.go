package history

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Insert(ctx context.Context, record *AnalysisRecord) error {
	query := `
		INSERT INTO food_history
			(analysis_id, user_id, food_name, ingredients, allergens_detected,
			 safe_to_eat, image_base64, image_url, analyzed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), $9)
	`
	_, err := r.db.Exec(ctx, query,
		record.AnalysisID,
		record.UserID,
		record.FoodName,
		record.Ingredients,
		record.AllergensDetected,
		record.SafeToEat,
		record.ImageBase64,
		record.ImageURL,
		record.AnalyzedAt,
	)
	return err
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string, limit int) ([]AnalysisRecord, error) {
	query := `
		SELECT analysis_id, user_id, food_name, ingredients, allergens_detected,
		       safe_to_eat, image_base64, COALESCE(image_url, ''), analyzed_at
		FROM food_history
		WHERE user_id = $1
		ORDER BY analyzed_at DESC
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []AnalysisRecord{}
	for rows.Next() {
		var rec AnalysisRecord
		err := rows.Scan(
			&rec.AnalysisID,
			&rec.UserID,
			&rec.FoodName,
			&rec.Ingredients,
			&rec.AllergensDetected,
			&rec.SafeToEat,
			&rec.ImageBase64,
			&rec.ImageURL,
			&rec.AnalyzedAt,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
