package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// CreatePracticeEvaluation records one mock-interview self-evaluation
func (db *DB) CreatePracticeEvaluation(ctx context.Context, userID uuid.UUID, question string, rating int, notes string) (*PracticeEvaluation, error) {
	var e PracticeEvaluation
	var dbNotes *string
	err := db.pool.QueryRow(ctx,
		`INSERT INTO practice_evaluations (user_id, question, rating, notes)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, user_id, question, rating, notes, created_at`,
		userID, question, rating, nullIfEmpty(notes),
	).Scan(&e.ID, &e.UserID, &e.Question, &e.Rating, &dbNotes, &e.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create practice evaluation: %w", err)
	}
	if dbNotes != nil {
		e.Notes = *dbNotes
	}
	return &e, nil
}

// ListPracticeEvaluations retrieves a user's evaluations, newest first
func (db *DB) ListPracticeEvaluations(ctx context.Context, userID uuid.UUID) ([]PracticeEvaluation, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, question, rating, notes, created_at
		 FROM practice_evaluations WHERE user_id = $1
		 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list practice evaluations: %w", err)
	}
	defer rows.Close()

	var evals []PracticeEvaluation
	for rows.Next() {
		var e PracticeEvaluation
		var notes *string
		if err := rows.Scan(&e.ID, &e.UserID, &e.Question, &e.Rating, &notes, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan practice evaluation: %w", err)
		}
		if notes != nil {
			e.Notes = *notes
		}
		evals = append(evals, e)
	}
	return evals, nil
}
