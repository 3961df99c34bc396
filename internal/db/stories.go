package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const storyColumns = `user_id, ordinal, title, situation, task, action, result, updated_at`

func scanStory(row pgx.Row) (*StarStory, error) {
	var s StarStory
	err := row.Scan(&s.UserID, &s.Ordinal, &s.Title, &s.Situation, &s.Task,
		&s.Action, &s.Result, &s.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan story: %w", err)
	}
	return &s, nil
}

// GetStarStory retrieves one of the ten story slots
func (db *DB) GetStarStory(ctx context.Context, userID uuid.UUID, ordinal int) (*StarStory, error) {
	return scanStory(db.pool.QueryRow(ctx,
		`SELECT `+storyColumns+`
		 FROM star_stories WHERE user_id = $1 AND ordinal = $2`,
		userID, ordinal,
	))
}

// ListStarStories retrieves all story slots a user has written, by ordinal
func (db *DB) ListStarStories(ctx context.Context, userID uuid.UUID) ([]StarStory, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+storyColumns+`
		 FROM star_stories WHERE user_id = $1
		 ORDER BY ordinal`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list stories: %w", err)
	}
	defer rows.Close()

	var stories []StarStory
	for rows.Next() {
		s, err := scanStory(rows)
		if err != nil {
			return nil, err
		}
		stories = append(stories, *s)
	}
	return stories, nil
}

// UpsertStarStory writes one story slot. Slots are keyed (user, ordinal) so a
// rewrite replaces the previous draft in place.
func (db *DB) UpsertStarStory(ctx context.Context, s *StarStory) (*StarStory, error) {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO star_stories (user_id, ordinal, title, situation, task, action, result)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (user_id, ordinal) DO UPDATE SET
		     title = $3,
		     situation = $4,
		     task = $5,
		     action = $6,
		     result = $7,
		     updated_at = NOW()`,
		s.UserID, s.Ordinal, s.Title, s.Situation, s.Task, s.Action, s.Result,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert story: %w", err)
	}
	return db.GetStarStory(ctx, s.UserID, s.Ordinal)
}
