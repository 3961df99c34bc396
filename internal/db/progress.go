package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/errgroup"

	"github.com/jobsprint/jobsprint/internal/program"
)

// ListDayProgress retrieves all 14 progress rows for a user, ordered by day
func (db *DB) ListDayProgress(ctx context.Context, userID uuid.UUID) ([]DayProgress, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, day, status, completed_at, created_at, updated_at
		 FROM day_progress WHERE user_id = $1 ORDER BY day`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list day progress: %w", err)
	}
	defer rows.Close()

	var progress []DayProgress
	for rows.Next() {
		var p DayProgress
		if err := rows.Scan(&p.ID, &p.UserID, &p.Day, &p.Status, &p.CompletedAt,
			&p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan day progress: %w", err)
		}
		progress = append(progress, p)
	}
	return progress, nil
}

// GetDayProgress retrieves one day's progress row for a user
func (db *DB) GetDayProgress(ctx context.Context, userID uuid.UUID, day int) (*DayProgress, error) {
	var p DayProgress
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, day, status, completed_at, created_at, updated_at
		 FROM day_progress WHERE user_id = $1 AND day = $2`,
		userID, day,
	).Scan(&p.ID, &p.UserID, &p.Day, &p.Status, &p.CompletedAt, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get day progress: %w", err)
	}
	return &p, nil
}

// StartDay moves an UNLOCKED day to IN_PROGRESS. Starting a day in any other
// status is a no-op.
func (db *DB) StartDay(ctx context.Context, userID uuid.UUID, day int) (*DayProgress, error) {
	_, err := db.pool.Exec(ctx,
		`UPDATE day_progress SET status = $1, updated_at = NOW()
		 WHERE user_id = $2 AND day = $3 AND status = $4`,
		program.StatusInProgress, userID, day, program.StatusUnlocked,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start day: %w", err)
	}
	return db.GetDayProgress(ctx, userID, day)
}

// CompleteDay performs the full completion transition in one transaction:
// mark day N COMPLETED, unlock day N+1 (without downgrading a day that is
// already past LOCKED), and advance the user's current_day pointer. The
// per-day completion predicate is the caller's responsibility; this method
// enforces only the status-machine rules. Completing an already-COMPLETED
// day is an idempotent no-op that re-unlocks nothing.
func (db *DB) CompleteDay(ctx context.Context, userID uuid.UUID, day int) (*DayProgress, error) {
	err := db.withTx(ctx, func(tx pgx.Tx) error {
		var status program.Status
		err := tx.QueryRow(ctx,
			`SELECT status FROM day_progress
			 WHERE user_id = $1 AND day = $2
			 FOR UPDATE`,
			userID, day,
		).Scan(&status)
		if err != nil {
			if err == pgx.ErrNoRows {
				return fmt.Errorf("no progress row for day %d", day)
			}
			return fmt.Errorf("failed to lock day progress: %w", err)
		}

		if status == program.StatusCompleted {
			return nil // already done
		}
		if !program.CanComplete(status) {
			return fmt.Errorf("day %d is %s and cannot be completed", day, status)
		}

		_, err = tx.Exec(ctx,
			`UPDATE day_progress SET status = $1, completed_at = NOW(), updated_at = NOW()
			 WHERE user_id = $2 AND day = $3`,
			program.StatusCompleted, userID, day,
		)
		if err != nil {
			return fmt.Errorf("failed to complete day: %w", err)
		}

		if day < program.LastDay {
			_, err = tx.Exec(ctx,
				`UPDATE day_progress SET status = $1, updated_at = NOW()
				 WHERE user_id = $2 AND day = $3 AND status = $4`,
				program.StatusUnlocked, userID, day+1, program.StatusLocked,
			)
			if err != nil {
				return fmt.Errorf("failed to unlock day %d: %w", day+1, err)
			}

			_, err = tx.Exec(ctx,
				`UPDATE users SET current_day = GREATEST(current_day, $1), updated_at = NOW()
				 WHERE id = $2`,
				day+1, userID,
			)
			if err != nil {
				return fmt.Errorf("failed to advance current day: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return db.GetDayProgress(ctx, userID, day)
}

// LoadSnapshot builds the aggregate view of a user's durable state that the
// per-day completion predicates run against. The eight source queries are
// independent, so they run concurrently on the pool.
func (db *DB) LoadSnapshot(ctx context.Context, userID uuid.UUID) (program.Snapshot, error) {
	var s program.Snapshot
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		career, err := db.GetCareerProfile(ctx, userID)
		if err != nil {
			return err
		}
		if career != nil {
			s.TechnicalSkillCount = len(career.TechnicalSkills)
			s.YearsExperienceSet = career.YearsExperience != nil
			s.AccomplishmentCount = len(career.Accomplishments)
		}
		return nil
	})

	g.Go(func() error {
		prefs, err := db.GetPreferenceProfile(ctx, userID)
		if err != nil {
			return err
		}
		if prefs != nil {
			s.TargetTitleCount = len(prefs.TargetTitles)
			s.SalaryMinimumSet = prefs.SalaryMinimum != nil
			s.WorkLocationSet = prefs.WorkLocationPreference != ""
			s.NonNegotiableCount = len(prefs.NonNegotiables)
		}
		return nil
	})

	g.Go(func() error {
		resume, err := db.GetResumeProfile(ctx, userID)
		if err != nil {
			return err
		}
		if resume != nil {
			s.ResumeHeadlineSet = resume.Headline != ""
			s.ResumeSummarySet = resume.Summary != ""
			s.ResumeFirstBulletSet = len(resume.Bullets) > 0 && resume.Bullets[0] != ""
		}
		return nil
	})

	g.Go(func() error {
		networking, err := db.GetNetworkingProfile(ctx, userID)
		if err != nil {
			return err
		}
		if networking != nil {
			s.SchedulingLinkSet = networking.SchedulingLink != ""
			s.ElevatorPitchSet = networking.ElevatorPitch != ""
			s.MessageTemplateCount = countNonEmpty(networking.MessageTemplates)
			s.CoffeeChatQuestionCount = countNonEmpty(networking.CoffeeChatQuestions)
		}
		return nil
	})

	g.Go(func() error {
		err := db.pool.QueryRow(ctx,
			`SELECT
			   COUNT(*) FILTER (WHERE status = $2),
			   COUNT(*) FILTER (WHERE status <> $2)
			 FROM job_leads WHERE user_id = $1`,
			userID, LeadStatusSaved,
		).Scan(&s.SavedJobCount, &s.ActionedJobCount)
		if err != nil {
			return fmt.Errorf("failed to count job leads: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		err := db.pool.QueryRow(ctx,
			`SELECT COUNT(*) FROM networking_contacts
			 WHERE user_id = $1 AND message_sent`,
			userID,
		).Scan(&s.ContactsMessagedCount)
		if err != nil {
			return fmt.Errorf("failed to count messaged contacts: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		err := db.pool.QueryRow(ctx,
			`SELECT COUNT(*) FROM star_stories
			 WHERE user_id = $1
			   AND situation <> '' AND task <> '' AND action <> '' AND result <> ''`,
			userID,
		).Scan(&s.CompleteStarStoryCount)
		if err != nil {
			return fmt.Errorf("failed to count complete stories: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		err := db.pool.QueryRow(ctx,
			`SELECT COUNT(*) FROM practice_evaluations WHERE user_id = $1`,
			userID,
		).Scan(&s.PracticeEvaluationCount)
		if err != nil {
			return fmt.Errorf("failed to count practice evaluations: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return program.Snapshot{}, err
	}
	return s, nil
}

func countNonEmpty(items []string) int {
	n := 0
	for _, it := range items {
		if it != "" {
			n++
		}
	}
	return n
}
