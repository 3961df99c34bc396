package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jobsprint/jobsprint/internal/billing"
)

const subscriptionColumns = `id, user_id, tier, status, start_date, end_date, created_at, updated_at`

func scanSubscription(row pgx.Row) (*Subscription, error) {
	var s Subscription
	err := row.Scan(&s.ID, &s.UserID, &s.Tier, &s.Status, &s.StartDate, &s.EndDate,
		&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan subscription: %w", err)
	}
	return &s, nil
}

// GetLatestSubscription retrieves the most recent subscription row for a
// user. Historical rows stay in place; only the latest gates access.
func (db *DB) GetLatestSubscription(ctx context.Context, userID uuid.UUID) (*Subscription, error) {
	return scanSubscription(db.pool.QueryRow(ctx,
		`SELECT `+subscriptionColumns+`
		 FROM subscriptions WHERE user_id = $1
		 ORDER BY created_at DESC LIMIT 1`,
		userID,
	))
}

// CreateSubscription provisions a fresh subscription for a user using the
// tier's grace duration.
func (db *DB) CreateSubscription(ctx context.Context, userID uuid.UUID, tier billing.Tier) (*Subscription, error) {
	now := time.Now()
	return scanSubscription(db.pool.QueryRow(ctx,
		`INSERT INTO subscriptions (user_id, tier, status, start_date, end_date)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+subscriptionColumns,
		userID, tier, billing.StatusActive, now, billing.ProvisionedEndDate(tier, now),
	))
}

// MarkSubscriptionReadOnly lazily corrects a stored ACTIVE row whose end date
// has passed. Idempotent: a row that was already corrected (or renewed in the
// meantime) is left alone.
func (db *DB) MarkSubscriptionReadOnly(ctx context.Context, subscriptionID uuid.UUID) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE subscriptions SET status = $1, updated_at = NOW()
		 WHERE id = $2 AND status = $3 AND end_date < NOW()`,
		billing.StatusReadOnly, subscriptionID, billing.StatusActive,
	)
	if err != nil {
		return fmt.Errorf("failed to mark subscription read-only: %w", err)
	}
	return nil
}

// reactivateLatestSubscriptionTx re-extends a user's most recent subscription
// by the tier's nominal duration from the moment of confirmation and resets
// it to ACTIVE. Day progression is untouched. Runs inside the caller's
// transaction so code redemption and the extension commit together.
func reactivateLatestSubscriptionTx(ctx context.Context, tx pgx.Tx, userID uuid.UUID, tier billing.Tier, confirmedAt time.Time) (*Subscription, error) {
	sub, err := scanSubscription(tx.QueryRow(ctx,
		`UPDATE subscriptions
		 SET status = $1, end_date = $2, updated_at = NOW()
		 WHERE id = (SELECT id FROM subscriptions WHERE user_id = $3
		             ORDER BY created_at DESC LIMIT 1)
		 RETURNING `+subscriptionColumns,
		billing.StatusActive, billing.ReactivatedEndDate(tier, confirmedAt), userID,
	))
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, fmt.Errorf("no subscription to reactivate for user %s", userID)
	}
	return sub, nil
}

// SweepExpiredSubscriptions downgrades every stored ACTIVE row whose end
// date has passed to READ_ONLY and returns how many rows changed. Safe to
// run concurrently with request-path lazy correction.
func (db *DB) SweepExpiredSubscriptions(ctx context.Context) (int64, error) {
	result, err := db.pool.Exec(ctx,
		`UPDATE subscriptions SET status = $1, updated_at = NOW()
		 WHERE status = $2 AND end_date < NOW()`,
		billing.StatusReadOnly, billing.StatusActive,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to sweep expired subscriptions: %w", err)
	}
	return result.RowsAffected(), nil
}
