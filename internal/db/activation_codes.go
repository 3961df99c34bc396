package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jobsprint/jobsprint/internal/billing"
)

// ErrCodeAlreadyUsed is returned when redeeming a single-use code twice.
type ErrCodeAlreadyUsed struct {
	Code string
}

func (e *ErrCodeAlreadyUsed) Error() string {
	return fmt.Sprintf("activation code already used: %s", e.Code)
}

// ErrCodeNotFound is returned when a presented code matches no minted code.
type ErrCodeNotFound struct {
	Code string
}

func (e *ErrCodeNotFound) Error() string {
	return fmt.Sprintf("activation code not found: %s", e.Code)
}

// InsertActivationCode stores a newly minted single-use code.
func (db *DB) InsertActivationCode(ctx context.Context, code string, tier billing.Tier, reactivationFor *uuid.UUID) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO activation_codes (code, tier, is_used, reactivation_for)
		 VALUES ($1, $2, FALSE, $3)`,
		billing.NormalizeCode(code), tier, reactivationFor,
	)
	if err != nil {
		return fmt.Errorf("failed to insert activation code: %w", err)
	}
	return nil
}

// RedeemActivationCode atomically marks a minted single-use code consumed
// and creates (or, for reactivation codes, re-extends) the subscription in
// the same transaction, so two racing redemptions cannot both succeed.
func (db *DB) RedeemActivationCode(ctx context.Context, code string, userID uuid.UUID) (*Subscription, error) {
	normalized := billing.NormalizeCode(code)
	var sub *Subscription

	err := db.withTx(ctx, func(tx pgx.Tx) error {
		var c ActivationCode
		err := tx.QueryRow(ctx,
			`SELECT code, tier, is_used, reactivation_for
			 FROM activation_codes WHERE code = $1
			 FOR UPDATE`,
			normalized,
		).Scan(&c.Code, &c.Tier, &c.IsUsed, &c.ReactivationFor)
		if err != nil {
			if err == pgx.ErrNoRows {
				return &ErrCodeNotFound{Code: normalized}
			}
			return fmt.Errorf("failed to lock activation code: %w", err)
		}

		if c.IsUsed {
			return &ErrCodeAlreadyUsed{Code: normalized}
		}
		if c.ReactivationFor != nil && *c.ReactivationFor != userID {
			// A reactivation code is earmarked for one account.
			return &ErrCodeNotFound{Code: normalized}
		}

		_, err = tx.Exec(ctx,
			`UPDATE activation_codes
			 SET is_used = TRUE, used_by = $1, used_at = NOW()
			 WHERE code = $2`,
			userID, normalized,
		)
		if err != nil {
			return fmt.Errorf("failed to mark code used: %w", err)
		}

		now := time.Now()
		if c.ReactivationFor != nil {
			sub, err = reactivateLatestSubscriptionTx(ctx, tx, userID, c.Tier, now)
			return err
		}

		sub, err = scanSubscription(tx.QueryRow(ctx,
			`INSERT INTO subscriptions (user_id, tier, status, start_date, end_date)
			 VALUES ($1, $2, $3, $4, $5)
			 RETURNING `+subscriptionColumns,
			userID, c.Tier, billing.StatusActive, now, billing.ProvisionedEndDate(c.Tier, now),
		))
		return err
	})
	if err != nil {
		return nil, err
	}
	return sub, nil
}
