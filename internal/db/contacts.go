package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const contactColumns = `id, user_id, name, company, role, message_sent, created_at, updated_at`

func scanContact(row pgx.Row) (*NetworkingContact, error) {
	var c NetworkingContact
	var company, role *string
	err := row.Scan(&c.ID, &c.UserID, &c.Name, &company, &role, &c.MessageSent,
		&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan contact: %w", err)
	}
	if company != nil {
		c.Company = *company
	}
	if role != nil {
		c.Role = *role
	}
	return &c, nil
}

// CreateContact adds one person to the user's outreach list
func (db *DB) CreateContact(ctx context.Context, userID uuid.UUID, name, company, role string) (*NetworkingContact, error) {
	return scanContact(db.pool.QueryRow(ctx,
		`INSERT INTO networking_contacts (user_id, name, company, role)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+contactColumns,
		userID, name, nullIfEmpty(company), nullIfEmpty(role),
	))
}

// GetContact retrieves a contact by ID
func (db *DB) GetContact(ctx context.Context, id uuid.UUID) (*NetworkingContact, error) {
	return scanContact(db.pool.QueryRow(ctx,
		`SELECT `+contactColumns+` FROM networking_contacts WHERE id = $1`,
		id,
	))
}

// ListContacts retrieves all contacts for a user, oldest first
func (db *DB) ListContacts(ctx context.Context, userID uuid.UUID) ([]NetworkingContact, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+contactColumns+`
		 FROM networking_contacts WHERE user_id = $1
		 ORDER BY created_at`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	defer rows.Close()

	var contacts []NetworkingContact
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, *c)
	}
	return contacts, nil
}

// MarkContactMessaged flags a contact as having been sent an outreach
// message. The flag is one-way; it feeds the day 10 and 11 outreach counts.
func (db *DB) MarkContactMessaged(ctx context.Context, id uuid.UUID) (*NetworkingContact, error) {
	return scanContact(db.pool.QueryRow(ctx,
		`UPDATE networking_contacts
		 SET message_sent = TRUE, updated_at = NOW()
		 WHERE id = $1
		 RETURNING `+contactColumns,
		id,
	))
}

// DeleteContact removes a contact
func (db *DB) DeleteContact(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM networking_contacts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("contact not found: %s", id)
	}
	return nil
}
