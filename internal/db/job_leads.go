package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const jobLeadColumns = `id, user_id, title, company, salary_min, salary_max,
	location, work_type, description, status, match_score, match_breakdown,
	created_at, updated_at`

func scanJobLead(row pgx.Row) (*JobLead, error) {
	var l JobLead
	var location, workType, description *string
	var breakdownJSON []byte

	err := row.Scan(&l.ID, &l.UserID, &l.Title, &l.Company, &l.SalaryMin, &l.SalaryMax,
		&location, &workType, &description, &l.Status, &l.MatchScore, &breakdownJSON,
		&l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan job lead: %w", err)
	}

	if location != nil {
		l.Location = *location
	}
	if workType != nil {
		l.WorkType = *workType
	}
	if description != nil {
		l.Description = *description
	}
	if breakdownJSON != nil {
		_ = json.Unmarshal(breakdownJSON, &l.MatchBreakdown)
	}
	return &l, nil
}

// CreateJobLead stores a new lead with its computed match score and
// per-factor breakdown.
func (db *DB) CreateJobLead(ctx context.Context, input *JobLeadCreateInput) (*JobLead, error) {
	breakdownJSON, err := json.Marshal(input.MatchBreakdown)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal match breakdown: %w", err)
	}

	return scanJobLead(db.pool.QueryRow(ctx,
		`INSERT INTO job_leads (user_id, title, company, salary_min, salary_max,
		                        location, work_type, description, status,
		                        match_score, match_breakdown)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING `+jobLeadColumns,
		input.UserID, input.Title, input.Company, input.SalaryMin, input.SalaryMax,
		nullIfEmpty(input.Location), nullIfEmpty(input.WorkType), nullIfEmpty(input.Description),
		LeadStatusSaved, input.MatchScore, breakdownJSON,
	))
}

// GetJobLead retrieves a lead by ID
func (db *DB) GetJobLead(ctx context.Context, id uuid.UUID) (*JobLead, error) {
	return scanJobLead(db.pool.QueryRow(ctx,
		`SELECT `+jobLeadColumns+` FROM job_leads WHERE id = $1`,
		id,
	))
}

// ListJobLeads retrieves all leads for a user, newest first. An empty status
// filter returns everything.
func (db *DB) ListJobLeads(ctx context.Context, userID uuid.UUID, status string) ([]JobLead, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+jobLeadColumns+`
		 FROM job_leads
		 WHERE user_id = $1 AND ($2 = '' OR status = $2)
		 ORDER BY created_at DESC`,
		userID, status,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list job leads: %w", err)
	}
	defer rows.Close()

	var leads []JobLead
	for rows.Next() {
		lead, err := scanJobLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, *lead)
	}
	return leads, nil
}

// UpdateJobLeadStatus moves a lead to a new status
func (db *DB) UpdateJobLeadStatus(ctx context.Context, id uuid.UUID, status string) (*JobLead, error) {
	return scanJobLead(db.pool.QueryRow(ctx,
		`UPDATE job_leads SET status = $1, updated_at = NOW()
		 WHERE id = $2
		 RETURNING `+jobLeadColumns,
		status, id,
	))
}

// DeleteJobLead removes a lead
func (db *DB) DeleteJobLead(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM job_leads WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete job lead: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("job lead not found: %s", id)
	}
	return nil
}
