package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// GetPreferenceProfile retrieves a user's preference profile
func (db *DB) GetPreferenceProfile(ctx context.Context, userID uuid.UUID) (*PreferenceProfile, error) {
	var p PreferenceProfile
	var workLocation *string
	err := db.pool.QueryRow(ctx,
		`SELECT user_id, target_titles, salary_minimum, salary_ideal,
		        work_location_preference, max_commute_minutes, non_negotiables,
		        wanted_responsibilities, avoided_responsibilities, updated_at
		 FROM preference_profiles WHERE user_id = $1`,
		userID,
	).Scan(&p.UserID, &p.TargetTitles, &p.SalaryMinimum, &p.SalaryIdeal,
		&workLocation, &p.MaxCommuteMinutes, &p.NonNegotiables,
		&p.WantedResponsibilities, &p.AvoidedResponsibilities, &p.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get preference profile: %w", err)
	}
	if workLocation != nil {
		p.WorkLocationPreference = *workLocation
	}
	return &p, nil
}

// UpsertPreferenceProfile creates or replaces a user's preference profile
func (db *DB) UpsertPreferenceProfile(ctx context.Context, p *PreferenceProfile) (*PreferenceProfile, error) {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO preference_profiles (user_id, target_titles, salary_minimum, salary_ideal,
		                                  work_location_preference, max_commute_minutes,
		                                  non_negotiables, wanted_responsibilities,
		                                  avoided_responsibilities)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 ON CONFLICT (user_id) DO UPDATE SET
		     target_titles = $2,
		     salary_minimum = $3,
		     salary_ideal = $4,
		     work_location_preference = $5,
		     max_commute_minutes = $6,
		     non_negotiables = $7,
		     wanted_responsibilities = $8,
		     avoided_responsibilities = $9,
		     updated_at = NOW()`,
		p.UserID, p.TargetTitles, p.SalaryMinimum, p.SalaryIdeal,
		nullIfEmpty(p.WorkLocationPreference), p.MaxCommuteMinutes,
		p.NonNegotiables, p.WantedResponsibilities, p.AvoidedResponsibilities,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert preference profile: %w", err)
	}
	return db.GetPreferenceProfile(ctx, p.UserID)
}

// GetCareerProfile retrieves a user's career profile
func (db *DB) GetCareerProfile(ctx context.Context, userID uuid.UUID) (*CareerProfile, error) {
	var p CareerProfile
	err := db.pool.QueryRow(ctx,
		`SELECT user_id, technical_skills, soft_skills, tools, years_experience,
		        accomplishments, updated_at
		 FROM career_profiles WHERE user_id = $1`,
		userID,
	).Scan(&p.UserID, &p.TechnicalSkills, &p.SoftSkills, &p.Tools,
		&p.YearsExperience, &p.Accomplishments, &p.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get career profile: %w", err)
	}
	return &p, nil
}

// UpsertCareerProfile creates or replaces a user's career profile
func (db *DB) UpsertCareerProfile(ctx context.Context, p *CareerProfile) (*CareerProfile, error) {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO career_profiles (user_id, technical_skills, soft_skills, tools,
		                              years_experience, accomplishments)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (user_id) DO UPDATE SET
		     technical_skills = $2,
		     soft_skills = $3,
		     tools = $4,
		     years_experience = $5,
		     accomplishments = $6,
		     updated_at = NOW()`,
		p.UserID, p.TechnicalSkills, p.SoftSkills, p.Tools,
		p.YearsExperience, p.Accomplishments,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert career profile: %w", err)
	}
	return db.GetCareerProfile(ctx, p.UserID)
}

// GetResumeProfile retrieves a user's resume profile
func (db *DB) GetResumeProfile(ctx context.Context, userID uuid.UUID) (*ResumeProfile, error) {
	var p ResumeProfile
	var headline, summary *string
	err := db.pool.QueryRow(ctx,
		`SELECT user_id, headline, summary, bullets, updated_at
		 FROM resume_profiles WHERE user_id = $1`,
		userID,
	).Scan(&p.UserID, &headline, &summary, &p.Bullets, &p.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume profile: %w", err)
	}
	if headline != nil {
		p.Headline = *headline
	}
	if summary != nil {
		p.Summary = *summary
	}
	return &p, nil
}

// UpsertResumeProfile creates or replaces a user's resume profile
func (db *DB) UpsertResumeProfile(ctx context.Context, p *ResumeProfile) (*ResumeProfile, error) {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO resume_profiles (user_id, headline, summary, bullets)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (user_id) DO UPDATE SET
		     headline = $2,
		     summary = $3,
		     bullets = $4,
		     updated_at = NOW()`,
		p.UserID, nullIfEmpty(p.Headline), nullIfEmpty(p.Summary), p.Bullets,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert resume profile: %w", err)
	}
	return db.GetResumeProfile(ctx, p.UserID)
}

// GetNetworkingProfile retrieves a user's networking setup
func (db *DB) GetNetworkingProfile(ctx context.Context, userID uuid.UUID) (*NetworkingProfile, error) {
	var p NetworkingProfile
	var link, pitch *string
	err := db.pool.QueryRow(ctx,
		`SELECT user_id, scheduling_link, elevator_pitch, message_templates,
		        coffee_chat_questions, updated_at
		 FROM networking_profiles WHERE user_id = $1`,
		userID,
	).Scan(&p.UserID, &link, &pitch, &p.MessageTemplates, &p.CoffeeChatQuestions, &p.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get networking profile: %w", err)
	}
	if link != nil {
		p.SchedulingLink = *link
	}
	if pitch != nil {
		p.ElevatorPitch = *pitch
	}
	return &p, nil
}

// UpsertNetworkingProfile creates or replaces a user's networking setup
func (db *DB) UpsertNetworkingProfile(ctx context.Context, p *NetworkingProfile) (*NetworkingProfile, error) {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO networking_profiles (user_id, scheduling_link, elevator_pitch,
		                                  message_templates, coffee_chat_questions)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (user_id) DO UPDATE SET
		     scheduling_link = $2,
		     elevator_pitch = $3,
		     message_templates = $4,
		     coffee_chat_questions = $5,
		     updated_at = NOW()`,
		p.UserID, nullIfEmpty(p.SchedulingLink), nullIfEmpty(p.ElevatorPitch),
		p.MessageTemplates, p.CoffeeChatQuestions,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert networking profile: %w", err)
	}
	return db.GetNetworkingProfile(ctx, p.UserID)
}
