package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jobsprint/jobsprint/internal/billing"
	"github.com/jobsprint/jobsprint/internal/db"
)

var (
	gencodesTier  string
	gencodesCount int
	gencodesUser  string
)

var gencodesCmd = &cobra.Command{
	Use:   "gencodes",
	Short: "Mint single-use activation codes",
	Long: `Mint a batch of single-use activation codes for a tier and store them
in the database. With --reactivation-user the codes are reactivation codes
earmarked for that user's account.`,
	RunE: runGencodes,
}

func init() {
	gencodesCmd.Flags().StringVar(&gencodesTier, "tier", "STARTER", "Tier: STARTER, PRO or PREMIUM")
	gencodesCmd.Flags().IntVar(&gencodesCount, "count", 1, "Number of codes to mint")
	gencodesCmd.Flags().StringVar(&gencodesUser, "reactivation-user", "", "Mint reactivation codes for this user ID")
	rootCmd.AddCommand(gencodesCmd)
}

func runGencodes(_ *cobra.Command, _ []string) error {
	tier, err := billing.ParseTier(gencodesTier)
	if err != nil {
		return err
	}
	if gencodesCount < 1 {
		return fmt.Errorf("--count must be at least 1, got %d", gencodesCount)
	}

	var reactivationFor *uuid.UUID
	if gencodesUser != "" {
		userID, err := uuid.Parse(gencodesUser)
		if err != nil {
			return fmt.Errorf("invalid --reactivation-user: %w", err)
		}
		if !tier.ReactivationEligible() {
			return fmt.Errorf("%s subscriptions do not qualify for reactivation", tier.DisplayName())
		}
		reactivationFor = &userID
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	ctx := context.Background()
	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	for i := 0; i < gencodesCount; i++ {
		code := billing.MintCode(tier)
		if reactivationFor != nil {
			code = billing.MintReactivationCode(tier)
		}
		if err := database.InsertActivationCode(ctx, code, tier, reactivationFor); err != nil {
			return err
		}
		fmt.Println(code)
	}

	return nil
}
