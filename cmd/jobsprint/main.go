// Package main provides the entry point for the JobSprint HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jobsprint",
	Short: "JobSprint HTTP API Server",
	Long:  "JobSprint runs a guided 14-day job search program: day-by-day progression, weighted job-match scoring, and subscription-gated access via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
