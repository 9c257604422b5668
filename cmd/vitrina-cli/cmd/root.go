package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dreyes/vitrina/internal/api"
)

var apiBaseURL string

var rootCmd = &cobra.Command{
	Use:   "vitrina-cli",
	Short: "Vitrina CLI tool",
	Long: `Vitrina CLI reads from the backend API the web front end renders.

Available commands:
  greeting    Print the greeting message
  users       Print the user listing
  health      Check that the backend is reachable

Use "vitrina-cli [command] --help" for more information about a specific command.`,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// client builds the API client from the --api flag or the environment.
func client() *api.Client {
	base := apiBaseURL
	if base == "" {
		base = os.Getenv("API_BASE_URL")
	}
	if base == "" {
		base = "http://localhost:5000"
	}
	return api.New(base)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiBaseURL, "api", "", "base URL of the backend API (defaults to $API_BASE_URL or http://localhost:5000)")
}
