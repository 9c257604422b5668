package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check that the backend API is reachable",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := client().Health(cmd.Context()); err != nil {
			return fmt.Errorf("backend not healthy: %w", err)
		}
		fmt.Println("ok")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(healthCmd)
}
