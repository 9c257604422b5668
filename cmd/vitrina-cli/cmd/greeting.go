package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var greetingCmd = &cobra.Command{
	Use:   "greeting",
	Short: "Print the greeting message from the backend",
	RunE: func(cmd *cobra.Command, args []string) error {
		message, err := client().Greeting(cmd.Context())
		if err != nil {
			return fmt.Errorf("fetching greeting: %w", err)
		}
		fmt.Println(message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(greetingCmd)
}
