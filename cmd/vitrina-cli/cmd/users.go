package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Print the user listing from the backend",
	Long: `Print the user listing from the backend, one "name - email" line per
record, in the order the backend returns them.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		users, err := client().Users(cmd.Context())
		if err != nil {
			return fmt.Errorf("fetching users: %w", err)
		}
		for _, u := range users {
			fmt.Printf("%s - %s\n", u.Name, u.Email)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(usersCmd)
}
