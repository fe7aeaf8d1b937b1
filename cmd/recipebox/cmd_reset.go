package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var resetConfirmed bool

// resetCmd empties the shopping list and likes
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the shopping list and all likes",
	Long: `Deletes the shopping list, all likes and anything else stored in the
database. Run "recipebox export" first to keep a backup.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetConfirmed {
			return errors.New("refusing to reset without --yes")
		}

		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.session.Reset(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Shopping list and likes deleted")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVarP(&resetConfirmed, "yes", "y", false, "confirm deleting all stored data")
}
