package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/athlog/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newAliasCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alias",
		Short: "Manage exercise aliases",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <alias> <id|name>",
			Short: "Add an alias for an exercise",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				e, err := app.Exercises.CreateAlias(context.Background(), args[0], args[1])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Alias %s -> %s (id %d)\n", args[0], e.Name, e.ID)
				return nil
			},
		},
		&cobra.Command{
			Use:   "remove <alias>",
			Short: "Remove an alias",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := app.Exercises.DeleteAlias(context.Background(), args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed alias %s\n", args[0])
				return nil
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List all aliases",
			RunE: func(cmd *cobra.Command, args []string) error {
				aliases, exercises, err := app.Exercises.ListAliases(context.Background())
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), formatter.AliasTable(aliases, exercises))
				return nil
			},
		},
	)

	return cmd
}
