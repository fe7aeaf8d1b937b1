package main

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"recipebox/internal/domain"

	"github.com/spf13/cobra"
)

// listCmd shows and edits the shopping list
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the shopping list",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var listAddCmd = &cobra.Command{
	Use:     "add [count] [unit] [ingredient...]",
	Short:   "Add an item to the shopping list",
	Example: `  recipebox list add 2 kg potatoes`,
	Args:    cobra.MinimumNArgs(3),
	RunE:    runListAdd,
}

var listRemoveCmd = &cobra.Command{
	Use:     "rm [id]",
	Aliases: []string{"remove"},
	Short:   "Remove an item from the shopping list",
	Args:    cobra.ExactArgs(1),
	RunE:    runListRemove,
}

var listSetCmd = &cobra.Command{
	Use:   "set [id] [count]",
	Short: "Set the count of a shopping list item",
	Args:  cobra.ExactArgs(2),
	RunE:  runListSet,
}

func init() {
	listCmd.AddCommand(listAddCmd, listRemoveCmd, listSetCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	printItems(cmd, a.list.Items())
	return nil
}

func runListAdd(cmd *cobra.Command, args []string) error {
	count, err := parseCount(args[0])
	if err != nil {
		return err
	}

	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	item, err := a.list.Add(cmd.Context(), count, args[1], strings.Join(args[2:], " "))
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", item.ID, formatIngredient(item.Count, item.Unit, item.Ingredient))
	return nil
}

func runListRemove(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	return a.list.Delete(cmd.Context(), args[0])
}

func runListSet(cmd *cobra.Command, args []string) error {
	count, err := parseCount(args[1])
	if err != nil {
		return err
	}

	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	item, err := a.list.UpdateCount(cmd.Context(), args[0], count)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", item.ID, formatIngredient(item.Count, item.Unit, item.Ingredient))
	return nil
}

func parseCount(s string) (float64, error) {
	count, err := strconv.ParseFloat(s, 64)
	if err != nil || count < 0 {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidCount, s)
	}
	return count, nil
}

func printItems(cmd *cobra.Command, items []domain.ListItem) {
	out := cmd.OutOrStdout()
	if len(items) == 0 {
		fmt.Fprintln(out, "Shopping list is empty")
		return
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, it := range items {
		fmt.Fprintf(tw, "%s\t%s\n", it.ID, formatIngredient(it.Count, it.Unit, it.Ingredient))
	}
	tw.Flush()
}
