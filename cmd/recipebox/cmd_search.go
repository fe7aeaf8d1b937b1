package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"recipebox/internal/domain"

	"github.com/spf13/cobra"
)

var searchPage int

// searchCmd queries the recipe API
var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search recipes",
	Example: `  recipebox search pizza
  recipebox search "chicken curry" --page 2`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchPage, "page", "p", 1, "result page")
}

func runSearch(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	page, err := a.search.Search(cmd.Context(), strings.Join(args, " "))
	if err != nil {
		return err
	}
	if searchPage != 1 {
		if page, err = a.search.Page(searchPage); err != nil {
			return err
		}
	}

	printPage(cmd, page)
	return nil
}

func printPage(cmd *cobra.Command, page domain.Page) {
	out := cmd.OutOrStdout()
	if page.Total == 0 {
		fmt.Fprintf(out, "No recipes found for %q\n", page.Query)
		return
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tAUTHOR")
	for _, r := range page.Results {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", r.ID, r.Title, r.Author)
	}
	tw.Flush()
	fmt.Fprintf(out, "page %d of %d (%d recipes)\n", page.Page, page.Pages, page.Total)
}
