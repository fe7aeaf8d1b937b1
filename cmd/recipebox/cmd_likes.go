package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// likesCmd lists liked recipes
var likesCmd = &cobra.Command{
	Use:   "likes",
	Short: "List liked recipes",
	Args:  cobra.NoArgs,
	RunE:  runLikes,
}

// likeCmd toggles a like
var likeCmd = &cobra.Command{
	Use:   "like [recipe-id]",
	Short: "Like a recipe, or unlike it if it is already liked",
	Args:  cobra.ExactArgs(1),
	RunE:  runLike,
}

func runLikes(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	out := cmd.OutOrStdout()
	likes := a.likes.All()
	if len(likes) == 0 {
		fmt.Fprintln(out, "No liked recipes")
		return nil
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tAUTHOR")
	for _, l := range likes {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", l.ID, l.Title, l.Author)
	}
	return tw.Flush()
}

func runLike(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	id := args[0]
	out := cmd.OutOrStdout()
	if a.likes.IsLiked(id) {
		if err := a.likes.Delete(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Fprintf(out, "Unliked %s\n", id)
		return nil
	}

	like, err := a.likes.Like(cmd.Context(), a.source, id)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Liked %s (%s)\n", like.Title, like.ID)
	return nil
}
