package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/eringen/jsonblog"
)

func (c *cli) newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Load the post collection and report unreachable posts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCheck(cmd.Context(), cmd.OutOrStdout())
		},
	}
}

func (c *cli) loadPosts(ctx context.Context) ([]jsonblog.Post, error) {
	src, err := jsonblog.NewSource(c.cfg.Source)
	if err != nil {
		return nil, err
	}
	if closer, ok := src.(io.Closer); ok {
		defer closer.Close()
	}
	return src.Posts(ctx)
}

func (c *cli) runCheck(ctx context.Context, out io.Writer) error {
	posts, err := c.loadPosts(ctx)
	if err != nil {
		return err
	}
	report := jsonblog.CheckPosts(posts)
	fmt.Fprintf(out, "%d posts loaded from %s\n", report.Posts, c.cfg.Source)
	for _, s := range report.Shadowed {
		fmt.Fprintf(out, "  post #%d (%s) is unreachable: post #%d has the same route\n", s.Index, s.Path, s.ByIndex)
	}
	for _, i := range report.EmptySlugs {
		fmt.Fprintf(out, "  post #%d: title %q produces an empty slug\n", i, posts[i].Title)
	}
	if !report.OK() {
		return fmt.Errorf("%d problem(s) found", len(report.Shadowed)+len(report.EmptySlugs))
	}
	fmt.Fprintln(out, "ok")
	return nil
}
