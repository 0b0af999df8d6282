package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"

	"github.com/eringen/jsonblog"
)

func (c *cli) newExportCmd() *cobra.Command {
	var outDir string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write sitemap.xml and feed.xml for the post collection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runExport(cmd.Context(), outDir, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&outDir, "out", ".", "output directory")
	return cmd
}

func (c *cli) runExport(ctx context.Context, outDir string, out io.Writer) error {
	posts, err := c.loadPosts(ctx)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	files := []struct {
		name  string
		write func(w io.Writer) error
	}{
		{"sitemap.xml", func(w io.Writer) error { return jsonblog.WriteSitemap(w, c.cfg.URL, posts) }},
		{"feed.xml", func(w io.Writer) error { return jsonblog.WriteFeed(w, c.cfg.SiteConfig, posts) }},
	}
	for _, f := range files {
		var buf bytes.Buffer
		if err := f.write(&buf); err != nil {
			return fmt.Errorf("render %s: %w", f.name, err)
		}
		path := filepath.Join(outDir, f.name)
		// Readers never see a half-written file.
		if err := atomic.WriteFile(path, &buf); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		fmt.Fprintf(out, "  wrote %s\n", path)
	}
	return nil
}
