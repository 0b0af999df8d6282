package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/eringen/jsonblog"
	"github.com/eringen/jsonblog/views"
)

const shutdownTimeout = 10 * time.Second

func (c *cli) newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the blog over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context())
		},
	}
	cmd.Flags().String("addr", "", "listen address (default :3000)")
	cmd.Flags().Bool("watch", false, "drop cached posts when the source file changes")
	_ = c.v.BindPFlag("addr", cmd.Flags().Lookup("addr"))
	_ = c.v.BindPFlag("watch", cmd.Flags().Lookup("watch"))
	return cmd
}

func (c *cli) runServe(ctx context.Context) error {
	app := jsonblog.New(c.cfg.SiteConfig, views.Default(), jsonblog.WithStaticDir(c.cfg.StaticDir))
	if err := app.Setup(); err != nil {
		return err
	}
	defer app.Close()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(app.Start)
	if app.Config.Watch {
		g.Go(func() error {
			return app.Watch(gctx)
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return app.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
