package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/zinosalaam1/greyarchive/internal/sshserver"
)

const shutdownGrace = 10 * time.Second

func newServeCommand(configPath *string) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Open the archive to visitors over ssh",
		Long: `Listen for ssh connections. Each connection walks the archive on its own.

  greyarchive serve                 listen on ssh.addr (default :2222)
  greyarchive serve --addr :4000    listen elsewhere
  ssh -t -p 2222 localhost          visit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := openEnv(*configPath, true)
			if err != nil {
				return err
			}
			defer e.Close()

			if cmd.Flags().Changed("addr") {
				e.cfg.SSH.Addr = addr
			}

			srv, err := sshserver.New(sshserver.Options{
				SSH:     e.cfg.SSH,
				Timing:  e.cfg.Timing,
				Content: e.text,
				Archive: e.archiver(),
				Logger:  e.log,
			})
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() { errCh <- srv.ListenAndServe() }()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}
			e.log.Info().Msg("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				e.log.Warn().Err(err).Msg("shutdown")
				_ = srv.Close()
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides ssh.addr")
	return cmd
}
