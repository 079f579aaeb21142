package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/valyala/fasthttp"

	"brutnet/internal/config"
	"brutnet/internal/engine"
	"brutnet/internal/handler"
	"brutnet/internal/salary"
)

func newServeCommand(opts *globalOptions) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP calculation service",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Load()
			if port != "" {
				cfg.Port = port
			}
			log := config.InitLogger(os.Stdout, cfg.LogLevel)

			table, err := opts.table()
			if err != nil {
				return fmt.Errorf("load rate table: %w", err)
			}

			h := handler.New(engine.New(salary.NewConverter(table), log), table, log)
			srv := &fasthttp.Server{
				Handler:            h.Route,
				Name:               "brutnet",
				ReadTimeout:        cfg.ReadTimeout,
				WriteTimeout:       cfg.WriteTimeout,
				MaxRequestBodySize: cfg.MaxBodySize,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				log.Info("brutnet starting", "port", cfg.Port, "rates_year", table.Year)
				errCh <- srv.ListenAndServe(":" + cfg.Port)
			}()

			select {
			case err := <-errCh:
				return fmt.Errorf("server failed: %w", err)
			case <-ctx.Done():
				log.Info("shutting down")
				return srv.Shutdown()
			}
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "listen port (default $PORT or 8080)")
	return cmd
}

