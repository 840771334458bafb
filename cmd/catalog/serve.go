package main

import (
	"log/slog"

	"github.com/Veraticus/product-catalog/internal/web"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalog page over HTTP",
		Long: `Serve the catalog as an HTML page carrying data-cy hooks, plus a JSON
endpoint at /api/products. The server stops gracefully on interrupt.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			cat, err := loadCatalog(ctx, cfg.Fixtures)
			if err != nil {
				return err
			}

			webCfg := web.DefaultConfig()
			webCfg.Addr = cfg.Web.Addr

			srv, err := web.New(webCfg, cat, slog.Default())
			if err != nil {
				return err
			}

			slog.Info("Serving catalog", "addr", webCfg.Addr, "products", len(cat.Products()))
			return srv.ListenAndServe(ctx)
		},
	}

	cmd.Flags().String("addr", ":8080", "listen address")
	_ = viper.BindPFlag("web.addr", cmd.Flags().Lookup("addr"))

	return cmd
}
