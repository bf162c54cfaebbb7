package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/inventario-web/internal/application/catalog"
	"github.com/jhoicas/inventario-web/internal/application/editor"
	"github.com/jhoicas/inventario-web/internal/infrastructure/dataservice"
	"github.com/jhoicas/inventario-web/pkg/clock"
	"github.com/jhoicas/inventario-web/pkg/config"
	"github.com/jhoicas/inventario-web/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:           "inventario",
	Short:         "Catálogo y editor de productos de la tienda",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(serveCmd, catalogCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// app dependencias compartidas por los comandos.
type app struct {
	cfg     *config.Config
	log     *logger.Logger
	catalog *catalog.UseCase
	editor  *editor.UseCase
}

func bootstrap() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("cargar configuración: %w", err)
	}
	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})

	client := dataservice.NewClient(cfg.DataService, log)
	productRepo := dataservice.NewProductRepository(client)
	categoryRepo := dataservice.NewCategoryRepository(client)

	return &app{
		cfg: cfg,
		log: log,
		catalog: catalog.NewUseCase(productRepo, categoryRepo, catalog.Options{
			PageSize:   cfg.UI.PageSize,
			DateLayout: cfg.UI.DateLayout,
		}, log),
		editor: editor.NewUseCase(productRepo, categoryRepo, clock.Real{}, editor.Options{
			RedirectDelay: cfg.UI.RedirectDelay,
		}, log),
	}, nil
}
