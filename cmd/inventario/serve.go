package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	httpRouter "github.com/jhoicas/inventario-web/internal/interfaces/http"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Inicia el servidor web",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	a, err := bootstrap()
	if err != nil {
		return err
	}
	log := a.log
	log.Info().
		Str("env", a.cfg.App.Env).
		Str("app", a.cfg.App.Name).
		Str("data_service", a.cfg.DataService.BaseURL).
		Msg("iniciando aplicación")

	app := httpRouter.NewApp(httpRouter.RouterDeps{
		AppName:   a.cfg.App.Name,
		CatalogUC: a.catalog,
		EditorUC:  a.editor,
		Log:       log,
	})

	go func() {
		if err := app.Listen(a.cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
	return nil
}
