package http

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/inventario-web/internal/application/catalog"
	"github.com/jhoicas/inventario-web/internal/application/dto"
	"github.com/jhoicas/inventario-web/internal/application/editor"
	"github.com/jhoicas/inventario-web/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName   string
	CatalogUC *catalog.UseCase
	EditorUC  *editor.UseCase
	Log       *logger.Logger
}

// NewApp construye la aplicación Fiber con vistas, middlewares y rutas.
func NewApp(deps RouterDeps) *fiber.App {
	if deps.Log == nil {
		deps.Log = logger.Nop()
	}
	app := fiber.New(fiber.Config{
		AppName:      deps.AppName,
		Views:        NewViews(),
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: errorHandler,
	})
	app.Use(recover.New())
	app.Use(RequestID())
	app.Use(RequestLogger(deps.Log.Component("http")))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})

	Router(app, deps)
	return app
}

// Router registra las rutas de las vistas y de la API de modelado.
func Router(app *fiber.App, deps RouterDeps) {
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	app.Get("/", catalogHandler.Index)
	app.Get("/refresh", catalogHandler.Refresh)

	editorHandler := NewEditorHandler(deps.EditorUC)
	app.Get("/edit/:id", editorHandler.Show)
	app.Post("/edit/:id", editorHandler.Submit)

	api := app.Group("/api")
	shapeHandler := NewShapeHandler()
	api.Post("/shape", shapeHandler.Shape)
	api.Post("/keystroke", shapeHandler.Keystroke)
}

// errorHandler JSON para /api, página de error para el resto.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	if strings.HasPrefix(c.Path(), "/api") {
		return c.Status(code).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	msg := "Ocurrió un error inesperado."
	if code == fiber.StatusNotFound {
		msg = "La página solicitada no existe."
	}
	return c.Status(code).Render("error", messagePage{Title: "Error", Message: msg}, "layout")
}
