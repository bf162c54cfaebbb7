package http

import (
	"embed"
	"io/fs"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gofiber/template/html/v2"

	domcatalog "github.com/jhoicas/inventario-web/internal/domain/catalog"
)

//go:embed views/*.html
var viewsFS embed.FS

// NewViews motor de plantillas sobre las vistas embebidas.
func NewViews() *html.Engine {
	sub, err := fs.Sub(viewsFS, "views")
	if err != nil {
		panic("vistas embebidas: " + err.Error())
	}
	engine := html.NewFileSystem(http.FS(sub), ".html")
	engine.AddFunc("catalogURL", catalogURL)
	return engine
}

// catalogURL enlace al catálogo conservando filtros.
func catalogURL(q domcatalog.Query, page int) string {
	v := url.Values{}
	if q.Name != "" {
		v.Set("q", q.Name)
	}
	if q.CategoryID != "" {
		v.Set("category", q.CategoryID)
	}
	if page > 1 {
		v.Set("page", strconv.Itoa(page))
	}
	if len(v) == 0 {
		return "/"
	}
	return "/?" + v.Encode()
}
