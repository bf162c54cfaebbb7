package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jhoicas/inventario-web/internal/application/catalog"
	domcatalog "github.com/jhoicas/inventario-web/internal/domain/catalog"
	"github.com/jhoicas/inventario-web/internal/domain/notice"
)

var (
	catalogName     string
	catalogCategory string
	catalogPage     string
	catalogRefresh  bool
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Muestra una página del catálogo en la terminal",
	Long:  `Carga productos y categorías del servicio de datos y muestra la página pedida con los mismos filtros y orden que la vista web.`,
	RunE:  runCatalog,
}

func init() {
	catalogCmd.Flags().StringVar(&catalogName, "q", "", "buscar por nombre (sin distinguir mayúsculas)")
	catalogCmd.Flags().StringVar(&catalogCategory, "category", "", "id de categoría")
	catalogCmd.Flags().StringVar(&catalogPage, "page", "1", "página")
	catalogCmd.Flags().BoolVar(&catalogRefresh, "refresh", false, "ignorar filtros y recargar")
}

func runCatalog(cmd *cobra.Command, args []string) error {
	a, err := bootstrap()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	printState(out, catalog.Loading{}, nil)

	var (
		state   catalog.State
		notices notice.List
	)
	if catalogRefresh {
		state, notices = a.catalog.Refresh(cmd.Context())
	} else {
		state, notices = a.catalog.View(cmd.Context(), domcatalog.ParseQuery(catalogName, catalogCategory, catalogPage))
	}
	printState(out, state, notices)
	if f, ok := state.(catalog.Failed); ok {
		return f.Err
	}
	return nil
}

// printState escribe el estado de la vista como texto: indicador de carga, tabla o aviso.
func printState(w io.Writer, state catalog.State, notices notice.List) {
	for _, n := range notices {
		fmt.Fprintf(w, "[%s] %s\n", n.Level, n.Message)
	}

	var proj domcatalog.Projection
	switch s := state.(type) {
	case catalog.Loading:
		fmt.Fprintln(w, "Cargando datos...")
		return
	case catalog.Failed:
		fmt.Fprintln(w, "No hay datos disponibles.")
		return
	case catalog.Ready:
		proj = s.Projection
	}

	if proj.Empty {
		fmt.Fprintln(w, "No se encontraron productos.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCÓDIGO\tNOMBRE\tCATEGORÍA\tINGRESO\tCANTIDAD")
	for _, r := range proj.Rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%d\n",
			r.Product.ID, r.Product.ProductCode, r.Product.ProductName, r.CategoryName, r.ImportDate, r.Product.Quantity)
	}
	_ = tw.Flush()
	fmt.Fprintf(w, "Mostrando %d-%d de %d productos (página %d de %d)\n",
		proj.From, proj.To, proj.Total, proj.Page, proj.TotalPages)
}
