package dataservice_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-web/internal/domain"
	"github.com/jhoicas/inventario-web/internal/domain/entity"
	"github.com/jhoicas/inventario-web/internal/infrastructure/dataservice"
	"github.com/jhoicas/inventario-web/pkg/config"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const productsJSON = `[
  {"id": "1", "productCode": "CAM-01", "productName": "Camisa", "importDate": "2024-02-01", "quantity": 12, "categoryId": 2},
  {"id": 7, "productCode": "PAN-07", "productName": "Pantalón", "importDate": "2024-03-10", "quantity": "3", "categoryId": "1", "supplier": {"name": "ACME"}}
]`

const categoriesJSON = `[{"id": "1", "categoryName": "Pantalones"}, {"id": 2, "categoryName": "Camisas"}]`

type recorded struct {
	method string
	path   string
	body   []byte
}

type recorder struct {
	mu    sync.Mutex
	calls []recorded
}

func (r *recorder) add(c recorded) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, c)
}

func (r *recorder) all() []recorded {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]recorded(nil), r.calls...)
}

func newServer(t *testing.T, status int, rec *recorder) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if rec != nil {
			rec.add(recorded{method: r.Method, path: r.URL.Path, body: body})
		}
		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/products":
			_, _ = io.WriteString(w, productsJSON)
		case r.Method == http.MethodGet && r.URL.Path == "/products/7":
			_, _ = io.WriteString(w, `{"id": 7, "productCode": "PAN-07", "productName": "Pantalón", "importDate": "2024-03-10", "quantity": 3, "categoryId": 1, "supplier": {"name": "ACME"}}`)
		case r.Method == http.MethodGet && r.URL.Path == "/products/1":
			_, _ = io.WriteString(w, `{"id": "1", "productCode": "CAM-01", "productName": "Camisa", "importDate": "2024-02-01", "quantity": 12, "categoryId": "2"}`)
		case r.Method == http.MethodGet && r.URL.Path == "/categories":
			_, _ = io.WriteString(w, categoriesJSON)
		case r.Method == http.MethodPut:
			_, _ = w.Write(body)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newClient(srv *httptest.Server) *dataservice.Client {
	return dataservice.NewClient(config.DataServiceConfig{BaseURL: srv.URL, Timeout: 2 * time.Second}, nil)
}

// ──────────────────────────────────────────────────────────────────────────────
// Lectura
// ──────────────────────────────────────────────────────────────────────────────

func TestProductRepository_List_NormalizaIdentificadores(t *testing.T) {
	srv := newServer(t, http.StatusOK, nil)
	repo := dataservice.NewProductRepository(newClient(srv))

	products, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)

	assert.Equal(t, "1", products[0].ID)
	assert.Equal(t, "2", products[0].CategoryID, "categoryId numérico se lee como texto")
	assert.Equal(t, 12, products[0].Quantity)

	assert.Equal(t, "7", products[1].ID)
	assert.Equal(t, "1", products[1].CategoryID)
	assert.Equal(t, 3, products[1].Quantity, "cantidad como texto numérico")
	assert.JSONEq(t, `{"name": "ACME"}`, string(products[1].Extra["supplier"]))
}

func TestCategoryRepository_List(t *testing.T) {
	srv := newServer(t, http.StatusOK, nil)
	repo := dataservice.NewCategoryRepository(newClient(srv))

	cats, err := repo.List(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []entity.Category{{ID: "1", Name: "Pantalones"}, {ID: "2", Name: "Camisas"}}, cats)
}

func TestProductRepository_GetByID_NoEncontrado(t *testing.T) {
	srv := newServer(t, http.StatusOK, nil)
	repo := dataservice.NewProductRepository(newClient(srv))

	_, err := repo.GetByID(context.Background(), "404")

	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.True(t, dataservice.IsStatus(err, http.StatusNotFound))
}

func TestClient_EstadoNoExitosoEsError(t *testing.T) {
	srv := newServer(t, http.StatusInternalServerError, nil)
	repo := dataservice.NewProductRepository(newClient(srv))

	_, err := repo.List(context.Background())

	var serr *dataservice.StatusError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, http.StatusInternalServerError, serr.Status)
	assert.False(t, errors.Is(err, domain.ErrNotFound))
}

func TestClient_ErrorDeTransporte(t *testing.T) {
	srv := newServer(t, http.StatusOK, nil)
	client := newClient(srv)
	srv.Close()

	_, err := dataservice.NewCategoryRepository(client).List(context.Background())
	assert.Error(t, err)
}

func TestClient_ContextoCanceladoAbortaLaPeticion(t *testing.T) {
	srv := newServer(t, http.StatusOK, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := dataservice.NewProductRepository(newClient(srv)).List(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

// ──────────────────────────────────────────────────────────────────────────────
// Escritura
// ──────────────────────────────────────────────────────────────────────────────

func TestProductRepository_Replace_EnviaRegistroCompleto(t *testing.T) {
	rec := &recorder{}
	srv := newServer(t, http.StatusOK, rec)
	repo := dataservice.NewProductRepository(newClient(srv))

	p, err := repo.GetByID(context.Background(), "7")
	require.NoError(t, err)
	p.ProductName = "Pantalón recto"
	p.Quantity = 9

	require.NoError(t, repo.Replace(context.Background(), *p))

	calls := rec.all()
	require.Len(t, calls, 2)
	put := calls[1]
	assert.Equal(t, http.MethodPut, put.method)
	assert.Equal(t, "/products/7", put.path)
	assert.JSONEq(t, `{
		"id": 7,
		"productCode": "PAN-07",
		"productName": "Pantalón recto",
		"importDate": "2024-03-10",
		"quantity": 9,
		"categoryId": 1,
		"supplier": {"name": "ACME"}
	}`, string(put.body))
}

func TestProductRepository_Replace_DevuelveElIdConSuTipoOriginal(t *testing.T) {
	rec := &recorder{}
	srv := newServer(t, http.StatusOK, rec)
	repo := dataservice.NewProductRepository(newClient(srv))

	p, err := repo.GetByID(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "1", p.ID)
	p.Quantity = 4

	require.NoError(t, repo.Replace(context.Background(), *p))

	calls := rec.all()
	require.Len(t, calls, 2)
	assert.Equal(t, "/products/1", calls[1].path)
	assert.JSONEq(t, `{
		"id": "1",
		"productCode": "CAM-01",
		"productName": "Camisa",
		"importDate": "2024-02-01",
		"quantity": 4,
		"categoryId": 2
	}`, string(calls[1].body), "el id de texto sigue siendo texto; categoryId se envía como entero")
}

func TestProductRepository_Replace_IdentificadoresNoNumericos(t *testing.T) {
	rec := &recorder{}
	srv := newServer(t, http.StatusOK, rec)
	repo := dataservice.NewProductRepository(newClient(srv))

	err := repo.Replace(context.Background(), entity.Product{
		ID: "a1b2", ProductCode: "X", ProductName: "Y", ImportDate: "2024-01-01", Quantity: 1, CategoryID: "07",
	})
	require.NoError(t, err)

	calls := rec.all()
	require.Len(t, calls, 1)
	var body map[string]any
	require.NoError(t, json.Unmarshal(calls[0].body, &body))
	assert.Equal(t, "a1b2", body["id"])
	assert.Equal(t, "07", body["categoryId"], "solo los enteros canónicos se emiten como número")
	assert.Equal(t, "/products/a1b2", calls[0].path)
}

func TestProductRepository_Replace_FallaConEstadoNoExitoso(t *testing.T) {
	srv := newServer(t, http.StatusServiceUnavailable, nil)
	repo := dataservice.NewProductRepository(newClient(srv))

	err := repo.Replace(context.Background(), entity.Product{ID: "1", Quantity: 1, CategoryID: "1"})

	assert.True(t, dataservice.IsStatus(err, http.StatusServiceUnavailable))
}
