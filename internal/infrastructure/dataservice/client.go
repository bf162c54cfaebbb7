package dataservice

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/jhoicas/inventario-web/internal/domain"
	"github.com/jhoicas/inventario-web/pkg/config"
	"github.com/jhoicas/inventario-web/pkg/logger"
)

// StatusError respuesta no exitosa del servicio de datos.
type StatusError struct {
	Method string
	Path   string
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("servicio de datos: %s %s → HTTP %d", e.Method, e.Path, e.Status)
}

// Client cliente REST del servicio de datos (productos y categorías).
// Usa net/http de la librería estándar; el contexto de la petición entrante cancela la saliente.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

// NewClient construye el cliente con el timeout configurado.
func NewClient(cfg config.DataServiceConfig, log *logger.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: timeout},
		log:        log.Component("dataservice"),
	}
}

// resourcePath construye /{collection}[/{id}] escapando el id.
func resourcePath(collection string, id ...string) string {
	p := "/" + collection
	for _, part := range id {
		p += "/" + url.PathEscape(part)
	}
	return p
}

// getJSON hace GET y decodifica el cuerpo en out.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	body, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decodificar %s: %w", path, err)
	}
	return nil
}

// putJSON envía payload como JSON con PUT; el cuerpo de la respuesta se ignora.
func (c *Client) putJSON(ctx context.Context, path string, payload any) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("serializar %s: %w", path, err)
	}
	_, err = c.do(ctx, http.MethodPut, path, b)
	return err
}

func (c *Client) do(ctx context.Context, method, path string, payload []byte) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("crear petición: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("method", method).Str("path", path).Msg("servicio de datos inaccesible")
		return nil, fmt.Errorf("servicio de datos: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("leer respuesta de %s: %w", path, err)
	}

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("servicio de datos")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		serr := &StatusError{Method: method, Path: path, Status: resp.StatusCode}
		if resp.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("%w: %w", domain.ErrNotFound, serr)
		}
		return nil, serr
	}
	return body, nil
}

// IsStatus indica si err proviene de una respuesta HTTP con el código dado.
func IsStatus(err error, status int) bool {
	var serr *StatusError
	return errors.As(err, &serr) && serr.Status == status
}
