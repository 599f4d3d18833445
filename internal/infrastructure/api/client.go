package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"golang.org/x/time/rate"

	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/application/ports"
	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/domain"
	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/infrastructure/metrics"
	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/pkg/logger"
)

// Verificar en tiempo de compilación que Client implementa los puertos.
var (
	_ ports.AuthAPI      = (*Client)(nil)
	_ ports.CatalogAPI   = (*Client)(nil)
	_ ports.OrderAPI     = (*Client)(nil)
	_ ports.DashboardAPI = (*Client)(nil)
)

const (
	defaultTimeout = 10 * time.Second
	defaultMaxBody = 4 << 20

	// ReasonUnauthorized motivo que se pasa a ForceLogout ante un 401.
	ReasonUnauthorized = "unauthorized"
)

// Options parámetros del cliente.
type Options struct {
	BaseURL      string
	Timeout      time.Duration
	RateLimit    float64 // llamadas/s; 0 = sin límite
	RateBurst    int
	MaxBodyBytes int64
	HTTPClient   *http.Client // opcional; si es nil se crea uno con Timeout
}

// Client adaptador HTTP hacia el backend Laravel del restaurante.
// Es el único punto que conoce la forma de las respuestas: desenvuelve el sobre
// {"data": ...} y convierte cualquier status no 2xx en *domain.APIError.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	maxBody    int64
	log        *logger.Logger
	metrics    *metrics.Metrics
	newID      func() string

	mu    sync.RWMutex
	hooks ports.SessionHooks
}

// New construye el cliente. log y m pueden ser nil.
func New(opts Options, log *logger.Logger, m *metrics.Metrics) *Client {
	if log == nil {
		log = logger.Nop()
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: timeout}
	}
	maxBody := opts.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = defaultMaxBody
	}

	limiter := rate.NewLimiter(rate.Inf, 0)
	if opts.RateLimit > 0 {
		burst := opts.RateBurst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), burst)
	}

	return &Client{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		httpClient: hc,
		limiter:    limiter,
		maxBody:    maxBody,
		log:        log.Named("api"),
		metrics:    m,
		newID:      uuid.NewString,
	}
}

// UseSession conecta la sesión: de ella sale el token Bearer y a ella se avisa
// cuando el backend responde 401. Se llama una vez, después de construir la sesión.
func (c *Client) UseSession(h ports.SessionHooks) {
	c.mu.Lock()
	c.hooks = h
	c.mu.Unlock()
}

func (c *Client) session() ports.SessionHooks {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hooks
}

// ── Transporte ────────────────────────────────────────────────────────────────

// call describe una petición. route es la plantilla (/orders/:id) usada en métricas y logs.
type call struct {
	method string
	path   string
	route  string
	body   any
}

// do ejecuta la llamada y devuelve el payload ya desenvuelto del sobre "data".
// Un cuerpo vacío (204 o similar) devuelve un gjson.Result inexistente.
func (c *Client) do(ctx context.Context, rq call) (gjson.Result, error) {
	if rq.route == "" {
		rq.route = rq.path
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return gjson.Result{}, &domain.APIError{Kind: domain.KindNetwork, Err: fmt.Errorf("esperar turno: %w", err)}
	}

	var reader io.Reader
	if rq.body != nil {
		payload, err := json.Marshal(rq.body)
		if err != nil {
			return gjson.Result{}, fmt.Errorf("api: serializar %s %s: %w", rq.method, rq.route, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, rq.method, c.baseURL+rq.path, reader)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("api: crear request %s %s: %w", rq.method, rq.route, err)
	}
	requestID := c.newID()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if h := c.session(); h != nil {
		if tok := h.Token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.ObserveAPI(rq.route, rq.method, 0, time.Since(start))
		c.log.Warn().Err(err).Str("method", rq.method).Str("route", rq.route).
			Str("request_id", requestID).Msg("api: fallo de transporte")
		if ctx.Err() != nil {
			err = ctx.Err()
		}
		return gjson.Result{}, &domain.APIError{Kind: domain.KindNetwork, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody))
	elapsed := time.Since(start)
	c.metrics.ObserveAPI(rq.route, rq.method, resp.StatusCode, elapsed)
	if err != nil {
		return gjson.Result{}, &domain.APIError{Kind: domain.KindNetwork, Status: resp.StatusCode, Err: fmt.Errorf("leer respuesta: %w", err)}
	}

	ev := c.log.Debug()
	if resp.StatusCode >= http.StatusInternalServerError {
		ev = c.log.Warn()
	}
	ev.Str("method", rq.method).Str("route", rq.route).Int("status", resp.StatusCode).
		Dur("elapsed", elapsed).Str("request_id", requestID).Msg("api: respuesta")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := decodeError(resp.StatusCode, raw)
		if apiErr.Kind == domain.KindAuth {
			if h := c.session(); h != nil {
				h.ForceLogout(ReasonUnauthorized)
			}
		}
		return gjson.Result{}, apiErr
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return gjson.Result{}, nil
	}
	if !gjson.ValidBytes(raw) {
		return gjson.Result{}, &domain.APIError{Kind: domain.KindServer, Status: resp.StatusCode, Message: "respuesta no es JSON"}
	}
	return unwrapEnvelope(gjson.ParseBytes(raw)), nil
}

// ── Normalización ─────────────────────────────────────────────────────────────

// unwrapEnvelope devuelve el contenido de {"data": ...} si la respuesta viene envuelta.
func unwrapEnvelope(res gjson.Result) gjson.Result {
	if res.IsObject() {
		if d := res.Get("data"); d.IsObject() || d.IsArray() {
			return d
		}
	}
	return res
}

// decodeError arma el APIError a partir del cuerpo {"message": ..., "errors": {campo: [msgs]}}.
// De cada campo se conserva el primer mensaje.
func decodeError(status int, raw []byte) *domain.APIError {
	apiErr := &domain.APIError{Kind: domain.KindForStatus(status), Status: status}
	if !gjson.ValidBytes(raw) {
		return apiErr
	}
	res := gjson.ParseBytes(raw)
	apiErr.Message = res.Get("message").String()
	if apiErr.Message == "" {
		apiErr.Message = res.Get("error").String()
	}

	if errs := res.Get("errors"); errs.IsObject() {
		fields := make(map[string]string)
		errs.ForEach(func(k, v gjson.Result) bool {
			msg := v.String()
			if v.IsArray() {
				msg = v.Get("0").String()
			}
			if msg != "" {
				fields[k.String()] = msg
			}
			return true
		})
		if len(fields) > 0 {
			apiErr.Fields = fields
			if apiErr.Kind == domain.KindServer && status < http.StatusInternalServerError {
				apiErr.Kind = domain.KindValidation
			}
		}
	}
	return apiErr
}

// decodeInto decodifica un objeto obligatorio (login, usuario, estadísticas).
func decodeInto(res gjson.Result, out any) error {
	if !res.IsObject() {
		return &domain.APIError{Kind: domain.KindServer, Message: "respuesta vacía o sin objeto"}
	}
	if err := json.Unmarshal([]byte(res.Raw), out); err != nil {
		return &domain.APIError{Kind: domain.KindServer, Message: "respuesta con formato inesperado", Err: err}
	}
	return nil
}

// decodeEntity como decodeInto pero tolera que el backend no devuelva la entidad
// (204 o {"message": "ok"} sin id): devuelve false y el llamador decide.
func decodeEntity(res gjson.Result, out any) (bool, error) {
	if !res.IsObject() || !res.Get("id").Exists() {
		return false, nil
	}
	if err := decodeInto(res, out); err != nil {
		return false, err
	}
	return true, nil
}

// decodeList decodifica una colección. Cualquier cosa que no sea un arreglo se trata
// como colección vacía; un elemento con formato inválido se descarta sin romper el resto.
func decodeList[T any](res gjson.Result) []T {
	out := []T{}
	if !res.IsArray() {
		return out
	}
	res.ForEach(func(_, item gjson.Result) bool {
		var v T
		if err := json.Unmarshal([]byte(item.Raw), &v); err == nil {
			out = append(out, v)
		}
		return true
	})
	return out
}
