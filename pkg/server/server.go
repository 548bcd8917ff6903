package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/charlescarrari/moon"
	"github.com/charlescarrari/moon/pkg/host"
	"github.com/charlescarrari/moon/pkg/host/memdom"
	"github.com/charlescarrari/moon/pkg/render"
	"github.com/charlescarrari/moon/pkg/vdom"
)

const tracerName = "moon"

// Config configures the preview server.
type Config struct {
	// Addr is the listen address (host:port).
	Addr string

	// Title is the page title served at /.
	Title string
}

// Server serves a live-reconciled tree over HTTP. The tree lives in an
// in-memory host document; GET / returns it rendered to HTML, /ws pushes
// re-rendered HTML to connected clients after each pass, and /metrics
// exposes the Prometheus registry.
type Server struct {
	config   Config
	app      *moon.App
	mount    host.Node
	renderer *render.Renderer
	tracer   trace.Tracer
	logger   *slog.Logger

	upgrader websocket.Upgrader

	// treeMu serializes render passes and reads of the live tree. The
	// reconciler assumes a single writer; every websocket read loop can
	// trigger a pass, so passes must not interleave.
	treeMu sync.Mutex

	mu      sync.Mutex
	clients map[*websocket.Conn]bool

	httpServer *http.Server
}

// New creates a preview server rendering the tree produced by root into a
// fresh in-memory document.
func New(config Config, root func() *vdom.Node) *Server {
	if config.Title == "" {
		config.Title = "moon"
	}

	doc := memdom.NewDocument()
	mount := doc.CreateElement("body")

	s := &Server{
		config:   config,
		mount:    mount,
		renderer: render.NewRenderer(render.RendererConfig{}),
		tracer:   otel.Tracer(tracerName),
		logger:   slog.Default().With("component", "server"),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		clients: make(map[*websocket.Conn]bool),
	}
	s.app = moon.New(doc, root)
	s.app.Mount(mount)
	return s
}

// App returns the underlying app, for declaring signals and directives.
func (s *Server) App() *moon.App {
	return s.app
}

// Mount returns the live mount point holding the reconciled tree.
func (s *Server) Mount() host.Node {
	return s.mount
}

// Handler returns the HTTP handler serving the preview routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/ws", s.handleWS)
	r.Handle("/metrics", promhttp.Handler())

	return r
}

// Start listens on the configured address and serves until Shutdown or
// until the listener fails.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:         s.config.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}
	s.logger.Info("listening", "addr", s.config.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("listen on %s: %w", s.config.Addr, err)
	}
	return nil
}

// Shutdown gracefully stops the server, closing websocket clients.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	for conn := range s.clients {
		conn.Close()
	}
	s.clients = make(map[*websocket.Conn]bool)
	s.mu.Unlock()

	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// Rerender performs one reconciliation pass and pushes the re-rendered
// HTML to connected clients.
func (s *Server) Rerender(ctx context.Context) error {
	html, err := s.renderPass(ctx, "render_pass", s.app.Update)
	if err != nil {
		return err
	}
	s.broadcast(html)
	return nil
}

// Emit dispatches an internal signal on the app's bus (which triggers a
// render pass) and pushes the result to connected clients.
func (s *Server) Emit(ctx context.Context, event string, detail map[string]any) error {
	html, err := s.renderPass(ctx, "emit", func() {
		s.app.Bus().Emit(event, detail)
	}, attribute.String("event", event))
	if err != nil {
		return err
	}
	s.broadcast(html)
	return nil
}

// renderPass runs one mutation of the live tree and serializes it, all
// under treeMu so passes from concurrent clients never interleave.
func (s *Server) renderPass(ctx context.Context, name string, pass func(), attrs ...attribute.KeyValue) (string, error) {
	_, span := s.tracer.Start(ctx, name, trace.WithAttributes(attrs...))
	defer span.End()

	s.treeMu.Lock()
	pass()
	html, err := s.renderer.RenderToString(s.mount)
	children := len(s.mount.Children())
	s.treeMu.Unlock()

	span.SetAttributes(attribute.Int("live.children", children))
	if err != nil {
		err = fmt.Errorf("render live tree: %w", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}
	return html, nil
}

func (s *Server) renderBody() (string, error) {
	s.treeMu.Lock()
	defer s.treeMu.Unlock()

	html, err := s.renderer.RenderToString(s.mount)
	if err != nil {
		return "", fmt.Errorf("render live tree: %w", err)
	}
	return html, nil
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	body, err := s.renderBody()
	if err != nil {
		s.logger.Error("render failed", "error", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, pageTemplate, s.config.Title, body)
}

// wsMessage is a client-originated event frame.
type wsMessage struct {
	Event  string         `json:"event"`
	Detail map[string]any `json:"detail,omitempty"`
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("upgrade failed", "error", err)
		return
	}

	s.mu.Lock()
	s.clients[conn] = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.clients, conn)
		s.mu.Unlock()
		conn.Close()
	}()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				s.logger.Error("read error", "error", err)
			}
			return
		}

		var m wsMessage
		if err := json.Unmarshal(msg, &m); err != nil {
			s.logger.Warn("bad frame", "error", err)
			continue
		}
		if m.Event == "" {
			continue
		}
		if err := s.Emit(r.Context(), m.Event, m.Detail); err != nil {
			s.logger.Error("emit failed", "event", m.Event, "error", err)
		}
	}
}

func (s *Server) broadcast(html string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for conn := range s.clients {
		conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
		if err := conn.WriteMessage(websocket.TextMessage, []byte(html)); err != nil {
			s.logger.Warn("write failed, dropping client", "error", err)
			conn.Close()
			delete(s.clients, conn)
		}
	}
}

const pageTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
</head>
%s
<script>
(function () {
  var proto = location.protocol === "https:" ? "wss" : "ws";
  var ws = new WebSocket(proto + "://" + location.host + "/ws");
  ws.onmessage = function (ev) {
    document.body.outerHTML = ev.data;
  };
  window.moonEmit = function (event, detail) {
    ws.send(JSON.stringify({event: event, detail: detail || {}}));
  };
})();
</script>
</html>
`
