package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	v1 "sitetwin/internal/api/v1"
	"sitetwin/internal/config"
	"sitetwin/internal/dashboard"
	"sitetwin/internal/logger"
	"sitetwin/internal/server/handlers"
	"sitetwin/internal/store"
	"sitetwin/internal/util"
)

//go:embed templates/*.html
var templateFS embed.FS

// Server HTTP server
type Server struct {
	router *gin.Engine
	store  *store.Store
	dash   *dashboard.Dashboard
	api    *v1.Handler
	pages  *handlers.Pages
	log    *zap.Logger

	mu   sync.Mutex
	http *http.Server
}

// LoadTemplates parses the embedded page templates
func LoadTemplates() (*template.Template, error) {
	funcs := template.FuncMap{
		"number":   util.FormatNumber,
		"currency": util.FormatCurrency,
	}
	return template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
}

// NewServer creates the server. opts are applied to the dashboard after the defaults.
func NewServer(cfg *config.AppConfig, log *zap.Logger, opts ...dashboard.Option) (*Server, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if !cfg.Server.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}

	sqliteStore, err := store.New(cfg.DBPath())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize upload log: %w", err)
	}

	tmpl, err := LoadTemplates()
	if err != nil {
		sqliteStore.Close()
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	opts = append([]dashboard.Option{dashboard.WithLogger(log), dashboard.WithStore(sqliteStore)}, opts...)
	dash := dashboard.New(cfg, opts...)

	router := gin.New()
	router.Use(gin.Recovery(), logger.GinMiddleware(log))
	router.SetHTMLTemplate(tmpl)
	router.MaxMultipartMemory = cfg.Uploads.MaxBytes

	s := &Server{
		router: router,
		store:  sqliteStore,
		dash:   dash,
		api:    v1.NewHandler(dash),
		pages:  handlers.NewPages(dash, log),
		log:    log,
	}
	s.setupRoutes(cfg)
	return s, nil
}

func (s *Server) setupRoutes(cfg *config.AppConfig) {
	s.pages.RegisterRoutes(s.router)

	// site images and progress GIFs
	s.router.Static(dashboard.VisualsPrefix, cfg.Data.VisualsDir)

	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := s.router.Group("/api")
	{
		s.api.RegisterRoutes(api)
	}
}

// Handler the routed handler (tests)
func (s *Server) Handler() http.Handler {
	return s.router
}

// Dashboard page builder behind the server
func (s *Server) Dashboard() *dashboard.Dashboard {
	return s.dash
}

// Listen binds addr and registers the http server so Shutdown can stop it
func (s *Server) Listen(addr string) (net.Listener, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen %s: %w", addr, err)
	}
	s.mu.Lock()
	s.http = &http.Server{Addr: addr, Handler: s.router}
	s.mu.Unlock()
	return ln, nil
}

// Serve accepts connections on ln until Shutdown
func (s *Server) Serve(ln net.Listener) error {
	s.mu.Lock()
	srv := s.http
	s.mu.Unlock()
	if srv == nil {
		ln.Close()
		return errors.New("server not listening")
	}
	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the listener and closes the upload log
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.http
	s.mu.Unlock()

	var err error
	if srv != nil {
		err = srv.Shutdown(ctx)
	}
	if cerr := s.store.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}
