// Package module wires the viewer session, service and transport together
package module

import (
	"sarifview/internal/adapters/seed"
	"sarifview/internal/core/discuss"
	"sarifview/internal/core/invalidate"
	"sarifview/internal/platform/logger"
	phttp "sarifview/internal/platform/net/http"
	str "sarifview/internal/platform/strings"
	"sarifview/internal/services/viewer/docs"
	"sarifview/internal/services/viewer/domain"
	viewerhttp "sarifview/internal/services/viewer/http"
	"sarifview/internal/services/viewer/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Options configures the viewer module
type Options struct {
	// Prefix is the route prefix, "/v1" when empty
	Prefix string
	// Review is the review collaborator; nil leaves staleness tracking inert
	Review invalidate.Review
	// Seed is applied to the session before the first request
	Seed *seed.File
	// Registry receives the viewer metrics and backs /metrics; nil disables both
	Registry *prometheus.Registry
	// Store options, mostly clock and id seams for tests
	Store []discuss.Option
	// Swagger mounts the API docs at /docs
	Swagger bool
}

// Ports exposed by the viewer module
type Ports struct {
	Viewer domain.ViewerPort
}

// Module implements the viewer module
type Module struct {
	name     string
	prefix   string
	svc      *service.Service
	registry *prometheus.Registry
	swagger  bool
	ports    Ports
}

// New builds the session and service and applies the seed
func New(opt Options) (*Module, error) {
	prefix := opt.Prefix
	if prefix == "" {
		prefix = "/v1"
	}

	sess := service.NewSession(opt.Review, service.WithStoreOptions(opt.Store...))
	if opt.Seed != nil {
		if err := opt.Seed.Apply(sess); err != nil {
			sess.Close()
			return nil, err
		}
	}

	var reg prometheus.Registerer
	if opt.Registry != nil {
		reg = opt.Registry
	}
	svc := service.New(sess, service.NewMetrics(reg))

	logger.Named("viewer").Info().
		Str("session_id", sess.ID).
		Bool("review", opt.Review != nil).
		Msg("viewer session ready")

	return &Module{
		name:     "viewer",
		prefix:   str.MustPrefix(prefix),
		svc:      svc,
		registry: opt.Registry,
		swagger:  opt.Swagger,
		ports:    Ports{Viewer: svc},
	}, nil
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return m.prefix }

// Ports returns the module ports
func (m *Module) Ports() Ports { return m.ports }

// SessionID is the id of the session every request is served from
func (m *Module) SessionID() string { return m.svc.Session().ID }

// Close detaches the session
func (m *Module) Close() { m.svc.Session().Close() }

// MountRoutes mounts the viewer endpoints under Prefix, /metrics and /docs at the root
func (m *Module) MountRoutes(r phttp.Router) {
	phttp.MountSwagger(r, m.swagger, func() string { return docs.ReadDoc(m.prefix) })
	r.Route(m.prefix, func(rr phttp.Router) {
		viewerhttp.Register(rr, m.svc)
	})
	if m.registry != nil {
		r.Handle("/metrics", promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry}))
	}
}
