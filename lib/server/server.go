package server

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/pescuma/stratdash/lib/consoles"
	"github.com/pescuma/stratdash/lib/model"
	"github.com/pescuma/stratdash/lib/observability"
)

const DefaultPort = 2724

type Options struct {
	Port uint

	// Registerer receives the Prometheus metrics. The global registry is used when nil.
	Registerer prometheus.Registerer
}

func Run(console consoles.Console, catalog *model.Catalog, opts *Options) error {
	s, err := newServer(catalog, opts)
	if err != nil {
		return err
	}

	console.Printf("Loaded %v business units and %v regions\n", len(catalog.ListUnits()), len(catalog.ListRegions()))
	console.Printf("Starting server on port %v...\n", s.opts.Port)

	return s.run()
}

type server struct {
	opts *Options

	catalog *model.Catalog
	metrics *observability.DashboardCollector
}

func newServer(catalog *model.Catalog, opts *Options) (*server, error) {
	if opts == nil {
		opts = &Options{}
	}
	if opts.Port == 0 {
		opts.Port = DefaultPort
	}

	metrics, err := observability.NewDashboardCollector(opts.Registerer)
	if err != nil {
		return nil, err
	}

	metrics.SetCatalogUnits(len(catalog.ListUnits()))

	return &server{
		opts:    opts,
		catalog: catalog,
		metrics: metrics,
	}, nil
}

func init() {
	gin.SetMode(gin.ReleaseMode)
}

func (s *server) router() *gin.Engine {
	r := gin.Default()

	r.Use(s.observeRequests)

	s.initCatalog(r)
	s.initDashboard(r)
	s.initExport(r)

	r.GET("/metrics", gin.WrapH(s.metrics.Handler()))

	return r
}

func (s *server) run() error {
	return s.router().Run(fmt.Sprintf(":%v", s.opts.Port))
}

func (s *server) observeRequests(c *gin.Context) {
	c.Next()

	endpoint := c.FullPath()
	if endpoint == "" {
		endpoint = "unknown"
	}

	s.metrics.ObserveRequest(endpoint, c.Writer.Status())
}
