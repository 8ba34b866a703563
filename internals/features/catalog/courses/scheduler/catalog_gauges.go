package scheduler

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const DefaultSpec = "@every 5m"

// CountFunc returns the current value of one gauge.
type CountFunc func(ctx context.Context) (int64, error)

// Source binds a gauge name to the query that feeds it.
type Source struct {
	Name  string
	Help  string
	Count CountFunc
}

// CatalogGauges refreshes a set of prometheus gauges on a cron schedule.
type CatalogGauges struct {
	sources []Source
	gauges  []prometheus.Gauge
	timeout time.Duration
	log     zerolog.Logger
}

func NewCatalogGauges(reg prometheus.Registerer, sources ...Source) (*CatalogGauges, error) {
	g := &CatalogGauges{
		sources: sources,
		timeout: 10 * time.Second,
		log:     log.With().Str("component", "catalog_gauges").Logger(),
	}
	for _, s := range sources {
		gauge := prometheus.NewGauge(prometheus.GaugeOpts{Name: s.Name, Help: s.Help})
		if err := reg.Register(gauge); err != nil {
			return nil, err
		}
		g.gauges = append(g.gauges, gauge)
	}
	return g, nil
}

// Refresh runs every source once. A failing source keeps its last value.
func (g *CatalogGauges) Refresh(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	for i, s := range g.sources {
		n, err := s.Count(ctx)
		if err != nil {
			g.log.Warn().Err(err).Str("gauge", s.Name).Msg("refresh failed")
			continue
		}
		g.gauges[i].Set(float64(n))
	}
}

// Start refreshes once, then schedules Refresh with spec. Stop the returned
// cron on shutdown.
func (g *CatalogGauges) Start(spec string) (*cron.Cron, error) {
	if spec == "" {
		spec = DefaultSpec
	}
	c := cron.New(cron.WithChain(
		cron.Recover(cron.DefaultLogger),
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))
	if _, err := c.AddFunc(spec, func() { g.Refresh(context.Background()) }); err != nil {
		return nil, err
	}
	go g.Refresh(context.Background())
	c.Start()
	g.log.Info().Str("spec", spec).Int("gauges", len(g.gauges)).Msg("catalog gauges scheduled")
	return c, nil
}
