// Package app wires the service together: artifacts are loaded exactly
// once at startup into an immutable pipeline, the metrics sinks and the
// event bus are connected, and the HTTP surfaces are mounted. If any
// artifact is missing the constructor fails and the form is never
// served.
package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	apipredict "github.com/flightfare/farecast/api/predict"
	"github.com/flightfare/farecast/config"
	coremetrics "github.com/flightfare/farecast/core/metrics"
	"github.com/flightfare/farecast/core/predict"
	"github.com/flightfare/farecast/infra/artifact"
	"github.com/flightfare/farecast/infra/logger"
	"github.com/flightfare/farecast/infra/metrics"
	"github.com/flightfare/farecast/internal/eventbus"
	"github.com/flightfare/farecast/web"
)

// Service runs the fare prediction server.
type Service struct {
	cfg  *config.Config
	log  logger.Logger
	pipe *predict.Pipeline
	bus  *eventbus.Bus
	sink coremetrics.Sink
}

// New loads the artifacts and builds the service. A missing or invalid
// artifact is the only fatal condition: the error carries the file
// diagnostic and the caller should halt.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")
	if err := logger.SetGlobalLevel(cfg.Logging.Level); err != nil {
		return nil, fmt.Errorf("logging config: %w", err)
	}

	arts, err := artifact.Load(cfg.Artifacts.Dir)
	if err != nil {
		return nil, fmt.Errorf("load artifacts: %w", err)
	}
	logg.Infof("artifacts loaded from %s (encoders %s)", cfg.Artifacts.Dir, arts.Encoders.Version)

	var sinks []coremetrics.Sink
	if cfg.Metrics.PrometheusEnabled {
		sink, err := metrics.NewPromSink()
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sinks = append(sinks, sink)
	}
	if cfg.Metrics.InfluxEnabled {
		sink := metrics.NewInfluxSinkWithFallback(
			cfg.Metrics.InfluxURL, cfg.Metrics.InfluxToken,
			cfg.Metrics.InfluxOrg, cfg.Metrics.InfluxBucket)
		sinks = append(sinks, sink)
	}
	var sink coremetrics.Sink = coremetrics.NopSink{}
	if len(sinks) == 1 {
		sink = sinks[0]
	} else if len(sinks) > 1 {
		sink = metrics.NewMultiSink(sinks...)
	}

	pipe := predict.New(arts.Encoders, arts.Scaler, arts.Model, logger.New("pipeline"))
	return &Service{cfg: cfg, log: logg, pipe: pipe, bus: eventbus.New(), sink: sink}, nil
}

// Pipeline exposes the constructed pipeline, mainly for tests.
func (s *Service) Pipeline() *predict.Pipeline { return s.pipe }

// Run serves the form, the JSON API and the optional metrics endpoint
// until ctx is cancelled.
func (s *Service) Run(ctx context.Context) error {
	go s.recordEvents(ctx)

	if s.cfg.Metrics.PrometheusEnabled {
		go func() {
			if err := metrics.StartPromServer(ctx, s.cfg.Metrics.PrometheusAddr); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}

	mux := http.NewServeMux()
	web.NewForm(s.pipe, s.bus, logger.New("web")).Register(mux)
	apipredict.NewHandler(s.pipe, s.bus, logger.New("api")).Register(mux)

	srv := &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.log.Errorf("server shutdown: %v", err)
		}
	}()

	s.log.Infof("fare prediction server listening on %s", s.cfg.Server.Addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// recordEvents forwards prediction events from the bus to the metrics
// sink.
func (s *Service) recordEvents(ctx context.Context) {
	sub := s.bus.Subscribe()
	for {
		select {
		case ev, ok := <-sub:
			if !ok {
				return
			}
			pe, ok := ev.(coremetrics.PredictionEvent)
			if !ok {
				continue
			}
			if err := s.sink.RecordPrediction(pe); err != nil {
				s.log.Warnf("record prediction: %v", err)
			}
		case <-ctx.Done():
			return
		}
	}
}

// Close releases resources held by the service.
func (s *Service) Close() error {
	s.bus.Close()
	if closer, ok := s.sink.(interface{ Close() }); ok {
		closer.Close()
	}
	return nil
}
