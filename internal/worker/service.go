package worker

import (
	"context"
	"errors"
	"time"

	"github.com/lacak-next/internal/config"
	"github.com/lacak-next/internal/logger"
	"github.com/lacak-next/internal/queue"

	"github.com/hibiken/asynq"
)

const (
	dashboardWarmInterval = time.Minute
)

// Service layanan antrian asinkron
type Service struct {
	name     string
	server   *asynq.Server
	mux      *asynq.ServeMux
	consumer *Consumer
}

// NewService membuat layanan antrian asinkron
func NewService(cfg *config.QueueConfig, consumer *Consumer) (*Service, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, errors.New("queue disabled")
	}
	if consumer == nil {
		return nil, errors.New("consumer is nil")
	}
	opt, serverCfg := queue.BuildServerConfig(cfg)
	server := asynq.NewServer(opt, serverCfg)
	mux := asynq.NewServeMux()
	consumer.Register(mux)
	return &Service{
		name:     "worker",
		server:   server,
		mux:      mux,
		consumer: consumer,
	}, nil
}

// Name nama layanan
func (s *Service) Name() string {
	if s == nil || s.name == "" {
		return "worker"
	}
	return s.name
}

// Start menjalankan layanan
func (s *Service) Start(ctx context.Context) error {
	if s == nil || s.server == nil || s.mux == nil {
		return errors.New("worker not initialized")
	}
	if s.consumer != nil && s.consumer.DashboardService != nil {
		go s.runDashboardWarmLoop(ctx)
	}
	return s.server.Run(s.mux)
}

// Stop menghentikan layanan
func (s *Service) Stop(ctx context.Context) error {
	if s == nil || s.server == nil {
		return nil
	}
	_ = ctx
	s.server.Shutdown()
	return nil
}

// runDashboardWarmLoop menghangatkan cache ringkasan dashboard berkala
// supaya pembacaan pertama setelah kadaluarsa tetap cepat.
func (s *Service) runDashboardWarmLoop(ctx context.Context) {
	if s == nil || s.consumer == nil || s.consumer.DashboardService == nil {
		return
	}
	runOnce := func() {
		if err := s.consumer.DashboardService.WarmAll(ctx); err != nil {
			logger.Warnw("worker_dashboard_warm_failed", "error", err)
		}
	}
	runOnce()

	ticker := time.NewTicker(dashboardWarmInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			runOnce()
		}
	}
}
