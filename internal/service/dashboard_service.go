package service

import (
	"context"
	"strings"
	"time"

	"github.com/lacak-next/internal/authz"
	"github.com/lacak-next/internal/cache"
	"github.com/lacak-next/internal/constants"
	"github.com/lacak-next/internal/logger"
	"github.com/lacak-next/internal/models"
	"github.com/lacak-next/internal/repository"
)

const dashboardCacheTTL = time.Minute

// DashboardSummary ringkasan operasional satu cabang (atau semua cabang)
type DashboardSummary struct {
	Branch      string            `json:"branch"`
	Total       int64             `json:"total"`
	Buckets     map[string]int64  `json:"buckets"`
	Active      []models.Shipment `json:"active"`
	RefreshedAt time.Time         `json:"refreshed_at"`
}

// DashboardService ringkasan dashboard dengan cache-aside Redis
type DashboardService struct {
	shipmentRepo repository.ShipmentRepository
	authzSvc     *authz.Service
}

// NewDashboardService membuat layanan dashboard
func NewDashboardService(shipmentRepo repository.ShipmentRepository, authzSvc *authz.Service) *DashboardService {
	return &DashboardService{
		shipmentRepo: shipmentRepo,
		authzSvc:     authzSvc,
	}
}

// Summary ringkasan untuk cabang efektif sesi. Selain admin selalu
// terpaku ke cabang sesi; admin boleh meminta satu cabang atau semua.
func (s *DashboardService) Summary(ctx context.Context, session authz.Session, requestedBranch string) (*DashboardSummary, error) {
	branch := strings.TrimSpace(requestedBranch)
	if !session.IsAdmin() {
		branch = strings.TrimSpace(session.Branch)
	} else if branch == constants.BranchAll {
		branch = ""
	}
	if err := s.authzSvc.Authorize(session, authz.ObjectDashboard, authz.ActionRead, branch); err != nil {
		return nil, err
	}

	key := dashboardCacheKey(branch)
	var cached DashboardSummary
	hit, err := cache.GetJSON(ctx, key, &cached)
	if err != nil {
		logger.Warnw("dashboard_cache_read_failed", "key", key, "error", err)
	}
	if hit {
		return &cached, nil
	}

	summary, err := s.Compute(branch)
	if err != nil {
		return nil, err
	}
	if err := cache.SetJSON(ctx, key, summary, dashboardCacheTTL); err != nil {
		logger.Warnw("dashboard_cache_write_failed", "key", key, "error", err)
	}
	return summary, nil
}

// Compute menghitung ringkasan langsung dari penyimpanan, tanpa cache
func (s *DashboardService) Compute(branch string) (*DashboardSummary, error) {
	counts, err := s.shipmentRepo.CountByStatus(branch)
	if err != nil {
		return nil, err
	}

	buckets := map[string]int64{
		constants.StatusBucketProcessing: 0,
		constants.StatusBucketShipping:   0,
		constants.StatusBucketDone:       0,
	}
	var total int64
	for status, count := range counts {
		buckets[ClassifyStatus(status)] += count
		total += count
	}

	shipments, _, err := s.shipmentRepo.List(repository.ShipmentListFilter{Branch: branch})
	if err != nil {
		return nil, err
	}
	active := make([]models.Shipment, 0, len(shipments))
	for _, shipment := range shipments {
		if ClassifyStatus(shipment.Status) != constants.StatusBucketDone {
			active = append(active, shipment)
		}
	}

	label := branch
	if label == "" {
		label = constants.BranchAll
	}
	return &DashboardSummary{
		Branch:      label,
		Total:       total,
		Buckets:     buckets,
		Active:      active,
		RefreshedAt: time.Now(),
	}, nil
}

// WarmAll menghangatkan ulang cache ringkasan semua cabang
func (s *DashboardService) WarmAll(ctx context.Context) error {
	summary, err := s.Compute("")
	if err != nil {
		return err
	}
	return cache.SetJSON(ctx, constants.CacheKeyDashboardAll, summary, dashboardCacheTTL)
}

// dashboardCacheKey kunci cache ringkasan per cabang
func dashboardCacheKey(branch string) string {
	trimmed := strings.TrimSpace(branch)
	if trimmed == "" || trimmed == constants.BranchAll {
		return constants.CacheKeyDashboardAll
	}
	return constants.CacheKeyDashboardPrefix + ":" + trimmed
}

// invalidateDashboardCache membuang kunci ringkasan yang sudah basi
func invalidateDashboardCache(ctx context.Context, keys ...string) error {
	return cache.Del(ctx, keys...)
}
