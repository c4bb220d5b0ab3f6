package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/lacak-next/internal/authz"
	"github.com/lacak-next/internal/constants"
	"github.com/lacak-next/internal/document"
	"github.com/lacak-next/internal/logger"
	"github.com/lacak-next/internal/models"
	"github.com/lacak-next/internal/queue"
	"github.com/lacak-next/internal/repository"

	"gorm.io/gorm"
)

// ShipmentService layanan kiriman. Semua mutasi melewati Authorize lebih
// dulu; penolakan terjadi sebelum repository tersentuh.
type ShipmentService struct {
	shipmentRepo repository.ShipmentRepository
	logRepo      repository.StatusLogRepository
	authzSvc     *authz.Service
	queueClient  *queue.Client
	generator    *document.Generator
}

// NewShipmentService membuat layanan kiriman
func NewShipmentService(
	shipmentRepo repository.ShipmentRepository,
	logRepo repository.StatusLogRepository,
	authzSvc *authz.Service,
	queueClient *queue.Client,
	generator *document.Generator,
) *ShipmentService {
	return &ShipmentService{
		shipmentRepo: shipmentRepo,
		logRepo:      logRepo,
		authzSvc:     authzSvc,
		queueClient:  queueClient,
		generator:    generator,
	}
}

// CreateShipmentInput isian pembuatan kiriman
type CreateShipmentInput struct {
	OrderID         string
	CustomerName    string
	CustomerPhone   string
	DeliveryAddress string
	ProductName     string
	DeliveryType    string
	OldProductName  string
	InstallationOpt string
	InstallationFee models.Money
	SalesName       string
	SalesPhone      string
	Branch          string
	Status          string
	ReportedAt      *time.Time
}

// UpdateShipmentInput pembaruan parsial; field nil tidak disentuh
type UpdateShipmentInput struct {
	Status          *string
	Courier         *string
	TrackingNumber  *string
	CustomerName    *string
	CustomerPhone   *string
	DeliveryAddress *string
	ProductName     *string
	ReportedAt      *time.Time
}

// Create membuat kiriman baru. Status kosong diisi status awal kanonik.
func (s *ShipmentService) Create(session authz.Session, input CreateShipmentInput) (*models.Shipment, error) {
	if err := s.authzSvc.Authorize(session, authz.ObjectShipments, authz.ActionCreate, input.Branch); err != nil {
		return nil, err
	}
	if err := validateCreateInput(&input); err != nil {
		return nil, err
	}

	now := time.Now()
	reportedAt := now
	if input.ReportedAt != nil {
		reportedAt = *input.ReportedAt
	}
	status := strings.TrimSpace(input.Status)
	if status == "" {
		status = constants.ShipmentStatusAwaitingConfirm
	}

	shipment := &models.Shipment{
		OrderID:         strings.TrimSpace(input.OrderID),
		CustomerName:    strings.TrimSpace(input.CustomerName),
		CustomerPhone:   strings.TrimSpace(input.CustomerPhone),
		DeliveryAddress: strings.TrimSpace(input.DeliveryAddress),
		ProductName:     strings.TrimSpace(input.ProductName),
		DeliveryType:    input.DeliveryType,
		OldProductName:  strings.TrimSpace(input.OldProductName),
		InstallationOpt: input.InstallationOpt,
		InstallationFee: input.InstallationFee,
		SalesName:       strings.TrimSpace(input.SalesName),
		SalesPhone:      strings.TrimSpace(input.SalesPhone),
		Branch:          strings.TrimSpace(input.Branch),
		Status:          status,
		LastUpdated:     reportedAt,
	}

	if err := s.shipmentRepo.Create(shipment); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateOrderID
		}
		return nil, err
	}

	s.appendStatusLog(session, shipment.OrderID, "", status, reportedAt)
	s.invalidateDashboard(shipment.Branch)

	if err := s.queueClient.EnqueueRenderNote(queue.RenderNotePayload{OrderID: shipment.OrderID}); err != nil {
		logger.Warnw("render_note_enqueue_failed", "order_id", shipment.OrderID, "error", err)
	}

	logger.Infow("shipment_created",
		"order_id", shipment.OrderID,
		"branch", shipment.Branch,
		"role", session.Role,
	)
	return shipment, nil
}

// Get membaca satu kiriman dengan pembatasan cabang
func (s *ShipmentService) Get(session authz.Session, orderID string) (*models.Shipment, error) {
	shipment, err := s.shipmentRepo.GetByOrderID(strings.TrimSpace(orderID))
	if err != nil {
		return nil, err
	}
	if shipment == nil {
		return nil, ErrShipmentNotFound
	}
	if err := s.authzSvc.Authorize(session, authz.ObjectShipments, authz.ActionRead, shipment.Branch); err != nil {
		return nil, err
	}
	return shipment, nil
}

// List daftar kiriman; selain admin selalu terpaku ke cabang sesi
func (s *ShipmentService) List(session authz.Session, filter repository.ShipmentListFilter) ([]models.Shipment, int64, error) {
	filter.Branch = s.effectiveBranch(session, filter.Branch)
	if err := s.authzSvc.Authorize(session, authz.ObjectShipments, authz.ActionRead, filter.Branch); err != nil {
		return nil, 0, err
	}
	return s.shipmentRepo.List(filter)
}

// Update pembaruan parsial. last_updated selalu diperbarui ke waktu
// kejadian yang dilaporkan pemanggil, bukan jam server.
func (s *ShipmentService) Update(session authz.Session, orderID string, input UpdateShipmentInput) (*models.Shipment, error) {
	orderID = strings.TrimSpace(orderID)
	existing, err := s.shipmentRepo.GetByOrderID(orderID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrShipmentNotFound
	}
	if err := s.authzSvc.Authorize(session, authz.ObjectShipments, authz.ActionUpdate, existing.Branch); err != nil {
		return nil, err
	}

	reportedAt := time.Now()
	if input.ReportedAt != nil {
		reportedAt = *input.ReportedAt
	}

	updates := map[string]interface{}{
		"last_updated": reportedAt,
	}
	var statusChanged bool
	var newStatus string
	if input.Status != nil {
		newStatus = strings.TrimSpace(*input.Status)
		if newStatus != "" && newStatus != existing.Status {
			updates["status"] = newStatus
			statusChanged = true
		}
	}
	if input.Courier != nil {
		updates["courier"] = strings.TrimSpace(*input.Courier)
	}
	if input.TrackingNumber != nil {
		updates["tracking_number"] = strings.TrimSpace(*input.TrackingNumber)
	}
	if input.CustomerName != nil {
		name := strings.TrimSpace(*input.CustomerName)
		if name == "" {
			return nil, ErrCustomerNameRequired
		}
		updates["customer_name"] = name
	}
	if input.CustomerPhone != nil {
		updates["customer_phone"] = strings.TrimSpace(*input.CustomerPhone)
	}
	if input.DeliveryAddress != nil {
		updates["delivery_address"] = strings.TrimSpace(*input.DeliveryAddress)
	}
	if input.ProductName != nil {
		name := strings.TrimSpace(*input.ProductName)
		if name == "" {
			return nil, ErrProductNameRequired
		}
		updates["product_name"] = name
	}

	if err := s.shipmentRepo.Update(orderID, updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShipmentNotFound
		}
		return nil, err
	}

	if statusChanged {
		s.appendStatusLog(session, orderID, existing.Status, newStatus, reportedAt)
	}
	s.invalidateDashboard(existing.Branch)

	logger.Infow("shipment_updated",
		"order_id", orderID,
		"status_changed", statusChanged,
		"role", session.Role,
	)
	return s.shipmentRepo.GetByOrderID(orderID)
}

// Delete menghapus satu kiriman
func (s *ShipmentService) Delete(session authz.Session, orderID string) error {
	orderID = strings.TrimSpace(orderID)
	existing, err := s.shipmentRepo.GetByOrderID(orderID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrShipmentNotFound
	}
	if err := s.authzSvc.Authorize(session, authz.ObjectShipments, authz.ActionDelete, existing.Branch); err != nil {
		return err
	}
	if err := s.shipmentRepo.Delete(orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrShipmentNotFound
		}
		return err
	}
	s.invalidateDashboard(existing.Branch)
	logger.Infow("shipment_deleted", "order_id", orderID, "role", session.Role)
	return nil
}

// Purge menghapus permanen seluruh kiriman, hanya admin
func (s *ShipmentService) Purge(session authz.Session) (int64, error) {
	if err := s.authzSvc.Authorize(session, authz.ObjectPurge, authz.ActionPurge, ""); err != nil {
		return 0, err
	}
	affected, err := s.shipmentRepo.PurgeAll()
	if err != nil {
		return 0, err
	}
	s.invalidateDashboard("")
	logger.Warnw("shipments_purged", "affected", affected, "role", session.Role)
	return affected, nil
}

// Track pencarian publik tanpa autentikasi. Gangguan penyimpanan
// diturunkan menjadi hasil kosong supaya halaman lacak tetap hidup.
func (s *ShipmentService) Track(query string) []models.Shipment {
	shipments, err := s.shipmentRepo.Find(query)
	if err != nil {
		logger.Warnw("public_track_degraded", "query", query, "error", err)
		return []models.Shipment{}
	}
	if shipments == nil {
		return []models.Shipment{}
	}
	return shipments
}

// TrackByOrderID pencarian publik persis nomor order (kontrak QR)
func (s *ShipmentService) TrackByOrderID(orderID string) *models.Shipment {
	shipment, err := s.shipmentRepo.GetByOrderID(strings.TrimSpace(orderID))
	if err != nil {
		logger.Warnw("public_track_degraded", "order_id", orderID, "error", err)
		return nil
	}
	return shipment
}

// StatusLogs riwayat status satu kiriman
func (s *ShipmentService) StatusLogs(session authz.Session, orderID string, page, pageSize int) ([]models.StatusLog, int64, error) {
	shipment, err := s.shipmentRepo.GetByOrderID(strings.TrimSpace(orderID))
	if err != nil {
		return nil, 0, err
	}
	if shipment == nil {
		return nil, 0, ErrShipmentNotFound
	}
	if err := s.authzSvc.Authorize(session, authz.ObjectShipments, authz.ActionRead, shipment.Branch); err != nil {
		return nil, 0, err
	}
	return s.logRepo.ListByOrderID(repository.StatusLogListFilter{
		OrderID:  shipment.OrderID,
		Page:     page,
		PageSize: pageSize,
	})
}

// Note merender surat jalan; waktu cetak memakai jam server
func (s *ShipmentService) Note(session authz.Session, orderID string) (string, error) {
	shipment, err := s.documentShipment(session, orderID)
	if err != nil {
		return "", err
	}
	return s.generator.Note(shipment, time.Now()), nil
}

// QR merender PNG QR berisi URL lacak kiriman
func (s *ShipmentService) QR(session authz.Session, orderID string) ([]byte, error) {
	shipment, err := s.documentShipment(session, orderID)
	if err != nil {
		return nil, err
	}
	return document.QRPNG(s.generator.TrackingURL(shipment.OrderID))
}

// TrackingURL URL lacak untuk satu nomor order
func (s *ShipmentService) TrackingURL(orderID string) string {
	return s.generator.TrackingURL(orderID)
}

func (s *ShipmentService) documentShipment(session authz.Session, orderID string) (*models.Shipment, error) {
	shipment, err := s.shipmentRepo.GetByOrderID(strings.TrimSpace(orderID))
	if err != nil {
		return nil, err
	}
	if shipment == nil {
		return nil, ErrShipmentNotFound
	}
	if err := s.authzSvc.Authorize(session, authz.ObjectDocuments, authz.ActionRead, shipment.Branch); err != nil {
		return nil, err
	}
	return shipment, nil
}

// effectiveBranch cabang efektif sebuah sesi; admin boleh memilih bebas
func (s *ShipmentService) effectiveBranch(session authz.Session, requested string) string {
	if session.IsAdmin() {
		if requested == constants.BranchAll {
			return ""
		}
		return strings.TrimSpace(requested)
	}
	return strings.TrimSpace(session.Branch)
}

func (s *ShipmentService) appendStatusLog(session authz.Session, orderID, from, to string, reportedAt time.Time) {
	entry := &models.StatusLog{
		OrderID:     orderID,
		ActorRole:   session.Role,
		ActorBranch: session.Branch,
		FromStatus:  from,
		ToStatus:    to,
		ReportedAt:  reportedAt,
	}
	if err := s.logRepo.Append(entry); err != nil {
		logger.Warnw("status_log_append_failed", "order_id", orderID, "error", err)
	}
}

func (s *ShipmentService) invalidateDashboard(branch string) {
	keys := []string{constants.CacheKeyDashboardAll}
	if strings.TrimSpace(branch) != "" {
		keys = append(keys, dashboardCacheKey(branch))
	}
	if err := invalidateDashboardCache(context.Background(), keys...); err != nil {
		logger.Warnw("dashboard_cache_invalidate_failed", "branch", branch, "error", err)
	}
}

func validateCreateInput(input *CreateShipmentInput) error {
	if strings.TrimSpace(input.OrderID) == "" {
		return ErrOrderIDRequired
	}
	if strings.TrimSpace(input.CustomerName) == "" {
		return ErrCustomerNameRequired
	}
	if strings.TrimSpace(input.ProductName) == "" {
		return ErrProductNameRequired
	}
	if strings.TrimSpace(input.Branch) == "" {
		return ErrBranchRequired
	}

	input.DeliveryType = strings.ToLower(strings.TrimSpace(input.DeliveryType))
	if input.DeliveryType == "" {
		input.DeliveryType = constants.DeliveryTypeRegular
	}
	switch input.DeliveryType {
	case constants.DeliveryTypeRegular, constants.DeliveryTypeTradeIn, constants.DeliveryTypeExpress:
	default:
		return ErrDeliveryTypeInvalid
	}
	if input.DeliveryType == constants.DeliveryTypeTradeIn && strings.TrimSpace(input.OldProductName) == "" {
		return ErrTradeInDetailRequired
	}

	input.InstallationOpt = strings.ToLower(strings.TrimSpace(input.InstallationOpt))
	if input.InstallationOpt == "" {
		input.InstallationOpt = constants.InstallationOptNone
	}
	switch input.InstallationOpt {
	case constants.InstallationOptNone, constants.InstallationOptVendor:
	default:
		return ErrInstallOptInvalid
	}
	if input.InstallationOpt == constants.InstallationOptVendor && !input.InstallationFee.IsPositive() {
		return ErrInstallFeeRequired
	}
	return nil
}
