package service

import (
	"bytes"
	"encoding/csv"
	"strings"
	"time"

	"github.com/lacak-next/internal/authz"
	"github.com/lacak-next/internal/models"
	"github.com/lacak-next/internal/repository"
)

var exportHeader = []string{
	"order_id",
	"customer_name",
	"customer_phone",
	"delivery_address",
	"product_name",
	"delivery_type",
	"old_product_name",
	"installation_opt",
	"installation_fee",
	"sales_name",
	"sales_phone",
	"branch",
	"status",
	"courier",
	"tracking_number",
	"last_updated",
	"created_at",
}

// ExportService unduhan massal data kiriman
type ExportService struct {
	shipmentRepo repository.ShipmentRepository
	authzSvc     *authz.Service
}

// NewExportService membuat layanan ekspor
func NewExportService(shipmentRepo repository.ShipmentRepository, authzSvc *authz.Service) *ExportService {
	return &ExportService{
		shipmentRepo: shipmentRepo,
		authzSvc:     authzSvc,
	}
}

// CSV mengekspor kiriman sebagai CSV, terpaku ke cabang sesi untuk
// selain admin
func (s *ExportService) CSV(session authz.Session, filter repository.ShipmentListFilter) ([]byte, error) {
	if !session.IsAdmin() {
		filter.Branch = strings.TrimSpace(session.Branch)
	}
	if err := s.authzSvc.Authorize(session, authz.ObjectShipments, authz.ActionExport, filter.Branch); err != nil {
		return nil, err
	}

	// Ekspor selalu seluruh hasil filter, tanpa paginasi.
	filter.Page = 0
	filter.PageSize = 0
	shipments, _, err := s.shipmentRepo.List(filter)
	if err != nil {
		return nil, err
	}
	return renderCSV(shipments)
}

func renderCSV(shipments []models.Shipment) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.Write(exportHeader); err != nil {
		return nil, err
	}
	for _, shipment := range shipments {
		record := []string{
			shipment.OrderID,
			shipment.CustomerName,
			shipment.CustomerPhone,
			shipment.DeliveryAddress,
			shipment.ProductName,
			shipment.DeliveryType,
			shipment.OldProductName,
			shipment.InstallationOpt,
			shipment.InstallationFee.String(),
			shipment.SalesName,
			shipment.SalesPhone,
			shipment.Branch,
			shipment.Status,
			shipment.Courier,
			shipment.TrackingNumber,
			shipment.LastUpdated.Format(time.RFC3339),
			shipment.CreatedAt.Format(time.RFC3339),
		}
		if err := writer.Write(record); err != nil {
			return nil, err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
