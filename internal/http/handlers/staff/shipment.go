package staff

import (
	"strconv"
	"strings"
	"time"

	handlershared "github.com/lacak-next/internal/http/handlers/shared"
	"github.com/lacak-next/internal/http/response"
	"github.com/lacak-next/internal/models"
	"github.com/lacak-next/internal/repository"
	"github.com/lacak-next/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateShipmentRequest isian pembuatan kiriman
type CreateShipmentRequest struct {
	OrderID         string       `json:"order_id" binding:"required"`
	CustomerName    string       `json:"customer_name" binding:"required"`
	CustomerPhone   string       `json:"customer_phone"`
	DeliveryAddress string       `json:"delivery_address"`
	ProductName     string       `json:"product_name" binding:"required"`
	DeliveryType    string       `json:"delivery_type"`
	OldProductName  string       `json:"old_product_name"`
	InstallationOpt string       `json:"installation_opt"`
	InstallationFee models.Money `json:"installation_fee"`
	SalesName       string       `json:"sales_name"`
	SalesPhone      string       `json:"sales_phone"`
	Branch          string       `json:"branch"`
	Status          string       `json:"status"`
	ReportedAt      *time.Time   `json:"reported_at"`
}

// UpdateShipmentRequest pembaruan parsial; field yang tidak dikirim tidak disentuh
type UpdateShipmentRequest struct {
	Status          *string    `json:"status"`
	Courier         *string    `json:"courier"`
	TrackingNumber  *string    `json:"tracking_number"`
	CustomerName    *string    `json:"customer_name"`
	CustomerPhone   *string    `json:"customer_phone"`
	DeliveryAddress *string    `json:"delivery_address"`
	ProductName     *string    `json:"product_name"`
	ReportedAt      *time.Time `json:"reported_at"`
}

// CreateShipment membuat kiriman baru. Cabang kosong diisi cabang sesi.
func (h *Handler) CreateShipment(c *gin.Context) {
	session, ok := handlershared.GetSession(c)
	if !ok {
		return
	}
	var req CreateShipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "permintaan tidak valid", err)
		return
	}
	if strings.TrimSpace(req.Branch) == "" {
		req.Branch = session.Branch
	}

	shipment, err := h.ShipmentService.Create(session, service.CreateShipmentInput{
		OrderID:         req.OrderID,
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		DeliveryAddress: req.DeliveryAddress,
		ProductName:     req.ProductName,
		DeliveryType:    req.DeliveryType,
		OldProductName:  req.OldProductName,
		InstallationOpt: req.InstallationOpt,
		InstallationFee: req.InstallationFee,
		SalesName:       req.SalesName,
		SalesPhone:      req.SalesPhone,
		Branch:          req.Branch,
		Status:          req.Status,
		ReportedAt:      req.ReportedAt,
	})
	if err != nil {
		respondShipmentError(c, err, "pembuatan kiriman gagal")
		return
	}
	response.Success(c, shipment)
}

// ListShipments daftar kiriman berhalaman
func (h *Handler) ListShipments(c *gin.Context) {
	session, ok := handlershared.GetSession(c)
	if !ok {
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = handlershared.NormalizePagination(page, pageSize)

	createdFrom, err := parseTimeNullable(c.Query("created_from"))
	if err != nil {
		respondError(c, response.CodeBadRequest, "created_from tidak valid", err)
		return
	}
	createdTo, err := parseTimeNullable(c.Query("created_to"))
	if err != nil {
		respondError(c, response.CodeBadRequest, "created_to tidak valid", err)
		return
	}

	shipments, total, err := h.ShipmentService.List(session, repository.ShipmentListFilter{
		Page:        page,
		PageSize:    pageSize,
		Branch:      strings.TrimSpace(c.Query("branch")),
		Status:      strings.TrimSpace(c.Query("status")),
		Search:      strings.TrimSpace(c.Query("q")),
		CreatedFrom: createdFrom,
		CreatedTo:   createdTo,
	})
	if err != nil {
		respondShipmentError(c, err, "pengambilan daftar kiriman gagal")
		return
	}

	response.SuccessWithPage(c, shipments, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	})
}

// GetShipment detail satu kiriman
func (h *Handler) GetShipment(c *gin.Context) {
	session, ok := handlershared.GetSession(c)
	if !ok {
		return
	}
	shipment, err := h.ShipmentService.Get(session, c.Param("order_id"))
	if err != nil {
		respondShipmentError(c, err, "pengambilan kiriman gagal")
		return
	}
	response.Success(c, shipment)
}

// UpdateShipment pembaruan parsial satu kiriman
func (h *Handler) UpdateShipment(c *gin.Context) {
	session, ok := handlershared.GetSession(c)
	if !ok {
		return
	}
	var req UpdateShipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "permintaan tidak valid", err)
		return
	}

	shipment, err := h.ShipmentService.Update(session, c.Param("order_id"), service.UpdateShipmentInput{
		Status:          req.Status,
		Courier:         req.Courier,
		TrackingNumber:  req.TrackingNumber,
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		DeliveryAddress: req.DeliveryAddress,
		ProductName:     req.ProductName,
		ReportedAt:      req.ReportedAt,
	})
	if err != nil {
		respondShipmentError(c, err, "pembaruan kiriman gagal")
		return
	}
	response.Success(c, shipment)
}

// DeleteShipment menghapus satu kiriman
func (h *Handler) DeleteShipment(c *gin.Context) {
	session, ok := handlershared.GetSession(c)
	if !ok {
		return
	}
	if err := h.ShipmentService.Delete(session, c.Param("order_id")); err != nil {
		respondShipmentError(c, err, "penghapusan kiriman gagal")
		return
	}
	response.Success(c, nil)
}

// PurgeShipments menghapus permanen seluruh kiriman, hanya admin
func (h *Handler) PurgeShipments(c *gin.Context) {
	session, ok := handlershared.GetSession(c)
	if !ok {
		return
	}
	affected, err := h.ShipmentService.Purge(session)
	if err != nil {
		respondShipmentError(c, err, "pengosongan data gagal")
		return
	}
	response.Success(c, gin.H{"affected": affected})
}

func parseTimeNullable(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
