package main

import (
	"time"

	"github.com/lacak-next/internal/config"
	"github.com/lacak-next/internal/constants"
	"github.com/lacak-next/internal/logger"
	"github.com/lacak-next/internal/models"

	"github.com/shopspring/decimal"
)

// Pengisi data contoh untuk pengembangan lokal.
func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Koneksi database gagal: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Migrasi database gagal: %v", err)
	}

	now := time.Now()
	shipments := []models.Shipment{
		{
			OrderID:         "240901001",
			CustomerName:    "Budi Santoso",
			CustomerPhone:   "081234567890",
			DeliveryAddress: "Jl. Merdeka No. 12, Kebayoran Baru, Jakarta Selatan",
			ProductName:     "Kulkas 2 Pintu 300L",
			DeliveryType:    constants.DeliveryTypeRegular,
			InstallationOpt: constants.InstallationOptNone,
			SalesName:       "Rina",
			SalesPhone:      "081298765432",
			Branch:          "Jakarta",
			Status:          constants.ShipmentStatusAwaitingConfirm,
			LastUpdated:     now,
		},
		{
			OrderID:         "240901002",
			CustomerName:    "Siti Aminah",
			CustomerPhone:   "082112345678",
			DeliveryAddress: "Jl. Asia Afrika No. 88, Bandung",
			ProductName:     "AC Split 1 PK",
			DeliveryType:    constants.DeliveryTypeExpress,
			InstallationOpt: constants.InstallationOptVendor,
			InstallationFee: models.NewMoneyFromDecimal(decimal.NewFromInt(250000)),
			SalesName:       "Dewi",
			SalesPhone:      "081322334455",
			Branch:          "Bandung",
			Status:          constants.ShipmentStatusInTransit,
			Courier:         "Kurir Toko",
			LastUpdated:     now,
		},
		{
			OrderID:         "240901003",
			CustomerName:    "Agus Wijaya",
			CustomerPhone:   "085612349876",
			DeliveryAddress: "Jl. Pemuda No. 45, Surabaya",
			ProductName:     "Mesin Cuci Front Loading",
			DeliveryType:    constants.DeliveryTypeTradeIn,
			OldProductName:  "Mesin Cuci 2 Tabung Lama",
			InstallationOpt: constants.InstallationOptNone,
			SalesName:       "Hendra",
			SalesPhone:      "081199887766",
			Branch:          "Jakarta",
			Status:          constants.ShipmentStatusDelivered,
			Courier:         "JNE",
			TrackingNumber:  "JNE123456789",
			LastUpdated:     now,
		},
	}

	for _, shipment := range shipments {
		var existing models.Shipment
		if err := models.DB.Where("order_id = ?", shipment.OrderID).First(&existing).Error; err != nil {
			if err := models.DB.Create(&shipment).Error; err != nil {
				stdLog.Printf("Gagal membuat kiriman %s: %v", shipment.OrderID, err)
			} else {
				stdLog.Printf("Kiriman dibuat: %s", shipment.OrderID)
			}
		} else {
			stdLog.Printf("Kiriman sudah ada: %s", shipment.OrderID)
		}
	}

	stdLog.Printf("Selesai mengisi data contoh")
}
