package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/lacak-next/internal/app"
	"github.com/lacak-next/internal/config"
	"github.com/lacak-next/internal/logger"
	"github.com/lacak-next/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	ansiReset = "\033[0m"
	ansiBold  = "\033[1m"
	ansiCyan  = "\033[36m"
)

func main() {
	printStartupBanner()

	// Muat konfigurasi
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if cfg.Server.Mode == "release" {
		if isWeakSecret(cfg.JWT.SecretKey) {
			stdLog.Fatalf("JWT secret terlalu lemah atau masih bawaan, ganti dengan kunci acak yang kuat di produksi")
		}
		if strings.TrimSpace(cfg.Auth.GatekeeperSecret) == "" {
			stdLog.Fatalf("auth.gatekeeper_secret belum diisi, API staf tidak bisa diamankan")
		}
	} else if isWeakSecret(cfg.JWT.SecretKey) {
		stdLog.Printf("Peringatan: JWT secret terlalu lemah atau masih bawaan, ganti sebelum produksi")
	}

	// Inisialisasi database
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Inisialisasi database gagal: %v", err)
	}

	// Migrasi otomatis tabel
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Migrasi database gagal: %v", err)
	}

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	var mode string
	flag.StringVar(&mode, "mode", app.ModeAll, "mode jalan: all (bawaan), api, worker")
	flag.Parse()

	if err := app.Run(app.Options{
		Config:  cfg,
		Logger:  logger.S(),
		Signals: []os.Signal{syscall.SIGINT, syscall.SIGTERM},
		Mode:    mode,
	}); err != nil {
		stdLog.Fatalf("Layanan berhenti dengan error: %v", err)
	}
}

func printStartupBanner() {
	fmt.Println(ansiCyan + "██╗      █████╗  ██████╗ █████╗ ██╗  ██╗" + ansiReset)
	fmt.Println(ansiCyan + "██║     ██╔══██╗██╔════╝██╔══██╗██║ ██╔╝" + ansiReset)
	fmt.Println(ansiCyan + "██║     ███████║██║     ███████║█████╔╝ " + ansiReset)
	fmt.Println(ansiCyan + "██║     ██╔══██║██║     ██╔══██║██╔═██╗ " + ansiReset)
	fmt.Println(ansiCyan + "███████╗██║  ██║╚██████╗██║  ██║██║  ██╗" + ansiReset)
	fmt.Println(ansiCyan + "╚══════╝╚═╝  ╚═╝ ╚═════╝╚═╝  ╚═╝╚═╝  ╚═╝" + ansiReset)
	fmt.Println(ansiBold + "Lacak-Next: pelacakan surat jalan" + ansiReset)
	fmt.Println("----------------------------------------")
}

func isWeakSecret(secret string) bool {
	if len(secret) < 32 {
		return true
	}
	normalized := strings.ToLower(secret)
	if strings.Contains(normalized, "change-me") ||
		strings.Contains(normalized, "change-in-production") ||
		strings.Contains(normalized, "your-secret-key") {
		return true
	}
	return false
}
