package worker

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lacak-next/internal/document"
	"github.com/lacak-next/internal/logger"
	"github.com/lacak-next/internal/provider"
	"github.com/lacak-next/internal/queue"

	"github.com/hibiken/asynq"
)

// Consumer konsumen tugas asinkron
type Consumer struct {
	*provider.Container
}

// NewConsumer membuat konsumen
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register mendaftarkan konsumen
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskRenderNote, c.handleRenderNote)
}

// handleRenderNote pra-render surat jalan dan QR ke direktori arsip.
// Kiriman yang sudah tidak ada dilewati tanpa error.
func (c *Consumer) handleRenderNote(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_render_note_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.RenderNotePayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_render_note_unmarshal_failed", "error", err)
		return err
	}
	orderID := strings.TrimSpace(payload.OrderID)
	if orderID == "" {
		logger.Debugw("worker_render_note_skip_invalid_payload")
		return nil
	}

	shipment, err := c.ShipmentRepo.GetByOrderID(orderID)
	if err != nil {
		logger.Warnw("worker_render_note_fetch_failed", "order_id", orderID, "error", err)
		return err
	}
	if shipment == nil {
		logger.Debugw("worker_render_note_skip_shipment_not_found", "order_id", orderID)
		return nil
	}

	archiveDir := strings.TrimSpace(c.Config.Document.ArchiveDir)
	if archiveDir == "" {
		logger.Debugw("worker_render_note_skip_no_archive_dir", "order_id", orderID)
		return nil
	}
	dir := filepath.Join(archiveDir, orderID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Warnw("worker_render_note_mkdir_failed", "order_id", orderID, "dir", dir, "error", err)
		return err
	}

	note := c.Generator.Note(shipment, time.Now())
	if err := os.WriteFile(filepath.Join(dir, "surat-jalan.txt"), []byte(note), 0o644); err != nil {
		logger.Warnw("worker_render_note_write_note_failed", "order_id", orderID, "error", err)
		return err
	}

	png, err := document.QRPNG(c.Generator.TrackingURL(orderID))
	if err != nil {
		logger.Warnw("worker_render_note_qr_failed", "order_id", orderID, "error", err)
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, "qr.png"), png, 0o644); err != nil {
		logger.Warnw("worker_render_note_write_qr_failed", "order_id", orderID, "error", err)
		return err
	}

	logger.Infow("worker_render_note_done", "order_id", orderID, "dir", dir)
	return nil
}
