package queue

import (
	"encoding/json"

	"github.com/lacak-next/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskRenderNote tugas pra-render surat jalan dan QR ke arsip
	TaskRenderNote = constants.TaskRenderNote
)

// RenderNotePayload muatan tugas pra-render
type RenderNotePayload struct {
	OrderID string `json:"order_id"`
}

// NewRenderNoteTask membuat tugas pra-render surat jalan
func NewRenderNoteTask(payload RenderNotePayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskRenderNote, body), nil
}
