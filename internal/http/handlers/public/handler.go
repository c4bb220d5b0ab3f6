package public

import "github.com/lacak-next/internal/provider"

// Handler pintu masuk API publik (halaman lacak tanpa login).
type Handler struct {
	*provider.Container
}

// New membuat handler publik
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
