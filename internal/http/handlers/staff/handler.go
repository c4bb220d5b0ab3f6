package staff

import "github.com/lacak-next/internal/provider"

// Handler pintu masuk API staf (sales, supervisor, admin).
type Handler struct {
	*provider.Container
}

// New membuat handler staf
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
