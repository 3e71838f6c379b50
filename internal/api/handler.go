package api

import (
	"github.com/paintmyrock/crazyfun/internal/catalog"
	"github.com/paintmyrock/crazyfun/internal/service"
	"github.com/paintmyrock/crazyfun/internal/storage"
)

// Handler groups all HTTP handlers.
type Handler struct {
	repo     storage.Repository
	registry *catalog.Registry
	arena    *service.Arena
}

// NewHandler creates a Handler backed by the given repository, entity
// registry and arena.
func NewHandler(repo storage.Repository, registry *catalog.Registry, arena *service.Arena) *Handler {
	return &Handler{repo: repo, registry: registry, arena: arena}
}
