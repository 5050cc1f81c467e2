package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/construction-site/internal/httperr"
	"github.com/BruksfildServices01/construction-site/internal/httpresp"
	"github.com/BruksfildServices01/construction-site/internal/infra/repository"
)

type DashboardHandler struct {
	repo *repository.DashboardGormRepository
}

func NewDashboardHandler(repo *repository.DashboardGormRepository) *DashboardHandler {
	return &DashboardHandler{repo: repo}
}

func (h *DashboardHandler) Get(c *gin.Context) {
	snap, err := h.repo.Snapshot(c.Request.Context())
	if err != nil {
		httperr.Internal(c, err, "failed_to_load_dashboard", "Could not load dashboard.")
		return
	}
	httpresp.OK(c, snap)
}
