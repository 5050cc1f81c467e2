package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/construction-site/internal/audit"
	"github.com/BruksfildServices01/construction-site/internal/httperr"
	"github.com/BruksfildServices01/construction-site/internal/httpresp"
	"github.com/BruksfildServices01/construction-site/internal/infra/repository"
	"github.com/BruksfildServices01/construction-site/internal/partial"
)

// orderedResource carries the admin endpoints shared by services, projects
// and team members.
type orderedResource[T repository.Ordered] struct {
	repo   *repository.OrderedGormRepository[T]
	audit  *audit.Dispatcher
	entity string
}

type MovePositionRequest struct {
	Direction string `json:"direction" binding:"required,oneof=up down"`
}

func (h *orderedResource[T]) List(c *gin.Context) {
	items, err := h.repo.List(c.Request.Context(), repository.ListFilter{})
	if err != nil {
		httperr.Internal(c, err, "failed_to_list_"+h.entity, "Could not load data.")
		return
	}
	httpresp.List(c, items)
}

func (h *orderedResource[T]) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	item, err := h.repo.Get(c.Request.Context(), id, false)
	if err != nil {
		writeStoreError(c, err, h.entity)
		return
	}
	httpresp.OK(c, item)
}

func (h *orderedResource[T]) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		writeStoreError(c, err, h.entity)
		return
	}

	writeAudit(c, h.audit, h.entity+"_deleted", h.entity, id, nil)
	httpresp.OK(c, gin.H{"success": true})
}

func (h *orderedResource[T]) Move(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req MovePositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}

	item, err := h.repo.Move(c.Request.Context(), id, repository.Direction(req.Direction))
	if err != nil {
		writeStoreError(c, err, h.entity)
		return
	}

	writeAudit(c, h.audit, h.entity+"_moved", h.entity, id, gin.H{"direction": req.Direction})
	httpresp.OK(c, item)
}

// position returns the requested order position or the next free one.
func (h *orderedResource[T]) position(c *gin.Context, requested *int) (int, bool) {
	if requested != nil {
		return *requested, true
	}
	next, err := h.repo.NextPosition(c.Request.Context())
	if err != nil {
		httperr.Internal(c, err, "failed_to_create_"+h.entity, "Could not save data.")
		return 0, false
	}
	return next, true
}

func (h *orderedResource[T]) create(c *gin.Context, item *T, id func(*T) uint) {
	if err := h.repo.Create(c.Request.Context(), item); err != nil {
		writeStoreError(c, err, h.entity)
		return
	}
	writeAudit(c, h.audit, h.entity+"_created", h.entity, id(item), nil)
	httpresp.Created(c, item)
}

func (h *orderedResource[T]) applyPatch(c *gin.Context, id uint, p *partial.Patch) {
	item, err := h.repo.Update(c.Request.Context(), id, p)
	if err != nil {
		writeStoreError(c, err, h.entity)
		return
	}
	writeAudit(c, h.audit, h.entity+"_updated", h.entity, id, gin.H{"fields": p.Columns()})
	httpresp.OK(c, item)
}
