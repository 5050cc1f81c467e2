package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/construction-site/internal/audit"
	"github.com/BruksfildServices01/construction-site/internal/middleware"
)

func writeAudit(
	c *gin.Context,
	d *audit.Dispatcher,
	action string,
	entity string,
	entityID uint,
	meta any,
) {
	if d == nil {
		return
	}

	var adminID *uint
	if id := c.GetUint(middleware.ContextAdminID); id != 0 {
		adminID = &id
	}

	var eid *uint
	if entityID != 0 {
		eid = &entityID
	}

	d.Dispatch(audit.Event{
		AdminID:  adminID,
		Action:   action,
		Entity:   entity,
		EntityID: eid,
		Metadata: meta,
	})
}
