package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/construction-site/internal/httperr"
	"github.com/BruksfildServices01/construction-site/internal/infra/repository"
)

func paramID(c *gin.Context) (uint, bool) {
	id, ok := paramIDQuiet(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Invalid id.")
	}
	return id, ok
}

func paramIDQuiet(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// writeStoreError maps repository errors onto the standard responses.
func writeStoreError(c *gin.Context, err error, entity string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		httperr.NotFound(c, entity+"_not_found", "Resource not found.")
	case errors.Is(err, repository.ErrEmptyUpdate):
		httperr.BadRequest(c, "empty_update", "No updatable fields provided.")
	case httperr.IsUniqueViolation(err):
		httperr.Conflict(c, entity+"_conflict", "Resource already exists.")
	case httperr.BusinessCode(err) != "":
		httperr.BadRequest(c, httperr.BusinessCode(err), "Request cannot be applied.")
	default:
		httperr.Internal(c, err, "internal_error", "Unexpected error.")
	}
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

func stringsOrEmpty(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}

// blankField reports a present-but-empty required field.
func blankField(c *gin.Context, field string, v *string) bool {
	if v != nil && strings.TrimSpace(*v) == "" {
		httperr.BadRequest(c, field+"_required", field+" cannot be empty.")
		return true
	}
	return false
}
