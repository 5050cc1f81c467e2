package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/construction-site/internal/audit"
	"github.com/BruksfildServices01/construction-site/internal/httperr"
	"github.com/BruksfildServices01/construction-site/internal/httpresp"
	"github.com/BruksfildServices01/construction-site/internal/storage"
)

type UploadHandler struct {
	uploader *storage.Uploader
	audit    *audit.Dispatcher
}

// NewUploadHandler accepts a nil uploader when storage is not configured.
func NewUploadHandler(uploader *storage.Uploader, audit *audit.Dispatcher) *UploadHandler {
	return &UploadHandler{uploader: uploader, audit: audit}
}

func (h *UploadHandler) Upload(c *gin.Context) {
	if h.uploader == nil {
		httperr.Unavailable(c, "uploads_disabled", "File storage is not configured.")
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "file_required", "Multipart field \"file\" is required.")
		return
	}

	f, err := fh.Open()
	if err != nil {
		httperr.BadRequest(c, "file_unreadable", "Could not read the uploaded file.")
		return
	}
	defer f.Close()

	res, err := h.uploader.Upload(c.Request.Context(), f)
	switch {
	case errors.Is(err, storage.ErrTooLarge):
		httperr.BadRequest(c, "file_too_large", "The file exceeds the upload limit.")
		return
	case errors.Is(err, storage.ErrUnsupportedImage):
		httperr.BadRequest(c, "unsupported_image", "Only JPEG, PNG, GIF and WebP images are accepted.")
		return
	case err != nil:
		httperr.Internal(c, err, "upload_failed", "Could not store the file.")
		return
	}

	writeAudit(c, h.audit, "file_uploaded", "upload", 0, gin.H{"key": res.Key, "filename": fh.Filename})
	httpresp.Created(c, res)
}
