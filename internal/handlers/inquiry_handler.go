package handlers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/construction-site/internal/audit"
	domain "github.com/BruksfildServices01/construction-site/internal/domain/inquiry"
	"github.com/BruksfildServices01/construction-site/internal/httperr"
	"github.com/BruksfildServices01/construction-site/internal/httpresp"
	"github.com/BruksfildServices01/construction-site/internal/infra/repository"
	"github.com/BruksfildServices01/construction-site/internal/middleware"
	ucInquiry "github.com/BruksfildServices01/construction-site/internal/usecase/inquiry"
)

// ======================================================
// HANDLER
// ======================================================

type InquiryHandler struct {
	repo    *repository.InquiryGormRepository
	respond *ucInquiry.Respond
	audit   *audit.Dispatcher
	now     func() time.Time
}

func NewInquiryHandler(
	repo *repository.InquiryGormRepository,
	respond *ucInquiry.Respond,
	audit *audit.Dispatcher,
) *InquiryHandler {
	return &InquiryHandler{
		repo:    repo,
		respond: respond,
		audit:   audit,
		now:     time.Now,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type UpdateInquiryRequest struct {
	Status     *string `json:"status" binding:"omitempty,oneof=new in_progress resolved archived"`
	AdminNotes *string `json:"admin_notes"`
}

type RespondInquiryRequest struct {
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

// ======================================================
// LIST
// ======================================================

func (h *InquiryHandler) List(c *gin.Context) {
	status := strings.TrimSpace(c.Query("status"))
	if status != "" && !domain.Status(status).Valid() {
		httperr.BadRequest(c, "invalid_status", "Unknown inquiry status.")
		return
	}

	page := httpresp.ParsePagination(c, 20)

	items, total, err := h.repo.List(c.Request.Context(), repository.InquiryFilter{
		Status: status,
		Query:  strings.ToLower(strings.TrimSpace(c.Query("q"))),
		Limit:  page.Limit,
		Offset: page.Offset(),
	})
	if err != nil {
		httperr.Internal(c, err, "failed_to_list_inquiries", "Could not load inquiries.")
		return
	}

	httpresp.Page(c, items, page, total)
}

func (h *InquiryHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	inq, err := h.repo.Get(c.Request.Context(), id)
	if err != nil {
		writeStoreError(c, err, "inquiry")
		return
	}
	httpresp.OK(c, inq)
}

// ======================================================
// UPDATE
// ======================================================

// Update changes the status and appends admin_notes as a new timestamped
// entry.
func (h *InquiryHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req UpdateInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}

	var ch domain.Changes
	if req.Status != nil {
		s := domain.Status(*req.Status)
		ch.Status = &s
	}
	if req.AdminNotes != nil && strings.TrimSpace(*req.AdminNotes) != "" {
		ch.Note = domain.FormatNote(h.now(), *req.AdminNotes)
	}
	if ch.Empty() {
		httperr.BadRequest(c, "empty_update", "No updatable fields provided.")
		return
	}

	inq, err := h.repo.Update(c.Request.Context(), id, ch)
	if err != nil {
		writeStoreError(c, err, "inquiry")
		return
	}

	meta := gin.H{"note_added": ch.Note != ""}
	if ch.Status != nil {
		meta["status"] = string(*ch.Status)
	}
	writeAudit(c, h.audit, "inquiry_updated", "contact_inquiry", id, meta)

	httpresp.OK(c, inq)
}

func (h *InquiryHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		writeStoreError(c, err, "inquiry")
		return
	}

	writeAudit(c, h.audit, "inquiry_deleted", "contact_inquiry", id, nil)
	httpresp.OK(c, gin.H{"success": true})
}

// ======================================================
// RESPOND
// ======================================================

func (h *InquiryHandler) Respond(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req RespondInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}
	if blankField(c, "message", &req.Message) {
		return
	}

	inq, err := h.respond.Execute(c.Request.Context(), ucInquiry.RespondInput{
		AdminID:   c.GetUint(middleware.ContextAdminID),
		InquiryID: id,
		Subject:   strings.TrimSpace(req.Subject),
		Message:   req.Message,
	})
	if err != nil {
		if httperr.IsBusiness(err, "inquiry_archived") {
			httperr.Conflict(c, "inquiry_archived", "Archived inquiries cannot be answered.")
			return
		}
		writeStoreError(c, err, "inquiry")
		return
	}

	httpresp.OK(c, gin.H{
		"success": true,
		"inquiry": inq,
	})
}
