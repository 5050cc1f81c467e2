package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/construction-site/internal/domain/inquiry"
	"github.com/BruksfildServices01/construction-site/internal/dto"
	"github.com/BruksfildServices01/construction-site/internal/httperr"
	"github.com/BruksfildServices01/construction-site/internal/httpresp"
	"github.com/BruksfildServices01/construction-site/internal/infra/repository"
	"github.com/BruksfildServices01/construction-site/internal/models"
	"github.com/BruksfildServices01/construction-site/internal/timezone"
	"github.com/BruksfildServices01/construction-site/internal/validators"
)

// Site groups the read side shared by the public JSON API and the HTML
// pages.
type Site struct {
	Company  *repository.CompanyGormRepository
	Services *repository.OrderedGormRepository[models.Service]
	Projects *repository.OrderedGormRepository[models.Project]
	Team     *repository.OrderedGormRepository[models.TeamMember]
	Timezone string
}

// ProjectQuery are the public project filters.
type ProjectQuery struct {
	Featured bool
	Type     string
	Status   string
}

func projectQueryFrom(c *gin.Context) (ProjectQuery, bool) {
	q := ProjectQuery{
		Featured: strings.EqualFold(c.Query("featured"), "true"),
		Type:     strings.TrimSpace(c.Query("type")),
		Status:   strings.TrimSpace(c.Query("status")),
	}
	switch q.Status {
	case "", models.ProjectPlanning, models.ProjectInProgress, models.ProjectCompleted, models.ProjectOnHold:
		return q, true
	}
	return q, false
}

func (q ProjectQuery) scopes() []func(*gorm.DB) *gorm.DB {
	var out []func(*gorm.DB) *gorm.DB
	if q.Featured {
		out = append(out, func(db *gorm.DB) *gorm.DB { return db.Where("is_featured = ?", true) })
	}
	if q.Type != "" {
		t := q.Type
		out = append(out, func(db *gorm.DB) *gorm.DB { return db.Where("LOWER(project_type) = LOWER(?)", t) })
	}
	if q.Status != "" {
		s := q.Status
		out = append(out, func(db *gorm.DB) *gorm.DB { return db.Where("status = ?", s) })
	}
	return out
}

func (s *Site) CompanyView(c *gin.Context) (*dto.CompanyDTO, error) {
	info, err := s.Company.Get(c.Request.Context())
	if err != nil {
		return nil, err
	}
	now := timezone.NowIn(s.Timezone)
	return &dto.CompanyDTO{
		CompanyInfo: *info,
		IsOpenNow:   timezone.IsOpen(timezone.HoursFromJSON(info.BusinessHours), now),
	}, nil
}

func (s *Site) ActiveServices(c *gin.Context) ([]models.Service, error) {
	return s.Services.List(c.Request.Context(), repository.ListFilter{ActiveOnly: true})
}

func (s *Site) ActiveProjects(c *gin.Context, q ProjectQuery) ([]models.Project, error) {
	return s.Projects.List(c.Request.Context(), repository.ListFilter{ActiveOnly: true, Scopes: q.scopes()})
}

func (s *Site) ActiveTeam(c *gin.Context) ([]models.TeamMember, error) {
	return s.Team.List(c.Request.Context(), repository.ListFilter{ActiveOnly: true})
}

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	site        *Site
	inquiries   *repository.InquiryGormRepository
	verifyEmail func(string) bool
}

// NewPublicHandler wires the public JSON API. verifyDomain enables the
// DNS check of contact e-mail domains.
func NewPublicHandler(site *Site, inquiries *repository.InquiryGormRepository, verifyDomain bool) *PublicHandler {
	h := &PublicHandler{site: site, inquiries: inquiries}
	if verifyDomain {
		h.verifyEmail = validators.IsEmailDomainValid
	}
	return h
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type ContactRequest struct {
	FirstName string `json:"first_name" binding:"required,max=100"`
	LastName  string `json:"last_name" binding:"required,max=100"`
	Email     string `json:"email" binding:"required,email,max=150"`
	Phone     string `json:"phone" binding:"max=30"`
	Service   string `json:"service" binding:"max=150"`
	Budget    string `json:"budget" binding:"max=100"`
	Timeline  string `json:"timeline" binding:"max=100"`
	Message   string `json:"message" binding:"required"`
}

////////////////////////////////////////////////////////
// CONTENT
////////////////////////////////////////////////////////

func (h *PublicHandler) Company(c *gin.Context) {
	view, err := h.site.CompanyView(c)
	if err != nil {
		writeStoreError(c, err, "company_info")
		return
	}
	httpresp.OK(c, view)
}

func (h *PublicHandler) Services(c *gin.Context) {
	items, err := h.site.ActiveServices(c)
	if err != nil {
		httperr.Internal(c, err, "failed_to_list_services", "Could not load services.")
		return
	}
	httpresp.List(c, items)
}

func (h *PublicHandler) Projects(c *gin.Context) {
	q, ok := projectQueryFrom(c)
	if !ok {
		httperr.BadRequest(c, "invalid_status", "Unknown project status.")
		return
	}

	items, err := h.site.ActiveProjects(c, q)
	if err != nil {
		httperr.Internal(c, err, "failed_to_list_projects", "Could not load projects.")
		return
	}
	httpresp.List(c, items)
}

func (h *PublicHandler) Project(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	item, err := h.site.Projects.Get(c.Request.Context(), id, true)
	if err != nil {
		writeStoreError(c, err, "project")
		return
	}
	httpresp.OK(c, item)
}

func (h *PublicHandler) Team(c *gin.Context) {
	items, err := h.site.ActiveTeam(c)
	if err != nil {
		httperr.Internal(c, err, "failed_to_list_team", "Could not load team.")
		return
	}
	httpresp.List(c, items)
}

////////////////////////////////////////////////////////
// CONTACT
////////////////////////////////////////////////////////

func (h *PublicHandler) Contact(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if strings.TrimSpace(req.FirstName) == "" ||
		strings.TrimSpace(req.LastName) == "" ||
		strings.TrimSpace(req.Message) == "" {
		httperr.BadRequest(c, "missing_fields", "first_name, last_name, email and message are required.")
		return
	}

	if h.verifyEmail != nil && !h.verifyEmail(email) {
		httperr.BadRequest(c, "invalid_email_domain", "The e-mail domain does not accept mail.")
		return
	}

	inq := models.ContactInquiry{
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Email:     email,
		Phone:     strings.TrimSpace(req.Phone),
		Service:   strings.TrimSpace(req.Service),
		Budget:    strings.TrimSpace(req.Budget),
		Timeline:  strings.TrimSpace(req.Timeline),
		Message:   strings.TrimSpace(req.Message),
		Status:    string(domain.InitialStatus()),
	}

	if err := h.inquiries.Create(c.Request.Context(), &inq); err != nil {
		httperr.Internal(c, err, "failed_to_save_inquiry", "Could not send your message.")
		return
	}

	httpresp.Created(c, gin.H{
		"success": true,
		"id":      inq.ID,
		"message": "Thank you, we will get back to you shortly.",
	})
}
