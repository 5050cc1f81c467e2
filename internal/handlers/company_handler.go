package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/construction-site/internal/audit"
	"github.com/BruksfildServices01/construction-site/internal/httperr"
	"github.com/BruksfildServices01/construction-site/internal/httpresp"
	"github.com/BruksfildServices01/construction-site/internal/infra/repository"
	"github.com/BruksfildServices01/construction-site/internal/partial"
	"github.com/BruksfildServices01/construction-site/internal/timezone"
)

type CompanyHandler struct {
	repo  *repository.CompanyGormRepository
	audit *audit.Dispatcher
}

func NewCompanyHandler(repo *repository.CompanyGormRepository, audit *audit.Dispatcher) *CompanyHandler {
	return &CompanyHandler{repo: repo, audit: audit}
}

type UpdateCompanyRequest struct {
	Name          *string         `json:"name"`
	Tagline       *string         `json:"tagline"`
	Description   *string         `json:"description"`
	Mission       *string         `json:"mission"`
	Vision        *string         `json:"vision"`
	Values        *string         `json:"values"`
	Address       *string         `json:"address"`
	Phone         *string         `json:"phone"`
	Email         *string         `json:"email"`
	Website       *string         `json:"website"`
	SocialMedia   *map[string]any `json:"social_media"`
	BusinessHours *map[string]any `json:"business_hours"`
	LogoURL       *string         `json:"logo_url"`
	HeroImageURL  *string         `json:"hero_image_url"`
	AboutImageURL *string         `json:"about_image_url"`
	FoundedYear   *int            `json:"founded_year" binding:"omitempty,min=1800,max=2100"`
}

func (h *CompanyHandler) Get(c *gin.Context) {
	info, err := h.repo.Get(c.Request.Context())
	if err != nil {
		writeStoreError(c, err, "company_info")
		return
	}
	httpresp.OK(c, info)
}

// Upsert updates the company row, creating it on first use.
func (h *CompanyHandler) Upsert(c *gin.Context) {
	var req UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}
	if blankField(c, "name", req.Name) {
		return
	}
	if req.BusinessHours != nil {
		for day, v := range *req.BusinessHours {
			if !timezone.IsWeekday(day) {
				httperr.BadRequest(c, "invalid_business_hours", "Unknown day "+day+".")
				return
			}
			s, ok := v.(string)
			if !ok || !timezone.ValidSchedule(s) {
				httperr.BadRequest(c, "invalid_business_hours", "Invalid hours for "+day+".")
				return
			}
		}
	}

	p := partial.New()
	partial.Trimmed(p, "name", req.Name)
	partial.Field(p, "tagline", req.Tagline)
	partial.Field(p, "description", req.Description)
	partial.Field(p, "mission", req.Mission)
	partial.Field(p, "vision", req.Vision)
	partial.Field(p, "values", req.Values)
	partial.Field(p, "address", req.Address)
	partial.Field(p, "phone", req.Phone)
	partial.Trimmed(p, "email", req.Email)
	partial.Field(p, "website", req.Website)
	partial.JSONObject(p, "social_media", req.SocialMedia)
	partial.JSONObject(p, "business_hours", req.BusinessHours)
	partial.Field(p, "logo_url", req.LogoURL)
	partial.Field(p, "hero_image_url", req.HeroImageURL)
	partial.Field(p, "about_image_url", req.AboutImageURL)
	partial.Field(p, "founded_year", req.FoundedYear)

	info, created, err := h.repo.Upsert(c.Request.Context(), p)
	if err != nil {
		writeStoreError(c, err, "company_info")
		return
	}

	action := "company_updated"
	if created {
		action = "company_created"
	}
	writeAudit(c, h.audit, action, "company_info", info.ID, gin.H{"fields": p.Columns()})

	httpresp.OK(c, info)
}
