package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"github.com/BruksfildServices01/construction-site/internal/audit"
	"github.com/BruksfildServices01/construction-site/internal/httperr"
	"github.com/BruksfildServices01/construction-site/internal/infra/repository"
	"github.com/BruksfildServices01/construction-site/internal/models"
	"github.com/BruksfildServices01/construction-site/internal/partial"
)

type ServiceHandler struct {
	orderedResource[models.Service]
}

func NewServiceHandler(
	repo *repository.OrderedGormRepository[models.Service],
	audit *audit.Dispatcher,
) *ServiceHandler {
	return &ServiceHandler{orderedResource[models.Service]{
		repo:   repo,
		audit:  audit,
		entity: "service",
	}}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name             string   `json:"name" binding:"required"`
	ShortDescription string   `json:"short_description"`
	Description      string   `json:"description"`
	PriceRange       string   `json:"price_range"`
	Features         []string `json:"features"`
	ImageURL         string   `json:"image_url"`
	IconName         string   `json:"icon_name"`
	OrderPosition    *int     `json:"order_position"`
	IsActive         *bool    `json:"is_active"`
}

type UpdateServiceRequest struct {
	Name             *string   `json:"name"`
	ShortDescription *string   `json:"short_description"`
	Description      *string   `json:"description"`
	PriceRange       *string   `json:"price_range"`
	Features         *[]string `json:"features"`
	ImageURL         *string   `json:"image_url"`
	IconName         *string   `json:"icon_name"`
	OrderPosition    *int      `json:"order_position"`
	IsActive         *bool     `json:"is_active"`
}

// --------- Handlers ---------

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}
	if blankField(c, "name", &req.Name) {
		return
	}

	pos, ok := h.position(c, req.OrderPosition)
	if !ok {
		return
	}

	service := models.Service{
		Name:             strings.TrimSpace(req.Name),
		ShortDescription: req.ShortDescription,
		Description:      req.Description,
		PriceRange:       req.PriceRange,
		Features:         datatypes.NewJSONSlice(stringsOrEmpty(req.Features)),
		ImageURL:         req.ImageURL,
		IconName:         req.IconName,
		OrderPosition:    pos,
		IsActive:         boolOr(req.IsActive, true),
	}

	h.create(c, &service, func(s *models.Service) uint { return s.ID })
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}
	if blankField(c, "name", req.Name) {
		return
	}

	p := partial.New()
	partial.Trimmed(p, "name", req.Name)
	partial.Field(p, "short_description", req.ShortDescription)
	partial.Field(p, "description", req.Description)
	partial.Field(p, "price_range", req.PriceRange)
	partial.JSONList(p, "features", req.Features)
	partial.Field(p, "image_url", req.ImageURL)
	partial.Field(p, "icon_name", req.IconName)
	partial.Field(p, "order_position", req.OrderPosition)
	partial.Field(p, "is_active", req.IsActive)

	h.applyPatch(c, id, p)
}
