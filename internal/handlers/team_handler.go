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

type TeamHandler struct {
	orderedResource[models.TeamMember]
}

func NewTeamHandler(
	repo *repository.OrderedGormRepository[models.TeamMember],
	audit *audit.Dispatcher,
) *TeamHandler {
	return &TeamHandler{orderedResource[models.TeamMember]{
		repo:   repo,
		audit:  audit,
		entity: "team_member",
	}}
}

// --------- Requests ---------

type CreateTeamMemberRequest struct {
	Name            string   `json:"name" binding:"required"`
	Position        string   `json:"position" binding:"required"`
	Bio             string   `json:"bio"`
	ImageURL        string   `json:"image_url"`
	Email           string   `json:"email" binding:"omitempty,email"`
	Phone           string   `json:"phone"`
	Specialties     []string `json:"specialties"`
	YearsExperience *int     `json:"years_experience" binding:"omitempty,min=0"`
	OrderPosition   *int     `json:"order_position"`
	IsActive        *bool    `json:"is_active"`
}

type UpdateTeamMemberRequest struct {
	Name            *string   `json:"name"`
	Position        *string   `json:"position"`
	Bio             *string   `json:"bio"`
	ImageURL        *string   `json:"image_url"`
	Email           *string   `json:"email" binding:"omitempty,email"`
	Phone           *string   `json:"phone"`
	Specialties     *[]string `json:"specialties"`
	YearsExperience *int      `json:"years_experience" binding:"omitempty,min=0"`
	OrderPosition   *int      `json:"order_position"`
	IsActive        *bool     `json:"is_active"`
}

// --------- Handlers ---------

func (h *TeamHandler) Create(c *gin.Context) {
	var req CreateTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}
	if blankField(c, "name", &req.Name) || blankField(c, "position", &req.Position) {
		return
	}

	pos, ok := h.position(c, req.OrderPosition)
	if !ok {
		return
	}

	member := models.TeamMember{
		Name:            strings.TrimSpace(req.Name),
		Position:        strings.TrimSpace(req.Position),
		Bio:             req.Bio,
		ImageURL:        req.ImageURL,
		Email:           strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:           req.Phone,
		Specialties:     datatypes.NewJSONSlice(stringsOrEmpty(req.Specialties)),
		YearsExperience: req.YearsExperience,
		OrderPosition:   pos,
		IsActive:        boolOr(req.IsActive, true),
	}

	h.create(c, &member, func(m *models.TeamMember) uint { return m.ID })
}

func (h *TeamHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req UpdateTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}
	if blankField(c, "name", req.Name) || blankField(c, "position", req.Position) {
		return
	}

	p := partial.New()
	partial.Trimmed(p, "name", req.Name)
	partial.Trimmed(p, "position", req.Position)
	partial.Field(p, "bio", req.Bio)
	partial.Field(p, "image_url", req.ImageURL)
	if req.Email != nil {
		p.Set("email", strings.ToLower(strings.TrimSpace(*req.Email)))
	}
	partial.Field(p, "phone", req.Phone)
	partial.JSONList(p, "specialties", req.Specialties)
	partial.Field(p, "years_experience", req.YearsExperience)
	partial.Field(p, "order_position", req.OrderPosition)
	partial.Field(p, "is_active", req.IsActive)

	h.applyPatch(c, id, p)
}
