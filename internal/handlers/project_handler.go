package handlers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"github.com/BruksfildServices01/construction-site/internal/audit"
	"github.com/BruksfildServices01/construction-site/internal/httperr"
	"github.com/BruksfildServices01/construction-site/internal/infra/repository"
	"github.com/BruksfildServices01/construction-site/internal/models"
	"github.com/BruksfildServices01/construction-site/internal/partial"
)

type ProjectHandler struct {
	orderedResource[models.Project]
}

func NewProjectHandler(
	repo *repository.OrderedGormRepository[models.Project],
	audit *audit.Dispatcher,
) *ProjectHandler {
	return &ProjectHandler{orderedResource[models.Project]{
		repo:   repo,
		audit:  audit,
		entity: "project",
	}}
}

// --------- Requests ---------

type CreateProjectRequest struct {
	Name             string   `json:"name" binding:"required"`
	ShortDescription string   `json:"short_description"`
	Description      string   `json:"description"`
	Location         string   `json:"location"`
	ProjectType      string   `json:"project_type"`
	BudgetRange      string   `json:"budget_range"`
	ProjectValue     string   `json:"project_value"`
	CompletionDate   string   `json:"completion_date"`
	ClientName       string   `json:"client_name"`
	ImageURLs        []string `json:"image_urls"`
	Features         []string `json:"features"`
	Status           string   `json:"status" binding:"omitempty,oneof=planning in_progress completed on_hold"`
	OrderPosition    *int     `json:"order_position"`
	IsFeatured       *bool    `json:"is_featured"`
	IsActive         *bool    `json:"is_active"`
}

type UpdateProjectRequest struct {
	Name             *string   `json:"name"`
	ShortDescription *string   `json:"short_description"`
	Description      *string   `json:"description"`
	Location         *string   `json:"location"`
	ProjectType      *string   `json:"project_type"`
	BudgetRange      *string   `json:"budget_range"`
	ProjectValue     *string   `json:"project_value"`
	CompletionDate   *string   `json:"completion_date"`
	ClientName       *string   `json:"client_name"`
	ImageURLs        *[]string `json:"image_urls"`
	Features         *[]string `json:"features"`
	Status           *string   `json:"status" binding:"omitempty,oneof=planning in_progress completed on_hold"`
	OrderPosition    *int      `json:"order_position"`
	IsFeatured       *bool     `json:"is_featured"`
	IsActive         *bool     `json:"is_active"`
}

// parseDate accepts YYYY-MM-DD or RFC3339. Empty means no date.
func parseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// --------- Handlers ---------

func (h *ProjectHandler) Create(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}
	if blankField(c, "name", &req.Name) {
		return
	}

	completion, err := parseDate(req.CompletionDate)
	if err != nil {
		httperr.BadRequest(c, "invalid_completion_date", "completion_date must be YYYY-MM-DD.")
		return
	}

	status := req.Status
	if status == "" {
		status = models.ProjectPlanning
	}

	pos, ok := h.position(c, req.OrderPosition)
	if !ok {
		return
	}

	project := models.Project{
		Name:             strings.TrimSpace(req.Name),
		ShortDescription: req.ShortDescription,
		Description:      req.Description,
		Location:         req.Location,
		ProjectType:      strings.TrimSpace(req.ProjectType),
		BudgetRange:      req.BudgetRange,
		ProjectValue:     req.ProjectValue,
		CompletionDate:   completion,
		ClientName:       req.ClientName,
		ImageURLs:        datatypes.NewJSONSlice(stringsOrEmpty(req.ImageURLs)),
		Features:         datatypes.NewJSONSlice(stringsOrEmpty(req.Features)),
		Status:           status,
		OrderPosition:    pos,
		IsFeatured:       boolOr(req.IsFeatured, false),
		IsActive:         boolOr(req.IsActive, true),
	}

	h.create(c, &project, func(p *models.Project) uint { return p.ID })
}

func (h *ProjectHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req UpdateProjectRequest
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
	partial.Field(p, "location", req.Location)
	partial.Trimmed(p, "project_type", req.ProjectType)
	partial.Field(p, "budget_range", req.BudgetRange)
	partial.Field(p, "project_value", req.ProjectValue)
	if req.CompletionDate != nil {
		completion, err := parseDate(*req.CompletionDate)
		if err != nil {
			httperr.BadRequest(c, "invalid_completion_date", "completion_date must be YYYY-MM-DD.")
			return
		}
		p.Set("completion_date", completion)
	}
	partial.Field(p, "client_name", req.ClientName)
	partial.JSONList(p, "image_urls", req.ImageURLs)
	partial.JSONList(p, "features", req.Features)
	partial.Field(p, "status", req.Status)
	partial.Field(p, "order_position", req.OrderPosition)
	partial.Field(p, "is_featured", req.IsFeatured)
	partial.Field(p, "is_active", req.IsActive)

	h.applyPatch(c, id, p)
}
