package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/construction-site/internal/infra/repository"
)

type PublicWebHandler struct {
	site *Site
	log  *zap.Logger
}

func NewPublicWebHandler(site *Site, log *zap.Logger) *PublicWebHandler {
	return &PublicWebHandler{site: site, log: log}
}

// page renders name with the company header data. A missing company row
// still renders the page.
func (h *PublicWebHandler) page(c *gin.Context, status int, name, title string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Title"] = title

	company, err := h.site.CompanyView(c)
	switch {
	case err == nil:
		data["Company"] = company
	case !errors.Is(err, repository.ErrNotFound):
		h.log.Error("load company", zap.Error(err))
	}

	c.HTML(status, name, data)
}

func (h *PublicWebHandler) fail(c *gin.Context, err error) {
	_ = c.Error(err)
	h.page(c, http.StatusInternalServerError, "error", "Something went wrong", gin.H{
		"Message": "Please try again in a moment.",
	})
}

func (h *PublicWebHandler) Home(c *gin.Context) {
	services, err := h.site.ActiveServices(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	projects, err := h.site.ActiveProjects(c, ProjectQuery{Featured: true})
	if err != nil {
		h.fail(c, err)
		return
	}

	h.page(c, http.StatusOK, "home", "Home", gin.H{
		"Services": services,
		"Projects": projects,
	})
}

func (h *PublicWebHandler) Services(c *gin.Context) {
	services, err := h.site.ActiveServices(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.page(c, http.StatusOK, "services", "Services", gin.H{"Services": services})
}

func (h *PublicWebHandler) Projects(c *gin.Context) {
	q, ok := projectQueryFrom(c)
	if !ok {
		q.Status = ""
	}

	projects, err := h.site.ActiveProjects(c, q)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.page(c, http.StatusOK, "projects", "Projects", gin.H{"Projects": projects})
}

func (h *PublicWebHandler) Project(c *gin.Context) {
	id, ok := paramIDQuiet(c)
	if ok {
		project, err := h.site.Projects.Get(c.Request.Context(), id, true)
		if err == nil {
			h.page(c, http.StatusOK, "project", project.Name, gin.H{"Project": project})
			return
		}
		if !errors.Is(err, repository.ErrNotFound) {
			h.fail(c, err)
			return
		}
	}

	h.page(c, http.StatusNotFound, "error", "Project not found", gin.H{
		"Message": "This project does not exist or is no longer published.",
	})
}

func (h *PublicWebHandler) Team(c *gin.Context) {
	team, err := h.site.ActiveTeam(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.page(c, http.StatusOK, "team", "Our team", gin.H{"Team": team})
}

func (h *PublicWebHandler) Contact(c *gin.Context) {
	services, err := h.site.ActiveServices(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.page(c, http.StatusOK, "contact", "Contact", gin.H{"Services": services})
}
