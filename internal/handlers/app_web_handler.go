package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AppWebHandler serves the admin shell; its data comes from the admin API.
type AppWebHandler struct{}

func NewAppWebHandler() *AppWebHandler {
	return &AppWebHandler{}
}

func (h *AppWebHandler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_login", nil)
}

func (h *AppWebHandler) Dashboard(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_dashboard", nil)
}
