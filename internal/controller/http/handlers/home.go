package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HomeHandler struct{}

func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

func (h *HomeHandler) Show(c *gin.Context) {
	c.HTML(http.StatusOK, "home.tmpl", gin.H{"Title": "Payment Gateway Practice"})
}
