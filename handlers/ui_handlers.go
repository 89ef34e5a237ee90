package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/vit0-9/dns_lookup_api/models"
	"github.com/vit0-9/dns_lookup_api/web"
)

// UIHandlers serves the embedded single-page UI and its share links.
type UIHandlers struct{}

func NewUIHandlers() *UIHandlers {
	return &UIHandlers{}
}

// IndexHandler serves the lookup page.
func (h *UIHandlers) IndexHandler(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", web.IndexHTML)
}

// ShareLinkHandler turns path-style share links (/MX/example.com) into the
// fragment form the UI keeps in the URL bar (/#MX/example.com). Paths that do
// not parse as a share link get a plain 404.
func (h *UIHandlers) ShareLinkHandler(c *gin.Context) {
	recordType, domain, ok := web.ParseFragment(strings.TrimPrefix(c.Request.URL.Path, "/"))
	if !ok {
		c.JSON(http.StatusNotFound, models.APIErrorResponse{Success: false, Error: "not found"})
		return
	}
	c.Redirect(http.StatusFound, "/#"+web.Fragment(recordType, domain))
}
