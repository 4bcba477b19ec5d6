package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OriginHandler hands /origin/* requests to the reverse proxy unchanged.
type OriginHandler struct {
	proxy http.Handler
}

func NewOriginHandler(proxy http.Handler) *OriginHandler {
	return &OriginHandler{proxy: proxy}
}

// @Summary Backend origin proxy
// @Description Forwards method, path (without /origin), query, headers and body to the backend origin and streams the answer back. Failures return 500 text/plain.
// @Tags origin
// @Param path path string true "Path on the origin"
// @Success 200 {string} string "origin response"
// @Failure 500 {string} string "Proxy error"
// @Router /origin/{path} [get]
// @Router /origin/{path} [post]
// @Router /origin/{path} [put]
// @Router /origin/{path} [patch]
// @Router /origin/{path} [delete]
func (h *OriginHandler) Forward(c *gin.Context) {
	h.proxy.ServeHTTP(c.Writer, c.Request)
}
