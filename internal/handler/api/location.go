package api

import (
	"net/http"

	"gongsil-api/internal/handler/httperr"
	"gongsil-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type LocationHandler struct {
	q queries.LocationQueries
}

func NewLocationHandler(q queries.LocationQueries) *LocationHandler {
	return &LocationHandler{q: q}
}

// LocationErrorResponse is the envelope the map screens expect from the search proxies.
type LocationErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// @Summary Naver local search
// @Description Relays Naver Local Search with server-held credentials. The upstream status and body are returned untouched.
// @Tags location
// @Produce json
// @Param query query string true "Search keyword"
// @Param display query int false "Result count"
// @Param start query int false "Start offset"
// @Param sort query string false "random or comment"
// @Success 200 {object} map[string]any
// @Failure 500 {object} LocationErrorResponse
// @Router /local-search [get]
func (h *LocationHandler) SearchLocal(c *gin.Context) {
	res, err := h.q.SearchLocal(c.Request.Context(), queries.LocalSearchParams{
		Query:   c.Query("query"),
		Display: c.Query("display"),
		Start:   c.Query("start"),
		Sort:    c.Query("sort"),
	})
	if err != nil {
		abortLocation(c, err, "Failed to fetch local search results")
		return
	}
	c.Data(res.Status, res.ContentType, res.Body)
}

// @Summary Naver reverse geocoding
// @Description Relays Naver Reverse Geocoding with server-held credentials. The upstream status and body are returned untouched.
// @Tags location
// @Produce json
// @Param coords query string true "longitude,latitude"
// @Param orders query string false "legalcode,admcode,addr,roadaddr"
// @Param output query string false "json or xml"
// @Success 200 {object} map[string]any
// @Failure 500 {object} LocationErrorResponse
// @Router /reverse-geocode [get]
func (h *LocationHandler) ReverseGeocode(c *gin.Context) {
	res, err := h.q.ReverseGeocode(c.Request.Context(), queries.ReverseGeocodeParams{
		Coords: c.Query("coords"),
		Orders: c.Query("orders"),
		Output: c.Query("output"),
	})
	if err != nil {
		abortLocation(c, err, "Failed to reverse geocode")
		return
	}
	c.Data(res.Status, res.ContentType, res.Body)
}

func abortLocation(c *gin.Context, err error, msg string) {
	httperr.Record(c, http.StatusInternalServerError, err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, LocationErrorResponse{
		Message: msg,
		Error:   err.Error(),
	})
}
