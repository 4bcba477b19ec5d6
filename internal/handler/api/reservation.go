package api

import (
	"net/http"

	reqdto "gongsil-api/internal/handler/dto/request"
	resdto "gongsil-api/internal/handler/dto/response"
	"gongsil-api/internal/handler/httperr"
	"gongsil-api/internal/usecase/commands"
	"gongsil-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	cmds commands.ReservationCommands
	q    queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q}
}

// @Summary Quote reservation
// @Description Validate requested slots against the space's availability and price them without submitting
// @Tags reservations
// @Accept json
// @Produce json
// @Param id path string true "Space ID"
// @Param request body reqdto.QuoteReservationRequest true "Requested slots"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/spaces/{id}/reservations/quote [post]
func (h *ReservationHandler) Quote(c *gin.Context) {
	spaceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.QuoteReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	entries, err := reqdto.ToEntries(req.TimeTable)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid time table", err.Error())
		return
	}

	view, err := h.q.Quote(c.Request.Context(), spaceID, queries.QuoteInput{People: req.People, TimeTable: entries})
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuoteView(view))
}

// @Summary Create reservation
// @Description Request slots of a space. The request is validated here and forwarded to the origin.
// @Tags reservations
// @Accept json
// @Produce json
// @Param id path string true "Space ID"
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/spaces/{id}/reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	spaceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.CreateReservation(c.Request.Context(), spaceID, req)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCreateReservationResult(result))
}
