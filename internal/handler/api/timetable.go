package api

import (
	"net/http"

	reqdto "gongsil-api/internal/handler/dto/request"
	resdto "gongsil-api/internal/handler/dto/response"
	"gongsil-api/internal/handler/httperr"
	"gongsil-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type TimetableHandler struct {
	q queries.TimetableQueries
}

func NewTimetableHandler(q queries.TimetableQueries) *TimetableHandler {
	return &TimetableHandler{q: q}
}

// @Summary Summarize slot selection
// @Description Compress a per-date slot selection into time ranges with hour and price totals
// @Tags timetables
// @Accept json
// @Produce json
// @Param request body reqdto.SummaryRequest true "Slot selection"
// @Success 200 {object} resdto.SummaryResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/timetables/summary [post]
func (h *TimetableHandler) Summarize(c *gin.Context) {
	var req reqdto.SummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	entries, err := reqdto.ToEntries(req.TimeTable)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid time table", err.Error())
		return
	}
	summary, err := h.q.Summarize(c.Request.Context(), entries, req.PricePerHour)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSummary(*summary))
}

// @Summary Replay drag gesture
// @Description Run recorded pointer events through the drag selector and return the resulting selection
// @Tags timetables
// @Accept json
// @Produce json
// @Param request body reqdto.ReplayRequest true "Pointer events"
// @Success 200 {object} resdto.ReplayResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/timetables/replay [post]
func (h *TimetableHandler) Replay(c *gin.Context) {
	var req reqdto.ReplayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	in := queries.ReplayInput{PricePerHour: req.PricePerHour}
	var err error
	if req.Mask != nil {
		if in.Mask, err = reqdto.ToEntries(req.Mask); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid mask", err.Error())
			return
		}
	}
	if in.Initial, err = reqdto.ToEntries(req.Initial); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid initial selection", err.Error())
		return
	}
	in.Events = make([]queries.PointerEvent, 0, len(req.Events))
	for _, ev := range req.Events {
		in.Events = append(in.Events, queries.PointerEvent{
			Kind: queries.EventKind(ev.Type),
			Date: ev.Date,
			Slot: ev.Slot,
		})
	}

	result, err := h.q.Replay(c.Request.Context(), in)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReplayResult(result))
}
