//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"gongsil-api/internal/domain/slot"
	"gongsil-api/internal/handler/api"
	resdto "gongsil-api/internal/handler/dto/response"
	"gongsil-api/internal/pkg/errs"
	"gongsil-api/internal/usecase/queries"
	"gongsil-api/tests/common/httptest"
	"gongsil-api/tests/common/testutil"
	queriesmock "gongsil-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TimetableHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockTimetableQueries
}

func (s *TimetableHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockTimetableQueries(s.mockCtrl)
	h := api.NewTimetableHandler(s.mockQueries)

	s.router.POST("/api/timetables/summary", h.Summarize)
	s.router.POST("/api/timetables/replay", h.Replay)
}

func (s *TimetableHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTimetableHandlerSuite(t *testing.T) {
	suite.Run(t, new(TimetableHandlerTestSuite))
}

func (s *TimetableHandlerTestSuite) TestSummarize() {
	url := "/api/timetables/summary"

	s.Run("success: passes parsed entries and price through", func() {
		s.mockQueries.EXPECT().Summarize(gomock.Any(), []slot.Entry{
			{Date: "2030-05-01", Slots: []slot.Slot{1, 2, 5}},
		}, int64(10000)).Return(&queries.TimeTableSummary{
			Dates: []queries.DateSummary{{
				Date:  "2030-05-01",
				Slots: []slot.Slot{1, 2, 5},
				Ranges: []queries.RangeView{
					{Start: 1, End: 2, Label: "00:00 - 01:00", Hours: 1},
					{Start: 5, End: 5, Label: "02:00 - 02:30", Hours: 0.5},
				},
				Hours: 1.5,
			}},
			TotalSlots: 3,
			TotalHours: 1.5,
			TotalPrice: 15000,
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{
			"timeTable": testutil.TimeTable(testutil.Day("2030-05-01", 1, 2, 5)),
			"price":     10000,
		})

		var body resdto.SummaryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Dates, 1)
		s.Equal([]resdto.RangeResponse{
			{Start: 1, End: 2, Label: "00:00 - 01:00", Hours: 1},
			{Start: 5, End: 5, Label: "02:00 - 02:30", Hours: 0.5},
		}, body.Dates[0].Ranges)
		s.Equal(int64(15000), body.TotalPrice)
	})

	s.Run("error: 400 for a malformed date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{
			"timeTable": []map[string]any{{"date": "05/01/2030"}},
		})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid time table")
	})

	s.Run("error: 400 for slot 0", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{
			"timeTable": testutil.TimeTable(testutil.Day("2030-05-01", 0)),
		})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid time table")
	})

	s.Run("error: 422 for a negative price", func() {
		s.mockQueries.EXPECT().Summarize(gomock.Any(), gomock.Any(), int64(-1)).
			Return(nil, errs.Mark(errs.New("price cannot be negative"), errs.ErrDomainValidation)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"price": -1})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Domain validation failed")
	})
}

func (s *TimetableHandlerTestSuite) TestReplay() {
	url := "/api/timetables/replay"

	s.Run("success: converts events and returns the selection", func() {
		s.mockQueries.EXPECT().Replay(gomock.Any(), queries.ReplayInput{
			Mask:    []slot.Entry{{Date: "2030-05-01", Slots: []slot.Slot{1, 2, 3}}},
			Initial: []slot.Entry{},
			Events: []queries.PointerEvent{
				{Kind: queries.EventDown, Date: "2030-05-01", Slot: 1},
				{Kind: queries.EventEnter, Date: "2030-05-01", Slot: 2},
				{Kind: queries.EventUp},
			},
			PricePerHour: 20000,
		}).Return(&queries.ReplayResult{
			TimeTable: []slot.Entry{{Date: "2030-05-01", Slots: []slot.Slot{1, 2}}},
			Summary:   queries.TimeTableSummary{TotalSlots: 2, TotalHours: 1, TotalPrice: 20000},
			Mode:      "none",
			Applied:   2,
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{
			"mask": testutil.TimeTable(testutil.Day("2030-05-01", 1, 2, 3)),
			"events": []map[string]any{
				{"type": "down", "date": "2030-05-01", "slot": 1},
				{"type": "enter", "date": "2030-05-01", "slot": 2},
				{"type": "up"},
			},
			"price": 20000,
		})

		var body resdto.ReplayResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal([]resdto.TimeTableDate{{Date: "2030-05-01", AvailableSlot: []resdto.SlotItem{{Slot: 1}, {Slot: 2}}}}, body.TimeTable)
		s.False(body.Dragging)
		s.Equal(2, body.Applied)
	})

	s.Run("error: 400 for an unknown event type", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{
			"events": []map[string]any{{"type": "click", "date": "2030-05-01", "slot": 1}},
		})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 400 when events are missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"price": 1})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 400 for an invalid gesture reported by the usecase", func() {
		s.mockQueries.EXPECT().Replay(gomock.Any(), gomock.Any()).
			Return(nil, errs.Wrapf(errs.ErrInvalidGesture, "event 0")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{
			"events": []map[string]any{{"type": "down", "date": "2030-05-01", "slot": 99}},
		})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid pointer event")
	})
}
