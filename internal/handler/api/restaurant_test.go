//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"restaurant-deals/internal/domain/timeofday"
	"restaurant-deals/internal/handler/api"
	resdto "restaurant-deals/internal/handler/dto/response"
	"restaurant-deals/internal/handler/httperr"
	"restaurant-deals/internal/handler/middleware"
	"restaurant-deals/internal/usecase/queries"
	"restaurant-deals/tests/common/httptest"
	"restaurant-deals/tests/common/testutil"
	queriesmock "restaurant-deals/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RestaurantHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockDealQueries
	handler     *api.RestaurantHandler
}

func (s *RestaurantHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockDealQueries(s.mockCtrl)
	s.handler = api.NewRestaurantHandler(s.mockQueries)

	s.router.GET("/restaurants/available", s.handler.GetAvailableDeals)
	s.router.GET("/restaurants/peak-time", s.handler.GetPeakTime)
}

func (s *RestaurantHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRestaurantHandlerSuite(t *testing.T) {
	suite.Run(t, new(RestaurantHandlerTestSuite))
}

// ================================================================================
// TestGetAvailableDeals
// ================================================================================

func (s *RestaurantHandlerTestSuite) TestGetAvailableDeals() {
	lateNight := queries.AvailableDealView{
		RestaurantObjectID: "r3",
		RestaurantName:     "Restaurant 3",
		RestaurantAddress1: "789 Pine St",
		RestaurantSuburb:   "Town",
		RestaurantOpen:     timeofday.Of(22, 0),
		RestaurantClose:    timeofday.Of(2, 0),
		ObjectID:           "d4",
		Discount:           25,
		DineIn:             true,
		Lightning:          false,
		Open:               timeofday.Of(22, 0),
		Close:              timeofday.Of(2, 0),
		QtyLeft:            8,
	}

	s.Run("success: renders every field as a string", func() {
		s.mockQueries.EXPECT().AvailableDeals(gomock.Any(), timeofday.Of(23, 0)).
			Return([]queries.AvailableDealView{lateNight}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/restaurants/available?timeOfDay=23:00", nil)

		var body resdto.AvailableDealsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal([]resdto.DealResponse{{
			RestaurantObjectID: "r3",
			RestaurantName:     "Restaurant 3",
			RestaurantAddress1: "789 Pine St",
			RestaurantSuburb:   "Town",
			RestaurantOpen:     "10:00PM",
			RestaurantClose:    "2:00AM",
			ObjectID:           "d4",
			Discount:           "25.0",
			DineIn:             "true",
			Lightning:          "false",
			Open:               "10:00PM",
			Close:              "2:00AM",
			QtyLeft:            "8",
		}}, body.Deals)
	})

	s.Run("success: wire field names", func() {
		s.mockQueries.EXPECT().AvailableDeals(gomock.Any(), gomock.Any()).
			Return([]queries.AvailableDealView{lateNight}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/restaurants/available?timeOfDay=23:00", nil)

		var body struct {
			Deals []map[string]any `json:"deals"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Deals, 1)

		want := testutil.DtoMap(s.T(), map[string]string{
			"restaurantObjectId": "r3",
			"restaurantName":     "Restaurant 3",
			"restaurantAddress1": "789 Pine St",
			"restarantSuburb":    "Town",
			"restaurantOpen":     "10:00PM",
			"restaurantClose":    "2:00AM",
			"objectId":           "d4",
			"discount":           "25.0",
			"dineIn":             "true",
			"lightning":          "false",
			"open":               "10:00PM",
			"close":              "2:00AM",
			"qtyLeft":            "8",
		})
		s.Equal(want, body.Deals[0])
	})

	s.Run("success: no open restaurants is an empty list", func() {
		s.mockQueries.EXPECT().AvailableDeals(gomock.Any(), timeofday.Of(5, 0)).
			Return([]queries.AvailableDealView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/restaurants/available?timeOfDay=05:00", nil)

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"deals":[]}`, rec.Body.String())
	})

	s.Run("success: 24:00 queries midnight", func() {
		s.mockQueries.EXPECT().AvailableDeals(gomock.Any(), timeofday.Midnight).
			Return([]queries.AvailableDealView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/restaurants/available?timeOfDay=24:00", nil)

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"deals":[]}`, rec.Body.String())
	})

	s.Run("error: 400 on invalid time of day", func() {
		for _, raw := range []string{"", "9:00", "24:01", "12:60", "noon", "12%3A00pm", "1200"} {
			s.Run("timeOfDay="+raw, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/restaurants/available?timeOfDay="+raw, nil)
				httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, httperr.CodeInvalidTimeFormat, "Expected format is HH:mm")
			})
		}
	})

	s.Run("error: 400 names the offending value", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/restaurants/available?timeOfDay=25:00", nil)
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, httperr.CodeInvalidTimeFormat, "Invalid time format: '25:00'")
	})

	s.Run("error: 400 when parameter missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/restaurants/available", nil)
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, httperr.CodeInvalidTimeFormat, "Invalid time format: ''")
	})

	s.Run("error: 503 before the first snapshot", func() {
		s.mockQueries.EXPECT().AvailableDeals(gomock.Any(), gomock.Any()).
			Return(nil, queries.ErrSnapshotUnavailable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/restaurants/available?timeOfDay=12:00", nil)
		httptest.AssertErrorCode(s.T(), rec, http.StatusServiceUnavailable, httperr.CodeSnapshotUnavailable, "not available")
	})

	s.Run("error: 500 on unexpected failure", func() {
		s.mockQueries.EXPECT().AvailableDeals(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("disk on fire")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/restaurants/available?timeOfDay=12:00", nil)
		httptest.AssertErrorCode(s.T(), rec, http.StatusInternalServerError, httperr.CodeInternal, "An unexpected error occurred: disk on fire")
	})
}

// ================================================================================
// TestGetPeakTime
// ================================================================================

func (s *RestaurantHandlerTestSuite) TestGetPeakTime() {
	testCases := []struct {
		name      string
		view      queries.PeakWindowView
		wantStart string
		wantEnd   string
	}{
		{name: "morning bucket", view: queries.PeakWindowView{Start: timeofday.Of(9, 0), End: timeofday.Of(12, 0)}, wantStart: "9:00AM", wantEnd: "12:00PM"},
		{name: "first bucket", view: queries.PeakWindowView{Start: timeofday.Midnight, End: timeofday.Of(3, 0)}, wantStart: "12:00AM", wantEnd: "3:00AM"},
		{name: "last bucket", view: queries.PeakWindowView{Start: timeofday.Of(21, 0), End: timeofday.Max}, wantStart: "9:00PM", wantEnd: "11:59PM"},
	}

	for _, tc := range testCases {
		s.Run("success: "+tc.name, func() {
			view := tc.view
			s.mockQueries.EXPECT().PeakWindow(gomock.Any()).Return(&view, nil).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/restaurants/peak-time", nil)

			var body resdto.PeakTimeResponse
			httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
			s.Equal(resdto.PeakTimeResponse{PeakTimeStart: tc.wantStart, PeakTimeEnd: tc.wantEnd}, body)
		})
	}

	s.Run("error: 503 before the first snapshot", func() {
		s.mockQueries.EXPECT().PeakWindow(gomock.Any()).Return(nil, queries.ErrSnapshotUnavailable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/restaurants/peak-time", nil)
		httptest.AssertErrorCode(s.T(), rec, http.StatusServiceUnavailable, httperr.CodeSnapshotUnavailable, "")
	})
}
