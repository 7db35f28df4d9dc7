package api

import (
	"errors"
	"fmt"
	"net/http"

	"restaurant-deals/internal/domain/timeofday"
	resdto "restaurant-deals/internal/handler/dto/response"
	"restaurant-deals/internal/handler/httperr"
	"restaurant-deals/internal/pkg/errs"
	"restaurant-deals/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const invalidTimeFormatMessage = "Invalid time format: '%s'. Expected format is HH:mm (e.g., '14:30' or '09:00'). Please provide a valid time in 24-hour format."

type RestaurantHandler struct {
	q queries.DealQueries
}

func NewRestaurantHandler(q queries.DealQueries) *RestaurantHandler {
	return &RestaurantHandler{q: q}
}

// @Summary Available deals
// @Description List every deal of every restaurant open at the given time of day
// @Tags restaurants
// @Produce json
// @Param timeOfDay query string true "24-hour time, HH:mm"
// @Success 200 {object} resdto.AvailableDealsResponse
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /restaurants/available [get]
func (h *RestaurantHandler) GetAvailableDeals(c *gin.Context) {
	raw := c.Query("timeOfDay")
	at, err := timeofday.Parse24h(raw)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errs.ErrInvalidTimeOfDay),
			httperr.CodeInvalidTimeFormat, fmt.Sprintf(invalidTimeFormatMessage, raw), nil)
		return
	}

	views, err := h.q.AvailableDeals(c.Request.Context(), at)
	if err != nil {
		abortWithQueryError(c, err)
		return
	}
	resp, err := resdto.FromAvailableDeals(views)
	if err != nil {
		abortWithQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Peak time
// @Description The 3-hour window of the day with the most available deals
// @Tags restaurants
// @Produce json
// @Success 200 {object} resdto.PeakTimeResponse
// @Failure 503 {object} httperr.Response
// @Router /restaurants/peak-time [get]
func (h *RestaurantHandler) GetPeakTime(c *gin.Context) {
	view, err := h.q.PeakWindow(c.Request.Context())
	if err != nil {
		abortWithQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPeakWindow(view))
}

func abortWithQueryError(c *gin.Context, err error) {
	if errors.Is(err, queries.ErrSnapshotUnavailable) {
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err,
			httperr.CodeSnapshotUnavailable, "Restaurant data is not available yet. Please retry shortly.", nil)
		return
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err,
		httperr.CodeInternal, "An unexpected error occurred: "+err.Error(), nil)
}
