package v1

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/meetcal/meetcal/server/service/calendar"
)

// Slot is the wire representation of one availability interval.
type Slot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// CreateSlotRequest represents the request to add availability.
type CreateSlotRequest struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// CreateSlot folds one interval into a person's availability and returns
// the full merged availability.
// POST /api/v1/persons/:username/slots
func (s *APIV1Service) CreateSlot(c echo.Context) error {
	var req CreateSlotRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "malformed request body"})
	}
	start, err := calendar.ParseInstant(req.Start)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}
	end, err := calendar.ParseInstant(req.End)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	intervals, err := s.Calendar.AddSlot(c.Request().Context(), c.Param("username"), start, end)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, convertSlots(intervals))
}

// ListSlots returns a person's availability, optionally chopped into
// fixed-size chunks via ?split= (a Go duration, e.g. "1h" or "30m").
// GET /api/v1/persons/:username/slots
func (s *APIV1Service) ListSlots(c echo.Context) error {
	intervals, err := s.Calendar.ListSlots(c.Request().Context(), c.Param("username"))
	if err != nil {
		return jsonError(c, err)
	}

	if split := c.QueryParam("split"); split != "" {
		step, err := time.ParseDuration(split)
		if err != nil || step <= 0 {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid split duration"})
		}
		intervals = calendar.SplitIntervals(intervals, step)
	}
	return c.JSON(http.StatusOK, convertSlots(intervals))
}

func convertSlots(intervals []calendar.Interval) []Slot {
	slots := make([]Slot, 0, len(intervals))
	for _, iv := range intervals {
		slots = append(slots, Slot{
			Start: calendar.FormatInstant(iv.Start),
			End:   calendar.FormatInstant(iv.End),
		})
	}
	return slots
}
