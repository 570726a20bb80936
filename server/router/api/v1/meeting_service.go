package v1

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

// MeetingResponse lists the common free windows of the queried
// participants.
type MeetingResponse struct {
	Participants []string `json:"participants"`
	Windows      []Slot   `json:"windows"`
}

// ResolveMeeting returns the windows where all named participants are
// free. Participants are given as a comma-separated ?participants= list;
// ?min_duration= (a Go duration) drops windows shorter than the meeting
// needs.
// GET /api/v1/meetings
func (s *APIV1Service) ResolveMeeting(c echo.Context) error {
	participants := splitParticipants(c.QueryParam("participants"))

	var minDuration time.Duration
	if raw := c.QueryParam("min_duration"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d < 0 {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid min_duration"})
		}
		minDuration = d
	}

	windows, err := s.Calendar.ResolveMeeting(c.Request().Context(), participants, minDuration)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, MeetingResponse{
		Participants: participants,
		Windows:      convertSlots(windows),
	})
}

func splitParticipants(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
