package v1

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/meetcal/meetcal/internal/profile"
	"github.com/meetcal/meetcal/server/service/calendar"
	"github.com/meetcal/meetcal/store"
)

type APIV1Service struct {
	Profile  *profile.Profile
	Store    *store.Store
	Calendar calendar.Service
}

func NewAPIV1Service(profile *profile.Profile, store *store.Store) *APIV1Service {
	return &APIV1Service{
		Profile:  profile,
		Store:    store,
		Calendar: calendar.NewService(store),
	}
}

// RegisterRoutes registers the v1 REST routes on the given group.
func (s *APIV1Service) RegisterRoutes(g *echo.Group) {
	g.POST("/persons", s.CreatePerson)
	g.GET("/persons", s.ListPersons)
	g.GET("/persons/:username", s.GetPerson)
	g.DELETE("/persons/:username", s.DeletePerson)

	g.POST("/persons/:username/slots", s.CreateSlot)
	g.GET("/persons/:username/slots", s.ListSlots)

	g.GET("/meetings", s.ResolveMeeting)
}

// errorResponse is the uniform error body.
type errorResponse struct {
	Error string `json:"error"`
}

// jsonError maps calendar errors onto HTTP statuses. Unrecognized errors
// are reported as 500 with a generic body so store internals never leak
// to clients.
func jsonError(c echo.Context, err error) error {
	var (
		invalid *calendar.InvalidRangeError
		unknown *calendar.UnknownPersonError
		dup     *calendar.DuplicatePersonError
	)
	switch {
	case errors.As(err, &invalid), errors.Is(err, calendar.ErrEmptyQuery):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.As(err, &unknown):
		return c.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.As(err, &dup):
		return c.JSON(http.StatusConflict, errorResponse{Error: err.Error()})
	default:
		slog.Error("request failed", "method", c.Request().Method, "path", c.Path(), "error", err)
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}
