package v1

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/meetcal/meetcal/store"
)

// Person is the wire representation of a participant.
type Person struct {
	Username  string `json:"username"`
	Nickname  string `json:"nickname"`
	CreatedAt string `json:"created_at"`
}

// CreatePersonRequest represents the request to create a person.
type CreatePersonRequest struct {
	Username string `json:"username"`
	Nickname string `json:"nickname"`
}

// CreatePerson creates a new person.
// POST /api/v1/persons
func (s *APIV1Service) CreatePerson(c echo.Context) error {
	var req CreatePersonRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "malformed request body"})
	}
	if req.Username == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "username is required"})
	}

	person, err := s.Calendar.AddPerson(c.Request().Context(), req.Username, req.Nickname)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, convertPerson(person))
}

// GetPerson returns a single person by username.
// GET /api/v1/persons/:username
func (s *APIV1Service) GetPerson(c echo.Context) error {
	person, err := s.Calendar.GetPerson(c.Request().Context(), c.Param("username"))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, convertPerson(person))
}

// ListPersons lists all persons.
// GET /api/v1/persons
func (s *APIV1Service) ListPersons(c echo.Context) error {
	persons, err := s.Calendar.ListPersons(c.Request().Context())
	if err != nil {
		return jsonError(c, err)
	}
	list := make([]Person, 0, len(persons))
	for _, p := range persons {
		list = append(list, convertPerson(p))
	}
	return c.JSON(http.StatusOK, list)
}

// DeletePerson deletes a person and their availability.
// DELETE /api/v1/persons/:username
func (s *APIV1Service) DeletePerson(c echo.Context) error {
	if err := s.Calendar.RemovePerson(c.Request().Context(), c.Param("username")); err != nil {
		return jsonError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func convertPerson(p *store.Person) Person {
	return Person{
		Username:  p.Username,
		Nickname:  p.Nickname,
		CreatedAt: time.Unix(p.CreatedTs, 0).UTC().Format(time.RFC3339),
	}
}
