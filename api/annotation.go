package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/halstrom/app-registry/models"
)

// Declarative dispatch surface. Each handler parses and validates its input,
// invokes the service and maps the result; failures exit through renderError.

func (s *Server) handleCreate(c *gin.Context) {
	dto, err := s.bindAppDTO(c)
	if err != nil {
		s.renderError(c, err)
		return
	}

	app, err := s.service.Save(c.Request.Context(), *dto)
	if err != nil {
		s.renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.NewAppDTO(*app))
}

func (s *Server) handleGet(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		s.renderError(c, err)
		return
	}

	app, err := s.service.FindByID(c.Request.Context(), id)
	if err != nil {
		s.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewAppDTO(*app))
}

// handleList serves both the full listing and the filtered form. With both
// appName and appVersion present it looks up the single match and an absent
// result is an empty 200, never a 404. This asymmetry against the id lookup
// is deliberate; do not unify the two paths.
func (s *Server) handleList(c *gin.Context) {
	name := c.Query("appName")
	version := c.Query("appVersion")

	if name != "" && version != "" {
		app, err := s.service.FindByNameAndVersion(c.Request.Context(), name, version)
		if err != nil {
			s.renderError(c, err)
			return
		}
		if app == nil {
			c.Status(http.StatusOK)
			return
		}
		c.JSON(http.StatusOK, models.NewAppDTO(*app))
		return
	}

	dtos := []models.AppDTO{}
	for app, err := range s.service.FindAll(c.Request.Context()) {
		if err != nil {
			s.renderError(c, err)
			return
		}
		dtos = append(dtos, models.NewAppDTO(app))
	}

	c.JSON(http.StatusOK, dtos)
}

func (s *Server) handleUpdate(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		s.renderError(c, err)
		return
	}

	dto, err := s.bindAppDTO(c)
	if err != nil {
		s.renderError(c, err)
		return
	}

	if _, err := s.service.UpdateByID(c.Request.Context(), id, *dto); err != nil {
		s.renderError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (s *Server) handleDelete(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		s.renderError(c, err)
		return
	}

	if err := s.service.DeleteByID(c.Request.Context(), id); err != nil {
		s.renderError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (s *Server) bindAppDTO(c *gin.Context) (*models.AppDTO, error) {
	var dto models.AppDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		return nil, models.ValidationErrors{{Field: "body", Message: "must be valid JSON"}}
	}
	if err := models.ValidateAppDTO(s.validate, &dto); err != nil {
		return nil, err
	}
	return &dto, nil
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, models.ValidationErrors{{Field: "id", Message: "must be an integer"}}
	}
	return id, nil
}
