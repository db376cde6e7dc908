package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/halstrom/app-registry/models"
)

// functionalRoutes composes the second dispatch surface as a chi route tree.
// It delegates to the same service and classifier as the declarative group;
// only the routing mechanism differs.
func (s *Server) functionalRoutes() http.Handler {
	r := chi.NewRouter()

	r.Route("/api/functional/apps", func(r chi.Router) {
		r.Get("/", s.fnList)
		r.Post("/", s.fnCreate)
		r.Get("/{id}", s.fnGet)
		r.Put("/{id}", s.fnUpdate)
		r.Delete("/{id}", s.fnDelete)
	})

	return r
}

// fnCreate answers with the created resource's location and an empty body.
func (s *Server) fnCreate(w http.ResponseWriter, r *http.Request) {
	dto, err := s.decodeAppDTO(r)
	if err != nil {
		writeClassified(w, err)
		return
	}

	app, err := s.service.Save(r.Context(), *dto)
	if err != nil {
		writeClassified(w, err)
		return
	}

	location := fmt.Sprintf("%s/%d", strings.TrimSuffix(r.URL.Path, "/"), app.ID)
	w.Header().Set("Location", location)
	w.WriteHeader(http.StatusCreated)
}

func (s *Server) fnList(w http.ResponseWriter, r *http.Request) {
	dtos := []models.AppDTO{}
	for app, err := range s.service.FindAll(r.Context()) {
		if err != nil {
			writeClassified(w, err)
			return
		}
		dtos = append(dtos, models.NewAppDTO(app))
	}

	writeJSON(w, http.StatusOK, dtos)
}

func (s *Server) fnGet(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		writeClassified(w, err)
		return
	}

	app, err := s.service.FindByID(r.Context(), id)
	if err != nil {
		writeClassified(w, err)
		return
	}

	writeJSON(w, http.StatusOK, models.NewAppDTO(*app))
}

func (s *Server) fnUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		writeClassified(w, err)
		return
	}

	dto, err := s.decodeAppDTO(r)
	if err != nil {
		writeClassified(w, err)
		return
	}

	if _, err := s.service.UpdateByID(r.Context(), id, *dto); err != nil {
		writeClassified(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) fnDelete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		writeClassified(w, err)
		return
	}

	if err := s.service.DeleteByID(r.Context(), id); err != nil {
		writeClassified(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) decodeAppDTO(r *http.Request) (*models.AppDTO, error) {
	var dto models.AppDTO
	if err := decodeJSON(r, &dto); err != nil {
		return nil, models.ValidationErrors{{Field: "body", Message: "must be valid JSON"}}
	}
	if err := models.ValidateAppDTO(s.validate, &dto); err != nil {
		return nil, err
	}
	return &dto, nil
}
