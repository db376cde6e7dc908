package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halstrom/app-registry/models"
)

const functionalBase = "/api/functional/apps"

func TestFunctionalLifecycle(t *testing.T) {
	s := newTestServer(t)

	// Create: location header, empty body.
	w := doJSON(t, s, "POST", functionalBase, appBody("calc", "dave", "1.0"))
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Empty(t, w.Body.Bytes())

	location := w.Header().Get("Location")
	require.NotEmpty(t, location)
	assert.Contains(t, location, functionalBase+"/")

	// Fetch through the returned location.
	w = doJSON(t, s, "GET", location, nil)
	require.Equal(t, http.StatusOK, w.Code)
	fetched := decodeAppDTOBody(t, w)
	assert.Equal(t, "calc", *fetched.Name)
	assert.Equal(t, "dave", *fetched.Author)
	assert.Equal(t, "1.0", *fetched.Version)

	// Update.
	w = doJSON(t, s, "PUT", location, appBody("calc", "erin", "1.1"))
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, s, "GET", location, nil)
	require.Equal(t, http.StatusOK, w.Code)
	updated := decodeAppDTOBody(t, w)
	assert.Equal(t, "erin", *updated.Author)
	assert.Equal(t, "1.1", *updated.Version)

	// Delete, then gone.
	w = doJSON(t, s, "DELETE", location, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, s, "GET", location, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "001", decodeErrorBody(t, w).Code)
}

func TestFunctionalCreateConflict(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, "POST", functionalBase, appBody("calc", "dave", "1.0"))
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, s, "POST", functionalBase, appBody("calc", "erin", "2.0"))
	require.Equal(t, http.StatusConflict, w.Code)

	errBody := decodeErrorBody(t, w)
	assert.Equal(t, "002", errBody.Code)
	assert.Equal(t, "Resource already exist", errBody.Message)
}

func TestFunctionalValidation(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, "POST", functionalBase, map[string]string{"devName": "dave", "appVersion": "1.0"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	errBody := decodeErrorBody(t, w)
	assert.Equal(t, "003", errBody.Code)
	assert.Contains(t, errBody.Details, "appName: is required")

	w = doJSON(t, s, "POST", functionalBase, appBody("", "dave", "1.0"))
	require.Equal(t, http.StatusBadRequest, w.Code)

	errBody = decodeErrorBody(t, w)
	assert.Equal(t, "003", errBody.Code)
	assert.Contains(t, errBody.Details, "appName: must not be empty")
}

func TestFunctionalList(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, "GET", functionalBase, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []models.AppDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Empty(t, list)

	doJSON(t, s, "POST", functionalBase, appBody("calc", "dave", "1.0"))
	doJSON(t, s, "POST", functionalBase, appBody("notes", "erin", "2.1"))

	w = doJSON(t, s, "GET", functionalBase, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 2)
}

// The two surfaces must answer identically for the operations they share.
func TestSurfaceParity(t *testing.T) {
	s := newTestServer(t)

	for _, base := range []string{annotationBase, functionalBase} {
		t.Run(base, func(t *testing.T) {
			w := doJSON(t, s, "GET", base+"/4242", nil)
			require.Equal(t, http.StatusNotFound, w.Code)
			assert.Equal(t, "001", decodeErrorBody(t, w).Code)

			w = doJSON(t, s, "GET", base+"/abc", nil)
			require.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "003", decodeErrorBody(t, w).Code)

			w = doJSON(t, s, "DELETE", base+"/4242", nil)
			require.Equal(t, http.StatusNotFound, w.Code)

			w = doJSON(t, s, "PUT", base+"/4242", appBody("x", "y", "z"))
			require.Equal(t, http.StatusNotFound, w.Code)
		})
	}
}

func TestFunctionalCreateIsVisibleToAnnotationSurface(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, "POST", functionalBase, appBody("calc", "dave", "1.0"))
	require.Equal(t, http.StatusCreated, w.Code)
	location := w.Header().Get("Location")

	var id int64
	_, err := fmt.Sscanf(location, functionalBase+"/%d", &id)
	require.NoError(t, err)

	w = doJSON(t, s, "GET", fmt.Sprintf("%s/%d", annotationBase, id), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "calc", *decodeAppDTOBody(t, w).Name)
}
