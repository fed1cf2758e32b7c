package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/domain"
)

// appReturning monta una ruta que siempre falla con err, pasando por el
// traductor de errores de dominio.
func appReturning(err error) *fiber.App {
	app := fiber.New()
	app.Get("/fail", func(c *fiber.Ctx) error {
		return respondError(c, err)
	})
	return app
}

func doFail(t *testing.T, err error) (int, dto.ErrorResponse) {
	t.Helper()
	app := appReturning(err)
	resp, reqErr := app.Test(httptest.NewRequest(http.MethodGet, "/fail", nil), -1)
	require.NoError(t, reqErr)
	defer resp.Body.Close()

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestRespondError_MapeaErroresDeDominio(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not found", domain.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"invalid input", domain.ErrInvalidInput, http.StatusBadRequest, "VALIDATION"},
		{"invalid destination", domain.ErrInvalidDestination, http.StatusBadRequest, "INVALID_DESTINATION"},
		{"duplicate", domain.ErrDuplicate, http.StatusConflict, "DUPLICATE"},
		{"conflict", domain.ErrConflict, http.StatusConflict, "CONFLICT"},
		{"unauthorized", domain.ErrUnauthorized, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
		{"interno", errors.New("algo explotó"), http.StatusInternalServerError, "INTERNAL"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := doFail(t, tc.err)
			assert.Equal(t, tc.wantStatus, status)
			assert.Equal(t, tc.wantCode, body.Code)
		})
	}
}

// Un error envuelto también debe mapearse (errors.Is sobre la cadena).
func TestRespondError_ErrorEnvuelto(t *testing.T) {
	status, body := doFail(t, errors.Join(domain.ErrConflict, errors.New("detalle pgx")))
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "CONFLICT", body.Code)
}

// DependencyError expone los bloqueantes en details para un 409 accionable.
func TestRespondError_DependencyErrorConBloqueantes(t *testing.T) {
	status, body := doFail(t, &domain.DependencyError{
		Resource: "location_type",
		Count:    2,
		Blockers: []string{"Camión 1", "Camión 2"},
	})

	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "DEPENDENCY", body.Code)
	assert.Equal(t, []string{"Camión 1", "Camión 2"}, body.Details)
	assert.Contains(t, body.Message, "location_type")
}
