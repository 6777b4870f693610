package response

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aerotrack/internal/common"
)

func TestStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{common.Validation("x"), http.StatusBadRequest},
		{common.Conflict("x"), http.StatusBadRequest},
		{common.NotFound("x"), http.StatusNotFound},
		{common.Unauthorized("x"), http.StatusUnauthorized},
		{common.Forbidden("x"), http.StatusForbidden},
		{errors.New("disk full"), http.StatusInternalServerError},
		{fmt.Errorf("op: %w", common.NotFound("x")), http.StatusNotFound},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, Status(c.err), c.err.Error())
	}
}

func TestFail_KnownKind(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	Fail(slog.Default(), rr, req, "test", fmt.Errorf("storage.Get: %w", common.NotFound("Aeronave não encontrada")))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	var resp ErrorResponse
	require.NoError(t, render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp))
	assert.Equal(t, "Aeronave não encontrada", resp.Error)
}

func TestFail_HidesInternalDetails(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	Fail(slog.Default(), rr, req, "test", errors.New("open /data/aeronaves.json: permission denied"))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Body.String(), "permission denied")
	assert.Contains(t, rr.Body.String(), "Erro interno do servidor")
}
