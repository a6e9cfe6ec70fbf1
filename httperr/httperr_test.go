package httperr

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jxsus-1/api-supermarket/storage"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func respond(err error) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	Respond(c, zap.NewNop(), err)
	return w
}

func TestRespondStatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{ErrValidation, http.StatusBadRequest},
		{ErrNotFound, http.StatusNotFound},
		{ErrUnauthenticated, http.StatusUnauthorized},
		{ErrInvalidToken, http.StatusUnauthorized},
		{ErrForbidden, http.StatusForbidden},
		{ErrUpstream, http.StatusInternalServerError},
		{storage.ErrNotFound, http.StatusNotFound},
		{storage.ErrInvalidID, http.StatusBadRequest},
		{errors.New("anything else"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if w := respond(tc.err); w.Code != tc.want {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.want, w.Code)
		}
	}
}

func TestRespondWrappedKindIsMatched(t *testing.T) {
	err := fmt.Errorf("outer context: %w", storage.ErrNotFound)
	if w := respond(err); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for wrapped not-found, got %d", w.Code)
	}
}

func TestRespondPublicMessage(t *testing.T) {
	err := New(ErrNotFound, "La categoría no existe.", errors.New("lookup miss"))
	w := respond(err)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "La categoría no existe.") {
		t.Fatalf("public message missing from body: %s", w.Body.String())
	}
	if strings.Contains(w.Body.String(), "lookup miss") {
		t.Fatalf("internal cause leaked: %s", w.Body.String())
	}
}

func TestRespondDoesNotLeakCause(t *testing.T) {
	err := fmt.Errorf("dial tcp 10.0.0.5: connection refused: %w", ErrUpstream)
	w := respond(err)
	if strings.Contains(w.Body.String(), "10.0.0.5") {
		t.Fatalf("internal detail leaked: %s", w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "upstream service failure") {
		t.Fatalf("expected generic upstream message, got %s", w.Body.String())
	}
}
