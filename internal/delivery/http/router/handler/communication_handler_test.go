package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"autopilot/internal/delivery/http/validator"
	"autopilot/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCommunicationUsecase records the limit it was called with.
type stubCommunicationUsecase struct {
	called    bool
	gotLimit  int
	responded usecase.Communications
}

func (s *stubCommunicationUsecase) GetCommunications(_ context.Context, _ string, callLimit int) *usecase.Communications {
	s.called = true
	s.gotLimit = callLimit

	return &s.responded
}

func newCommunicationsContext(t *testing.T, target string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestCommunicationHandler_List_DefaultLimit(t *testing.T) {
	uc := &stubCommunicationUsecase{}
	h := NewCommunicationHandler(uc)
	c, rec := newCommunicationsContext(t, "/communications")

	require.NoError(t, h.List(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, uc.called)
	assert.Zero(t, uc.gotLimit, "no limit parameter means the configured default")
}

func TestCommunicationHandler_List_ExplicitLimit(t *testing.T) {
	uc := &stubCommunicationUsecase{}
	h := NewCommunicationHandler(uc)
	c, rec := newCommunicationsContext(t, "/communications?limit=5")

	require.NoError(t, h.List(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 5, uc.gotLimit)
}

func TestCommunicationHandler_List_InvalidLimitRejected(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{name: "negative", target: "/communications?limit=-1"},
		{name: "too large", target: "/communications?limit=500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &stubCommunicationUsecase{}
			h := NewCommunicationHandler(uc)
			c, rec := newCommunicationsContext(t, tt.target)

			require.NoError(t, h.List(c))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
			assert.False(t, uc.called, "an invalid limit must not reach the usecase")
		})
	}
}

func TestCommunicationHandler_List_MalformedLimitRejected(t *testing.T) {
	uc := &stubCommunicationUsecase{}
	h := NewCommunicationHandler(uc)
	c, rec := newCommunicationsContext(t, "/communications?limit=abc")

	require.NoError(t, h.List(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
	assert.False(t, uc.called)
}
