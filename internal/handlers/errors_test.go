package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/family_finance_tracker/internal/apperrors"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
		wantFields map[string]string
	}{
		{"field errors", apperrors.FieldErrors{"name": "has already been taken"}, http.StatusBadRequest, "Validation failed", map[string]string{"name": "has already been taken"}},
		{"wrapped field errors", fmt.Errorf("create: %w", apperrors.NewFieldError("payee", "is required")), http.StatusBadRequest, "Validation failed", map[string]string{"payee": "is required"}},
		{"validation sentinel", fmt.Errorf("%w: bad month", apperrors.ErrValidation), http.StatusBadRequest, "validation error: bad month", nil},
		{"unauthorized", apperrors.ErrUnauthorized, http.StatusUnauthorized, "Unauthorized", nil},
		{"forbidden", fmt.Errorf("update account: %w", apperrors.ErrForbidden), http.StatusForbidden, "Forbidden", nil},
		{"not found", apperrors.ErrNotFound, http.StatusNotFound, "Not found", nil},
		{"duplicate", apperrors.ErrDuplicate, http.StatusConflict, "Resource already exists", nil},
		{"client app error", apperrors.NewConflictError("team name in use"), http.StatusConflict, "team name in use", nil},
		{"server app error hidden", apperrors.NewAppError(http.StatusInternalServerError, "failed to begin transaction", errors.New("dial tcp")), http.StatusInternalServerError, "boom", nil},
		{"unknown", errors.New("disk on fire"), http.StatusInternalServerError, "boom", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			respondWithError(c, tt.err, "boom")

			assert.Equal(t, tt.wantStatus, w.Code)
			var res ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
			assert.Equal(t, tt.wantError, res.Error)
			assert.Equal(t, tt.wantFields, res.Fields)
		})
	}
}

func TestLowerFirst(t *testing.T) {
	assert.Equal(t, "accountID", lowerFirst("AccountID"))
	assert.Equal(t, "", lowerFirst(""))
}
