package handlers

import (
	"Storefront/apperr"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRespondErrorStatuses(t *testing.T) {
	cases := []struct {
		err     error
		status  int
		message string
	}{
		{apperr.ErrEmailTaken, http.StatusUnprocessableEntity, "Email address already taken"},
		{apperr.ErrInvalidCredentials, http.StatusForbidden, "Invalid email/password"},
		{apperr.ErrUserNotFound, http.StatusNotFound, "User not found"},
		{apperr.Validation("Cart is empty"), http.StatusBadRequest, "Cart is empty"},
		{apperr.Internal(errors.New("dial tcp 10.0.0.1:3306: refused")), http.StatusInternalServerError, "Internal server error"},
		{errors.New("raw"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

		respondError(c, tc.err)

		require.Equal(t, tc.status, w.Code)
		require.JSONEq(t, `{"message":"`+tc.message+`","status":"fail"}`, w.Body.String())
		require.NotContains(t, w.Body.String(), "3306")
	}
}

func TestParamID(t *testing.T) {
	for _, raw := range []string{"abc", "0", "-1", ""} {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "orderID", Value: raw}}

		_, ok := paramID(c, "orderID")
		require.False(t, ok)
		require.Equal(t, http.StatusBadRequest, w.Code)
	}

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Params = gin.Params{{Key: "orderID", Value: "42"}}
	id, ok := paramID(c, "orderID")
	require.True(t, ok)
	require.Equal(t, uint(42), id)
}
