package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nihatdadaloglu/oda/internal/apperror"
	"github.com/nihatdadaloglu/oda/internal/constants"
	"github.com/nihatdadaloglu/oda/pkg/logger"
)

func render(err error) (*httptest.ResponseRecorder, map[string]interface{}) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/x", nil)
	Error(c, logger.NewNop(), err)

	var body map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestError_Mapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{apperror.ErrInvalidCredentials, http.StatusUnauthorized},
		{apperror.ErrInsufficientRole, http.StatusForbidden},
		{fmt.Errorf("wrapped: %w", apperror.ErrTooLarge), http.StatusBadRequest},
		{apperror.NotFound(constants.ErrDocumentNotFound), http.StatusNotFound},
	}
	for _, tc := range cases {
		w, body := render(tc.err)
		assert.Equal(t, tc.status, w.Code, tc.err.Error())
		assert.Equal(t, float64(tc.status), body["code"])
	}
}

func TestError_HidesInfrastructureDetail(t *testing.T) {
	w, body := render(errors.New("dial tcp 10.0.0.5:3306: connection refused"))
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, constants.ErrInternalServer, body["msg"])
	assert.NotContains(t, w.Body.String(), "3306")
}
