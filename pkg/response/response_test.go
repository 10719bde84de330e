package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestSuccessAndError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	Success(c, gin.H{"rows": 3})

	var ok Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ok))
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 0, ok.Code)
	require.Empty(t, ok.Error)

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	BadRequest(c, "Invalid filter value", errors.New("year 1999"))

	var bad Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bad))
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, http.StatusBadRequest, bad.Code)
	require.Equal(t, "year 1999", bad.Error)
	require.Len(t, c.Errors, 1)
}
