package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/mia/data-service/internal/interfaces/http/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type createProbe struct {
	Name  string `json:"name" binding:"required,max=5"`
	Count int    `json:"count" binding:"min=1"`
}

func validationRouter() *gin.Engine {
	SetupValidator()
	router := gin.New()
	router.Use(RequestID())
	router.POST("/test", func(c *gin.Context) {
		var req createProbe
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleValidationError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.NewSuccessResponse(req))
	})
	return router
}

func postJSON(t *testing.T, router *gin.Engine, body string) (*httptest.ResponseRecorder, dto.Response) {
	t.Helper()
	req := httptest.NewRequest("POST", "/test", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(RequestIDHeader, "req-v")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestSetupValidator(t *testing.T) {
	SetupValidator()

	v, ok := binding.Validator.Engine().(*validator.Validate)
	assert.True(t, ok)
	assert.NotNil(t, v)
}

func TestHandleValidationError(t *testing.T) {
	router := validationRouter()

	t.Run("field details use json names", func(t *testing.T) {
		w, resp := postJSON(t, router, `{"name": "toolongname", "count": 0}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)
		assert.Equal(t, "req-v", resp.Error.RequestID)
		assert.ElementsMatch(t, []dto.ValidationDetail{
			{Field: "name", Message: "Must be at most 5 characters"},
			{Field: "count", Message: "Must be at least 1"},
		}, resp.Error.Details)
	})

	t.Run("missing required field", func(t *testing.T) {
		_, resp := postJSON(t, router, `{"count": 2}`)

		require.Len(t, resp.Error.Details, 1)
		assert.Equal(t, dto.ValidationDetail{Field: "name", Message: "This field is required"}, resp.Error.Details[0])
	})

	t.Run("malformed json", func(t *testing.T) {
		w, resp := postJSON(t, router, `{"name": `)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, dto.ErrCodeInvalidJSON, resp.Error.Code)
		assert.Empty(t, resp.Error.Details)
	})

	t.Run("empty body", func(t *testing.T) {
		_, resp := postJSON(t, router, ``)

		assert.Equal(t, dto.ErrCodeInvalidJSON, resp.Error.Code)
	})

	t.Run("wrong json type", func(t *testing.T) {
		_, resp := postJSON(t, router, `{"name": "ok", "count": "three"}`)

		assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)
		require.Len(t, resp.Error.Details, 1)
		assert.Equal(t, "count", resp.Error.Details[0].Field)
	})

	t.Run("valid body passes", func(t *testing.T) {
		w, resp := postJSON(t, router, `{"name": "ok", "count": 3}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, resp.Success)
	})
}
