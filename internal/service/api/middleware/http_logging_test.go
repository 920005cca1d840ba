package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPLogger(t *testing.T) {
	t.Parallel()

	t.Run("성공: 다음 핸들러가 정상 실행됨", func(t *testing.T) {
		t.Parallel()

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		called := false
		next := func(c echo.Context) error {
			called = true
			return c.NoContent(http.StatusOK)
		}

		require.NoError(t, HTTPLogger()(next)(c))
		assert.True(t, called)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("성공: 핸들러 에러는 에러 핸들러로 전달되고 nil을 반환", func(t *testing.T) {
		t.Parallel()

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		next := func(c echo.Context) error {
			return echo.NewHTTPError(http.StatusNotFound, "Not Found")
		}

		require.NoError(t, HTTPLogger()(next)(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestMaskSensitiveQueryParams(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{
			name:     "admin_token 파라미터 마스킹",
			uri:      "/api/v1/products?admin_token=secret123",
			expected: "/api/v1/products?admin_token=secr***",
		},
		{
			name:     "password 파라미터 마스킹",
			uri:      "/api/v1/admin/login?password=hunter2456",
			expected: "/api/v1/admin/login?password=hunt***",
		},
		{
			name:     "민감하지 않은 파라미터는 그대로 유지",
			uri:      "/api/v1/products?category=phone&page=2",
			expected: "/api/v1/products?category=phone&page=2",
		},
		{
			name:     "쿼리 파라미터가 없으면 원본 반환",
			uri:      "/api/v1/products",
			expected: "/api/v1/products",
		},
		{
			name:     "민감 파라미터와 일반 파라미터 혼합",
			uri:      "/api/v1/products?admin_token=secret123&page=1",
			expected: "/api/v1/products?admin_token=secr***&page=1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, maskSensitiveQueryParams(tt.uri))
		})
	}
}
