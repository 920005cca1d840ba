package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/darkkaiser/catalog-server/internal/service/api/v1/model/response"
	"github.com/darkkaiser/catalog-server/internal/service/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetBannerHandler(t *testing.T) {
	t.Parallel()

	f := newTestFixture(t)

	c, rec := newJSONContext(http.MethodGet, "/api/v1/banner", "")
	require.NoError(t, f.handler.GetBannerHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp response.BannerResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, catalog.DefaultBannerURL, resp.ImageURL)
}

func TestReplaceBannerHandler(t *testing.T) {
	t.Parallel()

	t.Run("성공: 원격 URL로 배너 교체", func(t *testing.T) {
		t.Parallel()

		f := newTestFixture(t)

		c, rec := newJSONContext(http.MethodPut, "/api/v1/banner", `{"image_url": "https://example.com/new-banner.jpg"}`)
		require.NoError(t, f.handler.ReplaceBannerHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp response.BannerResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "https://example.com/new-banner.jpg", resp.ImageURL)
		assert.Equal(t, "https://example.com/new-banner.jpg", f.catalog.BannerURL())

		// 배너 교체 알림 발송 확인
		require.Len(t, f.notifier.messages, 1)
		assert.Contains(t, f.notifier.messages[0], "배너 이미지가 교체")
	})

	t.Run("성공: 이미지 data URI로 배너 교체", func(t *testing.T) {
		t.Parallel()

		f := newTestFixture(t)

		c, rec := newJSONContext(http.MethodPut, "/api/v1/banner", `{"image_url": "data:image/png;base64,iVBORw0KGgo="}`)
		require.NoError(t, f.handler.ReplaceBannerHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("실패: 허용되지 않는 형식의 URL은 400", func(t *testing.T) {
		t.Parallel()

		f := newTestFixture(t)

		c, _ := newJSONContext(http.MethodPut, "/api/v1/banner", `{"image_url": "ftp://example.com/banner.jpg"}`)
		assertHTTPError(t, f.handler.ReplaceBannerHandler(c), http.StatusBadRequest)

		// 실패 시 기존 배너 유지
		assert.Equal(t, catalog.DefaultBannerURL, f.catalog.BannerURL())
	})

	t.Run("실패: 배너 URL 누락 시 400", func(t *testing.T) {
		t.Parallel()

		f := newTestFixture(t)

		c, _ := newJSONContext(http.MethodPut, "/api/v1/banner", `{}`)
		assertHTTPError(t, f.handler.ReplaceBannerHandler(c), http.StatusBadRequest)
	})
}
