package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/darkkaiser/catalog-server/internal/service/api/v1/model/response"
	"github.com/darkkaiser/catalog-server/internal/service/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func toggleBody(id int64) string {
	return fmt.Sprintf(`{"product_id": %d}`, id)
}

func TestGetCompareHandler(t *testing.T) {
	t.Parallel()

	t.Run("성공: 초기 상태는 빈 목록과 닫힌 화면", func(t *testing.T) {
		t.Parallel()

		f := newTestFixture(t)

		c, rec := newJSONContext(http.MethodGet, "/api/v1/compare", "")
		require.NoError(t, f.handler.GetCompareHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp response.CompareResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Empty(t, resp.IDs)
		assert.Empty(t, resp.Products)
		assert.False(t, resp.ViewOpen)
	})

	t.Run("성공: 선택된 상품이 ID와 함께 해석되어 반환됨", func(t *testing.T) {
		t.Parallel()

		f := newTestFixture(t)
		p := f.addProduct(t, "iPhone 13", 15_000_000, catalog.CategoryPhone)

		_, err := f.catalog.ToggleCompare(p.ID)
		require.NoError(t, err)

		c, rec := newJSONContext(http.MethodGet, "/api/v1/compare", "")
		require.NoError(t, f.handler.GetCompareHandler(c))

		var resp response.CompareResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.IDs, 1)
		assert.Equal(t, p.ID, resp.IDs[0])
		require.Len(t, resp.Products, 1)
		assert.Equal(t, p.Name, resp.Products[0].Name)
	})
}

func TestToggleCompareHandler(t *testing.T) {
	t.Parallel()

	t.Run("성공: 첫 번째 상품 추가 시 화면은 열리지 않음", func(t *testing.T) {
		t.Parallel()

		f := newTestFixture(t)
		p := f.addProduct(t, "iPhone 13", 15_000_000, catalog.CategoryPhone)

		c, rec := newJSONContext(http.MethodPost, "/api/v1/compare/toggle", toggleBody(p.ID))
		require.NoError(t, f.handler.ToggleCompareHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp response.CompareResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, []int64{p.ID}, resp.IDs)
		assert.True(t, resp.Selected)
		assert.False(t, resp.ViewOpened)
		assert.False(t, resp.ViewOpen)
	})

	t.Run("성공: 두 번째 상품 추가 시에만 화면이 새로 열림", func(t *testing.T) {
		t.Parallel()

		f := newTestFixture(t)
		first := f.addProduct(t, "iPhone 13", 15_000_000, catalog.CategoryPhone)
		second := f.addProduct(t, "Galaxy S21", 9_000_000, catalog.CategoryPhone)

		_, err := f.catalog.ToggleCompare(first.ID)
		require.NoError(t, err)

		c, rec := newJSONContext(http.MethodPost, "/api/v1/compare/toggle", toggleBody(second.ID))
		require.NoError(t, f.handler.ToggleCompareHandler(c))

		var resp response.CompareResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, []int64{first.ID, second.ID}, resp.IDs)
		assert.True(t, resp.ViewOpened)
		assert.True(t, resp.ViewOpen)
		require.Len(t, resp.Products, 2)
	})

	t.Run("성공: 이미 선택된 상품은 토글 시 제거됨", func(t *testing.T) {
		t.Parallel()

		f := newTestFixture(t)
		p := f.addProduct(t, "iPhone 13", 15_000_000, catalog.CategoryPhone)

		_, err := f.catalog.ToggleCompare(p.ID)
		require.NoError(t, err)

		c, rec := newJSONContext(http.MethodPost, "/api/v1/compare/toggle", toggleBody(p.ID))
		require.NoError(t, f.handler.ToggleCompareHandler(c))

		var resp response.CompareResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Empty(t, resp.IDs)
		assert.False(t, resp.Selected)
	})

	t.Run("실패: 목록이 가득 찬 상태에서 새 상품 추가 시 409", func(t *testing.T) {
		t.Parallel()

		f := newTestFixture(t)
		first := f.addProduct(t, "iPhone 13", 15_000_000, catalog.CategoryPhone)
		second := f.addProduct(t, "Galaxy S21", 9_000_000, catalog.CategoryPhone)
		third := f.addProduct(t, "Pixel 6", 8_000_000, catalog.CategoryPhone)

		_, err := f.catalog.ToggleCompare(first.ID)
		require.NoError(t, err)
		_, err = f.catalog.ToggleCompare(second.ID)
		require.NoError(t, err)

		c, _ := newJSONContext(http.MethodPost, "/api/v1/compare/toggle", toggleBody(third.ID))
		assertHTTPError(t, f.handler.ToggleCompareHandler(c), http.StatusConflict)

		// 실패한 토글은 목록을 변경하지 않음
		assert.Equal(t, []int64{first.ID, second.ID}, f.catalog.CompareStateSnapshot().IDs)
	})

	t.Run("실패: 존재하지 않는 상품은 404", func(t *testing.T) {
		t.Parallel()

		f := newTestFixture(t)

		c, _ := newJSONContext(http.MethodPost, "/api/v1/compare/toggle", toggleBody(999))
		assertHTTPError(t, f.handler.ToggleCompareHandler(c), http.StatusNotFound)
	})

	t.Run("실패: 상품 ID 누락 시 400", func(t *testing.T) {
		t.Parallel()

		f := newTestFixture(t)

		c, _ := newJSONContext(http.MethodPost, "/api/v1/compare/toggle", `{}`)
		assertHTTPError(t, f.handler.ToggleCompareHandler(c), http.StatusBadRequest)
	})
}

func TestRemoveCompareHandler(t *testing.T) {
	t.Parallel()

	t.Run("성공: 선택된 상품 제거", func(t *testing.T) {
		t.Parallel()

		f := newTestFixture(t)
		p := f.addProduct(t, "iPhone 13", 15_000_000, catalog.CategoryPhone)

		_, err := f.catalog.ToggleCompare(p.ID)
		require.NoError(t, err)

		c, rec := newJSONContext(http.MethodDelete, "/api/v1/compare/"+fmt.Sprint(p.ID), "")
		c.SetParamNames("id")
		c.SetParamValues(fmt.Sprint(p.ID))

		require.NoError(t, f.handler.RemoveCompareHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp response.CompareResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Empty(t, resp.IDs)
	})

	t.Run("성공: 목록에 없는 상품이어도 에러 없이 처리", func(t *testing.T) {
		t.Parallel()

		f := newTestFixture(t)

		c, rec := newJSONContext(http.MethodDelete, "/api/v1/compare/999", "")
		c.SetParamNames("id")
		c.SetParamValues("999")

		require.NoError(t, f.handler.RemoveCompareHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestCloseCompareHandler(t *testing.T) {
	t.Parallel()

	t.Run("성공: 화면은 닫히고 선택 목록은 유지됨", func(t *testing.T) {
		t.Parallel()

		f := newTestFixture(t)
		first := f.addProduct(t, "iPhone 13", 15_000_000, catalog.CategoryPhone)
		second := f.addProduct(t, "Galaxy S21", 9_000_000, catalog.CategoryPhone)

		_, err := f.catalog.ToggleCompare(first.ID)
		require.NoError(t, err)
		_, err = f.catalog.ToggleCompare(second.ID)
		require.NoError(t, err)

		c, rec := newJSONContext(http.MethodPost, "/api/v1/compare/close", "")
		require.NoError(t, f.handler.CloseCompareHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp response.CompareResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.False(t, resp.ViewOpen)
		assert.Equal(t, []int64{first.ID, second.ID}, resp.IDs)
	})
}
