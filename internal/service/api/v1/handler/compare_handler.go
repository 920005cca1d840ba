package handler

import (
	"net/http"

	"github.com/darkkaiser/catalog-server/internal/service/api/httputil"
	"github.com/darkkaiser/catalog-server/internal/service/api/v1/model/request"
	"github.com/darkkaiser/catalog-server/internal/service/api/v1/model/response"
	"github.com/labstack/echo/v4"
)

// GetCompareHandler 비교 목록의 현재 상태를 반환합니다.
func (h *Handler) GetCompareHandler(c echo.Context) error {
	state := h.catalog.CompareStateSnapshot()

	return c.JSON(http.StatusOK, response.CompareResponse{
		IDs:      state.IDs,
		Products: state.Products,
		ViewOpen: state.ViewOpen,
	})
}

// ToggleCompareHandler 상품을 비교 목록에 추가하거나 제거합니다.
//
// 이미 선택된 상품이면 제거하고, 선택되지 않은 상품이면 추가합니다.
// 비교 목록이 가득 찬 상태(2개)에서 새 상품을 추가하려고 하면
// 409 Conflict를 반환하며 목록은 변경되지 않습니다.
// 두 번째 상품이 추가되는 순간에만 view_opened가 true로 설정됩니다.
func (h *Handler) ToggleCompareHandler(c echo.Context) error {
	// 1. 요청 바인딩
	req := new(request.ToggleCompareRequest)
	if err := c.Bind(req); err != nil {
		return NewErrInvalidBody()
	}

	// 2. 입력 검증
	if err := validateRequest(req); err != nil {
		return NewErrValidationFailed(formatValidationError(err))
	}

	// 3. 토글 수행 (정원 초과 시 Conflict)
	result, err := h.catalog.ToggleCompare(req.ProductID)
	if err != nil {
		return httputil.FromAppError(err)
	}

	// 4. 토글 이후의 전체 상태 반환
	state := h.catalog.CompareStateSnapshot()

	return c.JSON(http.StatusOK, response.CompareResponse{
		IDs:        state.IDs,
		Products:   state.Products,
		ViewOpen:   state.ViewOpen,
		ViewOpened: result.ViewOpened,
		Selected:   result.Selected,
	})
}

// RemoveCompareHandler 상품을 비교 목록에서 무조건 제거합니다.
// 목록에 없는 상품이어도 에러 없이 처리됩니다.
func (h *Handler) RemoveCompareHandler(c echo.Context) error {
	id, err := parseProductID(c)
	if err != nil {
		return err
	}

	h.catalog.RemoveCompare(id)

	state := h.catalog.CompareStateSnapshot()

	return c.JSON(http.StatusOK, response.CompareResponse{
		IDs:      state.IDs,
		Products: state.Products,
		ViewOpen: state.ViewOpen,
	})
}

// CloseCompareHandler 비교 화면을 닫습니다. 선택된 상품 목록은 유지됩니다.
func (h *Handler) CloseCompareHandler(c echo.Context) error {
	h.catalog.CloseCompareView()

	state := h.catalog.CompareStateSnapshot()

	return c.JSON(http.StatusOK, response.CompareResponse{
		IDs:      state.IDs,
		Products: state.Products,
		ViewOpen: state.ViewOpen,
	})
}
