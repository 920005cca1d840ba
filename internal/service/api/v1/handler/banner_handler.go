package handler

import (
	"net/http"

	"github.com/darkkaiser/catalog-server/internal/service/api/httputil"
	"github.com/darkkaiser/catalog-server/internal/service/api/v1/model/request"
	"github.com/darkkaiser/catalog-server/internal/service/api/v1/model/response"
	"github.com/labstack/echo/v4"
)

// GetBannerHandler 현재 배너 이미지를 반환합니다.
func (h *Handler) GetBannerHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, response.BannerResponse{
		ImageURL: h.catalog.BannerURL(),
	})
}

// ReplaceBannerHandler 배너 이미지를 교체합니다. (관리자 전용)
//
// 원격 URL 또는 data URI 형식만 허용되며,
// 형식이 올바르지 않으면 400 Bad Request를 반환합니다.
func (h *Handler) ReplaceBannerHandler(c echo.Context) error {
	// 1. 요청 바인딩
	req := new(request.BannerRequest)
	if err := c.Bind(req); err != nil {
		return NewErrInvalidBody()
	}

	// 2. 입력 검증
	if err := validateRequest(req); err != nil {
		return NewErrValidationFailed(formatValidationError(err))
	}

	// 3. 배너 교체 (URL/data URI 형식 검증 포함)
	if err := h.catalog.ReplaceBanner(req.ImageURL); err != nil {
		return httputil.FromAppError(err)
	}

	h.log(c).Info("배너 이미지 교체됨")

	return c.JSON(http.StatusOK, response.BannerResponse{
		ImageURL: h.catalog.BannerURL(),
	})
}
