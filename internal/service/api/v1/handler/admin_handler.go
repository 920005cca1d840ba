package handler

import (
	"net/http"

	"github.com/darkkaiser/catalog-server/internal/service/api/auth"
	"github.com/darkkaiser/catalog-server/internal/service/api/constants"
	"github.com/darkkaiser/catalog-server/internal/service/api/httputil"
	"github.com/darkkaiser/catalog-server/internal/service/api/v1/model/request"
	"github.com/darkkaiser/catalog-server/internal/service/api/v1/model/response"
	"github.com/labstack/echo/v4"
)

// LoginHandler 관리자 비밀번호를 검증하고 새 세션 토큰을 발급합니다.
//
// 비밀번호가 일치하지 않으면 401 Unauthorized를 반환하며,
// 호출자는 게스트 상태를 유지합니다.
func (h *Handler) LoginHandler(c echo.Context) error {
	// 1. 요청 바인딩
	req := new(request.LoginRequest)
	if err := c.Bind(req); err != nil {
		return NewErrInvalidBody()
	}

	// 2. 입력 검증
	if err := validateRequest(req); err != nil {
		return NewErrValidationFailed(formatValidationError(err))
	}

	// 3. 비밀번호 검증 및 세션 발급
	token, err := h.gate.Login(req.Password)
	if err != nil {
		h.log(c).WithField("remote_ip", c.RealIP()).Warn("관리자 로그인 실패 (비밀번호 불일치)")

		return httputil.NewUnauthorizedError(constants.NoticeAdminLoginFailed)
	}

	h.log(c).WithField("remote_ip", c.RealIP()).Info("관리자 로그인 성공")

	// 4. 관리자 로그인 이벤트 알림
	h.notify(c, "관리자 모드가 활성화되었습니다.")

	return c.JSON(http.StatusOK, response.LoginResponse{
		Token:  token,
		Notice: constants.NoticeAdminLoginSucceeded,
	})
}

// LogoutHandler 현재 관리자 세션을 무조건 폐기합니다. (관리자 전용)
func (h *Handler) LogoutHandler(c echo.Context) error {
	token := auth.GetAdminToken(c)

	h.gate.Logout(token)

	h.log(c).WithField("remote_ip", c.RealIP()).Info("관리자 로그아웃")

	// 관리자 로그아웃 이벤트 알림
	h.notify(c, "관리자 모드가 종료되었습니다.")

	return c.JSON(http.StatusOK, response.LogoutResponse{
		Notice: constants.NoticeAdminLoggedOut,
	})
}
