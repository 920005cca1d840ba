package auth

import (
	"github.com/darkkaiser/catalog-server/internal/service/api/constants"
	"github.com/labstack/echo/v4"
)

// SetAdminToken 인증된 관리자 세션 토큰을 Context에 저장합니다.
func SetAdminToken(c echo.Context, token string) {
	c.Set(constants.ContextKeyAdminToken, token)
}

// GetAdminToken Context에서 인증된 관리자 세션 토큰을 조회합니다.
// 인증 미들웨어를 통과하지 않은 요청에서는 빈 문자열을 반환합니다.
func GetAdminToken(c echo.Context) string {
	val := c.Get(constants.ContextKeyAdminToken)
	if val == nil {
		return ""
	}

	token, ok := val.(string)
	if !ok {
		return ""
	}

	return token
}
