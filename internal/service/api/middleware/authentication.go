package middleware

import (
	"github.com/darkkaiser/catalog-server/internal/service/api/auth"
	"github.com/darkkaiser/catalog-server/internal/service/api/constants"
	"github.com/darkkaiser/catalog-server/internal/service/api/httputil"
	applog "github.com/darkkaiser/catalog-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// RequireAdmin 관리자 세션 인증을 수행하는 미들웨어를 반환합니다.
//
// 처리 과정:
//  1. 세션 토큰 추출 (X-Admin-Token 헤더 우선, admin_token 쿼리 파라미터 폴백)
//  2. Gate를 통한 토큰 검증 (존재 여부, 만료 여부)
//  3. 인증된 토큰을 Context에 저장
//
// 토큰 추출 우선순위:
//  1. X-Admin-Token 헤더 (권장)
//  2. admin_token 쿼리 파라미터 (레거시) - 사용 시 경고 로그 출력
//
// 인증 실패 시:
//   - 401 Unauthorized: 토큰 누락, 미등록 토큰, 만료된 세션
//
// 사용 예시:
//
//	adminMiddleware := middleware.RequireAdmin(gate)
//	e.POST("/api/v1/products", handler, adminMiddleware)
//
// Panics:
//   - gate가 nil인 경우
func RequireAdmin(gate *auth.Gate) echo.MiddlewareFunc {
	if gate == nil {
		panic(constants.PanicMsgAdminGateRequired)
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// 1. 세션 토큰 추출
			token := extractAdminToken(c)
			if token == "" {
				return ErrAdminTokenRequired
			}

			// 2. 토큰 검증
			if err := gate.Verify(token); err != nil {
				applog.WithComponentAndFields(constants.ComponentMiddlewareAuthentication, applog.Fields{
					"method":    c.Request().Method,
					"path":      c.Path(),
					"remote_ip": c.RealIP(),
				}).Warn("유효하지 않은 관리자 세션 토큰으로 접근 시도")

				return httputil.NewUnauthorizedError(constants.ErrMsgAuthInvalidToken)
			}

			// 3. Context에 인증된 토큰 저장
			auth.SetAdminToken(c, token)

			// 4. 다음 핸들러로 전달
			return next(c)
		}
	}
}

// extractAdminToken 관리자 세션 토큰을 추출합니다.
//
// 우선순위:
//  1. X-Admin-Token 헤더 (권장)
//  2. admin_token 쿼리 파라미터 (레거시) - 사용 시 경고 로그 출력
func extractAdminToken(c echo.Context) string {
	token := c.Request().Header.Get(constants.HeaderAdminToken)
	if token == "" {
		token = c.QueryParam(constants.QueryParamAdminToken)

		// 레거시 방식 사용 시 경고 로그
		if token != "" {
			applog.WithComponentAndFields(constants.ComponentMiddlewareAuthentication, applog.Fields{
				"method":    c.Request().Method,
				"path":      c.Path(),
				"remote_ip": c.RealIP(),
			}).Warn("보안 경고: 쿼리 파라미터로 관리자 세션 토큰 전달됨 (헤더 사용 권장)")
		}
	}
	return token
}
