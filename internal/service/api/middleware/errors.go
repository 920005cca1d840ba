package middleware

import (
	"net/http"

	"github.com/darkkaiser/catalog-server/internal/service/api/constants"
	"github.com/darkkaiser/catalog-server/internal/service/api/httputil"
	"github.com/labstack/echo/v4"
)

var (
	// ErrAdminTokenRequired 관리자 인증에 필요한 세션 토큰이 요청에 포함되지 않았을 때 반환하는 에러입니다.
	// X-Admin-Token 헤더를 통해 전달되어야 합니다.
	ErrAdminTokenRequired = httputil.NewUnauthorizedError(constants.ErrMsgAuthTokenRequired)

	// ErrRateLimitExceeded 허용된 요청 빈도를 초과한 클라이언트에게 반환할 표준 HTTP 429(Too Many Requests) 에러입니다.
	ErrRateLimitExceeded = httputil.NewTooManyRequestsError(constants.ErrMsgTooManyRequests)

	// ErrUnsupportedMediaType 클라이언트가 요청한 Content-Type을 서버가 지원하지 않을 때 반환할 표준 HTTP 415(Unsupported Media Type) 에러입니다.
	ErrUnsupportedMediaType = echo.NewHTTPError(http.StatusUnsupportedMediaType, constants.ErrMsgUnsupportedMediaType)
)
