package handler

import (
	"github.com/darkkaiser/catalog-server/internal/service/api/constants"
	"github.com/darkkaiser/catalog-server/internal/service/api/httputil"
)

// NewErrInvalidBody 요청 본문(Body)의 데이터 형식이 올바르지 않거나(예: 잘못된 JSON), 파싱에 실패했을 때 발생하는 에러를 생성합니다.
func NewErrInvalidBody() error {
	return httputil.NewBadRequestError(constants.ErrMsgBadRequestInvalidBody)
}

// NewErrValidationFailed 요청 데이터의 필수 값 누락, 형식 위반 등 유효성 검증(Validation)에 실패했을 때 발생하는 에러를 생성합니다.
func NewErrValidationFailed(msg string) error {
	return httputil.NewBadRequestError(msg)
}

// NewErrInvalidProductID 경로 파라미터의 상품 ID가 정수 형식이 아닐 때 발생하는 에러를 생성합니다.
func NewErrInvalidProductID() error {
	return httputil.NewBadRequestError(constants.ErrMsgBadRequestInvalidID)
}
