package auth

import (
	apperrors "github.com/darkkaiser/catalog-server/internal/pkg/errors"
)

var (
	// ErrPasswordMismatch 입력된 비밀번호가 설정된 관리자 비밀번호와 일치하지 않을 때 반환하는 에러입니다.
	ErrPasswordMismatch = apperrors.New(apperrors.Unauthorized, "관리자 비밀번호가 일치하지 않습니다")

	// ErrInvalidToken 세션 토큰이 존재하지 않거나 만료되었을 때 반환하는 에러입니다.
	ErrInvalidToken = apperrors.New(apperrors.Unauthorized, "유효하지 않거나 만료된 관리자 세션입니다")
)

// ErrTokenGenerationFailed 시스템 난수 생성기 오류로 세션 토큰 발급에 실패했을 때 반환하는 에러를 생성합니다.
func ErrTokenGenerationFailed(cause error) error {
	return apperrors.Wrap(cause, apperrors.System, "세션 토큰 생성에 실패하였습니다")
}
