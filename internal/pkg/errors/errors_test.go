package errors

import (
	stderrors "errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(NotFound, "상품을 찾을 수 없습니다")

	require.Error(t, err)
	assert.Equal(t, "[NotFound] 상품을 찾을 수 없습니다", err.Error())

	var appErr *AppError
	require.True(t, As(err, &appErr))
	assert.Equal(t, NotFound, appErr.Type())
	assert.Equal(t, "상품을 찾을 수 없습니다", appErr.Message())
	assert.NotEmpty(t, appErr.Stack(), "생성 시점의 스택 정보가 수집되어야 함")
}

func TestNewf(t *testing.T) {
	err := Newf(NotFound, "상품을 찾을 수 없습니다 (id:%d)", 123)

	require.Error(t, err)
	assert.Equal(t, "[NotFound] 상품을 찾을 수 없습니다 (id:123)", err.Error())
}

func TestWrap(t *testing.T) {
	t.Run("외부 에러 래핑", func(t *testing.T) {
		cause := os.ErrNotExist
		err := Wrap(cause, System, "초기 상품 목록 파일을 열 수 없습니다")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "[System]")
		assert.Contains(t, err.Error(), "초기 상품 목록 파일을 열 수 없습니다")
		assert.ErrorIs(t, err, os.ErrNotExist, "표준 errors.Is로 원인 에러를 찾을 수 있어야 함")
	})

	t.Run("nil 에러 래핑 시 nil 반환", func(t *testing.T) {
		assert.NoError(t, Wrap(nil, System, "무시됨"))
		assert.NoError(t, Wrapf(nil, System, "무시됨 %d", 1))
	})
}

func TestIs(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		errType ErrorType
		want    bool
	}{
		{
			name:    "단일 에러의 타입 일치",
			err:     New(InvalidInput, "상품명은 필수입니다"),
			errType: InvalidInput,
			want:    true,
		},
		{
			name:    "단일 에러의 타입 불일치",
			err:     New(InvalidInput, "상품명은 필수입니다"),
			errType: NotFound,
			want:    false,
		},
		{
			name:    "체인 안쪽의 타입 탐지",
			err:     Wrap(New(NotFound, "상품 없음"), Internal, "상품 수정 실패"),
			errType: NotFound,
			want:    true,
		},
		{
			name:    "표준 에러는 어떤 타입도 아님",
			err:     stderrors.New("plain error"),
			errType: Internal,
			want:    false,
		},
		{
			name:    "nil 에러",
			err:     nil,
			errType: Internal,
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Is(tt.err, tt.errType))
		})
	}
}

func TestRootCause(t *testing.T) {
	root := stderrors.New("root cause")
	wrapped := Wrap(Wrap(root, System, "중간 단계"), Internal, "최상위 단계")

	assert.Equal(t, root, RootCause(wrapped))
	assert.Nil(t, RootCause(nil))
}

func TestUnderlyingType(t *testing.T) {
	t.Run("AppError 체인: 가장 안쪽 타입 반환", func(t *testing.T) {
		err := Wrap(New(NotFound, "상품 없음"), Internal, "조회 실패")
		assert.Equal(t, NotFound, UnderlyingType(err))
	})

	t.Run("외부 에러 래핑: 래핑한 타입 반환", func(t *testing.T) {
		err := Wrap(os.ErrNotExist, NotFound, "상품 없음")
		assert.Equal(t, NotFound, UnderlyingType(err))
	})

	t.Run("AppError가 없는 체인: Unknown 반환", func(t *testing.T) {
		assert.Equal(t, Unknown, UnderlyingType(stderrors.New("plain")))
		assert.Equal(t, Unknown, UnderlyingType(nil))
	})
}

func TestFormat(t *testing.T) {
	t.Run("%+v: 스택 트레이스와 원인 체인 출력", func(t *testing.T) {
		err := Wrap(stderrors.New("low level"), System, "파일 읽기 실패")

		formatted := fmt.Sprintf("%+v", err)
		assert.Contains(t, formatted, "[System] 파일 읽기 실패")
		assert.Contains(t, formatted, "Stack trace:")
		assert.Contains(t, formatted, "Caused by:")
		assert.Contains(t, formatted, "low level")
	})

	t.Run("%s: 기본 메시지만 출력", func(t *testing.T) {
		err := New(Conflict, "비교 목록이 가득 찼습니다")
		assert.Equal(t, "[Conflict] 비교 목록이 가득 찼습니다", fmt.Sprintf("%s", err))
	})

	t.Run("%q: 따옴표로 감싼 메시지 출력", func(t *testing.T) {
		err := New(Conflict, "비교 목록이 가득 찼습니다")
		assert.Equal(t, `"[Conflict] 비교 목록이 가득 찼습니다"`, fmt.Sprintf("%q", err))
	})
}

func TestErrorTypeString(t *testing.T) {
	tests := []struct {
		errType ErrorType
		want    string
	}{
		{Unknown, "Unknown"},
		{Internal, "Internal"},
		{System, "System"},
		{Unauthorized, "Unauthorized"},
		{InvalidInput, "InvalidInput"},
		{Conflict, "Conflict"},
		{NotFound, "NotFound"},
		{ParsingFailed, "ParsingFailed"},
		{Unavailable, "Unavailable"},
		{ErrorType(999), "Unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.errType.String())
	}
}
