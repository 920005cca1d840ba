package constants

import "time"

// 서버 설정 기본값 상수입니다.
const (
	// DefaultRequestTimeout HTTP 요청 처리의 기본 타임아웃 시간 (60초)
	// 별도의 타임아웃 설정이 없는 경우 이 값이 적용되며, 요청 처리가 이 시간을 초과하면
	// 자동으로 취소되어 서버 리소스를 보호합니다.
	DefaultRequestTimeout = 60 * time.Second

	// DefaultReadTimeout 요청 본문 읽기 최대 대기 시간 (30초)
	DefaultReadTimeout = 30 * time.Second

	// DefaultReadHeaderTimeout HTTP 헤더 읽기 최대 대기 시간 (10초)
	// 헤더를 매우 느리게 전송하는 Slowloris 유형의 연결 고갈 공격을 방지합니다.
	DefaultReadHeaderTimeout = 10 * time.Second

	// DefaultWriteTimeout 응답 쓰기 최대 대기 시간 (30초)
	DefaultWriteTimeout = 30 * time.Second

	// DefaultIdleTimeout Keep-Alive 연결의 최대 유휴 시간 (120초)
	DefaultIdleTimeout = 120 * time.Second

	// DefaultRateLimitPerSecond IP별 초당 허용 요청 수
	DefaultRateLimitPerSecond = 20

	// DefaultRateLimitBurst IP별 순간 허용 요청 수 (버스트)
	DefaultRateLimitBurst = 40

	// DefaultMaxBodySize 요청 본문의 최대 크기
	// 데이터 URI 형태의 상품 이미지 업로드를 수용할 수 있도록 여유 있게 설정합니다.
	DefaultMaxBodySize = "8M"

	// MaxUploadImageSize 업로드 이미지 파일의 최대 크기 (5MB)
	MaxUploadImageSize = 5 * 1024 * 1024
)
