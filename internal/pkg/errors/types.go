package errors

// ErrorType 에러의 종류를 나타내는 타입입니다.
type ErrorType int

// 에러 타입 상수
const (
	// Unknown 알 수 없는 에러
	Unknown ErrorType = iota

	// Internal 내부 로직 오류 (버그 등)
	Internal

	// System 시스템 또는 인프라 오류 (디스크, 네트워크 등)
	System

	// Unauthorized 인증 실패 (비밀번호 불일치, 유효하지 않은 세션 토큰 등)
	Unauthorized

	// InvalidInput 잘못된 입력값 (유효성 검사 실패)
	InvalidInput

	// Conflict 리소스 충돌 또는 현재 상태와 충돌하는 요청 (비교 목록 정원 초과 등)
	Conflict

	// NotFound 리소스를 찾을 수 없음
	NotFound

	// ParsingFailed 데이터 파싱 또는 형식 변환 실패
	ParsingFailed

	// Unavailable 서비스 일시적 사용 불가
	Unavailable
)

// String ErrorType의 문자열 표현을 반환합니다.
func (t ErrorType) String() string {
	switch t {
	case Internal:
		return "Internal"
	case System:
		return "System"
	case Unauthorized:
		return "Unauthorized"
	case InvalidInput:
		return "InvalidInput"
	case Conflict:
		return "Conflict"
	case NotFound:
		return "NotFound"
	case ParsingFailed:
		return "ParsingFailed"
	case Unavailable:
		return "Unavailable"
	default:
		return "Unknown"
	}
}
