package constants

// 클라이언트에게 반환되는 에러 메시지 상수입니다.
const (
	// ------------------------------------------------------------------------------------------------
	// 일반 HTTP 에러 (상태 코드 순)
	// ------------------------------------------------------------------------------------------------

	// 400 Bad Request
	ErrMsgBadRequest            = "잘못된 요청입니다"
	ErrMsgBadRequestInvalidBody = "요청 본문을 파싱할 수 없습니다. JSON 형식을 확인해주세요"
	ErrMsgBadRequestInvalidID   = "상품 ID 형식이 올바르지 않습니다"

	// 404 Not Found
	ErrMsgNotFound = "요청한 리소스를 찾을 수 없습니다"

	// 413 Request Entity Too Large
	ErrMsgRequestEntityTooLarge = "요청 본문이 너무 큽니다"

	// 415 Unsupported Media Type
	ErrMsgUnsupportedMediaType = "지원하지 않는 Content-Type 형식입니다"

	// 429 Too Many Requests
	ErrMsgTooManyRequests = "요청이 너무 많습니다. 잠시 후 다시 시도해주세요"

	// 500 Internal Server Error
	ErrMsgInternalServer = "내부 서버 오류가 발생했습니다"

	// ------------------------------------------------------------------------------------------------
	// 관리자 인증 에러
	// ------------------------------------------------------------------------------------------------

	// ErrMsgAuthTokenRequired 관리자 세션 토큰 누락
	ErrMsgAuthTokenRequired = "관리자 세션 토큰은 필수입니다 (X-Admin-Token 헤더)"

	// ErrMsgAuthInvalidToken 유효하지 않거나 만료된 관리자 세션 토큰
	ErrMsgAuthInvalidToken = "유효하지 않거나 만료된 관리자 세션입니다. 다시 로그인해주세요"

	// ------------------------------------------------------------------------------------------------
	// 이미지 업로드 에러
	// ------------------------------------------------------------------------------------------------

	// ErrMsgImageFileRequired 이미지 파일 누락
	ErrMsgImageFileRequired = "업로드할 이미지 파일은 필수입니다 (multipart 필드: image)"

	// ErrMsgImageReadFailed 이미지 파일 읽기 실패
	ErrMsgImageReadFailed = "이미지 파일을 읽을 수 없습니다. 파일을 다시 확인해주세요"

	// ErrMsgImageTooLarge 이미지 파일 크기 초과
	ErrMsgImageTooLarge = "이미지 파일은 5MB를 초과할 수 없습니다"

	// ErrMsgImageInvalidType 이미지가 아닌 파일 업로드
	ErrMsgImageInvalidType = "이미지 형식의 파일만 업로드할 수 있습니다"
)

// 클라이언트에게 전달되는 일회성 안내 문구 상수입니다.
// 스토어프런트에 그대로 노출되는 문구이므로 베트남어를 사용합니다.
const (
	// NoticeAdminLoginSucceeded 관리자 모드 활성화 안내
	NoticeAdminLoginSucceeded = "Đã kích hoạt chế độ quản trị. Bạn có thể thêm/sửa/xóa sản phẩm."

	// NoticeAdminLoginFailed 관리자 비밀번호 불일치 안내
	NoticeAdminLoginFailed = "Mật khẩu không đúng!"

	// NoticeAdminLoggedOut 관리자 모드 종료 안내
	NoticeAdminLoggedOut = "Đã đăng xuất khỏi chế độ quản trị."
)
