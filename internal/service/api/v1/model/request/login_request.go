package request

// LoginRequest 관리자 로그인 요청
type LoginRequest struct {
	// 관리자 공유 비밀번호
	Password string `json:"password" validate:"required" korean:"비밀번호" example:"thanhvan23"`
}
