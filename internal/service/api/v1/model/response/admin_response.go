package response

// LoginResponse 관리자 로그인 성공 응답
type LoginResponse struct {
	// 발급된 관리자 세션 토큰 (이후 X-Admin-Token 헤더로 전달)
	Token string `json:"token"`
	// 사용자에게 표시할 일회성 안내 문구
	Notice string `json:"notice" example:"Đã kích hoạt chế độ quản trị. Bạn có thể thêm/sửa/xóa sản phẩm."`
}

// LogoutResponse 관리자 로그아웃 응답
type LogoutResponse struct {
	// 사용자에게 표시할 일회성 안내 문구
	Notice string `json:"notice" example:"Đã đăng xuất khỏi chế độ quản trị."`
}
