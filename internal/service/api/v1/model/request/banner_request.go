package request

// BannerRequest 배너 이미지 교체 요청
type BannerRequest struct {
	// 새 배너 이미지 (원격 URL 또는 data URI)
	ImageURL string `json:"image_url" validate:"required" korean:"배너 이미지" example:"https://example.com/banner.jpg"`
}
