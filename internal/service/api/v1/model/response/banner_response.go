package response

// BannerResponse 배너 이미지 조회/교체 응답
type BannerResponse struct {
	// 현재 배너 이미지 (원격 URL 또는 data URI)
	ImageURL string `json:"image_url"`
}

// ImageUploadResponse 이미지 업로드 응답
type ImageUploadResponse struct {
	// 업로드된 이미지의 data URI 표현 (data:<mime>;base64,...)
	ImageURL string `json:"image_url"`
}
