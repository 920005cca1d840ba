package request

// ToggleCompareRequest 비교 목록 토글 요청
type ToggleCompareRequest struct {
	// 비교 목록에 추가/제거할 상품 ID
	ProductID int64 `json:"product_id" validate:"required" korean:"상품 ID" example:"1959915314987008000"`
}
