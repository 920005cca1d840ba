package request

import (
	"github.com/darkkaiser/catalog-server/internal/service/catalog"
)

// ProductRequest 상품 등록/수정 요청
type ProductRequest struct {
	// 상품명
	Name string `json:"name" validate:"required" korean:"상품명" example:"iPhone 13 Pro Max 256GB"`
	// 상품 이미지 (원격 URL 또는 data URI)
	ImageURL string `json:"image_url" validate:"required" korean:"상품 이미지" example:"https://example.com/iphone.jpg"`
	// 판매가 (VND)
	Price int64 `json:"price" validate:"min=0" korean:"판매가" example:"18500000"`
	// 정가 (0은 미설정, 판매가보다 큰 경우에만 할인 표시에 사용)
	OriginalPrice int64 `json:"original_price" validate:"min=0" korean:"정가" example:"21000000"`
	// 상품 상태 (cu-dep, tray-xuoc, xuoc-can)
	Condition string `json:"condition" validate:"required" korean:"상품 상태" example:"cu-dep"`
	// 카테고리 (phone, tablet, laptop, watch, pc, accessories)
	Category string `json:"category" validate:"required" korean:"카테고리" example:"phone"`
	// 브랜드
	Brand string `json:"brand" validate:"required" korean:"브랜드" example:"Apple"`
}

// ToInput 요청을 카탈로그 도메인의 상품 입력으로 변환합니다.
// 카테고리/상품 상태의 닫힌 집합 검증은 도메인 계층에서 수행됩니다.
func (r *ProductRequest) ToInput() catalog.ProductInput {
	return catalog.ProductInput{
		Name:          r.Name,
		ImageURL:      r.ImageURL,
		Price:         r.Price,
		OriginalPrice: r.OriginalPrice,
		Condition:     catalog.Condition(r.Condition),
		Category:      catalog.Category(r.Category),
		Brand:         r.Brand,
	}
}
