package response

import (
	"github.com/darkkaiser/catalog-server/internal/service/catalog"
)

// ProductListResponse 상품 목록 조회 응답
//
// 페이지 항목과 함께 적용된 화면 조건(카테고리, 검색어, 정렬 기준)을
// 그대로 되돌려주어 클라이언트가 현재 상태를 재구성할 수 있도록 합니다.
type ProductListResponse struct {
	// 현재 페이지의 상품 목록
	Items []catalog.Product `json:"items"`
	// 현재 페이지 번호 (1부터 시작)
	Page int `json:"page"`
	// 전체 페이지 수 (상품이 없으면 0)
	TotalPages int `json:"total_pages"`
	// 필터링 후 전체 상품 수
	TotalItems int `json:"total_items"`
	// 적용된 카테고리 필터
	Category string `json:"category" example:"phone"`
	// 적용된 검색어
	Query string `json:"query,omitempty" example:"iphone"`
	// 적용된 정렬 기준
	Sort string `json:"sort" example:"newest"`
}
