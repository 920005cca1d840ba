package response

import (
	"github.com/darkkaiser/catalog-server/internal/service/catalog"
)

// CompareResponse 비교 목록 상태 응답
type CompareResponse struct {
	// 선택 순서가 유지된 비교 대상 상품 ID 목록 (최대 2개)
	IDs []int64 `json:"ids"`
	// ID를 상품으로 해석한 목록 (삭제된 상품은 제외)
	Products []catalog.Product `json:"products"`
	// 비교 화면 표시 여부
	ViewOpen bool `json:"view_open"`
	// 이번 요청으로 비교 화면이 새로 열렸는지 여부 (토글 응답에서만 의미 있음)
	ViewOpened bool `json:"view_opened,omitempty"`
	// 토글 이후 해당 상품의 선택 여부 (토글 응답에서만 의미 있음)
	Selected bool `json:"selected,omitempty"`
}
