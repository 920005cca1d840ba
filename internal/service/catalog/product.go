// Package catalog 중고 전자제품 스토어의 상품 카탈로그 도메인을 제공합니다.
//
// 이 패키지는 다음 구성요소를 포함합니다:
//   - Store: 상품 목록을 소유하는 인메모리 저장소 (등록/수정/삭제)
//   - DeriveView: 카테고리/검색/정렬/페이지 조건으로 화면에 표시할 상품 페이지를 계산하는 순수 함수
//   - Selection: 최대 2개의 상품을 담는 비교 목록 상태 기계
//   - Banner: 메인 배너 이미지 상태
//
// 모든 상태는 프로세스 생명주기 동안만 메모리에 유지되며, 영속화되지 않습니다.
package catalog

import (
	"fmt"
	"strings"

	apperrors "github.com/darkkaiser/catalog-server/internal/pkg/errors"
)

// Category 상품이 속하는 카테고리입니다.
//
// CategoryAll은 목록 필터링 전용 와일드카드 값으로,
// 저장된 상품의 카테고리로는 절대 사용될 수 없습니다.
type Category string

const (
	// CategoryAll 모든 카테고리를 의미하는 필터 전용 와일드카드입니다.
	CategoryAll Category = "all"

	CategoryPhone       Category = "phone"
	CategoryTablet      Category = "tablet"
	CategoryLaptop      Category = "laptop"
	CategoryWatch       Category = "watch"
	CategoryPC          Category = "pc"
	CategoryAccessories Category = "accessories"
)

// storableCategories 상품에 저장 가능한 카테고리와 화면 표시용 레이블의 매핑입니다.
var storableCategories = map[Category]string{
	CategoryPhone:       "Điện thoại",
	CategoryTablet:      "Máy tính bảng",
	CategoryLaptop:      "Laptop",
	CategoryWatch:       "Đồng hồ",
	CategoryPC:          "PC",
	CategoryAccessories: "Phụ kiện",
}

// Storable 상품에 저장 가능한 카테고리인지 확인합니다.
// 와일드카드(CategoryAll)와 정의되지 않은 값은 저장할 수 없습니다.
func (c Category) Storable() bool {
	_, ok := storableCategories[c]
	return ok
}

// Label 화면 표시용 레이블을 반환합니다.
func (c Category) Label() string {
	if c == CategoryAll {
		return "Tất cả"
	}
	if label, ok := storableCategories[c]; ok {
		return label
	}
	return string(c)
}

// Condition 상품의 외관 상태 등급입니다.
type Condition string

const (
	ConditionLikeNew   Condition = "cu-dep"    // 사용감이 거의 없는 깨끗한 중고
	ConditionScratched Condition = "tray-xuoc" // 잔기스 있음
	ConditionDented    Condition = "xuoc-can"  // 기스 및 찍힘 있음
)

// conditionLabels 상태 등급과 화면 표시용 레이블의 매핑입니다.
var conditionLabels = map[Condition]string{
	ConditionLikeNew:   "Cũ đẹp",
	ConditionScratched: "Trầy xước",
	ConditionDented:    "Xước cấn",
}

// Valid 정의된 상태 등급인지 확인합니다.
func (c Condition) Valid() bool {
	_, ok := conditionLabels[c]
	return ok
}

// Label 화면 표시용 레이블을 반환합니다.
func (c Condition) Label() string {
	if label, ok := conditionLabels[c]; ok {
		return label
	}
	return string(c)
}

// Product 판매 중인 중고 상품 하나를 표현합니다.
//
// ID는 저장소가 등록 시점에 부여하는 시간 기반 고유 식별자이며 이후 절대 변경되지 않습니다.
// 그 외의 모든 필드는 수정 작업을 통해 교체될 수 있습니다.
type Product struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	ImageURL      string    `json:"image_url"`
	Price         int64     `json:"price"`
	OriginalPrice int64     `json:"original_price,omitempty"`
	Condition     Condition `json:"condition"`
	Category      Category  `json:"category"`
	Brand         string    `json:"brand"`
}

// ProductInput 상품 등록/수정 시 입력되는 데이터입니다. ID는 저장소가 부여하므로 포함되지 않습니다.
type ProductInput struct {
	Name          string
	ImageURL      string
	Price         int64
	OriginalPrice int64
	Condition     Condition
	Category      Category
	Brand         string
}

// Validate 입력 데이터의 유효성을 검사합니다.
//
// 검사 항목:
//   - 상품명/브랜드/이미지: 공백 제거 후 비어있지 않아야 함
//   - 가격: 0 이상
//   - 상태 등급: 정의된 값
//   - 카테고리: 저장 가능한 값 (와일드카드 불가)
func (in ProductInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return apperrors.New(apperrors.InvalidInput, "상품명은 필수입니다")
	}
	if strings.TrimSpace(in.Brand) == "" {
		return apperrors.New(apperrors.InvalidInput, "브랜드는 필수입니다")
	}
	if strings.TrimSpace(in.ImageURL) == "" {
		return apperrors.New(apperrors.InvalidInput, "상품 이미지는 필수입니다")
	}
	if in.Price < 0 {
		return apperrors.New(apperrors.InvalidInput, "판매 가격은 0 이상이어야 합니다")
	}
	if in.OriginalPrice < 0 {
		return apperrors.New(apperrors.InvalidInput, "정가는 0 이상이어야 합니다")
	}
	if !in.Condition.Valid() {
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("정의되지 않은 상품 상태입니다: '%s'", in.Condition))
	}
	if !in.Category.Storable() {
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("상품에 저장할 수 없는 카테고리입니다: '%s'", in.Category))
	}
	return nil
}
