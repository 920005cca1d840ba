package catalog

import (
	"sort"
	"strings"

	"github.com/darkkaiser/catalog-server/pkg/strutil"
)

// SortKey 상품 목록의 정렬 기준입니다.
type SortKey string

const (
	// SortNewest 최신 등록순입니다. 등록 순서가 ID에 반영되므로 ID 내림차순으로 정렬합니다.
	SortNewest SortKey = "newest"

	// SortPriceAsc 판매 가격 오름차순입니다.
	SortPriceAsc SortKey = "price-asc"

	// SortPriceDesc 판매 가격 내림차순입니다.
	SortPriceDesc SortKey = "price-desc"
)

// Normalize 정의되지 않은 정렬 기준을 SortNewest로 대체하여 반환합니다.
func (k SortKey) Normalize() SortKey {
	switch k {
	case SortNewest, SortPriceAsc, SortPriceDesc:
		return k
	default:
		return SortNewest
	}
}

// ViewParams 상품 목록 화면을 계산하기 위한 조건입니다.
type ViewParams struct {
	// Category 카테고리 필터입니다. CategoryAll이거나 비어있으면 필터링하지 않습니다.
	Category Category

	// Query 검색어입니다. 공백 제거 후 비어있으면 필터링하지 않습니다.
	Query string

	// Sort 정렬 기준입니다. 정의되지 않은 값은 SortNewest로 처리됩니다.
	Sort SortKey

	// Page 1부터 시작하는 페이지 번호입니다.
	Page int

	// PageSize 한 페이지에 표시할 상품 개수입니다.
	PageSize int
}

// Page 상품 목록 화면의 계산 결과입니다.
type Page struct {
	Items      []Product `json:"items"`
	Page       int       `json:"page"`
	TotalPages int       `json:"total_pages"`
	TotalItems int       `json:"total_items"`
}

// DeriveView 전체 상품 목록에 필터링/정렬/페이지 분할을 적용하여 화면에 표시할 페이지를 계산합니다.
//
// 처리 순서는 항상 필터링(카테고리 -> 검색어) -> 정렬 -> 페이지 분할이며,
// 입력 목록은 절대 변경되지 않습니다.
//
// 페이지 번호가 전체 페이지 수를 벗어나면 빈 목록을 반환하되
// TotalPages/TotalItems는 정상적으로 계산됩니다.
func DeriveView(products []Product, params ViewParams) Page {
	filtered := filterProducts(products, params.Category, params.Query)

	sortProducts(filtered, params.Sort.Normalize())

	return paginate(filtered, params.Page, params.PageSize)
}

func filterProducts(products []Product, category Category, query string) []Product {
	query = strings.TrimSpace(query)

	filtered := make([]Product, 0, len(products))
	for _, p := range products {
		if category != "" && category != CategoryAll && p.Category != category {
			continue
		}
		if query != "" && !strutil.ContainsFold(p.Name, query) {
			continue
		}
		filtered = append(filtered, p)
	}

	return filtered
}

func sortProducts(products []Product, key SortKey) {
	switch key {
	case SortPriceAsc:
		// 가격이 같은 상품은 기존 순서를 유지합니다.
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})

	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})

	case SortNewest:
		// 나중에 등록된 상품일수록 큰 ID를 가지므로 ID 내림차순이 곧 최신순입니다.
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].ID > products[j].ID
		})
	}
}

func paginate(products []Product, page, pageSize int) Page {
	if pageSize <= 0 {
		pageSize = 1
	}
	if page <= 0 {
		page = 1
	}

	totalItems := len(products)
	totalPages := (totalItems + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	if start >= totalItems {
		return Page{
			Items:      []Product{},
			Page:       page,
			TotalPages: totalPages,
			TotalItems: totalItems,
		}
	}

	end := start + pageSize
	if end > totalItems {
		end = totalItems
	}

	items := make([]Product, end-start)
	copy(items, products[start:end])

	return Page{
		Items:      items,
		Page:       page,
		TotalPages: totalPages,
		TotalItems: totalItems,
	}
}
