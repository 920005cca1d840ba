package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Test Fixtures
// =============================================================================

// fixtureProducts 최신순(맨 앞이 최신)으로 정렬된 테스트용 상품 목록입니다.
func fixtureProducts() []Product {
	return []Product{
		{ID: 5, Name: "MacBook Air M2", Price: 18_000_000, Category: CategoryLaptop, Condition: ConditionLikeNew, Brand: "Apple"},
		{ID: 4, Name: "iPhone 14 Pro Max", Price: 21_000_000, Category: CategoryPhone, Condition: ConditionLikeNew, Brand: "Apple"},
		{ID: 3, Name: "Galaxy S23 Ultra", Price: 15_000_000, Category: CategoryPhone, Condition: ConditionScratched, Brand: "Samsung"},
		{ID: 2, Name: "iPad Pro 11", Price: 14_000_000, Category: CategoryTablet, Condition: ConditionDented, Brand: "Apple"},
		{ID: 1, Name: "iPhone 12", Price: 8_000_000, Category: CategoryPhone, Condition: ConditionScratched, Brand: "Apple"},
	}
}

func pageIDs(page Page) []int64 {
	ids := make([]int64, 0, len(page.Items))
	for _, p := range page.Items {
		ids = append(ids, p.ID)
	}
	return ids
}

// =============================================================================
// DeriveView Tests
// =============================================================================

// TestDeriveView_Filtering은 카테고리/검색어 필터링을 검증합니다.
func TestDeriveView_Filtering(t *testing.T) {
	tests := []struct {
		name     string
		category Category
		query    string
		expected []int64
	}{
		{"필터 없음", CategoryAll, "", []int64{5, 4, 3, 2, 1}},
		{"빈 카테고리는 전체로 처리", "", "", []int64{5, 4, 3, 2, 1}},
		{"카테고리 필터", CategoryPhone, "", []int64{4, 3, 1}},
		{"일치하는 상품이 없는 카테고리", CategoryWatch, "", []int64{}},
		{"검색어 필터", CategoryAll, "iphone", []int64{4, 1}},
		{"검색어는 대소문자를 구분하지 않음", CategoryAll, "IPHONE", []int64{4, 1}},
		{"검색어 앞뒤 공백 무시", CategoryAll, "  galaxy  ", []int64{3}},
		{"카테고리와 검색어의 조합", CategoryPhone, "pro", []int64{4}},
		{"일치하는 검색 결과 없음", CategoryAll, "nokia", []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := DeriveView(fixtureProducts(), ViewParams{
				Category: tt.category,
				Query:    tt.query,
				Sort:     SortNewest,
				Page:     1,
				PageSize: 10,
			})

			assert.Equal(t, tt.expected, pageIDs(page))
			assert.Equal(t, len(tt.expected), page.TotalItems)
		})
	}
}

// TestDeriveView_Sorting은 정렬 동작을 검증합니다.
func TestDeriveView_Sorting(t *testing.T) {
	tests := []struct {
		name     string
		sort     SortKey
		expected []int64
	}{
		{"최신순은 ID 내림차순", SortNewest, []int64{5, 4, 3, 2, 1}},
		{"가격 오름차순", SortPriceAsc, []int64{1, 2, 3, 5, 4}},
		{"가격 내림차순", SortPriceDesc, []int64{4, 5, 3, 2, 1}},
		{"정의되지 않은 정렬 기준은 최신순으로 대체", SortKey("rating"), []int64{5, 4, 3, 2, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := DeriveView(fixtureProducts(), ViewParams{
				Category: CategoryAll,
				Sort:     tt.sort,
				Page:     1,
				PageSize: 10,
			})

			assert.Equal(t, tt.expected, pageIDs(page))
		})
	}

	t.Run("목록 순서와 무관하게 최신순은 ID 내림차순이다", func(t *testing.T) {
		products := []Product{
			{ID: 2, Name: "A", Price: 100},
			{ID: 5, Name: "B", Price: 200},
			{ID: 1, Name: "C", Price: 300},
			{ID: 4, Name: "D", Price: 400},
		}

		page := DeriveView(products, ViewParams{Sort: SortNewest, Page: 1, PageSize: 10})
		assert.Equal(t, []int64{5, 4, 2, 1}, pageIDs(page))
	})

	t.Run("가격이 같은 상품은 기존 순서를 유지한다", func(t *testing.T) {
		products := []Product{
			{ID: 3, Name: "A", Price: 100},
			{ID: 2, Name: "B", Price: 100},
			{ID: 1, Name: "C", Price: 100},
		}

		page := DeriveView(products, ViewParams{Sort: SortPriceAsc, Page: 1, PageSize: 10})
		assert.Equal(t, []int64{3, 2, 1}, pageIDs(page))
	})

	t.Run("입력 목록은 변경되지 않는다", func(t *testing.T) {
		products := fixtureProducts()

		_ = DeriveView(products, ViewParams{Sort: SortPriceAsc, Page: 1, PageSize: 10})

		assert.Equal(t, fixtureProducts(), products)
	})
}

// TestDeriveView_Pagination은 페이지 분할을 검증합니다.
func TestDeriveView_Pagination(t *testing.T) {
	tests := []struct {
		name           string
		page           int
		pageSize       int
		expectedIDs    []int64
		expectedPages  int
		expectedTotals int
	}{
		{"첫 페이지", 1, 2, []int64{5, 4}, 3, 5},
		{"중간 페이지", 2, 2, []int64{3, 2}, 3, 5},
		{"마지막 페이지는 남은 상품만 포함", 3, 2, []int64{1}, 3, 5},
		{"범위를 벗어난 페이지는 빈 목록", 4, 2, []int64{}, 3, 5},
		{"페이지 번호 0은 1로 처리", 0, 2, []int64{5, 4}, 3, 5},
		{"전체가 한 페이지에 포함", 1, 10, []int64{5, 4, 3, 2, 1}, 1, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := DeriveView(fixtureProducts(), ViewParams{
				Category: CategoryAll,
				Sort:     SortNewest,
				Page:     tt.page,
				PageSize: tt.pageSize,
			})

			assert.Equal(t, tt.expectedIDs, pageIDs(page))
			assert.Equal(t, tt.expectedPages, page.TotalPages)
			assert.Equal(t, tt.expectedTotals, page.TotalItems)
		})
	}

	t.Run("상품이 없으면 전체 페이지 수는 0이다", func(t *testing.T) {
		page := DeriveView(nil, ViewParams{Page: 1, PageSize: 10})

		assert.Empty(t, page.Items)
		assert.Zero(t, page.TotalPages)
		assert.Zero(t, page.TotalItems)
	})
}

// TestDeriveView_Pipeline은 필터링 -> 정렬 -> 페이지 분할이 순서대로 적용되는지 검증합니다.
func TestDeriveView_Pipeline(t *testing.T) {
	// 휴대폰 카테고리만 남긴 뒤 가격 오름차순으로 정렬하고 한 페이지에 한 개씩 나눕니다.
	products := fixtureProducts()

	first := DeriveView(products, ViewParams{
		Category: CategoryPhone,
		Sort:     SortPriceAsc,
		Page:     1,
		PageSize: 1,
	})
	require.Equal(t, []int64{1}, pageIDs(first))
	assert.Equal(t, 3, first.TotalPages)
	assert.Equal(t, 3, first.TotalItems)

	second := DeriveView(products, ViewParams{
		Category: CategoryPhone,
		Sort:     SortPriceAsc,
		Page:     2,
		PageSize: 1,
	})
	require.Equal(t, []int64{3}, pageIDs(second))

	third := DeriveView(products, ViewParams{
		Category: CategoryPhone,
		Sort:     SortPriceAsc,
		Page:     3,
		PageSize: 1,
	})
	require.Equal(t, []int64{4}, pageIDs(third))
}

// TestDeriveView_VietnameseQuery는 베트남어 상품명 검색을 검증합니다.
func TestDeriveView_VietnameseQuery(t *testing.T) {
	products := []Product{
		{ID: 1, Name: "Điện thoại iPhone 13 cũ đẹp", Price: 100, Category: CategoryPhone},
		{ID: 2, Name: "Đồng hồ Apple Watch", Price: 200, Category: CategoryWatch},
	}

	page := DeriveView(products, ViewParams{Query: "điện thoại", Page: 1, PageSize: 10})
	assert.Equal(t, []int64{1}, pageIDs(page))
}
