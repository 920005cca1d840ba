package catalog

import (
	"strings"
	"sync"

	apperrors "github.com/darkkaiser/catalog-server/internal/pkg/errors"
	"github.com/darkkaiser/catalog-server/internal/service/catalog/idgen"
)

// Store 상품 목록을 소유하는 인메모리 저장소입니다.
//
// 상품은 등록된 순서의 역순(최신이 맨 앞)으로 유지되며,
// 수정 작업은 기존 상품의 위치를 그대로 유지합니다.
// 모든 메서드는 동시 호출에 안전합니다.
type Store struct {
	mu       sync.RWMutex
	products []*Product

	idGenerator idgen.Generator
}

// NewStore Store 객체를 생성하여 반환합니다.
func NewStore(idGenerator idgen.Generator) *Store {
	if idGenerator == nil {
		panic("ID Generator 객체가 초기화되지 않았습니다")
	}

	return &Store{
		products:    make([]*Product, 0),
		idGenerator: idGenerator,
	}
}

// Add 새로운 상품을 등록하고 부여된 ID를 포함한 상품을 반환합니다.
// 입력 데이터가 유효하지 않으면 InvalidInput 오류를 반환합니다.
func (s *Store) Add(in ProductInput) (Product, error) {
	if err := in.Validate(); err != nil {
		return Product{}, err
	}

	p := productFromInput(s.idGenerator.Next(), in)

	s.mu.Lock()
	defer s.mu.Unlock()

	// 최신 상품이 목록의 맨 앞에 위치합니다.
	s.products = append([]*Product{&p}, s.products...)

	return p, nil
}

// Update 기존 상품의 내용을 교체합니다. ID와 목록 내 위치는 변경되지 않습니다.
// 해당 ID의 상품이 없으면 NotFound 오류를 반환합니다.
func (s *Store) Update(id int64, in ProductInput) (Product, error) {
	if err := in.Validate(); err != nil {
		return Product{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.products {
		if p.ID == id {
			updated := productFromInput(id, in)
			s.products[i] = &updated
			return updated, nil
		}
	}

	return Product{}, apperrors.Newf(apperrors.NotFound, "상품을 찾을 수 없습니다 (ID:%d)", id)
}

// Remove 상품을 삭제합니다. 해당 ID의 상품이 없으면 NotFound 오류를 반환합니다.
func (s *Store) Remove(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.products {
		if p.ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return nil
		}
	}

	return apperrors.Newf(apperrors.NotFound, "상품을 찾을 수 없습니다 (ID:%d)", id)
}

// Get ID에 해당하는 상품을 반환합니다. 없으면 NotFound 오류를 반환합니다.
func (s *Store) Get(id int64) (Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			return *p, nil
		}
	}

	return Product{}, apperrors.Newf(apperrors.NotFound, "상품을 찾을 수 없습니다 (ID:%d)", id)
}

// Products 전체 상품 목록의 스냅샷을 반환합니다.
// 반환된 슬라이스는 호출자가 자유롭게 수정할 수 있습니다.
func (s *Store) Products() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		snapshot = append(snapshot, *p)
	}

	return snapshot
}

// Count 저장된 상품의 개수를 반환합니다.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.products)
}

// restore 시드 데이터 적재용으로 ID가 이미 부여된 상품을 목록 맨 뒤에 추가합니다.
func (s *Store) restore(p Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = append(s.products, &p)
}

func productFromInput(id int64, in ProductInput) Product {
	return Product{
		ID:            id,
		Name:          strings.TrimSpace(in.Name),
		ImageURL:      strings.TrimSpace(in.ImageURL),
		Price:         in.Price,
		OriginalPrice: in.OriginalPrice,
		Condition:     in.Condition,
		Category:      in.Category,
		Brand:         strings.TrimSpace(in.Brand),
	}
}
