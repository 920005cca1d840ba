package catalog

import (
	"sync"

	apperrors "github.com/darkkaiser/catalog-server/internal/pkg/errors"
)

// MaxCompareProducts 비교 목록에 동시에 담을 수 있는 상품의 최대 개수입니다.
const MaxCompareProducts = 2

// Selection 상품 비교 목록의 상태 기계입니다.
//
// 최대 MaxCompareProducts개의 상품 ID를 선택 순서대로 유지하며,
// 선택 개수가 최대치에 도달하는 '순간'에만 비교 화면 열림 플래그를 켭니다.
// 비교 화면을 닫아도 선택 목록은 유지됩니다.
// 모든 메서드는 동시 호출에 안전합니다.
type Selection struct {
	mu       sync.Mutex
	ids      []int64
	viewOpen bool
}

// NewSelection Selection 객체를 생성하여 반환합니다.
func NewSelection() *Selection {
	return &Selection{
		ids: make([]int64, 0, MaxCompareProducts),
	}
}

// ToggleResult Toggle 호출의 결과입니다.
type ToggleResult struct {
	// Selected 호출 이후 해당 상품이 비교 목록에 포함되어 있는지 여부입니다.
	Selected bool `json:"selected"`

	// ViewOpened 이번 호출로 인해 비교 화면이 새로 열렸는지 여부입니다.
	ViewOpened bool `json:"view_opened"`

	// IDs 호출 이후의 비교 목록입니다.
	IDs []int64 `json:"ids"`
}

// Toggle 상품의 비교 목록 포함 여부를 토글합니다.
//
// 이미 포함된 상품이면 목록에서 제거하고, 포함되지 않은 상품이면 목록에 추가합니다.
// 추가로 인해 선택 개수가 최대치에 도달하면 비교 화면 열림 플래그를 켭니다.
// 목록이 가득 찬 상태에서 새로운 상품을 추가하려고 하면 Conflict 오류를 반환합니다.
func (s *Selection) Toggle(id int64) (ToggleResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, selectedID := range s.ids {
		if selectedID == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			return ToggleResult{Selected: false, IDs: s.snapshotLocked()}, nil
		}
	}

	if len(s.ids) >= MaxCompareProducts {
		return ToggleResult{}, apperrors.Newf(apperrors.Conflict, "비교는 최대 %d개의 상품까지만 가능합니다", MaxCompareProducts)
	}

	s.ids = append(s.ids, id)

	viewOpened := false
	if len(s.ids) == MaxCompareProducts {
		s.viewOpen = true
		viewOpened = true
	}

	return ToggleResult{Selected: true, ViewOpened: viewOpened, IDs: s.snapshotLocked()}, nil
}

// Remove 상품을 비교 목록에서 제거합니다.
// 목록에 없는 상품이면 아무 일도 일어나지 않습니다.
func (s *Selection) Remove(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, selectedID := range s.ids {
		if selectedID == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			return
		}
	}
}

// CloseView 비교 화면을 닫습니다. 선택 목록은 그대로 유지됩니다.
func (s *Selection) CloseView() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.viewOpen = false
}

// Contains 상품이 비교 목록에 포함되어 있는지 확인합니다.
func (s *Selection) Contains(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, selectedID := range s.ids {
		if selectedID == id {
			return true
		}
	}

	return false
}

// IDs 비교 목록의 스냅샷을 선택 순서대로 반환합니다.
func (s *Selection) IDs() []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshotLocked()
}

// ViewOpen 비교 화면이 열려있는지 확인합니다.
func (s *Selection) ViewOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.viewOpen
}

func (s *Selection) snapshotLocked() []int64 {
	snapshot := make([]int64, len(s.ids))
	copy(snapshot, s.ids)
	return snapshot
}
