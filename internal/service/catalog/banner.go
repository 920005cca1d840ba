package catalog

import (
	"strings"
	"sync"

	apperrors "github.com/darkkaiser/catalog-server/internal/pkg/errors"
	"github.com/darkkaiser/catalog-server/pkg/validation"
)

// DefaultBannerURL 배너 이미지가 교체되기 전까지 사용되는 기본 이미지 URL입니다.
const DefaultBannerURL = "https://images.unsplash.com/photo-1592899677977-9c10ca582bbd?q=80&w=1200&h=300&fit=crop&ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D"

// Banner 스토어 메인 화면 상단의 배너 이미지 상태입니다.
// 모든 메서드는 동시 호출에 안전합니다.
type Banner struct {
	mu  sync.RWMutex
	url string
}

// NewBanner 기본 이미지 URL로 초기화된 Banner 객체를 생성하여 반환합니다.
func NewBanner() *Banner {
	return &Banner{
		url: DefaultBannerURL,
	}
}

// URL 현재 배너 이미지의 URL을 반환합니다.
func (b *Banner) URL() string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.url
}

// Replace 배너 이미지를 교체합니다.
//
// http(s) URL 또는 업로드된 이미지 파일의 데이터 URI만 허용되며,
// 그 외의 값은 InvalidInput 오류를 반환합니다.
func (b *Banner) Replace(url string) error {
	url = strings.TrimSpace(url)

	if err := validation.ValidateImageURL(url); err != nil {
		return apperrors.Wrap(err, apperrors.InvalidInput, "배너 이미지는 http(s) URL 또는 이미지 데이터 URI만 사용할 수 있습니다")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.url = url

	return nil
}
