package catalog

import (
	"fmt"

	applog "github.com/darkkaiser/catalog-server/pkg/log"
	"github.com/darkkaiser/catalog-server/pkg/strutil"
)

// Notifier 카탈로그 관리 이벤트를 기본 알림 채널로 발송합니다.
type Notifier interface {
	NotifyDefault(message string) error
}

// Catalog 카탈로그 도메인의 구성요소(저장소/비교 목록/배너)를 묶어
// 상위 계층에 단일 진입점을 제공하는 컨트롤러입니다.
//
// 관리 작업(상품 등록/수정/삭제, 배너 교체)이 수행되면 기본 알림 채널로 알림을 발송합니다.
type Catalog struct {
	store     *Store
	selection *Selection
	banner    *Banner
	notifier  Notifier
}

// NewCatalog Catalog 객체를 생성하여 반환합니다. notifier는 nil일 수 있습니다.
func NewCatalog(store *Store, selection *Selection, banner *Banner, notifier Notifier) *Catalog {
	if store == nil || selection == nil || banner == nil {
		panic("Catalog 구성요소가 초기화되지 않았습니다")
	}

	return &Catalog{
		store:     store,
		selection: selection,
		banner:    banner,
		notifier:  notifier,
	}
}

// View 필터링/정렬/페이지 조건을 적용한 상품 목록 화면을 반환합니다.
func (c *Catalog) View(params ViewParams) Page {
	return DeriveView(c.store.Products(), params)
}

// ProductCount 저장소에 등록된 전체 상품 수를 반환합니다.
func (c *Catalog) ProductCount() int {
	return c.store.Count()
}

// Product ID에 해당하는 상품을 반환합니다.
func (c *Catalog) Product(id int64) (Product, error) {
	return c.store.Get(id)
}

// AddProduct 새로운 상품을 등록합니다.
func (c *Catalog) AddProduct(in ProductInput) (Product, error) {
	p, err := c.store.Add(in)
	if err != nil {
		return Product{}, err
	}

	c.notify(fmt.Sprintf("새로운 상품이 등록되었습니다.\n\n· %s (%s)\n· 판매가 : %s₫", p.Name, p.Brand, strutil.FormatCommas(p.Price)))

	return p, nil
}

// UpdateProduct 기존 상품의 내용을 교체합니다.
func (c *Catalog) UpdateProduct(id int64, in ProductInput) (Product, error) {
	p, err := c.store.Update(id, in)
	if err != nil {
		return Product{}, err
	}

	c.notify(fmt.Sprintf("상품 정보가 수정되었습니다.\n\n· %s (%s)\n· 판매가 : %s₫", p.Name, p.Brand, strutil.FormatCommas(p.Price)))

	return p, nil
}

// DeleteProduct 상품을 삭제합니다.
// 삭제된 상품이 비교 목록에 포함되어 있었다면 비교 목록에서도 제거됩니다.
func (c *Catalog) DeleteProduct(id int64) error {
	p, err := c.store.Get(id)
	if err != nil {
		return err
	}

	if err := c.store.Remove(id); err != nil {
		return err
	}

	c.selection.Remove(id)

	c.notify(fmt.Sprintf("상품이 삭제되었습니다.\n\n· %s (%s)", p.Name, p.Brand))

	return nil
}

// ToggleCompare 상품의 비교 목록 포함 여부를 토글합니다.
// 존재하지 않는 상품이면 NotFound 오류를 반환합니다.
func (c *Catalog) ToggleCompare(id int64) (ToggleResult, error) {
	if _, err := c.store.Get(id); err != nil {
		return ToggleResult{}, err
	}

	return c.selection.Toggle(id)
}

// RemoveCompare 상품을 비교 목록에서 제거합니다.
func (c *Catalog) RemoveCompare(id int64) {
	c.selection.Remove(id)
}

// CloseCompareView 비교 화면을 닫습니다. 선택 목록은 유지됩니다.
func (c *Catalog) CloseCompareView() {
	c.selection.CloseView()
}

// CompareState 비교 목록의 현재 상태입니다.
type CompareState struct {
	IDs      []int64   `json:"ids"`
	Products []Product `json:"products"`
	ViewOpen bool      `json:"view_open"`
}

// CompareStateSnapshot 비교 목록의 현재 상태를 반환합니다.
// 선택 이후 삭제된 상품은 목록에서 제외됩니다.
func (c *Catalog) CompareStateSnapshot() CompareState {
	ids := c.selection.IDs()

	products := make([]Product, 0, len(ids))
	for _, id := range ids {
		if p, err := c.store.Get(id); err == nil {
			products = append(products, p)
		}
	}

	return CompareState{
		IDs:      ids,
		Products: products,
		ViewOpen: c.selection.ViewOpen(),
	}
}

// BannerURL 현재 배너 이미지의 URL을 반환합니다.
func (c *Catalog) BannerURL() string {
	return c.banner.URL()
}

// ReplaceBanner 배너 이미지를 교체합니다.
func (c *Catalog) ReplaceBanner(url string) error {
	if err := c.banner.Replace(url); err != nil {
		return err
	}

	c.notify("메인 배너 이미지가 교체되었습니다.")

	return nil
}

func (c *Catalog) notify(message string) {
	if c.notifier == nil {
		return
	}

	if err := c.notifier.NotifyDefault(message); err != nil {
		applog.WithComponentAndFields("catalog", applog.Fields{"err": err}).Error("카탈로그 관리 이벤트 알림 발송이 실패하였습니다.")
	}
}
