package handler

import (
	"net/http"
	"strconv"

	"github.com/darkkaiser/catalog-server/internal/service/api/constants"
	"github.com/darkkaiser/catalog-server/internal/service/api/httputil"
	"github.com/darkkaiser/catalog-server/internal/service/api/v1/model/request"
	"github.com/darkkaiser/catalog-server/internal/service/api/v1/model/response"
	"github.com/darkkaiser/catalog-server/internal/service/catalog"
	applog "github.com/darkkaiser/catalog-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// ListProductsHandler 필터링/정렬/페이지 조건이 적용된 상품 목록을 반환합니다.
//
// 쿼리 파라미터:
//   - category: 카테고리 필터 (기본값: all)
//   - q: 상품명 검색어 (대소문자 무시, 유니코드 정규화)
//   - sort: 정렬 기준 (newest, price-asc, price-desc / 알 수 없는 값은 newest로 처리)
//   - page: 1부터 시작하는 페이지 번호 (범위를 벗어나면 빈 목록 반환)
func (h *Handler) ListProductsHandler(c echo.Context) error {
	// 1. 화면 조건 파싱
	category := c.QueryParam(constants.QueryParamCategory)
	if category == "" {
		category = string(catalog.CategoryAll)
	}

	sort := catalog.SortKey(c.QueryParam(constants.QueryParamSort)).Normalize()

	page := 1
	if raw := c.QueryParam(constants.QueryParamPage); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return httputil.NewBadRequestError("페이지 번호 형식이 올바르지 않습니다")
		}
		page = parsed
	}

	params := catalog.ViewParams{
		Category: catalog.Category(category),
		Query:    c.QueryParam(constants.QueryParamQuery),
		Sort:     sort,
		Page:     page,
		PageSize: h.pageSize,
	}

	// 2. 화면 페이지 계산
	view := h.catalog.View(params)

	// 3. 적용된 조건을 함께 반환
	return c.JSON(http.StatusOK, response.ProductListResponse{
		Items:      view.Items,
		Page:       view.Page,
		TotalPages: view.TotalPages,
		TotalItems: view.TotalItems,
		Category:   category,
		Query:      params.Query,
		Sort:       string(sort),
	})
}

// GetProductHandler ID에 해당하는 단일 상품을 반환합니다.
func (h *Handler) GetProductHandler(c echo.Context) error {
	id, err := parseProductID(c)
	if err != nil {
		return err
	}

	p, err := h.catalog.Product(id)
	if err != nil {
		return httputil.FromAppError(err)
	}

	return c.JSON(http.StatusOK, p)
}

// CreateProductHandler 새로운 상품을 등록합니다. (관리자 전용)
func (h *Handler) CreateProductHandler(c echo.Context) error {
	// 1. 요청 바인딩
	req := new(request.ProductRequest)
	if err := c.Bind(req); err != nil {
		return NewErrInvalidBody()
	}

	// 2. 입력 검증
	if err := validateRequest(req); err != nil {
		return NewErrValidationFailed(formatValidationError(err))
	}

	// 3. 상품 등록 (카테고리/상품 상태의 닫힌 집합 검증 포함)
	p, err := h.catalog.AddProduct(req.ToInput())
	if err != nil {
		return httputil.FromAppError(err)
	}

	h.log(c).WithFields(applog.Fields{
		"product_id": p.ID,
		"category":   p.Category,
	}).Info("상품 등록됨")

	return c.JSON(http.StatusCreated, p)
}

// UpdateProductHandler 기존 상품의 정보를 수정합니다. (관리자 전용)
// ID를 제외한 모든 필드가 요청 값으로 교체되며, 목록에서의 위치는 유지됩니다.
func (h *Handler) UpdateProductHandler(c echo.Context) error {
	id, err := parseProductID(c)
	if err != nil {
		return err
	}

	req := new(request.ProductRequest)
	if err := c.Bind(req); err != nil {
		return NewErrInvalidBody()
	}

	if err := validateRequest(req); err != nil {
		return NewErrValidationFailed(formatValidationError(err))
	}

	p, err := h.catalog.UpdateProduct(id, req.ToInput())
	if err != nil {
		return httputil.FromAppError(err)
	}

	h.log(c).WithField("product_id", p.ID).Info("상품 수정됨")

	return c.JSON(http.StatusOK, p)
}

// DeleteProductHandler 상품을 삭제합니다. (관리자 전용)
// 해당 상품이 비교 목록에 포함되어 있으면 함께 제거됩니다.
func (h *Handler) DeleteProductHandler(c echo.Context) error {
	id, err := parseProductID(c)
	if err != nil {
		return err
	}

	if err := h.catalog.DeleteProduct(id); err != nil {
		return httputil.FromAppError(err)
	}

	h.log(c).WithField("product_id", id).Info("상품 삭제됨")

	return httputil.Success(c)
}

// parseProductID 경로 파라미터에서 상품 ID를 파싱합니다.
func parseProductID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, NewErrInvalidProductID()
	}
	return id, nil
}
