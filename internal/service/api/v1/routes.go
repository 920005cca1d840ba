// Package v1 Catalog API의 v1 버전 라우트를 정의하고 설정합니다.
//
// 이 패키지는 /api/v1 경로 하위의 모든 엔드포인트를 관리하며,
// 상품 카탈로그 조회와 관리를 위한 RESTful API를 제공합니다.
//
// 공개 엔드포인트 (인증 불필요):
//   - GET    /api/v1/products        - 상품 목록 조회 (필터/검색/정렬/페이지)
//   - GET    /api/v1/products/:id    - 단일 상품 조회
//   - GET    /api/v1/banner          - 배너 이미지 조회
//   - GET    /api/v1/compare         - 비교 목록 상태 조회
//   - POST   /api/v1/compare/toggle  - 비교 목록 토글
//   - DELETE /api/v1/compare/:id     - 비교 목록에서 제거
//   - POST   /api/v1/compare/close   - 비교 화면 닫기
//   - POST   /api/v1/admin/login     - 관리자 로그인
//
// 관리자 엔드포인트 (X-Admin-Token 헤더 필요):
//   - POST   /api/v1/admin/logout    - 관리자 로그아웃
//   - POST   /api/v1/products        - 상품 등록
//   - PUT    /api/v1/products/:id    - 상품 수정
//   - DELETE /api/v1/products/:id    - 상품 삭제
//   - PUT    /api/v1/banner          - 배너 이미지 교체
//   - POST   /api/v1/images          - 이미지 업로드 (multipart)
package v1

import (
	"github.com/darkkaiser/catalog-server/internal/service/api/auth"
	"github.com/darkkaiser/catalog-server/internal/service/api/middleware"
	"github.com/darkkaiser/catalog-server/internal/service/api/v1/handler"
	"github.com/labstack/echo/v4"
)

// SetupRoutes Echo 인스턴스에 v1 API 라우트를 설정합니다.
//
// /api/v1 그룹을 생성하고, 변경 엔드포인트에는 관리자 인증 미들웨어를,
// JSON 본문을 받는 엔드포인트에는 Content-Type 검증 미들웨어를 적용합니다.
func SetupRoutes(e *echo.Echo, h *handler.Handler, gate *auth.Gate) {
	// 1. API v1 그룹 생성 (/api/v1 prefix)
	v1Group := e.Group("/api/v1")

	// 2. 미들웨어 생성
	adminMiddleware := middleware.RequireAdmin(gate)
	jsonMiddleware := middleware.ValidateContentType(echo.MIMEApplicationJSON)

	// 3. 공개 엔드포인트 등록
	v1Group.GET("/products", h.ListProductsHandler)
	v1Group.GET("/products/:id", h.GetProductHandler)
	v1Group.GET("/banner", h.GetBannerHandler)

	v1Group.GET("/compare", h.GetCompareHandler)
	v1Group.POST("/compare/toggle", h.ToggleCompareHandler, jsonMiddleware)
	v1Group.DELETE("/compare/:id", h.RemoveCompareHandler)
	v1Group.POST("/compare/close", h.CloseCompareHandler)

	v1Group.POST("/admin/login", h.LoginHandler, jsonMiddleware)

	// 4. 관리자 엔드포인트 등록 (인증 미들웨어 적용)
	v1Group.POST("/admin/logout", h.LogoutHandler, adminMiddleware)

	v1Group.POST("/products", h.CreateProductHandler, adminMiddleware, jsonMiddleware)
	v1Group.PUT("/products/:id", h.UpdateProductHandler, adminMiddleware, jsonMiddleware)
	v1Group.DELETE("/products/:id", h.DeleteProductHandler, adminMiddleware)

	v1Group.PUT("/banner", h.ReplaceBannerHandler, adminMiddleware, jsonMiddleware)

	v1Group.POST("/images", h.UploadImageHandler, adminMiddleware)
}
