package constants

// URL 쿼리 파라미터 키 상수입니다.
const (
	// QueryParamCategory 카테고리 필터용 쿼리 파라미터 키
	QueryParamCategory = "category"

	// QueryParamQuery 상품명 검색어용 쿼리 파라미터 키
	QueryParamQuery = "q"

	// QueryParamSort 정렬 기준용 쿼리 파라미터 키
	QueryParamSort = "sort"

	// QueryParamPage 페이지 번호용 쿼리 파라미터 키
	QueryParamPage = "page"

	// QueryParamAdminToken 관리자 세션 토큰용 쿼리 파라미터 키 (레거시)
	// X-Admin-Token 헤더 사용을 권장하며, 쿼리 파라미터 전달 시 경고 로그를 남깁니다.
	QueryParamAdminToken = "admin_token"
)

// API 요청 및 응답에 사용되는 HTTP 헤더 키 상수입니다.
const (
	// HeaderAdminToken 관리자 인증용 HTTP 헤더 키 (권장 방식)
	HeaderAdminToken = "X-Admin-Token"
)

// Context 키 상수입니다.
const (
	// ContextKeyAdminToken 인증된 관리자 세션 토큰 저장용 Context 키
	ContextKeyAdminToken = "authenticated_admin_token"
)

// 보안상 로그에 남길 때 마스킹(가림) 처리해야 할 쿼리 파라미터 목록입니다.
var SensitiveQueryParams = []string{
	QueryParamAdminToken,
	"api_key",
	"password",
	"token",
	"secret",
}
