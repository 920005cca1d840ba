// Package handler v1 API의 HTTP 요청 핸들러를 제공합니다.
//
// 이 패키지는 HTTP 요청을 받아 검증하고, 카탈로그 비즈니스 로직을 호출한 후,
// 적절한 HTTP 응답을 반환하는 핸들러 함수들을 포함합니다.
package handler

import (
	"github.com/darkkaiser/catalog-server/internal/service/api/auth"
	"github.com/darkkaiser/catalog-server/internal/service/api/constants"
	"github.com/darkkaiser/catalog-server/internal/service/catalog"
	applog "github.com/darkkaiser/catalog-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// Handler v1 API 요청을 처리하고 카탈로그 비즈니스 로직을 연결하는 핸들러입니다.
//
// 이 구조체는 다음 역할을 수행합니다:
//   - HTTP 요청 바인딩 및 검증
//   - 카탈로그 조회/변경 로직 호출
//   - 관리자 세션 발급/폐기 처리
//   - HTTP 응답 생성
//
// Handler는 의존성 주입을 통해 생성되며, 카탈로그 컨트롤러와
// 관리자 세션 게이트를 주입받습니다.
type Handler struct {
	// catalog 상품 카탈로그의 조회와 변경을 담당하는 컨트롤러
	catalog *catalog.Catalog

	// gate 관리자 세션의 발급/검증/폐기를 담당하는 게이트
	gate *auth.Gate

	// notifier 관리자 로그인/로그아웃 이벤트 알림 발송용 (nil 허용)
	notifier catalog.Notifier

	// pageSize 상품 목록 조회 시 페이지당 항목 수
	pageSize int
}

// NewHandler Handler 인스턴스를 생성합니다.
//
// notifier는 알림 서비스를 사용하지 않는 구성에서 nil일 수 있습니다.
//
// Panics:
//   - ctl 또는 gate가 nil인 경우
func NewHandler(ctl *catalog.Catalog, gate *auth.Gate, notifier catalog.Notifier, pageSize int) *Handler {
	if ctl == nil {
		panic(constants.PanicMsgCatalogRequired)
	}
	if gate == nil {
		panic(constants.PanicMsgAdminGateRequired)
	}

	return &Handler{
		catalog: ctl,

		gate: gate,

		notifier: notifier,

		pageSize: pageSize,
	}
}

// log 공통 로깅 필드가 설정된 로거 엔트리를 반환합니다.
func (h *Handler) log(c echo.Context) *applog.Entry {
	return applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint": c.Path(),
	})
}

// notify 알림 발송을 요청합니다. 실패해도 원래 작업은 성공으로 처리되며 로그만 남깁니다.
func (h *Handler) notify(c echo.Context, message string) {
	if h.notifier == nil {
		return
	}

	if err := h.notifier.NotifyDefault(message); err != nil {
		h.log(c).WithField("error", err).Error("알림 메시지 큐 적재 실패")
	}
}
