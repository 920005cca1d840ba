// Package system 시스템 엔드포인트 핸들러를 제공합니다.
//
// 헬스체크, 버전 정보 등 인증이 필요 없는 시스템 수준의 API를 처리합니다.
package system

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/darkkaiser/catalog-server/internal/pkg/version"
	"github.com/darkkaiser/catalog-server/internal/service/api/constants"
	"github.com/darkkaiser/catalog-server/internal/service/api/model/system"
	"github.com/darkkaiser/catalog-server/internal/service/catalog"
	applog "github.com/darkkaiser/catalog-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// HealthChecker 외부 의존성의 가동 상태 확인 인터페이스입니다.
type HealthChecker interface {
	Health() error
}

// Handler 시스템 엔드포인트 핸들러 (헬스체크, 버전 정보)
type Handler struct {
	notificationHealth HealthChecker

	catalog *catalog.Catalog

	buildInfo version.Info

	serverStartTime time.Time
}

// NewHandler Handler 인스턴스를 생성합니다.
// notificationHealth는 알림 서비스를 사용하지 않는 구성에서 nil일 수 있습니다.
func NewHandler(ctl *catalog.Catalog, notificationHealth HealthChecker, buildInfo version.Info) *Handler {
	if ctl == nil {
		panic(constants.PanicMsgCatalogRequired)
	}

	return &Handler{
		notificationHealth: notificationHealth,

		catalog: ctl,

		buildInfo: buildInfo,

		serverStartTime: time.Now(),
	}
}

// HealthCheckHandler 서버와 외부 의존성의 상태를 반환합니다.
//
// 인증 없이 호출 가능하며, 모니터링 시스템에서 사용됩니다.
//
// 응답 필드:
//   - status: 전체 서버 상태 (healthy, unhealthy)
//   - uptime: 서버 가동 시간(초)
//   - dependencies: 외부 의존성별 상태 (notification_service, catalog_store)
func (h *Handler) HealthCheckHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/health",
		"method":    c.Request().Method,
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgHealthCheck)

	uptime := int64(time.Since(h.serverStartTime).Seconds())

	// 외부 의존성 상태 수집
	deps := make(map[string]system.DependencyStatus)

	// Notification 서비스 상태 확인
	if h.notificationHealth != nil {
		if err := h.notificationHealth.Health(); err != nil {
			deps[constants.DependencyNotificationService] = system.DependencyStatus{
				Status:  constants.HealthStatusUnhealthy,
				Message: err.Error(),
			}
		} else {
			deps[constants.DependencyNotificationService] = system.DependencyStatus{
				Status:  constants.HealthStatusHealthy,
				Message: constants.MsgDepStatusHealthy,
			}
		}
	} else {
		deps[constants.DependencyNotificationService] = system.DependencyStatus{
			Status:  constants.HealthStatusUnhealthy,
			Message: constants.MsgDepStatusNotInitialized,
		}
	}

	// 카탈로그 저장소 상태 확인 (메모리 저장소이므로 항상 정상)
	deps[constants.DependencyCatalogStore] = system.DependencyStatus{
		Status:  constants.HealthStatusHealthy,
		Message: fmt.Sprintf("등록 상품 %d개", h.catalog.ProductCount()),
	}

	// 하나라도 unhealthy면 전체 상태를 unhealthy로 설정
	serverStatus := constants.HealthStatusHealthy
	for _, dep := range deps {
		if dep.Status != constants.HealthStatusHealthy {
			serverStatus = constants.HealthStatusUnhealthy
			break
		}
	}

	return c.JSON(http.StatusOK, system.HealthResponse{
		Status:       serverStatus,
		Uptime:       uptime,
		Dependencies: deps,
	})
}

// VersionHandler 서버의 버전 정보를 반환합니다.
//
// Git 커밋 해시, 빌드 날짜, 빌드 번호, Go 버전을 포함하며
// 디버깅 및 배포 버전 확인에 사용됩니다.
func (h *Handler) VersionHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/version",
		"method":    c.Request().Method,
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgVersionInfo)

	return c.JSON(http.StatusOK, system.VersionResponse{
		Version:     h.buildInfo.Version,
		BuildDate:   h.buildInfo.BuildDate,
		BuildNumber: h.buildInfo.BuildNumber,
		GoVersion:   runtime.Version(),
	})
}
