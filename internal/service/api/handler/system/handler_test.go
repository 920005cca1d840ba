package system

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"

	apperrors "github.com/darkkaiser/catalog-server/internal/pkg/errors"
	"github.com/darkkaiser/catalog-server/internal/pkg/version"
	"github.com/darkkaiser/catalog-server/internal/service/api/constants"
	"github.com/darkkaiser/catalog-server/internal/service/api/model/system"
	"github.com/darkkaiser/catalog-server/internal/service/catalog"
	"github.com/darkkaiser/catalog-server/internal/service/catalog/idgen"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubHealthChecker 테스트용 HealthChecker 구현체
type stubHealthChecker struct {
	err error
}

func (s *stubHealthChecker) Health() error {
	return s.err
}

func newTestCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	gen, err := idgen.NewSnowflakeGenerator()
	require.NoError(t, err)

	return catalog.NewCatalog(catalog.NewStore(gen), catalog.NewSelection(), catalog.NewBanner(), nil)
}

func TestNewHandler(t *testing.T) {
	t.Parallel()

	t.Run("실패: Catalog가 nil이면 panic 발생", func(t *testing.T) {
		t.Parallel()

		assert.PanicsWithValue(t, constants.PanicMsgCatalogRequired, func() {
			NewHandler(nil, &stubHealthChecker{}, version.Info{})
		})
	})

	t.Run("성공: notificationHealth가 nil이어도 생성 가능", func(t *testing.T) {
		t.Parallel()

		h := NewHandler(newTestCatalog(t), nil, version.Info{})
		assert.NotNil(t, h)
	})
}

func TestHealthCheckHandler(t *testing.T) {
	t.Parallel()

	newContext := func() (echo.Context, *httptest.ResponseRecorder) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()
		return e.NewContext(req, rec), rec
	}

	t.Run("성공: 모든 의존성이 정상이면 healthy 반환", func(t *testing.T) {
		t.Parallel()

		h := NewHandler(newTestCatalog(t), &stubHealthChecker{}, version.Info{})
		c, rec := newContext()

		require.NoError(t, h.HealthCheckHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp system.HealthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, constants.HealthStatusHealthy, resp.Status)
		assert.Equal(t, constants.HealthStatusHealthy, resp.Dependencies[constants.DependencyNotificationService].Status)
		assert.Equal(t, constants.HealthStatusHealthy, resp.Dependencies[constants.DependencyCatalogStore].Status)
		assert.GreaterOrEqual(t, resp.Uptime, int64(0))
	})

	t.Run("성공: 알림 서비스가 비정상이면 전체 상태도 unhealthy", func(t *testing.T) {
		t.Parallel()

		checker := &stubHealthChecker{err: apperrors.New(apperrors.Unavailable, "Notification 서비스가 중지된 상태입니다")}
		h := NewHandler(newTestCatalog(t), checker, version.Info{})
		c, rec := newContext()

		require.NoError(t, h.HealthCheckHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp system.HealthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, constants.HealthStatusUnhealthy, resp.Status)
		assert.Equal(t, constants.HealthStatusUnhealthy, resp.Dependencies[constants.DependencyNotificationService].Status)
		assert.Contains(t, resp.Dependencies[constants.DependencyNotificationService].Message, "중지된 상태")
	})

	t.Run("성공: 알림 서비스가 초기화되지 않은 경우 unhealthy", func(t *testing.T) {
		t.Parallel()

		h := NewHandler(newTestCatalog(t), nil, version.Info{})
		c, rec := newContext()

		require.NoError(t, h.HealthCheckHandler(c))

		var resp system.HealthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, constants.HealthStatusUnhealthy, resp.Status)
		assert.Equal(t, constants.MsgDepStatusNotInitialized, resp.Dependencies[constants.DependencyNotificationService].Message)
	})
}

func TestVersionHandler(t *testing.T) {
	t.Parallel()

	buildInfo := version.Info{
		Version:     "1.2.3",
		BuildDate:   "2026-08-31T00:00:00Z",
		BuildNumber: "42",
	}
	h := NewHandler(newTestCatalog(t), &stubHealthChecker{}, buildInfo)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/version", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.VersionHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp system.VersionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "1.2.3", resp.Version)
	assert.Equal(t, "2026-08-31T00:00:00Z", resp.BuildDate)
	assert.Equal(t, "42", resp.BuildNumber)
	assert.Equal(t, runtime.Version(), resp.GoVersion)
}
