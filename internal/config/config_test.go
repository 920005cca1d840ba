package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/darkkaiser/catalog-server/internal/pkg/errors"
)

// writeConfigFile 임시 디렉터리에 설정 파일을 생성하고 경로를 반환합니다.
func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), DefaultFilename)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const minimalConfig = `{
	"catalog_api": {
		"ws": {
			"listen_port": 8080
		},
		"cors": {
			"allow_origins": ["*"]
		}
	}
}`

// TestLoadWithFile은 설정 파일 로드와 기본값 적용을 검증합니다.
func TestLoadWithFile(t *testing.T) {
	t.Run("최소 설정 파일 로드 시 기본값이 적용된다", func(t *testing.T) {
		cfg, err := LoadWithFile(writeConfigFile(t, minimalConfig))
		require.NoError(t, err)

		assert.Equal(t, DefaultPageSize, cfg.Catalog.PageSize)
		assert.Equal(t, DefaultAdminPassword, cfg.Admin.Password)
		assert.Equal(t, 30*time.Minute, cfg.Admin.SessionTTLDuration())
		assert.Equal(t, 8080, cfg.CatalogAPI.WS.ListenPort)
		assert.False(t, cfg.Notifiers.Telegram.Enabled)
	})

	t.Run("설정 파일의 값이 기본값을 덮어쓴다", func(t *testing.T) {
		cfg, err := LoadWithFile(writeConfigFile(t, `{
			"debug": true,
			"catalog": {
				"page_size": 24
			},
			"admin": {
				"password": "super-secret-password",
				"session_ttl": "1h"
			},
			"catalog_api": {
				"ws": {
					"listen_port": 9090
				},
				"cors": {
					"allow_origins": ["https://store.example.com"]
				}
			}
		}`))
		require.NoError(t, err)

		assert.True(t, cfg.Debug)
		assert.Equal(t, 24, cfg.Catalog.PageSize)
		assert.Equal(t, "super-secret-password", cfg.Admin.Password)
		assert.Equal(t, time.Hour, cfg.Admin.SessionTTLDuration())
		assert.Equal(t, []string{"https://store.example.com"}, cfg.CatalogAPI.CORS.AllowOrigins)
	})

	t.Run("환경 변수가 설정 파일의 값을 덮어쓴다", func(t *testing.T) {
		t.Setenv("CATALOG_ADMIN__PASSWORD", "env-override-password")
		t.Setenv("CATALOG_CATALOG__PAGE_SIZE", "5")

		cfg, err := LoadWithFile(writeConfigFile(t, minimalConfig))
		require.NoError(t, err)

		assert.Equal(t, "env-override-password", cfg.Admin.Password)
		assert.Equal(t, 5, cfg.Catalog.PageSize)
	})

	t.Run("존재하지 않는 설정 파일은 System 오류를 반환한다", func(t *testing.T) {
		_, err := LoadWithFile(filepath.Join(t.TempDir(), "no-such-config.json"))
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.System))
	})

	t.Run("구조체에 정의되지 않은 필드는 거부된다", func(t *testing.T) {
		_, err := LoadWithFile(writeConfigFile(t, `{
			"unknown_field": true,
			"catalog_api": {
				"ws": {"listen_port": 8080},
				"cors": {"allow_origins": ["*"]}
			}
		}`))
		require.Error(t, err)
	})
}

// TestLoadWithFile_Validation은 설정 값 유효성 검증을 검증합니다.
func TestLoadWithFile_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			"페이지 크기 범위 초과",
			`{
				"catalog": {"page_size": 101},
				"catalog_api": {"ws": {"listen_port": 8080}, "cors": {"allow_origins": ["*"]}}
			}`,
		},
		{
			"짧은 관리자 비밀번호",
			`{
				"admin": {"password": "short", "session_ttl": "30m"},
				"catalog_api": {"ws": {"listen_port": 8080}, "cors": {"allow_origins": ["*"]}}
			}`,
		},
		{
			"잘못된 세션 유효 시간",
			`{
				"admin": {"password": "valid-password", "session_ttl": "half an hour"},
				"catalog_api": {"ws": {"listen_port": 8080}, "cors": {"allow_origins": ["*"]}}
			}`,
		},
		{
			"존재하지 않는 시드 파일",
			`{
				"catalog": {"seed_file": "/no/such/products.json"},
				"catalog_api": {"ws": {"listen_port": 8080}, "cors": {"allow_origins": ["*"]}}
			}`,
		},
		{
			"범위를 벗어난 포트",
			`{
				"catalog_api": {"ws": {"listen_port": 70000}, "cors": {"allow_origins": ["*"]}}
			}`,
		},
		{
			"비어있는 CORS 목록",
			`{
				"catalog_api": {"ws": {"listen_port": 8080}, "cors": {"allow_origins": []}}
			}`,
		},
		{
			"와일드카드와 도메인 혼용",
			`{
				"catalog_api": {"ws": {"listen_port": 8080}, "cors": {"allow_origins": ["*", "https://example.com"]}}
			}`,
		},
		{
			"잘못된 CORS Origin 형식",
			`{
				"catalog_api": {"ws": {"listen_port": 8080}, "cors": {"allow_origins": ["example.com/path"]}}
			}`,
		},
		{
			"토큰 없이 활성화된 텔레그램 알림",
			`{
				"notifiers": {"telegram": {"enabled": true}},
				"catalog_api": {"ws": {"listen_port": 8080}, "cors": {"allow_origins": ["*"]}}
			}`,
		},
		{
			"잘못된 텔레그램 봇 토큰 형식",
			`{
				"notifiers": {"telegram": {"enabled": true, "bot_token": "not-a-token", "chat_id": 1}},
				"catalog_api": {"ws": {"listen_port": 8080}, "cors": {"allow_origins": ["*"]}}
			}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadWithFile(writeConfigFile(t, tt.content))
			require.Error(t, err)
			assert.True(t, apperrors.Is(err, apperrors.InvalidInput))
		})
	}

	t.Run("유효한 텔레그램 알림 설정", func(t *testing.T) {
		cfg, err := LoadWithFile(writeConfigFile(t, `{
			"notifiers": {
				"telegram": {
					"enabled": true,
					"bot_token": "123456789:ABC-DEF1234ghIkl-zyx57W2v1u123ew11",
					"chat_id": 123456789
				}
			},
			"catalog_api": {"ws": {"listen_port": 8080}, "cors": {"allow_origins": ["*"]}}
		}`))
		require.NoError(t, err)
		assert.True(t, cfg.Notifiers.Telegram.Enabled)
	})

	t.Run("시드 파일이 존재하면 통과한다", func(t *testing.T) {
		seedPath := filepath.Join(t.TempDir(), "products.json")
		require.NoError(t, os.WriteFile(seedPath, []byte("[]"), 0o644))

		cfg, err := LoadWithFile(writeConfigFile(t, `{
			"catalog": {"seed_file": "`+seedPath+`"},
			"catalog_api": {"ws": {"listen_port": 8080}, "cors": {"allow_origins": ["*"]}}
		}`))
		require.NoError(t, err)
		assert.Equal(t, seedPath, cfg.Catalog.SeedFile)
	})
}

// TestAppConfig_VerifyRecommendations는 권장 설정 진단을 검증합니다.
func TestAppConfig_VerifyRecommendations(t *testing.T) {
	t.Run("기본 비밀번호와 예약 포트 사용 시 경고를 반환한다", func(t *testing.T) {
		cfg, err := LoadWithFile(writeConfigFile(t, `{
			"catalog_api": {"ws": {"listen_port": 443}, "cors": {"allow_origins": ["*"]}}
		}`))
		require.NoError(t, err)

		warnings := cfg.VerifyRecommendations()
		require.Len(t, warnings, 2)
		assert.Contains(t, warnings[0], "기본값")
		assert.Contains(t, warnings[1], "예약 포트")
	})

	t.Run("권장 설정 준수 시 경고가 없다", func(t *testing.T) {
		cfg, err := LoadWithFile(writeConfigFile(t, `{
			"admin": {"password": "super-secret-password", "session_ttl": "30m"},
			"catalog_api": {"ws": {"listen_port": 8080}, "cors": {"allow_origins": ["*"]}}
		}`))
		require.NoError(t, err)

		assert.Empty(t, cfg.VerifyRecommendations())
	})
}
