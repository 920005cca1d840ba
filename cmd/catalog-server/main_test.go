package main

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/darkkaiser/catalog-server/internal/config"
	"github.com/darkkaiser/catalog-server/internal/pkg/version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAppMetadata는 애플리케이션의 기본 메타데이터 설정이 올바른지 검증합니다.
func TestAppMetadata(t *testing.T) {
	t.Parallel()

	t.Run("AppName 검증", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "catalog-server", config.AppName, "애플리케이션 이름은 'catalog-server'여야 합니다")
		assert.NotContains(t, config.AppName, " ", "애플리케이션 이름에는 공백이 포함될 수 없습니다")
	})

	t.Run("ConfigFileName 검증", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "catalog-server.json", config.DefaultFilename)
	})
}

// TestBanner는 서버 시작 시 출력되는 배너의 형식과 내용이 올바른지 검증합니다.
func TestBanner(t *testing.T) {
	t.Parallel()

	t.Run("템플릿 형식 검증", func(t *testing.T) {
		t.Parallel()
		assert.Contains(t, banner, "%s", "배너 템플릿에는 버전 포맷팅을 위한 '%s'가 포함되어야 합니다")
		assert.Contains(t, banner, "DarkKaiser", "배너에는 개발자/조직명(DarkKaiser)이 포함되어야 합니다")
	})

	t.Run("출력 포맷팅 검증", func(t *testing.T) {
		t.Parallel()
		v := version.Get().Version
		output := fmt.Sprintf(banner, v)
		assert.Contains(t, output, v, "최종 출력된 배너에는 실제 버전 정보가 포함되어야 합니다")
		assert.NotContains(t, output, "%s", "최종 출력된 배너에는 포맷 지정자가 남아있지 않아야 합니다")
	})
}

// TestLoadAppConfig는 설정 파일 로드 로직을 Table-Driven 방식으로 검증합니다.
func TestLoadAppConfig(t *testing.T) {
	t.Parallel()

	type validateFunc func(*testing.T, *config.AppConfig)

	tests := []struct {
		name        string
		fileContent string
		wantErr     bool
		validate    validateFunc
	}{
		{
			name: "Success_ValidConfig",
			fileContent: `{
				"debug": true,
				"catalog": { "page_size": 8 },
				"admin": { "password": "super-secret-1", "session_ttl": "1h" },
				"catalog_api": {
					"ws": { "tls_server": false, "listen_port": 18080 },
					"cors": { "allow_origins": ["*"] }
				}
			}`,
			wantErr: false,
			validate: func(t *testing.T, c *config.AppConfig) {
				assert.True(t, c.Debug)
				assert.Equal(t, 8, c.Catalog.PageSize)
				assert.Equal(t, "super-secret-1", c.Admin.Password)
				assert.Equal(t, time.Hour, c.Admin.SessionTTLDuration())
				assert.Equal(t, 18080, c.CatalogAPI.WS.ListenPort)
			},
		},
		{
			name: "Success_DefaultsApplied",
			fileContent: `{
				"catalog_api": {
					"ws": { "listen_port": 18080 },
					"cors": { "allow_origins": ["*"] }
				}
			}`,
			wantErr: false,
			validate: func(t *testing.T, c *config.AppConfig) {
				assert.Equal(t, config.DefaultPageSize, c.Catalog.PageSize)
				assert.Equal(t, config.DefaultAdminPassword, c.Admin.Password)
				assert.Equal(t, config.DefaultSessionTTL, c.Admin.SessionTTL)
			},
		},
		{
			name:        "Error_InvalidJSON",
			fileContent: `{"debug": true, "broken_json...`,
			wantErr:     true,
		},
		{
			name:        "Error_EmptyJSON",
			fileContent: "{}",
			// 필수값(listen_port) 누락으로 유효성 검증에서 실패함
			wantErr: true,
		},
		{
			name: "Error_UnknownField",
			fileContent: `{
				"unknown_field": true,
				"catalog_api": {
					"ws": { "listen_port": 18080 },
					"cors": { "allow_origins": ["*"] }
				}
			}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := createTempConfigFile(t, tt.fileContent)

			cfg, err := config.LoadWithFile(f)

			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				require.NotNil(t, cfg)
				if tt.validate != nil {
					tt.validate(t, cfg)
				}
			}
		})
	}
}

// TestLoadAppConfig_FileNotFound는 파일이 존재하지 않는 경우를 별도로 테스트합니다.
func TestLoadAppConfig_FileNotFound(t *testing.T) {
	t.Parallel()

	nonExistentFile := filepath.Join(t.TempDir(), "ghost_config.json")
	cfg, err := config.LoadWithFile(nonExistentFile)

	assert.Error(t, err)
	assert.Nil(t, cfg)
}

// createTempConfigFile은 t.TempDir()을 사용하여 안전하게 임시 파일을 생성합니다.
func createTempConfigFile(t *testing.T, content string) string {
	t.Helper()

	filePath := filepath.Join(t.TempDir(), "catalog-server.json")
	require.NoError(t, os.WriteFile(filePath, []byte(content), 0644), "임시 파일 생성 실패")

	return filePath
}
