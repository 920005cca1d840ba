package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	apperrors "github.com/darkkaiser/catalog-server/internal/pkg/errors"
)

const (
	// AppName 애플리케이션의 전역 고유 식별자입니다.
	AppName string = "catalog-server"

	// DefaultFilename 애플리케이션 초기화 시 참조하는 기본 설정 파일명입니다.
	// 실행 인자를 통해 명시적인 경로가 제공되지 않을 경우, 시스템은 이 파일을 탐색하여 구성을 로드합니다.
	DefaultFilename = AppName + ".json"

	// ------------------------------------------------------------------------------------------------
	// 카탈로그 기본값
	// ------------------------------------------------------------------------------------------------

	// DefaultPageSize 상품 목록 한 페이지에 표시되는 상품 개수 기본값
	DefaultPageSize = 10

	// DefaultAdminPassword 관리자 비밀번호 기본값
	//
	// 운영 환경에서는 반드시 설정 파일이나 환경 변수로 교체해야 하며,
	// 기본값 그대로 사용 시 VerifyRecommendations가 경고를 반환합니다.
	DefaultAdminPassword = "thanhvan23"

	// DefaultSessionTTL 관리자 세션의 유효 시간 기본값
	DefaultSessionTTL = "30m"
)

// AppConfig 애플리케이션의 모든 설정을 관장하는 최상위 루트 구조체
type AppConfig struct {
	Debug      bool             `json:"debug"`
	Catalog    CatalogConfig    `json:"catalog"`
	Admin      AdminConfig      `json:"admin"`
	Notifiers  NotifierConfig   `json:"notifiers"`
	CatalogAPI CatalogAPIConfig `json:"catalog_api"`
}

// validate 설정 파일 로드 직후, 각 설정 항목의 정합성과 필수 값의 유효성을 검증합니다.
func (c *AppConfig) validate() error {
	if err := c.Catalog.validate(); err != nil {
		return err
	}

	if err := c.Admin.validate(); err != nil {
		return err
	}

	if err := c.Notifiers.validate(); err != nil {
		return err
	}

	if err := c.CatalogAPI.validate(); err != nil {
		return err
	}

	return nil
}

// VerifyRecommendations 서비스 운영의 안정성과 보안을 위해 권장되는 설정 준수 여부를 진단합니다.
// 강제적인 에러를 발생시키지는 않으나, 잠재적 위험 요소(예: 기본 비밀번호 사용)에 대한 경고 메시지를 반환합니다.
func (c *AppConfig) VerifyRecommendations() []string {
	var warnings []string

	warnings = append(warnings, c.Admin.VerifyRecommendations()...)
	warnings = append(warnings, c.CatalogAPI.VerifyRecommendations()...)

	return warnings
}

// CatalogConfig 상품 카탈로그의 동작을 정의하는 설정 구조체
type CatalogConfig struct {
	PageSize int    `json:"page_size" validate:"min=1,max=100"`
	SeedFile string `json:"seed_file"`
}

func (c *CatalogConfig) validate() error {
	if err := checkStruct(validate, c, "Catalog"); err != nil {
		return err
	}

	if c.SeedFile != "" {
		if _, err := os.Stat(c.SeedFile); err != nil {
			return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("상품 시드 파일(seed_file)을 찾을 수 없습니다: '%s'", c.SeedFile))
		}
	}

	return nil
}

// AdminConfig 관리자 인증 정보를 정의하는 설정 구조체
type AdminConfig struct {
	Password   string `json:"password" validate:"required,min=8"`
	SessionTTL string `json:"session_ttl" validate:"required"`
}

func (c *AdminConfig) validate() error {
	if err := checkStruct(validate, c, "Admin"); err != nil {
		return err
	}

	if _, err := time.ParseDuration(c.SessionTTL); err != nil {
		return apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("관리자 세션 유효 시간(session_ttl) 설정이 올바르지 않습니다: '%s' (예: 30m, 1h)", c.SessionTTL))
	}

	return nil
}

// SessionTTLDuration 관리자 세션의 유효 시간을 time.Duration으로 반환합니다.
// validate를 통과한 설정에서만 호출해야 합니다.
func (c *AdminConfig) SessionTTLDuration() time.Duration {
	d, err := time.ParseDuration(c.SessionTTL)
	if err != nil {
		return 0
	}
	return d
}

func (c *AdminConfig) VerifyRecommendations() []string {
	var warnings []string

	if c.Password == DefaultAdminPassword {
		warnings = append(warnings, "관리자 비밀번호가 기본값 그대로 설정되어 있습니다. 운영 환경에서는 반드시 교체하세요")
	}

	return warnings
}

// NotifierConfig 관리 이벤트 알림 채널을 정의하는 설정 구조체
type NotifierConfig struct {
	Telegram TelegramConfig `json:"telegram"`
}

func (c *NotifierConfig) validate() error {
	if !c.Telegram.Enabled {
		return nil
	}

	return checkStruct(validate, &c.Telegram, "Telegram Notifier")
}

// TelegramConfig 텔레그램 봇 토큰 및 채팅 ID 정보를 담는 설정 구조체
type TelegramConfig struct {
	Enabled  bool   `json:"enabled"`
	BotToken string `json:"bot_token" validate:"required_if=Enabled true,omitempty,telegram_bot_token"`
	ChatID   int64  `json:"chat_id" validate:"required_if=Enabled true"`
}

// CatalogAPIConfig 카탈로그 REST API 서버 설정 구조체
type CatalogAPIConfig struct {
	WS   WSConfig   `json:"ws"`
	CORS CORSConfig `json:"cors"`
}

func (c *CatalogAPIConfig) validate() error {
	if err := c.WS.validate(); err != nil {
		return err
	}

	if err := c.CORS.validate(); err != nil {
		return err
	}

	return nil
}

func (c *CatalogAPIConfig) VerifyRecommendations() []string {
	return c.WS.VerifyRecommendations()
}

// WSConfig 웹 서버의 포트 및 TLS(HTTPS) 보안 설정을 정의하는 구조체
type WSConfig struct {
	TLSServer   bool   `json:"tls_server"`
	TLSCertFile string `json:"tls_cert_file" validate:"required_if=TLSServer true,omitempty,file"`
	TLSKeyFile  string `json:"tls_key_file" validate:"required_if=TLSServer true,omitempty,file"`
	ListenPort  int    `json:"listen_port" validate:"min=1,max=65535"`
}

func (c *WSConfig) validate() error {
	return checkStruct(validate, c, "웹 서버")
}

func (c *WSConfig) VerifyRecommendations() []string {
	var warnings []string

	// 시스템 예약 포트(1024 미만) 사용 경고
	if c.ListenPort < 1024 {
		warnings = append(warnings, fmt.Sprintf("시스템 예약 포트(1-1023)를 사용하도록 설정되었습니다(port: %d). 이 경우 서버 구동 시 관리자 권한이 필요할 수 있습니다", c.ListenPort))
	}

	return warnings
}

// CORSConfig 웹 브라우저의 교차 출처 리소스 공유(CORS) 정책을 설정하는 구조체
type CORSConfig struct {
	AllowOrigins []string `json:"allow_origins" validate:"dive,cors_origin"`
}

func (c *CORSConfig) validate() error {
	if len(c.AllowOrigins) == 0 {
		return apperrors.New(apperrors.InvalidInput, "CORS 허용 도메인(allow_origins) 목록이 비어있습니다")
	}

	for _, origin := range c.AllowOrigins {
		if origin == "*" && len(c.AllowOrigins) > 1 {
			return apperrors.New(apperrors.InvalidInput, "와일드카드(*)는 다른 도메인과 함께 사용할 수 없습니다. 모든 도메인을 허용하려면 와일드카드만 설정하세요")
		}
	}

	return checkStruct(validate, c, "CORS")
}

// Load 기본 설정 파일을 읽어 애플리케이션 설정을 로드합니다.
func Load() (*AppConfig, error) {
	return LoadWithFile(DefaultFilename)
}

// LoadWithFile 지정된 경로의 설정 파일을 읽어 AppConfig 객체를 생성합니다.
func LoadWithFile(filename string) (*AppConfig, error) {
	k := koanf.New(".")

	// 1. 기본값 로드 (가장 낮은 우선순위)
	err := k.Load(confmap.Provider(map[string]interface{}{
		"catalog.page_size": DefaultPageSize,
		"admin.password":    DefaultAdminPassword,
		"admin.session_ttl": DefaultSessionTTL,
	}, "."), nil)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "애플리케이션 기본 설정 로드에 실패했습니다")
	}

	// 2. JSON 설정 파일 로드 (기본값 덮어쓰기)
	if err := k.Load(file.Provider(filename), json.Parser()); err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.Wrap(err, apperrors.System, fmt.Sprintf("설정 파일을 찾을 수 없습니다: '%s'", filename))
		}
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정 파일 로드 중 오류가 발생했습니다: '%s'", filename))
	}

	// 3. 환경 변수 로드 (최우선 순위, JSON 설정 덮어쓰기)
	// 접두사: CATALOG_
	// 구분자: 이중 언더스코어(__)를 점(.)으로 변환 (계층 구조 표현)
	// 예: CATALOG_ADMIN__PASSWORD -> admin.password
	if err := k.Load(env.Provider("CATALOG_", ".", func(s string) string {
		s = strings.TrimPrefix(s, "CATALOG_")
		s = strings.ToLower(s)
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "환경 변수 로드에 실패했습니다")
	}

	// 4. 구조체 언마샬링 (Strict Validation 적용)
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "json",
		DecoderConfig: &mapstructure.DecoderConfig{
			ErrorUnused:      true, // 파일에 존재하지만 구조체에 없는 필드가 있을 경우 에러를 발생시킴
			WeaklyTypedInput: true,
		},
	}
	var appConfig AppConfig
	if err := k.UnmarshalWithConf("", &appConfig, unmarshalConf); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "설정 데이터를 애플리케이션 구조체로 변환하는데 실패했습니다")
	}

	// 5. 유효성 검사 수행 (정합성 체크)
	if err := appConfig.validate(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정 파일('%s')의 유효성 검증에 실패했습니다", filename))
	}

	return &appConfig, nil
}
