// Package version 애플리케이션의 빌드 및 버저닝 정보를 관리하는 패키지입니다.
//
// 빌드 시점에 링커 플래그(-ldflags)를 통해 주입된 메타데이터(버전, 빌드 시간 등)와
// 실행 시점의 환경 정보(Go 버전, OS, 아키텍처)를 통합하여 제공합니다.
package version

import (
	"fmt"
	"runtime"
	"strings"
)

const unknown = "unknown"

// 다음 변수들은 빌드 시점에 링커 플래그(ldflags)를 통해 주입됩니다.
// 애플리케이션 로직에서는 직접 접근하지 말고 Get() 함수를 통해 조회해야 합니다.
var (
	appVersion  = "" // 애플리케이션 버전 (예: v1.0.1-15-gf25b8bf)
	buildDate   = "" // 빌드 수행 시간
	buildNumber = "" // CI/CD 파이프라인 빌드 번호
)

// Info 애플리케이션의 빌드 정보를 담고 있습니다.
//
// 주로 /version API 엔드포인트나 기동 시 로그 출력에 사용됩니다.
type Info struct {
	Version     string `json:"version"`      // 애플리케이션의 버전
	BuildDate   string `json:"build_date"`   // 빌드 날짜 (ISO 8601 형식 권장)
	BuildNumber string `json:"build_number"` // CI/CD 빌드 번호
	GoVersion   string `json:"go_version"`   // 빌드에 사용된 Go 컴파일러 버전
	OS          string `json:"os"`           // 실행 중인 운영체제
	Arch        string `json:"arch"`         // 실행 중인 시스템 아키텍처
}

// Get 애플리케이션의 빌드 정보를 반환합니다.
// 주입되지 않은 필드는 "unknown"으로 채워집니다.
func Get() Info {
	return Info{
		Version:     orUnknown(appVersion),
		BuildDate:   orUnknown(buildDate),
		BuildNumber: orUnknown(buildNumber),
		GoVersion:   runtime.Version(),
		OS:          runtime.GOOS,
		Arch:        runtime.GOARCH,
	}
}

// String 로그 출력용 한 줄 요약을 반환합니다.
func (i Info) String() string {
	return fmt.Sprintf("버전: %s, 빌드 날짜: %s, 빌드 번호: %s (%s, %s/%s)",
		i.Version, i.BuildDate, i.BuildNumber, i.GoVersion, i.OS, i.Arch)
}

func orUnknown(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return unknown
	}
	return s
}
