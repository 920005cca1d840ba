/*
Package validation 애플리케이션 전반에서 사용되는 입력 데이터의 유효성을 검사하는 기능을 제공합니다.

이 패키지는 외부 입력값(설정 파일, API 요청 등)에 대한 신뢰성을 보장하기 위해 설계되었으며,
가능한 한 표준(Standard)과 보안 권장 사항을 엄격하게 준수하는 것을 목표로 합니다.

주요 기능:

  - CORS (Cross-Origin Resource Sharing) Origin 검증
  - 네트워크 포트 및 호스트명 검증
  - 이미지 URL 검증

사용 시 주의사항:

  - 모든 검증 함수는 유효하지 않은 입력에 대해 명확한 error를 반환합니다.
  - 패키지 내 함수들은 스레드 안전(Thread-Safe)하도록 설계되었습니다.
*/
package validation

import (
	"fmt"
	"net"
	"net/url"
	"strings"
)

// ValidatePort 포트 번호가 유효한 범위(1-65535) 내에 있는지 검증합니다.
func ValidatePort(port int) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("유효한 포트 범위(1-65535)가 아닙니다 (port=%d)", port)
	}
	return nil
}

// ValidateHostname 호스트명이 RFC 1123 표준을 준수하는지, 또는 IP 주소/로컬호스트인지 검증합니다.
//
// 규칙:
//   - localhost 허용
//   - 유효한 IPv4 및 IPv6 주소 허용
//   - 도메인명은 RFC 1123 규칙을 따름 (최대 253자, 레이블당 63자, 영문/숫자/하이픈)
func ValidateHostname(host string) error {
	if host == "localhost" {
		return nil
	}

	if ip := net.ParseIP(host); ip != nil {
		return nil
	}

	if len(host) > 253 {
		return fmt.Errorf("호스트명 전체 길이는 253자를 초과할 수 없습니다 (len=%d)", len(host))
	}

	labels := strings.Split(host, ".")
	for _, label := range labels {
		if len(label) == 0 {
			return fmt.Errorf("호스트명에 빈 레이블(연속된 점 등)이 포함되어 있습니다 (host=%q)", host)
		}
		if len(label) > 63 {
			return fmt.Errorf("각 레이블은 63자를 초과할 수 없습니다 (label=%q)", label)
		}
		if label[0] == '-' || label[len(label)-1] == '-' {
			return fmt.Errorf("레이블은 하이픈(-)으로 시작하거나 끝날 수 없습니다 (label=%q)", label)
		}

		for _, r := range label {
			if !((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-') {
				return fmt.Errorf("레이블에 허용되지 않는 문자가 포함되어 있습니다 (label=%q)", label)
			}
		}
	}

	return nil
}

// ValidateImageURL 이미지 참조 문자열의 유효성을 검사합니다.
//
// http(s) URL 또는 이미지 데이터 URI(data:image/...)만 허용됩니다.
func ValidateImageURL(ref string) error {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return fmt.Errorf("이미지 URL은 비어있을 수 없습니다")
	}

	if strings.HasPrefix(ref, "data:image/") {
		return nil
	}

	parsedURL, err := url.Parse(ref)
	if err != nil {
		return fmt.Errorf("이미지 URL 파싱 실패: 유효한 URL 형식이 아닙니다 (input=%q): %w", ref, err)
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("이미지 URL은 http(s) URL 또는 이미지 데이터 URI만 허용됩니다 (input=%q)", ref)
	}

	if parsedURL.Host == "" {
		return fmt.Errorf("이미지 URL에 호스트(Host) 정보가 누락되었습니다 (input=%q)", ref)
	}

	return nil
}
