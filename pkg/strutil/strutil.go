// Package strutil은 문자열 처리를 위한 다양한 유틸리티 함수들을 제공합니다.
package strutil

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeSpaces 문자열의 앞뒤 공백을 제거하고 연속된 공백을 하나로 축약합니다.
// 예: "  hello   world  " -> "hello world"
func NormalizeSpaces(s string) string {
	return strings.Join(strings.Fields(strings.TrimSpace(s)), " ")
}

// ContainsFold 대상 문자열이 부분 문자열을 포함하는지 대소문자 구분 없이 확인합니다.
//
// 비교 전 양쪽 문자열을 유니코드 NFC 형식으로 정규화합니다.
// 베트남어 상품명처럼 같은 글자가 조합형/완성형 두 가지 바이트 표현을 가질 수 있는 경우,
// 정규화 없이 바이트 단위로 비교하면 동일한 텍스트를 찾지 못하기 때문입니다.
// 예: "Điện thoại"의 "Đ"는 U+0110 단일 코드포인트 또는 D+U+0336 조합으로 표현될 수 있습니다.
func ContainsFold(s, substr string) bool {
	if substr == "" {
		return true
	}

	normalized := strings.ToLower(norm.NFC.String(s))
	target := strings.ToLower(norm.NFC.String(substr))

	return strings.Contains(normalized, target)
}

// Integer 모든 정수 타입을 포괄하는 제네릭 인터페이스
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// FormatCommas 숫자를 천 단위 구분 기호(,)가 포함된 문자열로 변환합니다.
// 예: 1234567 -> "1,234,567"
func FormatCommas[T Integer](num T) string {
	str := fmt.Sprintf("%d", num)

	// 음수 처리 (문자열 기반으로 판단)
	startOffset := 0
	if strings.HasPrefix(str, "-") {
		startOffset = 1
	}

	// 콤마가 필요 없는 경우 (3자리 이하)
	if len(str)-startOffset <= 3 {
		return str
	}

	var builder strings.Builder

	// 예상 크기 미리 할당: 원래 길이 + 콤마 개수
	commaCount := (len(str) - startOffset - 1) / 3
	builder.Grow(len(str) + commaCount)

	if startOffset == 1 {
		builder.WriteByte('-')
		str = str[1:]
	}

	// 첫 번째 그룹 (1~3자리)
	firstGroupLen := len(str) % 3
	if firstGroupLen == 0 {
		firstGroupLen = 3
	}

	builder.WriteString(str[:firstGroupLen])

	// 나머지 그룹들 (3자리씩)
	for i := firstGroupLen; i < len(str); i += 3 {
		builder.WriteByte(',')
		builder.WriteString(str[i : i+3])
	}

	return builder.String()
}

// MaskSensitiveData 민감한 정보를 마스킹합니다.
// 토큰, 키 등의 민감 정보를 안전하게 로깅하기 위해 사용합니다.
func MaskSensitiveData(data string) string {
	if data == "" {
		return ""
	}

	// 3자 이하는 전체 마스킹
	if len(data) <= 3 {
		return "***"
	}

	// 앞 4자만 표시하고 나머지는 마스킹
	if len(data) <= 12 {
		return data[:4] + "***"
	}

	// 긴 토큰은 앞 4자 + 마스킹 + 뒤 4자
	return data[:4] + "***" + data[len(data)-4:]
}
