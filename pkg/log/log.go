// Package log 애플리케이션 전역 로깅 시스템을 제공합니다.
//
// logrus를 기반으로 하며, 모든 로그에 component 필드를 일관되게 추가하기 위한
// 헬퍼 함수와 파일 로테이션(lumberjack)을 포함한 초기화 함수를 제공합니다.
package log

import (
	log "github.com/sirupsen/logrus"
)

// WithComponent component 필드를 포함한 로그 Entry를 반환합니다.
// 모든 로그에 component 필드를 일관되게 추가하기 위해 사용합니다.
func WithComponent(component string) *log.Entry {
	return log.WithFields(log.Fields{
		"component": component,
	})
}

// WithComponentAndFields component 필드와 추가 필드를 포함한 로그 Entry를 반환합니다.
func WithComponentAndFields(component string, fields log.Fields) *log.Entry {
	newFields := make(log.Fields, len(fields)+1)
	for k, v := range fields {
		newFields[k] = v
	}
	newFields["component"] = component
	return log.WithFields(newFields)
}

// WithFields 지정된 필드를 포함한 로그 Entry를 반환합니다.
func WithFields(fields log.Fields) *log.Entry {
	return log.WithFields(fields)
}

// WithField 단일 필드를 포함한 로그 Entry를 반환합니다.
func WithField(key string, value any) *log.Entry {
	return log.WithField(key, value)
}

// WithError error 필드를 포함한 로그 Entry를 반환합니다.
func WithError(err error) *log.Entry {
	return log.WithError(err)
}

// SetDebugMode 디버그 모드 여부에 따라 전역 로그 레벨을 조정합니다.
func SetDebugMode(debug bool) {
	if debug {
		log.SetLevel(log.TraceLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}

// StandardLogger 전역 logrus 로거 인스턴스를 반환합니다.
// Echo 프레임워크의 로거 어댑터 등 로거 객체 자체가 필요한 곳에서 사용합니다.
func StandardLogger() *log.Logger {
	return log.StandardLogger()
}
