package log

// NewProductionConfig 운영(Production) 환경에 최적화된 로그 설정을 반환합니다.
func NewProductionConfig(appName string) Options {
	return Options{
		AppName:          appName,
		Level:            InfoLevel,
		EnableConsoleLog: false, // 파일 중심 로깅
		EnableFileLog:    true,
		MaxAgeDays:       30, // 30일 보관
	}
}

// NewDevelopmentConfig 개발(Development) 환경에 최적화된 로그 설정을 반환합니다.
func NewDevelopmentConfig(appName string) Options {
	return Options{
		AppName:          appName,
		Level:            TraceLevel,
		EnableConsoleLog: true, // 터미널 출력 활성화
		EnableFileLog:    true,
		MaxAgeDays:       1, // 가볍게 1일만 보관
	}
}
