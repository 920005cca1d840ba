package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	// 생성되는 로그 파일의 기본 확장자
	fileExt = "log"

	// 기본 로그 로테이션 정책
	defaultMaxSizeMB  = 100 // 로그 파일 하나당 최대 크기 (단위: MB)
	defaultMaxBackups = 20  // 로테이션 된 로그 파일의 최대 보관 개수
	defaultMaxAgeDays = 30  // 로테이션 된 로그 파일의 최대 보관 일수
)

// Options 로깅 시스템 초기화 옵션입니다.
type Options struct {
	// AppName 로그 파일명의 접두사로 사용되는 애플리케이션 이름입니다.
	AppName string

	// Dir 로그 파일이 저장될 디렉토리 경로입니다. 비어있으면 "logs"를 사용합니다.
	Dir string

	// Level 최소 로그 레벨입니다. 0(Panic)인 경우 Info 레벨을 기본값으로 사용합니다.
	Level Level

	// EnableConsoleLog 파일과 함께 표준 출력(stdout)으로도 로그를 출력할지 여부입니다.
	EnableConsoleLog bool

	// EnableFileLog 로그 파일 출력 활성화 여부입니다.
	// 테스트 환경 등 파일 출력이 불필요한 경우 비활성화할 수 있습니다.
	EnableFileLog bool

	// MaxSizeMB 로그 파일 하나당 최대 크기입니다. 0이면 기본값(100MB)을 사용합니다.
	MaxSizeMB int

	// MaxBackups 로테이션 된 로그 파일의 최대 보관 개수입니다. 0이면 기본값(20개)을 사용합니다.
	MaxBackups int

	// MaxAgeDays 로테이션 된 로그 파일의 최대 보관 일수입니다. 0이면 기본값(30일)을 사용합니다.
	MaxAgeDays int
}

// Validate 옵션 값의 유효성을 검사합니다.
func (o Options) Validate() error {
	if o.EnableFileLog && o.AppName == "" {
		return fmt.Errorf("파일 로깅 활성화 시 AppName은 필수입니다")
	}
	if o.MaxSizeMB < 0 {
		return fmt.Errorf("MaxSizeMB는 음수일 수 없습니다: %d", o.MaxSizeMB)
	}
	if o.MaxBackups < 0 {
		return fmt.Errorf("MaxBackups는 음수일 수 없습니다: %d", o.MaxBackups)
	}
	if o.MaxAgeDays < 0 {
		return fmt.Errorf("MaxAgeDays는 음수일 수 없습니다: %d", o.MaxAgeDays)
	}
	return nil
}

// Setup 전역 로깅 시스템을 초기화하고 설정된 옵션에 따라 출력을 구성합니다.
//
// 파일 로깅이 활성화된 경우 lumberjack을 통해 로그 파일 로테이션이 수행됩니다.
// 반환된 Closer는 반드시 defer를 통해 리소스가 해제되도록 보장해야 합니다.
func Setup(opts Options) (io.Closer, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("유효하지 않은 로그 설정: %w", err)
	}

	// 로그 레벨 설정
	level := opts.Level
	if level == 0 {
		level = InfoLevel
	}
	logrus.SetLevel(level)

	// TTY가 아니어도 타임스탬프를 항상 출력 (ISO8601 표준)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	var writers []io.Writer
	var fileWriter io.Closer

	if opts.EnableConsoleLog {
		writers = append(writers, os.Stdout)
	}

	if opts.EnableFileLog {
		logDir := opts.Dir
		if logDir == "" {
			logDir = "logs"
		}

		// 로그 디렉토리 생성
		if err := os.MkdirAll(logDir, 0755); err != nil {
			return nil, fmt.Errorf("로그 디렉토리 생성 실패: %w", err)
		}

		maxSize := opts.MaxSizeMB
		if maxSize == 0 {
			maxSize = defaultMaxSizeMB
		}
		maxBackups := opts.MaxBackups
		if maxBackups == 0 {
			maxBackups = defaultMaxBackups
		}
		maxAge := opts.MaxAgeDays
		if maxAge == 0 {
			maxAge = defaultMaxAgeDays
		}

		rotator := &lumberjack.Logger{
			Filename:   filepath.Join(logDir, fmt.Sprintf("%s.%s", opts.AppName, fileExt)),
			MaxSize:    maxSize,
			MaxBackups: maxBackups,
			MaxAge:     maxAge,
			LocalTime:  true,
		}

		writers = append(writers, rotator)
		fileWriter = rotator
	}

	// 출력 대상이 하나도 없는 경우 로그를 폐기합니다. (테스트 환경 등)
	if len(writers) == 0 {
		logrus.SetOutput(io.Discard)
	} else {
		logrus.SetOutput(io.MultiWriter(writers...))
	}

	return &closer{fileWriter: fileWriter}, nil
}

// SetOutput 전역 로거의 출력 대상을 변경합니다.
// 주로 테스트에서 로그 출력을 버퍼로 캡처하기 위해 사용합니다.
func SetOutput(w io.Writer) {
	logrus.SetOutput(w)
}

// SetFormatter 전역 로거의 포맷터를 변경합니다.
func SetFormatter(f Formatter) {
	logrus.SetFormatter(f)
}

// SetLevel 전역 로거의 최소 로그 레벨을 변경합니다.
func SetLevel(level Level) {
	logrus.SetLevel(level)
}

// GetLevel 전역 로거의 현재 로그 레벨을 반환합니다.
func GetLevel() Level {
	return logrus.GetLevel()
}
