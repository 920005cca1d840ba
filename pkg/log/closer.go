package log

import (
	"io"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// closer 로그 파일 리소스의 해제를 관리합니다.
//
// 주요 특징:
//   - 안전한 종료 순서: 파일을 닫기 전에 로그 출력을 표준 에러로 되돌려
//     닫힌 파일에 대한 쓰기 시도를 방지합니다.
//   - Idempotency 보장: Close()를 여러 번 호출해도 안전하며, 두 번째 이후 호출은 즉시 nil을 반환합니다.
type closer struct {
	fileWriter io.Closer

	// closed 중복 Close() 호출을 방지하기 위한 원자적 플래그 (0: open, 1: closed)
	closed int32
}

func (c *closer) Close() error {
	// Idempotency 보장: 이미 닫힌 경우 즉시 반환
	if !atomic.CompareAndSwapInt32(&c.closed, 0, 1) {
		return nil
	}

	if c.fileWriter == nil {
		return nil
	}

	// 파일 리소스를 닫기 전에 로그 유입을 먼저 차단합니다.
	// 닫힌 파일에 쓰기를 시도하는 경쟁 상태와 패닉을 방지하기 위함입니다.
	logrus.SetOutput(io.Discard)

	return c.fileWriter.Close()
}
