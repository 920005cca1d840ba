package service

import (
	"context"
	"sync"
)

// Service 애플리케이션을 구성하는 단위 서비스의 생명주기 계약입니다.
//
// Start는 서비스를 시작하고 즉시 반환하며, serviceStopCtx가 취소되면
// 내부 고루틴을 정리한 뒤 serviceStopWG.Done()을 호출해야 합니다.
type Service interface {
	Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error
}
