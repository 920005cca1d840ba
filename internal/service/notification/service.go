// Package notification 카탈로그 관리 이벤트를 외부 채널(텔레그램)로 발송하는 알림 서비스를 제공합니다.
//
// 알림 발송 요청은 내부 큐에 등록된 후 별도의 Sender 고루틴에서 비동기로 처리되므로,
// 발송 지연이 호출자(API 핸들러 등)의 응답 시간에 영향을 주지 않습니다.
package notification

import (
	"context"
	"strings"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/darkkaiser/catalog-server/internal/config"
	apperrors "github.com/darkkaiser/catalog-server/internal/pkg/errors"
	applog "github.com/darkkaiser/catalog-server/pkg/log"
	"github.com/darkkaiser/catalog-server/pkg/strutil"
)

const component = "notification.service"

const (
	// notificationQueueSize 발송 대기 큐의 크기입니다. 큐가 가득 차면 신규 발송 요청은 거부됩니다.
	notificationQueueSize = 100

	// drainTimeout 서비스 종료 시 큐에 남은 메시지를 처리하는 최대 대기 시간입니다.
	drainTimeout = 10 * time.Second
)

// messageSender 텔레그램 API 클라이언트의 발송 기능 추상화입니다.
// *tgbotapi.BotAPI가 이 인터페이스를 충족하며, 테스트에서는 Mock으로 대체됩니다.
type messageSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// notifyRequest 발송 대기 큐에 등록되는 알림 발송 요청입니다.
type notifyRequest struct {
	message       string
	errorOccurred bool
}

// Service 텔레그램 알림 발송 서비스입니다.
//
// 텔레그램 알림이 비활성화된 설정에서도 서비스는 정상 기동하며,
// 이 경우 발송 요청은 조용히 무시됩니다.
type Service struct {
	appConfig *config.AppConfig

	client messageSender
	chatID int64

	notificationC chan notifyRequest

	running   bool
	runningMu sync.Mutex
}

// NewService Service 객체를 생성하여 반환합니다.
func NewService(appConfig *config.AppConfig) *Service {
	return &Service{
		appConfig: appConfig,

		chatID: appConfig.Notifiers.Telegram.ChatID,

		notificationC: make(chan notifyRequest, notificationQueueSize),
	}
}

// SetClient 텔레그램 API 클라이언트를 교체합니다. 테스트에서 Mock 주입에 사용합니다.
func (s *Service) SetClient(client messageSender) {
	s.client = client
}

// Start 알림 서비스를 시작합니다.
//
// 텔레그램 알림이 활성화된 경우 텔레그램 API 클라이언트를 초기화하고,
// 발송 대기 큐를 처리하는 Sender 고루틴을 실행합니다.
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(component).Info("Notification 서비스 시작중...")

	if s.running {
		defer serviceStopWG.Done()
		applog.WithComponent(component).Warn("Notification 서비스가 이미 시작됨!!!")
		return nil
	}

	telegramConfig := s.appConfig.Notifiers.Telegram
	if telegramConfig.Enabled {
		if s.client == nil {
			client, err := tgbotapi.NewBotAPI(telegramConfig.BotToken)
			if err != nil {
				defer serviceStopWG.Done()
				return apperrors.Wrap(err, apperrors.Unavailable, "텔레그램 봇 초기화 중 에러가 발생했습니다")
			}
			s.client = client
		}

		applog.WithComponentAndFields(component, applog.Fields{
			"chat_id":   telegramConfig.ChatID,
			"bot_token": strutil.MaskSensitiveData(telegramConfig.BotToken),
		}).Debug("텔레그램 알림 채널 활성화됨")
	} else {
		applog.WithComponent(component).Info("텔레그램 알림 채널이 비활성화되어 있습니다. 발송 요청은 무시됩니다")
	}

	go s.run(serviceStopCtx, serviceStopWG)

	s.running = true

	applog.WithComponent(component).Info("Notification 서비스 시작됨")

	return nil
}

// run 발송 대기 큐를 처리하는 Sender 루프입니다.
func (s *Service) run(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) {
	defer serviceStopWG.Done()

	defer func() {
		if r := recover(); r != nil {
			applog.WithComponentAndFields(component, applog.Fields{
				"panic": r,
			}).Error("발송 프로세스 비정상 종료: Sender 고루틴 패닉 발생 (서비스 재시작 필요)")

			s.markStopped()
		}
	}()

	for {
		select {
		case req := <-s.notificationC:
			s.send(req)

		case <-serviceStopCtx.Done():
			applog.WithComponent(component).Info("Notification 서비스 중지중...")

			// 큐에 남은 메시지를 제한 시간 내에서 최대한 발송합니다 (Drain)
			s.drainRemainingNotifications()

			s.markStopped()

			applog.WithComponent(component).Info("Notification 서비스 중지됨")

			return
		}
	}
}

// drainRemainingNotifications 종료 시그널 수신 이후 큐에 남아있는 메시지를 처리합니다.
// drainTimeout을 초과하면 남은 메시지는 손실될 수 있습니다.
func (s *Service) drainRemainingNotifications() {
	deadline := time.After(drainTimeout)

	for {
		select {
		case req := <-s.notificationC:
			s.send(req)

		case <-deadline:
			if remaining := len(s.notificationC); remaining > 0 {
				applog.WithComponentAndFields(component, applog.Fields{
					"remaining": remaining,
				}).Warn("발송 대기 큐 정리 시간 초과로 남은 메시지가 유실됩니다")
			}
			return

		default:
			return
		}
	}
}

func (s *Service) send(req notifyRequest) {
	if s.client == nil {
		applog.WithComponent(component).Debug("알림 채널이 비활성화되어 있어 메시지를 무시합니다")
		return
	}

	text := req.message
	if req.errorOccurred {
		text = "⚠️ 오류가 발생하였습니다.\n\n" + text
	}

	message := tgbotapi.NewMessage(s.chatID, text)
	if _, err := s.client.Send(message); err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"chat_id": s.chatID,
			"err":     err,
		}).Error("텔레그램 메시지 발송이 실패하였습니다")
	}
}

func (s *Service) markStopped() {
	s.runningMu.Lock()
	s.running = false
	s.runningMu.Unlock()
}

// Health 알림 서비스의 가동 상태를 확인합니다.
// 서비스가 시작되지 않았거나 종료된 경우 Unavailable 에러를 반환합니다.
func (s *Service) Health() error {
	s.runningMu.Lock()
	running := s.running
	s.runningMu.Unlock()

	if !running {
		return apperrors.New(apperrors.Unavailable, "Notification 서비스가 중지된 상태입니다")
	}

	return nil
}

// NotifyDefault 기본 알림 채널로 일반 메시지의 발송을 요청합니다.
//
// 발송 요청이 큐에 정상 등록되면 nil을 반환하며, 실제 전송 결과와는 무관합니다.
func (s *Service) NotifyDefault(message string) error {
	return s.enqueue(notifyRequest{message: message})
}

// NotifyDefaultWithError 기본 알림 채널로 "오류" 성격의 메시지의 발송을 요청합니다.
func (s *Service) NotifyDefaultWithError(message string) error {
	return s.enqueue(notifyRequest{message: message, errorOccurred: true})
}

func (s *Service) enqueue(req notifyRequest) error {
	if strings.TrimSpace(req.message) == "" {
		return apperrors.New(apperrors.InvalidInput, "알림 메시지 본문은 비워둘 수 없습니다")
	}

	s.runningMu.Lock()
	running := s.running
	s.runningMu.Unlock()

	if !running {
		return apperrors.New(apperrors.Unavailable, "Notification 서비스가 중지된 상태입니다")
	}

	select {
	case s.notificationC <- req:
		return nil
	default:
		return apperrors.New(apperrors.Unavailable, "알림 발송 대기 큐가 가득 찼습니다")
	}
}
