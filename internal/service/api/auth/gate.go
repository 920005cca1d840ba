// Package auth 관리자 세션 인증을 제공합니다.
//
// 모든 방문자는 기본적으로 게스트이며, 설정된 단일 공유 비밀번호로
// 로그인하면 만료 시간이 있는 불투명한 세션 토큰을 발급받습니다.
// 상품 등록/수정/삭제와 배너 교체 등 모든 변경 엔드포인트는
// 이 토큰 검증을 통과해야 합니다.
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"sync"
	"time"

	"github.com/darkkaiser/catalog-server/internal/config"
	"github.com/darkkaiser/catalog-server/internal/service/api/constants"
	applog "github.com/darkkaiser/catalog-server/pkg/log"
)

// sessionTokenBytes 세션 토큰의 원본 바이트 길이 (hex 인코딩 시 64자)
const sessionTokenBytes = 32

// Gate 관리자 세션의 발급/검증/폐기를 담당하는 게이트입니다.
//
// 이 구조체는 다음과 같은 역할을 수행합니다:
//   - 설정된 공유 비밀번호와의 상수 시간 비교를 통한 로그인 처리
//   - 암호학적으로 안전한 불투명 세션 토큰 발급
//   - 토큰별 만료 시간 관리 및 만료 세션 정리
//
// 동시성 안전성:
//   - sync.Mutex를 사용하여 동시성 안전을 보장합니다.
//   - 여러 고루틴에서 동시에 Login/Verify/Logout을 호출해도 안전합니다.
type Gate struct {
	mu       sync.Mutex
	password string
	ttl      time.Duration
	sessions map[string]time.Time // 토큰 → 만료 시각

	// now 현재 시각을 반환하는 함수 (테스트에서 교체 가능)
	now func() time.Time
}

// NewGate 설정에서 관리자 비밀번호와 세션 유효 시간을 로드하여 Gate를 생성합니다.
func NewGate(appConfig *config.AppConfig) *Gate {
	if appConfig == nil {
		panic(constants.PanicMsgAppConfigRequired)
	}

	return &Gate{
		password: appConfig.Admin.Password,
		ttl:      appConfig.Admin.SessionTTLDuration(),
		sessions: make(map[string]time.Time),
		now:      time.Now,
	}
}

// Login 비밀번호를 검증하고 새 관리자 세션 토큰을 발급합니다.
//
// 비밀번호가 일치하지 않으면 Unauthorized 에러를 반환하며, 호출자는
// 게스트 상태를 유지합니다. 타이밍 공격을 막기 위해 상수 시간 비교를 사용합니다.
func (g *Gate) Login(password string) (string, error) {
	if subtle.ConstantTimeCompare([]byte(password), []byte(g.password)) != 1 {
		return "", ErrPasswordMismatch
	}

	token, err := newSessionToken()
	if err != nil {
		return "", err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.pruneExpiredLocked()
	g.sessions[token] = g.now().Add(g.ttl)

	applog.WithComponentAndFields(constants.ComponentAuthGate, applog.Fields{
		"active_sessions": len(g.sessions),
		"session_ttl":     g.ttl.String(),
	}).Info("관리자 세션 발급됨")

	return token, nil
}

// Logout 세션 토큰을 무조건 폐기합니다.
// 존재하지 않는 토큰이어도 에러 없이 처리됩니다.
func (g *Gate) Logout(token string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	delete(g.sessions, token)
}

// Verify 세션 토큰이 유효한 관리자 세션인지 검증합니다.
//
// 토큰이 존재하지 않거나 만료된 경우 Unauthorized 에러를 반환합니다.
// 만료된 토큰은 검증 시점에 즉시 제거됩니다.
func (g *Gate) Verify(token string) error {
	if token == "" {
		return ErrInvalidToken
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	expiry, ok := g.sessions[token]
	if !ok {
		return ErrInvalidToken
	}

	if g.now().After(expiry) {
		delete(g.sessions, token)
		return ErrInvalidToken
	}

	return nil
}

// ActiveSessions 현재 유효한 세션 수를 반환합니다.
func (g *Gate) ActiveSessions() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.pruneExpiredLocked()
	return len(g.sessions)
}

// pruneExpiredLocked 만료된 세션을 제거합니다. 호출 전 락을 획득해야 합니다.
func (g *Gate) pruneExpiredLocked() {
	now := g.now()
	for token, expiry := range g.sessions {
		if now.After(expiry) {
			delete(g.sessions, token)
		}
	}
}

// newSessionToken 암호학적 난수 기반의 세션 토큰을 생성합니다.
func newSessionToken() (string, error) {
	buf := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", ErrTokenGenerationFailed(err)
	}
	return hex.EncodeToString(buf), nil
}
