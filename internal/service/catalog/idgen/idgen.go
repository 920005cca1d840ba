// Package idgen 상품의 고유 ID 생성을 담당합니다.
package idgen

import (
	"github.com/bwmarrin/snowflake"

	apperrors "github.com/darkkaiser/catalog-server/internal/pkg/errors"
)

// Generator 상품의 고유 ID를 생성하는 인터페이스입니다.
type Generator interface {
	// Next 새로운 고유 ID를 생성하여 반환합니다.
	//
	// 반환되는 ID는 생성 시각 기준으로 단조 증가하며(시간 기반),
	// 동시에 여러 고루틴에서 호출되어도 고유성이 보장되어야 합니다.
	// ID의 시간 순서성은 기본 정렬(최신순 = ID 내림차순)의 근거가 됩니다.
	Next() int64
}

// SnowflakeGenerator snowflake 알고리즘 기반의 Generator 구현체입니다.
//
// 생성 전략:
//   - 상위 비트에 밀리초 타임스탬프가 위치하여 생성 시각 순서가 ID 대소 비교와 일치합니다.
//   - 노드 ID와 시퀀스 비트를 결합하여 동일 밀리초 내 중복을 방지합니다.
//
// 단일 프로세스 운영이므로 노드 ID는 0으로 고정합니다.
type SnowflakeGenerator struct {
	node *snowflake.Node
}

// NewSnowflakeGenerator SnowflakeGenerator 인스턴스를 생성합니다.
func NewSnowflakeGenerator() (*SnowflakeGenerator, error) {
	node, err := snowflake.NewNode(0)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.Internal, "ID 생성기 초기화에 실패했습니다")
	}

	return &SnowflakeGenerator{node: node}, nil
}

// Next 새로운 고유 ID를 생성합니다.
func (g *SnowflakeGenerator) Next() int64 {
	return g.node.Generate().Int64()
}
