package catalog

import (
	"os"

	"github.com/tidwall/gjson"

	apperrors "github.com/darkkaiser/catalog-server/internal/pkg/errors"
	applog "github.com/darkkaiser/catalog-server/pkg/log"
)

// LoadSeedFile JSON 시드 파일을 읽어 초기 상품 목록을 저장소에 적재하고 적재된 상품의 개수를 반환합니다.
//
// 시드 파일은 상품 객체의 JSON 배열이어야 하며, 배열의 순서가 곧 화면 표시 순서(최신순)가 됩니다.
// 배열의 앞쪽 항목이 더 최신이므로 ID는 뒤쪽 항목부터 부여하며,
// 이후 등록되는 상품은 항상 시드 상품보다 큰 ID를 가집니다.
// 유효하지 않은 상품 항목은 경고 로그를 남기고 건너뜁니다.
func LoadSeedFile(store *Store, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, apperrors.Wrapf(err, apperrors.System, "상품 시드 파일을 읽을 수 없습니다 (파일:%s)", path)
	}

	if !gjson.ValidBytes(data) {
		return 0, apperrors.Newf(apperrors.ParsingFailed, "상품 시드 파일이 유효한 JSON 형식이 아닙니다 (파일:%s)", path)
	}

	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return 0, apperrors.Newf(apperrors.ParsingFailed, "상품 시드 파일은 JSON 배열이어야 합니다 (파일:%s)", path)
	}

	logger := applog.WithComponent("catalog.seed")

	entries := root.Array()
	inputs := make([]ProductInput, 0, len(entries))
	for i, entry := range entries {
		in := ProductInput{
			Name:          entry.Get("name").String(),
			ImageURL:      entry.Get("image_url").String(),
			Price:         entry.Get("price").Int(),
			OriginalPrice: entry.Get("original_price").Int(),
			Condition:     Condition(entry.Get("condition").String()),
			Category:      Category(entry.Get("category").String()),
			Brand:         entry.Get("brand").String(),
		}

		if err := in.Validate(); err != nil {
			logger.WithField("index", i).Warnf("유효하지 않은 시드 상품 항목을 건너뜁니다 (원인:%s)", err)
			continue
		}

		inputs = append(inputs, in)
	}

	// 배열의 앞쪽 항목이 더 최신이므로 ID는 뒤쪽 항목부터 부여합니다.
	ids := make([]int64, len(inputs))
	for i := len(inputs) - 1; i >= 0; i-- {
		ids[i] = store.idGenerator.Next()
	}

	for i, in := range inputs {
		store.restore(productFromInput(ids[i], in))
	}

	return len(inputs), nil
}
