// Package fallback は一次生成が使えない時の最終段の画像を用意します。
//
// 既定は PlaceholderRenderer（ローカル描画）です。StockRenderer は診療科ごとの
// ストック写真を取得する代替戦略で、設定で明示的に選んだ場合のみ使われます。
// 両者を連鎖させることはありません。
package fallback

import (
	"context"
	"fmt"
	"time"

	"github.com/shouni/survey-banner-kit/pkg/domain"
	"github.com/shouni/survey-banner-kit/pkg/utils"
)

const filenamePrefix = "fallback"

// SuccessMessage はフォールバック成功時のステータスメッセージです。
const SuccessMessage = "Professional fallback image generated successfully."

// ImageStore は生成画像を出力ディレクトリへ書き込みます。
type ImageStore interface {
	Write(ctx context.Context, name string, data []byte) (string, error)
}

// HTTPClient は URL から画像バイナリを取得します。
type HTTPClient interface {
	FetchBytes(ctx context.Context, url string) ([]byte, error)
}

// Renderer はフォールバック画像の生成戦略です。
type Renderer interface {
	Render(ctx context.Context, surveyName, specialty, desiredFilename string) (*domain.RenderedImage, error)
}

func resolveFilename(desired, surveyName string, now func() time.Time) string {
	if desired != "" {
		return desired
	}
	return utils.BuildFilename(filenamePrefix, surveyName, now())
}

func fallbackErr(op string, err error) error {
	return &domain.FallbackError{Op: op, Err: err}
}

func recoverAsError(op string, err *error) {
	if r := recover(); r != nil {
		*err = fallbackErr(op, fmt.Errorf("panic: %v", r))
	}
}
