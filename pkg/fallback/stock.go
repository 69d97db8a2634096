package fallback

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/shouni/go-remote-io/pkg/remoteio"

	"github.com/shouni/survey-banner-kit/pkg/domain"
	"github.com/shouni/survey-banner-kit/pkg/imgutil"
	"github.com/shouni/survey-banner-kit/pkg/utils"
)

const (
	StockWidth  = 1024
	StockHeight = 576
)

// StockOption は StockRenderer の任意設定です。
type StockOption func(*StockRenderer)

// WithRemoteReader は gs:// のストック画像を読むためのリーダーを設定します。
func WithRemoteReader(reader remoteio.InputReader) StockOption {
	return func(r *StockRenderer) { r.reader = reader }
}

// WithStockURL は診療科のストック画像URLを上書きします。
func WithStockURL(s domain.Specialty, url string) StockOption {
	return func(r *StockRenderer) { r.overrides[s] = url }
}

// StockRenderer は診療科ごとに登録されたストック写真を取得し、バナーサイズに拡縮して保存します。
type StockRenderer struct {
	httpClient HTTPClient
	reader     remoteio.InputReader
	store      ImageStore
	overrides  map[domain.Specialty]string
	now        func() time.Time
}

// NewStockRenderer は依存関係を注入して StockRenderer を初期化します。
// reader は nil を許容します（gs:// は使用不可になります）。
func NewStockRenderer(httpClient HTTPClient, store ImageStore, opts ...StockOption) (*StockRenderer, error) {
	if httpClient == nil {
		return nil, fmt.Errorf("httpClient is required")
	}
	if store == nil {
		return nil, fmt.Errorf("store (ImageStore) is required")
	}
	r := &StockRenderer{
		httpClient: httpClient,
		store:      store,
		overrides:  make(map[domain.Specialty]string),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// URLFor は診療科に対応するストック画像URLを返します。未知の診療科は general です。
func (r *StockRenderer) URLFor(specialty string) string {
	s := domain.ParseSpecialty(specialty)
	if u, ok := r.overrides[s]; ok {
		return u
	}
	return s.Profile().StockImageURL
}

// Render はストック画像を取得して保存します。失敗は *domain.FallbackError です。
func (r *StockRenderer) Render(ctx context.Context, surveyName, specialty, desiredFilename string) (_ *domain.RenderedImage, err error) {
	defer recoverAsError("fetch", &err)

	rawURL := r.URLFor(specialty)
	data, err := r.fetch(ctx, rawURL)
	if err != nil {
		slog.ErrorContext(ctx, "ストック画像の取得に失敗しました", "specialty", specialty, "url", rawURL, "error", err)
		return nil, fallbackErr("fetch", err)
	}

	src, _, err := imgutil.Decode(data)
	if err != nil {
		return nil, fallbackErr("decode", err)
	}
	img := imgutil.Resize(src, StockWidth, StockHeight)

	encoded, err := imgutil.EncodePNG(img)
	if err != nil {
		return nil, fallbackErr("encode", err)
	}

	filename := resolveFilename(desiredFilename, surveyName, r.now)
	path, err := r.store.Write(ctx, filename, encoded)
	if err != nil {
		slog.ErrorContext(ctx, "フォールバック画像の保存に失敗しました", "specialty", specialty, "error", err)
		return nil, fallbackErr("save", err)
	}

	slog.InfoContext(ctx, "フォールバック画像を保存しました", "path", path, "strategy", "stock")
	return &domain.RenderedImage{Image: img, Filename: filepath.Base(path)}, nil
}

func (r *StockRenderer) fetch(ctx context.Context, rawURL string) ([]byte, error) {
	if strings.HasPrefix(rawURL, "gs://") {
		if r.reader == nil {
			return nil, fmt.Errorf("gs:// を読むためのリーダーが設定されていません: %s", rawURL)
		}
		rc, err := r.reader.Open(ctx, rawURL)
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		return io.ReadAll(rc)
	}

	if safe, err := utils.IsSafeURL(rawURL); err != nil || !safe {
		return nil, fmt.Errorf("安全ではないURLが指定されました: %w", err)
	}
	return r.httpClient.FetchBytes(ctx, rawURL)
}
