// Package packager は画像を転送用の (ファイル名, base64) の組に変換します。
package packager

import (
	"encoding/base64"
	"fmt"
	"image"

	"github.com/shouni/survey-banner-kit/pkg/imgutil"
)

// Package は画像をメモリ上でPNGエンコードし、base64文字列とファイル名を返します。
// ディスクに保存済みの内容とは独立しています。
func Package(img image.Image, filename string) (string, string, error) {
	data, err := imgutil.EncodePNG(img)
	if err != nil {
		return "", "", fmt.Errorf("PNGエンコードに失敗しました: %w", err)
	}
	return filename, base64.StdEncoding.EncodeToString(data), nil
}

// DataURI は base64 ペイロードを HTML 埋め込み用の data URI に変換します。
func DataURI(payload string) string {
	return "data:image/png;base64," + payload
}
