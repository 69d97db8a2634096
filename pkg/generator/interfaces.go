package generator

import (
	"context"

	"github.com/shouni/go-gemini-client/pkg/gemini"
	"google.golang.org/genai"
)

// ContentGenerator は画像生成に必要な Gemini クライアントの最小インターフェースです。
// gemini.GenerativeModel と GenAIModel の両方がこれを満たします。
type ContentGenerator interface {
	GenerateWithParts(ctx context.Context, model string, parts []*genai.Part, opts gemini.GenerateOptions) (*gemini.Response, error)
}

// ImageStore は生成画像を出力ディレクトリへ書き込みます。
type ImageStore interface {
	Write(ctx context.Context, name string, data []byte) (string, error)
}
