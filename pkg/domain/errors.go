package domain

import (
	"errors"
	"fmt"
)

// ErrNoImageData はレスポンスに画像パーツが含まれていなかったことを示します。
var ErrNoImageData = errors.New("no image data in response")

// ConfigurationError は起動時の設定不備です。回復不能なのでプロセスを止めます。
type ConfigurationError struct {
	Key string
	Msg string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s: %s", e.Key, e.Msg)
}

// RemoteGenerationError はリモート生成の失敗です。フォールバックへ進みます。
type RemoteGenerationError struct {
	Op  string
	Err error
}

func (e *RemoteGenerationError) Error() string {
	return fmt.Sprintf("remote generation failed (%s): %v", e.Op, e.Err)
}

func (e *RemoteGenerationError) Unwrap() error { return e.Err }

// FallbackError はフォールバック自体の失敗です。これ以上の段はありません。
type FallbackError struct {
	Op  string
	Err error
}

func (e *FallbackError) Error() string {
	return fmt.Sprintf("fallback failed (%s): %v", e.Op, e.Err)
}

func (e *FallbackError) Unwrap() error { return e.Err }
