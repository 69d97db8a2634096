// Package storage は生成画像を出力ディレクトリに保存します。
package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultDir は画像の既定の出力先です（カレントディレクトリ相対）。
const DefaultDir = "static/images"

// FileStore はローカルファイルシステムの出力ディレクトリに画像を書き込みます。
// ディレクトリは書き込み時に必要に応じて作成されます。
type FileStore struct {
	basePath string
}

// NewFileStore は basePath をルートとする FileStore を作成します。
func NewFileStore(basePath string) (*FileStore, error) {
	basePath = strings.TrimSpace(basePath)
	if basePath == "" {
		return nil, errors.New("storage: base path is required")
	}
	return &FileStore{basePath: basePath}, nil
}

// BasePath は出力ディレクトリを返します。
func (s *FileStore) BasePath() string {
	if s == nil {
		return ""
	}
	return s.basePath
}

// Write は data を name で保存し、書き込んだファイルのフルパスを返します。
// name にディレクトリ成分が含まれていてもファイル名部分のみを使います。
func (s *FileStore) Write(ctx context.Context, name string, data []byte) (string, error) {
	if s == nil {
		return "", errors.New("storage: no store configured")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	cleanName, err := SanitizeName(name)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(s.basePath, 0o755); err != nil {
		return "", fmt.Errorf("storage: ensure directory: %w", err)
	}
	fullPath := filepath.Join(s.basePath, cleanName)
	if err := os.WriteFile(fullPath, data, 0o644); err != nil {
		return "", fmt.Errorf("storage: write file: %w", err)
	}
	return fullPath, nil
}

// SanitizeName はファイル名からディレクトリ成分を取り除き、出力先の外に出られないようにします。
func SanitizeName(name string) (string, error) {
	name = strings.TrimSpace(strings.ReplaceAll(name, "\\", "/"))
	base := filepath.Base(filepath.FromSlash(name))
	if name == "" || base == "." || base == ".." || base == string(filepath.Separator) {
		return "", errors.New("storage: invalid file name")
	}
	return base, nil
}
