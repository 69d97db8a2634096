package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_Write(t *testing.T) {
	ctx := context.Background()

	t.Run("存在しないディレクトリを作成して書き込む", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "static", "images")
		store, err := NewFileStore(dir)
		require.NoError(t, err)

		path, err := store.Write(ctx, "banner.png", []byte("png"))
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "banner.png"), path)

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, []byte("png"), got)
	})

	t.Run("ディレクトリトラバーサルは出力先に閉じ込められる", func(t *testing.T) {
		dir := t.TempDir()
		store, _ := NewFileStore(dir)

		path, err := store.Write(ctx, "../../etc/evil.png", []byte("x"))
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "evil.png"), path)
	})

	t.Run("キャンセル済みコンテキストはエラー", func(t *testing.T) {
		store, _ := NewFileStore(t.TempDir())
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := store.Write(cctx, "a.png", nil)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestNewFileStore(t *testing.T) {
	_, err := NewFileStore("  ")
	assert.Error(t, err)
}

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"a.png", "a.png", false},
		{"dir/a.png", "a.png", false},
		{`dir\a.png`, "a.png", false},
		{"", "", true},
		{"..", "", true},
		{"/", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := SanitizeName(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
