package packager

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackage(t *testing.T) {
	t.Run("base64をデコードするとPNGになる", func(t *testing.T) {
		img := image.NewRGBA(image.Rect(0, 0, 3, 2))
		img.Set(1, 1, color.RGBA{0, 0, 255, 255})

		name, payload, err := Package(img, "banner.png")
		require.NoError(t, err)
		assert.Equal(t, "banner.png", name)

		raw, err := base64.StdEncoding.DecodeString(payload)
		require.NoError(t, err)
		decoded, err := png.Decode(bytes.NewReader(raw))
		require.NoError(t, err)
		assert.Equal(t, img.Bounds(), decoded.Bounds())
		assert.Equal(t, color.RGBAModel.Convert(decoded.At(1, 1)), color.RGBA{0, 0, 255, 255})
	})

	t.Run("nil画像はエラー", func(t *testing.T) {
		_, _, err := Package(nil, "x.png")
		assert.Error(t, err)
	})
}

func TestDataURI(t *testing.T) {
	assert.Equal(t, "data:image/png;base64,QUJD", DataURI("QUJD"))
}
