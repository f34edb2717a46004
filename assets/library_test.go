package assets

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanAssetPath(t *testing.T) {
	cases := map[string]string{
		"graphics/grass/grass_1.png":        "grass/grass_1",
		"/home/dev/game/graphics/objects/0": "objects/0",
		"particles/leaf1/":                  "particles/leaf1",
		"./player/down_idle":                "player/down_idle",
		"":                                  "",
	}
	for in, want := range cases {
		assert.Equal(t, want, cleanAssetPath(in), in)
	}
}

func TestFrameLess(t *testing.T) {
	assert.True(t, frameLess("2.png", "10.png"))
	assert.False(t, frameLess("10.png", "2.png"))
	assert.True(t, frameLess("grass_1.png", "grass_2.png"))
}

func TestFlipHorizontal(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 3, 1))
	src.Set(0, 0, color.RGBA{R: 255, A: 255})
	src.Set(2, 0, color.RGBA{B: 255, A: 255})

	out := flipHorizontal(src)
	r, _, b, _ := out.At(0, 0).RGBA()
	assert.Zero(t, r)
	assert.NotZero(t, b)
	r, _, b, _ = out.At(2, 0).RGBA()
	assert.NotZero(t, r)
	assert.Zero(t, b)
}
