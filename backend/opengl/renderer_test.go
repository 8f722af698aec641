package opengl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFontAtlasPlacesGlyphs(t *testing.T) {
	data := fontAtlas()
	assert.Len(t, data, atlasWidth*atlasHeight)

	// 'A' is glyph 33: column 1, row 2. Its top row is 0x18, pixels 3 and 4.
	ox, oy := 1*glyphSize, 2*glyphSize
	row := data[oy*atlasWidth+ox : oy*atlasWidth+ox+glyphSize]
	assert.Equal(t, []byte{0, 0, 0, 255, 255, 0, 0, 0}, row)

	// Space is blank.
	for y := range glyphSize {
		for x := range glyphSize {
			assert.Zero(t, data[y*atlasWidth+x])
		}
	}
}

func TestScissorRect(t *testing.T) {
	tests := []struct {
		name       string
		clip       [4]float32
		x, y, w, h int32
		ok         bool
	}{
		{"unbounded", [4]float32{-1e9, -1e9, 1e9, 1e9}, 0, 0, 800, 600, true},
		{"inside", [4]float32{10, 20, 110, 70}, 10, 530, 100, 50, true},
		{"partly above", [4]float32{0, -50, 100, 50}, 0, 550, 100, 50, true},
		{"off screen", [4]float32{900, 0, 1000, 100}, 0, 0, 0, 0, false},
		{"empty", [4]float32{10, 10, 10, 40}, 0, 0, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, w, h, ok := scissorRect(tt.clip, 800, 600)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, [4]int32{tt.x, tt.y, tt.w, tt.h}, [4]int32{x, y, w, h})
		})
	}
}
