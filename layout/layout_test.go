package layout

import (
	"image/color"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbeddedDemo(t *testing.T) {
	l, err := LoadEmbedded("layouts/demo.tmx")
	require.NoError(t, err)

	assert.Equal(t, 960, l.Width)
	assert.Equal(t, 544, l.Height)
	require.Len(t, l.Elements, 7)

	byName := map[string]ElementSpec{}
	for _, e := range l.Elements {
		byName[e.Name] = e
	}

	health := byName["health"]
	assert.Equal(t, KindBar, health.Kind)
	assert.Equal(t, 0.6, health.Fill)
	assert.Equal(t, "left", health.Origin)
	assert.Equal(t, "fill", health.Intro)
	assert.Equal(t, 0.3, health.IntroDelay)
	assert.Equal(t, color.RGBA{R: 0, G: 255, B: 60, A: 255}, health.Color)
	assert.Equal(t, 420.0, health.W)

	assert.Equal(t, 1.0, byName["card"].Alpha, "alpha defaults to opaque")
	assert.Equal(t, 0.8, byName["caption"].Alpha)
	assert.Equal(t, KindText, byName["caption"].Kind)
	assert.True(t, byName["toast"].Hidden)
	assert.Equal(t, uint8(0xb4), byName["toast"].Color.A)
}

func TestLoadRejectsUnknownClass(t *testing.T) {
	fsys := fstest.MapFS{"bad.tmx": {Data: []byte(`<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" width="4" height="4" tilewidth="16" tileheight="16">
 <objectgroup id="1" name="Elements">
  <object id="1" name="x" class="hologram" x="0" y="0" width="8" height="8"/>
 </objectgroup>
</map>`)}}

	_, err := Load(fsys, "bad.tmx")
	assert.ErrorContains(t, err, "hologram")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := LoadEmbedded("layouts/nope.tmx")
	assert.Error(t, err)
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#3c64a0")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0x3c, G: 0x64, B: 0xa0, A: 0xff}, c)

	c, err = ParseColor("#80ffffff")
	require.NoError(t, err)
	assert.Equal(t, uint8(0x80), c.A)

	_, err = ParseColor("teal")
	assert.Error(t, err)
	_, err = ParseColor("#zzzzzz")
	assert.Error(t, err)
}
