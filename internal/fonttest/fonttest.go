// Package fonttest provides bitmap font fixtures for tests.
package fonttest

import (
	"bytes"
	"image/color"
	"testing/fstest"

	"github.com/disintegration/imaging"
)

// Main is a 30px font with 'A', 'B', 'W' and space on main.png.
// 'A' advances 10, 'B' advances 8 with -2 kerning after 'A', 'W' advances 40.
const Main = `info face="Main" size=24 padding=0,0,0,0 spacing=1,1
common lineHeight=30 base=24 scaleW=128 scaleH=32 pages=1 packed=0
page id=0 file="main.png"
chars count=4
char id=65 x=0 y=0 width=10 height=20 xoffset=0 yoffset=4 xadvance=10 page=0 chnl=15
char id=66 x=10 y=0 width=8 height=20 xoffset=1 yoffset=4 xadvance=8 page=0 chnl=15
char id=87 x=40 y=0 width=40 height=20 xoffset=0 yoffset=0 xadvance=40 page=0 chnl=15
char id=32 x=0 y=0 width=0 height=0 xoffset=0 yoffset=0 xadvance=10 page=0 chnl=15
kernings count=1
kerning first=65 second=66 amount=-2
`

// Kana is a 40px font with U+3042 on kana.png.
const Kana = `common lineHeight=40 base=32 scaleW=64 scaleH=64 pages=1
page id=0 file="kana.png"
char id=12354 x=0 y=0 width=40 height=40 xoffset=0 yoffset=0 xadvance=40
`

// Alt is a 30px font with 'A' only on alt.png.
const Alt = `common lineHeight=30 base=24 scaleW=32 scaleH=32 pages=1
page id=0 file="alt.png"
char id=65 x=0 y=0 width=12 height=20 xoffset=0 yoffset=4 xadvance=12
`

// Broken declares two pages and fails to parse.
const Broken = `common lineHeight=30 base=24 scaleW=32 scaleH=32 pages=2
`

// FS returns a file system holding main.fnt, kana.fnt, alt.fnt and
// broken.fnt with solid white atlases, plus a 64x64 emoji.png.
func FS() fstest.MapFS {
	return fstest.MapFS{
		"main.fnt":   {Data: []byte(Main)},
		"main.png":   {Data: PNG(128, 32, color.White)},
		"kana.fnt":   {Data: []byte(Kana)},
		"kana.png":   {Data: PNG(64, 64, color.White)},
		"alt.fnt":    {Data: []byte(Alt)},
		"alt.png":    {Data: PNG(32, 32, color.White)},
		"broken.fnt": {Data: []byte(Broken)},
		"emoji.png":  {Data: PNG(64, 64, color.NRGBA{R: 255, G: 200, A: 255})},
	}
}

// PNG encodes a solid w x h image.
func PNG(w, h int, c color.Color) []byte {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, imaging.New(w, h, c), imaging.PNG); err != nil {
		panic(err)
	}
	return buf.Bytes()
}
