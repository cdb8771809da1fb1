package displaylist

import (
	"testing"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/displaylist/geom"
)

func px(v int) fixed.Int26_6 { return fixed.I(v) }

func lineBounds(ascent, descent int) shaping.Bounds {
	return shaping.Bounds{Ascent: px(ascent), Descent: px(descent)}
}

func TestShapedTextHorizontal(t *testing.T) {
	first := shaping.Output{
		Advance:     px(20),
		LineBounds:  lineBounds(10, -3),
		GlyphBounds: lineBounds(10, -3),
		Glyphs: []shaping.Glyph{
			{XBearing: px(1), YBearing: px(12), Width: px(5), Height: px(-14), Advance: px(10)},
			{XBearing: px(0), YBearing: px(6), Width: px(8), Height: px(-6), Advance: px(10)},
		},
	}
	second := shaping.Output{
		Advance:     px(10),
		LineBounds:  lineBounds(10, -3),
		GlyphBounds: lineBounds(10, -3),
	}

	text := NewShapedText(first, second)
	if got, want := text.Bounds(), geom.MakeLTRB(0, -12, 30, 3); !rectNear(got, want) {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
	if len(text.Runs()) != 2 {
		t.Errorf("len(Runs()) = %d, want 2", len(text.Runs()))
	}
}

func TestShapedTextVertical(t *testing.T) {
	run := shaping.Output{
		Advance:    px(-30),
		LineBounds: lineBounds(10, -4),
		Direction:  di.DirectionTTB,
	}
	text := NewShapedText(run, run)
	if got, want := text.Bounds(), geom.MakeLTRB(-10, 0, 10, 60); !rectNear(got, want) {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
}

func TestShapedTextEmpty(t *testing.T) {
	if got := NewShapedText().Bounds(); !got.IsEmpty() {
		t.Errorf("Bounds() = %v, want empty", got)
	}
}

func TestTextBlobDraw(t *testing.T) {
	blob := NewBoundedText("hello", geom.MakeLTRB(0, -10, 40, 2))
	b := newTestBuilder()
	b.DrawTextBlob(blob, 5, 20)
	dl := b.Build()
	if got, want := dl.Bounds(), geom.MakeLTRB(5, 10, 45, 22); !rectNear(got, want) {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
}
