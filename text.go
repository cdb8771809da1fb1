package displaylist

import (
	"github.com/chewxy/math32"
	"github.com/go-text/typesetting/shaping"
	"github.com/gogpu/displaylist/geom"
	"golang.org/x/image/math/fixed"
)

// TextBlob is pre-shaped text. Shaping happens before recording; a display
// list only needs the ink bounds relative to the blob origin.
type TextBlob interface {
	Bounds() geom.Rect
}

func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}

// ShapedText is a line of runs produced by go-text/typesetting, laid out
// one after another from the origin, which sits on the baseline.
type ShapedText struct {
	runs   []shaping.Output
	bounds geom.Rect
}

// NewShapedText lays out runs in order. Vertical runs advance downward.
func NewShapedText(runs ...shaping.Output) *ShapedText {
	t := &ShapedText{runs: append([]shaping.Output(nil), runs...)}
	var pen float32
	for _, run := range t.runs {
		var r geom.Rect
		if run.Direction.IsVertical() {
			r = verticalRunBounds(run, pen)
			pen += math32.Abs(fixedToFloat(run.Advance))
		} else {
			r = horizontalRunBounds(run, pen)
			pen += fixedToFloat(run.Advance)
		}
		t.bounds = t.bounds.Union(r)
	}
	return t
}

func horizontalRunBounds(run shaping.Output, x float32) geom.Rect {
	ascent := max(fixedToFloat(run.LineBounds.Ascent), fixedToFloat(run.GlyphBounds.Ascent))
	descent := min(fixedToFloat(run.LineBounds.Descent), fixedToFloat(run.GlyphBounds.Descent))
	r := geom.MakeLTRB(x, -ascent, x+fixedToFloat(run.Advance), -descent).Sorted()
	pen := x
	for _, g := range run.Glyphs {
		left := pen + fixedToFloat(g.XOffset+g.XBearing)
		top := -fixedToFloat(g.YOffset + g.YBearing)
		ink := geom.MakeLTRB(left, top, left+fixedToFloat(g.Width), top-fixedToFloat(g.Height)).Sorted()
		r = r.Union(ink)
		pen += fixedToFloat(g.Advance)
	}
	return r
}

func verticalRunBounds(run shaping.Output, y float32) geom.Rect {
	half := max(fixedToFloat(run.LineBounds.Ascent), -fixedToFloat(run.LineBounds.Descent))
	return geom.MakeLTRB(-half, y, half, y+math32.Abs(fixedToFloat(run.Advance)))
}

// Runs returns the shaped runs.
func (t *ShapedText) Runs() []shaping.Output { return t.runs }

// Bounds returns the ink bounds relative to the origin.
func (t *ShapedText) Bounds() geom.Rect { return t.bounds }

// BoundedText is a text blob known only by its string and bounds, as used
// by tools that replay recordings without font access.
type BoundedText struct {
	Text string
	Rect geom.Rect
}

// NewBoundedText returns a blob with the given bounds.
func NewBoundedText(text string, bounds geom.Rect) *BoundedText {
	return &BoundedText{Text: text, Rect: bounds}
}

func (t *BoundedText) Bounds() geom.Rect { return t.Rect }
