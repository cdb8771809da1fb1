package displaylist

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/gogpu/displaylist/geom"
)

func traceScene() *DisplayList {
	b := NewBuilder(WithCullRect(geom.MakeWH(100, 100)))
	b.SetColor(Red)
	b.Save()
	b.Translate(10, 10)
	b.DrawRect(geom.MakeLTRB(0, 0, 10, 10))
	b.DrawCircle(geom.Pt(5, 5), 2)
	b.Restore()
	return b.Build()
}

func TestTraceDispatcher(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	traceScene().Dispatch(NewTraceDispatcher(l))

	out := buf.String()
	for _, want := range []string{"SetColor", "color=#FFFF0000", "Save", "Translate", "DrawRect", "rect=\"[0 0 10 10]\"", "DrawCircle", "Restore"} {
		if !strings.Contains(out, want) {
			t.Errorf("trace output missing %q:\n%s", want, out)
		}
	}
}

func TestTraceDispatcherSilentByDefault(t *testing.T) {
	var calls int
	tr := NewTraceDispatcher(nil)
	traceScene().Dispatch(tr)
	tr.sink = func(OpType, int, []slog.Attr) { calls++ }
	traceScene().Dispatch(tr)
	if calls != 6 {
		t.Errorf("sink called %d times, want 6", calls)
	}
}

func TestStatsDispatcher(t *testing.T) {
	s := NewStatsDispatcher()
	traceScene().Dispatch(s)

	if got := s.Total(); got != 6 {
		t.Errorf("Total() = %d, want 6", got)
	}
	if got := s.Draws(); got != 2 {
		t.Errorf("Draws() = %d, want 2", got)
	}
	if got := s.Count(OpTranslate); got != 1 {
		t.Errorf("Count(Translate) = %d, want 1", got)
	}
	if got := s.Count(OpType(200)); got != 0 {
		t.Errorf("Count(invalid) = %d, want 0", got)
	}
	want := "DrawCircle=1 DrawRect=1 Restore=1 Save=1 SetColor=1 Translate=1"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestTraceBlendState(t *testing.T) {
	b := NewBuilder(WithCullRect(geom.MakeWH(100, 100)))
	b.SetBlendMode(BlendSourceOver)
	b.SetBlendMode(BlendMultiply)
	b.DrawRect(geom.MakeLTRB(0, 0, 10, 10))
	b.DrawColor(Blue, BlendHue)
	b.DrawColor(Blue, BlendPlus)
	dl := b.Build()

	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	dl.Dispatch(NewTraceDispatcher(l))
	out := buf.String()
	for _, want := range []string{
		"mode=Multiply fixed_function=false",
		"mode=Hue fixed_function=false",
		"mode=Plus fixed_function=true src_factor=One dst_factor=One",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("trace output missing %q:\n%s", want, out)
		}
	}

	s := NewStatsDispatcher()
	dl.Dispatch(s)
	if got := s.ShaderBlends(); got != 2 {
		t.Errorf("ShaderBlends() = %d, want 2", got)
	}
}

func TestTracePictureNested(t *testing.T) {
	inner := traceScene()
	b := NewBuilder(WithCullRect(geom.MakeWH(100, 100)))
	m := geom.Translate44(5, 5).AsM33()
	b.DrawPicture(inner, &m, false)
	b.DrawPicture(inner, nil, true)

	s := NewStatsDispatcher()
	b.Build().Dispatch(s)
	if got := s.Count(OpDrawPicture); got != 2 {
		t.Errorf("Count(DrawPicture) = %d, want 2", got)
	}
	if got := s.Count(OpDrawRect); got != 2 {
		t.Errorf("Count(DrawRect) = %d, want 2", got)
	}
	if got := s.Total(); got != 2+2*6 {
		t.Errorf("Total() = %d, want %d", got, 2+2*6)
	}
}

func TestOpTypeString(t *testing.T) {
	tests := []struct {
		op   OpType
		want string
	}{
		{OpSetAntiAlias, "SetAntiAlias"},
		{OpSaveLayer, "SaveLayer"},
		{OpDrawImageLattice, "DrawImageLattice"},
		{OpDrawPicture, "DrawPicture"},
		{OpDrawShadow, "DrawShadow"},
		{opCount, "Unknown"},
		{OpType(255), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("OpType(%d).String() = %q, want %q", tt.op, got, tt.want)
		}
	}
	for op := OpSetAntiAlias; op < opCount; op++ {
		if op.String() == "" {
			t.Errorf("OpType(%d) has no name", op)
		}
	}
	if OpClipPath.IsDraw() || !OpDrawPaint.IsDraw() || !OpDrawShadow.IsDraw() {
		t.Error("IsDraw() misclassifies ops")
	}
}
