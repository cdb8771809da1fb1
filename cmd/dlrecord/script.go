package main

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/image/draw"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/displaylist"
	"github.com/gogpu/displaylist/geom"
)

var (
	errUnknownOp  = errors.New("unknown op")
	errBadArg     = errors.New("bad argument")
	errUnbalanced = errors.New("unbalanced save/restore")
)

// Script is a scene recorded by dlrecord.
//
//	cull: [0, 0, 800, 600]
//	rtree: true
//	ops:
//	  - {op: save}
//	  - {op: clipRect, rect: [10, 10, 50, 50]}
//	  - {op: setColor, color: "#FF3366CC"}
//	  - {op: drawRect, rect: [0, 0, 100, 100]}
//	  - {op: restore}
type Script struct {
	Cull  []float32 `yaml:"cull"`
	RTree bool      `yaml:"rtree"`
	Ops   []Step    `yaml:"ops"`
}

// Step is one builder call. Only the fields the op uses are read.
type Step struct {
	Op string `yaml:"op"`

	Rect   []float32   `yaml:"rect"`
	Inner  []float32   `yaml:"inner"`
	Center []float32   `yaml:"center"`
	Points [][]float32 `yaml:"points"`
	Radius float32     `yaml:"radius"`

	X       float32 `yaml:"x"`
	Y       float32 `yaml:"y"`
	Degrees float32 `yaml:"degrees"`

	Start     float32 `yaml:"start"`
	Sweep     float32 `yaml:"sweep"`
	UseCenter bool    `yaml:"useCenter"`

	Color string  `yaml:"color"`
	Mode  string  `yaml:"mode"`
	Style string  `yaml:"style"`
	Width float32 `yaml:"width"`
	Sigma float32 `yaml:"sigma"`
	AA    bool    `yaml:"aa"`

	Clip       string  `yaml:"clip"`
	Attributes bool    `yaml:"attributes"`
	Backdrop   float32 `yaml:"backdrop"`

	Text      string  `yaml:"text"`
	Elevation float32 `yaml:"elevation"`

	Image    string `yaml:"image"`
	Size     []int  `yaml:"size"`
	Sampling string `yaml:"sampling"`
}

// ParseScript decodes a YAML script. Unknown keys are errors.
func ParseScript(r io.Reader) (*Script, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var s Script
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return &s, nil
		}
		return nil, fmt.Errorf("dlrecord: parse script: %w", err)
	}
	if s.Cull != nil && len(s.Cull) != 4 {
		return nil, fmt.Errorf("dlrecord: cull: %w: want 4 values, got %d", errBadArg, len(s.Cull))
	}
	return &s, nil
}

// Options returns the builder options the script header asks for.
// forceRTree enables the spatial index regardless of the header.
func (s *Script) Options(forceRTree bool) []displaylist.BuilderOption {
	opts := []displaylist.BuilderOption{displaylist.WithRTree(s.RTree || forceRTree)}
	if len(s.Cull) == 4 {
		opts = append(opts, displaylist.WithCullRect(geom.MakeLTRB(s.Cull[0], s.Cull[1], s.Cull[2], s.Cull[3])))
	}
	return opts
}

// Record plays the script into b and builds the result.
func (s *Script) Record(b *displaylist.Builder) (*displaylist.DisplayList, error) {
	for i, st := range s.Ops {
		if err := st.apply(b); err != nil {
			return nil, fmt.Errorf("dlrecord: op %d (%s): %w", i, st.Op, err)
		}
	}
	if n := b.SaveCount(); n != 1 {
		return nil, fmt.Errorf("dlrecord: %w: %d saves left open", errUnbalanced, n-1)
	}
	return b.Build(), nil
}

func (st *Step) apply(b *displaylist.Builder) error {
	switch st.Op {
	case "save":
		b.Save()
	case "saveLayer":
		var bounds *geom.Rect
		if st.Rect != nil {
			r, err := st.rect(st.Rect)
			if err != nil {
				return err
			}
			bounds = &r
		}
		var opts displaylist.SaveLayerOptions
		if st.Attributes {
			opts |= displaylist.RendersWithAttributes
		}
		var backdrop displaylist.ImageFilter
		if st.Backdrop > 0 {
			backdrop = displaylist.NewBlurImageFilter(st.Backdrop, st.Backdrop, displaylist.TileClamp)
		}
		b.SaveLayer(bounds, opts, backdrop)
	case "restore":
		if b.SaveCount() == 1 {
			return errUnbalanced
		}
		b.Restore()

	case "translate":
		b.Translate(st.X, st.Y)
	case "scale":
		b.Scale(st.X, st.Y)
	case "rotate":
		b.Rotate(st.Degrees)
	case "skew":
		b.Skew(st.X, st.Y)
	case "transformReset":
		b.TransformReset()

	case "clipRect", "clipRRect", "clipOval":
		r, err := st.rect(st.Rect)
		if err != nil {
			return err
		}
		op, err := parseClipOp(st.Clip)
		if err != nil {
			return err
		}
		switch st.Op {
		case "clipRect":
			b.ClipRect(r, op, st.AA)
		case "clipRRect":
			b.ClipRRect(geom.MakeRRectXY(r, st.Radius, st.Radius), op, st.AA)
		default:
			b.ClipRRect(geom.MakeOval(r), op, st.AA)
		}

	case "setColor":
		c, err := parseColor(st.Color)
		if err != nil {
			return err
		}
		b.SetColor(c)
	case "setStyle":
		style, err := parseStyle(st.Style)
		if err != nil {
			return err
		}
		b.SetStyle(style)
	case "setStrokeWidth":
		b.SetStrokeWidth(st.Width)
	case "setAntiAlias":
		b.SetAntiAlias(st.AA)
	case "setBlendMode":
		mode, ok := displaylist.ParseBlendMode(st.Mode)
		if !ok {
			return fmt.Errorf("%w: blend mode %q", errBadArg, st.Mode)
		}
		b.SetBlendMode(mode)
	case "setBlur":
		b.SetImageFilter(displaylist.NewBlurImageFilter(st.Sigma, st.Sigma, displaylist.TileDecal))
	case "setMaskBlur":
		b.SetMaskFilter(displaylist.NewBlurMaskFilter(displaylist.BlurNormal, st.Sigma, false))

	case "drawPaint":
		b.DrawPaint()
	case "drawColor":
		c, err := parseColor(st.Color)
		if err != nil {
			return err
		}
		mode := displaylist.BlendSourceOver
		if st.Mode != "" {
			var ok bool
			if mode, ok = displaylist.ParseBlendMode(st.Mode); !ok {
				return fmt.Errorf("%w: blend mode %q", errBadArg, st.Mode)
			}
		}
		b.DrawColor(c, mode)
	case "drawLine":
		pts, err := st.points(2)
		if err != nil {
			return err
		}
		if len(pts) != 2 {
			return fmt.Errorf("%w: drawLine wants 2 points, got %d", errBadArg, len(pts))
		}
		b.DrawLine(pts[0], pts[1])
	case "drawRect", "drawOval", "drawRRect", "drawArc":
		r, err := st.rect(st.Rect)
		if err != nil {
			return err
		}
		switch st.Op {
		case "drawRect":
			b.DrawRect(r)
		case "drawOval":
			b.DrawOval(r)
		case "drawRRect":
			b.DrawRRect(geom.MakeRRectXY(r, st.Radius, st.Radius))
		default:
			b.DrawArc(r, st.Start, st.Sweep, st.UseCenter)
		}
	case "drawDRRect":
		outer, err := st.rect(st.Rect)
		if err != nil {
			return err
		}
		inner, err := st.rect(st.Inner)
		if err != nil {
			return err
		}
		b.DrawDRRect(geom.MakeRRectXY(outer, st.Radius, st.Radius), geom.MakeRRectXY(inner, st.Radius, st.Radius))
	case "drawCircle":
		if len(st.Center) != 2 {
			return fmt.Errorf("%w: center wants 2 values, got %d", errBadArg, len(st.Center))
		}
		b.DrawCircle(geom.Pt(st.Center[0], st.Center[1]), st.Radius)
	case "drawPath", "drawPoints":
		pts, err := st.points(1)
		if err != nil {
			return err
		}
		if st.Op == "drawPoints" {
			mode, err := parsePointMode(st.Mode)
			if err != nil {
				return err
			}
			b.DrawPoints(mode, pts)
			return nil
		}
		b.DrawPath(polygon(pts))
	case "drawText":
		r, err := st.rect(st.Rect)
		if err != nil {
			return err
		}
		b.DrawTextBlob(displaylist.NewBoundedText(st.Text, r), st.X, st.Y)
	case "drawShadow":
		r, err := st.rect(st.Rect)
		if err != nil {
			return err
		}
		c, err := parseColor(st.Color)
		if err != nil {
			return err
		}
		p := geom.NewPath()
		p.AddRect(r)
		b.DrawShadow(p, c, st.Elevation, false, 1)
	case "drawImage":
		sampling, err := parseSampling(st.Sampling)
		if err != nil {
			return err
		}
		img, err := st.loadImage(sampling)
		if err != nil {
			return err
		}
		b.DrawImage(img, geom.Pt(st.X, st.Y), sampling, st.Attributes)

	default:
		return errUnknownOp
	}
	return nil
}

func (st *Step) rect(v []float32) (geom.Rect, error) {
	if len(v) != 4 {
		return geom.Rect{}, fmt.Errorf("%w: rect wants 4 values, got %d", errBadArg, len(v))
	}
	return geom.MakeLTRB(v[0], v[1], v[2], v[3]), nil
}

func (st *Step) points(minCount int) ([]geom.Point, error) {
	if len(st.Points) < minCount {
		return nil, fmt.Errorf("%w: want at least %d points, got %d", errBadArg, minCount, len(st.Points))
	}
	pts := make([]geom.Point, len(st.Points))
	for i, p := range st.Points {
		if len(p) != 2 {
			return nil, fmt.Errorf("%w: point %d wants 2 values, got %d", errBadArg, i, len(p))
		}
		pts[i] = geom.Pt(p[0], p[1])
	}
	return pts, nil
}

// loadImage decodes the PNG named by the step. With size set, the image
// is resampled to that size using the interpolator matching sampling.
func (st *Step) loadImage(sampling displaylist.Sampling) (*displaylist.GoImage, error) {
	f, err := os.Open(st.Image)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	src, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: image %q: %w", errBadArg, st.Image, err)
	}
	if st.Size == nil {
		return displaylist.FromImage(src), nil
	}
	if len(st.Size) != 2 || st.Size[0] <= 0 || st.Size[1] <= 0 {
		return nil, fmt.Errorf("%w: size wants 2 positive values, got %v", errBadArg, st.Size)
	}
	dst := image.NewRGBA(image.Rect(0, 0, st.Size[0], st.Size[1]))
	sampling.Interpolator().Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return displaylist.FromImage(dst), nil
}

func polygon(pts []geom.Point) *geom.Path {
	p := geom.NewPath()
	p.MoveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		p.LineTo(pt.X, pt.Y)
	}
	p.Close()
	return p
}

// parseColor accepts #RRGGBB and #AARRGGBB.
func parseColor(s string) (displaylist.Color, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || (len(hex) != 6 && len(hex) != 8) {
		return 0, fmt.Errorf("%w: color %q", errBadArg, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: color %q: %w", errBadArg, s, err)
	}
	if len(hex) == 6 {
		v |= 0xFF000000
	}
	return displaylist.Color(v), nil
}

func parseStyle(s string) (displaylist.DrawStyle, error) {
	switch s {
	case "fill", "":
		return displaylist.StyleFill, nil
	case "stroke":
		return displaylist.StyleStroke, nil
	case "strokeAndFill":
		return displaylist.StyleStrokeAndFill, nil
	}
	return 0, fmt.Errorf("%w: style %q", errBadArg, s)
}

func parseClipOp(s string) (displaylist.ClipOp, error) {
	switch s {
	case "intersect", "":
		return displaylist.ClipIntersect, nil
	case "difference":
		return displaylist.ClipDifference, nil
	}
	return 0, fmt.Errorf("%w: clip %q", errBadArg, s)
}

func parseSampling(s string) (displaylist.Sampling, error) {
	switch s {
	case "nearest", "":
		return displaylist.SamplingNearest, nil
	case "linear":
		return displaylist.SamplingLinear, nil
	case "mipmapLinear":
		return displaylist.SamplingMipmapLinear, nil
	case "cubic":
		return displaylist.SamplingCubic, nil
	}
	return 0, fmt.Errorf("%w: sampling %q", errBadArg, s)
}

func parsePointMode(s string) (displaylist.PointMode, error) {
	switch s {
	case "points", "":
		return displaylist.PointsEach, nil
	case "lines":
		return displaylist.PointsLines, nil
	case "polygon":
		return displaylist.PointsPolygon, nil
	}
	return 0, fmt.Errorf("%w: point mode %q", errBadArg, s)
}
