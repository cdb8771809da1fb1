package displaylist

import "github.com/gogpu/displaylist/geom"

// MaxCullRect is the default cull rect. It is large but finite, so floods
// without a clip still produce finite bounds.
var MaxCullRect = geom.MakeLTRB(-1e9, -1e9, 1e9, 1e9)

// BuilderOption configures a Builder during creation.
//
// Example:
//
//	b := displaylist.NewBuilder(
//	    displaylist.WithCullRect(geom.MakeWH(800, 600)),
//	    displaylist.WithRTree(true),
//	)
type BuilderOption func(*builderOptions)

// builderOptions holds optional configuration for Builder creation.
type builderOptions struct {
	cullRect        geom.Rect
	rtree           bool
	initialCapacity int
}

// defaultOptions returns the default builder options.
func defaultOptions() builderOptions {
	return builderOptions{
		cullRect: MaxCullRect,
	}
}

// WithCullRect sets the outermost clip of every recording. Ops outside it
// do not contribute to bounds. Use geom.LargestRect for no cull rect;
// floods then mark the recording unbounded.
func WithCullRect(r geom.Rect) BuilderOption {
	return func(o *builderOptions) {
		o.cullRect = r
	}
}

// WithRTree makes Build produce a spatial index of the recorded ops, which
// enables DisplayList.DispatchCulled to skip ops outside a region.
func WithRTree(enabled bool) BuilderOption {
	return func(o *builderOptions) {
		o.rtree = enabled
	}
}

// WithInitialCapacity sets the initial size in bytes of the command buffer.
func WithInitialCapacity(n int) BuilderOption {
	return func(o *builderOptions) {
		o.initialCapacity = n
	}
}
