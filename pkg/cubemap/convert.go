package cubemap

import (
	"image"
	"runtime"
	"sync"
	"sync/atomic"
)

// ProgressFunc receives rasterization progress as columns complete.
// Implementations are called concurrently from worker goroutines and
// must be safe for concurrent use.
type ProgressFunc func(done, total int)

// Option configures a conversion.
type Option func(*options)

type options struct {
	workers  int
	progress ProgressFunc
}

// WithWorkers sets the number of rasterization goroutines.
// Values below 1 select runtime.NumCPU().
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithProgress installs a progress callback. Without it the conversion
// produces no output of any kind besides the returned image.
func WithProgress(fn ProgressFunc) Option {
	return func(o *options) {
		o.progress = fn
	}
}

// Convert rasterizes the face set into an equirectangular panorama of
// exactly (4S, 2S) pixels, where S is the face side length.
//
// Each destination pixel is computed independently: its spherical
// angle is projected onto one cube face and the face texel is copied
// with nearest-neighbor sampling. Columns are partitioned across
// workers, so writes are disjoint and need no locking; the output is
// byte-identical for any worker count. Validation failures are
// reported before any pixel is written, and no partial image is ever
// returned.
func Convert(set *FaceSet, opts ...Option) (*image.RGBA, error) {
	if set == nil {
		return nil, ErrNilFaceSet
	}
	// A FaceSet built without NewFaceSet has no faces and side 0.
	side := set.Side()
	if side < 1 {
		return nil, ErrZeroSide
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	w, h := 4*side, 2*side
	dst := image.NewRGBA(image.Rect(0, 0, w, h))

	workers := o.workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	if workers > w {
		workers = w
	}
	step := (w + workers - 1) / workers

	var done atomic.Int64
	var wg sync.WaitGroup

	for from := 0; from < w; from += step {
		to := min(from+step, w)

		wg.Add(1)
		go func(from, to int) {
			defer wg.Done()
			for j := from; j < to; j++ {
				rasterizeColumn(set, dst, side, j, h, w)
				if o.progress != nil {
					o.progress(int(done.Add(1)), w)
				}
			}
		}(from, to)
	}

	wg.Wait()
	return dst, nil
}

// rasterizeColumn fills destination column j. Every write lands inside
// the column, keeping workers disjoint.
func rasterizeColumn(set *FaceSet, dst *image.RGBA, side, j, h, w int) {
	for i := 0; i < h; i++ {
		c := Project(AngleAt(i, j, w, h), side)
		src := set.Image(c.Face)

		so := src.PixOffset(c.X, c.Y)
		do := dst.PixOffset(j, i)
		copy(dst.Pix[do:do+4], src.Pix[so:so+4])
	}
}
