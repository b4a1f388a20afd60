// Package kernel implements the escape-time iteration that classifies
// points of the complex plane, either one sample at a time or as a
// fixed-width batch of lanes iterated in lockstep. Both strategies return
// identical counts for identical samples.
package kernel

// MaxIterations is the iteration bound. A count of MaxIterations means the
// sample was not proven to escape and is treated as inside the set.
const MaxIterations = 255

// DefaultWidth is the lane count used by the frontends. Two lanes mirror
// the pairwise layout the batched strategy was designed around; any width
// yields the same counts.
const DefaultWidth = 2

// Interior reports whether c = cr + ci·i provably lies inside the set,
// testing the period-2 bulb and then the main cardioid. It never returns
// true for a point that escapes; points inside the set but outside both
// regions simply fall through to the full iteration.
func Interior(cr, ci float64) bool {
	// Period-2 bulb: (cr+1)^2 + ci^2 < 1/16
	if (cr+1.0)*(cr+1.0)+ci*ci < 0.0625 {
		return true
	}
	// Main cardioid: q*(q + (cr - 1/4)) < ci^2/4
	q := (cr-0.25)*(cr-0.25) + ci*ci
	return q*(q+(cr-0.25)) < 0.25*ci*ci
}

// Escape returns the escape count for a single sample: the number of
// applications of z = z^2 + c that keep |z|^2 below 4, so a sample whose
// very first iterate already escapes counts 0. Samples never proven to
// escape return MaxIterations, as do samples Interior proves inside, which
// skip the iteration entirely.
func Escape(cr, ci float64) int {
	if Interior(cr, ci) {
		return MaxIterations
	}
	return iterate(cr, ci)
}

// iterate is the raw scalar recurrence without the interior pre-filter.
func iterate(cr, ci float64) int {
	var zr, zi, zr2, zi2 float64
	for n := 0; n < MaxIterations; n++ {
		zi = 2.0*zr*zi + ci
		zr = zr2 - zi2 + cr
		zr2 = zr * zr
		zi2 = zi * zi
		if zr2+zi2 >= 4.0 {
			return n
		}
	}
	return MaxIterations
}

// Kernel iterates up to width samples in lockstep. Each lane carries its
// own z state and escape flag, so a lane that escapes freezes its count
// while the remaining lanes keep iterating. A Kernel holds per-lane
// scratch state and is not safe for concurrent use; give each worker its
// own.
type Kernel struct {
	width  int
	zr, zi []float64
	frozen []bool
}

// New returns a kernel with the given lane width. Widths below 1 are
// clamped to 1, the scalar instance.
func New(width int) *Kernel {
	if width < 1 {
		width = 1
	}
	return &Kernel{
		width:  width,
		zr:     make([]float64, width),
		zi:     make([]float64, width),
		frozen: make([]bool, width),
	}
}

// Width returns the lane count.
func (k *Kernel) Width() int {
	return k.width
}

// Counts fills counts[i] with the escape count of the sample
// (cr[i], ci[i]). The three slices must have equal length, at most the
// kernel width. Counts and Escape agree for every sample.
func (k *Kernel) Counts(cr, ci []float64, counts []int) {
	n := len(cr)
	if n == 1 {
		counts[0] = Escape(cr[0], ci[0])
		return
	}

	live := 0
	for l := 0; l < n; l++ {
		k.zr[l], k.zi[l] = 0, 0
		if Interior(cr[l], ci[l]) {
			counts[l] = MaxIterations
			k.frozen[l] = true
		} else {
			counts[l] = 0
			k.frozen[l] = false
			live++
		}
	}

	for i := 0; i < MaxIterations && live > 0; i++ {
		for l := 0; l < n; l++ {
			if k.frozen[l] {
				continue
			}
			zr2 := k.zr[l] * k.zr[l]
			zi2 := k.zi[l] * k.zi[l]
			k.zi[l] = 2.0*k.zr[l]*k.zi[l] + ci[l]
			k.zr[l] = zr2 - zi2 + cr[l]
			if k.zr[l]*k.zr[l]+k.zi[l]*k.zi[l] >= 4.0 {
				// Lane escaped: freeze its count, let the others run on.
				k.frozen[l] = true
				live--
			} else {
				counts[l]++
			}
		}
	}
}
