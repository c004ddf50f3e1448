package filter

import (
	"math"
	"sync"

	"github.com/gogpu/ggsvg/pixmap"
)

// boxThreshold is the standard deviation above which the Gaussian is
// approximated by three box blurs.
const boxThreshold = 2.0

// Blur applies a separable Gaussian blur to pm in place. sigmaX and sigmaY
// are standard deviations in pixels; a non-positive value skips that axis.
//
// Deviations above boxThreshold use three running-sum box passes, so the
// cost does not depend on sigma.
func Blur(pm *pixmap.Pixmap, sigmaX, sigmaY float64) {
	if !(sigmaX > 0) && !(sigmaY > 0) {
		return
	}
	w, h := pm.Width(), pm.Height()
	temp := getTempBuffer(w, h)
	defer putTempBuffer(temp)

	copyToTemp(pm, temp)
	switch {
	case sigmaX > boxThreshold:
		boxHorizontal(temp, w, h, boxPasses(sigmaX))
	case sigmaX > 0:
		blurHorizontal(temp, w, h, CachedGaussianKernel(sigmaX))
	}
	switch {
	case sigmaY > boxThreshold:
		boxVertical(temp, w, h, boxPasses(sigmaY))
	case sigmaY > 0:
		blurVertical(temp, w, h, CachedGaussianKernel(sigmaY))
	}
	copyFromTemp(temp, pm)
}

// boxPass is one box of the approximation: the window covers lo pixels
// before and hi pixels after the target, and the sum is scaled by inv.
type boxPass struct {
	lo, hi float64
	inv    float64
}

// boxPasses returns the three boxes approximating a Gaussian of deviation
// sigma: d = floor(sigma*3*sqrt(2*pi)/4 + 0.5); an odd d gives three
// centered boxes of size d, an even d two boxes of size d offset by half a
// pixel in opposite directions and one centered box of size d+1.
func boxPasses(sigma float64) [3]boxPass {
	d := math.Floor(sigma*3*math.Sqrt(2*math.Pi)/4 + 0.5)
	h := math.Floor(d / 2)
	if math.Mod(d, 2) == 1 {
		p := boxPass{lo: h, hi: h, inv: 1 / d}
		return [3]boxPass{p, p, p}
	}
	return [3]boxPass{
		{lo: h, hi: h - 1, inv: 1 / d},
		{lo: h - 1, hi: h, inv: 1 / d},
		{lo: h, hi: h, inv: 1 / (d + 1)},
	}
}

// span converts a window extent to pixels. Anything beyond n covers the
// whole line anyway.
func span(v float64, n int) int {
	if !(v < float64(n)) {
		return n
	}
	return max(int(v), 0)
}

// boxLine applies one box pass to n interleaved RGBA values. prefix must
// hold (n+1)*4 elements with the first four zero.
func boxLine(line []float32, prefix []float64, n int, p boxPass) {
	lo, hi := span(p.lo, n), span(p.hi, n)
	for i := range n {
		for c := range 4 {
			prefix[(i+1)*4+c] = prefix[i*4+c] + float64(line[i*4+c])
		}
	}
	for x := range n {
		a, b := max(0, x-lo), min(n, x+hi+1)
		for c := range 4 {
			line[x*4+c] = float32((prefix[b*4+c] - prefix[a*4+c]) * p.inv)
		}
	}
}

func boxHorizontal(buf []float32, width, height int, passes [3]boxPass) {
	prefix := make([]float64, (width+1)*4)
	for y := range height {
		line := buf[y*width*4 : (y+1)*width*4]
		for _, p := range passes {
			boxLine(line, prefix, width, p)
		}
	}
}

func boxVertical(buf []float32, width, height int, passes [3]boxPass) {
	prefix := make([]float64, (height+1)*4)
	col := make([]float32, height*4)
	for x := range width {
		for y := range height {
			copy(col[y*4:y*4+4], buf[(y*width+x)*4:])
		}
		for _, p := range passes {
			boxLine(col, prefix, height, p)
		}
		for y := range height {
			copy(buf[(y*width+x)*4:(y*width+x)*4+4], col[y*4:y*4+4])
		}
	}
}

// blurHorizontal convolves every row of buf with kernel.
func blurHorizontal(buf []float32, width, height int, kernel []float32) {
	half := len(kernel) / 2
	row := make([]float32, width*4)
	for y := range height {
		line := buf[y*width*4 : (y+1)*width*4]
		copy(row, line)
		for x := range width {
			var r, g, b, a float32
			for k, weight := range kernel {
				kx := x + k - half
				if kx < 0 || kx >= width {
					continue
				}
				i := kx * 4
				r += row[i] * weight
				g += row[i+1] * weight
				b += row[i+2] * weight
				a += row[i+3] * weight
			}
			i := x * 4
			line[i], line[i+1], line[i+2], line[i+3] = r, g, b, a
		}
	}
}

// blurVertical convolves every column of buf with kernel.
func blurVertical(buf []float32, width, height int, kernel []float32) {
	half := len(kernel) / 2
	col := make([]float32, height*4)
	for x := range width {
		for y := range height {
			copy(col[y*4:y*4+4], buf[(y*width+x)*4:])
		}
		for y := range height {
			var r, g, b, a float32
			for k, weight := range kernel {
				ky := y + k - half
				if ky < 0 || ky >= height {
					continue
				}
				i := ky * 4
				r += col[i] * weight
				g += col[i+1] * weight
				b += col[i+2] * weight
				a += col[i+3] * weight
			}
			i := (y*width + x) * 4
			buf[i], buf[i+1], buf[i+2], buf[i+3] = r, g, b, a
		}
	}
}

func copyToTemp(pm *pixmap.Pixmap, temp []float32) {
	for i, v := range pm.Data() {
		temp[i] = float32(v)
	}
}

// copyFromTemp writes temp back, keeping color channels at or below alpha.
func copyFromTemp(temp []float32, pm *pixmap.Pixmap) {
	data := pm.Data()
	for i := 0; i < len(data); i += 4 {
		a := clampUint8(temp[i+3])
		data[i] = min(clampUint8(temp[i]), a)
		data[i+1] = min(clampUint8(temp[i+1]), a)
		data[i+2] = min(clampUint8(temp[i+2]), a)
		data[i+3] = a
	}
}

type floatBuffer struct {
	data []float32
}

var tempBufferPool = sync.Pool{
	New: func() any {
		return &floatBuffer{data: make([]float32, 256*256*4)}
	},
}

// getTempBuffer returns a buffer of at least width*height*4 elements.
func getTempBuffer(width, height int) []float32 {
	size := width * height * 4
	wrapper := tempBufferPool.Get().(*floatBuffer)
	if len(wrapper.data) < size {
		tempBufferPool.Put(wrapper)
		return make([]float32, size)
	}
	return wrapper.data[:size]
}

func putTempBuffer(buf []float32) {
	if cap(buf) <= 16*1024*1024 {
		tempBufferPool.Put(&floatBuffer{data: buf[:cap(buf)]})
	}
}

// clampUint8 clamps v to [0, 255] and rounds to the nearest integer.
func clampUint8(v float32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
