package analysis

import (
	iface "RooftopSolar/interface"
	"math"
)

// window is a half-open pixel rectangle [x0,x1) x [y0,y1).
type window struct {
	x0, x1, y0, y1 int
}

// roiWindow clips the square of side 2*half+1 centred on the ROI point to the grid.
func roiWindow(cal iface.CalibrationContext, w, h int) window {
	cx := int(math.Floor(float64(cal.ROI.X)))
	cy := int(math.Floor(float64(cal.ROI.Y)))
	half := cal.ROIHalfSize
	return window{
		x0: max(0, cx-half),
		x1: min(w, cx+half+1),
		y0: max(0, cy-half),
		y1: min(h, cy+half+1),
	}
}

func (win window) empty() bool {
	return win.x0 >= win.x1 || win.y0 >= win.y1
}

func (win window) anyAbove(m iface.Mask, threshold float32) bool {
	for y := win.y0; y < win.y1; y++ {
		row := m.Data[y*m.Width : (y+1)*m.Width]
		for x := win.x0; x < win.x1; x++ {
			if row[x] > threshold {
				return true
			}
		}
	}
	return false
}
