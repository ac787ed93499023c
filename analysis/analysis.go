// Package analysis turns per-object segmentation masks into calibrated ground areas and
// picks the mask that covers the region of interest.
package analysis

import (
	iface "RooftopSolar/interface"
	"RooftopSolar/logger"
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"
)

var (
	ErrMalformedInput     = errors.New("malformed detection input")
	ErrInvalidCalibration = fmt.Errorf("%w: invalid calibration", ErrMalformedInput)
	ErrNoDetections       = errors.New("no masks found in the detections")
)

// Capture tooling constants: a 540x470 crop whose marker sits at (270,235), framing
// roughly 36000 square metres at the capture zoom.
const (
	DefaultTotalArea     = 36000
	DefaultROIX          = 270
	DefaultROIY          = 235
	DefaultROIHalfSize   = 20
	DefaultMaskThreshold = 0.5
)

func DefaultCalibration() iface.CalibrationContext {
	return iface.CalibrationContext{
		TotalArea:     DefaultTotalArea,
		ROI:           iface.Position{X: DefaultROIX, Y: DefaultROIY},
		ROIHalfSize:   DefaultROIHalfSize,
		MaskThreshold: DefaultMaskThreshold,
	}
}

type options struct {
	allowEmpty bool
	log        *zap.Logger
}

type Option func(*options)

// AllowEmpty makes a zero-mask detection set produce an empty report instead of ErrNoDetections.
func AllowEmpty() Option {
	return func(o *options) { o.allowEmpty = true }
}

func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.log = l }
}

// ValidateCalibration reports ErrInvalidCalibration for values no capture setup can produce.
func ValidateCalibration(cal iface.CalibrationContext) error {
	if math.IsNaN(cal.TotalArea) || math.IsInf(cal.TotalArea, 0) || cal.TotalArea < 0 {
		return fmt.Errorf("%w: total area %v", ErrInvalidCalibration, cal.TotalArea)
	}
	if !(cal.MaskThreshold > 0 && cal.MaskThreshold < 1) {
		return fmt.Errorf("%w: mask threshold %v outside (0,1)", ErrInvalidCalibration, cal.MaskThreshold)
	}
	if cal.ROIHalfSize < 0 {
		return fmt.Errorf("%w: negative roi half size %d", ErrInvalidCalibration, cal.ROIHalfSize)
	}
	return nil
}

// Analyze computes the calibrated area of every mask and the first mask, in detection
// order, with an in-mask pixel inside the ROI window.
//
// Area uses the raw probability sum while containment uses the thresholded mask. The two
// differ on purpose: area is confidence weighted, containment is a yes/no decision.
func Analyze(det *iface.DetectionSet, cal iface.CalibrationContext, opts ...Option) (*iface.MaskAreaReport, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	log := o.log
	if log == nil {
		log = logger.Log()
	}

	if det == nil || det.Masks == nil {
		return nil, fmt.Errorf("%w: detection structure absent", ErrMalformedInput)
	}
	if err := ValidateCalibration(cal); err != nil {
		return nil, err
	}
	if len(det.Masks) == 0 {
		if o.allowEmpty {
			return &iface.MaskAreaReport{AllAreas: []iface.MaskArea{}}, nil
		}
		return nil, ErrNoDetections
	}
	h, w, err := gridSize(det.Masks)
	if err != nil {
		return nil, err
	}

	totalPixels := float64(h * w)
	log.Debug("analyzing masks", zap.Int("masks", len(det.Masks)), zap.Float64("totalPixels", totalPixels))

	areas := make([]iface.MaskArea, len(det.Masks))
	for i, m := range det.Masks {
		pixelArea := probabilitySum(m)
		percent := pixelArea / totalPixels * 100
		areas[i] = iface.MaskArea{
			Index:     i + 1,
			PixelArea: pixelArea,
			Percent:   percent,
			Area:      round2(percent * cal.TotalArea / 100),
		}
		log.Debug("mask area",
			zap.Int("mask", i+1),
			zap.Float64("pixelArea", pixelArea),
			zap.Float64("percentArea", round2(percent)),
			zap.Float64("actualArea", areas[i].Area))
	}

	report := &iface.MaskAreaReport{AllAreas: areas}
	win := roiWindow(cal, w, h)
	if win.empty() {
		log.Warn("roi window falls outside the mask grid",
			zap.Float32("x", cal.ROI.X), zap.Float32("y", cal.ROI.Y),
			zap.Int("halfSize", cal.ROIHalfSize), zap.Int("width", w), zap.Int("height", h))
		report.ROIOutOfFrame = true
		return report, nil
	}

	for i, m := range det.Masks {
		hit := win.anyAbove(m, float32(cal.MaskThreshold))
		log.Debug("roi containment check",
			zap.Int("mask", i+1),
			zap.Int("xMin", win.x0), zap.Int("xMax", win.x1),
			zap.Int("yMin", win.y0), zap.Int("yMax", win.y1),
			zap.Bool("hit", hit))
		if hit {
			target := areas[i]
			report.Target = &target
			break
		}
	}
	if report.Target == nil {
		log.Debug("roi does not fall within any mask")
	}
	return report, nil
}

func gridSize(masks []iface.Mask) (int, int, error) {
	h, w := masks[0].Height, masks[0].Width
	if h <= 0 || w <= 0 {
		return 0, 0, fmt.Errorf("%w: mask 1 has dimensions %dx%d", ErrMalformedInput, w, h)
	}
	for i, m := range masks {
		if m.Height != h || m.Width != w {
			return 0, 0, fmt.Errorf("%w: mask %d is %dx%d, expected %dx%d", ErrMalformedInput, i+1, m.Width, m.Height, w, h)
		}
		if len(m.Data) != w*h {
			return 0, 0, fmt.Errorf("%w: mask %d holds %d values, expected %d", ErrMalformedInput, i+1, len(m.Data), w*h)
		}
		for j, p := range m.Data {
			if !(p >= 0 && p <= 1) {
				return 0, 0, fmt.Errorf("%w: mask %d value %v at (%d,%d) is not a probability", ErrMalformedInput, i+1, p, j%w, j/w)
			}
		}
	}
	return h, w, nil
}

func probabilitySum(m iface.Mask) float64 {
	var sum float64
	for _, p := range m.Data {
		sum += float64(p)
	}
	return sum
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
