package iface

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
)

// Mask is a row-major per-pixel probability grid for one detected object.
type Mask struct {
	Width  int       `json:"width"`
	Height int       `json:"height"`
	Data   []float32 `json:"data"`
}

func NewMask(width, height int) Mask {
	return Mask{Width: width, Height: height, Data: make([]float32, width*height)}
}

func (m Mask) At(x, y int) float32 {
	return m.Data[y*m.Width+x]
}

func (m Mask) Set(x, y int, v float32) {
	m.Data[y*m.Width+x] = v
}

// DetectionSet is the raw detector output for one image.
// A nil Masks slice means the structure is absent; an empty non-nil slice means the
// detector ran and found nothing.
type DetectionSet struct {
	Masks []Mask      `json:"masks"`
	Boxes []Detection `json:"boxes,omitempty"`
}

// CalibrationContext is fixed for one analysis call.
type CalibrationContext struct {
	TotalArea     float64  `json:"total_area" yaml:"totalArea"`
	ROI           Position `json:"roi_point" yaml:"roiPoint"`
	ROIHalfSize   int      `json:"roi_half_size" yaml:"roiHalfSize"`
	MaskThreshold float64  `json:"mask_threshold" yaml:"maskThreshold"`
}

// CalibrationOverride is a per-request change to a base calibration. Nil fields keep the
// base value, so ROI (0,0) or a zero half size can still be requested explicitly.
type CalibrationOverride struct {
	TotalArea     *float64  `json:"total_area,omitempty"`
	ROI           *Position `json:"roi_point,omitempty"`
	ROIHalfSize   *int      `json:"roi_half_size,omitempty"`
	MaskThreshold *float64  `json:"mask_threshold,omitempty"`
}

// Apply returns base with every set field of o replaced. A nil o returns base.
func (o *CalibrationOverride) Apply(base CalibrationContext) CalibrationContext {
	if o == nil {
		return base
	}
	if o.TotalArea != nil {
		base.TotalArea = *o.TotalArea
	}
	if o.ROI != nil {
		base.ROI = *o.ROI
	}
	if o.ROIHalfSize != nil {
		base.ROIHalfSize = *o.ROIHalfSize
	}
	if o.MaskThreshold != nil {
		base.MaskThreshold = *o.MaskThreshold
	}
	return base
}

type MaskArea struct {
	Index     int     `json:"index"`
	PixelArea float64 `json:"pixel_area"`
	Percent   float64 `json:"percent"`
	Area      float64 `json:"area"`
}

// MaskAreaReport is built once per analysis and never mutated afterwards.
type MaskAreaReport struct {
	AllAreas      []MaskArea
	Target        *MaskArea
	ROIOutOfFrame bool
}

func (r *MaskAreaReport) Empty() bool {
	return len(r.AllAreas) == 0
}

// Status tells "nothing detected" apart from "nothing at the ROI".
func (r *MaskAreaReport) Status() string {
	switch {
	case r.Empty():
		return "no_detections"
	case r.Target == nil:
		return "no_target"
	default:
		return "target_found"
	}
}

// MarshalJSON writes masks in detection order so equal reports encode to equal bytes.
func (r MaskAreaReport) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"all_mask_area":{`)
	for i, a := range r.AllAreas {
		if i > 0 {
			buf.WriteByte(',')
		}
		writeEntry(&buf, a)
	}
	buf.WriteString(`},"target_mask":`)
	if r.Target == nil {
		buf.WriteString("null")
	} else {
		buf.WriteByte('{')
		writeEntry(&buf, *r.Target)
		buf.WriteByte('}')
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeEntry(buf *bytes.Buffer, a MaskArea) {
	buf.WriteByte('"')
	buf.WriteString(strconv.Itoa(a.Index))
	buf.WriteString(`":`)
	buf.WriteString(strconv.FormatFloat(a.Area, 'f', -1, 64))
}

type wireReport struct {
	AllMaskArea map[string]float64 `json:"all_mask_area"`
	TargetMask  map[string]float64 `json:"target_mask"`
}

// UnmarshalJSON reads the reporting shape back. Only indices and areas survive the
// round trip; pixel sums and percentages are not serialized.
func (r *MaskAreaReport) UnmarshalJSON(data []byte) error {
	var w wireReport
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	areas := make([]MaskArea, 0, len(w.AllMaskArea))
	for k, v := range w.AllMaskArea {
		idx, err := strconv.Atoi(k)
		if err != nil {
			return fmt.Errorf("all_mask_area key %q: %w", k, err)
		}
		areas = append(areas, MaskArea{Index: idx, Area: v})
	}
	sort.Slice(areas, func(i, j int) bool { return areas[i].Index < areas[j].Index })
	r.AllAreas = areas
	r.Target = nil
	if len(w.TargetMask) > 1 {
		return errors.New("target_mask must hold at most one entry")
	}
	for k, v := range w.TargetMask {
		idx, err := strconv.Atoi(k)
		if err != nil {
			return fmt.Errorf("target_mask key %q: %w", k, err)
		}
		r.Target = &MaskArea{Index: idx, Area: v}
	}
	return nil
}
