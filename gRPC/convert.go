package proto

import (
	iface "RooftopSolar/interface"
	"RooftopSolar/pool"
)

// override maps the optional wire fields onto a CalibrationOverride; a missing
// roi_point keeps the server ROI.
func override(c *Calibration) *iface.CalibrationOverride {
	if c == nil {
		return nil
	}
	o := &iface.CalibrationOverride{
		TotalArea:     c.TotalArea,
		MaskThreshold: c.MaskThreshold,
	}
	if p := c.GetRoiPoint(); p != nil {
		o.ROI = &iface.Position{X: p.GetX(), Y: p.GetY()}
	}
	if c.RoiHalfSize != nil {
		n := int(*c.RoiHalfSize)
		o.ROIHalfSize = &n
	}
	return o
}

func cropFromProto(c *CropRect) *pool.CropRect {
	if c == nil {
		return nil
	}
	return &pool.CropRect{
		CenterX: int(c.GetCenterX()),
		CenterY: int(c.GetCenterY()),
		Width:   int(c.GetWidth()),
		Height:  int(c.GetHeight()),
	}
}

// detectionSet always returns a non-nil Masks slice: an empty repeated field means
// the caller's detector ran and found nothing.
func detectionSet(masks []*Mask) *iface.DetectionSet {
	set := &iface.DetectionSet{Masks: make([]iface.Mask, 0, len(masks))}
	for _, m := range masks {
		set.Masks = append(set.Masks, iface.Mask{
			Width:  int(m.GetWidth()),
			Height: int(m.GetHeight()),
			Data:   m.GetData(),
		})
	}
	return set
}

func reportToProto(r *iface.MaskAreaReport) *MaskAreaReport {
	if r == nil {
		return nil
	}
	out := &MaskAreaReport{
		AllMaskArea:   make(map[int32]float64, len(r.AllAreas)),
		RoiOutOfFrame: r.ROIOutOfFrame,
	}
	for _, a := range r.AllAreas {
		out.AllMaskArea[int32(a.Index)] = a.Area
	}
	if r.Target != nil {
		out.TargetMask = &MaskArea{Index: int32(r.Target.Index), Area: r.Target.Area}
	}
	return out
}

func point(p iface.Position) *Point {
	return &Point{X: p.X, Y: p.Y}
}

func detectionsToProto(ds []iface.Detection) []*Detection {
	out := make([]*Detection, 0, len(ds))
	for _, d := range ds {
		out = append(out, &Detection{
			Index:     int32(d.Index),
			ClassName: d.Class,
			Conf:      d.Conf,
			Box:       &Box{Lt: point(d.Box.LT), Rt: point(d.Box.RT), Rb: point(d.Box.RB), Lb: point(d.Box.LB)},
		})
	}
	return out
}
