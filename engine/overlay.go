package engine

import (
	iface "RooftopSolar/interface"
	"errors"
	"fmt"
	"image"
	"image/color"
	"strconv"

	"gocv.io/x/gocv"
)

const overlayThreshold = 0.5

var (
	maskColor  = color.RGBA{R: 255, A: 255}
	labelColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	roiColor   = color.RGBA{A: 255}
)

// Crop cuts a width x height window centred on (centerX, centerY), clipped to img.
// The returned Mat owns its data.
func Crop(img gocv.Mat, centerX, centerY, width, height int) (gocv.Mat, error) {
	x, y := centerX-width/2, centerY-height/2
	rect := image.Rect(x, y, x+width, y+height).Intersect(image.Rect(0, 0, img.Cols(), img.Rows()))
	if rect.Empty() {
		return gocv.NewMat(), fmt.Errorf("crop %dx%d at (%d,%d) is outside the %dx%d image", width, height, centerX, centerY, img.Cols(), img.Rows())
	}
	region := img.Region(rect)
	defer region.Close()
	return region.Clone(), nil
}

// RenderOverlay draws every mask in red at half opacity, the 1-based mask number at
// each box centre and a filled black dot at roi.
func RenderOverlay(img gocv.Mat, det *iface.DetectionSet, roi image.Point) (gocv.Mat, error) {
	if img.Empty() {
		return gocv.NewMat(), errors.New("empty image")
	}
	out := img.Clone()
	if det != nil && len(det.Masks) > 0 {
		layer := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0), img.Rows(), img.Cols(), img.Type())
		defer layer.Close()
		red := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(float64(maskColor.B), float64(maskColor.G), float64(maskColor.R), 0), img.Rows(), img.Cols(), img.Type())
		defer red.Close()
		for _, m := range det.Masks {
			bin, err := binaryMat(m, img.Cols(), img.Rows())
			if err != nil {
				_ = out.Close()
				return gocv.NewMat(), err
			}
			red.CopyToWithMask(&layer, bin)
			_ = bin.Close()
		}
		gocv.AddWeighted(out, 1.0, layer, 0.5, 0, &out)
	}
	if det != nil {
		for i, b := range det.Boxes {
			c := b.Box.Center()
			gocv.PutText(&out, strconv.Itoa(i+1), image.Pt(int(c.X), int(c.Y)), gocv.FontHersheySimplex, 0.5, labelColor, 2)
		}
	}
	gocv.Circle(&out, roi, 5, roiColor, -1)
	return out, nil
}

// binaryMat builds an 8-bit 0/255 mask at w x h from a probability mask.
func binaryMat(m iface.Mask, w, h int) (gocv.Mat, error) {
	bin := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0), m.Height, m.Width, gocv.MatTypeCV8U)
	buf, err := bin.DataPtrUint8()
	if err != nil {
		_ = bin.Close()
		return gocv.NewMat(), err
	}
	for i, p := range m.Data {
		if p > overlayThreshold {
			buf[i] = 255
		}
	}
	if m.Width == w && m.Height == h {
		return bin, nil
	}
	resized := gocv.NewMat()
	gocv.Resize(bin, &resized, image.Pt(w, h), 0, 0, gocv.InterpolationNearestNeighbor)
	_ = bin.Close()
	return resized, nil
}

// EncodePNG returns a copy of the PNG encoding of img.
func EncodePNG(img gocv.Mat) ([]byte, error) {
	buf, err := gocv.IMEncode(gocv.PNGFileExt, img)
	if err != nil {
		return nil, err
	}
	defer buf.Close()
	return append([]byte(nil), buf.GetBytes()...), nil
}
