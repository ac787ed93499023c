package engine

import (
	iface "RooftopSolar/interface"
	"fmt"
	"image"
	"math"
	"sort"

	"gocv.io/x/gocv"
)

type tensor struct {
	dims []int
	data []float32
}

type decodeParams struct {
	conf      float32
	iou       float32
	names     []string
	inputSize int
	imgW      int
	imgH      int
}

type candidate struct {
	rect   image.Rectangle
	x1, y1 float32
	x2, y2 float32
	score  float32
	class  int
	coeffs []float32
}

// decodeSegmentation turns YOLOv8-seg head output into index-stable detections.
// pred is [1, 4+nc+nm, N] with (cx, cy, w, h) in input pixels; protos is [1, nm, ph, pw].
func decodeSegmentation(pred, protos tensor, p decodeParams) (*iface.DetectionSet, error) {
	if len(pred.dims) != 3 || len(protos.dims) != 4 {
		return nil, fmt.Errorf("unexpected output shapes %v and %v", pred.dims, protos.dims)
	}
	channels, n := pred.dims[1], pred.dims[2]
	nm, ph, pw := protos.dims[1], protos.dims[2], protos.dims[3]
	nc := channels - 4 - nm
	if nc <= 0 {
		return nil, fmt.Errorf("head has %d channels, too few for %d mask coefficients", channels, nm)
	}
	if len(pred.data) < channels*n || len(protos.data) < nm*ph*pw {
		return nil, fmt.Errorf("output tensors shorter than their shapes")
	}
	if p.imgW <= 0 || p.imgH <= 0 || p.inputSize <= 0 {
		return nil, fmt.Errorf("invalid image size %dx%d for input %d", p.imgW, p.imgH, p.inputSize)
	}

	at := func(c, i int) float32 { return pred.data[c*n+i] }
	sx := float32(p.imgW) / float32(p.inputSize)
	sy := float32(p.imgH) / float32(p.inputSize)

	var cands []candidate
	for i := 0; i < n; i++ {
		best, cls := float32(-1), -1
		for c := 0; c < nc; c++ {
			if s := at(4+c, i); s > best {
				best, cls = s, c
			}
		}
		if best < p.conf {
			continue
		}
		cx, cy, w, h := at(0, i), at(1, i), at(2, i), at(3, i)
		x1 := clampF((cx-w/2)*sx, 0, float32(p.imgW))
		y1 := clampF((cy-h/2)*sy, 0, float32(p.imgH))
		x2 := clampF((cx+w/2)*sx, 0, float32(p.imgW))
		y2 := clampF((cy+h/2)*sy, 0, float32(p.imgH))
		coeffs := make([]float32, nm)
		for k := 0; k < nm; k++ {
			coeffs[k] = at(4+nc+k, i)
		}
		cands = append(cands, candidate{
			rect:   image.Rect(int(x1), int(y1), int(math.Ceil(float64(x2))), int(math.Ceil(float64(y2)))),
			x1:     x1,
			y1:     y1,
			x2:     x2,
			y2:     y2,
			score:  best,
			class:  cls,
			coeffs: coeffs,
		})
	}

	det := &iface.DetectionSet{Masks: []iface.Mask{}, Boxes: []iface.Detection{}}
	if len(cands) == 0 {
		return det, nil
	}

	rects := make([]image.Rectangle, len(cands))
	scores := make([]float32, len(cands))
	for i, c := range cands {
		rects[i] = c.rect
		scores[i] = c.score
	}
	keep := gocv.NMSBoxes(rects, scores, p.conf, p.iou)
	sort.SliceStable(keep, func(a, b int) bool { return cands[keep[a]].score > cands[keep[b]].score })

	for order, idx := range keep {
		c := cands[idx]
		mask, err := instanceMask(c, protos.data, nm, ph, pw, p.imgW, p.imgH)
		if err != nil {
			return nil, err
		}
		name := ""
		if c.class < len(p.names) {
			name = p.names[c.class]
		}
		det.Masks = append(det.Masks, mask)
		det.Boxes = append(det.Boxes, iface.Detection{
			Index: order + 1,
			Class: name,
			Conf:  c.score,
			Box:   iface.NewBox(c.x1, c.y1, c.x2, c.y2),
		})
	}
	return det, nil
}

// instanceMask combines prototypes with the instance coefficients, applies a sigmoid,
// upsamples to the image and zeroes everything outside the instance box.
func instanceMask(c candidate, protos []float32, nm, ph, pw, imgW, imgH int) (iface.Mask, error) {
	low := make([]float32, ph*pw)
	plane := ph * pw
	for px := 0; px < plane; px++ {
		var v float32
		for k := 0; k < nm; k++ {
			v += c.coeffs[k] * protos[k*plane+px]
		}
		low[px] = sigmoid(v)
	}
	full, err := resizeFloat(low, pw, ph, imgW, imgH)
	if err != nil {
		return iface.Mask{}, err
	}
	mask := iface.Mask{Width: imgW, Height: imgH, Data: full}
	x0, y0 := int(c.x1), int(c.y1)
	x1, y1 := int(math.Ceil(float64(c.x2))), int(math.Ceil(float64(c.y2)))
	for y := 0; y < imgH; y++ {
		row := mask.Data[y*imgW : (y+1)*imgW]
		for x := range row {
			if x < x0 || x >= x1 || y < y0 || y >= y1 {
				row[x] = 0
			}
		}
	}
	return mask, nil
}

// resizeFloat bilinearly resizes a single-channel float grid with OpenCV.
func resizeFloat(src []float32, sw, sh, dw, dh int) ([]float32, error) {
	if sw == dw && sh == dh {
		return append([]float32(nil), src...), nil
	}
	in := gocv.NewMatWithSize(sh, sw, gocv.MatTypeCV32F)
	defer in.Close()
	buf, err := in.DataPtrFloat32()
	if err != nil {
		return nil, err
	}
	copy(buf, src)
	out := gocv.NewMat()
	defer out.Close()
	gocv.Resize(in, &out, image.Pt(dw, dh), 0, 0, gocv.InterpolationLinear)
	res, err := out.DataPtrFloat32()
	if err != nil {
		return nil, err
	}
	return append([]float32(nil), res...), nil
}

func sigmoid(v float32) float32 {
	return float32(1 / (1 + math.Exp(-float64(v))))
}

func clampF(v, lo, hi float32) float32 {
	return max(lo, min(v, hi))
}
