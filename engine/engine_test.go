package engine

import (
	"RooftopSolar/analysis"
	iface "RooftopSolar/interface"
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv"
)

func TestDetector_All(t *testing.T) {
	names := iface.NamesConf{
		IsFile: false,
		Data:   []string{"rooftop"},
	}
	d := &Detector{}

	t.Run("Test Detect Before New", func(t *testing.T) {
		_, err := d.Detect(gocv.NewMat())
		assert.ErrorIs(t, err, ErrNotRegistered)
	})

	t.Run("Test New", func(t *testing.T) {
		assert.True(t, d.New())
		assert.Equal(t, REGISTERED, d.State)
		assert.Equal(t, DefaultInputSize, d.InputSize)
	})

	t.Run("Test Detect Before LoadModel", func(t *testing.T) {
		_, err := d.Detect(gocv.NewMat())
		assert.ErrorIs(t, err, ErrNotLoaded)
	})

	t.Run("Test LoadModel Rejects Non ONNX", func(t *testing.T) {
		state, err := d.LoadModel("model/rooftop.param", names, 0.8, 0.8, false)
		assert.Error(t, err)
		assert.False(t, state)
	})

	t.Run("Test LoadModel Rejects Bad Thresholds", func(t *testing.T) {
		_, err := d.LoadModel("model/rooftop.onnx", names, 1.5, 0.8, false)
		assert.Error(t, err)
		_, err = d.LoadModel("model/rooftop.onnx", names, 0.8, -0.1, false)
		assert.Error(t, err)
	})

	t.Run("Test CheckConfig", func(t *testing.T) {
		d.SetInputSize(1280)
		config := d.CheckConfig()
		assert.Equal(t, 1280, config.InputSize)
		assert.Equal(t, false, config.Names.IsFile)
	})

	t.Run("Test Destroy", func(t *testing.T) {
		d.Destroy()
		assert.Equal(t, "", d.ModelPath)
		assert.Equal(t, float32(0), d.Conf)
		assert.Equal(t, UNREGISTERED, d.State)
	})
}

// headTensor lays out a [1, 4+nc+nm, N] head from per-candidate rows of
// (cx, cy, w, h, scores..., coeffs...).
func headTensor(rows [][]float32) tensor {
	channels, n := len(rows[0]), len(rows)
	data := make([]float32, channels*n)
	for i, r := range rows {
		for c, v := range r {
			data[c*n+i] = v
		}
	}
	return tensor{dims: []int{1, channels, n}, data: data}
}

func flatProtos(v float32) tensor {
	return tensor{dims: []int{1, 1, 2, 2}, data: []float32{v, v, v, v}}
}

func TestDecodeSegmentation(t *testing.T) {
	pred := headTensor([][]float32{
		{1, 1, 2, 2, 0.9, 1},
		{3, 3, 2, 2, 0.3, 1},
	})
	p := decodeParams{conf: 0.5, iou: 0.5, names: []string{"rooftop"}, inputSize: 4, imgW: 8, imgH: 8}

	det, err := decodeSegmentation(pred, flatProtos(10), p)
	require.NoError(t, err)
	require.Len(t, det.Masks, 1)
	require.Len(t, det.Boxes, 1)

	m := det.Masks[0]
	assert.Equal(t, 8, m.Width)
	assert.Equal(t, 8, m.Height)
	assert.Greater(t, m.At(1, 1), float32(0.99))
	assert.Greater(t, m.At(3, 3), float32(0.99))
	assert.Equal(t, float32(0), m.At(5, 5))

	b := det.Boxes[0]
	assert.Equal(t, 1, b.Index)
	assert.Equal(t, "rooftop", b.Class)
	assert.Equal(t, iface.NewBox(0, 0, 4, 4), b.Box)
}

func TestDecodeSegmentation_OrderedByConfidence(t *testing.T) {
	pred := headTensor([][]float32{
		{1, 1, 2, 2, 0.6, 1},
		{3, 3, 2, 2, 0.9, 1},
	})
	p := decodeParams{conf: 0.5, iou: 0.5, names: []string{"rooftop"}, inputSize: 4, imgW: 8, imgH: 8}

	det, err := decodeSegmentation(pred, flatProtos(10), p)
	require.NoError(t, err)
	require.Len(t, det.Masks, 2)
	assert.InDelta(t, 0.9, det.Boxes[0].Conf, 1e-6)
	assert.InDelta(t, 0.6, det.Boxes[1].Conf, 1e-6)
	assert.Greater(t, det.Masks[0].At(6, 6), float32(0.5))
	assert.Equal(t, float32(0), det.Masks[0].At(1, 1))

	cal := iface.CalibrationContext{TotalArea: 64, ROI: iface.Position{X: 6, Y: 6}, ROIHalfSize: 0, MaskThreshold: 0.5}
	report, err := analysis.Analyze(det, cal)
	require.NoError(t, err)
	require.NotNil(t, report.Target)
	assert.Equal(t, 1, report.Target.Index)
	assert.InDelta(t, 16, report.Target.Area, 0.01)
}

func TestDecodeSegmentation_NothingAboveConfidence(t *testing.T) {
	pred := headTensor([][]float32{{1, 1, 2, 2, 0.1, 1}})
	p := decodeParams{conf: 0.5, iou: 0.5, inputSize: 4, imgW: 8, imgH: 8}

	det, err := decodeSegmentation(pred, flatProtos(10), p)
	require.NoError(t, err)
	assert.NotNil(t, det.Masks)
	assert.Empty(t, det.Masks)
}

func TestDecodeSegmentation_BadShapes(t *testing.T) {
	p := decodeParams{conf: 0.5, iou: 0.5, inputSize: 4, imgW: 8, imgH: 8}
	_, err := decodeSegmentation(tensor{dims: []int{1, 5}}, flatProtos(1), p)
	assert.Error(t, err)

	// four box channels plus one coefficient leaves no room for a class score
	pred := headTensor([][]float32{{1, 1, 2, 2, 1}})
	_, err = decodeSegmentation(pred, flatProtos(1), p)
	assert.Error(t, err)
}

func TestRenderOverlay(t *testing.T) {
	img := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0), 64, 64, gocv.MatTypeCV8UC3)
	defer img.Close()

	pred := headTensor([][]float32{{1, 1, 2, 2, 0.9, 1}})
	det, err := decodeSegmentation(pred, flatProtos(10), decodeParams{conf: 0.5, iou: 0.5, inputSize: 4, imgW: 64, imgH: 64})
	require.NoError(t, err)

	out, err := RenderOverlay(img, det, image.Pt(60, 60))
	require.NoError(t, err)
	defer out.Close()

	assert.Greater(t, out.GetVecbAt(2, 2)[2], uint8(0))
	assert.Equal(t, uint8(0), out.GetVecbAt(10, 40)[2])

	png, err := EncodePNG(out)
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestCrop(t *testing.T) {
	img := gocv.NewMatWithSize(80, 100, gocv.MatTypeCV8UC3)
	defer img.Close()

	c, err := Crop(img, 50, 40, 20, 10)
	require.NoError(t, err)
	defer c.Close()
	assert.Equal(t, 20, c.Cols())
	assert.Equal(t, 10, c.Rows())

	_, err = Crop(img, 500, 500, 20, 10)
	assert.Error(t, err)
}

func TestReadLinesReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "names.txt")
	require.NoError(t, os.WriteFile(path, []byte("rooftop\r\nsolar_panel\r\n\r\n"), 0o644))

	lines, err := ReadLinesReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"rooftop", "solar_panel"}, lines)
}

func TestResolveNames(t *testing.T) {
	names, err := resolveNames(iface.NamesConf{Data: []any{"a", "b"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names)

	_, err = resolveNames(iface.NamesConf{Data: 42})
	assert.Error(t, err)

	_, err = resolveNames(iface.NamesConf{IsFile: true, Data: 42})
	assert.Error(t, err)
}
