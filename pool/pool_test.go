package pool

import (
	iface "RooftopSolar/interface"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv"
)

// MockBackend reports one mask over the centre quarter of the image.
type MockBackend struct {
	destroyed bool
	empty     bool
	fail      error
}

func (m *MockBackend) LoadModel(modelPath string, names iface.NamesConf, conf float32, iou float32, useGPU bool) (bool, error) {
	return true, nil
}

func (m *MockBackend) Detect(img gocv.Mat) (*iface.DetectionSet, error) {
	if m.fail != nil {
		return nil, m.fail
	}
	if m.empty {
		return &iface.DetectionSet{Masks: []iface.Mask{}}, nil
	}
	w, h := img.Cols(), img.Rows()
	mask := iface.NewMask(w, h)
	for y := h / 4; y < 3*h/4; y++ {
		for x := w / 4; x < 3*w/4; x++ {
			mask.Set(x, y, 1)
		}
	}
	return &iface.DetectionSet{
		Masks: []iface.Mask{mask},
		Boxes: []iface.Detection{{Index: 1, Class: "rooftop", Conf: 0.9, Box: iface.NewBox(float32(w/4), float32(h/4), float32(3*w/4), float32(3*h/4))}},
	}, nil
}

func (m *MockBackend) Destroy() { m.destroyed = true }

func (m *MockBackend) CheckConfig() iface.EngineConfig {
	return iface.EngineConfig{ModelPath: "mock", Names: iface.NamesConf{Data: []string{"rooftop"}}, Conf: 0.8, Iou: 0.8}
}

func (m *MockBackend) SetInputSize(size int) {}

func encodedImage(t *testing.T, w, h int) []byte {
	t.Helper()
	img := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(90, 90, 90, 0), h, w, gocv.MatTypeCV8UC3)
	defer img.Close()
	buf, err := gocv.IMEncode(".png", img)
	require.NoError(t, err)
	defer buf.Close()
	return append([]byte(nil), buf.GetBytes()...)
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	b := &MockBackend{}
	id := r.Add(b, "mock_worker", 0x1001)

	e, err := r.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "mock_worker", e.Description)
	assert.Equal(t, "mock", e.Config().ModelPath)
	assert.Len(t, r.List(), 1)

	require.NoError(t, r.Remove(id))
	assert.True(t, b.destroyed)
	_, err = r.Get(id)
	assert.ErrorIs(t, err, ErrEngineNotFound)
	assert.ErrorIs(t, r.Remove(id), ErrEngineNotFound)

	b2 := &MockBackend{}
	r.Add(b2, "other", 0x1001)
	r.DestroyAll()
	assert.True(t, b2.destroyed)
	assert.Empty(t, r.List())
}

func TestPoolSubmit(t *testing.T) {
	r := NewRegistry()
	id := r.Add(&MockBackend{}, "mock", 0x1001)
	e, _ := r.Get(id)

	p := New(4)
	p.Start(2)
	defer p.Close()

	cal := iface.CalibrationContext{TotalArea: 1000, ROI: iface.Position{X: 50, Y: 40}, ROIHalfSize: 3, MaskThreshold: 0.5}
	res, err := p.Submit(context.Background(), Job{Engine: e, Image: encodedImage(t, 100, 80), Calibration: cal, Overlay: true})
	require.NoError(t, err)
	require.Len(t, res.Report.AllAreas, 1)
	assert.Equal(t, 250.0, res.Report.AllAreas[0].Area)
	require.NotNil(t, res.Report.Target)
	assert.Equal(t, 1, res.Report.Target.Index)
	assert.Equal(t, 100, res.Width)
	assert.NotEmpty(t, res.Overlay)
	assert.Len(t, res.Detections, 1)
}

func TestPoolSubmitWithCrop(t *testing.T) {
	r := NewRegistry()
	e, _ := r.Get(r.Add(&MockBackend{}, "mock", 0x1001))
	p := New(1)
	p.Start(1)
	defer p.Close()

	cal := iface.CalibrationContext{TotalArea: 100, ROI: iface.Position{X: 0, Y: 0}, ROIHalfSize: 1, MaskThreshold: 0.5}
	res, err := p.Submit(context.Background(), Job{
		Engine:      e,
		Image:       encodedImage(t, 200, 200),
		Calibration: cal,
		Crop:        &CropRect{CenterX: 100, CenterY: 100, Width: 40, Height: 20},
	})
	require.NoError(t, err)
	assert.Equal(t, 40, res.Width)
	assert.Equal(t, 20, res.Height)
	assert.Nil(t, res.Report.Target)
	assert.Equal(t, "no_target", res.Report.Status())
}

func TestPoolSubmitErrors(t *testing.T) {
	r := NewRegistry()
	failing, _ := r.Get(r.Add(&MockBackend{fail: errors.New("boom")}, "fail", 0x1001))
	empty, _ := r.Get(r.Add(&MockBackend{empty: true}, "empty", 0x1001))
	p := New(2)
	p.Start(1)

	cal := iface.CalibrationContext{TotalArea: 100, MaskThreshold: 0.5}
	_, err := p.Submit(context.Background(), Job{Engine: failing, Image: encodedImage(t, 10, 10), Calibration: cal})
	assert.ErrorContains(t, err, "boom")

	_, err = p.Submit(context.Background(), Job{Engine: failing, Image: []byte("not an image"), Calibration: cal})
	assert.ErrorIs(t, err, ErrInvalidImage)

	res, err := p.Submit(context.Background(), Job{Engine: empty, Image: encodedImage(t, 10, 10), Calibration: cal})
	require.NoError(t, err)
	assert.Equal(t, "no_detections", res.Report.Status())

	_, err = p.Submit(context.Background(), Job{Calibration: cal})
	assert.ErrorIs(t, err, ErrEngineNotFound)

	p.Close()
	_, err = p.Submit(context.Background(), Job{Engine: empty, Image: encodedImage(t, 10, 10), Calibration: cal})
	assert.ErrorIs(t, err, ErrPoolClosed)
}

func TestPoolSubmitCancelled(t *testing.T) {
	r := NewRegistry()
	e, _ := r.Get(r.Add(&MockBackend{}, "mock", 0x1001))
	p := New(1) // no workers started, the job is never picked up
	defer p.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := p.Submit(ctx, Job{Engine: e, Image: encodedImage(t, 10, 10), Calibration: iface.CalibrationContext{MaskThreshold: 0.5}})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestAnalyzeBatch(t *testing.T) {
	m1 := iface.NewMask(10, 10)
	m1.Set(5, 5, 1)
	m2 := iface.NewMask(10, 10)
	cal := iface.CalibrationContext{TotalArea: 100, ROI: iface.Position{X: 5, Y: 5}, MaskThreshold: 0.5}
	items := []BatchItem{
		{Detections: &iface.DetectionSet{Masks: []iface.Mask{m1}}, Calibration: cal},
		{Detections: &iface.DetectionSet{Masks: []iface.Mask{m2}}, Calibration: cal},
		{Detections: &iface.DetectionSet{Masks: []iface.Mask{}}, Calibration: cal},
	}

	reports, err := AnalyzeBatch(context.Background(), items, 2)
	require.NoError(t, err)
	require.Len(t, reports, 3)
	assert.Equal(t, "target_found", reports[0].Status())
	assert.Equal(t, 1.0, reports[0].AllAreas[0].Area)
	assert.Equal(t, "no_target", reports[1].Status())
	assert.Equal(t, "no_detections", reports[2].Status())

	items = append(items, BatchItem{Detections: nil, Calibration: cal})
	_, err = AnalyzeBatch(context.Background(), items, 0)
	assert.ErrorContains(t, err, "item 3")
}
