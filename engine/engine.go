package engine

import (
	iface "RooftopSolar/interface"
	"RooftopSolar/logger"
	"errors"
	"fmt"
	"image"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
	"gocv.io/x/gocv"
)

const DefaultInputSize = 640

var (
	ErrNotRegistered = errors.New("detector not registered")
	ErrNotLoaded     = errors.New("model not loaded")
	ErrBusy          = errors.New("detector is busy")
)

// Detector runs a YOLOv8-seg ONNX model through the OpenCV DNN module.
type Detector struct {
	ModelPath string
	Names     []string
	Conf      float32
	Iou       float32
	UseGPU    bool
	InputSize int
	State     int

	mu       sync.Mutex
	net      *gocv.Net
	outNames []string
}

func (d *Detector) New() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.State = REGISTERED
	if d.InputSize <= 0 {
		d.InputSize = DefaultInputSize
	}
	return true
}

func (d *Detector) CheckConfig() iface.EngineConfig {
	d.mu.Lock()
	defer d.mu.Unlock()
	return iface.EngineConfig{
		ModelPath: d.ModelPath,
		Conf:      d.Conf,
		Iou:       d.Iou,
		UseGPU:    d.UseGPU,
		InputSize: d.InputSize,
		Names: iface.NamesConf{
			IsFile: false,
			Data:   append([]string(nil), d.Names...),
		},
	}
}

func (d *Detector) LoadModel(modelPath string, names iface.NamesConf, conf float32, iou float32, useGPU bool) (bool, error) {
	if conf < 0 || conf > 1 {
		return false, fmt.Errorf("confidence must be between 0.0 and 1.0, got %f", conf)
	}
	if iou < 0 || iou > 1 {
		return false, fmt.Errorf("IoU must be between 0.0 and 1.0, got %f", iou)
	}
	if !strings.EqualFold(filepath.Ext(modelPath), ".onnx") {
		return false, fmt.Errorf("LoadModel only supports .onnx, got %q", modelPath)
	}
	parsed, err := resolveNames(names)
	if err != nil {
		return false, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.State == 0 || d.State == UNREGISTERED {
		return false, ErrNotRegistered
	}
	net := gocv.ReadNetFromONNX(modelPath)
	if net.Empty() {
		_ = net.Close()
		return false, fmt.Errorf("failed to read model %s", modelPath)
	}
	if useGPU {
		if err := net.SetPreferableBackend(gocv.NetBackendCUDA); err != nil {
			logger.Log().Warn("CUDA backend unavailable, using default", zap.Error(err))
		}
		if err := net.SetPreferableTarget(gocv.NetTargetCUDA); err != nil {
			logger.Log().Warn("CUDA target unavailable, using default", zap.Error(err))
		}
	}
	if d.net != nil {
		_ = d.net.Close()
	}
	d.net = &net
	d.outNames = outputNames(&net)
	d.ModelPath = modelPath
	d.Names = parsed
	d.Conf = conf
	d.Iou = iou
	d.UseGPU = useGPU
	if d.InputSize <= 0 {
		d.InputSize = DefaultInputSize
	}
	d.State = IDLE
	logger.Log().Info("model loaded",
		zap.String("ModelPath", modelPath),
		zap.Strings("Outputs", d.outNames),
		zap.Int("Classes", len(parsed)))
	return true, nil
}

func outputNames(net *gocv.Net) []string {
	layers := net.GetLayerNames()
	var names []string
	for _, id := range net.GetUnconnectedOutLayers() {
		if id > 0 && id <= len(layers) {
			names = append(names, layers[id-1])
		}
	}
	return names
}

func (d *Detector) Destroy() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.net != nil {
		_ = d.net.Close()
	}
	d.net = nil
	d.outNames = nil
	d.ModelPath = ""
	d.Conf = 0
	d.Iou = 0
	d.UseGPU = false
	d.State = UNREGISTERED
}

func (d *Detector) SetInputSize(size int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if size > 0 {
		d.InputSize = size
	}
}

// Detect returns one probability mask per instance at the resolution of img,
// ordered by descending confidence.
func (d *Detector) Detect(img gocv.Mat) (*iface.DetectionSet, error) {
	d.mu.Lock()
	switch d.State {
	case 0, UNREGISTERED:
		d.mu.Unlock()
		return nil, ErrNotRegistered
	case REGISTERED:
		d.mu.Unlock()
		return nil, ErrNotLoaded
	case BUSY:
		d.mu.Unlock()
		return nil, ErrBusy
	}
	d.State = BUSY
	net, outNames, size := d.net, d.outNames, d.InputSize
	params := decodeParams{
		conf:      d.Conf,
		iou:       d.Iou,
		names:     d.Names,
		inputSize: size,
		imgW:      img.Cols(),
		imgH:      img.Rows(),
	}
	d.mu.Unlock()
	defer func() {
		d.mu.Lock()
		if d.State == BUSY {
			d.State = IDLE
		}
		d.mu.Unlock()
	}()

	if img.Empty() {
		return nil, errors.New("empty input image")
	}
	blob := gocv.BlobFromImage(img, 1.0/255.0, image.Pt(size, size), gocv.NewScalar(0, 0, 0, 0), true, false)
	defer blob.Close()
	net.SetInput(blob, "")
	outs := net.ForwardLayers(outNames)
	defer func() {
		for i := range outs {
			_ = outs[i].Close()
		}
	}()

	pred, protos, err := splitOutputs(outs)
	if err != nil {
		return nil, err
	}
	return decodeSegmentation(pred, protos, params)
}

// splitOutputs tells the detection head ([1,C,N]) from the mask prototypes ([1,nm,ph,pw]).
func splitOutputs(outs []gocv.Mat) (tensor, tensor, error) {
	var pred, protos tensor
	for _, o := range outs {
		dims := o.Size()
		data, err := o.DataPtrFloat32()
		if err != nil {
			return tensor{}, tensor{}, fmt.Errorf("read output: %w", err)
		}
		t := tensor{dims: dims, data: append([]float32(nil), data...)}
		switch len(dims) {
		case 3:
			pred = t
		case 4:
			protos = t
		}
	}
	if pred.data == nil || protos.data == nil {
		return tensor{}, tensor{}, fmt.Errorf("model is not a segmentation model: got %d outputs", len(outs))
	}
	return pred, protos, nil
}
