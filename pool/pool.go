package pool

import (
	"RooftopSolar/analysis"
	"RooftopSolar/engine"
	iface "RooftopSolar/interface"
	"RooftopSolar/logger"
	"RooftopSolar/monitor"
	"context"
	"errors"
	"fmt"
	"image"
	"runtime"
	"sync"
	"time"

	"go.uber.org/zap"
	"gocv.io/x/gocv"
)

var (
	ErrPoolClosed   = errors.New("worker pool closed")
	ErrInvalidImage = errors.New("decoded image is empty or unsupported format")
)

// CropRect is a centred pre-crop applied to the decoded image before detection.
type CropRect struct {
	CenterX int `json:"center_x" yaml:"centerX"`
	CenterY int `json:"center_y" yaml:"centerY"`
	Width   int `json:"width" yaml:"width"`
	Height  int `json:"height" yaml:"height"`
}

type Job struct {
	Engine      *Engine
	Image       []byte
	Calibration iface.CalibrationContext
	Crop        *CropRect
	Overlay     bool
}

type Result struct {
	Report     *iface.MaskAreaReport
	Detections []iface.Detection
	Width      int
	Height     int
	Overlay    []byte
}

type jobPackage struct {
	job    Job
	result chan jobResult
}

type jobResult struct {
	res *Result
	err error
}

type Pool struct {
	mu     sync.RWMutex
	closed bool
	queue  chan jobPackage
	wg     sync.WaitGroup
}

func New(queueSize int) *Pool {
	if queueSize <= 0 {
		queueSize = 1
	}
	return &Pool{queue: make(chan jobPackage, queueSize)}
}

func (p *Pool) Start(workerNum int) {
	for i := 0; i < workerNum; i++ {
		p.wg.Add(1)
		go p.runWorker(i)
	}
}

func (p *Pool) runWorker(workerID int) {
	defer func() {
		if r := recover(); r != nil {
			logger.Log().Error("worker panic, restarting in 1s", zap.Int("worker", workerID), zap.Any("panic", r))
			time.Sleep(1 * time.Second)
			go p.runWorker(workerID)
			return
		}
		p.wg.Done()
	}()
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	logger.Log().Info("worker created", zap.Int("worker", workerID))
	for pkg := range p.queue {
		res, err := process(pkg.job)
		pkg.result <- jobResult{res: res, err: err}
	}
}

// Submit queues job and waits for its result or for ctx to end.
func (p *Pool) Submit(ctx context.Context, job Job) (*Result, error) {
	if job.Engine == nil {
		return nil, ErrEngineNotFound
	}
	pkg := jobPackage{job: job, result: make(chan jobResult, 1)}
	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		return nil, ErrPoolClosed
	}
	select {
	case p.queue <- pkg:
		p.mu.RUnlock()
	case <-ctx.Done():
		p.mu.RUnlock()
		return nil, ctx.Err()
	}
	select {
	case r := <-pkg.result:
		return r.res, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Close stops accepting jobs and waits for queued ones to finish.
func (p *Pool) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.queue)
	p.mu.Unlock()
	p.wg.Wait()
}

func process(job Job) (res *Result, err error) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("analysis panic: %v", r)
		}
		if err != nil {
			monitor.ObserveAnalysis(monitor.OutcomeError, start)
		}
	}()

	img, err := gocv.IMDecode(job.Image, gocv.IMReadColor)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	defer img.Close()
	if img.Empty() {
		return nil, ErrInvalidImage
	}
	if c := job.Crop; c != nil {
		cropped, err := engine.Crop(img, c.CenterX, c.CenterY, c.Width, c.Height)
		if err != nil {
			return nil, err
		}
		_ = img.Close()
		img = cropped
	}

	det, err := job.Engine.Detect(img)
	if err != nil {
		return nil, fmt.Errorf("detect: %w", err)
	}
	report, err := analysis.Analyze(det, job.Calibration, analysis.AllowEmpty())
	if err != nil {
		return nil, err
	}
	monitor.ObserveAnalysis(report.Status(), start)

	res = &Result{
		Report:     report,
		Detections: det.Boxes,
		Width:      img.Cols(),
		Height:     img.Rows(),
	}
	if job.Overlay {
		roi := image.Pt(int(job.Calibration.ROI.X), int(job.Calibration.ROI.Y))
		out, err := engine.RenderOverlay(img, det, roi)
		if err != nil {
			return nil, fmt.Errorf("render overlay: %w", err)
		}
		defer out.Close()
		if res.Overlay, err = engine.EncodePNG(out); err != nil {
			return nil, fmt.Errorf("encode overlay: %w", err)
		}
	}
	logger.Log().Info("image analyzed",
		zap.String("engine", job.Engine.ID),
		zap.Int("masks", len(report.AllAreas)),
		zap.String("status", report.Status()),
		zap.Duration("elapsed", time.Since(start)))
	return res, nil
}
