package web

import (
	"RooftopSolar/analysis"
	"RooftopSolar/engine"
	iface "RooftopSolar/interface"
	"RooftopSolar/logger"
	"RooftopSolar/monitor"
	"RooftopSolar/pool"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const maxImageBytes = 20 * 1024 * 1024

var ErrImageTooLarge = errors.New("image exceeds upload limit")

type EngineParam struct {
	ModelPath   string   `json:"modelPath"`
	Names       []string `json:"names"`
	Conf        float32  `json:"conf"`
	Iou         float32  `json:"iou"`
	UseGPU      bool     `json:"useGpu"`
	InputSize   int      `json:"inputSize"`
	Description string   `json:"description"`
	Count       int      `json:"count"`
}

// AnalyzeParam is the JSON form of an image analysis request.
type AnalyzeParam struct {
	Image       string                     `json:"image"`
	Calibration *iface.CalibrationOverride `json:"calibration,omitempty"`
	Crop        *pool.CropRect             `json:"crop,omitempty"`
	Overlay     bool                       `json:"overlay"`
}

type DetectionsParam struct {
	Detections  *iface.DetectionSet        `json:"detections"`
	Calibration *iface.CalibrationOverride `json:"calibration,omitempty"`
}

type BatchParam struct {
	Items []DetectionsParam `json:"items"`
}

type AnalyzeResult struct {
	Status     string                `json:"status"`
	Report     *iface.MaskAreaReport `json:"report"`
	Detections []iface.Detection     `json:"detections,omitempty"`
	Width      int                   `json:"width,omitempty"`
	Height     int                   `json:"height,omitempty"`
	Overlay    []byte                `json:"overlay,omitempty"`
}

type EngineView struct {
	ID          string   `json:"id"`
	Description string   `json:"description"`
	EngineType  int      `json:"engineType"`
	ModelPath   string   `json:"modelPath"`
	Names       []string `json:"names"`
	Conf        float32  `json:"conf"`
	Iou         float32  `json:"iou"`
	UseGPU      bool     `json:"useGpu"`
	InputSize   int      `json:"inputSize"`
}

type Server struct {
	Registry      *pool.Registry
	Pool          *pool.Pool
	ModelDir      string
	Calibration   iface.CalibrationContext
	Crop          *pool.CropRect
	BatchLimit    int
	MaxImageBytes int64 // zero means 20 MiB
	// IdleTimeout closes a websocket that has sent nothing for that long; zero disables it.
	IdleTimeout   time.Duration
	NewBackend    func() iface.Backend
}

func NewServer(reg *pool.Registry, p *pool.Pool, modelDir string, cal iface.CalibrationContext) *Server {
	return &Server{
		Registry:    reg,
		Pool:        p,
		ModelDir:    modelDir,
		Calibration: cal,
		BatchLimit:  4,
		NewBackend: func() iface.Backend {
			d := &engine.Detector{}
			d.New()
			return d
		},
	}
}

func countRequests(c *gin.Context) {
	c.Next()
	route := c.FullPath()
	if route == "" {
		route = "unmatched"
	}
	monitor.HTTPTotal.WithLabelValues(route, strconv.Itoa(c.Writer.Status())).Inc()
}

func accessLog(c *gin.Context) {
	start := time.Now()
	c.Next()
	logger.Log().Debug("http request",
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Int("code", c.Writer.Status()),
		zap.Duration("elapsed", time.Since(start)))
}

// Router wires every HTTP and websocket route onto a fresh gin engine.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), countRequests, accessLog)
	r.GET("/api/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	r.POST("/api/engines", s.initEngines)
	r.GET("/api/engines", s.listEngines)
	r.GET("/api/engines/:id", s.checkEngine)
	r.DELETE("/api/engines/:id", s.destroyEngine)
	r.POST("/api/engines/:id/analyze", s.analyzeImage)
	r.POST("/api/analyze", s.analyzeDetections)
	r.POST("/api/analyze/batch", s.analyzeBatch)
	r.POST("/api/models/upload", s.uploadModel)
	r.GET("/ws/:id", s.serveWS)
	return r
}

func (s *Server) initEngines(c *gin.Context) {
	var param EngineParam
	if err := c.ShouldBindJSON(&param); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if param.ModelPath == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "model path cannot be empty"})
		return
	}
	if param.Conf == 0 {
		param.Conf = 0.5
	}
	if param.Iou == 0 {
		param.Iou = 0.5
	}
	if param.Names == nil {
		param.Names = []string{}
	}
	if param.Count <= 0 {
		param.Count = 1
	}

	ids := make([]string, 0, param.Count)
	for i := 0; i < param.Count; i++ {
		backend := s.NewBackend()
		if param.InputSize > 0 {
			backend.SetInputSize(param.InputSize)
		}
		names := iface.NamesConf{IsFile: false, Data: param.Names}
		if _, err := backend.LoadModel(param.ModelPath, names, param.Conf, param.Iou, param.UseGPU); err != nil {
			backend.Destroy()
			for _, id := range ids {
				_ = s.Registry.Remove(id)
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ids = append(ids, s.Registry.Add(backend, param.Description, engine.SingleThread))
	}
	c.JSON(http.StatusOK, gin.H{"data": ids})
}

func engineView(e *pool.Engine) EngineView {
	cfg := e.Config()
	names, ok := cfg.Names.Data.([]string)
	if !ok {
		names = []string{}
	}
	return EngineView{
		ID:          e.ID,
		Description: e.Description,
		EngineType:  e.EngineType,
		ModelPath:   cfg.ModelPath,
		Names:       names,
		Conf:        cfg.Conf,
		Iou:         cfg.Iou,
		UseGPU:      cfg.UseGPU,
		InputSize:   cfg.InputSize,
	}
}

func (s *Server) listEngines(c *gin.Context) {
	all := s.Registry.List()
	views := make([]EngineView, 0, len(all))
	for _, e := range all {
		views = append(views, engineView(e))
	}
	c.JSON(http.StatusOK, gin.H{"data": views})
}

func (s *Server) checkEngine(c *gin.Context) {
	e, err := s.Registry.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Engine not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": engineView(e)})
}

func (s *Server) destroyEngine(c *gin.Context) {
	if err := s.Registry.Remove(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Engine not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": "Engine destroyed"})
}

// calibration merges a request override over the server calibration.
func (s *Server) calibration(o *iface.CalibrationOverride) (iface.CalibrationContext, error) {
	cal := o.Apply(s.Calibration)
	return cal, analysis.ValidateCalibration(cal)
}

// DecodeBase64Image strips an optional data URL prefix and decodes the payload.
func DecodeBase64Image(b64 string) ([]byte, error) {
	if i := strings.Index(b64, ","); i != -1 && strings.HasPrefix(b64, "data:") {
		b64 = b64[i+1:]
	}
	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(b64))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", pool.ErrInvalidImage, err)
	}
	if len(data) == 0 {
		return nil, pool.ErrInvalidImage
	}
	return data, nil
}

func limitErr(err error) error {
	var mbe *http.MaxBytesError
	if errors.As(err, &mbe) {
		return fmt.Errorf("%w: request body over %d bytes", ErrImageTooLarge, mbe.Limit)
	}
	return nil
}

func (s *Server) imageLimit() int64 {
	if s.MaxImageBytes > 0 {
		return s.MaxImageBytes
	}
	return maxImageBytes
}

func (s *Server) checkSize(n int64) error {
	if limit := s.imageLimit(); n > limit {
		return fmt.Errorf("%w: %d bytes, limit %d", ErrImageTooLarge, n, limit)
	}
	return nil
}

// readAnalyzeRequest accepts either a multipart form with an "image" file or an AnalyzeParam body.
func (s *Server) readAnalyzeRequest(c *gin.Context) ([]byte, AnalyzeParam, error) {
	var param AnalyzeParam
	// base64 inflates by 4/3; the multipart form also carries its boundaries and fields.
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.imageLimit()*4/3+64*1024)
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		fh, err := c.FormFile("image")
		if err != nil {
			if tooLarge := limitErr(err); tooLarge != nil {
				return nil, param, tooLarge
			}
			return nil, param, fmt.Errorf("%w: %v", pool.ErrInvalidImage, err)
		}
		if err := s.checkSize(fh.Size); err != nil {
			return nil, param, err
		}
		f, err := fh.Open()
		if err != nil {
			return nil, param, err
		}
		defer f.Close()
		data, err := io.ReadAll(f)
		if err != nil {
			return nil, param, err
		}
		if raw := c.PostForm("calibration"); raw != "" {
			param.Calibration = &iface.CalibrationOverride{}
			if err := json.Unmarshal([]byte(raw), param.Calibration); err != nil {
				return nil, param, fmt.Errorf("%w: calibration: %v", analysis.ErrMalformedInput, err)
			}
		}
		param.Overlay = c.PostForm("overlay") == "true"
		return data, param, nil
	}
	if err := c.ShouldBindJSON(&param); err != nil {
		if tooLarge := limitErr(err); tooLarge != nil {
			return nil, param, tooLarge
		}
		return nil, param, fmt.Errorf("%w: %v", analysis.ErrMalformedInput, err)
	}
	data, err := DecodeBase64Image(param.Image)
	if err != nil {
		return nil, param, err
	}
	return data, param, s.checkSize(int64(len(data)))
}

func errorCode(err error) int {
	switch {
	case errors.Is(err, pool.ErrEngineNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrImageTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, pool.ErrInvalidImage), errors.Is(err, analysis.ErrMalformedInput):
		return http.StatusBadRequest
	case errors.Is(err, pool.ErrPoolClosed):
		return http.StatusServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) submit(ctx context.Context, e *pool.Engine, data []byte, param AnalyzeParam) (*AnalyzeResult, error) {
	cal, err := s.calibration(param.Calibration)
	if err != nil {
		return nil, err
	}
	crop := param.Crop
	if crop == nil {
		crop = s.Crop
	}
	res, err := s.Pool.Submit(ctx, pool.Job{
		Engine:      e,
		Image:       data,
		Calibration: cal,
		Crop:        crop,
		Overlay:     param.Overlay,
	})
	if err != nil {
		return nil, err
	}
	return &AnalyzeResult{
		Status:     res.Report.Status(),
		Report:     res.Report,
		Detections: res.Detections,
		Width:      res.Width,
		Height:     res.Height,
		Overlay:    res.Overlay,
	}, nil
}

func (s *Server) analyzeImage(c *gin.Context) {
	e, err := s.Registry.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Engine not found"})
		return
	}
	data, param, err := s.readAnalyzeRequest(c)
	if err != nil {
		c.JSON(errorCode(err), gin.H{"error": err.Error()})
		return
	}
	result, err := s.submit(c.Request.Context(), e, data, param)
	if err != nil {
		c.JSON(errorCode(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": result})
}

func (s *Server) analyzeDetections(c *gin.Context) {
	var param DetectionsParam
	if err := c.ShouldBindJSON(&param); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cal, err := s.calibration(param.Calibration)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	report, err := pool.AnalyzeDetections(param.Detections, cal)
	if err != nil {
		c.JSON(errorCode(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": AnalyzeResult{Status: report.Status(), Report: report}})
}

func (s *Server) analyzeBatch(c *gin.Context) {
	var param BatchParam
	if err := c.ShouldBindJSON(&param); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	items := make([]pool.BatchItem, len(param.Items))
	for i, it := range param.Items {
		cal, err := s.calibration(it.Calibration)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("item %d: %v", i, err)})
			return
		}
		items[i] = pool.BatchItem{Detections: it.Detections, Calibration: cal}
	}
	reports, err := pool.AnalyzeBatch(c.Request.Context(), items, s.BatchLimit)
	if err != nil {
		c.JSON(errorCode(err), gin.H{"error": err.Error()})
		return
	}
	results := make([]AnalyzeResult, len(reports))
	for i, r := range reports {
		results[i] = AnalyzeResult{Status: r.Status(), Report: r}
	}
	c.JSON(http.StatusOK, gin.H{"data": results})
}

func (s *Server) uploadModel(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File upload failed: " + err.Error()})
		return
	}
	name := filepath.Base(file.Filename)
	if name == "." || name == string(filepath.Separator) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid file name"})
		return
	}
	if err := os.MkdirAll(s.ModelDir, 0o755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create model dir: " + err.Error()})
		return
	}
	modelPath := filepath.Join(s.ModelDir, name)
	if err := c.SaveUploadedFile(file, modelPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file: " + err.Error()})
		return
	}
	logger.Log().Info("model uploaded", zap.String("path", modelPath), zap.Int64("bytes", file.Size))
	c.JSON(http.StatusOK, gin.H{"data": modelPath})
}

// Start serves the router on port until ctx is cancelled.
func (s *Server) Start(ctx context.Context, port int) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		logger.Log().Info("HTTP server listening", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
