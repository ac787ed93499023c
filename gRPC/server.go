package proto

import (
	"RooftopSolar/analysis"
	"RooftopSolar/engine"
	iface "RooftopSolar/interface"
	"RooftopSolar/logger"
	"RooftopSolar/monitor"
	"RooftopSolar/pool"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

type Server struct {
	UnimplementedRooftopServiceServer

	Registry    *pool.Registry
	Pool        *pool.Pool
	ModelDir    string
	Calibration iface.CalibrationContext
	// Crop applies to Analyze requests that carry no crop of their own.
	Crop *pool.CropRect
	// NewBackend returns a registered, not yet loaded detector.
	NewBackend func() iface.Backend

	closeOnce sync.Once
	closing   chan struct{}
}

func NewServer(reg *pool.Registry, p *pool.Pool, modelDir string, cal iface.CalibrationContext) *Server {
	return &Server{
		Registry:    reg,
		Pool:        p,
		ModelDir:    modelDir,
		Calibration: cal,
		NewBackend: func() iface.Backend {
			d := &engine.Detector{}
			d.New()
			return d
		},
		closing: make(chan struct{}),
	}
}

// Done is closed once a Shutdown RPC has been received.
func (s *Server) Done() <-chan struct{} {
	return s.closing
}

func (s *Server) InitEngine(ctx context.Context, req *InitEngineRequest) (*InitEngineResponse, error) {
	if req.Iou > 1.0 || req.Iou < 0.0 {
		return nil, status.Errorf(codes.InvalidArgument, "IoU must be between 0.0 and 1.0, got %f", req.Iou)
	}
	if req.Confidence > 1.0 || req.Confidence < 0.0 {
		return nil, status.Errorf(codes.InvalidArgument, "confidence must be between 0.0 and 1.0, got %f", req.Confidence)
	}
	if req.ModelPath == "" {
		return nil, status.Error(codes.InvalidArgument, "model path cannot be empty")
	}
	if req.EngineType == engine.MultiThread {
		return nil, status.Error(codes.Unimplemented, "multi-threaded engines are not supported")
	}
	backend := s.NewBackend()
	if req.InputSize > 0 {
		backend.SetInputSize(int(req.InputSize))
	}
	names := iface.NamesConf{IsFile: false, Data: req.Names}
	if _, err := backend.LoadModel(req.ModelPath, names, req.Confidence, req.Iou, req.UseGpu); err != nil {
		backend.Destroy()
		return nil, status.Errorf(codes.FailedPrecondition, "load model: %v", err)
	}
	engineType := int(req.EngineType)
	if engineType == 0 {
		engineType = engine.SingleThread
	}
	id := s.Registry.Add(backend, req.Description, engineType)
	logger.Log().Info("Initialized new engine",
		zap.String("ID", id),
		zap.String("ModelPath", req.ModelPath),
		zap.Float32("Confidence", req.Confidence),
		zap.Float32("IoU", req.Iou),
		zap.Bool("UseGPU", req.UseGpu))
	return &InitEngineResponse{
		Success: true,
		Id:      id,
		Message: "Successfully initialized engine",
	}, nil
}

func (s *Server) calibration(c *Calibration) (iface.CalibrationContext, error) {
	cal := override(c).Apply(s.Calibration)
	if err := analysis.ValidateCalibration(cal); err != nil {
		return cal, status.Error(codes.InvalidArgument, err.Error())
	}
	return cal, nil
}

func (s *Server) Analyze(ctx context.Context, req *AnalyzeRequest) (*AnalyzeResponse, error) {
	e, err := s.Registry.Get(req.Id)
	if err != nil {
		return nil, status.Errorf(codes.NotFound, "detector with ID %s not found", req.Id)
	}
	if len(req.ImgData) == 0 {
		return nil, status.Error(codes.InvalidArgument, "image data cannot be empty")
	}
	cal, err := s.calibration(req.Calibration)
	if err != nil {
		return nil, err
	}
	crop := cropFromProto(req.Crop)
	if crop == nil {
		crop = s.Crop
	}
	res, err := s.Pool.Submit(ctx, pool.Job{
		Engine:      e,
		Image:       req.ImgData,
		Calibration: cal,
		Crop:        crop,
		Overlay:     req.Overlay,
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return &AnalyzeResponse{
		Success:    true,
		Status:     res.Report.Status(),
		Report:     reportToProto(res.Report),
		Detections: detectionsToProto(res.Detections),
		Overlay:    res.Overlay,
		Width:      int32(res.Width),
		Height:     int32(res.Height),
	}, nil
}

func (s *Server) AnalyzeDetections(ctx context.Context, req *AnalyzeDetectionsRequest) (*AnalyzeResponse, error) {
	cal, err := s.calibration(req.Calibration)
	if err != nil {
		return nil, err
	}
	report, err := pool.AnalyzeDetections(detectionSet(req.Masks), cal)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	return &AnalyzeResponse{Success: true, Status: report.Status(), Report: reportToProto(report)}, nil
}

func toStatus(err error) error {
	switch {
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	case errors.Is(err, pool.ErrInvalidImage):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, pool.ErrPoolClosed):
		return status.Error(codes.Unavailable, err.Error())
	case errors.Is(err, engine.ErrBusy):
		return status.Error(codes.ResourceExhausted, err.Error())
	default:
		logger.Log().Error("analysis failed", zap.Error(err))
		return status.Error(codes.Internal, err.Error())
	}
}

func (s *Server) DestroyEngine(ctx context.Context, req *DestroyEngineRequest) (*DestroyEngineResponse, error) {
	if err := s.Registry.Remove(req.Id); err != nil {
		logger.Log().Error("detector not found with ID", zap.String("ID", req.Id))
		return nil, status.Errorf(codes.NotFound, "detector with ID %s not found", req.Id)
	}
	return &DestroyEngineResponse{
		Success: true,
		Message: "Detector destroyed successfully",
	}, nil
}

func engineInfo(e *pool.Engine) (*EngineInfo, error) {
	cfg := e.Config()
	var names []string
	switch v := cfg.Names.Data.(type) {
	case []string:
		names = v
	case string:
		names = []string{"From File"}
	case nil:
		names = []string{}
	default:
		return nil, fmt.Errorf("unexpected type for names: %T", cfg.Names.Data)
	}
	return &EngineInfo{
		Id:          e.ID,
		Description: e.Description,
		EngineType:  int32(e.EngineType),
		ModelPath:   cfg.ModelPath,
		Names:       names,
		Confidence:  cfg.Conf,
		Iou:         cfg.Iou,
		UseGpu:      cfg.UseGPU,
		InputSize:   int32(cfg.InputSize),
	}, nil
}

func (s *Server) CheckEngine(ctx context.Context, req *CheckEngineRequest) (*CheckEngineResponse, error) {
	e, err := s.Registry.Get(req.Id)
	if err != nil {
		return nil, status.Errorf(codes.NotFound, "detector with ID %s not found", req.Id)
	}
	info, err := engineInfo(e)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &CheckEngineResponse{
		Success:    true,
		EngineInfo: info,
		Message:    "Detector status retrieved successfully",
	}, nil
}

func (s *Server) CheckAllEngine(ctx context.Context, req *emptypb.Empty) (*CheckAllEngineResponse, error) {
	all := s.Registry.List()
	infos := make([]*EngineInfo, 0, len(all))
	for _, e := range all {
		info, err := engineInfo(e)
		if err != nil {
			return nil, status.Error(codes.Internal, err.Error())
		}
		infos = append(infos, info)
	}
	return &CheckAllEngineResponse{
		Success: true,
		Engines: infos,
		Message: "All Detectors status retrieved successfully",
	}, nil
}

// Shutdown only signals Done; the caller of StartGRPCServer tears everything down.
func (s *Server) Shutdown(ctx context.Context, req *emptypb.Empty) (*emptypb.Empty, error) {
	logger.Log().Warn("Shutdown requested over gRPC")
	s.closeOnce.Do(func() { close(s.closing) })
	return &emptypb.Empty{}, nil
}

func (s *Server) UploadModel(stream RooftopService_UploadModelServer) error {
	var outFile *os.File
	var filePath string
	var fileSize int
	defer func() {
		if outFile != nil {
			_ = outFile.Close()
		}
	}()

	for {
		req, err := stream.Recv()
		if err == io.EOF {
			if outFile == nil {
				return status.Error(codes.InvalidArgument, "no file info received")
			}
			if err := outFile.Close(); err != nil {
				return status.Errorf(codes.Internal, "close %s: %v", filePath, err)
			}
			outFile = nil
			logger.Log().Info("model uploaded", zap.String("path", filePath), zap.Int("bytes", fileSize))
			return stream.SendAndClose(&UploadFileResponse{
				Success:  true,
				Message:  "File uploaded successfully",
				FilePath: filePath,
			})
		}
		if err != nil {
			return err
		}

		switch payload := req.Payload.(type) {
		case *UploadFileRequest_FileInfo:
			if outFile != nil {
				return status.Error(codes.InvalidArgument, "file info sent twice")
			}
			name := filepath.Base(payload.FileInfo.GetName())
			if name == "" || name == "." || name == string(filepath.Separator) {
				return status.Error(codes.InvalidArgument, "file name cannot be empty")
			}
			if err := os.MkdirAll(s.ModelDir, 0o755); err != nil {
				return status.Errorf(codes.Internal, "create model dir: %v", err)
			}
			filePath = filepath.Join(s.ModelDir, name)
			outFile, err = os.Create(filePath)
			if err != nil {
				return status.Errorf(codes.Internal, "create %s: %v", filePath, err)
			}
		case *UploadFileRequest_ChunkData:
			if outFile == nil {
				return status.Error(codes.InvalidArgument, "file not opened, please send file info first")
			}
			n, writeErr := outFile.Write(payload.ChunkData)
			if writeErr != nil {
				return status.Errorf(codes.Internal, "failed to write chunk data: %v", writeErr)
			}
			fileSize += n
		}
	}
}

func countRequests(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	monitor.GRPCTotal.Inc()
	return handler(ctx, req)
}

func countStreams(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
	monitor.GRPCTotal.Inc()
	return handler(srv, ss)
}

// NewGRPCServer builds a grpc.Server exposing impl.
func NewGRPCServer(impl *Server) *grpc.Server {
	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(countRequests),
		grpc.ChainStreamInterceptor(countStreams),
		grpc.MaxRecvMsgSize(64*1024*1024),
	)
	RegisterRooftopServiceServer(s, impl)
	return s
}

// StartGRPCServer listens on port and serves in the background.
func StartGRPCServer(port int, impl *Server) (*grpc.Server, error) {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return nil, fmt.Errorf("listen on port %d: %w", port, err)
	}
	s := NewGRPCServer(impl)
	go func() {
		logger.Log().Info("gRPC server listening", zap.Int("port", port))
		if err := s.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			logger.Log().Error("gRPC server stopped", zap.Error(err))
		}
	}()
	return s, nil
}
