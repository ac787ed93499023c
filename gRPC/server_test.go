package proto

import (
	iface "RooftopSolar/interface"
	"RooftopSolar/pool"
	"context"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/emptypb"
)

type MockBackend struct {
	modelPath string
	names     []string
}

func (m *MockBackend) LoadModel(modelPath string, names iface.NamesConf, conf float32, iou float32, useGPU bool) (bool, error) {
	m.modelPath = modelPath
	m.names, _ = names.Data.([]string)
	return true, nil
}

// Detect reports a thin mask on the left edge and a large one over the centre.
func (m *MockBackend) Detect(img gocv.Mat) (*iface.DetectionSet, error) {
	w, h := img.Cols(), img.Rows()
	edge := iface.NewMask(w, h)
	centre := iface.NewMask(w, h)
	for y := 0; y < h; y++ {
		edge.Set(0, y, 1)
		for x := w / 4; x < 3*w/4; x++ {
			centre.Set(x, y, 1)
		}
	}
	return &iface.DetectionSet{Masks: []iface.Mask{edge, centre}}, nil
}

func (m *MockBackend) Destroy() {}

func (m *MockBackend) CheckConfig() iface.EngineConfig {
	return iface.EngineConfig{ModelPath: m.modelPath, Names: iface.NamesConf{Data: m.names}, Conf: 0.8, Iou: 0.5}
}

func (m *MockBackend) SetInputSize(size int) {}

func ptr[T any](v T) *T { return &v }

func setup(t *testing.T, configure ...func(*Server)) (RooftopServiceClient, *Server) {
	t.Helper()
	reg := pool.NewRegistry()
	p := pool.New(4)
	p.Start(1)
	impl := NewServer(reg, p, t.TempDir(), iface.CalibrationContext{
		TotalArea:     1000,
		ROI:           iface.Position{X: 50, Y: 50},
		ROIHalfSize:   2,
		MaskThreshold: 0.5,
	})
	impl.NewBackend = func() iface.Backend { return &MockBackend{} }
	for _, f := range configure {
		f(impl)
	}

	lis := bufconn.Listen(1 << 20)
	srv := NewGRPCServer(impl)
	go func() { _ = srv.Serve(lis) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = conn.Close()
		srv.GracefulStop()
		p.Close()
	})
	return NewRooftopServiceClient(conn), impl
}

func encodedImage(t *testing.T, w, h int) []byte {
	t.Helper()
	img := gocv.NewMatWithSize(h, w, gocv.MatTypeCV8UC3)
	defer img.Close()
	buf, err := gocv.IMEncode(".jpg", img)
	require.NoError(t, err)
	defer buf.Close()
	return append([]byte(nil), buf.GetBytes()...)
}

func initEngine(t *testing.T, client RooftopServiceClient) string {
	t.Helper()
	created, err := client.InitEngine(context.Background(), &InitEngineRequest{
		ModelPath:   "models/rooftop.onnx",
		Names:       []string{"rooftop"},
		Confidence:  0.8,
		Iou:         0.8,
		Description: "mock_worker",
	})
	require.NoError(t, err)
	require.True(t, created.Success)
	return created.Id
}

func TestRooftopService(t *testing.T) {
	client, impl := setup(t)
	ctx := context.Background()
	id := initEngine(t, client)

	t.Run("Test Analyze", func(t *testing.T) {
		resp, err := client.Analyze(ctx, &AnalyzeRequest{Id: id, ImgData: encodedImage(t, 100, 100)})
		require.NoError(t, err)
		assert.True(t, resp.Success)
		assert.Equal(t, "target_found", resp.Status)
		assert.Equal(t, map[int32]float64{1: 10, 2: 500}, resp.Report.GetAllMaskArea())
		require.NotNil(t, resp.Report.TargetMask)
		assert.Equal(t, int32(2), resp.Report.TargetMask.Index)
		assert.Equal(t, 500.0, resp.Report.TargetMask.Area)
		assert.False(t, resp.Report.RoiOutOfFrame)
		assert.Equal(t, int32(100), resp.Width)
		assert.Equal(t, int32(100), resp.Height)
	})

	t.Run("Test Analyze With Calibration", func(t *testing.T) {
		cal := &Calibration{
			TotalArea:     ptr(1000.0),
			RoiPoint:      &Point{X: 95, Y: 50},
			RoiHalfSize:   ptr(int32(1)),
			MaskThreshold: ptr(0.5),
		}
		resp, err := client.Analyze(ctx, &AnalyzeRequest{Id: id, ImgData: encodedImage(t, 100, 100), Calibration: cal, Overlay: true})
		require.NoError(t, err)
		assert.Equal(t, "no_target", resp.Status)
		assert.Nil(t, resp.Report.TargetMask)
		assert.NotEmpty(t, resp.Overlay)
	})

	t.Run("Test Analyze Partial Calibration", func(t *testing.T) {
		resp, err := client.Analyze(ctx, &AnalyzeRequest{
			Id:          id,
			ImgData:     encodedImage(t, 100, 100),
			Calibration: &Calibration{TotalArea: ptr(2000.0)},
		})
		require.NoError(t, err)
		assert.Equal(t, "target_found", resp.Status)
		assert.Equal(t, map[int32]float64{1: 20, 2: 1000}, resp.Report.AllMaskArea)
		assert.Equal(t, int32(2), resp.Report.GetTargetMask().GetIndex())

		resp, err = client.Analyze(ctx, &AnalyzeRequest{
			Id:          id,
			ImgData:     encodedImage(t, 100, 100),
			Calibration: &Calibration{RoiPoint: &Point{}, RoiHalfSize: ptr(int32(0))},
		})
		require.NoError(t, err)
		assert.Equal(t, int32(1), resp.Report.GetTargetMask().GetIndex())
		assert.Equal(t, 10.0, resp.Report.GetTargetMask().GetArea())
	})

	t.Run("Test Analyze Errors", func(t *testing.T) {
		_, err := client.Analyze(ctx, &AnalyzeRequest{Id: "missing", ImgData: []byte{1}})
		assert.Equal(t, codes.NotFound, status.Code(err))

		_, err = client.Analyze(ctx, &AnalyzeRequest{Id: id})
		assert.Equal(t, codes.InvalidArgument, status.Code(err))

		_, err = client.Analyze(ctx, &AnalyzeRequest{Id: id, ImgData: []byte("garbage")})
		assert.Equal(t, codes.InvalidArgument, status.Code(err))

		bad := &Calibration{MaskThreshold: ptr(3.0)}
		_, err = client.Analyze(ctx, &AnalyzeRequest{Id: id, ImgData: encodedImage(t, 10, 10), Calibration: bad})
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("Test AnalyzeDetections", func(t *testing.T) {
		m := iface.NewMask(10, 10)
		m.Set(5, 5, 1)
		mask := &Mask{Width: 10, Height: 10, Data: m.Data}
		cal := &Calibration{TotalArea: ptr(100.0), RoiPoint: &Point{X: 5, Y: 5}, RoiHalfSize: ptr(int32(0))}
		resp, err := client.AnalyzeDetections(ctx, &AnalyzeDetectionsRequest{Masks: []*Mask{mask}, Calibration: cal})
		require.NoError(t, err)
		assert.Equal(t, "target_found", resp.Status)
		assert.Equal(t, 1.0, resp.Report.TargetMask.Area)

		// server ROI (50,50) is kept and lies outside the 10x10 grid
		resp, err = client.AnalyzeDetections(ctx, &AnalyzeDetectionsRequest{
			Masks:       []*Mask{mask},
			Calibration: &Calibration{TotalArea: ptr(100.0)},
		})
		require.NoError(t, err)
		assert.Equal(t, "no_target", resp.Status)
		assert.True(t, resp.Report.RoiOutOfFrame)
		assert.Equal(t, map[int32]float64{1: 1}, resp.Report.AllMaskArea)

		resp, err = client.AnalyzeDetections(ctx, &AnalyzeDetectionsRequest{})
		require.NoError(t, err)
		assert.Equal(t, "no_detections", resp.Status)
		assert.Empty(t, resp.Report.AllMaskArea)

		_, err = client.AnalyzeDetections(ctx, &AnalyzeDetectionsRequest{Masks: []*Mask{{Width: 2, Height: 2, Data: []float32{1}}}})
		assert.Equal(t, codes.InvalidArgument, status.Code(err))

		_, err = client.AnalyzeDetections(ctx, &AnalyzeDetectionsRequest{Masks: []*Mask{{Width: 2, Height: 1, Data: []float32{0, 2}}}})
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("Test CheckEngine", func(t *testing.T) {
		resp, err := client.CheckEngine(ctx, &CheckEngineRequest{Id: id})
		require.NoError(t, err)
		info := resp.EngineInfo
		assert.Equal(t, "models/rooftop.onnx", info.ModelPath)
		assert.Equal(t, "mock_worker", info.Description)
		assert.Equal(t, []string{"rooftop"}, info.Names)
	})

	t.Run("Test CheckAllEngine", func(t *testing.T) {
		resp, err := client.CheckAllEngine(ctx, &emptypb.Empty{})
		require.NoError(t, err)
		if assert.Len(t, resp.Engines, 1) {
			assert.Equal(t, id, resp.Engines[0].Id)
		}
	})

	t.Run("Test UploadModel", func(t *testing.T) {
		stream, err := client.UploadModel(ctx)
		require.NoError(t, err)
		require.NoError(t, stream.Send(&UploadFileRequest{Payload: &UploadFileRequest_FileInfo{FileInfo: &FileInfo{Name: "../escape.onnx"}}}))
		require.NoError(t, stream.Send(&UploadFileRequest{Payload: &UploadFileRequest_ChunkData{ChunkData: []byte("abc")}}))
		require.NoError(t, stream.Send(&UploadFileRequest{Payload: &UploadFileRequest_ChunkData{ChunkData: []byte("def")}}))
		resp, err := stream.CloseAndRecv()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(impl.ModelDir, "escape.onnx"), resp.FilePath)
		data, err := os.ReadFile(resp.FilePath)
		require.NoError(t, err)
		assert.Equal(t, "abcdef", string(data))
	})

	t.Run("Test UploadModel Without FileInfo", func(t *testing.T) {
		stream, err := client.UploadModel(ctx)
		require.NoError(t, err)
		require.NoError(t, stream.Send(&UploadFileRequest{Payload: &UploadFileRequest_ChunkData{ChunkData: []byte("abc")}}))
		_, err = stream.CloseAndRecv()
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("Test DestroyEngine", func(t *testing.T) {
		_, err := client.DestroyEngine(ctx, &DestroyEngineRequest{Id: id})
		require.NoError(t, err)
		_, err = client.DestroyEngine(ctx, &DestroyEngineRequest{Id: id})
		assert.Equal(t, codes.NotFound, status.Code(err))
	})

	t.Run("Test Shutdown", func(t *testing.T) {
		_, err := client.Shutdown(ctx, &emptypb.Empty{})
		require.NoError(t, err)
		select {
		case <-impl.Done():
		case <-time.After(time.Second):
			t.Fatal("Done was not closed")
		}
		_, err = client.Shutdown(ctx, &emptypb.Empty{})
		assert.NoError(t, err)
	})
}

func TestAnalyzeConfiguredCrop(t *testing.T) {
	client, _ := setup(t, func(s *Server) {
		s.Crop = &pool.CropRect{CenterX: 50, CenterY: 50, Width: 40, Height: 20}
	})
	ctx := context.Background()
	id := initEngine(t, client)

	resp, err := client.Analyze(ctx, &AnalyzeRequest{Id: id, ImgData: encodedImage(t, 100, 100)})
	require.NoError(t, err)
	assert.Equal(t, int32(40), resp.Width)
	assert.Equal(t, int32(20), resp.Height)
	assert.True(t, resp.Report.RoiOutOfFrame)

	resp, err = client.Analyze(ctx, &AnalyzeRequest{
		Id:      id,
		ImgData: encodedImage(t, 100, 100),
		Crop:    &CropRect{CenterX: 50, CenterY: 50, Width: 60, Height: 60},
	})
	require.NoError(t, err)
	assert.Equal(t, int32(60), resp.Width)
	assert.Equal(t, int32(60), resp.Height)
}

func TestInitEngineValidation(t *testing.T) {
	client, _ := setup(t)
	ctx := context.Background()

	_, err := client.InitEngine(ctx, &InitEngineRequest{ModelPath: "m.onnx", Iou: 2})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	_, err = client.InitEngine(ctx, &InitEngineRequest{ModelPath: "m.onnx", Confidence: -1})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	_, err = client.InitEngine(ctx, &InitEngineRequest{})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	_, err = client.InitEngine(ctx, &InitEngineRequest{ModelPath: "m.onnx", EngineType: 0x1002})
	assert.Equal(t, codes.Unimplemented, status.Code(err))
}
