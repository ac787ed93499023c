package web

import (
	iface "RooftopSolar/interface"
	"RooftopSolar/pool"
	"bytes"
	"encoding/base64"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv"
)

// MockBackend marks the centre quarter of every image.
type MockBackend struct {
	modelPath string
	fail      bool
}

func (m *MockBackend) LoadModel(modelPath string, names iface.NamesConf, conf float32, iou float32, useGPU bool) (bool, error) {
	if m.fail {
		return false, os.ErrNotExist
	}
	m.modelPath = modelPath
	return true, nil
}

func (m *MockBackend) Detect(img gocv.Mat) (*iface.DetectionSet, error) {
	w, h := img.Cols(), img.Rows()
	mask := iface.NewMask(w, h)
	for y := h / 4; y < 3*h/4; y++ {
		for x := w / 4; x < 3*w/4; x++ {
			mask.Set(x, y, 1)
		}
	}
	return &iface.DetectionSet{Masks: []iface.Mask{mask}}, nil
}

func (m *MockBackend) Destroy() {}

func (m *MockBackend) CheckConfig() iface.EngineConfig {
	return iface.EngineConfig{ModelPath: m.modelPath, Names: iface.NamesConf{Data: []string{"rooftop"}}, Conf: 0.5, Iou: 0.5}
}

func (m *MockBackend) SetInputSize(size int) {}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error"`
}

func setup(t *testing.T) (*Server, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	p := pool.New(4)
	p.Start(1)
	t.Cleanup(p.Close)
	s := NewServer(pool.NewRegistry(), p, t.TempDir(), iface.CalibrationContext{
		TotalArea:     400,
		ROI:           iface.Position{X: 50, Y: 50},
		ROIHalfSize:   2,
		MaskThreshold: 0.5,
	})
	s.NewBackend = func() iface.Backend { return &MockBackend{} }
	return s, s.Router()
}

func do(t *testing.T, r http.Handler, method, path string, body any) (int, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w.Code, env
}

func encodedImage(t *testing.T, w, h int) []byte {
	t.Helper()
	img := gocv.NewMatWithSize(h, w, gocv.MatTypeCV8UC3)
	defer img.Close()
	buf, err := gocv.IMEncode(".png", img)
	require.NoError(t, err)
	defer buf.Close()
	return append([]byte(nil), buf.GetBytes()...)
}

func addEngine(t *testing.T, r http.Handler) string {
	t.Helper()
	code, env := do(t, r, http.MethodPost, "/api/engines", EngineParam{ModelPath: "models/rooftop.onnx", Description: "mock"})
	require.Equal(t, http.StatusOK, code, env.Error)
	var ids []string
	require.NoError(t, json.Unmarshal(env.Data, &ids))
	require.Len(t, ids, 1)
	return ids[0]
}

func TestPing(t *testing.T) {
	_, r := setup(t)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())
}

func TestEngines(t *testing.T) {
	s, r := setup(t)
	id := addEngine(t, r)

	code, env := do(t, r, http.MethodGet, "/api/engines/"+id, nil)
	require.Equal(t, http.StatusOK, code)
	var view EngineView
	require.NoError(t, json.Unmarshal(env.Data, &view))
	assert.Equal(t, id, view.ID)
	assert.Equal(t, "mock", view.Description)
	assert.Equal(t, "models/rooftop.onnx", view.ModelPath)

	code, env = do(t, r, http.MethodGet, "/api/engines", nil)
	require.Equal(t, http.StatusOK, code)
	var views []EngineView
	require.NoError(t, json.Unmarshal(env.Data, &views))
	assert.Len(t, views, 1)

	code, _ = do(t, r, http.MethodDelete, "/api/engines/"+id, nil)
	assert.Equal(t, http.StatusOK, code)
	code, env = do(t, r, http.MethodGet, "/api/engines/"+id, nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Engine not found", env.Error)

	code, _ = do(t, r, http.MethodPost, "/api/engines", EngineParam{})
	assert.Equal(t, http.StatusBadRequest, code)

	s.NewBackend = func() iface.Backend { return &MockBackend{fail: true} }
	code, _ = do(t, r, http.MethodPost, "/api/engines", EngineParam{ModelPath: "missing.onnx", Count: 2})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Empty(t, s.Registry.List())
}

func TestAnalyzeImage(t *testing.T) {
	_, r := setup(t)
	id := addEngine(t, r)
	b64 := base64.StdEncoding.EncodeToString(encodedImage(t, 100, 100))

	t.Run("json body", func(t *testing.T) {
		code, env := do(t, r, http.MethodPost, "/api/engines/"+id+"/analyze", AnalyzeParam{Image: "data:image/png;base64," + b64})
		require.Equal(t, http.StatusOK, code, env.Error)
		var res AnalyzeResult
		require.NoError(t, json.Unmarshal(env.Data, &res))
		assert.Equal(t, "target_found", res.Status)
		require.NotNil(t, res.Report.Target)
		assert.Equal(t, 100.0, res.Report.Target.Area)
		assert.Equal(t, 100, res.Width)
	})

	t.Run("multipart with calibration", func(t *testing.T) {
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		fw, err := mw.CreateFormFile("image", "roof.png")
		require.NoError(t, err)
		_, err = fw.Write(encodedImage(t, 100, 100))
		require.NoError(t, err)
		require.NoError(t, mw.WriteField("calibration", `{"total_area":400,"roi_point":{"x":5,"y":5},"roi_half_size":1,"mask_threshold":0.5}`))
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/engines/"+id+"/analyze", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var env envelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		var res AnalyzeResult
		require.NoError(t, json.Unmarshal(env.Data, &res))
		assert.Equal(t, "no_target", res.Status)
		assert.Nil(t, res.Report.Target)
		require.Len(t, res.Report.AllAreas, 1)
	})

	t.Run("errors", func(t *testing.T) {
		code, _ := do(t, r, http.MethodPost, "/api/engines/missing/analyze", AnalyzeParam{Image: b64})
		assert.Equal(t, http.StatusNotFound, code)

		code, _ = do(t, r, http.MethodPost, "/api/engines/"+id+"/analyze", AnalyzeParam{Image: "!!!"})
		assert.Equal(t, http.StatusBadRequest, code)

		code, _ = do(t, r, http.MethodPost, "/api/engines/"+id+"/analyze", AnalyzeParam{
			Image:       b64,
			Calibration: &iface.CalibrationOverride{MaskThreshold: ptr(1.5)},
		})
		assert.Equal(t, http.StatusBadRequest, code)
	})
}

func TestAnalyzeDetections(t *testing.T) {
	_, r := setup(t)
	m := iface.NewMask(10, 10)
	m.Set(2, 2, 1)
	m.Set(3, 2, 0.5)

	code, env := do(t, r, http.MethodPost, "/api/analyze", DetectionsParam{
		Detections:  &iface.DetectionSet{Masks: []iface.Mask{m}},
		Calibration: &iface.CalibrationOverride{TotalArea: ptr(100.0), ROI: &iface.Position{X: 2, Y: 2}, ROIHalfSize: ptr(0)},
	})
	require.Equal(t, http.StatusOK, code, env.Error)
	var res AnalyzeResult
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.Equal(t, "target_found", res.Status)
	assert.Equal(t, 1.5, res.Report.Target.Area)

	code, env = do(t, r, http.MethodPost, "/api/analyze", DetectionsParam{Detections: &iface.DetectionSet{Masks: []iface.Mask{}}})
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.Equal(t, "no_detections", res.Status)
	assert.Empty(t, res.Report.AllAreas)

	code, _ = do(t, r, http.MethodPost, "/api/analyze", DetectionsParam{})
	assert.Equal(t, http.StatusBadRequest, code)

	bad := iface.Mask{Width: 3, Height: 3, Data: []float32{1}}
	code, _ = do(t, r, http.MethodPost, "/api/analyze", DetectionsParam{Detections: &iface.DetectionSet{Masks: []iface.Mask{bad}}})
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestAnalyzeBatch(t *testing.T) {
	_, r := setup(t)
	full := iface.NewMask(4, 4)
	for i := range full.Data {
		full.Data[i] = 1
	}
	cal := &iface.CalibrationOverride{TotalArea: ptr(200.0), ROI: &iface.Position{X: 1, Y: 1}}
	code, env := do(t, r, http.MethodPost, "/api/analyze/batch", BatchParam{Items: []DetectionsParam{
		{Detections: &iface.DetectionSet{Masks: []iface.Mask{full}}, Calibration: cal},
		{Detections: &iface.DetectionSet{Masks: []iface.Mask{}}, Calibration: cal},
	}})
	require.Equal(t, http.StatusOK, code, env.Error)
	var results []AnalyzeResult
	require.NoError(t, json.Unmarshal(env.Data, &results))
	require.Len(t, results, 2)
	assert.Equal(t, "target_found", results[0].Status)
	assert.Equal(t, 200.0, results[0].Report.Target.Area)
	assert.Equal(t, "no_detections", results[1].Status)

	code, env = do(t, r, http.MethodPost, "/api/analyze/batch", BatchParam{Items: []DetectionsParam{
		{Detections: &iface.DetectionSet{Masks: []iface.Mask{full}}},
		{},
	}})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.True(t, strings.HasPrefix(env.Error, "item 1:"), env.Error)
}

func TestUploadModel(t *testing.T) {
	s, r := setup(t)
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "roof.onnx")
	require.NoError(t, err)
	_, err = fw.Write([]byte("onnx"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/models/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	data, err := os.ReadFile(filepath.Join(s.ModelDir, "roof.onnx"))
	require.NoError(t, err)
	assert.Equal(t, "onnx", string(data))
}

func TestWebsocket(t *testing.T) {
	_, r := setup(t)
	id := addEngine(t, r)
	srv := httptest.NewServer(r)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/" + id
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	b64 := base64.StdEncoding.EncodeToString(encodedImage(t, 80, 80))
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(b64)))
	var reply wsReply
	require.NoError(t, conn.ReadJSON(&reply))
	require.Empty(t, reply.Error)
	assert.Equal(t, "target_found", reply.Data.Status)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("not base64!")))
	reply = wsReply{}
	require.NoError(t, conn.ReadJSON(&reply))
	assert.NotEmpty(t, reply.Error)

	_, _, err = websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/ws/missing", nil)
	assert.Error(t, err)
}

func ptr[T any](v T) *T { return &v }

func TestCalibrationOverrideMergesOverDefaults(t *testing.T) {
	_, r := setup(t)
	m := iface.NewMask(100, 100)
	for y := 45; y < 55; y++ {
		for x := 45; x < 55; x++ {
			m.Set(x, y, 1)
		}
	}
	det := &iface.DetectionSet{Masks: []iface.Mask{m}}

	// Only the area changes: the server ROI (50,50) and threshold stay in force.
	code, env := do(t, r, http.MethodPost, "/api/analyze", DetectionsParam{
		Detections:  det,
		Calibration: &iface.CalibrationOverride{TotalArea: ptr(1000.0)},
	})
	require.Equal(t, http.StatusOK, code, env.Error)
	var res AnalyzeResult
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.Equal(t, "target_found", res.Status)
	assert.Equal(t, 10.0, res.Report.Target.Area)

	// Raw JSON with only area and threshold keeps the server ROI as well.
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(
		`{"detections":{"masks":[{"width":1,"height":1,"data":[1]}]},"calibration":{"total_area":5,"mask_threshold":0.9}}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.Equal(t, "no_target", res.Status, "server roi (50,50) lies outside the 1x1 grid")

	// An explicit ROI at the origin is honoured.
	code, env = do(t, r, http.MethodPost, "/api/analyze", DetectionsParam{
		Detections:  det,
		Calibration: &iface.CalibrationOverride{ROI: &iface.Position{}, ROIHalfSize: ptr(0)},
	})
	require.Equal(t, http.StatusOK, code, env.Error)
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.Equal(t, "no_target", res.Status)
}

func TestAnalyzeImageTooLarge(t *testing.T) {
	s, r := setup(t)
	id := addEngine(t, r)
	img := encodedImage(t, 100, 100)
	s.MaxImageBytes = int64(len(img) - 1)

	code, env := do(t, r, http.MethodPost, "/api/engines/"+id+"/analyze", AnalyzeParam{Image: base64.StdEncoding.EncodeToString(img)})
	assert.Equal(t, http.StatusRequestEntityTooLarge, code)
	assert.Contains(t, env.Error, "exceeds upload limit")

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("image", "roof.png")
	require.NoError(t, err)
	_, err = fw.Write(img)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	req := httptest.NewRequest(http.MethodPost, "/api/engines/"+id+"/analyze", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code, w.Body.String())

	// valid base64 that decodes to three times the limit
	huge := strings.Repeat("AAAA", int(s.MaxImageBytes))
	code, _ = do(t, r, http.MethodPost, "/api/engines/"+id+"/analyze", AnalyzeParam{Image: huge})
	assert.Equal(t, http.StatusRequestEntityTooLarge, code)
}
