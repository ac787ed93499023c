package main

import (
	adhoc "RooftopSolar/Adhoc"
	"RooftopSolar/config"
	"RooftopSolar/engine"
	backend "RooftopSolar/gRPC"
	"RooftopSolar/logger"
	"RooftopSolar/monitor"
	"RooftopSolar/pool"
	"RooftopSolar/web"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"
)

func GetOutboundIP() (string, error) {
	// UDP dial sends nothing; it only resolves the outbound route.
	conn, err := net.Dial("udp", "8.8.8.8:80")
	if err != nil {
		return "", err
	}
	defer conn.Close()

	localAddr := conn.LocalAddr().(*net.UDPAddr)

	return localAddr.IP.String(), nil
}

func cropRect(c config.CropSection) *pool.CropRect {
	if !c.Enabled {
		return nil
	}
	return &pool.CropRect{CenterX: c.CenterX, CenterY: c.CenterY, Width: c.Width, Height: c.Height}
}

func loadDetector(cfg config.Config) (*engine.Detector, error) {
	d := &engine.Detector{}
	d.New()
	d.SetInputSize(cfg.Engine.InputSize)
	if _, err := d.LoadModel(cfg.Engine.ModelPath, cfg.Engine.NamesConf(), cfg.Engine.Conf, cfg.Engine.Iou, cfg.Engine.UseGPU); err != nil {
		d.Destroy()
		return nil, err
	}
	return d, nil
}

// runOnce analyzes a single image with the configured model and prints the report.
func runOnce(cfg config.Config, imagePath string) error {
	data, err := os.ReadFile(imagePath)
	if err != nil {
		return err
	}
	d, err := loadDetector(cfg)
	if err != nil {
		return fmt.Errorf("load model: %w", err)
	}
	reg := pool.NewRegistry()
	defer reg.DestroyAll()
	id := reg.Add(d, "once", engine.SingleThread)
	e, _ := reg.Get(id)

	p := pool.New(1)
	p.Start(1)
	defer p.Close()
	res, err := p.Submit(context.Background(), pool.Job{
		Engine:      e,
		Image:       data,
		Calibration: cfg.Calibration,
		Crop:        cropRect(cfg.Crop),
		Overlay:     cfg.RenderOverlay,
	})
	if err != nil {
		return err
	}
	if len(res.Overlay) > 0 {
		out := strings.TrimSuffix(imagePath, filepath.Ext(imagePath)) + "_overlay.png"
		if err := os.WriteFile(out, res.Overlay, 0o644); err != nil {
			return err
		}
		fmt.Fprintln(os.Stderr, "Overlay written to", out)
	}
	out, err := json.MarshalIndent(map[string]any{"status": res.Report.Status(), "report": res.Report}, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func main() {
	configPath := flag.String("config", "config.yaml", "path to the yaml config file")
	once := flag.String("once", "", "analyze this image with the configured model, print the report and exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Println("Failed to load config:", err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.LogLevel, cfg.Development); err != nil {
		fmt.Println("Failed to init logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if *once != "" {
		if err := runOnce(cfg, *once); err != nil {
			logger.Log().Error("analysis failed", zap.Error(err))
			os.Exit(1)
		}
		return
	}

	ip, err := GetOutboundIP()
	if err != nil {
		fmt.Println("Failed to get outbound IP:", err)
		ip = "127.0.0.1"
	} else {
		fmt.Println("Outbound IP:", ip)
	}

	fmt.Println(strings.Repeat("#", 64))
	CPUNum := runtime.NumCPU()
	fmt.Printf("CPU Cores: %d\n", CPUNum)
	fmt.Println(" gRPC  Port:", cfg.RPCPort)
	fmt.Println(" HTTP  Port:", cfg.HTTPPort)
	fmt.Println(" Adhoc Port:", cfg.AdhocPort)
	fmt.Println("Configured Workers Num:", cfg.WorkersNum)
	fmt.Println(strings.Repeat("#", 64))
	fmt.Println("")
	if cfg.WorkersNum > CPUNum {
		fmt.Println(strings.Repeat("!", 64))
		fmt.Println("Please noted that workersNum exceeds CPU cores, which may lead to performance degradation.")
		fmt.Println(strings.Repeat("!", 64))
		fmt.Println("")
	}

	registry := pool.NewRegistry()
	workers := pool.New(cfg.WorkersNum)
	workers.Start(cfg.WorkersNum)

	if cfg.Engine.ModelPath != "" {
		for i := 0; i < cfg.WorkersNum; i++ {
			d, err := loadDetector(cfg)
			if err != nil {
				logger.Log().Error("failed to load configured model", zap.String("path", cfg.Engine.ModelPath), zap.Error(err))
				break
			}
			registry.Add(d, "configured", engine.SingleThread)
		}
	}

	rpc := backend.NewServer(registry, workers, cfg.ModelDir, cfg.Calibration)
	rpc.Crop = cropRect(cfg.Crop)
	server, err := backend.StartGRPCServer(cfg.RPCPort, rpc)
	if err != nil {
		logger.Log().Fatal("failed to start gRPC server", zap.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup

	httpSrv := web.NewServer(registry, workers, cfg.ModelDir, cfg.Calibration)
	httpSrv.Crop = cropRect(cfg.Crop)
	httpSrv.IdleTimeout = time.Minute
	httpSrv.BatchLimit = CPUNum
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := httpSrv.Start(ctx, cfg.HTTPPort); err != nil {
			logger.Log().Error("HTTP server stopped", zap.Error(err))
		}
	}()

	adhoc.RegServerCfg = adhoc.RegServerConfig{}
	adhoc.RegServerCfg.SetAddress(cfg.RegServerHost, cfg.RegServerPort)
	wg.Add(1)
	if cfg.UseRegServer {
		go adhoc.SendAliveMessage(ip, cfg.RPCPort, adhoc.InstanceClassOf(cfg.InstanceClass), ctx, &wg)
	} else {
		fmt.Println("UseRegServer is set to false, skipping registration")
		wg.Done()
	}
	go monitor.StartMon(cfg.AdhocPort, ctx)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	select {
	case s := <-sig:
		logger.Log().Info("signal received", zap.String("signal", s.String()))
	case <-rpc.Done():
	}
	cancel()
	server.GracefulStop()
	workers.Close()
	registry.DestroyAll()
	fmt.Println("Done")
	wg.Wait()
	fmt.Println("Safely exited")
}
