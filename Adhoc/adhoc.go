package Adhoc

import (
	"RooftopSolar/logger"
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	DmlInstance    = 0x2001
	CpuInstance    = 0x2002
	CudaInstance   = 0x2003
	RocmInstance   = 0x2004
	TimeOutSeconds = 5
)

// Capabilities advertised by every analysis node.
var Capabilities = []string{"detect", "mask_area", "roi_target", "batch"}

type RegisterRequest struct {
	Id            string   `json:"id"`
	IP            string   `json:"ip"`
	Port          int      `json:"port"`
	InstanceClass int      `json:"instanceClass"`
	Capabilities  []string `json:"capabilities"`
	TimeStamp     int64    `json:"timestamp"`
}

type RegisterResponse struct {
	Id      string `json:"id"`
	Success bool   `json:"success"`
}

type RegServerConfig struct {
	Port int
	Addr string
	// Interval between heartbeats; zero means TimeOutSeconds.
	Interval time.Duration
}

func (reg *RegServerConfig) SetAddress(addr string, port int) {
	reg.Addr = addr
	reg.Port = port
}

func (reg *RegServerConfig) url() string {
	addr := reg.Addr
	if !strings.Contains(addr, "://") {
		addr = "http://" + addr
	}
	return fmt.Sprintf("%s:%d/api/register", addr, reg.Port)
}

var RegServerCfg RegServerConfig

// InstanceClassOf maps a config name such as "Cuda" to its instance class.
func InstanceClassOf(name string) int {
	switch strings.ToLower(name) {
	case "dml":
		return DmlInstance
	case "cuda":
		return CudaInstance
	case "rocm":
		return RocmInstance
	default:
		return CpuInstance
	}
}

// SendAliveMessage registers this node with RegServerCfg and repeats the
// registration every interval until ctx is cancelled.
func SendAliveMessage(CCIP string, CCPort int, instanceClass int, ctx context.Context, wg *sync.WaitGroup) {
	defer wg.Done()
	cfg := RegServerCfg
	interval := cfg.Interval
	if interval <= 0 {
		interval = TimeOutSeconds * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	client := resty.New().SetTimeout(TimeOutSeconds * time.Second)
	url := cfg.url()
	id := uuid.NewString()
	log := logger.Log().With(zap.String("id", id), zap.String("url", url))

	safeDoRequest := func() {
		defer func() {
			if r := recover(); r != nil {
				log.Error("SendAliveMessage panic recovered", zap.Any("panic", r))
			}
		}()
		var respBody RegisterResponse
		reqBody := RegisterRequest{
			Id:            id,
			IP:            CCIP,
			Port:          CCPort,
			InstanceClass: instanceClass,
			Capabilities:  Capabilities,
			TimeStamp:     time.Now().Unix(),
		}
		resp, err := client.R().
			SetContext(ctx).
			SetHeader("Content-Type", "application/json").
			SetBody(reqBody).
			SetResult(&respBody).
			Post(url)
		if err != nil {
			if ctx.Err() == nil {
				log.Error("register request failed", zap.Error(err))
			}
			return
		}
		if resp.IsError() {
			log.Error("register server returned error", zap.String("status", resp.Status()), zap.String("body", resp.String()))
			return
		}
		log.Debug("heartbeat sent", zap.Bool("success", respBody.Success))
	}

	safeDoRequest()
	for {
		select {
		case <-ctx.Done():
			log.Info("SendAliveMessage context cancelled, exiting goroutine.")
			return
		case <-ticker.C:
			safeDoRequest()
		}
	}
}
