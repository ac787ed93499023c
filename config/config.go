package config

import (
	"RooftopSolar/analysis"
	iface "RooftopSolar/interface"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type EngineSection struct {
	ModelPath string   `yaml:"modelPath"`
	Names     []string `yaml:"names"`
	NamesFile string   `yaml:"namesFile"`
	Conf      float32  `yaml:"conf"`
	Iou       float32  `yaml:"iou"`
	InputSize int      `yaml:"inputSize"`
	UseGPU    bool     `yaml:"useGPU"`
}

// CropSection describes the pre-crop applied to captured frames before detection.
type CropSection struct {
	Enabled bool `yaml:"enabled"`
	CenterX int  `yaml:"centerX"`
	CenterY int  `yaml:"centerY"`
	Width   int  `yaml:"width"`
	Height  int  `yaml:"height"`
}

type Config struct {
	RPCPort       int    `yaml:"RPCPort"`
	HTTPPort      int    `yaml:"HTTPPort"`
	AdhocPort     int    `yaml:"AdhocPort"`
	WorkersNum    int    `yaml:"workersNum"`
	InstanceClass string `yaml:"instanceClass"`
	UseRegServer  bool   `yaml:"UseRegServer"`
	RegServerPort int    `yaml:"RegServerPort"`
	RegServerHost string `yaml:"RegServerHost"`
	LogLevel      string `yaml:"logLevel"`
	Development   bool   `yaml:"development"`
	ModelDir      string `yaml:"modelDir"`
	RenderOverlay bool   `yaml:"renderOverlay"`

	Engine      EngineSection            `yaml:"engine"`
	Crop        CropSection              `yaml:"crop"`
	Calibration iface.CalibrationContext `yaml:"calibration"`
}

func Default() Config {
	return Config{
		RPCPort:       50051,
		HTTPPort:      8080,
		AdhocPort:     50053,
		WorkersNum:    1,
		InstanceClass: "Cpu",
		LogLevel:      "info",
		ModelDir:      "models",
		RenderOverlay: true,
		Engine: EngineSection{
			Names:     []string{"rooftop"},
			Conf:      0.80,
			Iou:       0.80,
			InputSize: 640,
		},
		Crop: CropSection{
			CenterX: 640,
			CenterY: 315,
			Width:   540,
			Height:  470,
		},
		Calibration: analysis.DefaultCalibration(),
	}
}

// Load reads path over the defaults, then applies ROOFTOP_* environment overrides.
// A .env file next to the working directory or the executable is loaded first.
// A missing config file is not an error; the defaults are used.
func Load(path string) (Config, error) {
	cfg := Default()
	if err := loadDotEnv(); err != nil {
		return cfg, err
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	case os.IsNotExist(err):
	default:
		return cfg, fmt.Errorf("read %s: %w", path, err)
	}
	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	cfg.normalize()
	if err := analysis.ValidateCalibration(cfg.Calibration); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// loadDotEnv loads the first .env found; only a present but unreadable or malformed file is an error.
func loadDotEnv() error {
	envPaths := []string{".env"}
	if execPath, err := os.Executable(); err == nil {
		envPaths = append(envPaths, filepath.Join(filepath.Dir(execPath), ".env"))
	}
	for _, p := range envPaths {
		if _, err := os.Stat(p); err == nil {
			if err := godotenv.Load(p); err != nil {
				return fmt.Errorf("load %s: %w", p, err)
			}
			return nil
		}
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("ROOFTOP_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("ROOFTOP_MODEL_PATH"); v != "" {
		cfg.Engine.ModelPath = v
	}
	if v := os.Getenv("ROOFTOP_REG_SERVER_HOST"); v != "" {
		cfg.RegServerHost = v
	}
	ints := map[string]*int{
		"ROOFTOP_RPC_PORT":    &cfg.RPCPort,
		"ROOFTOP_HTTP_PORT":   &cfg.HTTPPort,
		"ROOFTOP_WORKERS_NUM": &cfg.WorkersNum,
	}
	for key, dst := range ints {
		v := os.Getenv(key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		*dst = n
	}
	if v := os.Getenv("ROOFTOP_TOTAL_AREA"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("ROOFTOP_TOTAL_AREA: %w", err)
		}
		cfg.Calibration.TotalArea = f
	}
	return nil
}

func (c *Config) normalize() {
	if c.WorkersNum <= 0 {
		c.WorkersNum = 1
	}
	if c.Engine.InputSize <= 0 {
		c.Engine.InputSize = 640
	}
	if c.ModelDir == "" {
		c.ModelDir = "models"
	}
}

// NamesConf returns the class-name source for the detector.
func (e EngineSection) NamesConf() iface.NamesConf {
	if e.NamesFile != "" {
		return iface.NamesConf{IsFile: true, Data: e.NamesFile}
	}
	return iface.NamesConf{IsFile: false, Data: e.Names}
}
