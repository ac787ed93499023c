package iface

import (
	"gocv.io/x/gocv"
)

type NamesConf struct {
	IsFile bool
	Data   any
}

type EngineConfig struct {
	UseGPU    bool
	ModelPath string
	Names     NamesConf
	Conf      float32
	Iou       float32
	InputSize int
}

type Position struct {
	X float32 `json:"x" yaml:"x"`
	Y float32 `json:"y" yaml:"y"`
}

type Box struct {
	LT Position
	RT Position
	RB Position
	LB Position
}

// NewBox builds an axis-aligned box from its top-left and bottom-right corners.
func NewBox(x1, y1, x2, y2 float32) Box {
	return Box{
		LT: Position{X: x1, Y: y1},
		RT: Position{X: x2, Y: y1},
		RB: Position{X: x2, Y: y2},
		LB: Position{X: x1, Y: y2},
	}
}

func (b Box) Center() Position {
	return Position{
		X: (b.LT.X + b.RB.X) / 2,
		Y: (b.LT.Y + b.RB.Y) / 2,
	}
}

// Detection is one instance emitted by a detector, index-aligned with its mask.
type Detection struct {
	Index int     `json:"index"`
	Class string  `json:"class"`
	Conf  float32 `json:"conf"`
	Box   Box     `json:"box"`
}

// Backend is a segmentation detector. The analysis code never owns one; callers
// inject it into the worker pool.
type Backend interface {
	LoadModel(modelPath string, names NamesConf, conf float32, iou float32, useGPU bool) (bool, error)
	Detect(image gocv.Mat) (*DetectionSet, error)
	Destroy()
	CheckConfig() EngineConfig
	SetInputSize(size int)
}
