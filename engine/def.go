package engine

import (
	iface "RooftopSolar/interface"
	"fmt"
	"os"
	"strings"
)

const UNREGISTERED = 0x0001
const REGISTERED = 0x0002
const IDLE = 0x0003
const BUSY = 0x0004
const SingleThread = 0x1001
const MultiThread = 0x1002

// ReadLinesReadFile returns the non-empty lines of path with CRLF endings trimmed.
func ReadLinesReadFile(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	raw := strings.Split(string(b), "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimRight(l, "\r")
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines, nil
}

// resolveNames reads class names from a file or takes them from a string slice.
func resolveNames(names iface.NamesConf) ([]string, error) {
	if names.IsFile {
		path, ok := names.Data.(string)
		if !ok {
			return nil, fmt.Errorf("names file path must be a string, got %T", names.Data)
		}
		return ReadLinesReadFile(path)
	}
	switch v := names.Data.(type) {
	case nil:
		return []string{}, nil
	case []string:
		return append([]string(nil), v...), nil
	case []any:
		out := make([]string, len(v))
		for i, n := range v {
			s, ok := n.(string)
			if !ok {
				return nil, fmt.Errorf("name %d is %T, not a string", i, n)
			}
			out[i] = s
		}
		return out, nil
	default:
		return nil, fmt.Errorf("names must be a slice or a file path, got %T", names.Data)
	}
}
