package config

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/iwvelando/finance-calculators/pkg/constants"
)

// ServerConfig defines runtime parameters for the HTTP API.
type ServerConfig struct {
	Address       string `yaml:"address,omitempty"`
	MaxBodySize   string `yaml:"maxBodySize,omitempty"`
	RateLimit     int    `yaml:"rateLimit,omitempty"` // requests per minute per client; negative disables
	bodySizeBytes int64
}

// MaxBodySizeBytes returns the configured request body limit in bytes.
func (s *ServerConfig) MaxBodySizeBytes() int64 {
	if s.bodySizeBytes <= 0 {
		return constants.DefaultMaxBodySizeBytes
	}
	return s.bodySizeBytes
}

// SetMaxBodySizeBytes overrides the configured request body limit.
func (s *ServerConfig) SetMaxBodySizeBytes(size int64) {
	if size > 0 {
		s.bodySizeBytes = size
		s.MaxBodySize = fmt.Sprintf("%d", size)
	}
}

func (s *ServerConfig) normalize() error {
	if s.Address == "" {
		s.Address = constants.DefaultServerAddress
	}

	switch {
	case s.RateLimit == 0:
		s.RateLimit = constants.DefaultRateLimitCapacity
	case s.RateLimit < 0:
		s.RateLimit = 0
	}

	sizeStr := strings.TrimSpace(s.MaxBodySize)
	if sizeStr == "" {
		s.bodySizeBytes = constants.DefaultMaxBodySizeBytes
		s.MaxBodySize = fmt.Sprintf("%d", constants.DefaultMaxBodySizeBytes)
		return nil
	}

	bytes, err := ParseSize(sizeStr)
	if err != nil {
		return err
	}
	if bytes <= 0 {
		bytes = constants.DefaultMaxBodySizeBytes
	}
	s.bodySizeBytes = bytes
	return nil
}

// ParseSize converts a human-friendly byte string (e.g., "256K", "10M") into bytes.
func ParseSize(value string) (int64, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return constants.DefaultMaxBodySizeBytes, nil
	}

	upper := strings.ToUpper(trimmed)
	idx := len(upper)
	for idx > 0 && !unicode.IsDigit(rune(upper[idx-1])) {
		idx--
	}
	if idx == 0 {
		return 0, fmt.Errorf("invalid size: %s", value)
	}
	numPart := strings.TrimSpace(upper[:idx])
	unitPart := strings.TrimSpace(upper[idx:])

	if numPart == "" {
		return 0, fmt.Errorf("invalid size: %s", value)
	}

	n, err := strconv.ParseInt(numPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size value %q: %w", value, err)
	}

	var multiplier int64
	switch unitPart {
	case "", "B":
		multiplier = 1
	case "K", "KB":
		multiplier = 1024
	case "M", "MB":
		multiplier = 1024 * 1024
	case "G", "GB":
		multiplier = 1024 * 1024 * 1024
	default:
		return 0, fmt.Errorf("unsupported size unit %q", unitPart)
	}

	result := n * multiplier
	if result < 0 {
		return 0, fmt.Errorf("size overflow for value %s", value)
	}
	return result, nil
}
