package adapt

import (
	"github.com/docmap-format/go-docmap/encode"
	"github.com/docmap-format/go-docmap/parse"
)

// MapOption is an option for controlling Marshal, model to bytes.
type MapOption interface {
	applyMap(*mapConfig)
}

// UnmapOption is an option for controlling Unmarshal, bytes to model.
type UnmapOption interface {
	applyUnmap(*unmapConfig)
}

type mapConfig struct {
	// EncodeOptions to pass through to encode.Encode
	EncodeOptions []encode.EncodeOption
}

type unmapConfig struct {
	// ParseOptions to pass through to parse.Parse
	ParseOptions []parse.ParseOption
}

type encodeOptions []encode.EncodeOption

func (o encodeOptions) applyMap(cfg *mapConfig) {
	cfg.EncodeOptions = append(cfg.EncodeOptions, o...)
}

// WithEncodeOptions passes encode options through Marshal.
func WithEncodeOptions(opts ...encode.EncodeOption) MapOption {
	return encodeOptions(opts)
}

type parseOptions []parse.ParseOption

func (o parseOptions) applyUnmap(cfg *unmapConfig) {
	cfg.ParseOptions = append(cfg.ParseOptions, o...)
}

// WithParseOptions passes parse options through Unmarshal.
func WithParseOptions(opts ...parse.ParseOption) UnmapOption {
	return parseOptions(opts)
}

// ToEncodeOptions extracts EncodeOptions from a slice of MapOptions.
func ToEncodeOptions(opts ...MapOption) []encode.EncodeOption {
	cfg := &mapConfig{}
	for _, opt := range opts {
		opt.applyMap(cfg)
	}
	return cfg.EncodeOptions
}

// ToParseOptions extracts ParseOptions from a slice of UnmapOptions.
func ToParseOptions(opts ...UnmapOption) []parse.ParseOption {
	cfg := &unmapConfig{}
	for _, opt := range opts {
		opt.applyUnmap(cfg)
	}
	return cfg.ParseOptions
}
