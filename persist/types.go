package persist

import (
	"errors"

	"github.com/katalvlaran/elimgraph/fgraph"
)

// Version is the record layout written by this package.
const Version = 1

var (
	// ErrUnsupportedVersion indicates a record written with another layout.
	ErrUnsupportedVersion = errors.New("persist: unsupported record version")

	// ErrUnknownFormat indicates an unrecognised Format value.
	ErrUnknownFormat = errors.New("persist: unknown format")

	// ErrCorruptRecord indicates a record that cannot be rebuilt into a graph.
	ErrCorruptRecord = errors.New("persist: corrupt record")
)

// Format selects the wire encoding.
type Format int

const (
	// FormatYAML encodes records as YAML documents.
	FormatYAML Format = iota
	// FormatMsgpack encodes records as MessagePack.
	FormatMsgpack
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatMsgpack:
		return "msgpack"
	default:
		return "unknown"
	}
}

// Record is the persisted form of a factor graph.
type Record struct {
	Version int              `yaml:"version" msgpack:"version"`
	Slots   []SlotRecord     `yaml:"slots" msgpack:"slots"`
	Index   map[string][]int `yaml:"index" msgpack:"index"`
}

// SlotRecord is one slot; Removed marks a tombstone.
type SlotRecord struct {
	Removed bool   `yaml:"removed,omitempty" msgpack:"removed,omitempty"`
	Payload string `yaml:"payload,omitempty" msgpack:"payload,omitempty"`
}

// PayloadCodec converts factors to and from opaque payload strings.
type PayloadCodec[F any] interface {
	EncodeFactor(f F) (string, error)
	DecodeFactor(payload string) (F, error)
}

// Option configures Encode and Decode.
type Option func(*options)

type options struct {
	format    Format
	graphOpts []fgraph.Option
}

// WithFormat selects the wire encoding; the default is FormatYAML.
func WithFormat(f Format) Option {
	return func(o *options) { o.format = f }
}

// WithGraphOptions passes opts to the graph built by Decode.
func WithGraphOptions(opts ...fgraph.Option) Option {
	return func(o *options) { o.graphOpts = append(o.graphOpts, opts...) }
}

func buildOptions(opts []Option) options {
	o := options{format: FormatYAML}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
