package persist

import (
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/elimgraph/fgraph"
)

// ToRecord snapshots g into a Record, encoding every live factor with codec.
func ToRecord[F fgraph.Factor[F, C], C fgraph.Conditional[C]](g *fgraph.FactorGraph[F, C], codec PayloadCodec[F]) (*Record, error) {
	if g == nil {
		return nil, fgraph.ErrNilGraph
	}
	slots := g.Slots()
	rec := &Record{
		Version: Version,
		Slots:   make([]SlotRecord, len(slots)),
		Index:   g.IndexSnapshot(),
	}
	for i, s := range slots {
		if !s.Live {
			rec.Slots[i] = SlotRecord{Removed: true}
			continue
		}
		payload, err := codec.EncodeFactor(s.Factor)
		if err != nil {
			return nil, fmt.Errorf("persist: encode slot %d: %w", i, err)
		}
		rec.Slots[i] = SlotRecord{Payload: payload}
	}

	return rec, nil
}

// FromRecord rebuilds a graph from rec, keeping every slot number and
// cross-checking the stored index against the decoded scopes.
func FromRecord[F fgraph.Factor[F, C], C fgraph.Conditional[C]](rec *Record, codec PayloadCodec[F], opts ...fgraph.Option) (*fgraph.FactorGraph[F, C], error) {
	// 1. Version gate
	if rec == nil {
		return nil, fmt.Errorf("%w: nil record", ErrCorruptRecord)
	}
	if rec.Version != Version {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrUnsupportedVersion, rec.Version, Version)
	}

	// 2. Decode payloads slot by slot
	slots := make([]fgraph.Slot[F], len(rec.Slots))
	for i, sr := range rec.Slots {
		if sr.Removed {
			continue
		}
		f, err := codec.DecodeFactor(sr.Payload)
		if err != nil {
			return nil, fmt.Errorf("%w: slot %d: %w", ErrCorruptRecord, i, err)
		}
		slots[i] = fgraph.Slot[F]{Factor: f, Live: true}
	}

	// 3. Rebuild and verify the index
	index := rec.Index
	if index == nil {
		index = map[string][]int{}
	}
	g, err := fgraph.Restore[F, C](slots, index, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptRecord, err)
	}

	return g, nil
}

// Encode writes g to w in the selected format.
func Encode[F fgraph.Factor[F, C], C fgraph.Conditional[C]](w io.Writer, g *fgraph.FactorGraph[F, C], codec PayloadCodec[F], opts ...Option) error {
	o := buildOptions(opts)
	rec, err := ToRecord(g, codec)
	if err != nil {
		return err
	}

	switch o.format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		if err = enc.Encode(rec); err != nil {
			return fmt.Errorf("persist: yaml encode: %w", err)
		}
		if err = enc.Close(); err != nil {
			return fmt.Errorf("persist: yaml encode: %w", err)
		}
	case FormatMsgpack:
		if err = msgpack.NewEncoder(w).Encode(rec); err != nil {
			return fmt.Errorf("persist: msgpack encode: %w", err)
		}
	default:
		return fmt.Errorf("%w: %d", ErrUnknownFormat, int(o.format))
	}

	return nil
}

// Decode reads a record from r in the selected format and rebuilds the graph.
// Use WithGraphOptions to configure the new graph (e.g. fgraph.WithOracle).
func Decode[F fgraph.Factor[F, C], C fgraph.Conditional[C]](r io.Reader, codec PayloadCodec[F], opts ...Option) (*fgraph.FactorGraph[F, C], error) {
	o := buildOptions(opts)
	var rec Record

	switch o.format {
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&rec); err != nil {
			return nil, fmt.Errorf("%w: yaml decode: %w", ErrCorruptRecord, err)
		}
	case FormatMsgpack:
		if err := msgpack.NewDecoder(r).Decode(&rec); err != nil {
			return nil, fmt.Errorf("%w: msgpack decode: %w", ErrCorruptRecord, err)
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, int(o.format))
	}

	return FromRecord[F, C](&rec, codec, o.graphOpts...)
}
