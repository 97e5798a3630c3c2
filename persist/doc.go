// Package persist encodes factor graphs as versioned records and decodes them
// back slot-for-slot.
//
// A Record holds the full slot sequence, tombstones included, and the
// variable index. Keeping tombstones preserves slot numbers, so positional
// equality (fgraph.FactorGraph.Equals) survives a round trip. Factor payloads
// are opaque strings produced by a caller-supplied PayloadCodec.
//
// Formats:
//
//   - FormatYAML     (default) human-readable, via gopkg.in/yaml.v3
//   - FormatMsgpack  compact binary, via github.com/vmihailenco/msgpack/v5
//
// Errors:
//
//   - ErrUnsupportedVersion  record version is not Version.
//   - ErrUnknownFormat       Format value is not recognised.
//   - ErrCorruptRecord       payload or index does not decode into a
//     consistent graph; wraps fgraph.ErrInconsistentIndex where relevant.
package persist
