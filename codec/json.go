package codec

import "encoding/json"

// JSON is the standard-library JSON codec.
//
// Catalog manifests are plain structs of strings and ints, so JSON is stable
// and portable across releases. If you need a custom encoding, implement
// Codec and pass it via the WithCodec option.
type JSON struct{}

// Marshal encodes the value to JSON.
func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal decodes the JSON data into v.
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Name returns the unique name of the codec ("json").
func (JSON) Name() string { return "json" }
