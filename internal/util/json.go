package util

import (
	"bytes"
	"encoding/json"
)

// JSONMarshal encodes p without HTML escaping, so constraint text such as
// "<1.0" survives unmangled, and without the trailing newline json.Encoder
// appends.
func JSONMarshal(p any) ([]byte, error) {
	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(p); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// JSONUnmarshal decodes data into out.
func JSONUnmarshal(data []byte, out any) error {
	return json.NewDecoder(bytes.NewReader(data)).Decode(out)
}
