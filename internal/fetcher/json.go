package fetcher

import (
	"bytes"
	"encoding/json"

	"github.com/rotisserie/eris"
)

// DecodeJSON decodes a JSON document into v.
func DecodeJSON(data []byte, v any) error {
	if err := json.NewDecoder(bytes.NewReader(data)).Decode(v); err != nil {
		return eris.Wrap(err, "json: decode")
	}
	return nil
}
