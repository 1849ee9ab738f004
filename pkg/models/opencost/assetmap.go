package opencost

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type AssetEntry struct {
	Key    string
	Record AssetRecord
}

// AssetMap is a JSON object of asset records that keeps the key order of the
// payload.
type AssetMap []AssetEntry

func (m *AssetMap) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("read asset map: %w", err)
	}
	if tok == nil {
		*m = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("asset map: expected object, got %v", tok)
	}

	entries := make(AssetMap, 0)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("read asset key: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("asset map: expected string key, got %v", keyTok)
		}

		var record AssetRecord
		if err := dec.Decode(&record); err != nil {
			return fmt.Errorf("decode asset %q: %w", key, err)
		}
		entries = append(entries, AssetEntry{Key: key, Record: record})
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("read asset map end: %w", err)
	}

	*m = entries
	return nil
}

func (m AssetMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		record, err := json.Marshal(e.Record)
		if err != nil {
			return nil, err
		}
		buf.Write(record)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
