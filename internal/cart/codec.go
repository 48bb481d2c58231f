package cart

import (
	"encoding/base64"
	"encoding/json"
	"strings"
)

// Encode serializes cart items for the durable cart slot. The payload is
// base64-wrapped JSON so it survives cookie value restrictions.
func Encode(items []Item) (string, error) {
	if items == nil {
		items = []Item{}
	}
	payload, err := json.Marshal(items)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(payload), nil
}

// Decode restores cart items from a persisted slot value.
//
// Corrupt or empty content decodes to an empty cart rather than an error:
// a malformed slot must never break initialization.
func Decode(raw string) []Item {
	value := strings.TrimSpace(raw)
	if value == "" {
		return nil
	}
	payload, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return nil
	}
	var items []Item
	if err := json.Unmarshal(payload, &items); err != nil {
		return nil
	}
	return items
}
