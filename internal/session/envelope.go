package session

import (
	"encoding/json"
	"strings"
)

// SlotName is the fixed key of the durable session slot.
const SlotName = "auth-storage"

// envelopeVersion matches the version stamped into previously written slots.
const envelopeVersion = 0

// envelope is the state wrapper written to the durable session slot:
// {"state":{"isAuthenticated":...,"user":...},"version":0}.
type envelope struct {
	State   State `json:"state"`
	Version int   `json:"version"`
}

// EncodeState serializes session state into the slot envelope.
func EncodeState(state State) (string, error) {
	payload, err := json.Marshal(envelope{State: state, Version: envelopeVersion})
	if err != nil {
		return "", err
	}
	return string(payload), nil
}

// DecodeState restores session state from a persisted slot value.
//
// Absent or malformed content decodes to the logged-out default and must
// never panic or surface an error: the route guard and store initialization
// both treat a broken slot as "not signed in".
func DecodeState(raw string) State {
	value := strings.TrimSpace(raw)
	if value == "" {
		return State{}
	}
	var wrapped envelope
	if err := json.Unmarshal([]byte(value), &wrapped); err != nil {
		return State{}
	}
	if !wrapped.State.IsAuthenticated {
		return State{}
	}
	return wrapped.State
}
