package domain

// Payload is a decoded JSON object as handed over by the HTTP layer.
// Entity constructors validate it before anything touches storage.
type Payload map[string]any

type fieldState int

const (
	fieldOK fieldState = iota
	fieldMissing
	fieldMistyped
)

// stringField classifies payload[key] for the construct-time validators:
// absent, nil or empty values count as missing, present non-strings as mistyped.
func (p Payload) stringField(key string) (string, fieldState) {
	raw, ok := p[key]
	if !ok || raw == nil {
		return "", fieldMissing
	}
	s, ok := raw.(string)
	if !ok {
		return "", fieldMistyped
	}
	if s == "" {
		return "", fieldMissing
	}
	return s, fieldOK
}

// requireStrings runs the two-phase check shared by every New* entity:
// all fields present first, then all fields string-typed.
func requireStrings(p Payload, entity ValidationEntity, keys ...string) ([]string, error) {
	values := make([]string, len(keys))
	states := make([]fieldState, len(keys))
	for i, key := range keys {
		values[i], states[i] = p.stringField(key)
	}
	for _, st := range states {
		if st == fieldMissing {
			return nil, ValidationError{entity, MissingProperty}
		}
	}
	for _, st := range states {
		if st == fieldMistyped {
			return nil, ValidationError{entity, WrongDataType}
		}
	}
	return values, nil
}
