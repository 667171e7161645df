package config

import "encoding/json"

const redacted = "******"

// SecretValue is a string that does not reveal itself when formatted or marshaled.
type SecretValue string

func (s SecretValue) Value() string {
	return string(s)
}

func (s SecretValue) String() string {
	if s == "" {
		return ""
	}
	return redacted
}

func (s SecretValue) GoString() string {
	return s.String()
}

func (s SecretValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}
