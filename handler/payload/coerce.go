package payload

import (
	"encoding/json"
	"strings"
)

// FlexibleBool accepts both the JSON boolean true and the string "true".
// Consent fields arrive from JSON bodies and form-encoded bodies alike, so
// the coercion is intentional. Any other value normalises to false and is
// left for validation to reject.
type FlexibleBool bool

func (b *FlexibleBool) UnmarshalJSON(data []byte) error {
	var asBool bool
	if err := json.Unmarshal(data, &asBool); err == nil {
		*b = FlexibleBool(asBool)

		return nil
	}

	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		*b = FlexibleBool(strings.TrimSpace(asString) == "true")

		return nil
	}

	*b = false

	return nil
}

func (b FlexibleBool) Bool() bool {
	return bool(b)
}

// StringList accepts a single JSON string or an array of strings.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*l = StringList{single}

		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}

	*l = many

	return nil
}
