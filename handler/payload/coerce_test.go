package payload_test

import (
	"encoding/json"
	"testing"

	"github.com/rmourey26/resendit-asset-intel-website-blog/handler/payload"
)

func TestFlexibleBoolUnmarshal(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{`true`, true},
		{`false`, false},
		{`"true"`, true},
		{`" true "`, true},
		{`"false"`, false},
		{`"yes"`, false},
		{`1`, false},
		{`null`, false},
		{`{"nested": true}`, false},
	}

	for _, tc := range cases {
		var b payload.FlexibleBool
		if err := json.Unmarshal([]byte(tc.input), &b); err != nil {
			t.Fatalf("unmarshal %s: %v", tc.input, err)
		}

		if b.Bool() != tc.want {
			t.Errorf("input %s: got %v, want %v", tc.input, b.Bool(), tc.want)
		}
	}
}

func TestFlexibleBoolInsideStruct(t *testing.T) {
	var form struct {
		Agreed payload.FlexibleBool `json:"agreedToTerms"`
	}

	if err := json.Unmarshal([]byte(`{"agreedToTerms": "true"}`), &form); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if !form.Agreed.Bool() {
		t.Fatalf("expected the string form to count as consent")
	}
}

func TestStringListUnmarshal(t *testing.T) {
	var single payload.StringList
	if err := json.Unmarshal([]byte(`"ops@example.test"`), &single); err != nil {
		t.Fatalf("unmarshal single: %v", err)
	}
	if len(single) != 1 || single[0] != "ops@example.test" {
		t.Fatalf("unexpected single value %v", single)
	}

	var many payload.StringList
	if err := json.Unmarshal([]byte(`["a@example.test", "b@example.test"]`), &many); err != nil {
		t.Fatalf("unmarshal array: %v", err)
	}
	if len(many) != 2 || many[1] != "b@example.test" {
		t.Fatalf("unexpected array value %v", many)
	}

	var bad payload.StringList
	if err := json.Unmarshal([]byte(`42`), &bad); err == nil {
		t.Fatalf("expected an error for a non-string value")
	}
}
