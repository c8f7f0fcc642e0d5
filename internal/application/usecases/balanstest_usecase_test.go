package usecases

import (
	"encoding/json"
	"testing"
)

func TestAnswerValueUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    AnswerValue
		wantErr bool
	}{
		{name: "single choice", raw: `"ja"`, want: "ja"},
		{name: "multi-select list", raw: `["mantelzorgcompliment","respijtzorg"]`, want: "mantelzorgcompliment,respijtzorg"},
		{name: "single-item list", raw: `["geen"]`, want: "geen"},
		{name: "empty list", raw: `[]`, want: ""},
		{name: "number rejected", raw: `2`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v AnswerValue
			err := json.Unmarshal([]byte(tt.raw), &v)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Unmarshal(%s): expected an error", tt.raw)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal(%s): %v", tt.raw, err)
			}
			if v != tt.want {
				t.Errorf("Unmarshal(%s) = %q, want %q", tt.raw, v, tt.want)
			}
		})
	}
}

func TestBalanstestSubmissionMultiSelectBody(t *testing.T) {
	body := `{
		"answers": [
			{"question_id": "c1", "value": "soms"},
			{"question_id": "c5", "value": ["mantelzorgcompliment", "dagbesteding"]}
		]
	}`

	var sub BalanstestSubmission
	if err := json.Unmarshal([]byte(body), &sub); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(sub.Answers) != 2 {
		t.Fatalf("expected 2 answers, got %d", len(sub.Answers))
	}
	if sub.Answers[0].Value != "soms" {
		t.Errorf("c1 value = %q, want %q", sub.Answers[0].Value, "soms")
	}
	if sub.Answers[1].Value != "mantelzorgcompliment,dagbesteding" {
		t.Errorf("c5 value = %q, want comma-joined option ids", sub.Answers[1].Value)
	}
}
