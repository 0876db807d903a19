package jsonutil

import (
	"strings"
	"testing"
)

func TestStripMarkdownFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"json fence", "```json\n{\"bio\": \"olá\"}\n```", `{"bio": "olá"}`},
		{"bare fence", "```\n{\"score\": 7}\n```", `{"score": 7}`},
		{"no fence", `{"bio": "olá"}`, `{"bio": "olá"}`},
		{"surrounding whitespace", "  ```json\n{}\n```  ", "{}"},
		{"too short to be fenced", "```", "```"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripMarkdownFences(tt.in); got != tt.want {
				t.Errorf("StripMarkdownFences(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestExtractJSON(t *testing.T) {
	got, err := ExtractJSON(`Aqui está o resultado: {"vibe": "caótica"} espero que goste`)
	if err != nil {
		t.Fatalf("ExtractJSON error: %v", err)
	}
	if got != `{"vibe": "caótica"}` {
		t.Errorf("ExtractJSON = %q", got)
	}
}

func TestExtractJSONArrayFirst(t *testing.T) {
	got, err := ExtractJSON(`["a", "b"] e mais {"x": 1}`)
	if err != nil {
		t.Fatalf("ExtractJSON error: %v", err)
	}
	if !strings.HasPrefix(got, "[") {
		t.Errorf("ExtractJSON should prefer the earlier delimiter, got %q", got)
	}
}

func TestExtractJSONNoContent(t *testing.T) {
	if _, err := ExtractJSON("sem json aqui"); err == nil {
		t.Error("ExtractJSON on prose should fail")
	}
}

func TestParseJSON(t *testing.T) {
	type bioReply struct {
		Bio string `json:"bio"`
	}

	got, err := ParseJSON[bioReply]("```json\n{\"bio\": \"Amo tacos\"}\n```")
	if err != nil {
		t.Fatalf("ParseJSON error: %v", err)
	}
	if got.Bio != "Amo tacos" {
		t.Errorf("Bio = %q, want %q", got.Bio, "Amo tacos")
	}
}

func TestParseJSONMalformed(t *testing.T) {
	type reply struct {
		Score int `json:"score"`
	}
	if _, err := ParseJSON[reply](`{"score": not-a-number}`); err == nil {
		t.Error("ParseJSON on malformed JSON should fail")
	}
}
