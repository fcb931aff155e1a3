// README: Tests for JSON extraction from model output.
package ai

import (
	"errors"
	"testing"
)

func TestUnmarshalArray(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantLen int
		wantErr bool
	}{
		{"bare array", `[{"name":"Coorg"},{"name":"Ooty"}]`, 2, false},
		{"fenced json", "```json\n[{\"name\":\"Coorg\"}]\n```", 1, false},
		{"fenced no language", "```\n[{\"name\":\"Coorg\"}]\n```", 1, false},
		{"prose around payload", "Here you go:\n[{\"name\":\"Coorg\"}]\nEnjoy!", 1, false},
		{"no payload", "I cannot help with that.", 0, true},
		{"malformed", `[{"name":}]`, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out []struct {
				Name string `json:"name"`
			}
			err := UnmarshalArray(tt.text, &out)
			if (err != nil) != tt.wantErr {
				t.Fatalf("UnmarshalArray error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && len(out) != tt.wantLen {
				t.Errorf("got %d entries, want %d", len(out), tt.wantLen)
			}
		})
	}
}

func TestUnmarshalObject(t *testing.T) {
	var out struct {
		TopHotels []int `json:"top_hotels"`
	}
	text := "Sure! ```json\n{\"top_hotels\": [2, 0, 1]}\n```"
	if err := UnmarshalObject(text, &out); err != nil {
		t.Fatalf("UnmarshalObject: %v", err)
	}
	if len(out.TopHotels) != 3 || out.TopHotels[0] != 2 {
		t.Errorf("TopHotels = %v", out.TopHotels)
	}
}

func TestUnmarshalNoPayloadSentinel(t *testing.T) {
	var out map[string]any
	err := UnmarshalObject("nothing structured here", &out)
	if !errors.Is(err, ErrNoPayload) {
		t.Errorf("err = %v, want ErrNoPayload", err)
	}
}
