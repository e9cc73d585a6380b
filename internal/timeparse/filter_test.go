package timeparse

import (
	"errors"
	"testing"
)

func TestExpandClock(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{"minutes and seconds", "3:41", "3 minutes 41 seconds", true},
		{"hours", "3:41:59", "3 hours 41 minutes 59 seconds", true},
		{"weeks come before months", "1:2:3:4:5", "1 weeks 2 days 3 hours 4 minutes 5 seconds", true},
		{"every unit", "1:2:3:4:5:6:7", "1 years 2 months 3 weeks 4 days 5 hours 6 minutes 7 seconds", true},
		{"too many groups", "1:2:3:4:5:6:7:8", "", false},
		{"spaces removed", "3 : 41", "3 minutes 41 seconds", true},
		{"decimal seconds", "1:30.5", "1 minutes 30.5 seconds", true},
		{"no clock", "3 hours", "3 hours", true},
		{"lone colon", "ratio: 3", "ratio: 3", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := expandClock(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("expandClock(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("expandClock(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCleanup(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		strict  bool
		want    string
		wantOK  bool
		wantErr bool
	}{
		{"canonical names", "2 hrs 5 mins", false, "2 hours 5 minutes", true, false},
		{"glued numbers", "1h30m", false, "1 hours 30 minutes", true, false},
		{"join words dropped", "1 day and 2 hours", false, "1 days 2 hours", true, false},
		{"unknown words dropped", "about 3 weeks ago", false, "3 weeks", true, false},
		{"commas stripped", "1 day, 2 hours,", false, "1 days 2 hours", true, false},
		{"spelled numbers", "Twenty Minutes", false, "20 minutes", true, false},
		{"clock", "0:30", false, "0 minutes 30 seconds", true, false},
		{"clock overflow", "1:1:1:1:1:1:1:1", false, "", false, false},
		{"empty", "", false, "", true, false},
		{"strict accepts units", "2 hrs and 5 mins", true, "2 hours 5 minutes", true, false},
		{"strict rejects unknown", "2 hrs later", true, "", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := cleanup(tt.input, defaultNormalizer, tt.strict)
			if (err != nil) != tt.wantErr {
				t.Fatalf("cleanup(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if ok != tt.wantOK {
				t.Fatalf("cleanup(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("cleanup(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFilterWordsError(t *testing.T) {
	_, err := filterWords("3 hours, gibberish,", true)

	var invalid *InvalidWordError
	if !errors.As(err, &invalid) {
		t.Fatalf("filterWords() error = %v, want *InvalidWordError", err)
	}
	if invalid.Word != "gibberish," {
		t.Errorf("InvalidWordError.Word = %q, want %q", invalid.Word, "gibberish,")
	}
	want := `an invalid word "gibberish," was used in the string to be parsed`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestAccumulate(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		defaultUnit Unit
		want        float64
	}{
		{"empty", "", Seconds, 0},
		{"units only", "hours minutes", Seconds, 0},
		{"pairs", "2 hours 5 minutes", Seconds, 7500},
		{"default unit", "90", Minutes, 5400},
		{"default between numbers", "1 2 days", Hours, 3600 + 172800},
		{"fraction", "0.5 weeks", Seconds, 302400},
		{"every unit", "1 years 1 months 1 weeks 1 days 1 hours 1 minutes 1 seconds", Seconds, 31536000 + 2592000 + 604800 + 86400 + 3600 + 60 + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := accumulate(tt.input, tt.defaultUnit); got != tt.want {
				t.Errorf("accumulate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
