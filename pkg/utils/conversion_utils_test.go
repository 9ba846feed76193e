package utils

import (
	"errors"
	"testing"
)

func TestParseRecordID(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"0", 0, false},
		{"42", 42, false},
		{"007", 7, false},
		{"", 0, true},
		{"-1", 0, true},
		{"+5", 0, true},
		{"abc", 0, true},
		{"1.5", 0, true},
		{"99999999999999999999", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseRecordID(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidID) {
				t.Errorf("ParseRecordID(%q): expected ErrInvalidID, got %v", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseRecordID(%q) = %d, %v; want %d", tt.in, got, err, tt.want)
		}
	}
}
