package core

import "testing"

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", DebugLevel, false},
		{"INFO", InfoLevel, false},
		{"Warning", WarnLevel, false},
		{"critical", FatalLevel, false},
		{"trace", TraceLevel, false},
		{"notset", NotSet, false},
		{"10", DebugLevel, false},
		{"30", WarnLevel, false},
		{" 40 ", ErrorLevel, false},
		{"15", NotSet, true},
		{"verbose", NotSet, true},
		{"", NotSet, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLevel_TextRoundTrip(t *testing.T) {
	var l Level
	if err := l.UnmarshalText([]byte("error")); err != nil {
		t.Fatalf("UnmarshalText() error = %v", err)
	}
	if l != ErrorLevel {
		t.Fatalf("UnmarshalText() = %v, want ERROR", l)
	}

	b, err := l.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() error = %v", err)
	}
	if string(b) != "ERROR" {
		t.Errorf("MarshalText() = %q, want ERROR", b)
	}

	if _, err := Level(42).MarshalText(); err == nil {
		t.Error("MarshalText() on an out-of-range level should fail")
	}
}

func TestLevel_Ordering(t *testing.T) {
	order := []Level{TraceLevel, DebugLevel, InfoLevel, WarnLevel, ErrorLevel, FatalLevel, PanicLevel}
	for i := 1; i < len(order); i++ {
		if order[i-1] >= order[i] {
			t.Errorf("%v should be below %v", order[i-1], order[i])
		}
	}
	if NotSet >= TraceLevel {
		t.Error("NotSet must sort below every severity")
	}
}
