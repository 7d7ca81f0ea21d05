package plugin

import "testing"

func TestWorse(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Status
		expected Status
	}{
		{"ok vs ok", StatusOK, StatusOK, StatusOK},
		{"ok vs warning", StatusOK, StatusWarning, StatusWarning},
		{"warning vs critical", StatusWarning, StatusCritical, StatusCritical},
		{"critical vs warning", StatusCritical, StatusWarning, StatusCritical},
		{"critical vs unknown", StatusCritical, StatusUnknown, StatusUnknown},
		{"unknown vs critical", StatusUnknown, StatusCritical, StatusUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Worse(tt.a, tt.b); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestStatusString(t *testing.T) {
	tests := []struct {
		status   Status
		expected string
	}{
		{StatusOK, "OK"},
		{StatusWarning, "WARNING"},
		{StatusCritical, "CRITICAL"},
		{StatusUnknown, "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.status.String(); got != tt.expected {
			t.Errorf("expected %q, got %q", tt.expected, got)
		}
		if got := tt.status.ExitCode(); got != int(tt.status) {
			t.Errorf("expected exit code %d, got %d", int(tt.status), got)
		}
	}
}

func TestResultRender(t *testing.T) {
	tests := []struct {
		name     string
		result   Result
		expected string
	}{
		{
			name:     "message only",
			result:   Result{Status: StatusOK, Message: "all good"},
			expected: "NetScaler OK: all good",
		},
		{
			name: "with perfdata",
			result: Result{
				Status:  StatusWarning,
				Message: "load is high",
				PerfData: []PerfData{
					{Label: "load", Value: "85", Warn: "80", Crit: "95"},
					{Label: "conns", Value: "12"},
				},
			},
			expected: "NetScaler WARNING: load is high | load=85;80;95 conns=12",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.result.Render(); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestPerfDataString(t *testing.T) {
	tests := []struct {
		name     string
		pd       PerfData
		expected string
	}{
		{"value only", PerfData{Label: "up", Value: "3"}, "up=3"},
		{"with unit", PerfData{Label: "quorum", Value: "75", Unit: "%"}, "quorum=75%"},
		{"warn only", PerfData{Label: "x", Value: "1", Warn: "5"}, "x=1;5"},
		{"crit without warn", PerfData{Label: "x", Value: "1", Crit: "9"}, "x=1;;9"},
		{
			"full tuple",
			PerfData{Label: "q", Value: "75", Unit: "%", Warn: "90", Crit: "50", Min: "0", Max: "100"},
			"q=75%;90;50;0;100",
		},
		{"min without max", PerfData{Label: "rx", Value: "1024", Min: "0"}, "rx=1024;;;0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pd.String(); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestFormatFloat(t *testing.T) {
	if got := FormatFloat(42); got != "42" {
		t.Errorf("expected %q, got %q", "42", got)
	}
	if got := FormatFloat(66.6666); got != "66.6666" {
		t.Errorf("expected %q, got %q", "66.6666", got)
	}
}
