package checks

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/DerInti/check-netscaler/internal/plugin"
)

func TestCheckStateAllUp(t *testing.T) {
	client := newTestClient(t, respond(`{"service": [
		{"name": "svc1", "svrstate": "UP"},
		{"name": "svc2", "svrstate": "UP"},
		{"name": "svc3", "svrstate": "UP"}
	]}`))

	res, err := checkState(context.Background(), client, Params{ObjectType: "service"})
	if err != nil {
		t.Fatalf("checkState: %v", err)
	}
	if res.Status != plugin.StatusOK {
		t.Errorf("expected OK, got %v", res.Status)
	}
	if res.Message != "3 of 3 service up" {
		t.Errorf("unexpected message %q", res.Message)
	}

	expected := map[string]string{"up": "3", "down": "0", "oos": "0", "unknown": "0"}
	if len(res.PerfData) != len(expected) {
		t.Fatalf("expected %d perfdata points, got %d", len(expected), len(res.PerfData))
	}
	for _, pd := range res.PerfData {
		if expected[pd.Label] != pd.Value {
			t.Errorf("counter %s: expected %s, got %s", pd.Label, expected[pd.Label], pd.Value)
		}
	}
}

func TestCheckStateDownIsCritical(t *testing.T) {
	client := newTestClient(t, respond(`{"lbvserver": [
		{"name": "vs1", "state": "UP"},
		{"name": "vs2", "state": "DOWN"}
	]}`))

	res, err := checkState(context.Background(), client, Params{ObjectType: "lbvserver"})
	if err != nil {
		t.Fatalf("checkState: %v", err)
	}
	if res.Status != plugin.StatusCritical {
		t.Errorf("expected CRITICAL, got %v", res.Status)
	}
	if !strings.Contains(res.Message, "vs2 is DOWN") {
		t.Errorf("message does not name the failing item: %q", res.Message)
	}
}

func TestCheckStateUnrecognizedState(t *testing.T) {
	client := newTestClient(t, respond(`{"service": [
		{"name": "svc1", "svrstate": "FLAPPING"}
	]}`))

	res, err := checkState(context.Background(), client, Params{ObjectType: "service"})
	if err != nil {
		t.Fatalf("checkState: %v", err)
	}
	// Unrecognized states count as critical, not unknown.
	if res.Status != plugin.StatusCritical {
		t.Errorf("expected CRITICAL, got %v", res.Status)
	}
	for _, pd := range res.PerfData {
		if pd.Label == "unknown" && pd.Value != "1" {
			t.Errorf("expected unknown counter 1, got %s", pd.Value)
		}
	}
}

func TestCheckStateServicegroupFieldNames(t *testing.T) {
	client := newTestClient(t, respond(`{"servicegroup": [
		{"servicegroupname": "sg1", "servicegroupeffectivestate": "UP"}
	]}`))

	res, err := checkState(context.Background(), client, Params{ObjectType: "servicegroup"})
	if err != nil {
		t.Fatalf("checkState: %v", err)
	}
	if res.Status != plugin.StatusOK {
		t.Errorf("expected OK, got %v", res.Status)
	}
}

func TestCheckStateEmptySet(t *testing.T) {
	client := newTestClient(t, respond(`{"server": []}`))

	res, err := checkState(context.Background(), client, Params{ObjectType: "server"})
	if err != nil {
		t.Fatalf("checkState: %v", err)
	}
	if res.Status != plugin.StatusOK {
		t.Errorf("expected OK for empty item set, got %v", res.Status)
	}
}

func TestCheckStateUsageErrors(t *testing.T) {
	client := newTestClient(t, respond(`{}`))

	var usage *UsageError
	if _, err := checkState(context.Background(), client, Params{}); !errors.As(err, &usage) {
		t.Errorf("expected UsageError for missing objecttype, got %v", err)
	}
	if _, err := checkState(context.Background(), client, Params{ObjectType: "nosuchtype"}); !errors.As(err, &usage) {
		t.Errorf("expected UsageError for unsupported objecttype, got %v", err)
	}
}
