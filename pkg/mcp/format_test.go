package mcp

import (
	"strings"
	"testing"

	"github.com/Verdier/homey-mcp-server/pkg/homey"
)

func TestFormatDevices_Empty(t *testing.T) {
	if got := formatDevices(nil); got != "No devices found." {
		t.Errorf("expected empty message, got %q", got)
	}
}

func TestFormatDevices_Placeholders(t *testing.T) {
	entries := []deviceEntry{
		{Device: homey.Device{ID: "dev-1", Name: "Lamp", Available: true}},
	}
	got := formatDevices(entries)

	if !strings.HasPrefix(got, "Found 1 device:") {
		t.Errorf("expected singular count line, got %q", got)
	}
	if !strings.Contains(got, "Zone: "+placeholderUnknown) {
		t.Errorf("expected zone placeholder:\n%s", got)
	}
	if !strings.Contains(got, "Class: "+placeholderNA) {
		t.Errorf("expected class placeholder:\n%s", got)
	}
	if !strings.Contains(got, "Available: Yes") {
		t.Errorf("expected availability line:\n%s", got)
	}
}

func TestFormatZones_SortsCaseInsensitively(t *testing.T) {
	zones := []homey.Zone{
		{ID: "z1", Name: "Kitchen"},
		{ID: "z2", Name: "attic"},
		{ID: "z3", Name: "Bedroom"},
	}
	got := formatZones(zones)

	attic := strings.Index(got, "attic")
	bedroom := strings.Index(got, "Bedroom")
	kitchen := strings.Index(got, "Kitchen")
	if !(attic < bedroom && bedroom < kitchen) {
		t.Errorf("expected attic, Bedroom, Kitchen order:\n%s", got)
	}

	// The input slice must not be reordered.
	if zones[0].Name != "Kitchen" {
		t.Error("formatZones must not mutate its input")
	}
}

func TestFormatZones_Empty(t *testing.T) {
	if got := formatZones(nil); got != "No zones found." {
		t.Errorf("expected empty message, got %q", got)
	}
}

func TestFormatZones_ParentOnlyWhenSet(t *testing.T) {
	got := formatZones([]homey.Zone{{ID: "z1", Name: "Attic", Parent: "z0"}})
	if !strings.Contains(got, "Parent: z0") {
		t.Errorf("expected parent line:\n%s", got)
	}

	got = formatZones([]homey.Zone{{ID: "z1", Name: "Attic"}})
	if strings.Contains(got, "Parent:") {
		t.Errorf("expected no parent line:\n%s", got)
	}
}

func TestFormatFlows_Empty(t *testing.T) {
	if got := formatFlows(nil); got != "No flows found." {
		t.Errorf("expected empty message, got %q", got)
	}
}

func TestFormatDeviceInfo_NoCapabilities(t *testing.T) {
	d := &homey.Device{ID: "dev-2", Name: "Thermostat", Class: homey.ClassThermostat}
	got := formatDeviceInfo(d, "Bedroom", nil)

	if !strings.Contains(got, "Capabilities: none") {
		t.Errorf("expected capability-free rendering:\n%s", got)
	}
}

func TestFormatDeviceInfo_CapabilityLines(t *testing.T) {
	d := &homey.Device{
		ID:           "dev-1",
		Name:         "Lamp",
		Capabilities: []string{"onoff", "dim"},
	}
	values := map[string]string{
		"onoff": "true",
		"dim":   placeholderError,
	}
	got := formatDeviceInfo(d, "", values)

	if !strings.Contains(got, "- onoff: true") {
		t.Errorf("expected onoff line:\n%s", got)
	}
	if !strings.Contains(got, "- dim: "+placeholderError) {
		t.Errorf("expected error placeholder line:\n%s", got)
	}
	if !strings.Contains(got, "Zone: "+placeholderUnknown) {
		t.Errorf("expected zone placeholder:\n%s", got)
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{nil, placeholderNA},
		{true, "true"},
		{false, "false"},
		{float64(21.5), "21.5"},
		{float64(42), "42"},
		{"heat", "heat"},
	}
	for _, tt := range tests {
		if got := formatValue(tt.in); got != tt.want {
			t.Errorf("formatValue(%#v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
