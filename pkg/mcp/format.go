package mcp

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/Verdier/homey-mcp-server/pkg/homey"
)

// Placeholders for data the platform did not supply or failed to read.
const (
	placeholderNA      = "N/A"
	placeholderUnknown = "Unknown"
	placeholderError   = "Error reading value"
)

// deviceEntry pairs a device with its resolved zone name for rendering.
type deviceEntry struct {
	Device   homey.Device
	ZoneName string
}

// formatDevices renders a device collection in provider iteration order.
func formatDevices(entries []deviceEntry) string {
	if len(entries) == 0 {
		return "No devices found."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d device%s:\n", len(entries), plural(len(entries)))
	for i, e := range entries {
		fmt.Fprintf(&b, "\n%d. %s\n", i+1, orPlaceholder(e.Device.Name, placeholderUnknown))
		fmt.Fprintf(&b, "   ID: %s\n", orPlaceholder(e.Device.ID, placeholderNA))
		fmt.Fprintf(&b, "   Zone: %s\n", orPlaceholder(e.ZoneName, placeholderUnknown))
		fmt.Fprintf(&b, "   Class: %s\n", orPlaceholder(e.Device.Class, placeholderNA))
		fmt.Fprintf(&b, "   Available: %s\n", yesNo(e.Device.Available))
	}
	return strings.TrimRight(b.String(), "\n")
}

// formatZones renders a zone collection sorted ascending by display name,
// case-insensitively.
func formatZones(zones []homey.Zone) string {
	if len(zones) == 0 {
		return "No zones found."
	}

	sorted := make([]homey.Zone, len(zones))
	copy(sorted, zones)
	sort.SliceStable(sorted, func(i, j int) bool {
		return strings.ToLower(sorted[i].Name) < strings.ToLower(sorted[j].Name)
	})

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d zone%s:\n", len(sorted), plural(len(sorted)))
	for i, z := range sorted {
		fmt.Fprintf(&b, "\n%d. %s\n", i+1, orPlaceholder(z.Name, placeholderUnknown))
		fmt.Fprintf(&b, "   ID: %s\n", orPlaceholder(z.ID, placeholderNA))
		if z.Parent != "" {
			fmt.Fprintf(&b, "   Parent: %s\n", z.Parent)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// formatFlows renders a flow collection in provider iteration order.
func formatFlows(flows []homey.Flow) string {
	if len(flows) == 0 {
		return "No flows found."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d flow%s:\n", len(flows), plural(len(flows)))
	for i, f := range flows {
		fmt.Fprintf(&b, "\n%d. %s\n", i+1, orPlaceholder(f.Name, placeholderUnknown))
		fmt.Fprintf(&b, "   ID: %s\n", orPlaceholder(f.ID, placeholderNA))
		fmt.Fprintf(&b, "   Enabled: %s\n", yesNo(f.Enabled))
		fmt.Fprintf(&b, "   Triggerable: %s\n", yesNo(f.Triggerable))
	}
	return strings.TrimRight(b.String(), "\n")
}

// formatDeviceInfo renders a single device with one line per declared
// capability. values holds the pre-rendered value (or error placeholder)
// keyed by capability ID.
func formatDeviceInfo(d *homey.Device, zoneName string, values map[string]string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Device: %s\n", orPlaceholder(d.Name, placeholderUnknown))
	fmt.Fprintf(&b, "ID: %s\n", orPlaceholder(d.ID, placeholderNA))
	fmt.Fprintf(&b, "Zone: %s\n", orPlaceholder(zoneName, placeholderUnknown))
	fmt.Fprintf(&b, "Class: %s\n", orPlaceholder(d.Class, placeholderNA))
	fmt.Fprintf(&b, "Available: %s\n", yesNo(d.Available))

	if len(d.Capabilities) == 0 {
		b.WriteString("Capabilities: none")
		return b.String()
	}

	b.WriteString("Capabilities:\n")
	for _, capID := range d.Capabilities {
		value, ok := values[capID]
		if !ok {
			value = placeholderNA
		}
		fmt.Fprintf(&b, "  - %s: %s\n", capID, value)
	}
	return strings.TrimRight(b.String(), "\n")
}

// formatFlowInfo renders a single flow's descriptive metadata.
func formatFlowInfo(f *homey.Flow) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Flow: %s\n", orPlaceholder(f.Name, placeholderUnknown))
	fmt.Fprintf(&b, "ID: %s\n", orPlaceholder(f.ID, placeholderNA))
	fmt.Fprintf(&b, "Enabled: %s\n", yesNo(f.Enabled))
	fmt.Fprintf(&b, "Triggerable: %s", yesNo(f.Triggerable))
	return b.String()
}

// formatValue renders a capability value read from the platform.
func formatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return placeholderNA
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case string:
		return x
	default:
		return fmt.Sprintf("%v", x)
	}
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func orPlaceholder(s, placeholder string) string {
	if s == "" {
		return placeholder
	}
	return s
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
