package homey

import "context"

// Provider defines the platform API surface the tool layer consumes.
// This abstraction allows the tools to work against the real Homey Web API,
// a NullProvider when no Homey is configured, or a stub in tests.
type Provider interface {
	// GetDevices returns all devices keyed by device ID
	GetDevices(ctx context.Context) (map[string]Device, error)

	// GetDevice returns a single device by ID
	GetDevice(ctx context.Context, id string) (*Device, error)

	// SetCapabilityValue writes a capability value on a device
	SetCapabilityValue(ctx context.Context, deviceID, capabilityID string, value any) error

	// GetCapabilityValue reads the current value of a device capability
	GetCapabilityValue(ctx context.Context, deviceID, capabilityID string) (any, error)

	// GetZones returns all zones keyed by zone ID
	GetZones(ctx context.Context) (map[string]Zone, error)

	// GetFlows returns all flows keyed by flow ID
	GetFlows(ctx context.Context) (map[string]Flow, error)

	// GetFlow returns a single flow by ID
	GetFlow(ctx context.Context, id string) (*Flow, error)

	// IsConnected returns true if the provider has a usable connection
	IsConnected() bool
}
