package homey

import "context"

// NullProvider is a no-op provider used when no Homey connection is
// configured. It allows the server to run in limited mode: listings are
// empty and every lookup or mutation reports the missing connection.
type NullProvider struct{}

// NewNullProvider creates a new NullProvider.
func NewNullProvider() *NullProvider {
	return &NullProvider{}
}

func (p *NullProvider) GetDevices(ctx context.Context) (map[string]Device, error) {
	return map[string]Device{}, nil
}

func (p *NullProvider) GetDevice(ctx context.Context, id string) (*Device, error) {
	return nil, ErrNotConnected
}

func (p *NullProvider) SetCapabilityValue(ctx context.Context, deviceID, capabilityID string, value any) error {
	return ErrNotConnected
}

func (p *NullProvider) GetCapabilityValue(ctx context.Context, deviceID, capabilityID string) (any, error) {
	return nil, ErrNotConnected
}

func (p *NullProvider) GetZones(ctx context.Context) (map[string]Zone, error) {
	return map[string]Zone{}, nil
}

func (p *NullProvider) GetFlows(ctx context.Context) (map[string]Flow, error) {
	return map[string]Flow{}, nil
}

func (p *NullProvider) GetFlow(ctx context.Context, id string) (*Flow, error) {
	return nil, ErrNotConnected
}

func (p *NullProvider) IsConnected() bool {
	return false
}
