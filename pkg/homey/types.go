package homey

// Device represents a device registered on the Homey platform.
type Device struct {
	ID           string   `json:"id"`           // Unique device identifier
	Name         string   `json:"name"`         // User-friendly name
	Zone         string   `json:"zone"`         // Zone ID the device belongs to
	Class        string   `json:"class"`        // Device class (light, socket, sensor, ...)
	Available    bool     `json:"available"`    // Whether the device is currently reachable
	Capabilities []string `json:"capabilities"` // Capability IDs exposed by the device
}

// Zone represents a named grouping (room/area) of devices.
type Zone struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Parent string `json:"parent,omitempty"` // Parent zone ID, empty for roots
}

// Flow represents a stored automation (trigger, conditions, actions).
type Flow struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Enabled     bool   `json:"enabled"`
	Triggerable bool   `json:"triggerable"` // Whether the flow can be started manually
	Folder      string `json:"folder,omitempty"`
}

// Device class constants
const (
	ClassLight      = "light"
	ClassSocket     = "socket"
	ClassSensor     = "sensor"
	ClassThermostat = "thermostat"
	ClassLock       = "lock"
)
