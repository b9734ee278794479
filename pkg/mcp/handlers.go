package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/Verdier/homey-mcp-server/pkg/homey"
)

// callTool dispatches a tool invocation by exact name match. It returns the
// rendered text result, or a classified error.
func (s *Server) callTool(ctx context.Context, name string, args map[string]any) (string, error) {
	if args == nil {
		args = map[string]any{}
	}

	if _, ok := s.toolIndex[name]; !ok {
		return "", NewUnknownToolError(name)
	}

	if err := s.validateInput(name, args); err != nil {
		return "", err
	}

	switch name {
	case "list_devices":
		return s.handleListDevices(ctx, args)
	case "control_device":
		return s.handleControlDevice(ctx, args)
	case "get_device_info":
		return s.handleGetDeviceInfo(ctx, args)
	case "list_zones":
		return s.handleListZones(ctx)
	case "list_flows":
		return s.handleListFlows(ctx, args)
	case "trigger_flow":
		return s.handleTriggerFlow(ctx, args)
	case "get_flow_info":
		return s.handleGetFlowInfo(ctx, args)
	default:
		return "", NewUnknownToolError(name)
	}
}

func (s *Server) handleListDevices(ctx context.Context, args map[string]any) (string, error) {
	filter, err := optionalZoneFilter(args, "zone")
	if err != nil {
		return "", err
	}

	devices, err := s.provider.GetDevices(ctx)
	if err != nil {
		return "", NewProviderError("list devices", err)
	}

	zones, err := s.provider.GetZones(ctx)
	if err != nil {
		// Zone names degrade to "Unknown" unless a zone filter depends
		// on them.
		if filter != "" {
			return "", NewProviderError("resolve zones", err)
		}
		log.Warn().Err(err).Msg("failed to resolve zone names")
		zones = nil
	}

	entries := make([]deviceEntry, 0, len(devices))
	for _, d := range devices {
		zoneName := zones[d.Zone].Name
		if filter != "" && !strings.EqualFold(zoneName, filter) {
			continue
		}
		entries = append(entries, deviceEntry{Device: d, ZoneName: zoneName})
	}

	return formatDevices(entries), nil
}

func (s *Server) handleControlDevice(ctx context.Context, args map[string]any) (string, error) {
	deviceID, err := requiredString(args, "device_id")
	if err != nil {
		return "", err
	}
	capability, err := requiredString(args, "capability")
	if err != nil {
		return "", err
	}
	value, err := coerceCapabilityValue(args["value"])
	if err != nil {
		return "", err
	}

	if err := s.provider.SetCapabilityValue(ctx, deviceID, capability, value); err != nil {
		return "", NewProviderError("set capability value", err)
	}

	return fmt.Sprintf("Successfully set %s to %v on device %s", capability, value, deviceID), nil
}

func (s *Server) handleGetDeviceInfo(ctx context.Context, args map[string]any) (string, error) {
	deviceID, err := requiredString(args, "device_id")
	if err != nil {
		return "", err
	}

	d, err := s.provider.GetDevice(ctx, deviceID)
	if err != nil {
		return "", NewProviderError("get device", err)
	}

	zoneName := ""
	if zones, err := s.provider.GetZones(ctx); err == nil {
		zoneName = zones[d.Zone].Name
	} else {
		log.Warn().Err(err).Str("device", deviceID).Msg("failed to resolve zone name")
	}

	// Each capability is resolved individually: a single read failure
	// degrades to a placeholder instead of failing the whole call.
	values := make(map[string]string, len(d.Capabilities))
	for _, capID := range d.Capabilities {
		v, err := s.provider.GetCapabilityValue(ctx, deviceID, capID)
		if err != nil {
			log.Debug().Err(err).
				Str("device", deviceID).
				Str("capability", capID).
				Msg("capability read failed")
			values[capID] = placeholderError
			continue
		}
		values[capID] = formatValue(v)
	}

	return formatDeviceInfo(d, zoneName, values), nil
}

func (s *Server) handleListZones(ctx context.Context) (string, error) {
	zones, err := s.provider.GetZones(ctx)
	if err != nil {
		return "", NewProviderError("list zones", err)
	}

	list := make([]homey.Zone, 0, len(zones))
	for _, z := range zones {
		list = append(list, z)
	}

	return formatZones(list), nil
}

func (s *Server) handleListFlows(ctx context.Context, args map[string]any) (string, error) {
	enabledOnly, err := optionalBool(args, "enabled_only")
	if err != nil {
		return "", err
	}

	flows, err := s.provider.GetFlows(ctx)
	if err != nil {
		return "", NewProviderError("list flows", err)
	}

	list := make([]homey.Flow, 0, len(flows))
	for _, f := range flows {
		if enabledOnly && !f.Enabled {
			continue
		}
		list = append(list, f)
	}

	return formatFlows(list), nil
}

func (s *Server) handleTriggerFlow(ctx context.Context, args map[string]any) (string, error) {
	flowID, err := requiredString(args, "flow_id")
	if err != nil {
		return "", err
	}

	// The local Web API exposes no flow trigger operation, so the handler
	// resolves the flow and reports that explicitly instead of silently
	// doing nothing.
	f, err := s.provider.GetFlow(ctx, flowID)
	if err != nil {
		return "", NewProviderError("get flow", err)
	}

	var b strings.Builder
	b.WriteString(formatFlowInfo(f))
	b.WriteString("\n\nNote: flow triggering is not supported by the local API in the current environment. The flow was not started.")
	return b.String(), nil
}

func (s *Server) handleGetFlowInfo(ctx context.Context, args map[string]any) (string, error) {
	flowID, err := requiredString(args, "flow_id")
	if err != nil {
		return "", err
	}

	f, err := s.provider.GetFlow(ctx, flowID)
	if err != nil {
		return "", NewProviderError("get flow", err)
	}

	return formatFlowInfo(f), nil
}
