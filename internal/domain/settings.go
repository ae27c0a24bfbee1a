package domain

// RouteSettings is pass-through configuration for the route features:
// the selected transport mode and the display toggles. The only default
// applied anywhere is the initial walking mode.
type RouteSettings struct {
	TransportMode TransportMode
	ShowDistances bool
	ShowOptimizer bool
}

// DefaultRouteSettings returns the settings used before the user changes
// anything: walking, with both route features visible.
func DefaultRouteSettings() RouteSettings {
	return RouteSettings{
		TransportMode: ModeWalking,
		ShowDistances: true,
		ShowOptimizer: true,
	}
}
