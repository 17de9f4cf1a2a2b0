package tools

import (
	"fmt"
)

// RegisterBuiltins registers the four built-in tools in a fixed order:
// news, places, units, time. Registration order is what both projectors
// iterate in.
func RegisterBuiltins(reg *Registry, news *NewsClient, places *PlacesClient) error {
	entries := []struct {
		spec    Spec
		handler Handler
	}{
		{newsSpec, news.Handle},
		{placesSpec, places.Handle},
		{unitsSpec, ConvertUnits},
		{timeSpec, CurrentTime},
	}
	for _, e := range entries {
		if err := reg.Register(e.spec, e.handler); err != nil {
			return fmt.Errorf("registering %s: %w", e.spec.Name, err)
		}
	}
	return nil
}
