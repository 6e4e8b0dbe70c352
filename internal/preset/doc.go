// Package preset provides the built-in driver and browser definitions that
// fill in whatever the user configuration leaves empty.
//
// Presets are embedded YAML documents. Their version maps use the mapping
// form, which yaml.v3 decodes in declaration order.
package preset
