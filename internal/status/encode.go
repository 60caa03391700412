// internal/status/encode.go
package status

import "encoding/json"

// Encode converts a Snapshot into indented JSON for the status surface.
// No IO. No side effects.
func Encode(s Snapshot) ([]byte, error) {
	return json.MarshalIndent(s, "", "    ")
}
