// Package skeleton contains the embedded starter dashboard.
package skeleton

import _ "embed"

// Overview is a minimal overview dashboard with a "Database" section that the
// database panel block anchors on.
//
//go:embed overview.json
var Overview []byte
