package ui

import "culler/internal/services"

// scanResultMsg carries a finished scan back into the update loop together
// with the generation token that ties it to the scan that produced it.
type scanResultMsg struct {
	generation int
	result     services.ScanResult
	err        error
}
