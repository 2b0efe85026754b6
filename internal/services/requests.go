package services

import "culler/internal/domain"

type ScanRequest struct {
	Root      string
	Recursive bool
}

type RelocateRequest struct {
	File     domain.File
	DestRoot string
}
