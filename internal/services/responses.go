package services

import (
	"time"

	"culler/internal/domain"
)

type ScanResult struct {
	Root     string
	Files    []domain.File
	Warnings []string
	Duration time.Duration
}

type RelocateResult struct {
	DestPath string
	Renamed  bool
}
