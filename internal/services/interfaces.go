package services

import "context"

type Scanner interface {
	Scan(ctx context.Context, req ScanRequest) (ScanResult, error)
}

type Relocator interface {
	Relocate(req RelocateRequest) (RelocateResult, error)
}
