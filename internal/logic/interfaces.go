package logic

import "yubin/internal/domain"

// LoadState is the lifecycle of a record store
type LoadState int

const (
	StateUnloaded LoadState = iota
	StateLoading
	StateLoaded
	StateLoadFailed
)

func (s LoadState) String() string {
	switch s {
	case StateUnloaded:
		return "unloaded"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateLoadFailed:
		return "load-failed"
	default:
		return "unknown"
	}
}

// RecordStore provides read access to the dataset once it is loaded
type RecordStore interface {
	State() LoadState
	// Records returns the dataset in source order, or ErrDataNotReady
	Records() ([]domain.Record, error)
	Len() int
	LoadError() error

	BeginLoad() error
	CompleteLoad(records []domain.Record) error
	FailLoad(err error) error
}
