package core

import (
	"time"

	"github.com/aretw0/introspection"
)

// ServiceState exposes internal state for observability.
type ServiceState struct {
	KeyColumn   string     `json:"key_column"`
	StoreType   string     `json:"store_type"`
	SourceType  string     `json:"source_type"`
	LastSync    *time.Time `json:"last_sync,omitempty"`
	LastAppends int        `json:"last_appends"`
	LastUpdates int        `json:"last_updates"`
}

// State implements introspection.Introspectable.
func (s *Service) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	storeType := "store"
	if comp, ok := s.store.(introspection.Component); ok {
		storeType = comp.ComponentType()
	}
	sourceType := "source"
	if comp, ok := s.source.(introspection.Component); ok {
		sourceType = comp.ComponentType()
	}

	return ServiceState{
		KeyColumn:   s.config.KeyColumn,
		StoreType:   storeType,
		SourceType:  sourceType,
		LastSync:    s.lastSync,
		LastAppends: s.lastAppends,
		LastUpdates: s.lastUpdates,
	}
}

// ComponentType implements introspection.Component.
func (s *Service) ComponentType() string {
	return "service"
}

var _ introspection.Introspectable = (*Service)(nil)
var _ introspection.Component = (*Service)(nil)
