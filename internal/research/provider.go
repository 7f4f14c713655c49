// Package research provides tool usage lookup for outcome recording.
//
// Upstream linkage between listings and the research runs that priced them
// is best effort, so the lookup is modeled as an injected capability rather
// than hard-wired store access.
package research

import (
	"context"

	"github.com/sells-group/learning-loop/internal/store"
	domain "github.com/sells-group/learning-loop/pkg/types"
)

// ToolUsageProvider resolves the research tools that contributed to a
// listing's prediction. An empty result is valid: a listing with no linked
// research run still produces an outcome, it just feeds no tool buckets.
type ToolUsageProvider interface {
	ToolsFor(ctx context.Context, listingID string) ([]domain.ToolUsage, error)
}

// StoreProvider reads tool usage from the replicated research read model.
type StoreProvider struct {
	store store.Store
}

// NewStoreProvider creates a provider backed by the given store.
func NewStoreProvider(s store.Store) *StoreProvider {
	return &StoreProvider{store: s}
}

// ToolsFor returns the recorded tool usage for a listing.
func (p *StoreProvider) ToolsFor(ctx context.Context, listingID string) ([]domain.ToolUsage, error) {
	return p.store.ListToolUsage(ctx, listingID)
}

// StaticProvider returns a fixed usage set regardless of listing. Useful in
// tests and local development.
type StaticProvider struct {
	Usages []domain.ToolUsage
}

// ToolsFor returns the configured usage set.
func (p *StaticProvider) ToolsFor(context.Context, string) ([]domain.ToolUsage, error) {
	return p.Usages, nil
}

// EmptyProvider reports no tool usage for any listing.
type EmptyProvider struct{}

// ToolsFor returns an empty usage set.
func (EmptyProvider) ToolsFor(context.Context, string) ([]domain.ToolUsage, error) {
	return nil, nil
}

var (
	_ ToolUsageProvider = (*StoreProvider)(nil)
	_ ToolUsageProvider = (*StaticProvider)(nil)
	_ ToolUsageProvider = EmptyProvider{}
)
