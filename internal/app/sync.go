package app

import (
	"context"
	"errors"
	"fmt"

	"villa_site/internal/adapters/observability"
	"villa_site/internal/domain"
)

// SyncService mirrors CMS documents into the local store.
type SyncService struct {
	cms   domain.DocumentSource
	store domain.ContentStore
	cache domain.Cache
}

func NewSyncService(cms domain.DocumentSource, store domain.ContentStore, cache domain.Cache) *SyncService {
	return &SyncService{cms: cms, store: store, cache: cache}
}

// SyncKind replaces the mirrored set of kind with what the CMS has now.
// Auth failures are recorded and leave the previous snapshot in place;
// anything else is returned.
func (s *SyncService) SyncKind(ctx context.Context, kind string) (int, error) {
	docs, err := s.cms.Documents(ctx, kind)
	if err != nil {
		_ = s.store.LogSync(ctx, kind, 0, err)
		observability.ObserveSync(kind, 0, err)
		if errors.Is(err, domain.ErrUnauthorized) || errors.Is(err, domain.ErrForbidden) {
			return 0, nil
		}
		return 0, err
	}

	// Singleton kinds must never grow past one row.
	if (kind == domain.KindSettings || kind == domain.KindHomepage) && len(docs) > 1 {
		docs = docs[:1]
	}

	if err := s.store.ReplaceDocuments(ctx, kind, docs); err != nil {
		_ = s.store.LogSync(ctx, kind, 0, err)
		observability.ObserveSync(kind, 0, err)
		return 0, fmt.Errorf("replace %s failed: %w", kind, err)
	}
	_ = s.store.LogSync(ctx, kind, len(docs), nil)
	observability.ObserveSync(kind, len(docs), nil)

	if s.cache != nil {
		_ = s.cache.Del(ctx, cacheKey(kind))
	}
	return len(docs), nil
}
