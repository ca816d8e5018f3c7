package loader

import (
	"context"

	"gowrangle/domain/core"
	"gowrangle/domain/dataset"
	"gowrangle/domain/frame"
	"gowrangle/internal"
	"gowrangle/internal/errors"
	"gowrangle/ports"
)

// Loader resolves a dataset id to a frame, preferring the local cache and
// fetching from the remote source on a miss
type Loader struct {
	cache  ports.FrameCache
	source ports.RemoteSource
	logger *internal.Logger
}

// New creates a loader. source may be nil when only cached datasets are
// needed; a cache miss then fails with ErrSourceUnavailable.
func New(cache ports.FrameCache, source ports.RemoteSource, logger *internal.Logger) *Loader {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &Loader{cache: cache, source: source, logger: logger}
}

// Datasets lists the identifiers the loader can resolve
func (l *Loader) Datasets() []core.DatasetID {
	return dataset.IDs()
}

// Load returns the cached copy of a dataset, or fetches and caches it
func (l *Loader) Load(ctx context.Context, id core.DatasetID) (*frame.Frame, error) {
	desc, err := dataset.Lookup(id)
	if err != nil {
		return nil, err
	}

	ok, err := l.cache.Exists(desc.Filename)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check cache for %s", id)
	}
	if ok {
		l.logger.Info("[loader] %s: reading cached %s", id, desc.Filename)
		f, err := l.cache.Read(desc.Filename)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to load %s", id)
		}
		return f, nil
	}

	l.logger.Info("[loader] %s: no cached %s, fetching from %s", id, desc.Filename, desc.Source)
	return l.fetch(ctx, desc)
}

// Refresh always fetches from the remote source and overwrites the cache
func (l *Loader) Refresh(ctx context.Context, id core.DatasetID) (*frame.Frame, error) {
	desc, err := dataset.Lookup(id)
	if err != nil {
		return nil, err
	}
	l.logger.Info("[loader] %s: refreshing from %s", id, desc.Source)
	return l.fetch(ctx, desc)
}

func (l *Loader) fetch(ctx context.Context, desc dataset.Descriptor) (*frame.Frame, error) {
	if l.source == nil {
		return nil, errors.SourceError("no remote source configured", core.ErrSourceUnavailable)
	}

	f, err := l.source.Fetch(ctx, desc.Source, desc.Query)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch %s", desc.ID)
	}

	if err := l.cache.Write(desc.Filename, f); err != nil {
		return nil, errors.Wrapf(err, "failed to cache %s", desc.ID)
	}
	l.logger.Info("[loader] %s: cached %d rows to %s", desc.ID, f.Len(), desc.Filename)

	return f, nil
}
