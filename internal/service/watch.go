package service

import (
	"context"
	"time"

	"github.com/RZCN86/jean-prouve-website-sub001/internal/watcher"
	"go.uber.org/zap"
)

// Watch starts reloading the corpus whenever its file changes, until ctx is
// done. It returns nil when watching is disabled or the embedded content is
// served.
func (s *Service) Watch(ctx context.Context) (*watcher.Watcher, error) {
	if !s.cfg.Corpus.Watch || s.cfg.Corpus.Path == "" {
		return nil, nil
	}
	w := watcher.NewWatcher(s.cfg.Corpus.Path,
		func(path string) {
			if err := s.Reload(); err == nil {
				s.logger.Info("corpus reloaded", zap.String("path", path))
			}
		},
		watcher.WithLogger(s.logger),
		watcher.WithDebounce(time.Duration(s.cfg.Corpus.DebounceMillis)*time.Millisecond),
	)
	if err := w.Start(ctx); err != nil {
		return nil, err
	}
	return w, nil
}
