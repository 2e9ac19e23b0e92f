package preview

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceWindow collapses the bursts of events editors emit per save.
const debounceWindow = 200 * time.Millisecond

// Watch rebuilds the deck whenever one of the given files changes.
// It watches parent directories rather than the files themselves because
// most editors save via rename, which would detach a file-level watch.
// Watch blocks until ctx is cancelled.
func (s *Server) Watch(ctx context.Context, paths ...string) error {
	if len(paths) == 0 {
		<-ctx.Done()
		return ctx.Err()
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	files := make(map[string]bool, len(paths))
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := w.Add(dir); err != nil {
			return err
		}
		s.logger.Debug("watching directory", "path", dir)
	}

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			abs, err := filepath.Abs(ev.Name)
			if err != nil || !files[abs] {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			s.logger.Debug("file changed", "path", ev.Name, "op", ev.Op.String())
			if timer == nil {
				timer = time.NewTimer(debounceWindow)
				timerC = timer.C
			} else {
				timer.Reset(debounceWindow)
			}

		case <-timerC:
			if err := s.Reload(); err != nil {
				// Keep serving the last good deck while the user edits.
				s.logger.Error("rebuild failed", "error", err)
			}

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			s.logger.Error("watch error", "error", err)
		}
	}
}
