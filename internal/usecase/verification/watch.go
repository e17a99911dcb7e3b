package verification

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/acsdeveloper2025/CRM-APP-MONOREPO-sub004/internal/bootstrap/logging"
	"github.com/acsdeveloper2025/CRM-APP-MONOREPO-sub004/internal/domain/forms"
	"github.com/acsdeveloper2025/CRM-APP-MONOREPO-sub004/internal/errs"
)

// WatchResult is delivered to the watch callback on every re-validation.
type WatchResult struct {
	Path       string
	Validation forms.ValidationResult
}

// WatchSubmission re-validates a submission JSON file every time it changes
// on disk. Agents iterate on a draft payload in an editor and see the
// missing-field list shrink without re-running the command. Blocks until the
// context is cancelled; editor save races are absorbed with a short
// debounce.
func (s *Service) WatchSubmission(ctx context.Context, path, verificationType, formType string, onResult func(WatchResult)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errs.Wrap(err, "create watcher")
	}
	defer watcher.Close()

	// Watch the directory, not the file: editors replace files via rename
	// and a file-level watch dies on the first save.
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return errs.Wrapf(err, "watch %s", dir)
	}

	target, err := filepath.Abs(path)
	if err != nil {
		return errs.Wrap(err, "resolve watch path")
	}

	// Validate once up front so the first result does not wait for a save.
	s.revalidateFile(ctx, target, verificationType, formType, onResult)

	const debounce = 200 * time.Millisecond
	var timer *time.Timer
	fire := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil || abs != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer == nil {
				timer = time.AfterFunc(debounce, func() {
					select {
					case fire <- struct{}{}:
					default:
					}
				})
			} else {
				timer.Reset(debounce)
			}

		case <-fire:
			timer = nil
			s.revalidateFile(ctx, target, verificationType, formType, onResult)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logging.Error(ctx, "watcher error", slog.Any("err", errs.Loggable(err)))
		}
	}
}

func (s *Service) revalidateFile(ctx context.Context, path, verificationType, formType string, onResult func(WatchResult)) {
	submission, err := readSubmissionFile(path)
	if err != nil {
		logging.Warn(ctx, "submission file unreadable, waiting for next save",
			slog.String("path", path),
			slog.Any("err", errs.Loggable(err)))
		return
	}

	result := s.engine.Validate(verificationType, formType, submission)
	if onResult != nil {
		onResult(WatchResult{Path: path, Validation: result})
	}
}

func readSubmissionFile(path string) (map[string]any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var submission map[string]any
	if err := json.Unmarshal(raw, &submission); err != nil {
		return nil, errs.Wrap(err, "parse submission json")
	}
	return submission, nil
}
