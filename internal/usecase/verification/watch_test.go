package verification

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/acsdeveloper2025/CRM-APP-MONOREPO-sub004/internal/domain/forms"
)

func TestWatchSubmissionValidatesOnStartAndChange(t *testing.T) {
	svc := NewService(forms.Default(), nil, nil)

	dir := t.TempDir()
	path := filepath.Join(dir, "draft.json")
	if err := os.WriteFile(path, []byte(`{"connectorName":"Ravi Kumar"}`), 0o644); err != nil {
		t.Fatalf("write draft: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	results := make(chan WatchResult, 4)
	done := make(chan error, 1)
	go func() {
		done <- svc.WatchSubmission(ctx, path, "DSA_CONNECTOR", "POSITIVE", func(r WatchResult) {
			results <- r
		})
	}()

	var first WatchResult
	select {
	case first = <-results:
	case <-time.After(5 * time.Second):
		t.Fatalf("no initial validation result")
	}
	if first.Validation.Valid {
		t.Fatalf("draft with one field should be invalid, got %+v", first.Validation)
	}

	complete := `{"connectorName":"Ravi Kumar","connectorType":"Individual","connectorExperience":7,"finalStatus":"POSITIVE","addressLocatable":"Easy to Locate","addressRating":"Good"}`
	if err := os.WriteFile(path, []byte(complete), 0o644); err != nil {
		t.Fatalf("update draft: %v", err)
	}

	deadline := time.After(10 * time.Second)
	for {
		select {
		case r := <-results:
			if r.Validation.Valid {
				cancel()
				if err := <-done; !errors.Is(err, context.Canceled) {
					t.Fatalf("watch returned %v", err)
				}
				return
			}
		case <-deadline:
			t.Fatalf("never saw a valid re-validation after the save")
		}
	}
}

func TestWatchSubmissionMissingDirectory(t *testing.T) {
	svc := NewService(forms.Default(), nil, nil)

	err := svc.WatchSubmission(context.Background(), "/nonexistent/dir/draft.json", "RESIDENCE", "POSITIVE", nil)
	if err == nil {
		t.Fatalf("expected error for missing directory")
	}
}
