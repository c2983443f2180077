package search

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"chatpaat/internal/domain"
	"chatpaat/internal/domain/models"
)

type fakeSearchRepo struct {
	records []models.SearchRecord
}

func (r *fakeSearchRepo) Append(ctx context.Context, record *models.SearchRecord) error {
	record.ID = int64(len(r.records) + 1)
	record.CreatedAt = time.Now()
	r.records = append(r.records, *record)
	return nil
}

func TestRecordQuery(t *testing.T) {
	repo := &fakeSearchRepo{}
	svc := NewService(repo, slog.New(slog.NewTextHandler(os.Stdout, nil)))

	record, err := svc.RecordQuery(context.Background(), "user-a", "golang context windows")
	if err != nil {
		t.Fatalf("RecordQuery failed: %v", err)
	}
	if record.ID == 0 {
		t.Error("expected an assigned id")
	}
	if record.Query != "golang context windows" {
		t.Errorf("query not stored verbatim: %q", record.Query)
	}
	if len(repo.records) != 1 {
		t.Fatalf("expected 1 stored record, got %d", len(repo.records))
	}
}

func TestRecordQuery_RejectsBlankQuery(t *testing.T) {
	repo := &fakeSearchRepo{}
	svc := NewService(repo, slog.New(slog.NewTextHandler(os.Stdout, nil)))

	for _, q := range []string{"", "   ", "\t\n"} {
		if _, err := svc.RecordQuery(context.Background(), "user-a", q); !errors.Is(err, domain.ErrValidation) {
			t.Errorf("query %q: expected ErrValidation, got %v", q, err)
		}
	}
	if len(repo.records) != 0 {
		t.Errorf("blank queries must not be stored, found %d", len(repo.records))
	}
}
