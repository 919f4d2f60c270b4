package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"content-repository/internal/page"
	"content-repository/internal/page/repository"
	"content-repository/internal/page/usecase"
	"content-repository/pkg/clock"
)

var fixedNow = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

func newUseCase(repo *mockRepo) page.UseCase {
	return usecase.New(repo, &mockLogger{}, clock.NewFixed(fixedNow))
}

func TestSearchByTag(t *testing.T) {
	t.Run("Empty tag rejected", func(t *testing.T) {
		uc := newUseCase(&mockRepo{})
		_, err := uc.SearchByTag(context.Background(), page.SearchByTagInput{RootID: "r", Tag: ""})
		if !errors.Is(err, page.ErrEmptyTag) {
			t.Errorf("expected ErrEmptyTag, got %v", err)
		}
	})

	t.Run("Unknown root maps to not found", func(t *testing.T) {
		repo := &mockRepo{
			searchFunc: func(opt repository.SearchByTagOptions) ([]page.Info, error) {
				return nil, repository.ErrPageNotExists
			},
		}
		uc := newUseCase(repo)
		_, err := uc.SearchByTag(context.Background(), page.SearchByTagInput{RootID: "missing", Tag: "x"})
		if !errors.Is(err, page.ErrPageNotFound) {
			t.Errorf("expected ErrPageNotFound, got %v", err)
		}
	})

	t.Run("Successful search", func(t *testing.T) {
		repo := &mockRepo{
			searchFunc: func(opt repository.SearchByTagOptions) ([]page.Info, error) {
				if opt.Tag != "laptops" {
					t.Errorf("tag passed through wrong: %q", opt.Tag)
				}
				return []page.Info{{ID: "1", Title: "Laptops"}, {ID: "2", Title: "Gaming"}}, nil
			},
		}
		uc := newUseCase(repo)
		out, err := uc.SearchByTag(context.Background(), page.SearchByTagInput{RootID: "r", Tag: "laptops"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Count != 2 || out.Pages[0].Title != "Laptops" {
			t.Errorf("unexpected output: %+v", out)
		}
	})
}

func TestRecentlyModified(t *testing.T) {
	t.Run("Negative days rejected", func(t *testing.T) {
		uc := newUseCase(&mockRepo{})
		_, err := uc.RecentlyModified(context.Background(), page.RecentlyModifiedInput{RootID: "r", Days: -1})
		if !errors.Is(err, page.ErrInvalidDays) {
			t.Errorf("expected ErrInvalidDays, got %v", err)
		}
	})

	t.Run("Clock is injected into the query", func(t *testing.T) {
		var gotNow time.Time
		repo := &mockRepo{
			recentFunc: func(opt repository.RecentlyModifiedOptions) ([]page.Info, error) {
				gotNow = opt.Now
				return []page.Info{}, nil
			},
		}
		uc := newUseCase(repo)
		out, err := uc.RecentlyModified(context.Background(), page.RecentlyModifiedInput{RootID: "r", Days: 3})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !gotNow.Equal(fixedNow) {
			t.Errorf("repository saw now = %v, want fixed %v", gotNow, fixedNow)
		}
		wantCutoff := time.Date(2024, 5, 7, 0, 0, 0, 0, time.UTC)
		if !out.Cutoff.Equal(wantCutoff) {
			t.Errorf("cutoff = %v, want %v", out.Cutoff, wantCutoff)
		}
	})

	t.Run("Zero days allowed", func(t *testing.T) {
		repo := &mockRepo{
			recentFunc: func(opt repository.RecentlyModifiedOptions) ([]page.Info, error) {
				if opt.Days != 0 {
					t.Errorf("days = %d, want 0", opt.Days)
				}
				return []page.Info{{ID: "1", Title: "Home"}}, nil
			},
		}
		uc := newUseCase(repo)
		out, err := uc.RecentlyModified(context.Background(), page.RecentlyModifiedInput{RootID: "r", Days: 0})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Count != 1 {
			t.Errorf("count = %d, want 1", out.Count)
		}
	})

	t.Run("Unknown root maps to not found", func(t *testing.T) {
		repo := &mockRepo{
			recentFunc: func(opt repository.RecentlyModifiedOptions) ([]page.Info, error) {
				return nil, repository.ErrPageNotExists
			},
		}
		uc := newUseCase(repo)
		_, err := uc.RecentlyModified(context.Background(), page.RecentlyModifiedInput{RootID: "missing", Days: 1})
		if !errors.Is(err, page.ErrPageNotFound) {
			t.Errorf("expected ErrPageNotFound, got %v", err)
		}
	})
}

func TestBreadcrumb(t *testing.T) {
	t.Run("Unknown page maps to not found", func(t *testing.T) {
		repo := &mockRepo{
			breadcrumbFunc: func(id string) (string, error) {
				return "", repository.ErrPageNotExists
			},
		}
		uc := newUseCase(repo)
		_, err := uc.Breadcrumb(context.Background(), "missing")
		if !errors.Is(err, page.ErrPageNotFound) {
			t.Errorf("expected ErrPageNotFound, got %v", err)
		}
	})

	t.Run("Breadcrumb passes through", func(t *testing.T) {
		repo := &mockRepo{
			breadcrumbFunc: func(id string) (string, error) {
				return "Home > Products > Laptops", nil
			},
		}
		uc := newUseCase(repo)
		out, err := uc.Breadcrumb(context.Background(), "laptops-id")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Breadcrumb != "Home > Products > Laptops" {
			t.Errorf("got %q", out.Breadcrumb)
		}
	})
}
