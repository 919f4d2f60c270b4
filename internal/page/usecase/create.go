package usecase

import (
	"context"
	"errors"

	"content-repository/internal/page"
	"content-repository/internal/page/repository"
)

// Create registers a new page, optionally attaching it under a parent.
// A zero LastModified defaults to the injected clock's current time.
func (uc *implUseCase) Create(ctx context.Context, input page.CreatePageInput) (page.CreatePageOutput, error) {
	lastModified := input.LastModified
	if lastModified.IsZero() {
		lastModified = uc.clk.Now()
	}

	info, err := uc.repo.CreatePage(ctx, repository.CreatePageOptions{
		Title:        input.Title,
		Path:         input.Path,
		Tags:         input.Tags,
		LastModified: lastModified,
		ParentID:     input.ParentID,
	})
	if err != nil {
		if errors.Is(err, repository.ErrParentNotExists) {
			return page.CreatePageOutput{}, page.ErrParentNotFound
		}
		uc.l.Errorf(ctx, "uc.Create CreatePage: %v", err)
		return page.CreatePageOutput{}, err
	}

	return page.CreatePageOutput{Page: info}, nil
}
