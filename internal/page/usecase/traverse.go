package usecase

import (
	"context"
	"errors"

	"content-repository/internal/page"
	"content-repository/internal/page/repository"
	"content-repository/pkg/datemath"
)

// Breadcrumb returns the root-to-page title chain for a page.
func (uc *implUseCase) Breadcrumb(ctx context.Context, id string) (page.BreadcrumbOutput, error) {
	crumb, err := uc.repo.Breadcrumb(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPageNotExists) {
			return page.BreadcrumbOutput{}, page.ErrPageNotFound
		}
		uc.l.Errorf(ctx, "uc.Breadcrumb: %v", err)
		return page.BreadcrumbOutput{}, err
	}

	return page.BreadcrumbOutput{Breadcrumb: crumb}, nil
}

// SearchByTag runs an exact-match tag search over the subtree rooted at
// input.RootID, in pre-order.
func (uc *implUseCase) SearchByTag(ctx context.Context, input page.SearchByTagInput) (page.SearchByTagOutput, error) {
	if input.Tag == "" {
		return page.SearchByTagOutput{}, page.ErrEmptyTag
	}

	infos, err := uc.repo.SearchByTag(ctx, repository.SearchByTagOptions{
		RootID: input.RootID,
		Tag:    input.Tag,
	})
	if err != nil {
		if errors.Is(err, repository.ErrPageNotExists) {
			return page.SearchByTagOutput{}, page.ErrPageNotFound
		}
		uc.l.Errorf(ctx, "uc.SearchByTag: %v", err)
		return page.SearchByTagOutput{}, err
	}

	return page.SearchByTagOutput{
		Pages: infos,
		Count: len(infos),
	}, nil
}

// RecentlyModified returns the pages in the subtree modified strictly after
// midnight at the start of (today - days), with "today" taken from the
// injected clock.
func (uc *implUseCase) RecentlyModified(ctx context.Context, input page.RecentlyModifiedInput) (page.RecentlyModifiedOutput, error) {
	if input.Days < 0 {
		return page.RecentlyModifiedOutput{}, page.ErrInvalidDays
	}

	now := uc.clk.Now()
	infos, err := uc.repo.RecentlyModified(ctx, repository.RecentlyModifiedOptions{
		RootID: input.RootID,
		Days:   input.Days,
		Now:    now,
	})
	if err != nil {
		if errors.Is(err, repository.ErrPageNotExists) {
			return page.RecentlyModifiedOutput{}, page.ErrPageNotFound
		}
		uc.l.Errorf(ctx, "uc.RecentlyModified: %v", err)
		return page.RecentlyModifiedOutput{}, err
	}

	return page.RecentlyModifiedOutput{
		Pages:  infos,
		Count:  len(infos),
		Cutoff: datemath.RecencyCutoff(now, input.Days),
	}, nil
}
