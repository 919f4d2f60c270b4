package usecase

import (
	"context"
	"errors"

	"content-repository/internal/page"
	"content-repository/internal/page/repository"
)

// List returns every root page in registration order.
func (uc *implUseCase) List(ctx context.Context) (page.ListPagesOutput, error) {
	roots, err := uc.repo.ListRoots(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListRoots: %v", err)
		return page.ListPagesOutput{}, err
	}

	return page.ListPagesOutput{
		Pages: roots,
		Total: len(roots),
	}, nil
}

// Detail retrieves a single page by ID together with its breadcrumb.
// Returns ErrPageNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id string) (page.DetailPageOutput, error) {
	info, err := uc.repo.GetOnePage(ctx, repository.GetOnePageOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOnePage: %v", err)
		return page.DetailPageOutput{}, err
	}
	if info.ID == "" {
		return page.DetailPageOutput{}, page.ErrPageNotFound
	}

	crumb, err := uc.repo.Breadcrumb(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail Breadcrumb: %v", err)
		return page.DetailPageOutput{}, err
	}

	return page.DetailPageOutput{
		Page:       info,
		Breadcrumb: crumb,
	}, nil
}

// Children returns the ordered child sequence of a page.
// Returns ErrPageNotFound when the page does not exist.
func (uc *implUseCase) Children(ctx context.Context, id string) (page.ChildrenOutput, error) {
	children, err := uc.repo.ListChildren(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPageNotExists) {
			return page.ChildrenOutput{}, page.ErrPageNotFound
		}
		uc.l.Errorf(ctx, "uc.Children ListChildren: %v", err)
		return page.ChildrenOutput{}, err
	}

	return page.ChildrenOutput{
		Pages: children,
		Total: len(children),
	}, nil
}
