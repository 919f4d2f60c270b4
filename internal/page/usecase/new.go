package usecase

import (
	"content-repository/internal/page"
	"content-repository/internal/page/repository"
	"content-repository/pkg/clock"
	"content-repository/pkg/log"
)

// implUseCase is the private implementation of page.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
	clk  clock.Clock
}

var _ page.UseCase = (*implUseCase)(nil)

// New creates a new page UseCase implementation. The clock anchors recency
// queries and default timestamps so tests can pin "now".
func New(repo repository.Repository, l log.Logger, clk clock.Clock) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
		clk:  clk,
	}
}
