package usecase_test

import (
	"context"

	"content-repository/internal/page"
	"content-repository/internal/page/repository"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, args ...any)  {}

// mockRepo implements repository.Repository with overridable functions.
type mockRepo struct {
	createFunc     func(opt repository.CreatePageOptions) (page.Info, error)
	getOneFunc     func(opt repository.GetOnePageOptions) (page.Info, error)
	listRootsFunc  func() ([]page.Info, error)
	childrenFunc   func(id string) ([]page.Info, error)
	breadcrumbFunc func(id string) (string, error)
	searchFunc     func(opt repository.SearchByTagOptions) ([]page.Info, error)
	recentFunc     func(opt repository.RecentlyModifiedOptions) ([]page.Info, error)
}

func (m *mockRepo) CreatePage(ctx context.Context, opt repository.CreatePageOptions) (page.Info, error) {
	if m.createFunc != nil {
		return m.createFunc(opt)
	}
	return page.Info{}, nil
}

func (m *mockRepo) GetOnePage(ctx context.Context, opt repository.GetOnePageOptions) (page.Info, error) {
	if m.getOneFunc != nil {
		return m.getOneFunc(opt)
	}
	return page.Info{}, nil
}

func (m *mockRepo) ListRoots(ctx context.Context) ([]page.Info, error) {
	if m.listRootsFunc != nil {
		return m.listRootsFunc()
	}
	return nil, nil
}

func (m *mockRepo) ListChildren(ctx context.Context, id string) ([]page.Info, error) {
	if m.childrenFunc != nil {
		return m.childrenFunc(id)
	}
	return nil, nil
}

func (m *mockRepo) Breadcrumb(ctx context.Context, id string) (string, error) {
	if m.breadcrumbFunc != nil {
		return m.breadcrumbFunc(id)
	}
	return "", nil
}

func (m *mockRepo) SearchByTag(ctx context.Context, opt repository.SearchByTagOptions) ([]page.Info, error) {
	if m.searchFunc != nil {
		return m.searchFunc(opt)
	}
	return nil, nil
}

func (m *mockRepo) RecentlyModified(ctx context.Context, opt repository.RecentlyModifiedOptions) ([]page.Info, error) {
	if m.recentFunc != nil {
		return m.recentFunc(opt)
	}
	return nil, nil
}
