package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"content-repository/internal/page"
	pageHTTP "content-repository/internal/page/delivery/http"
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

// mockUseCase implements page.UseCase with overridable functions.
type mockUseCase struct {
	createFunc     func(input page.CreatePageInput) (page.CreatePageOutput, error)
	listFunc       func() (page.ListPagesOutput, error)
	detailFunc     func(id string) (page.DetailPageOutput, error)
	childrenFunc   func(id string) (page.ChildrenOutput, error)
	breadcrumbFunc func(id string) (page.BreadcrumbOutput, error)
	searchFunc     func(input page.SearchByTagInput) (page.SearchByTagOutput, error)
	recentFunc     func(input page.RecentlyModifiedInput) (page.RecentlyModifiedOutput, error)
}

func (m *mockUseCase) Create(ctx context.Context, input page.CreatePageInput) (page.CreatePageOutput, error) {
	if m.createFunc != nil {
		return m.createFunc(input)
	}
	return page.CreatePageOutput{}, nil
}

func (m *mockUseCase) List(ctx context.Context) (page.ListPagesOutput, error) {
	if m.listFunc != nil {
		return m.listFunc()
	}
	return page.ListPagesOutput{}, nil
}

func (m *mockUseCase) Detail(ctx context.Context, id string) (page.DetailPageOutput, error) {
	if m.detailFunc != nil {
		return m.detailFunc(id)
	}
	return page.DetailPageOutput{}, nil
}

func (m *mockUseCase) Children(ctx context.Context, id string) (page.ChildrenOutput, error) {
	if m.childrenFunc != nil {
		return m.childrenFunc(id)
	}
	return page.ChildrenOutput{}, nil
}

func (m *mockUseCase) Breadcrumb(ctx context.Context, id string) (page.BreadcrumbOutput, error) {
	if m.breadcrumbFunc != nil {
		return m.breadcrumbFunc(id)
	}
	return page.BreadcrumbOutput{}, nil
}

func (m *mockUseCase) SearchByTag(ctx context.Context, input page.SearchByTagInput) (page.SearchByTagOutput, error) {
	if m.searchFunc != nil {
		return m.searchFunc(input)
	}
	return page.SearchByTagOutput{}, nil
}

func (m *mockUseCase) RecentlyModified(ctx context.Context, input page.RecentlyModifiedInput) (page.RecentlyModifiedOutput, error) {
	if m.recentFunc != nil {
		return m.recentFunc(input)
	}
	return page.RecentlyModifiedOutput{}, nil
}

func newTestRouter(uc page.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	h := pageHTTP.New(&mockLogger{}, uc)
	pageHTTP.RegisterRoutes(engine.Group("/api/v1"), h)
	return engine
}

func doRequest(t *testing.T, engine *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestBreadcrumbHandler(t *testing.T) {
	uc := &mockUseCase{
		breadcrumbFunc: func(id string) (page.BreadcrumbOutput, error) {
			if id != "gaming-id" {
				t.Errorf("unexpected id %q", id)
			}
			return page.BreadcrumbOutput{Breadcrumb: "Home > Products > Laptops > Gaming Laptops"}, nil
		},
	}
	rec := doRequest(t, newTestRouter(uc), http.MethodGet, "/api/v1/pages/gaming-id/breadcrumb", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", rec.Code, rec.Body.String())
	}
	var body struct {
		Data struct {
			Breadcrumb string `json:"breadcrumb"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Data.Breadcrumb != "Home > Products > Laptops > Gaming Laptops" {
		t.Errorf("breadcrumb = %q", body.Data.Breadcrumb)
	}
}

func TestDetailHandlerNotFound(t *testing.T) {
	uc := &mockUseCase{
		detailFunc: func(id string) (page.DetailPageOutput, error) {
			return page.DetailPageOutput{}, page.ErrPageNotFound
		},
	}
	rec := doRequest(t, newTestRouter(uc), http.MethodGet, "/api/v1/pages/missing", "")

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestSearchHandler(t *testing.T) {
	t.Run("Empty tag rejected", func(t *testing.T) {
		uc := &mockUseCase{
			searchFunc: func(input page.SearchByTagInput) (page.SearchByTagOutput, error) {
				return page.SearchByTagOutput{}, page.ErrEmptyTag
			},
		}
		rec := doRequest(t, newTestRouter(uc), http.MethodGet, "/api/v1/pages/root-id/search", "")
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("Results in order", func(t *testing.T) {
		uc := &mockUseCase{
			searchFunc: func(input page.SearchByTagInput) (page.SearchByTagOutput, error) {
				if input.Tag != "laptops" || input.RootID != "root-id" {
					t.Errorf("unexpected input %+v", input)
				}
				return page.SearchByTagOutput{
					Pages: []page.Info{{ID: "1", Title: "Laptops"}, {ID: "2", Title: "Gaming"}},
					Count: 2,
				}, nil
			},
		}
		rec := doRequest(t, newTestRouter(uc), http.MethodGet, "/api/v1/pages/root-id/search?tag=laptops", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		var body struct {
			Data struct {
				Count int `json:"count"`
				Pages []struct {
					Title string `json:"title"`
				} `json:"pages"`
			} `json:"data"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if body.Data.Count != 2 || body.Data.Pages[0].Title != "Laptops" {
			t.Errorf("unexpected body: %+v", body.Data)
		}
	})
}

func TestRecentHandler(t *testing.T) {
	uc := &mockUseCase{
		recentFunc: func(input page.RecentlyModifiedInput) (page.RecentlyModifiedOutput, error) {
			if input.Days != 3 {
				t.Errorf("days = %d, want 3", input.Days)
			}
			return page.RecentlyModifiedOutput{
				Pages:  []page.Info{{ID: "1", Title: "Home"}},
				Count:  1,
				Cutoff: time.Date(2024, 5, 7, 0, 0, 0, 0, time.UTC),
			}, nil
		},
	}
	rec := doRequest(t, newTestRouter(uc), http.MethodGet, "/api/v1/pages/root-id/recent?days=3", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestCreateHandler(t *testing.T) {
	t.Run("Create with parent", func(t *testing.T) {
		uc := &mockUseCase{
			createFunc: func(input page.CreatePageInput) (page.CreatePageOutput, error) {
				if input.ParentID != "home-id" || input.Title != "Blog" {
					t.Errorf("unexpected input %+v", input)
				}
				return page.CreatePageOutput{Page: page.Info{ID: "blog-id", Title: input.Title}}, nil
			},
		}
		body := `{"title":"Blog","path":"/blog","tags":["news"],"parent_id":"home-id"}`
		rec := doRequest(t, newTestRouter(uc), http.MethodPost, "/api/v1/pages", body)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200 (body: %s)", rec.Code, rec.Body.String())
		}
	})

	t.Run("Unknown parent", func(t *testing.T) {
		uc := &mockUseCase{
			createFunc: func(input page.CreatePageInput) (page.CreatePageOutput, error) {
				return page.CreatePageOutput{}, page.ErrParentNotFound
			},
		}
		body := `{"title":"Blog","path":"/blog","parent_id":"missing"}`
		rec := doRequest(t, newTestRouter(uc), http.MethodPost, "/api/v1/pages", body)
		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", rec.Code)
		}
	})
}
