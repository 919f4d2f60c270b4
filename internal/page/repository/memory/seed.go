package memory

import (
	"context"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"content-repository/internal/page/repository"
)

// SeedNode is one page in the declarative site seed file.
// Timestamps are given either absolutely (modified, RFC3339) or relative to
// the seed instant (modified_days_ago), so sample sites stay meaningful for
// recency queries no matter when the service starts.
type SeedNode struct {
	Title           string     `yaml:"title"`
	Path            string     `yaml:"path"`
	Tags            []string   `yaml:"tags"`
	Modified        string     `yaml:"modified,omitempty"`
	ModifiedDaysAgo *int       `yaml:"modified_days_ago,omitempty"`
	Children        []SeedNode `yaml:"children,omitempty"`
}

// SeedFile is the top-level structure of a site seed file.
type SeedFile struct {
	Pages []SeedNode `yaml:"pages"`
}

// LoadSeedFile parses a YAML site seed from disk.
func LoadSeedFile(path string) (SeedFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return SeedFile{}, fmt.Errorf("read seed file: %w", err)
	}

	var seed SeedFile
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return SeedFile{}, fmt.Errorf("parse seed file: %w", err)
	}
	return seed, nil
}

// Seed registers every page in the seed under the store, preserving the
// declared order. now anchors the relative timestamps.
func (s *Store) Seed(ctx context.Context, seed SeedFile, now time.Time) error {
	for _, node := range seed.Pages {
		if err := s.seedNode(ctx, node, "", now); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) seedNode(ctx context.Context, node SeedNode, parentID string, now time.Time) error {
	modified, err := seedTimestamp(node, now)
	if err != nil {
		return fmt.Errorf("page %q: %w", node.Title, err)
	}

	info, err := s.CreatePage(ctx, repository.CreatePageOptions{
		Title:        node.Title,
		Path:         node.Path,
		Tags:         node.Tags,
		LastModified: modified,
		ParentID:     parentID,
	})
	if err != nil {
		return fmt.Errorf("page %q: %w", node.Title, err)
	}

	for _, child := range node.Children {
		if err := s.seedNode(ctx, child, info.ID, now); err != nil {
			return err
		}
	}
	return nil
}

func seedTimestamp(node SeedNode, now time.Time) (time.Time, error) {
	if node.Modified != "" {
		t, err := time.Parse(time.RFC3339, node.Modified)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid modified timestamp %q: %w", node.Modified, err)
		}
		return t, nil
	}
	if node.ModifiedDaysAgo != nil {
		return now.AddDate(0, 0, -*node.ModifiedDaysAgo), nil
	}
	return now, nil
}
