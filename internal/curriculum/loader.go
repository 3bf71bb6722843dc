package curriculum

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"
)

// LoaderConfig configures how topic override files are discovered within a
// base directory.
type LoaderConfig struct {
	// BasePath is the directory where override documents live, relative to
	// the loader filesystem root.
	BasePath string
	// Pattern limits discovered files to those matching the supplied glob
	// (defaults to "*.md").
	Pattern string
}

// Loader discovers markdown files whose frontmatter overrides topic titles.
// Each file carries a `day` and `title` pair; the body is free-form notes and
// is ignored by the generator.
type Loader struct {
	fs       fs.FS
	basePath string
	pattern  string
}

// NewLoader constructs a Loader using the provided filesystem and configuration.
func NewLoader(filesystem fs.FS, cfg LoaderConfig) *Loader {
	pattern := cfg.Pattern
	if strings.TrimSpace(pattern) == "" {
		pattern = "*.md"
	}
	base := strings.Trim(strings.TrimSpace(cfg.BasePath), "/")
	if base == "" {
		base = "."
	}
	return &Loader{
		fs:       filesystem,
		basePath: base,
		pattern:  pattern,
	}
}

type overrideEnvelope struct {
	Day   int    `yaml:"day"`
	Title string `yaml:"title"`
}

// LoadOverrides walks the base path and returns a day-to-title map assembled
// from override frontmatter. Files are visited in sorted path order so later
// duplicates are detected deterministically.
func (l *Loader) LoadOverrides(ctx context.Context) (map[int]string, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	entries, err := fs.ReadDir(l.fs, l.basePath)
	if err != nil {
		return nil, fmt.Errorf("curriculum loader read %s: %w", l.basePath, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		matched, err := path.Match(l.pattern, entry.Name())
		if err != nil {
			return nil, fmt.Errorf("curriculum loader pattern %q: %w", l.pattern, err)
		}
		if matched {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	overrides := map[int]string{}
	for _, name := range names {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		rel := path.Join(l.basePath, name)
		data, err := fs.ReadFile(l.fs, rel)
		if err != nil {
			return nil, fmt.Errorf("curriculum loader read %s: %w", rel, err)
		}

		var meta overrideEnvelope
		if _, err := frontmatter.Parse(bytes.NewReader(data), &meta); err != nil {
			return nil, fmt.Errorf("curriculum loader parse %s: %w", rel, err)
		}
		if meta.Day <= 0 {
			return nil, fmt.Errorf("%w: %s", ErrOverrideDayInvalid, rel)
		}
		title := strings.TrimSpace(meta.Title)
		if title == "" {
			return nil, fmt.Errorf("%w: %s", ErrOverrideTitleRequired, rel)
		}
		if _, exists := overrides[meta.Day]; exists {
			return nil, fmt.Errorf("%w: day=%d file=%s", ErrDuplicateDay, meta.Day, rel)
		}
		overrides[meta.Day] = title
	}
	return overrides, nil
}

// MergeTopics overlays overrides on top of a base topic table without
// mutating either input.
func MergeTopics(base map[int]string, overrides map[int]string) map[int]string {
	merged := make(map[int]string, len(base)+len(overrides))
	for day, title := range base {
		merged[day] = title
	}
	for day, title := range overrides {
		merged[day] = title
	}
	return merged
}
