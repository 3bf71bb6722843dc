package curriculum

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"
)

func overrideFile(day, title, body string) []byte {
	return []byte("---\nday: " + day + "\ntitle: " + title + "\n---\n" + body)
}

func TestLoadOverrides(t *testing.T) {
	fsys := fstest.MapFS{
		"overrides/day-6.md":  {Data: overrideFile("6", "Controlled Forms Deep Dive", "Updated notes.")},
		"overrides/day-12.md": {Data: overrideFile("12", "Memoized Callbacks", "")},
		"overrides/notes.txt": {Data: []byte("ignored, does not match the pattern")},
	}

	loader := NewLoader(fsys, LoaderConfig{BasePath: "overrides"})
	overrides, err := loader.LoadOverrides(context.Background())
	if err != nil {
		t.Fatalf("load overrides: %v", err)
	}

	if len(overrides) != 2 {
		t.Fatalf("expected 2 overrides, got %d", len(overrides))
	}
	if overrides[6] != "Controlled Forms Deep Dive" {
		t.Fatalf("unexpected day 6 override %q", overrides[6])
	}
	if overrides[12] != "Memoized Callbacks" {
		t.Fatalf("unexpected day 12 override %q", overrides[12])
	}
}

func TestLoadOverridesRejectsInvalidDay(t *testing.T) {
	fsys := fstest.MapFS{
		"day-0.md": {Data: overrideFile("0", "Broken", "")},
	}

	loader := NewLoader(fsys, LoaderConfig{})
	if _, err := loader.LoadOverrides(context.Background()); !errors.Is(err, ErrOverrideDayInvalid) {
		t.Fatalf("expected ErrOverrideDayInvalid, got %v", err)
	}
}

func TestLoadOverridesRequiresTitle(t *testing.T) {
	fsys := fstest.MapFS{
		"day-6.md": {Data: []byte("---\nday: 6\ntitle: \"\"\n---\n")},
	}

	loader := NewLoader(fsys, LoaderConfig{})
	if _, err := loader.LoadOverrides(context.Background()); !errors.Is(err, ErrOverrideTitleRequired) {
		t.Fatalf("expected ErrOverrideTitleRequired, got %v", err)
	}
}

func TestLoadOverridesRejectsDuplicateDays(t *testing.T) {
	fsys := fstest.MapFS{
		"a.md": {Data: overrideFile("6", "First", "")},
		"b.md": {Data: overrideFile("6", "Second", "")},
	}

	loader := NewLoader(fsys, LoaderConfig{})
	if _, err := loader.LoadOverrides(context.Background()); !errors.Is(err, ErrDuplicateDay) {
		t.Fatalf("expected ErrDuplicateDay, got %v", err)
	}
}

func TestLoadOverridesHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	loader := NewLoader(fstest.MapFS{}, LoaderConfig{})
	if _, err := loader.LoadOverrides(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestMergeTopics(t *testing.T) {
	base := map[int]string{6: "Base", 7: "Keep"}
	overrides := map[int]string{6: "Override", 8: "New"}

	merged := MergeTopics(base, overrides)
	if merged[6] != "Override" {
		t.Fatalf("expected override to win, got %q", merged[6])
	}
	if merged[7] != "Keep" {
		t.Fatalf("expected base entry to survive, got %q", merged[7])
	}
	if merged[8] != "New" {
		t.Fatalf("expected new entry, got %q", merged[8])
	}

	if base[6] != "Base" {
		t.Fatal("expected MergeTopics to leave inputs untouched")
	}
}
