package locations

import "testing"

func TestResolveCityName(t *testing.T) {
	reg := DefaultRegistry()

	if got := reg.Resolve("1234 Main St, Dublin, OH 43017"); got != "dublin" {
		t.Fatalf("expected dublin, got %q", got)
	}
	if got := reg.Resolve("88 High St, WESTERVILLE OH"); got != "westerville" {
		t.Fatalf("matching should be case-insensitive, got %q", got)
	}
}

func TestResolveZIPOnly(t *testing.T) {
	reg := DefaultRegistry()

	if got := reg.Resolve("somewhere, 43065"); got != "powell" {
		t.Fatalf("expected powell from ZIP, got %q", got)
	}
}

func TestResolveHyphenatedVariant(t *testing.T) {
	reg := DefaultRegistry()

	if got := reg.Resolve("new-albany town center"); got != "new-albany" {
		t.Fatalf("expected new-albany, got %q", got)
	}
}

func TestResolveFallsBackToDefault(t *testing.T) {
	reg := DefaultRegistry()

	if got := reg.Resolve("somewhere unknown"); got != DefaultSlug {
		t.Fatalf("expected default slug, got %q", got)
	}
	if got := reg.Resolve(""); got != DefaultSlug {
		t.Fatalf("empty address should resolve to default, got %q", got)
	}
}

func TestResolveHonorsTableOrder(t *testing.T) {
	reg := NewRegistry([]ServiceArea{
		{Slug: "first", Patterns: []string{"4301"}},
		{Slug: "second", Patterns: []string{"43017"}},
	}, "fallback")

	// Both patterns match; the earlier entry must win.
	if got := reg.Resolve("43017"); got != "first" {
		t.Fatalf("expected first entry to win on overlap, got %q", got)
	}
}

func TestContains(t *testing.T) {
	reg := DefaultRegistry()

	if !reg.Contains("dublin") {
		t.Fatal("expected dublin to be a known area")
	}
	if !reg.Contains(DefaultSlug) {
		t.Fatal("default slug should always be known")
	}
	if reg.Contains("cleveland") {
		t.Fatal("cleveland is not a service area")
	}
}
