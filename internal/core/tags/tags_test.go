package tags

import (
	"reflect"
	"testing"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantClean string
		wantTags  []string
	}{
		{"no tags", "Buy milk", "Buy milk", nil},
		{"trailing tags", "Buy milk #shopping #urgent", "Buy milk", []string{"shopping", "urgent"}},
		{"embedded tag", "Call #work dentist", "Call dentist", []string{"work"}},
		{"trailing punctuation trimmed", "Review PR #code-review, then merge", "Review PR then merge", []string{"code-review"}},
		{"embedded hash kept", "Weird #a#b token", "Weird token", []string{"a#b"}},
		{"bare hash is not a tag", "Use # for headings", "Use # for headings", nil},
		{"hash plus punctuation is not a tag", "What is #? anyway", "What is #? anyway", nil},
		{"case preserved", "Ship it #Work #work", "Ship it", []string{"Work", "work"}},
		{"whitespace collapsed", "  Buy   milk   #shopping  ", "Buy milk", []string{"shopping"}},
		{"empty text", "", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clean, got := Extract(tt.text)
			if clean != tt.wantClean {
				t.Errorf("clean = %q, want %q", clean, tt.wantClean)
			}
			if !reflect.DeepEqual(got, tt.wantTags) {
				t.Errorf("tags = %v, want %v", got, tt.wantTags)
			}
		})
	}
}

func TestExtract_DuplicateQuirk(t *testing.T) {
	// Duplicates appear once in the tag list; only the first physical
	// occurrence is removed from the text.
	clean, got := Extract("#home wash car #home")
	if !reflect.DeepEqual(got, []string{"home"}) {
		t.Errorf("tags = %v, want [home]", got)
	}
	if clean != "wash car #home" {
		t.Errorf("clean = %q, want %q", clean, "wash car #home")
	}
}

func TestCanonicalize_Idempotent(t *testing.T) {
	titles := []string{
		"Buy milk #shopping #urgent",
		"Call #work dentist",
		"No tags here",
		"#only #tags",
	}

	for _, title := range titles {
		once := Canonicalize(title)
		twice := Canonicalize(once)
		if once != twice {
			t.Errorf("Canonicalize not idempotent for %q: %q != %q", title, once, twice)
		}

		cleanOnce, tagsOnce := Extract(once)
		cleanTwice, tagsTwice := Extract(twice)
		if cleanOnce != cleanTwice || !reflect.DeepEqual(tagsOnce, tagsTwice) {
			t.Errorf("re-extraction differs for %q", title)
		}
	}
}

func TestCanonicalize_MovesTagsToEnd(t *testing.T) {
	got := Canonicalize("Call #work dentist #urgent")
	want := "Call dentist #work #urgent"
	if got != want {
		t.Errorf("Canonicalize = %q, want %q", got, want)
	}
}

func TestAppend_EmptyClean(t *testing.T) {
	if got := Append("", []string{"a", "b"}); got != "#a #b" {
		t.Errorf("Append = %q, want %q", got, "#a #b")
	}
	if got := Append("text", nil); got != "text" {
		t.Errorf("Append = %q, want %q", got, "text")
	}
}

func TestCanonicalAndContains(t *testing.T) {
	if Canonical("work") != "#work" {
		t.Errorf("Canonical(work) = %q", Canonical("work"))
	}
	if Canonical("#work") != "#work" {
		t.Errorf("Canonical(#work) = %q", Canonical("#work"))
	}

	if !Contains("Buy milk #shopping", "shopping") {
		t.Error("expected Contains to match canonical token")
	}
	// Literal substring containment: #shop is a substring of #shopping.
	if !Contains("Buy milk #shopping", "shop") {
		t.Error("expected literal substring containment")
	}
	if Contains("Buy milk #shopping", "errands") {
		t.Error("unexpected match for absent tag")
	}
}

func TestStrip(t *testing.T) {
	if got := Strip("Buy milk #shopping #urgent"); got != "Buy milk" {
		t.Errorf("Strip = %q, want %q", got, "Buy milk")
	}
}

func TestFromRecord(t *testing.T) {
	got := FromRecord("Buy milk #shopping", "remember coupons #shopping #errands")
	want := []string{"shopping", "errands"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FromRecord = %v, want %v", got, want)
	}
}
