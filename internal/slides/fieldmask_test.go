package slides

import (
	"reflect"
	"testing"
)

func TestGetNestedValue(t *testing.T) {
	src := map[string]any{
		"a": map[string]any{
			"b": map[string]any{"c": 42},
		},
		"top": "level",
	}

	v, ok := getNestedValue(src, "a.b.c")
	if !ok || v != 42 {
		t.Fatalf("getNestedValue(a.b.c)=(%v,%v), want (42,true)", v, ok)
	}
	if v, ok := getNestedValue(src, "top"); !ok || v != "level" {
		t.Fatalf("getNestedValue(top)=(%v,%v)", v, ok)
	}
	if _, ok := getNestedValue(src, "a.missing.c"); ok {
		t.Fatalf("getNestedValue(a.missing.c) found a value")
	}
	if _, ok := getNestedValue(src, "top.deeper"); ok {
		t.Fatalf("getNestedValue traversed through a non-map")
	}
}

func TestGetNestedValue_ListIndex(t *testing.T) {
	src := map[string]any{
		"pageElements": []any{
			map[string]any{"title": "one"},
			map[string]any{"title": "two"},
		},
	}

	v, ok := getNestedValue(src, "pageElements.1.title")
	if !ok || v != "two" {
		t.Fatalf("getNestedValue(pageElements.1.title)=(%v,%v), want (two,true)", v, ok)
	}
	if _, ok := getNestedValue(src, "pageElements.5.title"); ok {
		t.Fatalf("getNestedValue indexed out of bounds")
	}
	if _, ok := getNestedValue(src, "pageElements.x"); ok {
		t.Fatalf("getNestedValue accepted a non-numeric list segment")
	}
}

func TestSetNestedValue(t *testing.T) {
	dst := map[string]any{}
	if err := setNestedValue(dst, "a.b.c", 7); err != nil {
		t.Fatalf("setNestedValue() error: %v", err)
	}
	want := map[string]any{"a": map[string]any{"b": map[string]any{"c": 7}}}
	if !reflect.DeepEqual(dst, want) {
		t.Fatalf("dst=%v, want %v", dst, want)
	}

	// A non-map intermediate is a path conflict.
	dst = map[string]any{"a": "scalar"}
	if err := setNestedValue(dst, "a.b", 1); err == nil {
		t.Fatalf("setNestedValue() accepted path through a scalar")
	}
}

func TestSetNestedValue_ListIndex(t *testing.T) {
	dst := map[string]any{
		"pageElements": []any{
			map[string]any{"title": "one"},
			map[string]any{"title": "two"},
		},
	}

	if err := setNestedValue(dst, "pageElements.0.title", "patched"); err != nil {
		t.Fatalf("setNestedValue() error: %v", err)
	}
	list := dst["pageElements"].([]any)
	if got := list[0].(map[string]any)["title"]; got != "patched" {
		t.Fatalf("title=%v, want patched", got)
	}

	// A numeric final segment assigns the list element in place.
	if err := setNestedValue(dst, "pageElements.1", "replaced"); err != nil {
		t.Fatalf("setNestedValue() error: %v", err)
	}
	if list[1] != "replaced" {
		t.Fatalf("element=%v, want replaced", list[1])
	}

	if err := setNestedValue(dst, "pageElements.9.title", "x"); err == nil {
		t.Fatalf("setNestedValue() indexed out of bounds")
	}
	// The replaced element is no longer a map.
	if err := setNestedValue(dst, "pageElements.1.title", "x"); err == nil {
		t.Fatalf("setNestedValue() traversed into a non-map list element")
	}
}

func TestApplyFieldMask(t *testing.T) {
	target := map[string]any{
		"layoutObjectId": "layout_old_1",
		"notesPage":      map[string]any{"objectId": "notes_1"},
	}
	updates := map[string]any{
		"layoutObjectId": "layout_new_1",
		"masterObjectId": "master_1",
	}

	if err := applyFieldMask(target, updates, "layoutObjectId"); err != nil {
		t.Fatalf("applyFieldMask() error: %v", err)
	}
	if target["layoutObjectId"] != "layout_new_1" {
		t.Fatalf("layoutObjectId=%v, want layout_new_1", target["layoutObjectId"])
	}
	if _, ok := target["masterObjectId"]; ok {
		t.Fatalf("unmasked field copied")
	}

	// Paths absent from updates are skipped.
	if err := applyFieldMask(target, updates, "isSkipped"); err != nil {
		t.Fatalf("applyFieldMask() error on absent path: %v", err)
	}
	if _, ok := target["isSkipped"]; ok {
		t.Fatalf("absent update path wrote a value")
	}
}

func TestApplyFieldMask_Wildcard(t *testing.T) {
	target := map[string]any{"layoutObjectId": "layout_old_1", "extra": true}
	updates := map[string]any{"layoutObjectId": "layout_new_1", "masterObjectId": "master_1"}

	if err := applyFieldMask(target, updates, "*"); err != nil {
		t.Fatalf("applyFieldMask(*) error: %v", err)
	}
	if target["layoutObjectId"] != "layout_new_1" || target["masterObjectId"] != "master_1" {
		t.Fatalf("target=%v", target)
	}
	// Keys absent from updates survive a wildcard merge.
	if target["extra"] != true {
		t.Fatalf("wildcard merge dropped untouched key")
	}
}

func TestApplyFieldMask_EmptyMask(t *testing.T) {
	target := map[string]any{"a": 1}
	if err := applyFieldMask(target, map[string]any{"a": 2}, ""); err != nil {
		t.Fatalf("applyFieldMask() error: %v", err)
	}
	if target["a"] != 1 {
		t.Fatalf("empty mask applied an update")
	}
}
