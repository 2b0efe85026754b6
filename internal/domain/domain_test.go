package domain_test

import (
	"path/filepath"
	"testing"

	"culler/internal/domain"
)

func TestParseActionNormalizes(t *testing.T) {
	cases := map[string]domain.Action{
		"keep":     domain.ActionKeep,
		"KEEP":     domain.ActionKeep,
		" Reject ": domain.ActionReject,
		"disabled": domain.ActionDisabled,
		"previous": domain.ActionPrevious,
	}
	for value, want := range cases {
		got, ok := domain.ParseAction(value)
		if !ok || got != want {
			t.Errorf("ParseAction(%q) = %q, %v; want %q", value, got, ok, want)
		}
	}
	if _, ok := domain.ParseAction("delete"); ok {
		t.Error("ParseAction accepted an unknown action")
	}
	if _, ok := domain.ParseAction(""); ok {
		t.Error("ParseAction accepted the empty string")
	}
}

func TestDisabledIsValidButNotInvokable(t *testing.T) {
	if !domain.ActionDisabled.Valid() {
		t.Error("disabled should be a valid mapping value")
	}
	if domain.ActionDisabled.Invokable() {
		t.Error("disabled must not be invokable")
	}
	if !domain.ActionSkip.Invokable() {
		t.Error("skip should be invokable")
	}
}

func TestIsImageNameIgnoresCase(t *testing.T) {
	for _, name := range []string{"a.png", "b.JPG", "c.Jpeg", "d.WEBP", "e.bmp"} {
		if !domain.IsImageName(name) {
			t.Errorf("IsImageName(%q) = false", name)
		}
	}
	for _, name := range []string{"a.txt", "b.gif", "noext", ".png.bak"} {
		if domain.IsImageName(name) {
			t.Errorf("IsImageName(%q) = true", name)
		}
	}
}

func TestRelPath(t *testing.T) {
	flat := domain.File{Name: "a.png", AbsPath: "/src/a.png"}
	if flat.RelPath() != "a.png" {
		t.Errorf("RelPath() = %q", flat.RelPath())
	}
	nested := domain.File{Name: "b.png", RelDir: filepath.Join("sub", "deep")}
	if nested.RelPath() != filepath.Join("sub", "deep", "b.png") {
		t.Errorf("RelPath() = %q", nested.RelPath())
	}
}
