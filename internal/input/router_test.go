package input_test

import (
	"testing"

	"github.com/rs/zerolog"

	"culler/internal/config"
	"culler/internal/domain"
	"culler/internal/input"
)

type recorder struct {
	calls []string
}

func (r *recorder) behaviors() input.Behaviors {
	return input.Behaviors{
		Keep:     func() { r.calls = append(r.calls, "keep") },
		Reject:   func() { r.calls = append(r.calls, "reject") },
		Next:     func() { r.calls = append(r.calls, "next") },
		Previous: func() { r.calls = append(r.calls, "previous") },
		Skip:     func() { r.calls = append(r.calls, "skip") },
	}
}

func newRouter(t *testing.T) (*input.Router, *recorder) {
	t.Helper()
	rec := &recorder{}
	return input.NewRouter(input.NewRegistry(rec.behaviors()), zerolog.Nop()), rec
}

func TestBindAllInstallsConfiguredMappings(t *testing.T) {
	router, rec := newRouter(t)
	router.BindAll(config.DefaultDocument())

	for _, event := range []input.Event{
		input.EventLeftClick, input.EventRightClick, input.EventWheelUp, input.EventWheelDown,
	} {
		if !router.Dispatch(event) {
			t.Fatalf("%s should be bound by defaults", event)
		}
	}
	want := []string{"keep", "reject", "previous", "next"}
	if len(rec.calls) != len(want) {
		t.Fatalf("calls = %v", rec.calls)
	}
	for i := range want {
		if rec.calls[i] != want[i] {
			t.Fatalf("calls = %v, want %v", rec.calls, want)
		}
	}
}

func TestBindAllReplacesWholesale(t *testing.T) {
	router, rec := newRouter(t)

	first := config.DefaultDocument()
	router.BindAll(first)

	second := config.DefaultDocument()
	second.Buttons.LeftClick = domain.ActionNext
	second.Buttons.RightClick = domain.ActionDisabled
	second.Wheel.WheelUp = domain.ActionDisabled
	second.Wheel.WheelDown = domain.ActionDisabled
	router.BindAll(second)

	if router.Dispatch(input.EventRightClick) {
		t.Fatal("right click was bound in A but disabled in B; it must have no effect")
	}
	if router.Dispatch(input.EventWheelUp) || router.Dispatch(input.EventWheelDown) {
		t.Fatal("wheel events should be unbound under B")
	}
	if !router.Dispatch(input.EventLeftClick) {
		t.Fatal("left click should be bound under B")
	}
	if len(rec.calls) != 1 || rec.calls[0] != "next" {
		t.Fatalf("calls = %v", rec.calls)
	}
}

func TestDuplicateMappingsBothFire(t *testing.T) {
	router, rec := newRouter(t)

	doc := config.DefaultDocument()
	doc.Buttons.RightClick = domain.ActionNext
	doc.Wheel.WheelDown = domain.ActionNext
	router.BindAll(doc)

	router.Dispatch(input.EventRightClick)
	router.Dispatch(input.EventWheelDown)
	if len(rec.calls) != 2 || rec.calls[0] != "next" || rec.calls[1] != "next" {
		t.Fatalf("calls = %v", rec.calls)
	}
}

func TestUnbindAllIsIdempotent(t *testing.T) {
	router, _ := newRouter(t)
	router.UnbindAll()
	router.UnbindAll()
	if router.Dispatch(input.EventLeftClick) {
		t.Fatal("nothing should be bound")
	}

	router.BindAll(config.DefaultDocument())
	router.UnbindAll()
	if router.Dispatch(input.EventLeftClick) {
		t.Fatal("UnbindAll left a binding behind")
	}
}

func TestBoundReportsAction(t *testing.T) {
	router, _ := newRouter(t)
	router.BindAll(config.DefaultDocument())

	action, ok := router.Bound(input.EventLeftClick)
	if !ok || action != domain.ActionKeep {
		t.Fatalf("Bound(left_click) = %v %v", action, ok)
	}

	doc := config.DefaultDocument()
	doc.Buttons.LeftClick = domain.ActionDisabled
	router.BindAll(doc)
	if _, ok := router.Bound(input.EventLeftClick); ok {
		t.Fatal("disabled event should report unbound")
	}
}
