package observability

import "testing"

func TestNoopHooksDoNotPanic(t *testing.T) {
	h := NoopHoverHooks{}
	h.OnClassify("10x10", "AH", 1, 5)
	h.OnMemoHit("10x10")
	h.OnClassifyMiss("custom", "Z40", 0, 0)

	e := NoopEditHooks{}
	e.OnIntent("above", "drag", "hover", 2)
	e.OnApply("inlineLeft", "drag", "hover", -1)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Hover().(NoopHoverHooks); !ok {
		t.Error("Hover() should return NoopHoverHooks by default")
	}
	if _, ok := Edit().(NoopEditHooks); !ok {
		t.Error("Edit() should return NoopEditHooks by default")
	}

	// Set custom hooks
	customHover := &testHoverHooks{}
	SetHoverHooks(customHover)
	if Hover() != customHover {
		t.Error("SetHoverHooks should set custom hooks")
	}

	customEdit := &testEditHooks{}
	SetEditHooks(customEdit)
	if Edit() != customEdit {
		t.Error("SetEditHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Hover().(NoopHoverHooks); !ok {
		t.Error("Reset() should restore NoopHoverHooks")
	}
	if _, ok := Edit().(NoopEditHooks); !ok {
		t.Error("Reset() should restore NoopEditHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testHoverHooks{}
	SetHoverHooks(custom)

	// Setting nil should be ignored
	SetHoverHooks(nil)
	SetEditHooks(nil)

	if Hover() != custom {
		t.Error("SetHoverHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testHoverHooks struct{ NoopHoverHooks }
type testEditHooks struct{ NoopEditHooks }
