package version

import (
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// Loading tests
// ---------------------------------------------------------------------------

func TestLoadCurrentLayout(t *testing.T) {
	l, err := LoadCurrentLayout()
	if err != nil {
		t.Fatalf("LoadCurrentLayout() error: %v", err)
	}
	if l.Version != Current {
		t.Errorf("Version = %q, want %q", l.Version, Current)
	}
	if l.Description == "" {
		t.Error("Description is empty")
	}
}

func TestLoadLayout_Cached(t *testing.T) {
	a, err := LoadLayout("1.0")
	if err != nil {
		t.Fatalf("LoadLayout(1.0) error: %v", err)
	}
	b, err := LoadLayout("1.0")
	if err != nil {
		t.Fatalf("LoadLayout(1.0) error: %v", err)
	}
	if a != b {
		t.Error("second load should return the cached manifest")
	}
}

func TestLoadLayout_NotFound(t *testing.T) {
	if _, err := LoadLayout("99.99"); err == nil {
		t.Fatal("LoadLayout(99.99) should return error")
	}
}

func TestAvailableLayouts(t *testing.T) {
	versions, err := AvailableLayouts()
	if err != nil {
		t.Fatalf("AvailableLayouts() error: %v", err)
	}
	if len(versions) == 0 || versions[0] != "1.0" {
		t.Errorf("AvailableLayouts() = %v, want to start with %q", versions, "1.0")
	}
}

// ---------------------------------------------------------------------------
// Content tests -- verify the 1.0 manifest
// ---------------------------------------------------------------------------

func TestLayout_MandatoryCallbacks(t *testing.T) {
	l, err := LoadLayout("1.0")
	if err != nil {
		t.Fatal(err)
	}
	got := l.MandatoryCallbacks()
	if len(got) != 6 {
		t.Fatalf("MandatoryCallbacks() = %v, want 6 entries", got)
	}
	for _, m := range got {
		if m == "OnDataReceived" {
			t.Error("OnDataReceived should be optional")
		}
	}
}

func TestLayout_CallbackByMethod(t *testing.T) {
	l, err := LoadLayout("1.0")
	if err != nil {
		t.Fatal(err)
	}
	key, cb, ok := l.CallbackByMethod("OnSessionStatusNotificationReceived")
	if !ok {
		t.Fatal("session status callback not found")
	}
	if key != "session_status" {
		t.Errorf("key = %q, want session_status", key)
	}
	if cb.Signature != "(JII)V" {
		t.Errorf("Signature = %q, want (JII)V", cb.Signature)
	}
	if _, _, ok := l.CallbackByMethod("OnNothing"); ok {
		t.Error("unknown method should not be found")
	}
}

// ---------------------------------------------------------------------------
// Validation tests
// ---------------------------------------------------------------------------

func fullHost(l *LayoutManifest) HostLayout {
	h := HostLayout{Methods: map[string]string{}, Classes: map[string][]string{}}
	for _, cb := range l.Callbacks {
		h.Methods[cb.Method] = cb.Signature
	}
	for _, cls := range l.Classes {
		h.Classes[cls.Name] = append([]string(nil), cls.Constructors...)
	}
	return h
}

func TestValidateHost_Complete(t *testing.T) {
	l, _ := LoadCurrentLayout()
	res := ValidateHost(l, fullHost(l))
	if !res.Valid {
		t.Fatalf("complete host invalid: %v", res.Errors)
	}
	if len(res.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", res.Warnings)
	}
}

func TestValidateHost_MissingOptionalCallback(t *testing.T) {
	l, _ := LoadCurrentLayout()
	h := fullHost(l)
	delete(h.Methods, "OnDataReceived")

	res := ValidateHost(l, h)
	if !res.Valid {
		t.Fatalf("missing optional callback should stay valid: %v", res.Errors)
	}
	if len(res.Warnings) != 1 {
		t.Errorf("Warnings = %v, want 1", res.Warnings)
	}
}

func TestValidateHost_Errors(t *testing.T) {
	l, _ := LoadCurrentLayout()
	h := fullHost(l)
	delete(h.Methods, "OnRangeDataNotificationReceived")
	h.Methods["OnSessionStatusNotificationReceived"] = "(III)V"
	delete(h.Classes, "uwb/OwrAoaMeasurement")
	h.Classes["uwb/RangingData"] = h.Classes["uwb/RangingData"][:1]

	res := ValidateHost(l, h)
	if res.Valid {
		t.Fatal("broken host should be invalid")
	}
	if len(res.Errors) != 5 {
		t.Fatalf("Errors = %v, want 5", res.Errors)
	}
	joined := strings.Join(res.Errors, "\n")
	for _, want := range []string{
		"mandatory callback OnRangeDataNotificationReceived missing",
		"layout expects (JII)V",
		"class uwb/OwrAoaMeasurement missing",
		"missing constructor (JJIJIII[Luwb/DlTdoaMeasurement;[B)V",
		"missing constructor (JJIJIIILuwb/OwrAoaMeasurement;[B)V",
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("errors missing %q", want)
		}
	}
}
