package env

import (
	"testing"
)

func TestGetEnvPrecedence(t *testing.T) {
	vars = map[string]string{"ADBOARD_TEST_KEY": "from-file", "ADBOARD_EMPTY": ""}
	t.Cleanup(func() { vars = nil })

	if got := GetEnv("ADBOARD_TEST_KEY", "fallback"); got != "from-file" {
		t.Fatalf("file value = %q, want from-file", got)
	}

	t.Setenv("ADBOARD_TEST_KEY", "from-os")
	if got := GetEnv("ADBOARD_TEST_KEY", "fallback"); got != "from-os" {
		t.Fatalf("OS must win over file, got %q", got)
	}

	if got := GetEnv("ADBOARD_EMPTY", "fallback"); got != "fallback" {
		t.Fatalf("empty file value must fall back, got %q", got)
	}
	if got := GetEnv("ADBOARD_MISSING", "fallback"); got != "fallback" {
		t.Fatalf("missing key must fall back, got %q", got)
	}
}

func TestIsDev(t *testing.T) {
	t.Setenv("APP_ENV", "dev")
	if !IsDev() {
		t.Fatal("expected dev mode")
	}

	t.Setenv("APP_ENV", "prod")
	if IsDev() {
		t.Fatal("expected prod mode")
	}
}
