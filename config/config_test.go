package config

import "testing"

func TestGetString(t *testing.T) {
	c := map[string]string{"PORT": "9090"}

	if got := GetString(c, "PORT", "8080"); got != "9090" {
		t.Errorf("Expected 9090, got %s", got)
	}
	if got := GetString(c, "MISSING", "fallback"); got != "fallback" {
		t.Errorf("Expected fallback, got %s", got)
	}
	if got := GetString(nil, "PORT", "8080"); got != "8080" {
		t.Errorf("Expected default on nil config, got %s", got)
	}
}

func TestGetInt(t *testing.T) {
	c := map[string]string{"TIMEOUT": "30", "BAD": "thirty"}

	if got := GetInt(c, "TIMEOUT", 180); got != 30 {
		t.Errorf("Expected 30, got %d", got)
	}
	if got := GetInt(c, "BAD", 180); got != 180 {
		t.Errorf("Expected default on unparsable value, got %d", got)
	}
	if got := GetInt(c, "MISSING", 180); got != 180 {
		t.Errorf("Expected default on missing key, got %d", got)
	}
}

func TestGetBool(t *testing.T) {
	c := map[string]string{"ENABLED": "true", "DISABLED": "false", "BAD": "yep"}

	if !GetBool(c, "ENABLED", false) {
		t.Error("Expected true for ENABLED")
	}
	if GetBool(c, "DISABLED", true) {
		t.Error("Expected false for DISABLED")
	}
	if !GetBool(c, "BAD", true) {
		t.Error("Expected default on unparsable value")
	}
	if GetBool(nil, "ENABLED", false) {
		t.Error("Expected default on nil config")
	}
}
