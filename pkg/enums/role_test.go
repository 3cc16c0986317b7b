package enums

import "testing"

func TestRoleIsValid(t *testing.T) {
	if !RoleAdmin.IsValid() || !RoleUser.IsValid() {
		t.Fatalf("expected built-in roles to be valid")
	}
	if Role("owner").IsValid() {
		t.Fatalf("unknown role should not be valid")
	}
}

func TestParseRole(t *testing.T) {
	role, err := ParseRole("admin")
	if err != nil || role != RoleAdmin {
		t.Fatalf("expected admin role, got %v (%v)", role, err)
	}
	if _, err := ParseRole("superuser"); err == nil {
		t.Fatalf("expected error for unknown role")
	}
}
