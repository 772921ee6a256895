package domain

import "testing"

func TestParseRole(t *testing.T) {
	cases := []struct {
		in   string
		want Role
	}{
		{"CEO", RoleCEO},
		{"ENGINEER", RoleEngineer},
		{"INTERN", RoleIntern},
		{"HR", RoleHR},
		{"MANAGER", RoleManager},
		{"", RoleUnknown},
		{"ceo", RoleUnknown}, // roles are case-sensitive
		{"WIZARD", RoleUnknown},
	}

	for _, tc := range cases {
		if got := ParseRole(tc.in); got != tc.want {
			t.Errorf("ParseRole(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}
