package domain

import "testing"

func TestInitials(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Jane Q Public", "JQP"},
		{"Sarah Johnson", "SJ"},
		{"plato", "P"},
		{"  padded   name  ", "PN"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := Initials(tc.name); got != tc.want {
			t.Errorf("Initials(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}
