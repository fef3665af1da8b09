package constants

import "testing"

func TestParseRole(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		want   Role
		wantOK bool
	}{
		{name: "admin", in: "ADMIN", want: RoleAdmin, wantOK: true},
		{name: "teacher", in: "TEACHER", want: RoleTeacher, wantOK: true},
		{name: "supervisor", in: "SUPERVISOR", want: RoleSupervisor, wantOK: true},
		{name: "empty", in: "", wantOK: false},
		{name: "lowercase rejected", in: "admin", wantOK: false},
		{name: "unknown", in: "ROOT", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseRole(tt.in)
			if ok != tt.wantOK {
				t.Fatalf("ParseRole(%q) ok = %v, want %v", tt.in, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ParseRole(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestReviewersExcludeTeacher(t *testing.T) {
	for _, r := range Reviewers {
		if r == RoleTeacher {
			t.Fatal("teacher must not be a reviewer role")
		}
	}
}
