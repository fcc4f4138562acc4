package version

import "testing"

func TestIsDevelopment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		v    string
		want bool
	}{
		{name: "devel", v: "devel", want: true},
		{name: "unknown", v: "unknown", want: true},
		{name: "empty", v: "", want: true},
		{name: "dirty build", v: "v1.2.3-dirty", want: true},
		{name: "pseudo version", v: "v0.0.0-0.20250101000000-abcdef123456", want: true},
		{name: "tagged release", v: "v1.2.3", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsDevelopment(tt.v); got != tt.want {
				t.Errorf("IsDevelopment(%q) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestParseMajor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		v    string
		want string
	}{
		{name: "with v prefix", v: "v1.2.3", want: "1"},
		{name: "without v prefix", v: "2.0.0", want: "2"},
		{name: "double digit major", v: "v12.4.0", want: "12"},
		{name: "unparseable", v: "garbage", want: "0"},
		{name: "empty", v: "", want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ParseMajor(tt.v); got != tt.want {
				t.Errorf("ParseMajor(%q) = %q, want %q", tt.v, got, tt.want)
			}
		})
	}
}
