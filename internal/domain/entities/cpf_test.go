package entities

import "testing"

func TestNormalizeCPF(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"111.444.777-35", "11144477735"},
		{"  111 444 777 35 ", "11144477735"},
		{"", ""},
		{"abc", ""},
	}
	for _, c := range cases {
		if got := NormalizeCPF(c.in); got != c.want {
			t.Fatalf("NormalizeCPF(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestValidCPF(t *testing.T) {
	t.Run("valid formatted", func(t *testing.T) {
		if !ValidCPF("111.444.777-35") {
			t.Fatalf("expected valid")
		}
	})

	t.Run("valid digits only", func(t *testing.T) {
		if !ValidCPF("52998224725") {
			t.Fatalf("expected valid")
		}
	})

	t.Run("wrong check digit", func(t *testing.T) {
		if ValidCPF("11144477734") {
			t.Fatalf("expected invalid")
		}
	})

	t.Run("all same digit", func(t *testing.T) {
		if ValidCPF("11111111111") {
			t.Fatalf("expected invalid")
		}
	})

	t.Run("too short", func(t *testing.T) {
		if ValidCPF("123") {
			t.Fatalf("expected invalid")
		}
	})

	t.Run("empty", func(t *testing.T) {
		if ValidCPF("") {
			t.Fatalf("expected invalid")
		}
	})
}
