package match

import (
	"errors"
	"math/rand"
	"strconv"
	"testing"

	"github.com/Borislavv/ip-log-counter/internal/codec"
)

func TestInRange(t *testing.T) {
	cases := []struct {
		ip, start, mask string
		want            bool
	}{
		{"192.168.0.1", "192.168.0.0", "255.255.255.0", true},
		{"192.168.0.255", "192.168.0.0", "255.255.255.0", true},
		{"192.168.1.1", "192.168.0.0", "255.255.255.0", false},
		{"10.20.30.40", "10.0.0.0", "255.0.0.0", true},
		{"11.20.30.40", "10.0.0.0", "255.0.0.0", false},
		{"1.2.3.4", "9.9.9.9", "0.0.0.0", true},
		{"1.2.3.4", "1.2.3.4", "255.255.255.255", true},
		{"1.2.3.5", "1.2.3.4", "255.255.255.255", false},
		// non-contiguous mask, still per-octet
		{"10.1.99.7", "10.2.0.7", "255.0.0.255", true},
		{"1.2.3.4", "1.2.3.4", "", true},
		{"1.2.3.4", "1.2.3.5", "", false},
		{"01.2.3.4", "1.2.3.4", "", false},
	}
	for _, c := range cases {
		got, err := InRange(c.ip, c.start, c.mask)
		if err != nil {
			t.Fatalf("InRange(%q,%q,%q) err: %v", c.ip, c.start, c.mask, err)
		}
		if got != c.want {
			t.Fatalf("InRange(%q,%q,%q)=%v, want %v", c.ip, c.start, c.mask, got, c.want)
		}
	}
}

func TestInRange_MalformedOctet(t *testing.T) {
	for _, args := range [][3]string{
		{"192.168.x.1", "192.168.0.0", "255.255.255.0"},
		{"192.168.0.1", "192.168.0", "255.255.255.0"},
		{"192.168.0.1", "192.168.0.0", "255.255.256.0"},
	} {
		_, err := InRange(args[0], args[1], args[2])
		var pe *codec.ParseError
		if !errors.As(err, &pe) {
			t.Fatalf("InRange(%q) err=%v, want *codec.ParseError", args, err)
		}
	}
}

func TestInRange_MatchesBitwiseDefinition(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	quad := func() ([4]byte, string) {
		var o [4]byte
		s := ""
		for i := range o {
			o[i] = byte(r.Intn(256))
			if i > 0 {
				s += "."
			}
			s += strconv.Itoa(int(o[i]))
		}
		return o, s
	}
	for i := 0; i < 2000; i++ {
		a, as := quad()
		s, ss := quad()
		m, ms := quad()
		want := true
		for k := 0; k < 4; k++ {
			if a[k]&m[k] != s[k]&m[k] {
				want = false
			}
		}
		got, err := InRange(as, ss, ms)
		if err != nil {
			t.Fatalf("InRange err: %v", err)
		}
		if got != want {
			t.Fatalf("InRange(%s,%s,%s)=%v, want %v", as, ss, ms, got, want)
		}
	}
}

func TestFilter_Modes(t *testing.T) {
	cases := []struct {
		name, start, mask string
		ip                string
		want              bool
	}{
		{"all", "", "", "8.8.8.8", true},
		{"mask without start passes all", "", "255.255.255.0", "8.8.8.8", true},
		{"exact hit", "10.0.0.1", "", "10.0.0.1", true},
		{"exact miss", "10.0.0.1", "", "10.0.0.2", false},
		{"exact is string equality", "10.0.0.1", "", "010.0.0.1", false},
		{"range hit", "192.168.0.0", "255.255.255.0", "192.168.0.42", true},
		{"range miss", "192.168.0.0", "255.255.255.0", "192.168.3.42", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f, err := NewFilter(c.start, c.mask)
			if err != nil {
				t.Fatalf("NewFilter err: %v", err)
			}
			got, err := f.Accept(c.ip)
			if err != nil {
				t.Fatalf("Accept err: %v", err)
			}
			if got != c.want {
				t.Fatalf("Accept(%q)=%v, want %v", c.ip, got, c.want)
			}
		})
	}
}

func TestFilter_Errors(t *testing.T) {
	if _, err := NewFilter("192.168.0", "255.255.255.0"); err == nil {
		t.Fatalf("NewFilter with malformed start: want error")
	}
	if _, err := NewFilter("192.168.0.0", "255.255.x.0"); err == nil {
		t.Fatalf("NewFilter with malformed mask: want error")
	}
	if _, err := NewFilter("192.168.0.0\r", "255.255.255.0"); err == nil {
		t.Fatalf("NewFilter with carriage return in start: want error")
	}
	f, err := NewFilter("192.168.0.0", "255.255.255.0")
	if err != nil {
		t.Fatalf("NewFilter err: %v", err)
	}
	if _, err := f.Accept("not-an-ip"); err == nil {
		t.Fatalf("Accept on malformed address: want error")
	}
}

func TestFilter_String(t *testing.T) {
	cases := []struct {
		start, mask, want string
	}{
		{"", "", "any address"},
		{"10.0.0.1", "", "address 10.0.0.1"},
		{"192.168.0.7", "255.255.255.0", "range 192.168.0.0-192.168.0.255 (192.168.0.7 mask 255.255.255.0)"},
		{"10.2.0.7", "255.0.0.255", "start 10.2.0.7 mask 255.0.0.255 (non-contiguous)"},
	}
	for _, c := range cases {
		f, err := NewFilter(c.start, c.mask)
		if err != nil {
			t.Fatalf("NewFilter err: %v", err)
		}
		if got := f.String(); got != c.want {
			t.Fatalf("String()=%q, want %q", got, c.want)
		}
	}
}
