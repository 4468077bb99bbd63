package device_test

import (
	"testing"

	"github.com/vkslab/vktut/device"
)

func TestVersionRoundTrip(t *testing.T) {
	cases := []struct {
		major, minor, patch int
	}{
		{0, 0, 0},
		{1, 0, 0},
		{1, 2, 189},
		{1023, 0, 0},
		{0, 1023, 0},
		{0, 0, 4095},
		{1023, 1023, 4095},
	}

	for _, c := range cases {
		v := device.MakeVersion(c.major, c.minor, c.patch)
		if v.Major() != c.major {
			t.Errorf("MakeVersion(%d, %d, %d).Major() = %d", c.major, c.minor, c.patch, v.Major())
		}
		if v.Minor() != c.minor {
			t.Errorf("MakeVersion(%d, %d, %d).Minor() = %d", c.major, c.minor, c.patch, v.Minor())
		}
		if v.Patch() != c.patch {
			t.Errorf("MakeVersion(%d, %d, %d).Patch() = %d", c.major, c.minor, c.patch, v.Patch())
		}
	}
}

func TestVersionString(t *testing.T) {
	if s := device.MakeVersion(1, 3, 204).String(); s != "1.3.204" {
		t.Errorf("String() = %q, want 1.3.204", s)
	}
}
