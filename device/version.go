package device

import "fmt"

// Version is a packed Vulkan version number: major in bits 31-22,
// minor in bits 21-12, patch in bits 11-0.
type Version uint32

// MakeVersion packs major, minor and patch into a Version
func MakeVersion(major, minor, patch int) Version {
	return Version(major<<22 | minor<<12 | patch)
}

// Major is the 10 bit major component
func (v Version) Major() int {
	return int(v >> 22)
}

// Minor is the 10 bit minor component
func (v Version) Minor() int {
	return int(v >> 12 & 0x3FF)
}

// Patch is the 12 bit patch component
func (v Version) Patch() int {
	return int(v & 0xFFF)
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major(), v.Minor(), v.Patch())
}
