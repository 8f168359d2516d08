package cache

// Entry is one cached toolchain resolution.
type Entry struct {
	// Path is the resolved toolchain directory
	Path string `json:"path"`

	// Timestamp is the creation time in seconds since the epoch
	Timestamp int64 `json:"timestamp"`

	// NdkVersion is the Pkg.Revision of the NDK the path was resolved in
	NdkVersion string `json:"ndk_version"`

	// HostTag is the host tag the path was resolved for
	HostTag string `json:"host_tag"`
}

// Key builds the store key for an NDK root and host tag pair. The root is
// used verbatim; two spellings of the same directory occupy separate slots.
func Key(ndkRoot, hostTag string) string {
	return ndkRoot + ":" + hostTag
}
