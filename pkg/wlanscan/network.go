package wlanscan

// MaxSSIDLength is the size of DOT11_SSID's byte array
const MaxSSIDLength = 32

// Network is one entry of the available network list
type Network struct {
	SSID       [MaxSSIDLength]byte
	SSIDLength uint32

	// non-empty when a profile exists for this network
	ProfileName string

	SignalQuality   uint32
	SecurityEnabled bool
}

// Connected reports whether the network carries an associated profile name
func (n Network) Connected() bool {
	return n.ProfileName != ""
}

// Hidden reports whether the network broadcasts no SSID. Length 0 or 1 with a
// leading NUL counts as hidden, anything else is printed as-is
func (n Network) Hidden() bool {
	return n.SSIDLength < 2 && n.SSID[0] == 0
}

// SSIDBytes returns the raw SSID, clamped to the array size
func (n Network) SSIDBytes() []byte {
	length := n.SSIDLength
	if length > MaxSSIDLength {
		length = MaxSSIDLength
	}

	return n.SSID[:length]
}
