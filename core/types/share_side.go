package types

// ShareSide selects the YES or NO side of a binary market.
type ShareSide string

const (
	ShareSideYes ShareSide = "yes"
	ShareSideNo  ShareSide = "no"
)

// Validate rejects anything but the two recognized sides.
func (s ShareSide) Validate() error {
	switch s {
	case ShareSideYes, ShareSideNo:
		return nil
	default:
		return InvalidArgumentf("share side must be one of: yes, no, got %q", string(s))
	}
}

// ShareType is the contract's boolean encoding of the side: true for YES.
func (s ShareSide) ShareType() bool {
	return s == ShareSideYes
}

// ShareSideOf maps the contract's boolean encoding back to a side.
func ShareSideOf(shareType bool) ShareSide {
	if shareType {
		return ShareSideYes
	}
	return ShareSideNo
}
