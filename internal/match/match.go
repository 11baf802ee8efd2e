// Package match decides whether an IPv4 address belongs to a configured
// address range: a start address plus an optional subnet mask.
package match

import (
	"fmt"
	"math/bits"
	"net/netip"

	"github.com/Borislavv/ip-log-counter/internal/codec"
	"go4.org/netipx"
)

// InRange reports whether every octet of ip equals the matching octet of
// start once both are ANDed with the mask octet. An empty mask means exact
// string equality with start. Malformed octets yield a *codec.ParseError.
func InRange(ip, start, mask string) (bool, error) {
	if mask == "" {
		return ip == start, nil
	}
	a, err := codec.Octets(ip)
	if err != nil {
		return false, err
	}
	s, err := codec.Octets(start)
	if err != nil {
		return false, err
	}
	m, err := codec.Octets(mask)
	if err != nil {
		return false, err
	}
	return masked(a, s, m), nil
}

func masked(ip, start, mask [4]byte) bool {
	for i := 0; i < 4; i++ {
		if ip[i]&mask[i] != start[i]&mask[i] {
			return false
		}
	}
	return true
}

type mode uint8

const (
	modeAll mode = iota
	modeExact
	modeRange
)

// Filter is an address filter with start and mask parsed once up front.
type Filter struct {
	mode  mode
	start string
	mask  string
	so    [4]byte
	mo    [4]byte
}

// NewFilter builds the filter the scanner applies:
//   - start and mask set: subnet containment (InRange);
//   - only start set: exact string equality;
//   - start unset: every address passes, whatever the mask.
func NewFilter(start, mask string) (*Filter, error) {
	switch {
	case start == "":
		return &Filter{mode: modeAll, mask: mask}, nil
	case mask == "":
		return &Filter{mode: modeExact, start: start}, nil
	}
	so, err := codec.Octets(start)
	if err != nil {
		return nil, fmt.Errorf("address start: %w", err)
	}
	mo, err := codec.Octets(mask)
	if err != nil {
		return nil, fmt.Errorf("address mask: %w", err)
	}
	return &Filter{mode: modeRange, start: start, mask: mask, so: so, mo: mo}, nil
}

// Accept reports whether ip passes the filter. In range mode a malformed ip
// is an error, not a miss.
func (f *Filter) Accept(ip string) (bool, error) {
	switch f.mode {
	case modeExact:
		return ip == f.start, nil
	case modeRange:
		a, err := codec.Octets(ip)
		if err != nil {
			return false, err
		}
		return masked(a, f.so, f.mo), nil
	default:
		return true, nil
	}
}

func (f *Filter) String() string {
	switch f.mode {
	case modeExact:
		return "address " + f.start
	case modeRange:
		if r, ok := f.prefixRange(); ok {
			return "range " + r.String() + " (" + f.start + " mask " + f.mask + ")"
		}
		return "start " + f.start + " mask " + f.mask + " (non-contiguous)"
	default:
		return "any address"
	}
}

// prefixRange returns the covered range when the mask is a contiguous prefix.
func (f *Filter) prefixRange() (netipx.IPRange, bool) {
	m := uint32(f.mo[0])<<24 | uint32(f.mo[1])<<16 | uint32(f.mo[2])<<8 | uint32(f.mo[3])
	if inv := ^m; inv&(inv+1) != 0 {
		return netipx.IPRange{}, false
	}
	p := netip.PrefixFrom(netip.AddrFrom4(f.so), bits.OnesCount32(m)).Masked()
	return netipx.RangeOfPrefix(p), true
}
