package codec

import "strconv"

// ParseError reports a string that is not a dotted-quad IPv4 address.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return "codec: invalid IPv4 " + strconv.Quote(e.Input) + ": " + e.Reason
}

// ParseIPv4 returns ip in network order: A.B.C.D => A<<24|B<<16|C<<8|D
func ParseIPv4(s string) (uint32, error) {
	var ip uint32
	i := 0
	for k := 0; k < 4; k++ {
		v, n := dec3(s, i)
		if n == i {
			return 0, &ParseError{Input: s, Reason: "octet " + strconv.Itoa(k+1) + " is not a number"}
		}
		if v > 255 {
			return 0, &ParseError{Input: s, Reason: "octet " + strconv.Itoa(k+1) + " out of range"}
		}
		if k < 3 {
			if n >= len(s) || s[n] != '.' {
				return 0, &ParseError{Input: s, Reason: "expected 4 dot-separated octets"}
			}
			n++
		}
		ip = ip<<8 | v
		i = n
	}
	if i != len(s) {
		return 0, &ParseError{Input: s, Reason: "trailing characters"}
	}
	return ip, nil
}

// Octets is ParseIPv4 decomposed into its four octets, most significant first.
func Octets(s string) ([4]byte, error) {
	ip, err := ParseIPv4(s)
	if err != nil {
		return [4]byte{}, err
	}
	return [4]byte{byte(ip >> 24), byte(ip >> 16), byte(ip >> 8), byte(ip)}, nil
}

// FormatIPv4 is the inverse of ParseIPv4.
func FormatIPv4(ip uint32) string {
	b := make([]byte, 0, 15)
	b = strconv.AppendUint(b, uint64(ip>>24), 10)
	b = append(b, '.')
	b = strconv.AppendUint(b, uint64(ip>>16&0xFF), 10)
	b = append(b, '.')
	b = strconv.AppendUint(b, uint64(ip>>8&0xFF), 10)
	b = append(b, '.')
	b = strconv.AppendUint(b, uint64(ip&0xFF), 10)
	return string(b)
}

// dec3 parses up to 3 ASCII digits starting at i, returns (value, newIndex).
func dec3(s string, i int) (uint32, int) {
	n := len(s)
	if i >= n || s[i] < '0' || s[i] > '9' {
		return 0, i
	}
	v := uint32(s[i] - '0')
	i++
	if i < n && s[i] >= '0' && s[i] <= '9' {
		v = v*10 + uint32(s[i]-'0')
		i++
		if i < n && s[i] >= '0' && s[i] <= '9' {
			v = v*10 + uint32(s[i]-'0')
			i++
		}
	}
	return v, i
}
