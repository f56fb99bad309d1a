package schema

import (
	"fmt"
	"net/netip"
	"regexp"
	"strconv"
	"strings"

	"github.com/cuemby/burrow/pkg/types"
)

// CastFunc converts one raw text token into its typed value
type CastFunc func(token string) (any, error)

var (
	intRe = regexp.MustCompile(`^-?\d+$`)
	hexRe = regexp.MustCompile(`^[0-9a-f]+$`)

	// fields whose numeric-looking values must stay strings
	// (identifiers like serial numbers, not quantities)
	literalFieldRe = regexp.MustCompile(`(?i)serial|part|asset|product`)
)

// Cast applies the generic casting rules to a raw value: comma-separated
// strings become trimmed lists, integer-looking values become ints unless
// the field name marks them as literal identifiers, everything else stays
// a string. With clean set, surrounding whitespace is stripped and an
// empty result becomes nil.
func Cast(field, value string, clean bool) any {
	if clean {
		value = strings.TrimSpace(value)
		if value == "" {
			return nil
		}
	}
	if strings.Contains(value, ",") {
		parts := strings.Split(value, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			out = append(out, strings.TrimSpace(p))
		}
		return out
	}
	if intRe.MatchString(value) && !literalFieldRe.MatchString(field) {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return value
}

// Port casts numeric or numeric-string input to a port number,
// rejecting anything outside 1..65535.
func Port(v any) (int, error) {
	var n int
	switch p := v.(type) {
	case int:
		n = p
	case string:
		var err error
		n, err = strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return 0, fmt.Errorf("%w: port %q is not a number", types.ErrBadInput, p)
		}
	default:
		return 0, fmt.Errorf("%w: port value %v", types.ErrBadInput, v)
	}
	if n < 1 || n > 65535 {
		return 0, fmt.Errorf("%w: port %d out of range 1-65535", types.ErrBadInput, n)
	}
	return n, nil
}

func castString(token string) (any, error) {
	return token, nil
}

func castInt(token string) (any, error) {
	n, err := strconv.Atoi(token)
	if err != nil {
		return nil, fmt.Errorf("expected integer, got %q", token)
	}
	return n, nil
}

func castPort(token string) (any, error) {
	n, err := Port(token)
	if err != nil {
		return nil, err
	}
	return n, nil
}

func castIPv4(token string) (any, error) {
	addr, err := netip.ParseAddr(token)
	if err != nil {
		return nil, fmt.Errorf("bad IPv4 address %q: %w", token, err)
	}
	if !addr.Is4() {
		return nil, fmt.Errorf("%q is not an IPv4 address", token)
	}
	return addr, nil
}

func castIPv6(token string) (any, error) {
	addr, err := netip.ParseAddr(token)
	if err != nil {
		return nil, fmt.Errorf("bad IPv6 address %q: %w", token, err)
	}
	if !addr.Is6() || addr.Is4In6() {
		return nil, fmt.Errorf("%q is not an IPv6 address", token)
	}
	return addr, nil
}

// castText strips the quoting resolver tools wrap character-string data
// in. Multiple quoted chunks ("long " "txt") concatenate, matching how
// tools split long TXT data on the wire boundary.
func castText(token string) (any, error) {
	if !strings.Contains(token, `"`) {
		return token, nil
	}
	var b strings.Builder
	inQuote := false
	for _, r := range token {
		if r == '"' {
			inQuote = !inQuote
			continue
		}
		if inQuote {
			b.WriteRune(r)
		}
	}
	return b.String(), nil
}

// castHex normalizes fingerprint-style data: embedded whitespace
// removed, lowercased, validated as hex. Tools disagree on chunking and
// capitalization; after this cast output is identical across backends.
func castHex(token string) (any, error) {
	h := strings.ToLower(strings.Join(strings.Fields(token), ""))
	if h == "" || !hexRe.MatchString(h) {
		return nil, fmt.Errorf("expected hex data, got %q", token)
	}
	return h, nil
}
