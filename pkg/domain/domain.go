package domain

import (
	"bountycatch/pkg/serrors"
	"strings"
)

const (
	// MaxLength is the maximum total length of a domain name, including dots.
	MaxLength = 253
	// MaxLabelLength is the maximum length of a single label between dots.
	MaxLabelLength = 63
	// MinTLDLength is the minimum length of the final (TLD) label.
	MinTLDLength = 2
)

// Domain is a syntactically valid, lower-cased domain name. Values are
// produced by Parse (or Normalize when validation is bypassed) so that
// differently-cased spellings of the same name collide as duplicates in the
// store.
type Domain string

// Normalize lower-cases and trims a raw candidate without validating it. It is
// used when the caller explicitly opted out of validation; the result still
// gets the case-folding guarantee so duplicates collapse in the store.
func Normalize(raw string) Domain {
	return Domain(strings.ToLower(strings.TrimSpace(raw)))
}

// Parse validates a raw candidate string against the domain syntax rules and
// returns it as a lower-cased Domain.
//
// The rules are checked as an explicit grammar rather than a single pattern so
// each policy (label length, character class, hyphen placement, TLD shape,
// total length) stays auditable in isolation:
//   - no URI scheme prefix (http:// or https://) and no wildcard characters
//   - one or more dot-separated labels of 1-63 characters from [a-z0-9-],
//     with no leading or trailing hyphen
//   - at least two labels, the final one (the TLD) being 2 or more
//     alphabetic characters
//   - at most 253 characters in total
//
// Failures return a serrors.ErrInvalidDomain carrying the offending input;
// invalid input is a recoverable, reportable condition for callers.
func Parse(raw string) (Domain, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return "", serrors.With(serrors.ErrInvalidDomain, "empty domain")
	}
	if strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") {
		return "", serrors.With(serrors.ErrInvalidDomain, "domain %q must not include a URI scheme", raw)
	}
	if strings.Contains(s, "*") {
		return "", serrors.With(serrors.ErrInvalidDomain, "domain %q must not contain wildcards", raw)
	}
	if len(s) > MaxLength {
		return "", serrors.With(serrors.ErrInvalidDomain, "domain %q exceeds %d characters", raw, MaxLength)
	}

	labels := strings.Split(s, ".")
	if len(labels) < 2 {
		return "", serrors.With(serrors.ErrInvalidDomain, "domain %q has no TLD", raw)
	}
	for _, label := range labels {
		if !validLabel(label) {
			return "", serrors.With(serrors.ErrInvalidDomain, "domain %q has an invalid label %q", raw, label)
		}
	}
	if !validTLD(labels[len(labels)-1]) {
		return "", serrors.With(serrors.ErrInvalidDomain, "domain %q has an invalid TLD", raw)
	}

	return Domain(s), nil
}

// validLabel reports whether label is 1-63 characters of [a-z0-9-] with no
// leading or trailing hyphen. The input is already lower-cased by Parse.
func validLabel(label string) bool {
	if len(label) == 0 || len(label) > MaxLabelLength {
		return false
	}
	for i := 0; i < len(label); i++ {
		c := label[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9':
		case c == '-':
			if i == 0 || i == len(label)-1 {
				return false
			}
		default:
			return false
		}
	}

	return true
}

// validTLD reports whether the final label is at least two characters, all
// alphabetic.
func validTLD(label string) bool {
	if len(label) < MinTLDLength {
		return false
	}
	for i := 0; i < len(label); i++ {
		if label[i] < 'a' || label[i] > 'z' {
			return false
		}
	}

	return true
}
