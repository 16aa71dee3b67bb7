// Package export renders a project's domain set as plain text or as a
// metadata-annotated JSON document. Formatting is a pure transformation: the
// caller fetches the domains and writes the returned bytes.
package export

import (
	"bountycatch/pkg/domain"
	"bountycatch/pkg/serrors"
	"bytes"
	"encoding/json"
	"strings"
	"time"
)

// Kind selects the export output format.
type Kind string

const (
	// KindText renders one domain per line, in list order.
	KindText Kind = "text"
	// KindJSON renders a structured document with project metadata.
	KindJSON Kind = "json"
)

// ParseKind maps a user-supplied format name to a Kind, case-insensitively.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(s)) {
	case KindText:
		return KindText, nil
	case KindJSON:
		return KindJSON, nil
	default:
		return "", serrors.With(serrors.ErrBadRequest, "unsupported export format %q", s)
	}
}

// document is the JSON export envelope.
type document struct {
	Project     string          `json:"project"`
	DomainCount int             `json:"domain_count"`
	ExportedAt  string          `json:"exported_at"`
	Domains     []domain.Domain `json:"domains"`
}

// Format renders the domain set in the requested format. Domains are emitted
// in the order given, which callers obtain from the store's sorted listing.
// The JSON document carries the export timestamp in RFC 3339 UTC, captured at
// format time.
func Format(project string, domains []domain.Domain, kind Kind) ([]byte, error) {
	switch kind {
	case KindText:
		var buf bytes.Buffer
		for _, d := range domains {
			buf.WriteString(string(d))
			buf.WriteByte('\n')
		}

		return buf.Bytes(), nil
	case KindJSON:
		doc := document{
			Project:     project,
			DomainCount: len(domains),
			ExportedAt:  time.Now().UTC().Format(time.RFC3339),
			Domains:     domains,
		}

		return json.MarshalIndent(doc, "", "  ")
	default:
		return nil, serrors.With(serrors.ErrBadRequest, "unsupported export format %q", kind)
	}
}
