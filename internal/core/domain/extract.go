package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// MatchRuleHost is the uri match rule applied to every exported URI:
// the target system matches saved logins on host equality.
const MatchRuleHost = 2

// ExtractURIs converts a declared URL value into uris[] entries. A
// string value is split on whitespace; a mapping contributes its
// values in declaration order. Every entry must be a string.
func ExtractURIs(value any) ([]URIEntry, error) {
	var raw []any
	switch v := value.(type) {
	case string:
		for _, u := range strings.Fields(v) {
			raw = append(raw, u)
		}
	case Pairs:
		for _, pair := range v {
			raw = append(raw, pair.Value)
		}
	default:
		return nil, fmt.Errorf("%w: urls must be a string or a mapping", ErrInvalidFieldValue)
	}

	uris := make([]URIEntry, 0, len(raw))
	for _, u := range raw {
		s, ok := u.(string)
		if !ok {
			return nil, fmt.Errorf("%w: url entries must be strings", ErrInvalidFieldValue)
		}
		uris = append(uris, URIEntry{URI: s, Match: MatchRuleHost})
	}
	return uris, nil
}

// ExtractExpiration splits a MM/YY or MM/YYYY card expiration date
// into expMonth and expYear. Both parts must be numeric; a two-digit
// year is taken as 20YY. Parts are re-rendered as integers, so "07"
// exports as "7".
func ExtractExpiration(value string) (Record, error) {
	monthPart, yearPart, found := strings.Cut(value, "/")
	if !found {
		return nil, fmt.Errorf("%w: %q", ErrMalformedExpiration, value)
	}
	month, err := strconv.Atoi(strings.TrimSpace(monthPart))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrMalformedExpiration, value)
	}
	year, err := strconv.Atoi(strings.TrimSpace(yearPart))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrMalformedExpiration, value)
	}
	if year < 100 {
		year += 2000
	}
	return Record{
		"expMonth": strconv.Itoa(month),
		"expYear":  strconv.Itoa(year),
	}, nil
}

// ExtractPersonName splits a whitespace-separated full name into its
// parts. One token is a first name; two are first and last; with three
// or more, everything between the first and last tokens becomes the
// middle name. An empty name yields no fields.
func ExtractPersonName(value string) Record {
	names := strings.Fields(value)
	switch len(names) {
	case 0:
		return Record{}
	case 1:
		return Record{"firstName": names[0]}
	case 2:
		return Record{"firstName": names[0], "lastName": names[1]}
	default:
		return Record{
			"firstName":  names[0],
			"middleName": strings.Join(names[1:len(names)-1], " "),
			"lastName":   names[len(names)-1],
		}
	}
}

// ExtractStreet splits a multi-line street address into the three
// address slots. Each line is stripped of surrounding whitespace;
// lines past the second are joined by newline into address3.
func ExtractStreet(value string) Record {
	lines := strings.Split(strings.TrimSpace(value), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	street := Record{"address1": lines[0]}
	if len(lines) >= 2 {
		street["address2"] = lines[1]
	}
	if len(lines) >= 3 {
		street["address3"] = strings.Join(lines[2:], "\n")
	}
	return street
}
