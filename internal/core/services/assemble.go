package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/kenkundert/bw-export/internal/core/domain"
	"github.com/kenkundert/bw-export/internal/core/ports/driven"
	"github.com/kenkundert/bw-export/internal/logger"
)

// Assembler builds one output record per account from the account's
// declared mapping, the static entry type registry and the extractors.
type Assembler struct {
	resolver *ValueResolver
	parser   driven.FieldBlockParser
}

// NewAssembler creates a new record assembler.
func NewAssembler(resolver *ValueResolver, parser driven.FieldBlockParser) *Assembler {
	return &Assembler{
		resolver: resolver,
		parser:   parser,
	}
}

// Assemble builds the output record for account. folderID is the
// derived folder identifier, nil when the folder is disabled. Any
// failure is tagged with the account (and field, where applicable) and
// aborts the record.
func (a *Assembler) Assemble(ctx context.Context, account domain.Account, folderID *uuid.UUID) (domain.Record, error) {
	mapping := account.Export
	record := domain.Record{}

	// 1. The name is required. With a folder active it also seeds the
	// record identifier, derived from the declared name as-is, before
	// any expansion.
	nameValue, ok := mapping.Lookup("name")
	if !ok {
		return nil, &domain.ExportError{Account: account.Name, Err: domain.ErrNameMissing}
	}
	name, ok := nameValue.(string)
	if !ok {
		return nil, &domain.ExportError{
			Account: account.Name,
			Field:   "name",
			Err:     fmt.Errorf("%w: name must be a string", domain.ErrInvalidFieldValue),
		}
	}
	if folderID != nil {
		record["id"] = domain.RecordID(*folderID, name).String()
		record["folderId"] = folderID.String()
	}

	// 2. The type selects the field table and the nested section. It
	// is metadata, not an output field, so it drops out of step 3.
	typeValue, ok := mapping.Lookup("type")
	if !ok {
		return nil, &domain.ExportError{Account: account.Name, Err: domain.ErrTypeMissing}
	}
	typeName, ok := typeValue.(string)
	if !ok {
		return nil, &domain.ExportError{
			Account: account.Name,
			Field:   "type",
			Err:     fmt.Errorf("%w: must be a string", domain.ErrUnknownType),
		}
	}
	entryType, ok := domain.LookupEntryType(typeName)
	if !ok {
		return nil, &domain.ExportError{
			Account: account.Name,
			Err:     fmt.Errorf("%w %q", domain.ErrUnknownType, typeName),
		}
	}
	record["type"] = entryType.ID
	record[entryType.Name] = domain.Record{}

	// 3. Remaining fields are processed in declaration order.
	for _, pair := range mapping {
		if pair.Key == "type" {
			continue
		}
		if err := a.assembleField(ctx, account.Name, entryType, record, pair); err != nil {
			return nil, err
		}
	}

	return record, nil
}

// assembleField resolves one declared field and writes it into record.
func (a *Assembler) assembleField(
	ctx context.Context,
	account string,
	entryType domain.EntryType,
	record domain.Record,
	pair domain.Pair,
) error {
	canonical := entryType.Canonical(pair.Key)
	path, ok := entryType.Fields[canonical]
	if !ok {
		return &domain.ExportError{Account: account, Field: pair.Key, Err: domain.ErrUnknownField}
	}

	resolved, err := a.resolver.Resolve(ctx, account, pair.Value)
	if err != nil {
		return &domain.ExportError{Account: account, Field: pair.Key, Err: err}
	}

	target := path.Prefix()
	var value any
	if last := path.Last(); last.IsExtractor() {
		key, extracted, err := a.applyExtractor(last.Extractor, resolved)
		if err != nil {
			return &domain.ExportError{Account: account, Field: pair.Key, Err: err}
		}
		// An empty key merges the extracted mapping into the mapping
		// at the path prefix.
		if key != "" {
			target = append(target, key)
		}
		value = extracted
	} else {
		target = append(target, last.Key)
		value = mappingValue(resolved)
	}

	if previous, exists := record.Get(target); exists {
		if _, isMapping := previous.(domain.Record); !isMapping {
			logger.Debug("Field %s overwrites %s", pair.Key, strings.Join(target, "."))
		}
	}
	if err := record.Set(target, value); err != nil {
		return &domain.ExportError{Account: account, Field: pair.Key, Err: err}
	}
	return nil
}

// applyExtractor runs the extractor named by id against the resolved
// value. It returns the leaf key, empty when the extracted mapping
// merges into the path prefix, and the extracted value.
func (a *Assembler) applyExtractor(id domain.ExtractorID, value any) (string, any, error) {
	switch id {
	case domain.ExtractorURIs:
		uris, err := domain.ExtractURIs(value)
		if err != nil {
			return "", nil, err
		}
		return "uris", uris, nil

	case domain.ExtractorFields:
		fields, err := a.customFields(value)
		if err != nil {
			return "", nil, err
		}
		return "fields", fields, nil

	case domain.ExtractorExpiration:
		s, err := stringValue(value, "expiration")
		if err != nil {
			return "", nil, err
		}
		exp, err := domain.ExtractExpiration(s)
		if err != nil {
			return "", nil, err
		}
		return "", exp, nil

	case domain.ExtractorPersonName:
		s, err := stringValue(value, "names")
		if err != nil {
			return "", nil, err
		}
		return "", domain.ExtractPersonName(s), nil

	case domain.ExtractorStreet:
		s, err := stringValue(value, "street")
		if err != nil {
			return "", nil, err
		}
		return "", domain.ExtractStreet(s), nil

	default:
		return "", nil, fmt.Errorf("unrecognised extractor %q", id)
	}
}

// customFields converts the declared fields value into fields[]
// entries. A string value goes through the field block parser first.
func (a *Assembler) customFields(value any) ([]domain.CustomField, error) {
	var pairs domain.Pairs
	switch v := value.(type) {
	case string:
		parsed, err := a.parser.ParseFields(v)
		if err != nil {
			return nil, err
		}
		pairs = parsed
	case domain.Pairs:
		pairs = v
	default:
		return nil, fmt.Errorf("%w: fields must be a mapping or a field block", domain.ErrInvalidFieldValue)
	}

	fields := make([]domain.CustomField, 0, len(pairs))
	for _, pair := range pairs {
		s, ok := pair.Value.(string)
		if !ok {
			return nil, fmt.Errorf("%w: field %q must have a scalar value", domain.ErrInvalidFieldValue, pair.Key)
		}
		fields = append(fields, domain.CustomField{Name: pair.Key, Value: s})
	}
	return fields, nil
}

// mappingValue converts resolved Pairs into Record mappings so literal
// leaf writes merge key-by-key.
func mappingValue(value any) any {
	switch v := value.(type) {
	case domain.Pairs:
		m := domain.Record{}
		for _, pair := range v {
			m[pair.Key] = mappingValue(pair.Value)
		}
		return m
	case []any:
		out := make([]any, 0, len(v))
		for _, item := range v {
			out = append(out, mappingValue(item))
		}
		return out
	default:
		return value
	}
}

// stringValue requires a resolved value to be a scalar string.
func stringValue(value any, what string) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s must be a string", domain.ErrInvalidFieldValue, what)
	}
	return s, nil
}
