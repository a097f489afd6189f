package domain

// ExtractorID identifies one of the structured-field extractors.
type ExtractorID string

// Available extractors.
const (
	// ExtractorURIs converts a URL list into uris[] entries.
	ExtractorURIs ExtractorID = "uris"

	// ExtractorFields converts a custom-field block into fields[] entries.
	ExtractorFields ExtractorID = "fields"

	// ExtractorExpiration splits a MM/YY card expiration into month and year.
	ExtractorExpiration ExtractorID = "expiration"

	// ExtractorPersonName splits a full name into first/middle/last parts.
	ExtractorPersonName ExtractorID = "person-name"

	// ExtractorStreet splits a street address into address line slots.
	ExtractorStreet ExtractorID = "street"
)

// String returns the string representation.
func (id ExtractorID) String() string {
	return string(id)
}

// PathStep is one step of an output path: either a literal mapping key
// or a reference to an extractor. Only the final step of a path may be
// an extractor.
type PathStep struct {
	// Key is the literal mapping key for this step.
	Key string

	// Extractor, when non-empty, marks this step as an extractor
	// application instead of a literal key.
	Extractor ExtractorID
}

// IsExtractor reports whether the step applies an extractor.
func (s PathStep) IsExtractor() bool {
	return s.Extractor != ""
}

func lit(key string) PathStep {
	return PathStep{Key: key}
}

func ext(id ExtractorID) PathStep {
	return PathStep{Extractor: id}
}

// FieldPath addresses a location inside an output record. All steps
// before the last are literal keys.
type FieldPath []PathStep

// Prefix returns the literal keys of every step but the last.
func (p FieldPath) Prefix() []string {
	keys := make([]string, 0, len(p)-1)
	for _, step := range p[:len(p)-1] {
		keys = append(keys, step.Key)
	}
	return keys
}

// Last returns the final step of the path.
func (p FieldPath) Last() PathStep {
	return p[len(p)-1]
}

// Numeric type identifiers in the output document.
const (
	TypeLogin      = 1
	TypeSecureNote = 2
	TypeCard       = 3
	TypeIdentity   = 4
)

// EntryType describes one supported record type.
type EntryType struct {
	// Name is the canonical type name. It is also the key of the
	// record's type-specific nested section.
	Name string

	// ID is the numeric type identifier in the output document.
	ID int

	// Fields maps canonical field names to output paths.
	Fields map[string]FieldPath

	// Aliases maps legacy field names to canonical ones.
	Aliases map[string]string
}

// Canonical resolves a declared field name through the alias table.
func (t EntryType) Canonical(field string) string {
	if canonical, ok := t.Aliases[field]; ok {
		return canonical
	}
	return field
}

var loginFields = map[string]FieldPath{
	"name":     {lit("name")},
	"username": {lit("login"), lit("username")},
	"password": {lit("login"), lit("password")},
	"totp":     {lit("login"), lit("totp")},
	"urls":     {lit("login"), ext(ExtractorURIs)},
	"fields":   {ext(ExtractorFields)},
	"notes":    {lit("notes")},
}

var loginAliases = map[string]string{
	"login_username": "username",
	"login_password": "password",
	"login_totp":     "totp",
	"login_uri":      "urls",
}

var noteFields = map[string]FieldPath{
	"name":   {lit("name")},
	"fields": {ext(ExtractorFields)},
	"notes":  {lit("notes")},
}

var cardFields = map[string]FieldPath{
	"name":   {lit("name")},
	"holder": {lit("card"), lit("cardholderName")},
	"brand":  {lit("card"), lit("brand")},
	"ccn":    {lit("card"), lit("number")},
	"exp":    {lit("card"), ext(ExtractorExpiration)},
	"cvv":    {lit("card"), lit("code")},
	"fields": {ext(ExtractorFields)},
	"notes":  {lit("notes")},
}

var identityFields = map[string]FieldPath{
	"name":     {lit("name")},
	"title":    {lit("identity"), lit("title")},
	"names":    {lit("identity"), ext(ExtractorPersonName)},
	"street":   {lit("identity"), ext(ExtractorStreet)},
	"city":     {lit("identity"), lit("city")},
	"state":    {lit("identity"), lit("state")},
	"zip":      {lit("identity"), lit("zip")},
	"country":  {lit("identity"), lit("country")},
	"company":  {lit("identity"), lit("company")},
	"email":    {lit("identity"), lit("email")},
	"phone":    {lit("identity"), lit("phone")},
	"ssn":      {lit("identity"), lit("ssn")},
	"username": {lit("identity"), lit("username")},
	"passport": {lit("identity"), lit("passport")},
	"license":  {lit("identity"), lit("license")},
	"fields":   {ext(ExtractorFields)},
	"notes":    {lit("notes")},
}

var secureNoteType = EntryType{
	Name:   "secureNote",
	ID:     TypeSecureNote,
	Fields: noteFields,
}

// entryTypes is the static registry of supported record types. Both
// "note" and "secureNote" name the secure note type.
var entryTypes = map[string]EntryType{
	"login": {
		Name:    "login",
		ID:      TypeLogin,
		Fields:  loginFields,
		Aliases: loginAliases,
	},
	"note":       secureNoteType,
	"secureNote": secureNoteType,
	"card": {
		Name:   "card",
		ID:     TypeCard,
		Fields: cardFields,
	},
	"identity": {
		Name:   "identity",
		ID:     TypeIdentity,
		Fields: identityFields,
	},
}

// LookupEntryType resolves a declared type name to its descriptor.
func LookupEntryType(name string) (EntryType, bool) {
	t, ok := entryTypes[name]
	return t, ok
}

// EntryTypeByID resolves a numeric type identifier to its descriptor.
func EntryTypeByID(id int) (EntryType, bool) {
	switch id {
	case TypeLogin:
		return entryTypes["login"], true
	case TypeSecureNote:
		return entryTypes["note"], true
	case TypeCard:
		return entryTypes["card"], true
	case TypeIdentity:
		return entryTypes["identity"], true
	default:
		return EntryType{}, false
	}
}
