package classify

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/example/crudgen/internal/models"
)

// Sentinel default literals for temporal columns without an explicit default.
const (
	NowDatetime = "date('Y-m-d H:i:s')"
	NowDate     = "date('Y-m-d')"
	NowTime     = "date('H:i:s')"
)

// DefaultPolicy renders a column default into a literal, or "" for none.
type DefaultPolicy func(col models.ColumnDescriptor) string

// NativeRule maps a set of native types to a field kind.
type NativeRule struct {
	Types   []models.NativeType
	Kind    models.FieldKind
	Default DefaultPolicy
	ByName  bool // Refine the kind with the name rules
}

// NameRule maps a column name pattern to a field kind for string columns.
type NameRule struct {
	Kind    models.FieldKind
	Pattern string // Alternation without anchors, e.g. "email|mail"
	re      *regexp.Regexp
}

// Matches reports whether s matches the rule as a whole word, ignoring case.
func (r NameRule) Matches(s string) bool {
	return r.re.MatchString(s)
}

func nameRule(kind models.FieldKind, pattern string) NameRule {
	return NameRule{
		Kind:    kind,
		Pattern: pattern,
		re:      regexp.MustCompile(`(?i)^(?:` + pattern + `)$`),
	}
}

// First match wins in both tables.
var (
	nativeRules = []NativeRule{
		{Types: []models.NativeType{models.NativeBoolean}, Kind: models.FieldSwitch, Default: booleanLiteral},
		{Types: []models.NativeType{models.NativeJSON, models.NativeArray, models.NativeObject}, Kind: models.FieldText, Default: quotedLiteral},
		{Types: []models.NativeType{models.NativeString}, Kind: models.FieldText, Default: quotedLiteral, ByName: true},
		{Types: []models.NativeType{models.NativeInteger, models.NativeBigint, models.NativeSmallint, models.NativeTimestamp}, Kind: models.FieldNumber, Default: numericLiteral},
		{Types: []models.NativeType{models.NativeDecimal, models.NativeFloat, models.NativeReal}, Kind: models.FieldDecimal, Default: numericLiteral},
		{Types: []models.NativeType{models.NativeDatetime}, Kind: models.FieldDatetime, Default: temporalLiteral(NowDatetime)},
		{Types: []models.NativeType{models.NativeDate}, Kind: models.FieldDate, Default: temporalLiteral(NowDate)},
		{Types: []models.NativeType{models.NativeTime}, Kind: models.FieldTime, Default: temporalLiteral(NowTime)},
		{Types: []models.NativeType{models.NativeText, models.NativeBlob}, Kind: models.FieldTextarea, Default: quotedLiteral},
	}

	fallbackRule = NativeRule{Kind: models.FieldText, Default: quotedLiteral}

	nameRules = []NameRule{
		nameRule(models.FieldIP, "ip"),
		nameRule(models.FieldEmail, "email|mail"),
		nameRule(models.FieldPassword, "password|pwd"),
		nameRule(models.FieldURL, "url|link|src|href"),
		nameRule(models.FieldPhonenumber, "mobile|phone"),
		nameRule(models.FieldColor, "color|rgb"),
		nameRule(models.FieldImage, "image|img|avatar|pic|picture|cover"),
		nameRule(models.FieldFile, "file|attachment"),
	}
)

// NativeRules returns a copy of the ordered native type rules.
func NativeRules() []NativeRule {
	return append([]NativeRule(nil), nativeRules...)
}

// NameRules returns a copy of the ordered string column name rules.
func NameRules() []NameRule {
	return append([]NameRule(nil), nameRules...)
}

// booleanLiteral passes boolean tokens through unquoted.
func booleanLiteral(col models.ColumnDescriptor) string {
	v := strings.TrimSpace(col.DefaultValue())
	switch strings.ToLower(v) {
	case "true", "false", "1", "0":
		return v
	}
	return ""
}

// quotedLiteral renders the default as a single-quoted string literal.
// Values holding control characters use a double-quoted literal with escapes
// so the generated line stays a single line.
func quotedLiteral(col models.ColumnDescriptor) string {
	v := col.DefaultValue()
	if v == "" {
		return ""
	}
	if strings.IndexFunc(v, isControl) >= 0 {
		return doubleQuoted(v)
	}
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}

func isControl(r rune) bool {
	return r < 0x20 || r == 0x7f
}

var doubleQuotedEscapes = map[rune]string{
	'\\': `\\`,
	'"':  `\"`,
	'$':  `\$`,
	'\n': `\n`,
	'\r': `\r`,
	'\t': `\t`,
	'\v': `\v`,
	'\f': `\f`,
	0x1b: `\e`,
}

// doubleQuoted renders v as a double-quoted literal with escapes.
func doubleQuoted(v string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range v {
		if esc, ok := doubleQuotedEscapes[r]; ok {
			b.WriteString(esc)
			continue
		}
		if isControl(r) {
			fmt.Fprintf(&b, `\x%02X`, r)
			continue
		}
		b.WriteRune(r)
	}
	b.WriteByte('"')
	return b.String()
}

// numericLiteral keeps finite numeric defaults and drops the rest.
// NaN and Inf spellings parse as floats but are not numeric literals.
func numericLiteral(col models.ColumnDescriptor) string {
	v := strings.TrimSpace(col.DefaultValue())
	if v == "" {
		return ""
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return ""
	}
	if !plainNumber.MatchString(v) {
		return ""
	}
	return v
}

var plainNumber = regexp.MustCompile(`^[+-]?(?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+)(?:[eE][+-]?[0-9]+)?$`)

// temporalLiteral uses the sentinel unless the column has a concrete default.
func temporalLiteral(sentinel string) DefaultPolicy {
	return func(col models.ColumnDescriptor) string {
		if !col.HasDefault() || isNowExpression(col.DefaultValue()) {
			return sentinel
		}
		return quotedLiteral(col)
	}
}

var nowExpressions = map[string]bool{
	"current_timestamp": true,
	"current_date":      true,
	"current_time":      true,
	"localtimestamp":    true,
	"localtime":         true,
	"now":               true,
}

func isNowExpression(v string) bool {
	v = strings.ToLower(strings.TrimSpace(v))
	if i := strings.IndexByte(v, '('); i >= 0 {
		v = v[:i]
	}
	return v == "" || nowExpressions[v]
}
