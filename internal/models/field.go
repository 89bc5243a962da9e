package models

// FieldKind is the semantic UI input type a column is rendered as.
type FieldKind string

const (
	FieldSwitch      FieldKind = "switch"
	FieldText        FieldKind = "text"
	FieldNumber      FieldKind = "number"
	FieldDecimal     FieldKind = "decimal"
	FieldDatetime    FieldKind = "datetime"
	FieldDate        FieldKind = "date"
	FieldTime        FieldKind = "time"
	FieldTextarea    FieldKind = "textarea"
	FieldIP          FieldKind = "ip"
	FieldEmail       FieldKind = "email"
	FieldPassword    FieldKind = "password"
	FieldURL         FieldKind = "url"
	FieldPhonenumber FieldKind = "phonenumber"
	FieldColor       FieldKind = "color"
	FieldImage       FieldKind = "image"
	FieldFile        FieldKind = "file"
)

var fieldKinds = map[FieldKind]bool{
	FieldSwitch:      true,
	FieldText:        true,
	FieldNumber:      true,
	FieldDecimal:     true,
	FieldDatetime:    true,
	FieldDate:        true,
	FieldTime:        true,
	FieldTextarea:    true,
	FieldIP:          true,
	FieldEmail:       true,
	FieldPassword:    true,
	FieldURL:         true,
	FieldPhonenumber: true,
	FieldColor:       true,
	FieldImage:       true,
	FieldFile:        true,
}

// Valid reports whether k is one of the known field kinds.
func (k FieldKind) Valid() bool {
	return fieldKinds[k]
}

// FieldSpec is the classification result for a single column.
type FieldSpec struct {
	Column         string
	Kind           FieldKind
	DefaultLiteral string // Rendered literal, empty when no default is emitted
	LabelKey       string // "<resource>.<snake column>"
}

// HasDefault reports whether a default assignment should be emitted.
func (f FieldSpec) HasDefault() bool {
	return f.DefaultLiteral != ""
}
