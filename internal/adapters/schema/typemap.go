package schema

import (
	"regexp"
	"strings"

	"github.com/example/crudgen/internal/models"
)

// nativeTypes maps lowercased driver type names onto the closed NativeType set.
// Geometry, enum and network types are treated as strings and tinyint as a boolean.
var nativeTypes = map[string]models.NativeType{
	"bool":    models.NativeBoolean,
	"boolean": models.NativeBoolean,
	"tinyint": models.NativeBoolean,
	"bit":     models.NativeBoolean,

	"json":  models.NativeJSON,
	"jsonb": models.NativeJSON,

	"varchar":            models.NativeString,
	"character varying":  models.NativeString,
	"char":               models.NativeString,
	"character":          models.NativeString,
	"bpchar":             models.NativeString,
	"nchar":              models.NativeString,
	"nvarchar":           models.NativeString,
	"string":             models.NativeString,
	"citext":             models.NativeString,
	"enum":               models.NativeString,
	"set":                models.NativeString,
	"uuid":               models.NativeString,
	"inet":               models.NativeString,
	"cidr":               models.NativeString,
	"macaddr":            models.NativeString,
	"geometry":           models.NativeString,
	"point":              models.NativeString,
	"linestring":         models.NativeString,
	"polygon":            models.NativeString,
	"multipoint":         models.NativeString,
	"multilinestring":    models.NativeString,
	"multipolygon":       models.NativeString,
	"geometrycollection": models.NativeString,

	"int":       models.NativeInteger,
	"integer":   models.NativeInteger,
	"int4":      models.NativeInteger,
	"mediumint": models.NativeInteger,
	"serial":    models.NativeInteger,

	"bigint":    models.NativeBigint,
	"int8":      models.NativeBigint,
	"bigserial": models.NativeBigint,

	"smallint":    models.NativeSmallint,
	"int2":        models.NativeSmallint,
	"smallserial": models.NativeSmallint,

	"decimal": models.NativeDecimal,
	"numeric": models.NativeDecimal,
	"money":   models.NativeDecimal,

	"float":            models.NativeFloat,
	"double":           models.NativeFloat,
	"double precision": models.NativeFloat,
	"float8":           models.NativeFloat,

	"real":   models.NativeReal,
	"float4": models.NativeReal,

	"datetime":                    models.NativeDatetime,
	"datetime2":                   models.NativeDatetime,
	"timestamp":                   models.NativeDatetime,
	"timestamptz":                 models.NativeDatetime,
	"timestamp without time zone": models.NativeDatetime,
	"timestamp with time zone":    models.NativeDatetime,

	"date": models.NativeDate,
	"year": models.NativeDate,

	"time":                   models.NativeTime,
	"timetz":                 models.NativeTime,
	"time without time zone": models.NativeTime,
	"time with time zone":    models.NativeTime,

	"text":       models.NativeText,
	"tinytext":   models.NativeText,
	"mediumtext": models.NativeText,
	"longtext":   models.NativeText,
	"clob":       models.NativeText,

	"blob":       models.NativeBlob,
	"tinyblob":   models.NativeBlob,
	"mediumblob": models.NativeBlob,
	"longblob":   models.NativeBlob,
	"bytea":      models.NativeBlob,
	"binary":     models.NativeBlob,
	"varbinary":  models.NativeBlob,
}

// NativeTypeOf normalizes a driver type name such as "VARCHAR(255)" or
// "int unsigned" and looks it up. Unknown names map to NativeOther.
func NativeTypeOf(raw string) models.NativeType {
	t := strings.ToLower(strings.TrimSpace(raw))
	if strings.HasSuffix(t, "[]") || strings.HasPrefix(t, "_") {
		return models.NativeArray
	}
	if before, _, ok := strings.Cut(t, "("); ok {
		t = before
	}
	t = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(t), "unsigned"))

	if native, ok := nativeTypes[t]; ok {
		return native
	}
	return models.NativeOther
}

// trailingCast matches a postgres cast suffix such as "::character varying".
var trailingCast = regexp.MustCompile(`(?i)::[a-z_][a-z0-9_ ]*(\[\])?$`)

// NormalizeDefault strips postgres casts and surrounding quotes from a
// reported column default. A NULL default is reported as no default.
func NormalizeDefault(raw string) *string {
	v := strings.TrimSpace(trailingCast.ReplaceAllString(strings.TrimSpace(raw), ""))

	if strings.EqualFold(v, "null") {
		return nil
	}
	if len(v) >= 2 {
		first, last := v[0], v[len(v)-1]
		if (first == '\'' || first == '"') && first == last {
			v = v[1 : len(v)-1]
			v = strings.ReplaceAll(v, string(first)+string(first), string(first))
		}
	}
	return &v
}
