// Package normalize maps the loosely named fields of model-produced JSON onto
// one canonical record shape.
//
// Each logical field has an alias table listing the key spellings accepted
// for it, in priority order. [Lookup] picks the first alias that is present
// with a non-null value; [String] and [StringList] coerce the value into the
// Go type the record expects.
package normalize
