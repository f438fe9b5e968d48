// Package registry reads the external id registry.
//
// The registry file is an object with a "mapping" field that maps a
// canonical path to a positional record; element 1 of the record is the
// stable numeric id assigned to that path:
//
//	{"mapping": {"key:5.list_value": ["photo_ctr", 42, "int64"]}}
//
// Paths absent from the registry are not an error here; the enum
// assignment step reports and skips them.
package registry
