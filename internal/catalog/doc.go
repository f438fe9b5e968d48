// Package catalog reads and writes the feature catalog.
//
// A catalog maps feature names to features:
//
//	{
//	    "photo_ctr": {
//	        "adlog_fields": ["adlog.user_info.find(uid)->second.list_value(0)"],
//	        "int_var": {"uid": 5},
//	        "common_info_var": {"attr": 3}
//	    }
//	}
//
// Declaration order of features and of int_var / common_info_var entries is
// significant: the first matching variable wins during normalization, and
// the annotated catalog is written back in the same order. JSON input is
// decoded by walking encoding/json tokens for that reason, and YAML input by
// walking yaml.Node trees. Keys the generator does not interpret are kept as
// raw JSON and written back with their original literals.
package catalog
