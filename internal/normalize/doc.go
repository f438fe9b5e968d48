// Package normalize rewrites raw adlog field expressions into canonical
// path candidates.
//
// Rules are kept as an ordered table of (pattern, replacement, arity)
// entries and evaluated with short-circuit on the first match:
//
//  1. find(<int_var>)->second        -> key:<id>
//  2. (*<iter>.begin()).map_*        -> key:<id>.key, key:<id>.value
//  3. (*<iter>.begin()).int_*|...    -> key:<id>
//  4. <p>.common_info_attr(i).map_*  -> <p>.common_info_attr.key:<id>.key / .value
//  5. <p>.common_info_attr(i).int_*  -> <p>.common_info_attr.key:<id>
//
// Every expression also yields its call-stripped form as a fallback
// candidate; the canon package decides which candidates survive.
package normalize
