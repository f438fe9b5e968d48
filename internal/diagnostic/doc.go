// Package diagnostic collects the non-fatal findings of a generator run.
//
// Fatal input problems are returned as errors; everything the run can
// survive is recorded here instead:
//   - canonical paths without a registry id (warning)
//   - enum identifier collisions (error, the later entry is not emitted)
//   - features that produced no canonical paths (info)
package diagnostic
