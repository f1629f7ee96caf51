// Package config loads YAML files that re-rank or disable named checks
// without touching their code, e.g.:
//
//	critical:
//	  - check_missing_unit
//	skip:
//	  - check_regular_timestamps
//
// Keys are importance levels (or "skip"); values are check names. Applying
// a config to a registry produces a new derived registry; registered rules
// themselves are never mutated.
package config
