// Package names holds the single naming policy shared by every cityroute
// structure: how location names are compared, folded and validated.
//
// What
//
//   - Fold, Compare and Equal implement the case-insensitive ordering used by
//     the ordered index, the road deduplication check in core and every
//     name lookup. Nothing else in the module compares names directly.
//   - Validate and ValidateDistance implement the input-layer contract that
//     sits in front of the core structures: what a caller may submit as a
//     location name or a road distance.
//
// Policy
//
//	name     := letters and spaces only, at least MinNameLength runes
//	distance := integer > 0
//
// Errors
//
//   - ErrInvalidName      the name is empty, too short, or contains anything
//     other than ASCII letters and spaces.
//   - ErrInvalidDistance  the distance is zero or negative.
package names
