// Package enumerations holds the typed SISO enumeration catalog used by the
// DIS codec (IEEE 1278.1 / 1278.1a). Real deployments regenerate this package
// from the SISO reference spreadsheet; the tables here are a hand-maintained
// subset covering every code point the codec itself inspects, written in the
// shape a generator would emit.
//
// Every enumeration follows the same convention instead of a separate
// "Unknown" wrapper type: the enum IS its wire primitive (uint8/uint16/uint32)
// with named constants layered on top, the same way the standard library
// models time.Month or http.StatusCode. Conversion is therefore a plain type
// conversion and is always total and lossless in both directions:
//
//	v := ForceId(raw)       // from_primitive: never fails, widens unknown codes
//	raw := uint8(v)         // to_primitive: exact inverse, including unknowns
//
// Some types additionally expose Known() to report whether a value matches a
// named SISO code point, and/or String() for diagnostics; the others are bare
// named constants. Where a type names a zero code point it is the
// SISO-documented default ("Other" or equivalent).
package enumerations
