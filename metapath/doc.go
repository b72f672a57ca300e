// SPDX-License-Identifier: MIT

// Package metapath classifies the repeated-metanode structure of a metapath
// and splits it into segments that can be multiplied independently.
//
// Categories:
//
//	no_repeats    every metanode occurs once          CpD, GbCtDlA
//	disjoint      each repeated type forms one block  GiGbCrC, GiGbCrCpDrD
//	short_repeat  one repeated type, ≤3 occurrences   GiG, DaGiGbC, AeGaDaGiG
//	long_repeat   one repeated type, ≥4 occurrences   GiGiGiG, GiGiGcG
//	BAAB          nested pair of repeats              GbCrCbG, DaGiGaD
//	BABA          interleaved pair of repeats         GbCbGbC, DlAeGaDaG
//	other         anything else within bounds         GiGcGiG, DaGiGaDaG
//
// Metapaths with more than two overlapping repeated types, or with more than
// five metanodes and no simpler structure, are rejected with errors wrapping
// ErrUnsupportedMetapath. These are permanent: retrying cannot succeed.
package metapath
