// Package bitflip implements the Hyperbola Quintessence sliding-attack
// formula as a single bit-twiddling primitive, independent of any board
// representation. The teacher generates an AVX2 assembly version of this
// via github.com/mmcloughlin/avo (see its own chessdata.go, now
// superseded), benchmarked against a pure-Go fallback; we keep only that
// fallback, since producing verified machine code requires running an
// assembler.
package bitflip

import "math/bits"

// LinearAttack returns the squares attacked by a single sliding piece at
// pos along the line described by mask (a rank, file, or diagonal),
// given the full board occupancy. pos must be a single set bit.
//
// This is the "o-2r" trick applied twice, once on the board and once on
// its bit-reversal, so that a single subtraction handles both attack
// directions along the line at once.
func LinearAttack(occupied, pos, mask uint64) uint64 {
	inMask := occupied & mask
	forward := inMask - 2*pos
	reversed := bits.Reverse64(inMask) - 2*bits.Reverse64(pos)
	return (forward ^ bits.Reverse64(reversed)) & mask
}
