package chess

// Rank-row, file, and diagonal masks used by move generation. Named
// rankRowMasks/fileMasks/diagMask/antiDiagMask rather than after
// notation ranks, since they are indexed by the physical row/file of the
// bit layout (see Square.rankRow), not by the White-relative Rank.
var (
	rankRowMasks [8]Bitboard
	fileMasks    [8]Bitboard
	diagMask     [64]Bitboard // squares sharing rankRow-file (the "\" diagonal, rank 7 on top)
	antiDiagMask [64]Bitboard // squares sharing rankRow+file (the "/" diagonal, rank 7 on top)
)

func init() {
	for i := 0; i < 8; i++ {
		rankRowMasks[i] = Bitboard(0xFF) << uint(i*8)
		fileMasks[i] = Bitboard(0x0101010101010101) << uint(i)
	}
	for sq := 0; sq < 64; sq++ {
		r, f := sq/8, sq%8
		var d, ad Bitboard
		for sq2 := 0; sq2 < 64; sq2++ {
			r2, f2 := sq2/8, sq2%8
			if r2-f2 == r-f {
				d |= Bitboard(1) << uint(sq2)
			}
			if r2+f2 == r+f {
				ad |= Bitboard(1) << uint(sq2)
			}
		}
		diagMask[sq] = d
		antiDiagMask[sq] = ad
	}
}

