package bitflip

import "testing"

func TestLinearAttackOpenFile(t *testing.T) {
	pos := uint64(1) << 27 // d4-equivalent square
	mask := uint64(0x0808080808080808)
	got := LinearAttack(pos, pos, mask)
	want := mask &^ pos
	if got != want {
		t.Errorf("LinearAttack on an empty file = %064b, want %064b", got, want)
	}
}

func TestLinearAttackBlockedBothSides(t *testing.T) {
	pos := uint64(1) << 27
	mask := uint64(0x0808080808080808)
	blockerUp := uint64(1) << 35
	blockerDown := uint64(1) << 11
	occ := pos | blockerUp | blockerDown
	got := LinearAttack(occ, pos, mask)
	between := uint64(1) << 19 // empty square between pos and blockerDown
	want := blockerUp | blockerDown | between
	if got != want {
		t.Errorf("LinearAttack blocked both sides = %064b, want %064b", got, want)
	}
}

func BenchmarkLinearAttack(b *testing.B) {
	pos := uint64(1) << 27
	occ := uint64(0xFF818181818181FF)
	mask := uint64(0x0808080808080808)
	for n := 0; n < b.N; n++ {
		LinearAttack(occ, pos, mask)
	}
}
