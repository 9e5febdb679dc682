package chess

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"
)

const svgSquareSize = 45

// squareColor holds the light/dark square fills, used only by WriteSVG.
var squareColor = [2]string{"fill:#eeeed2", "fill:#769656"}

// WriteSVG renders pos as an 8x8 SVG board diagram to w: light and dark
// squares, and each occupied square labeled with its piece glyph (see
// Piece.Glyph). It performs no chess logic; it is a pure, read-only view
// of the board for external tooling (a driver, a test fixture dump, a
// debugging aid) and never touches pos itself.
func (pos *Position) WriteSVG(w io.Writer) {
	side := 8 * svgSquareSize
	canvas := svg.New(w)
	canvas.Start(side, side)

	for rankRow := 0; rankRow < 8; rankRow++ {
		for file := 0; file < 8; file++ {
			x, y := file*svgSquareSize, rankRow*svgSquareSize
			color := squareColor[(rankRow+file)%2]
			canvas.Rect(x, y, svgSquareSize, svgSquareSize, color)

			sq := Square(rankRow*8 + file)
			p := pos.PieceAt(sq)
			if p == NoPiece {
				continue
			}
			textColor := "fill:black"
			if p.Color() == White {
				textColor = "fill:white"
			}
			canvas.Text(x+svgSquareSize/2, y+svgSquareSize*2/3,
				fmt.Sprintf("%c", p.Glyph()),
				"text-anchor:middle;font-size:28px;"+textColor)
		}
	}

	canvas.End()
}
