// Command chessplay is a minimal terminal front-end over the chess
// package: it prompts for game type, opponent, and (against the engine)
// player color and search depth, then runs the move loop, printing the
// board after every half-move. It exists so the repository is runnable
// end to end; it is not part of the package's tested surface.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	chess "github.com/owenkcoyle/fischerchess"
)

func main() {
	log.SetFlags(0)
	log.Println("chessplay: starting a new match")
	in := bufio.NewReader(os.Stdin)

	gameType := promptGameType(in)
	opponent := promptOpponent(in)
	playerColor := chess.White
	depth := 1
	if opponent == chess.EngineOpponent {
		playerColor = promptPlayerColor(in)
		depth = promptDepth(in)
	}

	match := chess.NewMatch(chess.MatchConfig{
		GameType:    gameType,
		Opponent:    opponent,
		PlayerColor: playerColor,
		Depth:       depth,
		RNGSeed:     time.Now().UnixNano(),
	})

	fmt.Println(match.Pos.Draw())
	for match.Outcome == chess.InProgress {
		playersTurn := opponent == chess.Human ||
			match.Turn == playerColor
		var err error
		if playersTurn {
			err = promptAndPlay(in, match)
		} else {
			_, err = match.EngineMove()
		}
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Println(match.Pos.Draw())
	}
	log.Printf("chessplay: match finished (%s)", match.Outcome)
}

func promptGameType(in *bufio.Reader) chess.GameType {
	for {
		fmt.Print("Play [c]hess or c[h]ess960? ")
		switch readUpper(in) {
		case "C":
			return chess.Orthodox
		case "H":
			return chess.Chess960
		}
	}
}

func promptOpponent(in *bufio.Reader) chess.Opponent {
	for {
		fmt.Print("Verse [p]layer or [e]ngine? ")
		switch readUpper(in) {
		case "P":
			return chess.Human
		case "E":
			return chess.EngineOpponent
		}
	}
}

func promptPlayerColor(in *bufio.Reader) chess.Color {
	for {
		fmt.Print("Play as [w]hite or [b]lack? ")
		switch readUpper(in) {
		case "W":
			return chess.White
		case "B":
			return chess.Black
		}
	}
}

func promptDepth(in *bufio.Reader) int {
	for {
		fmt.Print("What engine depth (int 1-5)? ")
		line := readLine(in)
		d, err := strconv.Atoi(line)
		if err == nil && d >= 1 && d <= 5 {
			return d
		}
	}
}

// promptAndPlay asks for a move in the five-character wire token's
// coordinate shorthand (from-file from-rank to-file to-rank, each
// 0-7), retrying on illegal input, then resolves any promotion or
// castle ambiguity exactly as the move token requires before calling
// match.Play.
func promptAndPlay(in *bufio.Reader, match *chess.Match) error {
	legal := match.Pos.PossibleMoves(match.Turn)
	for {
		fmt.Print("Choose your move (xyxy) ")
		coords := readLine(in)
		if len(coords) != 4 {
			continue
		}
		token := " " + coords
		if !strings.Contains(legal, token) {
			// might still be legal under a promotion or castle tag
			token = findTaggedToken(legal, coords, in)
			if token == "" {
				fmt.Println("illegal move")
				continue
			}
		}
		return match.Play(token)
	}
}

func findTaggedToken(legal, coords string, in *bufio.Reader) string {
	for i := 0; i+5 <= len(legal); i += 5 {
		tok := legal[i : i+5]
		if tok[1:] != coords {
			continue
		}
		tag := tok[0]
		switch {
		case tag == 'Q' || tag == 'R' || tag == 'B' || tag == 'N' ||
			tag == 'q' || tag == 'r' || tag == 'b' || tag == 'n':
			return promptPromotion(legal, coords, in)
		case tag == 'C' || tag == 'c':
			return tok
		}
	}
	return ""
}

func promptPromotion(legal, coords string, in *bufio.Reader) string {
	for {
		fmt.Print("Promote to what (N/B/R/Q)? ")
		choice := readUpper(in)
		for i := 0; i+5 <= len(legal); i += 5 {
			tok := legal[i : i+5]
			if tok[1:] == coords && strings.EqualFold(string(tok[0]), choice) {
				return tok
			}
		}
	}
}

func readLine(in *bufio.Reader) string {
	line, err := in.ReadString('\n')
	if err != nil && err != io.EOF {
		log.Fatalf("chessplay: reading input: %v", err)
	}
	if err == io.EOF && line == "" {
		log.Fatal("chessplay: input closed")
	}
	return strings.TrimSpace(line)
}

func readUpper(in *bufio.Reader) string {
	return strings.ToUpper(readLine(in))
}
