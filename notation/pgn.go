/*
pgn.go implements Portable Game Notation tag-pair and movetext formatting.

Grounded on the teacher's pgn.go doc comment, which lists the PGN tag roster
but never implements SerializePGN (it returns ""). This is a real
implementation of what the teacher only sketched, scoped to the seven-tag
roster the doc comment actually describes (Event/Site/Date/Round/White/
Black/Result); the optional lichess-style extension tags (WhiteElo, ECO,
clock annotations, and so on) in the teacher's example output are out of
scope, since nothing in this package sources that data.

PGNTags itself lives on chesscore.Game rather than here, so a caller can set
it directly on the Game they are playing out; FormatTags/FormatPGN just
render a chesscore.PGNTags value, the same way FormatPosition renders a
chesscore.Position.
*/
package notation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chesscore/chesscore"
)

// FormatTags renders the tag-pair section, one bracketed line per tag, in
// the Seven Tag Roster order.
func FormatTags(t chesscore.PGNTags) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[Event %q]\n", orDefault(t.Event, "?"))
	fmt.Fprintf(&b, "[Site %q]\n", orDefault(t.Site, "?"))
	fmt.Fprintf(&b, "[Date %q]\n", orDefault(t.Date, "????.??.??"))
	fmt.Fprintf(&b, "[Round %q]\n", orDefault(t.Round, "?"))
	fmt.Fprintf(&b, "[White %q]\n", orDefault(t.White, "?"))
	fmt.Fprintf(&b, "[Black %q]\n", orDefault(t.Black, "?"))
	fmt.Fprintf(&b, "[Result %q]\n", orDefault(t.Result, "*"))
	return b.String()
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// FormatPGN renders a full PGN document: the tag-pair section, a blank line,
// and the movetext built from sanMoves (one already-formatted SAN string per
// ply, in play order), numbered in the standard "1. e4 e5 2. Nf3 ..." style,
// terminated by the result tag's value. sanMoves is typically built from
// chesscore.Game.PlayedMoves, rendered one move at a time through the SAN
// formatter in this package.
func FormatPGN(tags chesscore.PGNTags, sanMoves []string) string {
	var b strings.Builder
	b.WriteString(FormatTags(tags))
	b.WriteByte('\n')

	for i, san := range sanMoves {
		if i%2 == 0 {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.Itoa(i/2 + 1))
			b.WriteString(". ")
		} else {
			b.WriteByte(' ')
		}
		b.WriteString(san)
	}

	if len(sanMoves) > 0 {
		b.WriteByte(' ')
	}
	b.WriteString(orDefault(tags.Result, "*"))

	return b.String()
}
