package position

// IsDraw reports fifty-move and repetition draws (§4.9). ply is the
// number of plies since the search root, exactly as Stockfish's
// is_draw(ply) takes it: a repetition that occurred before the root is
// only worth one count toward the "draw by repetition" threshold, since
// the game's real history can't be undone, while a repetition that
// would recur at or after the root counts twice and is an immediate
// draw claim. See DESIGN.md's "Open Question resolutions" for why this is
// passed as an argument rather than tracked on Position itself.
func (pos *Position) IsDraw(ply int) bool {
	st := pos.st

	if st.Rule50 > 99 {
		if !pos.InCheck() || len(pos.LegalMoves()) > 0 {
			return true
		}
	}

	end := st.PliesFromNull
	if st.Rule50 < end {
		end = st.Rule50
	}
	if end < 4 {
		return false
	}

	stp := st.Previous
	if stp != nil {
		stp = stp.Previous
	}

	cnt := 0
	for i := 4; i <= end; i += 2 {
		if stp == nil || stp.Previous == nil {
			break
		}
		stp = stp.Previous.Previous
		if stp.Key == st.Key {
			extra := 0
			if ply > i {
				extra = 1
			}
			cnt++
			if cnt+extra == 2 {
				return true
			}
		}
	}
	return false
}
