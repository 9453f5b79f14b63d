package game

// Scoring accumulates the running score across rounds. Each banked
// round contributes its closing distance weighted by the number of
// moves spent; the score is the mean contribution.
type Scoring struct {
	total        float64
	moves        int
	games        int
	countedMoves int
}

// AddMove records one control input in the current round.
func (s *Scoring) AddMove() {
	s.moves++
}

// ScoreAndReset banks the current round at the given closing distance
// and starts a fresh one.
func (s *Scoring) ScoreAndReset(distance float64) {
	s.total += distance * (float64(s.moves) + 20)
	s.games++
	s.countedMoves += s.moves
	s.moves = 0
}

// Score returns the mean banked contribution, or 0 before any round
// has been banked.
func (s *Scoring) Score() float64 {
	if s.games == 0 {
		return 0
	}
	return s.total / float64(s.games)
}

// Moves returns the move count of the current round.
func (s *Scoring) Moves() int {
	return s.moves
}

// Games returns the number of banked rounds.
func (s *Scoring) Games() int {
	return s.games
}

// CountedMoves returns the total moves across banked rounds.
func (s *Scoring) CountedMoves() int {
	return s.countedMoves
}
