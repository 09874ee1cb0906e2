package game

import "strconv"

// pointsPerPrice is the score of one letter per unit of cell price.
const pointsPerPrice = 10

// PendingScore is the score of the word being traced. An empty selection
// has no score at all, which is different from a valid score of zero.
type PendingScore struct {
	Points int
	Valid  bool
}

// NoScore is the pending score of an empty selection.
var NoScore = PendingScore{}

// ScoreOf returns a valid pending score.
func ScoreOf(points int) PendingScore {
	return PendingScore{Points: points, Valid: true}
}

// String returns the points, or an empty string when there is no score.
func (p PendingScore) String() string {
	if !p.Valid {
		return ""
	}
	return strconv.Itoa(p.Points)
}
