package bots

// Weights are the multipliers of the safety heuristic. Every term except
// Baseline is scaled by the value of the piece it concerns.
type Weights struct {
	Baseline int

	Capture   int // taking an opposing piece
	Flee      int // mover was attacked on its start square
	Exposed   int // mover can be taken on its destination
	Sacrifice int // ...but the taker would be recaptured and is worth double

	FollowUpCapture int // a safe capture awaits from the destination
	FollowUpDanger  int // follow-up square is attacked

	TakeThreatener int // move captures a piece attacking one of ours
	Protect        int // mover blocks an attack on a more valuable piece
	LeftHanging    int // another piece stays attacked
	Discovered     int // leaving the start square opens a ray onto a more valuable piece
}

// DefaultWeights is the tuning the scripted opponent ships with.
var DefaultWeights = Weights{
	Baseline:        5000,
	Capture:         125,
	Flee:            25,
	Exposed:         50,
	Sacrifice:       25,
	FollowUpCapture: 50,
	FollowUpDanger:  100,
	TakeThreatener:  50,
	Protect:         75,
	LeftHanging:     25,
	Discovered:      25,
}
