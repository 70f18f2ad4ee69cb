package craps

// Round tracks one shooter turn from come-out to resolution. Outcome flags
// stay false until a roll decides them; settlement reads the flags once the
// round is over.
type Round struct {
	stage       string
	point       int
	lastRoll    [2]int
	passWin     bool
	dontPassWin bool
	comeWin     bool
	dontComeWin bool
	over        bool
}

func newRound() *Round {
	return &Round{stage: StageComeOut}
}

func (r *Round) Stage() string {
	if r.over {
		return StageGameOver
	}
	return r.stage
}

// comeOut applies the first roll: craps numbers lose the pass line, a
// natural wins it, boxcars push, anything else becomes the point.
func (r *Round) comeOut(d1, d2 int) {
	r.lastRoll = [2]int{d1, d2}
	switch total := d1 + d2; total {
	case 2, 3:
		r.dontPassWin = true
		r.over = true
	case 12:
		r.over = true
	case 7, 11:
		r.passWin = true
		r.comeWin = true
		r.over = true
	default:
		r.point = total
		r.stage = StageBetting2
	}
}

// pointRoll applies a point-phase roll: hitting the point wins pass and
// come, a seven-out wins the don't side, anything else changes nothing.
func (r *Round) pointRoll(d1, d2 int) {
	r.lastRoll = [2]int{d1, d2}
	switch d1 + d2 {
	case r.point:
		r.passWin = true
		r.comeWin = true
		r.over = true
	case 7:
		r.dontPassWin = true
		r.dontComeWin = true
		r.over = true
	}
}

func (r *Round) state() map[string]any {
	return map[string]any{
		"stage":         r.Stage(),
		"point":         r.point,
		"last_roll":     r.lastRoll,
		"pass_win":      r.passWin,
		"dont_pass_win": r.dontPassWin,
		"come_win":      r.comeWin,
		"dont_come_win": r.dontComeWin,
	}
}
