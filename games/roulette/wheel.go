package roulette

import (
	"math/rand"
	"strconv"
	"time"
)

const (
	StageBetting = "betting"
	StageReady   = "ready"
	StageEnding  = "ending"
)

var pockets = buildPockets()

func buildPockets() []string {
	ps := []string{"0", "00"}
	for i := 1; i <= 36; i++ {
		ps = append(ps, strconv.Itoa(i))
	}
	return ps
}

// Wheel holds the spin state for one betting cycle. It only spins from the
// ready stage, so a stray play message before all bets are down does
// nothing.
type Wheel struct {
	stage  string
	result string
	rng    *rand.Rand
}

func NewWheel() *Wheel {
	return &Wheel{
		stage: StageBetting,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (w *Wheel) Stage() string  { return w.stage }
func (w *Wheel) Result() string { return w.result }

// Spin picks one of the 38 pockets. Reports whether a spin happened.
func (w *Wheel) Spin() bool {
	if w.stage != StageReady {
		return false
	}
	w.result = pockets[w.rng.Intn(len(pockets))]
	w.stage = StageEnding
	return true
}

func (w *Wheel) state() map[string]any {
	s := map[string]any{"stage": w.stage}
	if w.result != "" {
		s["result"] = w.result
		s["color"] = ColorOf(w.result)
	}
	return s
}
