package craps

import (
	"errors"
	"math/rand"
	"time"

	"casino-backend/games"
	"casino-backend/utils/logger"
)

const (
	StageBetting1 = "betting1"
	StageComeOut  = "come-out"
	StageBetting2 = "betting2"
	StagePoint    = "point"
	StageGameOver = "game-over"
)

const (
	BetPass     = "pass"
	BetDontPass = "dont_pass"
	BetCome     = "come"
	BetDontCome = "dont_come"
)

var (
	ErrBadBetType        = errors.New("craps: unknown bet type")
	ErrWrongStage        = errors.New("craps: bet not open in this stage")
	ErrInsufficientFunds = errors.New("craps: insufficient funds")
)

// Bets is one player's four line wagers for the current round.
type Bets struct {
	Pass     float64 `json:"pass"`
	DontPass float64 `json:"dont_pass"`
	Come     float64 `json:"come"`
	DontCome float64 `json:"dont_come"`
}

// Game is a craps table. Line bets lock in during betting1, come bets during
// betting2 once a point is on. The shooter is the only player allowed to
// roll.
type Game struct {
	ledger      games.Ledger
	rng         *rand.Rand
	players     games.Set
	waiting     games.Set
	bets        map[string]*Bets
	ready       map[string]bool
	shooter     string
	lastShooter string
	round       *Round
}

func New(ledger games.Ledger) *Game {
	return &Game{
		ledger:  ledger,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		players: games.NewSet(),
		waiting: games.NewSet(),
		bets:    make(map[string]*Bets),
		ready:   make(map[string]bool),
	}
}

func (g *Game) Stage() string {
	if g.round == nil {
		return StageBetting1
	}
	return g.round.Stage()
}

func (g *Game) Shooter() string { return g.shooter }

func (g *Game) AddPlayer(player string) {
	if g.players.Has(player) || g.waiting.Has(player) {
		return
	}
	if g.Stage() != StageBetting1 {
		g.waiting.Add(player)
		return
	}
	g.players.Add(player)
	g.bets[player] = &Bets{}
	g.ready[player] = false
	if g.shooter == "" {
		g.shooter = player
	}
}

func (g *Game) RemovePlayer(player string) {
	g.waiting.Remove(player)
	if !g.players.Has(player) {
		return
	}
	g.players.Remove(player)
	delete(g.bets, player)
	delete(g.ready, player)
	if g.players.Len() == 0 {
		g.reset()
		g.shooter = ""
		return
	}
	if g.shooter == player {
		g.chooseNextShooter()
	}
	g.checkStage()
}

func (g *Game) HasPlayer(player string) bool {
	return g.players.Has(player) || g.waiting.Has(player)
}

func (g *Game) PlayerCount() int {
	return g.players.Len() + g.waiting.Len()
}

// PlaceLineBet sets a pass or don't-pass wager during betting1. The ledger
// moves by the delta between the old and new wager before anything is
// recorded, so committed funds never drift from the table state.
func (g *Game) PlaceLineBet(player, betType string, amount float64) error {
	if g.Stage() != StageBetting1 {
		return ErrWrongStage
	}
	if betType != BetPass && betType != BetDontPass {
		return ErrBadBetType
	}
	return g.adjustBet(player, betType, amount)
}

// PlaceComeBet sets a come or don't-come wager during betting2.
func (g *Game) PlaceComeBet(player, betType string, amount float64) error {
	if g.Stage() != StageBetting2 {
		return ErrWrongStage
	}
	if betType != BetCome && betType != BetDontCome {
		return ErrBadBetType
	}
	return g.adjustBet(player, betType, amount)
}

func (g *Game) adjustBet(player, betType string, amount float64) error {
	bets, ok := g.bets[player]
	if !ok || amount < 0 {
		return ErrWrongStage
	}
	old := bets.get(betType)
	applied, err := g.ledger.UpdateBalance(player, old-amount)
	if err != nil {
		return err
	}
	if !applied {
		return ErrInsufficientFunds
	}
	bets.set(betType, amount)
	return nil
}

func (b *Bets) get(betType string) float64 {
	switch betType {
	case BetPass:
		return b.Pass
	case BetDontPass:
		return b.DontPass
	case BetCome:
		return b.Come
	case BetDontCome:
		return b.DontCome
	}
	return 0
}

func (b *Bets) set(betType string, amount float64) {
	switch betType {
	case BetPass:
		b.Pass = amount
	case BetDontPass:
		b.DontPass = amount
	case BetCome:
		b.Come = amount
	case BetDontCome:
		b.DontCome = amount
	}
}

// ReadyUp flips the player's ready flag. All-ready advances whichever
// waiting stage the table is in: betting1 starts the come-out, betting2
// opens the point rolls, game-over resets the table.
func (g *Game) ReadyUp(player string, ready bool) bool {
	if _, ok := g.ready[player]; !ok {
		return false
	}
	g.ready[player] = ready
	g.checkStage()
	return true
}

func (g *Game) allReady() bool {
	if len(g.ready) == 0 {
		return false
	}
	for _, r := range g.ready {
		if !r {
			return false
		}
	}
	return true
}

func (g *Game) checkStage() {
	if !g.allReady() {
		return
	}
	switch g.Stage() {
	case StageBetting1:
		g.clearReady()
		g.chooseNextShooter()
		g.round = newRound()
	case StageBetting2:
		g.clearReady()
		g.round.stage = StagePoint
	case StageGameOver:
		g.reset()
	}
}

func (g *Game) clearReady() {
	for player := range g.ready {
		g.ready[player] = false
	}
}

// chooseNextShooter picks uniformly among current players, rerolling so the
// previous shooter does not go again unless alone at the table.
func (g *Game) chooseNextShooter() {
	members := g.players.Members()
	if len(members) == 0 {
		g.shooter = ""
		return
	}
	g.lastShooter = g.shooter
	if len(members) == 1 {
		g.shooter = members[0]
		return
	}
	next := members[g.rng.Intn(len(members))]
	for next == g.lastShooter {
		next = members[g.rng.Intn(len(members))]
	}
	g.shooter = next
}

// RollComeOut resolves the come-out roll. Only the shooter may roll; anyone
// else is a no-op.
func (g *Game) RollComeOut(player string) bool {
	if g.round == nil || player != g.shooter || g.Stage() != StageComeOut {
		return false
	}
	g.round.comeOut(g.rollDice())
	if g.round.over {
		g.settle()
	}
	return true
}

// RollPoint resolves one point-phase roll.
func (g *Game) RollPoint(player string) bool {
	if g.round == nil || player != g.shooter || g.Stage() != StagePoint {
		return false
	}
	g.round.pointRoll(g.rollDice())
	if g.round.over {
		g.settle()
	}
	return true
}

func (g *Game) rollDice() (int, int) {
	return g.rng.Intn(6) + 1, g.rng.Intn(6) + 1
}

// settle pays every winning line 2x its wager.
func (g *Game) settle() {
	for player, bets := range g.bets {
		payout := 0.0
		if g.round.passWin {
			payout += 2 * bets.Pass
		}
		if g.round.dontPassWin {
			payout += 2 * bets.DontPass
		}
		if g.round.comeWin {
			payout += 2 * bets.Come
		}
		if g.round.dontComeWin {
			payout += 2 * bets.DontCome
		}
		if payout == 0 {
			continue
		}
		if _, err := g.ledger.UpdateBalance(player, payout); err != nil {
			logger.Errorf("craps: payout %v to %s: %v", payout, player, err)
		}
	}
}

func (g *Game) reset() {
	g.round = nil
	for _, player := range g.waiting.Members() {
		g.players.Add(player)
		g.waiting.Remove(player)
	}
	g.bets = make(map[string]*Bets)
	g.ready = make(map[string]bool)
	for player := range g.players {
		g.bets[player] = &Bets{}
		g.ready[player] = false
	}
}

func (g *Game) State(viewer string) map[string]any {
	players := make([]map[string]any, 0, g.players.Len())
	for _, player := range g.players.Members() {
		players = append(players, map[string]any{
			"player":  player,
			"bets":    g.bets[player],
			"ready":   g.ready[player],
			"shooter": player == g.shooter,
		})
	}
	state := map[string]any{
		"stage":        g.Stage(),
		"players":      players,
		"shooter":      g.shooter,
		"waiting_room": g.waiting.Members(),
	}
	if g.round != nil {
		state["round"] = g.round.state()
	}
	return state
}
