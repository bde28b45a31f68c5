package extensive

import (
	"fmt"
)

// Config carries the generation parameters.
//
// Configは、木の生成パラメータを保持します。
type Config struct {
	// Poisson分布の平均（分岐数の期待値）
	Lam        float64
	MaxDepth   int
	MinActions int
	MaxActions int
	MinPayoffs int
	MaxPayoffs int
	// trueの場合、利得0（引き分け）を許す
	Ties bool
}

func (c Config) Validate() error {
	if !(c.Lam > 0) {
		return fmt.Errorf("%w: Lam = %v", ErrInvalidConfig, c.Lam)
	}
	if c.MaxDepth < 1 {
		return fmt.Errorf("%w: MaxDepth = %d", ErrInvalidConfig, c.MaxDepth)
	}
	if c.MinActions < 0 {
		return fmt.Errorf("%w: MinActions = %d", ErrInvalidConfig, c.MinActions)
	}
	if c.MaxActions < c.MinActions {
		return fmt.Errorf("%w: MinActions = %d, MaxActions = %d", ErrInvalidConfig, c.MinActions, c.MaxActions)
	}
	// 0個のPayoff葉は許さない
	if c.MinPayoffs < 1 {
		return fmt.Errorf("%w: MinPayoffs = %d", ErrInvalidConfig, c.MinPayoffs)
	}
	if c.MaxPayoffs < c.MinPayoffs {
		return fmt.Errorf("%w: MinPayoffs = %d, MaxPayoffs = %d", ErrInvalidConfig, c.MinPayoffs, c.MaxPayoffs)
	}
	return nil
}

// Game owns one tree. Node ids are assigned by a per-game counter starting
// at 1 for the root, so independent games never share state.
//
// Gameは1本の木を所有します。ノードIDはゲーム毎のカウンタで採番される為、
// 独立したGame同士は状態を共有しません。
type Game struct {
	Root     *Node
	Config   Config
	NumNodes int
	Solved   bool

	nextID int
}

// New creates an ungenerated game holding only the root decision node
// (player 0, id 1, depth 0).
//
// Newは、ルートのDecisionノードのみを持つ未生成のGameを作成します。
func New(cfg Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := &Game{Config: cfg, nextID: 1}
	g.Root = &Node{ID: g.takeID(), Kind: KindDecision, Player: Player0, Decision: -1}
	g.NumNodes = 1
	return g, nil
}

func (g *Game) takeID() int {
	id := g.nextID
	g.nextID++
	return id
}

// AttachDecisions replaces n's children with count fresh decision nodes for
// the opposing player and returns them.
//
// AttachDecisionsは、nの子を相手プレイヤーのDecisionノードcount個で置き換えます。
func (g *Game) AttachDecisions(n *Node, count int) []*Node {
	next := n.Player.Opponent()
	children := make([]*Node, count)
	for i := range children {
		children[i] = &Node{
			ID:       g.takeID(),
			Depth:    n.Depth + 1,
			Parent:   n,
			Kind:     KindDecision,
			Player:   next,
			Decision: -1,
		}
	}
	n.Children = children
	g.NumNodes += count
	return children
}

// AttachPayoffs replaces n's children with one payoff leaf per pair and
// returns them. Decision children and payoff leaves never mix under one
// parent.
//
// AttachPayoffsは、nの子をpairs毎のPayoff葉で置き換えます。
// 1つの親の下でDecisionノードとPayoff葉が混在する事はありません。
func (g *Game) AttachPayoffs(n *Node, pairs []PayoffPair) []*Node {
	children := make([]*Node, len(pairs))
	for i, pair := range pairs {
		children[i] = &Node{
			ID:       g.takeID(),
			Depth:    n.Depth + 1,
			Parent:   n,
			Kind:     KindPayoff,
			Decision: -1,
			Payoff:   pair,
		}
	}
	n.Children = children
	g.NumNodes += len(pairs)
	return children
}
