// Package extensive provides randomly generated extensive-form two-player
// zero-sum game trees and a backward-induction solver over them.
//
// Package extensive は、ランダムに生成される展開形二人零和ゲームの木と、
// 後ろ向き帰納法によるソルバーを提供します。
package extensive

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
)

var (
	ErrInvalidConfig = errors.New("Configエラー: 生成パラメータが不正です")

	ErrInvalidPayoffArity = errors.New("Payoffエラー: 利得は2要素である必要があります")
	ErrInvalidPayoffValue = errors.New("Payoffエラー: 値が不正です（NaN/Inf）")

	ErrDegenerateNode = errors.New("Nodeエラー: 子を持たないDecisionNodeは解けません")
	ErrUnsolvedGame   = errors.New("Gameエラー: 先にSolveを呼ぶ必要があります")
)

type Player int

const (
	Player0 Player = 0
	Player1 Player = 1
)

func (p Player) Opponent() Player {
	if p == Player0 {
		return Player1
	}
	return Player0
}

// PayoffPair holds one payoff per player, indexed by Player.
//
// PayoffPairは、プレイヤー毎の利得を保持します。添字はPlayerに対応します。
type PayoffPair [2]float32

// NewPayoffPair validates an externally supplied payoff slice.
//
// NewPayoffPairは、外部から渡された利得スライスを検証して変換します。
func NewPayoffPair(vs []float32) (PayoffPair, error) {
	if len(vs) != 2 {
		return PayoffPair{}, fmt.Errorf("%w: 要素数=%d", ErrInvalidPayoffArity, len(vs))
	}
	for i, v := range vs {
		if math32.IsNaN(v) || math32.IsInf(v, 0) {
			return PayoffPair{}, fmt.Errorf("%w: idx=%d value=%v", ErrInvalidPayoffValue, i, v)
		}
	}
	return PayoffPair{vs[0], vs[1]}, nil
}

// ZeroSum builds the zero-sum pair (-v, v).
func ZeroSum(v float32) PayoffPair {
	return PayoffPair{-v, v}
}

func (pp PayoffPair) At(p Player) float32 {
	return pp[p]
}

type Kind int

const (
	KindDecision Kind = iota
	KindPayoff
)

// Node is one tree node. Kind selects the active variant: decision nodes
// carry Player/Decision/Value, payoff leaves carry Payoff. The shared fields
// ID, Depth, Parent and Children are valid for both kinds. Parent == nil
// marks the root.
//
// Nodeは木の1ノードです。Kindが変種を選びます。DecisionノードはPlayer・
// Decision・Valueを持ち、Payoff葉はPayoffを持ちます。Parentがnilならルートです。
type Node struct {
	ID       int
	Depth    int
	Parent   *Node
	Children []*Node
	Kind     Kind

	// KindDecisionでのみ意味を持つ。DecisionはSolveされるまで-1。
	Player   Player
	Decision int
	Value    PayoffPair

	// KindPayoffでのみ意味を持つ。
	Payoff PayoffPair
}

func (n *Node) IsRoot() bool {
	return n.Parent == nil
}

func (n *Node) String() string {
	if n.Kind == KindPayoff {
		return fmt.Sprintf("PayOff(id: %d, value: (%g, %g))", n.ID, n.Payoff[0], n.Payoff[1])
	}
	decisionStr := ""
	valueStr := ""
	if n.Decision >= 0 {
		decisionStr = fmt.Sprintf("selected: %d", n.Decision)
		valueStr = fmt.Sprintf("value: (%g, %g)", n.Value[0], n.Value[1])
	}
	return fmt.Sprintf("Action(id: %d, player: %d, %s, %s)", n.ID, n.Player, decisionStr, valueStr)
}
