package extensive

import (
	"fmt"

	omwslices "github.com/sw965/omw/slices"
)

// SolveBranch solves the subtree rooted at n by backward induction and
// returns its value pair. Decision nodes are annotated in place with the
// chosen child index and the resulting value; payoff leaves are returned
// as-is. A decision node without children cannot be solved and yields
// ErrDegenerateNode.
//
// SolveBranchは、nを根とする部分木を後ろ向き帰納法で解き、その価値ペアを
// 返します。Decisionノードには選択した子のインデックスと価値がその場で
// 書き込まれます。子を持たないDecisionノードはErrDegenerateNodeになります。
func SolveBranch(n *Node) (PayoffPair, error) {
	if n.Kind == KindPayoff {
		return n.Payoff, nil
	}

	if len(n.Children) == 0 {
		return PayoffPair{}, fmt.Errorf("%w: id=%d", ErrDegenerateNode, n.ID)
	}

	childValues := make([]PayoffPair, len(n.Children))
	for i, child := range n.Children {
		v, err := SolveBranch(child)
		if err != nil {
			return PayoffPair{}, err
		}
		childValues[i] = v
	}

	forPlayer := make([]float32, len(childValues))
	for i, v := range childValues {
		forPlayer[i] = v.At(n.Player)
	}

	// 同値の場合は先頭のインデックスを採用する
	decision := omwslices.MaxIndices(forPlayer)[0]
	n.Decision = decision
	n.Value = childValues[decision]
	return n.Value, nil
}

// Solve computes the subgame-perfect equilibrium of the whole tree and marks
// the game as solved. Solving an already solved game recomputes the same
// decisions and values.
//
// Solveは木全体の部分ゲーム完全均衡を計算し、Gameを解決済みにします。
func (g *Game) Solve() error {
	if _, err := SolveBranch(g.Root); err != nil {
		return err
	}
	g.Solved = true
	return nil
}
