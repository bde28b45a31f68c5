package extensive

import (
	"fmt"
	"strings"

	"github.com/idsulik/go-collections/v3/queue"
)

// String renders the whole tree depth-first, one node per line, indented
// with ":-" per depth level. It does not require the game to be solved.
func (g *Game) String() string {
	var b strings.Builder
	writeTree(&b, g.Root)
	return b.String()
}

func writeTree(b *strings.Builder, n *Node) {
	b.WriteString(strings.Repeat(":-", n.Depth))
	b.WriteString(n.String())
	b.WriteByte('\n')
	for _, child := range n.Children {
		writeTree(b, child)
	}
}

// SolutionPath renders the equilibrium path: from the root, each decision
// node is followed through its stored decision down to a payoff leaf, then a
// verdict line compares the two payoff components.
//
// SolutionPathは均衡経路を文字列にします。ルートから各Decisionノードの
// 選択を辿ってPayoff葉まで進み、最後に勝敗の行を付けます。
func (g *Game) SolutionPath() (string, error) {
	if !g.Solved {
		return "", fmt.Errorf("%w: SolutionPath", ErrUnsolvedGame)
	}

	var b strings.Builder
	n := g.Root
	b.WriteString(strings.Repeat("  ", n.Depth))
	b.WriteString(n.String())
	b.WriteByte('\n')
	for n.Kind != KindPayoff {
		n = n.Children[n.Decision]
		b.WriteString(strings.Repeat(":-", n.Depth))
		b.WriteString(n.String())
		b.WriteByte('\n')
	}

	if n.Payoff[0] > n.Payoff[1] {
		b.WriteString("Player 0 wins")
	} else if n.Payoff[1] > n.Payoff[0] {
		b.WriteString("Player 1 wins")
	} else {
		b.WriteString("Player 0 and 1 draw")
	}
	return b.String(), nil
}

// ValueMap returns node id → value for player p over every node in the tree,
// breadth-first. Payoff leaves contribute their fixed payoff, decision nodes
// their computed value.
//
// ValueMapは、木の全ノードについて ノードID→プレイヤーpの価値 を返します。
func (g *Game) ValueMap(p Player) (map[int]float32, error) {
	if !g.Solved {
		return nil, fmt.Errorf("%w: ValueMap", ErrUnsolvedGame)
	}

	values := map[int]float32{}
	q := queue.New[*Node](g.NumNodes)
	q.Enqueue(g.Root)
	for {
		n, ok := q.Dequeue()
		if !ok {
			break
		}

		if n.Kind == KindPayoff {
			values[n.ID] = n.Payoff.At(p)
		} else {
			values[n.ID] = n.Value.At(p)
		}

		for _, child := range n.Children {
			q.Enqueue(child)
		}
	}
	return values, nil
}
