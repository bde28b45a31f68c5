package extensive

import (
	"math/rand/v2"

	"github.com/idsulik/go-collections/v3/stack"
	"github.com/sw965/randgame/mathx/randx"
)

// Generate grows the tree from the root. Open decision nodes are kept on a
// LIFO worklist; a node strictly above the depth bound spawns decision
// children (Poisson branch count clamped to [MinActions, MaxActions],
// possibly zero), otherwise it spawns payoff leaves (count clamped to
// [MinPayoffs, MaxPayoffs], payoffs drawn from {-1, 1}, plus 0 when
// Config.Ties is true). Depth strictly increases along every path, so the
// loop always terminates.
//
// A Game must be generated from a single goroutine; independent games may
// generate concurrently since the id counter is per-game.
//
// Generateはルートから木を成長させます。未処理のDecisionノードはLIFOの
// ワークリストで管理されます。深さ上限より手前のノードはDecision子を、
// 上限に達したノードはPayoff葉を生みます。1つのGameの生成は単一ゴルーチンで
// 行う必要があります。独立したGame同士は並行に生成出来ます。
func (g *Game) Generate(rng *rand.Rand) {
	open := stack.New[*Node](g.Config.MaxActions)
	open.Push(g.Root)
	for {
		n, ok := open.Pop()
		if !ok {
			break
		}

		if n.Depth < g.Config.MaxDepth-1 {
			count := randx.IntByPoisson(g.Config.Lam, g.Config.MinActions, g.Config.MaxActions, rng)
			// countが0の場合、nは利得を持たない行き止まりになる（Solveが拒否する）
			for _, child := range g.AttachDecisions(n, count) {
				open.Push(child)
			}
		} else {
			count := randx.IntByPoisson(g.Config.Lam, g.Config.MinPayoffs, g.Config.MaxPayoffs, rng)
			pairs := make([]PayoffPair, count)
			for i := range pairs {
				pairs[i] = ZeroSum(randx.SignedUnit(g.Config.Ties, rng))
			}
			g.AttachPayoffs(n, pairs)
		}
	}
}
