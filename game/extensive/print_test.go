package extensive_test

import (
	"errors"
	"maps"
	"strings"
	"testing"

	"github.com/sw965/randgame/game/extensive"
)

func TestGameString(t *testing.T) {
	g, err := extensive.New(testConfig())
	if err != nil {
		t.Fatal(err)
	}
	g.AttachPayoffs(g.Root, []extensive.PayoffPair{
		extensive.ZeroSum(-1.0),
		extensive.ZeroSum(1.0),
	})

	// Solve前でも出力出来る
	want := "Action(id: 1, player: 0, , )\n" +
		":-PayOff(id: 2, value: (1, -1))\n" +
		":-PayOff(id: 3, value: (-1, 1))\n"
	got := g.String()
	if got != want {
		t.Errorf("want:\n%s\ngot:\n%s", want, got)
	}
}

func TestSolutionPath(t *testing.T) {
	tests := []struct {
		name     string
		pairs    []extensive.PayoffPair
		wantPath string
	}{
		{
			name: "正常_プレイヤー0勝ち",
			pairs: []extensive.PayoffPair{
				extensive.ZeroSum(-1.0),
				extensive.ZeroSum(1.0),
			},
			wantPath: "Action(id: 1, player: 0, selected: 0, value: (1, -1))\n" +
				":-PayOff(id: 2, value: (1, -1))\n" +
				"Player 0 wins",
		},
		{
			name: "正常_プレイヤー1勝ち",
			pairs: []extensive.PayoffPair{
				extensive.ZeroSum(1.0),
			},
			wantPath: "Action(id: 1, player: 0, selected: 0, value: (-1, 1))\n" +
				":-PayOff(id: 2, value: (-1, 1))\n" +
				"Player 1 wins",
		},
		{
			name: "正常_引き分け",
			pairs: []extensive.PayoffPair{
				extensive.ZeroSum(0.0),
			},
			wantPath: "Action(id: 1, player: 0, selected: 0, value: (0, 0))\n" +
				":-PayOff(id: 2, value: (0, 0))\n" +
				"Player 0 and 1 draw",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Helper()
			cfg := testConfig()
			cfg.Ties = true
			g, err := extensive.New(cfg)
			if err != nil {
				t.Fatal(err)
			}
			g.AttachPayoffs(g.Root, tc.pairs)

			if err := g.Solve(); err != nil {
				t.Fatal(err)
			}

			got, err := g.SolutionPath()
			if err != nil {
				t.Fatal(err)
			}
			if got != tc.wantPath {
				t.Errorf("want:\n%s\ngot:\n%s", tc.wantPath, got)
			}
		})
	}
}

func TestSolutionPathUnsolved(t *testing.T) {
	g, err := extensive.New(testConfig())
	if err != nil {
		t.Fatal(err)
	}
	g.AttachPayoffs(g.Root, []extensive.PayoffPair{extensive.ZeroSum(1.0)})

	_, err = g.SolutionPath()
	if !errors.Is(err, extensive.ErrUnsolvedGame) {
		t.Fatalf("want: %v, got: %v", extensive.ErrUnsolvedGame, err)
	}
}

func TestSolutionPathEndsAtLeaf(t *testing.T) {
	g, err := extensive.New(testConfig())
	if err != nil {
		t.Fatal(err)
	}

	children := g.AttachDecisions(g.Root, 2)
	for _, child := range children {
		g.AttachPayoffs(child, []extensive.PayoffPair{
			extensive.ZeroSum(-1.0),
			extensive.ZeroSum(1.0),
		})
	}
	if err := g.Solve(); err != nil {
		t.Fatal(err)
	}

	got, err := g.SolutionPath()
	if err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(got, "\n")
	// ルート + 深さ1のDecision + 深さ2のPayoff + 勝敗行
	if len(lines) != 4 {
		t.Fatalf("want: 4行, got: %d行\n%s", len(lines), got)
	}
	if !strings.Contains(lines[2], "PayOff") {
		t.Errorf("経路がPayOff葉で終わっていない: %s", lines[2])
	}
}

func TestValueMap(t *testing.T) {
	g, err := extensive.New(testConfig())
	if err != nil {
		t.Fatal(err)
	}
	// ルート + Payoff葉1つの2ノード
	g.AttachPayoffs(g.Root, []extensive.PayoffPair{extensive.ZeroSum(1.0)})

	if err := g.Solve(); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		player extensive.Player
		want   map[int]float32
	}{
		{
			name:   "正常_プレイヤー0",
			player: extensive.Player0,
			want:   map[int]float32{1: -1.0, 2: -1.0},
		},
		{
			name:   "正常_プレイヤー1",
			player: extensive.Player1,
			want:   map[int]float32{1: 1.0, 2: 1.0},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Helper()
			got, err := g.ValueMap(tc.player)
			if err != nil {
				t.Fatal(err)
			}
			if !maps.Equal(got, tc.want) {
				t.Errorf("want: %v, got: %v", tc.want, got)
			}
		})
	}
}

func TestValueMapUnsolved(t *testing.T) {
	g, err := extensive.New(testConfig())
	if err != nil {
		t.Fatal(err)
	}
	g.AttachPayoffs(g.Root, []extensive.PayoffPair{extensive.ZeroSum(1.0)})

	_, err = g.ValueMap(extensive.Player0)
	if !errors.Is(err, extensive.ErrUnsolvedGame) {
		t.Fatalf("want: %v, got: %v", extensive.ErrUnsolvedGame, err)
	}
}
