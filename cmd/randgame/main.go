package main

import (
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/sw965/randgame/game/extensive"
)

type appConfig struct {
	Lam        float64 `env:"RANDGAME_LAM" env-default:"2.0"`
	MaxDepth   int     `env:"RANDGAME_MAXDEPTH" env-default:"4"`
	MinActions int     `env:"RANDGAME_MINACTIONS" env-default:"1"`
	MaxActions int     `env:"RANDGAME_MAXACTIONS" env-default:"4"`
	MinPayoffs int     `env:"RANDGAME_MINPAYOFFS" env-default:"2"`
	MaxPayoffs int     `env:"RANDGAME_MAXPAYOFFS" env-default:"4"`
	Ties       bool    `env:"RANDGAME_TIES" env-default:"false"`
	Seed1      uint64  `env:"RANDGAME_SEED1" env-default:"1"`
	Seed2      uint64  `env:"RANDGAME_SEED2" env-default:"2"`
}

func main() {
	var cfg appConfig
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatal(err)
	}

	g, err := extensive.New(extensive.Config{
		Lam:        cfg.Lam,
		MaxDepth:   cfg.MaxDepth,
		MinActions: cfg.MinActions,
		MaxActions: cfg.MaxActions,
		MinPayoffs: cfg.MinPayoffs,
		MaxPayoffs: cfg.MaxPayoffs,
		Ties:       cfg.Ties,
	})
	if err != nil {
		log.Fatal(err)
	}

	rng := rand.New(rand.NewPCG(cfg.Seed1, cfg.Seed2))
	g.Generate(rng)

	fmt.Printf("Tree with %d nodes\n", g.NumNodes)
	fmt.Print(g)

	if err := g.Solve(); err != nil {
		log.Fatal(err)
	}

	path, err := g.SolutionPath()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(path)

	values, err := g.ValueMap(extensive.Player0)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("player 0 values:", values)
}
