package main

type PlayerType int

const (
	PlayerHuman PlayerType = iota
	PlayerAI
)

type GameSettings struct {
	BoardSize int
	BlackType PlayerType
	WhiteType PlayerType
	Policy    Policy
	Playouts  int
}

func DefaultGameSettings() GameSettings {
	return GameSettings{
		BoardSize: 9,
		BlackType: PlayerHuman,
		WhiteType: PlayerAI,
		Policy:    PolicyRuleBased,
		Playouts:  10,
	}
}
