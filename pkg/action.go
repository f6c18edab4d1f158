package pkg

type Action string

const (
	ActionNewGame Action = "New Game"
	ActionResign  Action = "Resign"
	ActionExit    Action = "Exit"
	ActionWin     Action = "Win"
	ActionLose    Action = "Lose"
)
