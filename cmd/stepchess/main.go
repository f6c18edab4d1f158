package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"stepchess/pkg"
	"stepchess/pkg/engine"
	"stepchess/pkg/gui"
)

const helpText = "commands: e2 (show moves) | e2e4 (move) | auto | undo | redo | new | quit"

func main() {
	logPath := flag.String("log", "./stepchess.log", "path to log file")
	themeName := flag.String("theme", "basic", "theme name")
	themesPath := flag.String("themes", "", "path to a JSON theme file")
	tickRate := flag.Duration("tick", 10*time.Millisecond, "engine tick interval")
	connect := flag.String("connect", "", "play remotely against the server at this address")
	matchId := flag.String("match", "", "match id to join (remote play)")
	vsComputer := flag.Bool("computer", false, "ask the server for a computer opponent (remote play)")
	flag.Parse()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		color.Red("stepchess needs an interactive terminal")
		os.Exit(1)
	}

	if *connect != "" {
		pkg.InitLog(*logPath, "CLIENT: ")
		runRemote(*connect, *matchId, *vsComputer)
		return
	}

	pkg.InitLog(*logPath, "LOCAL: ")
	theme, err := loadTheme(*themeName, *themesPath)
	if err != nil {
		color.Red("%v", err)
		os.Exit(1)
	}
	runLocal(theme, *tickRate)
}

// runRemote hands the terminal to the tview network client.
func runRemote(addr, matchId string, vsComputer bool) {
	cl := pkg.NewClient()
	cl.Connect(addr, matchId, vsComputer)
	go cl.HandleRead()
	go cl.HandleWrite()
	defer cl.Disconnect()
	if err := cl.App.SetRoot(cl.Layout, true).EnableMouse(true).Run(); err != nil {
		log.Printf("client stopped: %v", err)
	}
}

// runLocal plays on a tcell screen against the built-in selector. A timer
// drives the engine one micro-step per tick, so searches animate instead of
// blocking the event loop.
func runLocal(theme gui.Theme, tickRate time.Duration) {
	s, err := tcell.NewScreen()
	if err != nil {
		color.Red("%v", err)
		os.Exit(1)
	}
	if err := s.Init(); err != nil {
		color.Red("%v", err)
		os.Exit(1)
	}
	s.SetStyle(gui.DefStyle)

	gs := gui.NewGameState(s)
	gs.Theme = theme
	gs.Msg = helpText

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			events <- s.PollEvent()
		}
	}()

	tick := time.NewTicker(tickRate)
	defer tick.Stop()

	gui.Render(gs)
	for {
		select {
		case <-tick.C:
			if gs.Eng.Busy() {
				gs.Thinking = gs.Eng.Tick()
				gui.Render(gs)
			}

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				s.Sync()
				gui.Render(gs)
			case *tcell.EventKey:
				if !handleKey(gs, ev) {
					s.Fini()
					exitReport(gs.Eng)
					return
				}
				gui.Render(gs)
			}
		}
	}
}

func handleKey(gs *gui.GameState, ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		gs.Input.Backspace()
	case tcell.KeyEnter:
		return execute(gs, gs.Input.Pop())
	case tcell.KeyRune:
		gs.Input.Append(ev.Rune())
	}
	return true
}

// execute runs one typed command. It reports false when the game should end.
func execute(gs *gui.GameState, cmd string) bool {
	cmd = strings.ToLower(strings.TrimSpace(cmd))
	log.Printf("Command: %q", cmd)
	switch cmd {
	case "":
	case "quit", "exit", "q":
		return false
	case "new":
		gs.Eng.NewGame()
		gs.Msg = "new game"
	case "undo":
		if gs.Eng.Undo() {
			gs.Msg = "took back a move"
		} else {
			gs.Msg = "nothing to undo"
		}
	case "redo":
		if gs.Eng.Redo() {
			gs.Msg = "replayed the move"
		} else {
			gs.Msg = "nothing to redo"
		}
	case "auto":
		gs.Eng.RequestAutoMove(gs.Eng.ColorToMove())
		gs.Thinking = true
		gs.Msg = ""
	case "help":
		gs.Msg = helpText
	default:
		executeMove(gs, cmd)
	}
	return true
}

func executeMove(gs *gui.GameState, cmd string) {
	if sq, ok := engine.ParseSquare(cmd); ok {
		gs.Eng.SelectSquare(sq)
		gs.Msg = fmt.Sprintf("moves from %s", sq)
		return
	}
	if len(cmd) == 4 {
		from, okFrom := engine.ParseSquare(cmd[:2])
		to, okTo := engine.ParseSquare(cmd[2:])
		if okFrom && okTo {
			if gs.Eng.Move(from, to) {
				gs.Msg = ""
				// The selector answers for the other side.
				gs.Eng.RequestAutoMove(gs.Eng.ColorToMove())
				gs.Thinking = true
			} else {
				gs.Msg = fmt.Sprintf("illegal move %s", cmd)
			}
			return
		}
	}
	gs.Msg = fmt.Sprintf("unknown command %q", cmd)
}

func loadTheme(name, path string) (gui.Theme, error) {
	if path == "" {
		if name != "" && name != gui.ThemeBasic.Name {
			return gui.Theme{}, fmt.Errorf("theme %q needs a -themes file", name)
		}
		return gui.ThemeBasic, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return gui.Theme{}, err
	}
	var themes []gui.ThemeHex
	if err := json.Unmarshal(data, &themes); err != nil {
		return gui.Theme{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return gui.ImportThemes(name, themes)
}

// exitReport prints where the game stood when the screen went down.
func exitReport(eng *engine.Engine) {
	bold := color.New(color.Bold)
	bold.Printf("stepchess: %d plies played\n", eng.PlyCount())
	fmt.Printf("position: %s\n", eng.FEN())
	score := eng.Score()
	switch {
	case score > 0:
		color.Green("white is up %d", score)
	case score < 0:
		color.Red("black is up %d", -score)
	default:
		fmt.Println("material is level")
	}
}
