package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"chessbot/bots"
	"chessbot/game"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	squareSize   = 80
	statusHeight = 40
	screenWidth  = squareSize * game.NumFiles
	screenHeight = squareSize*game.NumRanks + statusHeight

	buttonWidth  = 200
	buttonHeight = 60
	buttonY      = screenHeight/2 + 40
	whiteButtonX = screenWidth/2 - buttonWidth - 20
	blackButtonX = screenWidth/2 + 20
)

var (
	lightColor    = color.RGBA{240, 217, 181, 255}
	darkColor     = color.RGBA{181, 136, 99, 255}
	selectedColor = color.RGBA{120, 170, 90, 255}
	lastMoveColor = color.RGBA{205, 210, 106, 255}
	buttonColor   = color.RGBA{200, 200, 200, 255}
)

var pieceLetters = map[game.Kind]string{
	game.Pawn:   "P",
	game.Knight: "N",
	game.Bishop: "B",
	game.Rook:   "R",
	game.Queen:  "Q",
	game.King:   "K",
}

type botFactory func(player game.Player) (bots.ChessBot, error)

type Game struct {
	board       *game.Board
	turn        game.Color
	newBot      botFactory
	match       *game.Game
	bot         bots.ChessBot
	human       game.Color
	gameStarted bool
	selected    *game.Position
	status      string
	botThinking bool
	botMutex    sync.Mutex
	svgPath     string
	svgWritten  bool

	squares map[color.RGBA]*ebiten.Image
	button  *ebiten.Image
}

func NewGame(board *game.Board, turn game.Color, newBot botFactory, svgPath string) *Game {
	g := &Game{
		board:   board,
		turn:    turn,
		newBot:  newBot,
		svgPath: svgPath,
		squares: make(map[color.RGBA]*ebiten.Image),
		button:  ebiten.NewImage(buttonWidth, buttonHeight),
	}
	for _, clr := range []color.RGBA{lightColor, darkColor, selectedColor, lastMoveColor} {
		img := ebiten.NewImage(squareSize, squareSize)
		img.Fill(clr)
		g.squares[clr] = img
	}
	g.button.Fill(buttonColor)
	return g
}

// Start begins the match with the human playing human.
func (g *Game) Start(human game.Color) error {
	g.botMutex.Lock()
	defer g.botMutex.Unlock()
	return g.startGame(human)
}

// startGame must be called with botMutex held.
func (g *Game) startGame(human game.Color) error {
	bot, err := g.newBot(game.Player{Color: human.Other()})
	if err != nil {
		return err
	}
	var players [2]game.Player
	players[human] = game.Player{Color: human, Human: true}
	players[human.Other()] = game.Player{Color: human.Other()}
	g.match = game.NewGame(g.board, players[game.White], players[game.Black])
	g.match.SetTurn(g.turn)
	g.bot = bot
	g.human = human
	g.gameStarted = true
	g.status = "Your move"
	ebiten.SetWindowTitle("Chess vs " + bot.Name())
	log.Printf("human plays %v against %s", human, bot.Name())

	if g.match.Turn() != human {
		g.startBot()
	}
	return nil
}

func (g *Game) Update() error {
	g.botMutex.Lock()
	defer g.botMutex.Unlock()

	if !g.gameStarted {
		if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			return nil
		}
		if c, ok := buttonAt(ebiten.CursorPosition()); ok {
			return g.startGame(c)
		}
		return nil
	}
	if g.match.Over() {
		g.finish()
		return nil
	}
	if g.botThinking || g.match.Turn() != g.human {
		return nil
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return nil
	}

	x, y := ebiten.CursorPosition()
	if x < 0 || x >= squareSize*game.NumFiles || y < 0 || y >= squareSize*game.NumRanks {
		return nil
	}
	clicked := g.squareAt(x/squareSize, y/squareSize)
	sq := g.match.Board().At(clicked)

	if g.selected == nil || (sq.Piece != nil && sq.Piece.Color == g.human) {
		if sq.Piece != nil && sq.Piece.Color == g.human {
			g.selected = &clicked
		}
		return nil
	}

	move, err := g.match.Play(*g.selected, clicked)
	g.selected = nil
	if err != nil {
		g.status = "Invalid move, try again"
		log.Printf("human move rejected: %v", err)
		return nil
	}
	log.Printf("human: %s %v", move.Notation(), move)
	if g.match.Over() {
		g.finish()
		return nil
	}
	g.startBot()
	return nil
}

// startBot must be called with botMutex held.
func (g *Game) startBot() {
	g.botThinking = true
	g.status = g.bot.Name() + " is thinking..."
	go g.makeBotMove()
}

func (g *Game) makeBotMove() {
	g.botMutex.Lock()
	defer g.botMutex.Unlock()
	defer func() { g.botThinking = false }()

	start := time.Now()
	move := g.bot.BestMove(g.match.Board())
	if move == nil {
		log.Printf("%s: no candidate moves", g.bot.Name())
		g.match.Forfeit()
		g.finish()
		return
	}
	if err := g.match.PlayMove(*move); err != nil {
		g.status = "Bot error"
		log.Printf("%s: %v", g.bot.Name(), err)
		return
	}
	log.Printf("%s: %s %v (%v)", g.bot.Name(), move.Notation(), move, time.Since(start))

	if !g.match.Over() && len(game.GenerateMoves(g.match.Board(), g.match.Player(g.human))) == 0 {
		log.Printf("human: no candidate moves")
		g.match.Forfeit()
	}
	if g.match.Over() {
		g.finish()
		return
	}
	g.status = "Your move"
}

func (g *Game) finish() {
	if winner, ok := g.match.Winner(); ok {
		reason := "king captured"
		if !g.match.KingCaptured() {
			reason = winner.Other().String() + " has no moves"
		}
		g.status = fmt.Sprintf("%v wins - %s", winner, reason)
	}
	if g.svgPath != "" && !g.svgWritten {
		g.svgWritten = true
		if err := writeSVG(g.svgPath, g.match.Board()); err != nil {
			log.Printf("svg: %v", err)
		}
	}
}

// squareAt maps a screen cell to a board position. The human's pieces are
// drawn at the bottom.
func (g *Game) squareAt(file, row int) game.Position {
	if g.human == game.Black {
		return game.Position{X: game.NumFiles - 1 - file, Y: row}
	}
	return game.Position{X: file, Y: game.NumRanks - 1 - row}
}

func buttonAt(x, y int) (game.Color, bool) {
	if y < buttonY || y >= buttonY+buttonHeight {
		return game.White, false
	}
	switch {
	case x >= whiteButtonX && x < whiteButtonX+buttonWidth:
		return game.White, true
	case x >= blackButtonX && x < blackButtonX+buttonWidth:
		return game.Black, true
	}
	return game.White, false
}

func (g *Game) drawMenu(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, "Chess", screenWidth/2-15, buttonY-90)
	ebitenutil.DebugPrintAt(screen, "Choose your colour:", screenWidth/2-57, buttonY-50)
	for _, b := range []struct {
		x     int
		label string
	}{
		{whiteButtonX, "Play White"},
		{blackButtonX, "Play Black"},
	} {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(b.x), float64(buttonY))
		screen.DrawImage(g.button, op)
		ebitenutil.DebugPrintAt(screen, b.label, b.x+buttonWidth/2-30, buttonY+buttonHeight/2-8)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.botMutex.Lock()
	defer g.botMutex.Unlock()

	if !g.gameStarted {
		g.drawMenu(screen)
		return
	}

	var last *game.Move
	if h := g.match.History(); len(h) > 0 {
		last = &h[len(h)-1]
	}

	board := g.match.Board()
	for row := 0; row < game.NumRanks; row++ {
		for file := 0; file < game.NumFiles; file++ {
			pos := g.squareAt(file, row)
			clr := lightColor
			if (file+row)%2 == 1 {
				clr = darkColor
			}
			if last != nil && (last.From() == pos || last.To() == pos) {
				clr = lastMoveColor
			}
			if g.selected != nil && *g.selected == pos {
				clr = selectedColor
			}
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(file*squareSize), float64(row*squareSize))
			screen.DrawImage(g.squares[clr], op)

			if p := board.At(pos).Piece; p != nil {
				letter := pieceLetters[p.Kind]
				if p.Color == game.Black {
					letter = strings.ToLower(letter)
				}
				ebitenutil.DebugPrintAt(screen, letter, file*squareSize+squareSize/2-3, row*squareSize+squareSize/2-8)
			}
			if file == 0 || row == game.NumRanks-1 {
				ebitenutil.DebugPrintAt(screen, pos.String(), file*squareSize+2, row*squareSize+squareSize-16)
			}
		}
	}

	ebitenutil.DebugPrintAt(screen, g.status, 10, squareSize*game.NumRanks+12)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

var botFactories = map[string]func(game.Player, int64) bots.ChessBot{
	"heuristic": func(p game.Player, seed int64) bots.ChessBot { return bots.NewHeuristicBot(p, seed) },
	"random":    func(p game.Player, seed int64) bots.ChessBot { return bots.NewRandomBot(p, seed) },
	"newborn":   func(p game.Player, _ int64) bots.ChessBot { return bots.NewNewbornBot(p) },
}

func newBot(name string, player game.Player, seed int64, verbose bool) (bots.ChessBot, error) {
	factory, ok := botFactories[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unknown bot %q; valid: heuristic, random, newborn", name)
	}
	bot := factory(player, seed)
	if h, ok := bot.(*bots.HeuristicBot); ok {
		h.Scorer.Verbose = verbose
	}
	return bot, nil
}

func main() {
	botName := flag.String("bot", getenv("CHESS_BOT", "heuristic"), "computer opponent: heuristic, random or newborn")
	whiteBot := flag.String("white-bot", getenv("CHESS_WHITE_BOT", "random"), "bot playing White in headless mode")
	side := flag.String("color", getenv("CHESS_COLOR", ""), "play as white or black; empty shows the colour choice")
	seed := flag.Int64("seed", getenvInt("CHESS_SEED", time.Now().UnixNano()), "random seed for the bots")
	fen := flag.String("fen", getenv("CHESS_FEN", ""), "start from this FEN position instead of the opening setup")
	svgPath := flag.String("svg", getenv("CHESS_SVG", ""), "write the final position as SVG to this file")
	headless := flag.Bool("headless", getenb("CHESS_HEADLESS", false), "bot vs bot in the terminal, no window")
	maxPlies := flag.Int("max-plies", int(getenvInt("CHESS_MAX_PLIES", 300)), "headless: stop after this many plies (0 = no limit)")
	verbose := flag.Bool("verbose", getenb("CHESS_VERBOSE", false), "log every scored candidate")
	flag.Parse()

	board, turn := game.NewStandardBoard(), game.White
	if *fen != "" {
		var err error
		board, turn, err = game.ParseFEN(*fen)
		fatalIf(err, "fen")
	}
	log.Printf("seed %d", *seed)

	if *headless {
		match := game.NewGame(board, game.Player{Color: game.White}, game.Player{Color: game.Black})
		match.SetTurn(turn)
		white, err := newBot(*whiteBot, match.Player(game.White), *seed+1, *verbose)
		fatalIf(err, "white bot")
		black, err := newBot(*botName, match.Player(game.Black), *seed, *verbose)
		fatalIf(err, "bot")

		plies, err := bots.Match(match, white, black, *maxPlies, true)
		if err != nil && !errors.Is(err, bots.ErrNoMoves) {
			log.Fatalf("match: %v", err)
		}
		if winner, ok := match.Winner(); ok {
			log.Printf("%v wins after %d plies", winner, plies)
		} else {
			log.Printf("no result after %d plies: %s", plies, board.FEN(match.Turn()))
		}
		if *svgPath != "" {
			fatalIf(writeSVG(*svgPath, board), "svg")
		}
		return
	}

	g := NewGame(board, turn, func(p game.Player) (bots.ChessBot, error) {
		return newBot(*botName, p, *seed, *verbose)
	}, *svgPath)
	if *side != "" {
		human, err := parseColor(*side)
		fatalIf(err, "color")
		fatalIf(g.Start(human), "bot")
	}
	ebiten.SetWindowSize(screenWidth, screenHeight)
	if !g.gameStarted {
		ebiten.SetWindowTitle("Chess")
	}
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

func parseColor(s string) (game.Color, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "white", "w":
		return game.White, nil
	case "black", "b":
		return game.Black, nil
	}
	return game.White, fmt.Errorf("unknown colour %q; valid: white, black", s)
}

func writeSVG(path string, board *game.Board) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := board.WriteSVG(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64); err == nil {
			return n
		}
	}
	return def
}

func getenb(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "t", "yes", "y", "on":
			return true
		case "0", "false", "f", "no", "n", "off":
			return false
		}
	}
	return def
}

func fatalIf(err error, label string) {
	if err != nil {
		log.Fatalf("%s: %v", label, err)
	}
}
