package main

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// GtpConnection exchanges Go Text Protocol commands with a controller or
// GUI over a line-oriented stream, usually stdin/stdout. Successful replies
// are "= ...", failures "? ...", both terminated by a blank line.
type GtpConnection struct {
	in       *bufio.Scanner
	out      *bufio.Writer
	board    *Board
	sim      *Simulator
	policy   Policy
	quit     bool
	commands map[string]func(args []string)
}

const (
	engineName    = "gomoku"
	engineVersion = "1.0"
)

// Column letters per GTP convention: I is skipped.
const columnLetters = "ABCDEFGHJKLMNOPQRSTUVWXYZ"

func NewGtpConnection(in io.Reader, out io.Writer, board *Board, sim *Simulator, policy Policy) *GtpConnection {
	c := &GtpConnection{
		in:     bufio.NewScanner(in),
		out:    bufio.NewWriter(out),
		board:  board,
		sim:    sim,
		policy: policy,
	}
	c.commands = map[string]func(args []string){
		"protocol_version": c.protocolVersionCmd,
		"name":             c.nameCmd,
		"version":          c.versionCmd,
		"known_command":    c.knownCommandCmd,
		"list_commands":    c.listCommandsCmd,
		"quit":             c.quitCmd,
		"boardsize":        c.boardsizeCmd,
		"clear_board":      c.clearBoardCmd,
		"komi":             c.komiCmd,
		"play":             c.playCmd,
		"genmove":          c.genmoveCmd,
		"showboard":        c.showboardCmd,
		"legal_moves":      c.legalMovesCmd,
		"policy":           c.policyCmd,
		"policy_moves":     c.policyMovesCmd,
		"num_sim":          c.numSimCmd,
	}
	return c
}

// StartConnection processes commands until quit or end of input.
func (c *GtpConnection) StartConnection() {
	for !c.quit && c.in.Scan() {
		line := strings.TrimSpace(c.in.Text())
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = strings.TrimSpace(line[:i])
		}
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		handler, ok := c.commands[fields[0]]
		if !ok {
			c.respondError("unknown command")
			continue
		}
		handler(fields[1:])
	}
	c.out.Flush()
}

func (c *GtpConnection) respond(format string, args ...any) {
	fmt.Fprintf(c.out, "= "+format+"\n\n", args...)
	c.out.Flush()
}

func (c *GtpConnection) respondError(format string, args ...any) {
	fmt.Fprintf(c.out, "? "+format+"\n\n", args...)
	c.out.Flush()
}

func (c *GtpConnection) protocolVersionCmd(args []string) { c.respond("2") }
func (c *GtpConnection) nameCmd(args []string)            { c.respond("%s", engineName) }
func (c *GtpConnection) versionCmd(args []string)         { c.respond("%s", engineVersion) }

func (c *GtpConnection) knownCommandCmd(args []string) {
	if len(args) < 1 {
		c.respondError("missing command name")
		return
	}
	_, known := c.commands[args[0]]
	c.respond("%t", known)
}

func (c *GtpConnection) listCommandsCmd(args []string) {
	names := make([]string, 0, len(c.commands))
	for name := range c.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	c.respond("%s", strings.Join(names, "\n"))
}

func (c *GtpConnection) quitCmd(args []string) {
	c.quit = true
	c.respond("")
}

func (c *GtpConnection) boardsizeCmd(args []string) {
	if len(args) < 1 {
		c.respondError("missing board size")
		return
	}
	size, err := strconv.Atoi(args[0])
	if err != nil || size < 2 || size > MaxSize {
		c.respondError("unacceptable size %s", args[0])
		return
	}
	c.board.Reset(size)
	c.respond("")
}

func (c *GtpConnection) clearBoardCmd(args []string) {
	c.board.Reset(c.board.Size())
	c.respond("")
}

func (c *GtpConnection) komiCmd(args []string) {
	// Komi has no effect on Gomoku; accepted for controller compatibility.
	c.respond("")
}

func (c *GtpConnection) playCmd(args []string) {
	if len(args) < 2 {
		c.respondError("missing color or vertex")
		return
	}
	color, err := parseGtpColor(args[0])
	if err != nil {
		c.respondError("%v", err)
		return
	}
	point, err := c.parseVertex(args[1])
	if err != nil {
		c.respondError("%v", err)
		return
	}
	if !c.board.PlayMove(point, color) {
		c.respondError("illegal move: %s %s", args[0], args[1])
		return
	}
	c.respond("")
}

func (c *GtpConnection) genmoveCmd(args []string) {
	if len(args) < 1 {
		c.respondError("missing color")
		return
	}
	color, err := parseGtpColor(args[0])
	if err != nil {
		c.respondError("%v", err)
		return
	}
	point := c.sim.Simulate(c.board, color, c.policy)
	if point == Pass {
		c.board.PlayMove(Pass, color)
		c.respond("pass")
		return
	}
	if !c.board.PlayMove(point, color) {
		c.respondError("engine generated illegal move")
		return
	}
	c.respond("%s", c.formatVertex(point))
}

func (c *GtpConnection) showboardCmd(args []string) {
	c.respond("\n%s", c.boardString())
}

func (c *GtpConnection) legalMovesCmd(args []string) {
	if len(args) < 1 {
		c.respondError("missing color")
		return
	}
	color, err := parseGtpColor(args[0])
	if err != nil {
		c.respondError("%v", err)
		return
	}
	var vertices []string
	for _, p := range c.board.GetEmptyPoints() {
		if c.board.IsLegal(p, color) {
			vertices = append(vertices, c.formatVertex(p))
		}
	}
	sort.Strings(vertices)
	c.respond("%s", strings.Join(vertices, " "))
}

func (c *GtpConnection) policyCmd(args []string) {
	if len(args) < 1 {
		c.respondError("missing policy name")
		return
	}
	policy, err := ParsePolicy(args[0])
	if err != nil {
		c.respondError("%v", err)
		return
	}
	c.policy = policy
	c.respond("")
}

// policyMovesCmd prints the candidate set the current policy would sample
// from for the side to move.
func (c *GtpConnection) policyMovesCmd(args []string) {
	var candidates []Point
	if c.policy == PolicyRandom {
		candidates = c.board.GetEmptyPoints()
	} else {
		candidates = GetOrder(c.board)
	}
	vertices := make([]string, 0, len(candidates))
	for _, p := range candidates {
		vertices = append(vertices, c.formatVertex(p))
	}
	sort.Strings(vertices)
	c.respond("%s", strings.Join(vertices, " "))
}

func (c *GtpConnection) numSimCmd(args []string) {
	if len(args) < 1 {
		c.respondError("missing trial count")
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 {
		c.respondError("unacceptable trial count %s", args[0])
		return
	}
	c.sim = NewSimulator(n, c.sim.workers, c.sim.rng)
	c.respond("")
}

func parseGtpColor(s string) (Color, error) {
	switch strings.ToLower(s) {
	case "b", "black":
		return Black, nil
	case "w", "white":
		return White, nil
	}
	return Empty, fmt.Errorf("invalid color %q", s)
}

// parseVertex converts a GTP vertex like "a1" or "J9" (or "pass") to a
// point on the current board.
func (c *GtpConnection) parseVertex(s string) (Point, error) {
	lower := strings.ToLower(s)
	if lower == "pass" {
		return Pass, nil
	}
	if len(lower) < 2 {
		return NoPoint, fmt.Errorf("invalid vertex %q", s)
	}
	col := strings.IndexByte(strings.ToLower(columnLetters), lower[0]) + 1
	row, err := strconv.Atoi(lower[1:])
	if err != nil || col < 1 || col > c.board.Size() || row < 1 || row > c.board.Size() {
		return NoPoint, fmt.Errorf("invalid vertex %q", s)
	}
	return c.board.Pt(row, col), nil
}

func (c *GtpConnection) formatVertex(p Point) string {
	if p == Pass {
		return "pass"
	}
	row, col := PointToCoord(p, c.board.Size())
	return fmt.Sprintf("%c%d", columnLetters[col-1], row)
}

// boardString renders the position with row 1 at the bottom and GTP column
// letters along the top, stones as X (black) and O (white).
func (c *GtpConnection) boardString() string {
	var sb strings.Builder
	size := c.board.Size()
	sb.WriteString("  ")
	for col := 1; col <= size; col++ {
		sb.WriteByte(' ')
		sb.WriteByte(columnLetters[col-1])
	}
	sb.WriteByte('\n')
	for row := size; row >= 1; row-- {
		fmt.Fprintf(&sb, "%2d", row)
		for col := 1; col <= size; col++ {
			sb.WriteByte(' ')
			switch c.board.ColorAt(c.board.Pt(row, col)) {
			case Black:
				sb.WriteByte('X')
			case White:
				sb.WriteByte('O')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
