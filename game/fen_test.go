package game

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestPositionString(t *testing.T) {
	tests := map[Position]string{
		{0, 0}: "a1",
		{4, 1}: "e2",
		{7, 7}: "h8",
		{8, 0}: "(8, 0)",
	}
	for p, want := range tests {
		if got := p.String(); got != want {
			t.Errorf("%v: got %q, want %q", p.Coords(), got, want)
		}
	}
}

func TestParseFEN(t *testing.T) {
	b, turn, err := ParseFEN("4k3/8/8/3q4/8/8/4P3/4K3 b - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if turn != Black {
		t.Fatalf("turn: got %v, want Black", turn)
	}
	tests := []struct {
		x, y  int
		kind  Kind
		color Color
		value int
	}{
		{4, 7, King, Black, 25},
		{3, 4, Queen, Black, 9},
		{4, 1, Pawn, White, 1},
		{4, 0, King, White, 25},
	}
	for _, tt := range tests {
		p := b.Get(tt.x, tt.y).Piece
		if p == nil || p.Kind != tt.kind || p.Color != tt.color || p.Value != tt.value {
			t.Errorf("(%d, %d): got %+v", tt.x, tt.y, p)
		}
	}
	own, opp := b.Partition(White)
	if len(own) != 2 || len(opp) != 2 {
		t.Fatalf("expected 2+2 pieces, got %d+%d", len(own), len(opp))
	}
}

func TestParseFENWithValues(t *testing.T) {
	values := DefaultValues
	values[Bishop] = 3
	b, _, err := ParseFENWithValues("4k3/8/8/8/8/8/8/2B1K3 w - - 0 1", values)
	if err != nil {
		t.Fatalf("ParseFENWithValues: %v", err)
	}
	if got := b.Get(2, 0).Piece.Value; got != 3 {
		t.Fatalf("bishop value: got %d, want 3", got)
	}
}

func TestParseFENInvalid(t *testing.T) {
	if _, _, err := ParseFEN("not a fen"); !errors.Is(err, ErrInvalidFEN) {
		t.Fatalf("expected ErrInvalidFEN, got %v", err)
	}
}

func TestFENRoundTrip(t *testing.T) {
	b := NewStandardBoard()
	fen := b.FEN(White)
	if !strings.HasPrefix(fen, "rnbkqbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w") {
		t.Fatalf("unexpected FEN %q", fen)
	}
	parsed, turn, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	if turn != White || parsed.FEN(White) != fen {
		t.Fatalf("round trip mismatch: %q", parsed.FEN(turn))
	}
}

func TestWriteSVG(t *testing.T) {
	var buf bytes.Buffer
	if err := NewStandardBoard().WriteSVG(&buf); err != nil {
		t.Fatalf("WriteSVG: %v", err)
	}
	if !strings.Contains(buf.String(), "<svg") {
		t.Fatalf("output is not SVG: %.80s", buf.String())
	}
}
