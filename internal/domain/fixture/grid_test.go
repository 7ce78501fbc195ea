package fixture

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func sampleGrid() []string {
	return []string{
		"Home \\ Away\tARS\tAST\tCHE",
		"Arsenal\t\t2–1\t3–0",
		"Aston Villa\t0–0\t\t1–1",
		"Chelsea\t1–2\t0–4\t",
	}
}

func TestParseGrid(t *testing.T) {
	got, err := ParseGrid(sampleGrid())
	if err != nil {
		t.Fatalf("parse grid: %v", err)
	}

	want := []Fixture{
		{Home: "ARS", Away: "AST", HomeScore: 2, AwayScore: 1, Sequence: 1},
		{Home: "ARS", Away: "CHE", HomeScore: 3, AwayScore: 0, Sequence: 2},
		{Home: "AST", Away: "ARS", HomeScore: 0, AwayScore: 0, Sequence: 3},
		{Home: "AST", Away: "CHE", HomeScore: 1, AwayScore: 1, Sequence: 4},
		{Home: "CHE", Away: "ARS", HomeScore: 1, AwayScore: 2, Sequence: 5},
		{Home: "CHE", Away: "AST", HomeScore: 0, AwayScore: 4, Sequence: 6},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected fixtures (-want +got):\n%s", diff)
	}
}

func TestParseGrid_FixtureCountAndSequence(t *testing.T) {
	for n := 2; n <= 8; n++ {
		t.Run(fmt.Sprintf("%d teams", n), func(t *testing.T) {
			got, err := ParseGrid(squareGrid(n))
			if err != nil {
				t.Fatalf("parse grid: %v", err)
			}
			if len(got) != n*(n-1) {
				t.Fatalf("unexpected fixture count: got=%d want=%d", len(got), n*(n-1))
			}
			for i, item := range got {
				if item.Sequence != i+1 {
					t.Fatalf("unexpected sequence at %d: %d", i, item.Sequence)
				}
				if item.Home == item.Away {
					t.Fatalf("self fixture emitted: %+v", item)
				}
			}
		})
	}
}

func TestParseGrid_DiagonalIgnored(t *testing.T) {
	lines := sampleGrid()
	lines[1] = "Arsenal\tnot a score\t2–1\t3–0"

	got, err := ParseGrid(lines)
	if err != nil {
		t.Fatalf("diagonal content must be ignored: %v", err)
	}
	if len(got) != 6 {
		t.Fatalf("unexpected fixture count: %d", len(got))
	}
}

func TestParseGrid_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
	}{
		{name: "empty", lines: nil},
		{name: "missing row", lines: sampleGrid()[:3]},
		{name: "extra header column", lines: append([]string{"x\tARS\tAST\tCHE\tDER"}, sampleGrid()[1:]...)},
		{name: "short row", lines: []string{sampleGrid()[0], "Arsenal\t\t2–1", sampleGrid()[2], sampleGrid()[3]}},
		{name: "bad score", lines: []string{sampleGrid()[0], "Arsenal\t\t2:1\t3–0", sampleGrid()[2], sampleGrid()[3]}},
		{name: "empty score", lines: []string{sampleGrid()[0], "Arsenal\t\t\t3–0", sampleGrid()[2], sampleGrid()[3]}},
		{name: "duplicate code", lines: []string{"x\tARS\tARS\tCHE", "Arsenal\t\t2–1\t3–0", "Arsenal\t1–1\t\t0–0", "Chelsea\t0–1\t2–0\t"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseGrid(tc.lines)
			if !errors.Is(err, ErrMalformedGrid) {
				t.Fatalf("expected ErrMalformedGrid, got %v", err)
			}
		})
	}
}

func TestValidateShape_DuplicateCode(t *testing.T) {
	lines := []string{"x\tARS\tCHE\tARS", "Arsenal\t\t2–1\t3–0", "Chelsea\t1–1\t\t0–0", "Arsenal\t0–1\t2–0\t"}
	err := ValidateShape(lines)
	if !errors.Is(err, ErrMalformedGrid) {
		t.Fatalf("expected ErrMalformedGrid, got %v", err)
	}
	if !strings.Contains(err.Error(), `"ARS" repeated in columns 1 and 3`) {
		t.Fatalf("expected code and columns in error, got %v", err)
	}
}

func TestParseScore(t *testing.T) {
	tests := []struct {
		cell    string
		home    int
		away    int
		wantErr bool
	}{
		{cell: "2–1", home: 2, away: 1},
		{cell: " 10 – 0 ", home: 10, away: 0},
		{cell: "1-1", home: 1, away: 1},
		{cell: "0−3", home: 0, away: 3},
		{cell: "3", wantErr: true},
		{cell: "a–1", wantErr: true},
		{cell: "1--1", wantErr: true},
	}

	for _, tc := range tests {
		home, away, err := ParseScore(tc.cell)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("expected error for %q", tc.cell)
			}
			continue
		}
		if err != nil {
			t.Fatalf("parse %q: %v", tc.cell, err)
		}
		if home != tc.home || away != tc.away {
			t.Fatalf("unexpected score for %q: %d-%d", tc.cell, home, away)
		}
	}
}

func TestSplitLines(t *testing.T) {
	got := SplitLines("a\r\nb\n\nc\rd\n")
	want := []string{"a", "b", "c", "d"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected lines (-want +got):\n%s", diff)
	}
}

func TestFixtureWinner(t *testing.T) {
	if got := (Fixture{Home: "A", Away: "B", HomeScore: 2, AwayScore: 1}).Winner(); got != "A" {
		t.Fatalf("unexpected winner: %q", got)
	}
	if got := (Fixture{Home: "A", Away: "B", HomeScore: 0, AwayScore: 1}).Winner(); got != "B" {
		t.Fatalf("unexpected winner: %q", got)
	}
	if got := (Fixture{Home: "A", Away: "B", HomeScore: 1, AwayScore: 1}).Winner(); got != "" {
		t.Fatalf("expected draw, got %q", got)
	}
}

func squareGrid(n int) []string {
	codes := make([]string, n)
	for i := range codes {
		codes[i] = fmt.Sprintf("T%02d", i+1)
	}

	lines := []string{"label\t" + strings.Join(codes, "\t")}
	for x := 0; x < n; x++ {
		cells := []string{"Team " + codes[x]}
		for y := 0; y < n; y++ {
			if x == y {
				cells = append(cells, "")
				continue
			}
			cells = append(cells, fmt.Sprintf("%d–%d", (x+y)%4, (x*y)%3))
		}
		lines = append(lines, strings.Join(cells, "\t"))
	}
	return lines
}

func TestParseGrid_TrimmedTrailingDiagonal(t *testing.T) {
	lines := sampleGrid()
	lines[3] = "Chelsea\t1–2\t0–4"

	got, err := ParseGrid(lines)
	if err != nil {
		t.Fatalf("parse grid: %v", err)
	}
	if len(got) != 6 {
		t.Fatalf("unexpected fixture count: %d", len(got))
	}
}
