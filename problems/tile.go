package problems

import "github.com/hupe1980/statesearch/core"

// Board is a 3x3 sliding-tile configuration in row-major order; 0 marks the
// blank.
type Board [9]int

// TileMove names the direction the blank moves.
type TileMove string

// The four blank movements.
const (
	MoveUp    TileMove = "Up"
	MoveDown  TileMove = "Down"
	MoveLeft  TileMove = "Left"
	MoveRight TileMove = "Right"
)

// Tile is the 8-puzzle domain: slide tiles until the board matches the goal
// configuration. Every move costs 1. The default heuristic counts misplaced
// tiles, which is admissible and consistent because the blank is excluded.
type Tile struct {
	*core.Base[Board, TileMove]
}

// NewTile constructs an 8-puzzle from a start and goal board.
func NewTile(start, goal Board) *Tile {
	return &Tile{Base: &core.Base[Board, TileMove]{InitialState: start, GoalState: goal}}
}

func blankIndex(b Board) int {
	for i, v := range b {
		if v == 0 {
			return i
		}
	}
	panic("statesearch: board has no blank")
}

// Actions returns the moves available to the blank in its current position.
func (t *Tile) Actions(state Board) []TileMove {
	blank := blankIndex(state)
	row, col := blank/3, blank%3
	var moves []TileMove
	if row > 0 {
		moves = append(moves, MoveUp)
	}
	if row < 2 {
		moves = append(moves, MoveDown)
	}
	if col > 0 {
		moves = append(moves, MoveLeft)
	}
	if col < 2 {
		moves = append(moves, MoveRight)
	}
	return moves
}

// Result slides the blank in the chosen direction.
func (t *Tile) Result(state Board, move TileMove) Board {
	blank := blankIndex(state)
	var target int
	switch move {
	case MoveUp:
		target = blank - 3
	case MoveDown:
		target = blank + 3
	case MoveLeft:
		target = blank - 1
	default:
		target = blank + 1
	}
	next := state
	next[blank], next[target] = next[target], next[blank]
	return next
}

// Heuristic counts the tiles out of place, ignoring the blank.
func (t *Tile) Heuristic(n *core.Node[Board, TileMove]) float64 {
	return float64(t.Misplaced(n.State))
}

// Misplaced returns the number of non-blank tiles that differ from the goal
// board.
func (t *Tile) Misplaced(b Board) int {
	count := 0
	for i, v := range b {
		if v != 0 && v != t.GoalState[i] {
			count++
		}
	}
	return count
}

// Manhattan returns the summed horizontal and vertical displacement of each
// non-blank tile from its goal cell. It dominates Misplaced and is also
// admissible and consistent.
func (t *Tile) Manhattan(b Board) int {
	goalPos := map[int]int{}
	for i, v := range t.GoalState {
		goalPos[v] = i
	}
	total := 0
	for i, v := range b {
		if v == 0 {
			continue
		}
		g := goalPos[v]
		total += abs(i/3-g/3) + abs(i%3-g%3)
	}
	return total
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
