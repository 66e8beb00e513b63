// Package board models the Cluedo board as a ring of numbered cells with
// rooms hanging off door cells. Positions are strings: a cell number such as
// "12", or a room name such as "Library".
package board

import (
	"strconv"

	"github.com/minaorangina/cluedo/refdata"
)

const (
	exitCost  = 1 // stepping out of a room onto one of its doors
	enterCost = 1 // stepping from a door into its room
)

// Path is a circular path of cells first..last plus the rooms reached from it.
type Path struct {
	first, last int
	rooms       map[string]refdata.Room
	roomOrder   []string
}

// NewPath constructs a path with no rooms
func NewPath(first, last int) *Path {
	return &Path{
		first: first,
		last:  last,
		rooms: map[string]refdata.Room{},
	}
}

// AddRooms registers rooms. Re-adding a room replaces it.
func (p *Path) AddRooms(rooms []refdata.Room) {
	for _, r := range rooms {
		if _, ok := p.rooms[r.Name]; !ok {
			p.roomOrder = append(p.roomOrder, r.Name)
		}
		p.rooms[r.Name] = r
	}
}

// Cells lists every cell position in order
func (p *Path) Cells() []string {
	cells := make([]string, 0, p.last-p.first+1)
	for i := p.first; i <= p.last; i++ {
		cells = append(cells, strconv.Itoa(i))
	}
	return cells
}

// Rooms lists every room position in the order added
func (p *Path) Rooms() []string {
	rooms := make([]string, len(p.roomOrder))
	copy(rooms, p.roomOrder)
	return rooms
}

func (p *Path) Room(pos string) (refdata.Room, bool) {
	r, ok := p.rooms[pos]
	return r, ok
}

func (p *Path) IsRoom(pos string) bool {
	_, ok := p.rooms[pos]
	return ok
}

// ConnectedRoom returns the room at the other end of pos's secret passage,
// or "" if pos is not a room with a passage.
func (p *Path) ConnectedRoom(pos string) string {
	r, ok := p.rooms[pos]
	if !ok {
		return ""
	}
	return r.Passage
}

// ValidateMove reports whether a token at cur can reach dest with a roll of
// die. Every cell costs one step, as does leaving or entering a room. Moves
// between rooms joined by a secret passage need no roll.
func (p *Path) ValidateMove(dest, cur string, inRoom bool, die int) bool {
	if dest == cur {
		return false
	}
	if inRoom && p.ConnectedRoom(cur) == dest && dest != "" {
		return true
	}
	if die < 1 {
		return false
	}

	origins, cost := p.origins(cur, inRoom)
	if len(origins) == 0 {
		return false
	}

	if room, ok := p.rooms[dest]; ok {
		for _, o := range origins {
			for _, door := range room.Doors {
				if cost+p.distance(o, door)+enterCost <= die {
					return true
				}
			}
		}
		return false
	}

	cell, ok := p.cell(dest)
	if !ok {
		return false
	}
	for _, o := range origins {
		steps := cost + p.distance(o, cell)
		if steps >= 1 && steps <= die {
			return true
		}
	}
	return false
}

// origins returns the cells a move starts from and the steps already spent
// reaching them.
func (p *Path) origins(cur string, inRoom bool) ([]int, int) {
	if inRoom {
		if r, ok := p.rooms[cur]; ok {
			return r.Doors, exitCost
		}
	}
	if cell, ok := p.cell(cur); ok {
		return []int{cell}, 0
	}
	return nil, 0
}

func (p *Path) cell(pos string) (int, bool) {
	n, err := strconv.Atoi(pos)
	if err != nil || n < p.first || n > p.last {
		return 0, false
	}
	return n, true
}

// distance is the shortest way round the ring between two cells
func (p *Path) distance(a, b int) int {
	size := p.last - p.first + 1
	d := a - b
	if d < 0 {
		d = -d
	}
	if size-d < d {
		return size - d
	}
	return d
}
