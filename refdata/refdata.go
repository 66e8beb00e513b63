// Package refdata loads the static reference data of a Cluedo game: the
// character roster, the weapons, the rooms and the size of the board path.
package refdata

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed cluedo.yaml
var cluedoYAML []byte

var (
	ErrNoCharacters    = errors.New("reference data has no characters")
	ErrNoWeapons       = errors.New("reference data has no weapons")
	ErrNoRooms         = errors.New("reference data has no rooms")
	ErrInvalidBoard    = errors.New("board must have at least one cell")
	ErrDuplicateName   = errors.New("duplicate name in reference data")
	ErrUnknownPassage  = errors.New("secret passage leads to an unknown room")
	ErrDoorOutOfBounds = errors.New("door is not on the board")
)

// Character is a roster entry. Roster order decides turn order.
type Character struct {
	Name     string `yaml:"name"`
	Color    string `yaml:"color"`
	Position string `yaml:"position"`
}

// Room is a room on the board, entered through its door cells.
type Room struct {
	Name    string `yaml:"name"`
	Doors   []int  `yaml:"doors"`
	Passage string `yaml:"passage,omitempty"`
}

// Board describes the numbered cells of the path between rooms.
type Board struct {
	FirstCell int `yaml:"first_cell"`
	LastCell  int `yaml:"last_cell"`
}

// Data is the full set of reference data for one kind of game.
type Data struct {
	Board      Board       `yaml:"board"`
	Characters []Character `yaml:"characters"`
	Weapons    []string    `yaml:"weapons"`
	Rooms      []Room      `yaml:"rooms"`
}

// Load parses and validates YAML reference data.
func Load(raw []byte) (*Data, error) {
	var d Data
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("parsing reference data: %w", err)
	}
	if err := d.validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// MustLoad is Load for data that ships with the binary.
func MustLoad(raw []byte) *Data {
	d, err := Load(raw)
	if err != nil {
		panic(err)
	}
	return d
}

// Default returns the classic six-character, nine-room game.
func Default() *Data {
	return MustLoad(cluedoYAML)
}

// RoomNames lists the room names in reference order.
func (d *Data) RoomNames() []string {
	names := make([]string, 0, len(d.Rooms))
	for _, r := range d.Rooms {
		names = append(names, r.Name)
	}
	return names
}

// CharacterNames lists the roster names in turn order.
func (d *Data) CharacterNames() []string {
	names := make([]string, 0, len(d.Characters))
	for _, c := range d.Characters {
		names = append(names, c.Name)
	}
	return names
}

func (d *Data) validate() error {
	if len(d.Characters) == 0 {
		return ErrNoCharacters
	}
	if len(d.Weapons) == 0 {
		return ErrNoWeapons
	}
	if len(d.Rooms) == 0 {
		return ErrNoRooms
	}
	if d.Board.LastCell < d.Board.FirstCell {
		return ErrInvalidBoard
	}

	seen := map[string]struct{}{}
	names := append(append(d.CharacterNames(), d.Weapons...), d.RoomNames()...)
	for _, name := range names {
		if _, ok := seen[name]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateName, name)
		}
		seen[name] = struct{}{}
	}

	rooms := map[string]struct{}{}
	for _, r := range d.Rooms {
		rooms[r.Name] = struct{}{}
	}
	for _, r := range d.Rooms {
		if r.Passage != "" {
			if _, ok := rooms[r.Passage]; !ok {
				return fmt.Errorf("%w: %s -> %s", ErrUnknownPassage, r.Name, r.Passage)
			}
		}
		for _, door := range r.Doors {
			if door < d.Board.FirstCell || door > d.Board.LastCell {
				return fmt.Errorf("%w: %s door %d", ErrDoorOutOfBounds, r.Name, door)
			}
		}
	}

	return nil
}
