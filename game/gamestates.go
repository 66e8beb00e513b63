package game

// State is the overall outcome of a game
type State int

const (
	Running State = iota
	Win
	Draw
)

var stateNames = []string{"running", "win", "draw"}

func (s State) String() string {
	if s < Running || s > Draw {
		return ""
	}
	return stateNames[s]
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
