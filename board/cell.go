package board

// Cell is the content of a board position. It is one of Occupied, Playable
// or Border; the set is closed by the unexported marker method.
type Cell interface {
	cell()
}

// Occupied holds a disc.
type Occupied struct {
	Piece Piece
}

// Playable is an empty square inside the play area.
type Playable struct{}

// Border is the ring around the play area. It never changes.
type Border struct{}

func (Occupied) cell() {}
func (Playable) cell() {}
func (Border) cell()   {}

// PieceOf returns the disc held by c, if any.
func PieceOf(c Cell) (Piece, bool) {
	if o, ok := c.(Occupied); ok {
		return o.Piece, true
	}
	return 0, false
}
