package model

// Piece is one player's instance of a canonical shape. Transforms return a
// new Piece with transformed coordinates and never mutate the receiver; the
// placed state transitions once, via Inventory.MarkPlaced.
type Piece struct {
	Shape    Shape
	Owner    PlayerID
	Placed   bool
	PlacedAt Position // meaningful only when Placed
}

// Name returns the piece's canonical shape name
func (p Piece) Name() string {
	return p.Shape.Name
}

// Size returns the piece's cell count
func (p Piece) Size() int {
	return p.Shape.Size()
}

// Rotated returns a new instance rotated clockwise by 90, 180 or 270 degrees
func (p Piece) Rotated(angle int) (Piece, error) {
	shape, err := p.Shape.Rotated(angle)
	if err != nil {
		return Piece{}, err
	}
	out := p
	out.Shape = shape
	return out, nil
}

// Flipped returns a new instance mirrored across the column axis
func (p Piece) Flipped() Piece {
	out := p
	out.Shape = p.Shape.Flipped()
	return out
}

// Oriented returns a new instance with a move's rotation and flip applied
func (p Piece) Oriented(rotation int, flip bool) (Piece, error) {
	shape, err := p.Shape.Oriented(rotation, flip)
	if err != nil {
		return Piece{}, err
	}
	out := p
	out.Shape = shape
	return out, nil
}

// Absolute returns the board cells the piece would cover at the anchor
func (p Piece) Absolute(anchor Position) []Position {
	return p.Shape.Absolute(anchor)
}

// detached returns a copy whose cell slice is independent of the receiver's
func (p Piece) detached() Piece {
	out := p
	out.Shape = copyShape(p.Shape)
	return out
}
