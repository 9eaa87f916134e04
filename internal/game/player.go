package game

// Player is the named score holder for one round.
type Player struct {
	Name  string
	Score int
}

// award adds points; negative deltas are ignored so the score never drops.
func (p *Player) award(points int) {
	if points > 0 {
		p.Score += points
	}
}
