// Package audio plays the short sound effects the game requests by name.
package audio

// Player plays sound effects identified by file name ("ng.wav").
// Play must not block the caller.
type Player interface {
	Play(key string)
}

// Nop is a Player that discards every request. Used when audio is disabled,
// unavailable, or the session is remote.
type Nop struct{}

// Play does nothing.
func (Nop) Play(string) {}
