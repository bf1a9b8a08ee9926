package model

import (
	"crypto/md5"
	"encoding/binary"
	"fmt"
)

// Fingerprint returns an MD5 hash of the live position set. Properties are
// deliberately excluded: an oscillator whose cells drift colors is still
// stagnant in shape.
func (g Generation) Fingerprint() string {
	h := md5.New()
	var buf [8]byte
	for _, p := range g.LivePositions() {
		binary.BigEndian.PutUint32(buf[:4], uint32(p.Row))
		binary.BigEndian.PutUint32(buf[4:], uint32(p.Col))
		h.Write(buf[:])
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// History tracks recent generation fingerprints for cycle detection.
type History struct {
	hashes []string
}

// Push adds the generation's fingerprint and maintains size.
func (h *History) Push(g Generation) {
	h.hashes = append(h.hashes, g.Fingerprint())

	// Keep only last 5 states to detect short cycles
	if len(h.hashes) > 5 {
		h.hashes = h.hashes[1:]
	}
}

// IsStagnant checks if the generation matches any of the last three recorded
// states, i.e. the simulation is static or in a period-2/3 cycle.
func (h *History) IsStagnant(g Generation) bool {
	if len(h.hashes) < 3 {
		return false
	}

	current := g.Fingerprint()
	for i := 1; i <= 3; i++ {
		if h.hashes[len(h.hashes)-i] == current {
			return true
		}
	}
	return false
}

// Reset discards the recorded history, e.g. after a restart.
func (h *History) Reset() {
	h.hashes = nil
}
