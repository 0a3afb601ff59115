package tetris

import "math/rand"

// sequenceSource is a rand.Source whose Intn(PieceCount) results repeat a
// fixed list of kinds. rand.Rand.Intn(7) reduces Int63()>>32 modulo 7, so
// each value is the kind shifted into the high word.
type sequenceSource struct {
	kinds []PieceKind
	next  int
}

// SequenceSource returns a piece source that deals the given kinds in order,
// cycling forever. It is meant for tests and scripted demos.
func SequenceSource(kinds ...PieceKind) rand.Source {
	if len(kinds) == 0 {
		kinds = []PieceKind{PieceI}
	}
	return &sequenceSource{kinds: kinds}
}

func (s *sequenceSource) Int63() int64 {
	k := s.kinds[s.next%len(s.kinds)]
	s.next++
	return int64(k) << 32
}

func (s *sequenceSource) Seed(int64) {
	s.next = 0
}
