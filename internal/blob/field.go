package blob

// Field holds the current blob collection.
type Field struct {
	rnd        RandomSource
	blobs      []Blob
	generation uint64
}

// NewField returns an empty field that samples from rnd.
func NewField(rnd RandomSource) *Field {
	if rnd == nil {
		rnd = SystemRandom{}
	}
	return &Field{rnd: rnd}
}

// Regenerate discards the current blobs and generates a new set for a
// width x height surface.
func (f *Field) Regenerate(width, height int) {
	f.blobs = Generate(width, height, f.rnd)
	f.generation++
}

// Blobs returns the current collection. Callers must not modify it.
func (f *Field) Blobs() []Blob { return f.blobs }

// Generation counts regenerations since the field was created.
func (f *Field) Generation() uint64 { return f.generation }
