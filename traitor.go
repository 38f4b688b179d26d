package cesr

// Traitor is a variable configuration trait marker (e.g. a key event
// configuration trait such as "EO" or "DND"), stored in a Bexter code.
type Traitor struct {
	b *Bexter
}

// NewTraitor constructs a Traitor from a trait name.
func NewTraitor(trait string) (*Traitor, error) {
	b, err := NewBexter(trait)
	if err != nil {
		return nil, err
	}

	return &Traitor{b: b}, nil
}

// TraitorFromQb64 constructs a Traitor by projecting a textual qualified
// form.
func TraitorFromQb64(qb64 string) (*Traitor, error) {
	b, err := BexterFromQb64(qb64)
	if err != nil {
		return nil, err
	}

	return &Traitor{b: b}, nil
}

func (t *Traitor) Qb64() string  { return t.b.Qb64() }
func (t *Traitor) Qb64b() []byte { return t.b.Qb64b() }
func (t *Traitor) Qb2() []byte   { return t.b.Qb2() }
func (t *Traitor) Code() string  { return t.b.Code() }
func (t *Traitor) Raw() []byte   { return t.b.Raw() }

// Trait returns the trait name.
func (t *Traitor) Trait() string { return t.b.Bext() }
