package argparse

// Flag declares a single command-line option.
type Flag struct {
	// ID is the stable name callers dispatch on, e.g. "help".
	ID string
	// Short is the single-character form; zero means none.
	Short rune
	// Long is the name used after "--"; empty means none.
	Long string
	// TakesValue marks flags that may carry a value.
	TakesValue bool
}

// FlagTable is an ordered registry of declared flags. Registration order is
// lookup priority: when two flags share a short character or a long name the
// one registered first wins.
type FlagTable struct {
	flags []Flag
}

// Register appends f to the table. Duplicates are accepted.
func (t *FlagTable) Register(f Flag) {
	t.flags = append(t.flags, f)
}

// LookupShort returns the first flag whose short form is r.
func (t *FlagTable) LookupShort(r rune) (Flag, bool) {
	if r == 0 {
		return Flag{}, false
	}
	for _, f := range t.flags {
		if f.Short == r {
			return f, true
		}
	}
	return Flag{}, false
}

// LookupLong returns the first flag whose long form is name.
func (t *FlagTable) LookupLong(name string) (Flag, bool) {
	if name == "" {
		return Flag{}, false
	}
	for _, f := range t.flags {
		if f.Long == name {
			return f, true
		}
	}
	return Flag{}, false
}

// Flags returns a copy of the declared flags in registration order.
func (t *FlagTable) Flags() []Flag {
	out := make([]Flag, len(t.flags))
	copy(out, t.flags)
	return out
}

// Len reports the number of registered flags.
func (t *FlagTable) Len() int {
	return len(t.flags)
}
