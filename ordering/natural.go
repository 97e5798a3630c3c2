package ordering

// Natural returns the structure's keys in ascending order.
var Natural Oracle = OracleFunc(natural)

func natural(s Structure) (Ordering, error) {
	if s == nil {
		return nil, ErrNilStructure
	}
	keys := s.Keys()
	out := make(Ordering, len(keys))
	copy(out, keys)

	return out, nil
}
