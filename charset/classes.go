package charset

// ByteClasses maps each byte value to an equivalence class.
//
// Two bytes share a class when no arc label of an automaton distinguishes
// them. A DFA transition table then needs one column per class instead of 256.
//
// Example for the labels "a", "b-z" and ALL:
//   - Class 0: every byte outside a-z
//   - Class 1: byte 'a'
//   - Class 2: bytes 'b'-'z'
//
// Classes are numbered in order of their smallest byte, so byte 0 is always in
// class 0.
type ByteClasses struct {
	classes [256]byte
	n       int
}

// NewByteClasses builds classes from pairwise disjoint pieces, as returned by
// Partition. Bytes covered by no piece form one extra class.
func NewByteClasses(pieces []Set) ByteClasses {
	var bc ByteClasses

	// owner[b] is 1 + index of the piece containing b, or 0 if none does.
	var owner [256]int
	for i, p := range pieces {
		for _, c := range p.Bytes() {
			owner[c] = i + 1
		}
	}

	// Walk bytes in order and hand out class numbers on first sight.
	// At most 256 distinct owners exist, so numbers fit in a byte.
	assigned := make(map[int]byte, len(pieces)+1)
	for b := 0; b < 256; b++ {
		class, ok := assigned[owner[b]]
		if !ok {
			//nolint:gosec // G115: at most 256 classes, numbered 0..255
			class = byte(len(assigned))
			assigned[owner[b]] = class
		}
		bc.classes[b] = class
	}
	bc.n = len(assigned)
	return bc
}

// SingletonByteClasses puts every byte in its own class (no reduction).
func SingletonByteClasses() ByteClasses {
	var bc ByteClasses
	for i := 0; i < 256; i++ {
		bc.classes[i] = byte(i)
	}
	bc.n = 256
	return bc
}

// Get returns the class of b. This is an O(1) lookup.
func (bc *ByteClasses) Get(b byte) byte {
	return bc.classes[b]
}

// AlphabetLen returns the number of classes.
func (bc *ByteClasses) AlphabetLen() int {
	if bc.n == 0 {
		// Zero value: every byte is in class 0.
		return 1
	}
	return bc.n
}

// IsSingleton reports whether no two bytes share a class.
func (bc *ByteClasses) IsSingleton() bool {
	return bc.AlphabetLen() == 256
}

// IsEmpty reports whether all bytes share a single class.
func (bc *ByteClasses) IsEmpty() bool {
	return bc.AlphabetLen() == 1
}

// Representatives returns the smallest byte of each class, indexed by class.
func (bc *ByteClasses) Representatives() []byte {
	reps := make([]byte, bc.AlphabetLen())
	seen := make([]bool, bc.AlphabetLen())
	for b := 0; b < 256; b++ {
		class := bc.classes[b]
		if !seen[class] {
			seen[class] = true
			reps[class] = byte(b)
		}
	}
	return reps
}

// Elements returns the bytes of the given class in ascending order.
func (bc *ByteClasses) Elements(class byte) []byte {
	var elems []byte
	for b := 0; b < 256; b++ {
		if bc.classes[b] == class {
			elems = append(elems, byte(b))
		}
	}
	return elems
}

// Set returns the class as a Set.
func (bc *ByteClasses) Set(class byte) Set {
	return Including(bc.Elements(class)...)
}
