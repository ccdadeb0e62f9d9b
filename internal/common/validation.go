package common

// IsValidPosition checks if a 1-based position lies on a board of the given length
func IsValidPosition(position, length int) bool {
	return position >= 1 && position <= length
}

// InRange checks if v lies within [min, max], both inclusive
func InRange(v, min, max int) bool {
	return v >= min && v <= max
}

// ContainsInt reports whether options contains v
func ContainsInt(options []int, v int) bool {
	for _, o := range options {
		if o == v {
			return true
		}
	}
	return false
}
