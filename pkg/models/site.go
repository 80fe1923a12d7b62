package models

// SiteSettings is the single root document holding the sidecar lists the
// admin screens maintain: brand and category names for the catalog forms,
// the media library, and the ordered homepage slider.
type SiteSettings struct {
	ID             string   `bson:"_id,omitempty" json:"-"`
	Brands         []string `bson:"brands" json:"brands"`
	Categories     []string `bson:"category" json:"category"`
	Images         []string `bson:"images" json:"images"`
	HomepageSlider []string `bson:"homepageSlider" json:"homepageSlider"`
}

// Contains reports whether list already holds value. Used for the duplicate
// checks on brands, categories and the slider.
func Contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}

// Remove returns list without the first occurrence of value and whether it
// was present.
func Remove(list []string, value string) ([]string, bool) {
	for i, v := range list {
		if v == value {
			out := make([]string, 0, len(list)-1)
			out = append(out, list[:i]...)
			out = append(out, list[i+1:]...)
			return out, true
		}
	}
	return list, false
}

// RemoveIndices returns list without the elements at the given positions.
// Out-of-range indices are ignored.
func RemoveIndices(list []string, indices []int) []string {
	drop := make(map[int]bool, len(indices))
	for _, i := range indices {
		drop[i] = true
	}
	out := make([]string, 0, len(list))
	for i, v := range list {
		if !drop[i] {
			out = append(out, v)
		}
	}
	return out
}

// MoveIndex returns list with the element at from moved to position to,
// preserving the relative order of everything else. Out-of-range positions
// leave the list unchanged.
func MoveIndex(list []string, from, to int) []string {
	if from < 0 || from >= len(list) || to < 0 || to >= len(list) {
		return list
	}
	out := make([]string, 0, len(list))
	out = append(out, list[:from]...)
	out = append(out, list[from+1:]...)
	moved := list[from]
	out = append(out[:to], append([]string{moved}, out[to:]...)...)
	return out
}
