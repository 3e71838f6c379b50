package keys

// Separator joins the two parent ids of a fusion key.
const Separator = "_"

// FusionKey produces the canonical key for an unordered pair of entity ids.
// The ids are ordered ascending (byte-wise) so FusionKey(a, b) == FusionKey(b, a).
func FusionKey(idA, idB string) string {
	first, second := Ordered(idA, idB)
	return first + Separator + second
}

// Ordered returns the two ids in canonical order.
func Ordered(idA, idB string) (string, string) {
	if idB < idA {
		return idB, idA
	}
	return idA, idB
}
