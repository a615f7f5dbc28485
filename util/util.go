package util

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}

// SortedSet returns a sorted copy of nums without duplicates.
func SortedSet[A constraints.Integer](nums []A) []A {
	res := slices.Clone(nums)
	slices.Sort(res)
	return slices.Compact(res)
}

func Contains[A constraints.Integer](set []A, v A) bool {
	_, found := slices.BinarySearch(set, v)
	return found
}

// Insert adds v to a sorted set, returning a new slice.
func Insert[A constraints.Integer](set []A, v A) []A {
	i, found := slices.BinarySearch(set, v)
	res := slices.Clone(set)
	if found {
		return res
	}
	return slices.Insert(res, i, v)
}

// Remove deletes v from a sorted set, returning a new slice.
func Remove[A constraints.Integer](set []A, v A) []A {
	res := make([]A, 0, len(set))
	for _, x := range set {
		if x != v {
			res = append(res, x)
		}
	}
	return res
}

func Shift[A constraints.Integer](nums []A, by A) []A {
	res := make([]A, len(nums))
	for i, v := range nums {
		res[i] = v + by
	}
	return res
}

// FloorDiv rounds toward negative infinity, unlike the / operator.
func FloorDiv[A constraints.Integer](a, b A) A {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
