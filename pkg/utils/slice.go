package utils

import "sort"

// map each element in sli.
//
// args:
//   - sli : slice of `T`s
//   - mapper : mapping function from T to R
//
// return:
//
//	slice of `R`s. each element indexed `N` is given with `mapper(sli[N])` .
func Map[T any, R any](sli []T, mapper func(v T) R) []R {
	ret := make([]R, len(sli))
	for nth, v := range sli {
		ret[nth] = mapper(v)
	}
	return ret
}

// Map over sli with mapper.
//
// If mapper causes error, return (nil, error).
//
// Otherwise, return (mapping result, nil).
func MapUntilError[T any, R any](sli []T, mapper func(v T) (R, error)) ([]R, error) {
	ret := make([]R, len(sli))
	for nth, v := range sli {
		r, err := mapper(v)
		if err != nil {
			return nil, err
		}
		ret[nth] = r
	}
	return ret, nil
}

// filter elements match with predicator.
//
// The result is never nil, so that it is encoded as `[]` in JSON.
func Filter[T any](vs []T, predicator func(T) bool) []T {
	ret := []T{}
	for _, v := range vs {
		if predicator(v) {
			ret = append(ret, v)
		}
	}
	return ret
}

// Count elements match with predicator.
func Count[T any](vs []T, predicator func(T) bool) int {
	n := 0
	for _, v := range vs {
		if predicator(v) {
			n += 1
		}
	}
	return n
}

// find first element match with predicator.
//
// retruns:
//
//	(T, true) if found. otherwise, (zero value of T, false)
func First[T any](sli []T, predicator func(T) bool) (T, bool) {
	for _, v := range sli {
		if predicator(v) {
			return v, true
		}
	}

	var zero T
	return zero, false
}

// sort copy of slice stably. The original slice is not modified.
func SortedStable[T any](sli []T, less func(a, b T) bool) []T {
	sorted := make([]T, len(sli))
	copy(sorted, sli)

	sort.SliceStable(sorted, func(i, j int) bool {
		return less(sorted[i], sorted[j])
	})
	return sorted
}

// group values in sli by key.
func ToMultiMap[T any, K comparable](sli []T, getkey func(v T) K) map[K][]T {
	m := map[K][]T{}
	for _, v := range sli {
		k := getkey(v)
		m[k] = append(m[k], v)
	}
	return m
}

// flatten map to slice
//
// returns:
//
//	slice which contains keys of `m`, in no particular order.
func KeysOf[T any, K comparable](m map[K]T) []K {
	sli := make([]K, 0, len(m))
	for k := range m {
		sli = append(sli, k)
	}
	return sli
}
