package lox

// MapErr is lo.Map with an error-returning iteratee: the first failure
// aborts the whole mapping.
func MapErr[T, R any](collection []T, iteratee func(item T) (R, error)) ([]R, error) {
	var err error

	result := make([]R, len(collection))

	for i, item := range collection {
		result[i], err = iteratee(item)
		if err != nil {
			return nil, err
		}
	}

	return result, nil
}

// GroupBySlice buckets items by key, preserving input order inside
// each bucket.
func GroupBySlice[T any, K comparable](collection []T, keyer func(item T) K) map[K][]T {
	result := make(map[K][]T, len(collection))

	for _, item := range collection {
		k := keyer(item)
		result[k] = append(result[k], item)
	}

	return result
}
