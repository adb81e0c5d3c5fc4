// Package mapper holds generic slice conversions shared by DTO and persistence mappers.
package mapper

// MapSlice applies a mapper function to each element of a slice.
// Returns nil if the input slice is nil.
func MapSlice[T any, R any](items []T, mapFunc func(T) R) []R {
	if items == nil {
		return nil
	}

	result := make([]R, 0, len(items))
	for _, item := range items {
		result = append(result, mapFunc(item))
	}
	return result
}

// MapSlicePtrSkipNil applies a mapper function to each element of a pointer slice,
// skipping nil inputs and nil outputs.
func MapSlicePtrSkipNil[T any, R any](items []*T, mapFunc func(*T) *R) []*R {
	if items == nil {
		return nil
	}

	result := make([]*R, 0, len(items))
	for _, item := range items {
		if item != nil {
			if mapped := mapFunc(item); mapped != nil {
				result = append(result, mapped)
			}
		}
	}
	return result
}

// MapRefs passes a pointer to each element, which suits slices of gorm models
// whose mappers take *Model. The result is never nil.
func MapRefs[T any, R any](items []T, mapFunc func(*T) R) []R {
	result := make([]R, len(items))
	for i := range items {
		result[i] = mapFunc(&items[i])
	}
	return result
}

// MapRefsWithError is MapRefs for mappers that can fail. It stops at the
// first error.
func MapRefsWithError[T any, R any](items []T, mapFunc func(*T) (R, error)) ([]R, error) {
	result := make([]R, len(items))
	for i := range items {
		mapped, err := mapFunc(&items[i])
		if err != nil {
			return nil, err
		}
		result[i] = mapped
	}
	return result, nil
}
