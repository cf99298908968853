package visitor

// Visitor visits (key, element) pairs of a container.
// The Visit callback returns (true, nil) to continue, (false, nil) to stop,
// or an error which stops the visit and is returned to the caller.
type Visitor[K comparable, E any] func(func(key K, element E) (bool, error)) error

// Collect visits all elements and returns them in visit order.
func Collect[K comparable, E any](visit Visitor[K, E]) ([]E, error) {
	var result []E
	err := visit(func(_ K, element E) (bool, error) {
		result = append(result, element)
		return true, nil
	})
	return result, err
}
