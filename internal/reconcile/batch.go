package reconcile

import "fmt"

// Batch splits items into contiguous chunks of at most size elements; the
// final chunk may be shorter. Chunks are subslices of items, no copying.
func Batch[T any](items []T, size int) ([][]T, error) {
	if size <= 0 {
		return nil, fmt.Errorf("size %d: %w", size, ErrBatchSize)
	}
	if len(items) == 0 {
		return nil, nil
	}
	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for i := 0; i < len(items); i += size {
		end := i + size
		if end > len(items) {
			end = len(items)
		}
		chunks = append(chunks, items[i:end])
	}
	return chunks, nil
}
