package utils

import "sync"

// Task is a unit of work executed concurrently with others.
type Task func() (interface{}, error)

// RunParallel executes all tasks concurrently and waits for every one of
// them. Results keep the order of the input tasks; the first non-nil error
// encountered (in task order) is returned.
func RunParallel(tasks ...Task) ([]interface{}, error) {
	var wg sync.WaitGroup
	results := make([]interface{}, len(tasks))
	errs := make([]error, len(tasks))

	wg.Add(len(tasks))
	for i, task := range tasks {
		go func(index int, t Task) {
			defer wg.Done()
			results[index], errs[index] = t()
		}(i, task)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return results, err
		}
	}
	return results, nil
}
