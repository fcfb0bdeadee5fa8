package app

import "fmt"

// Handle panics with a descriptive message if err is not nil. Use it for
// failures during startup that the example cannot recover from.
func Handle(err error, desc string, args ...any) {
	if err != nil {
		text := fmt.Sprintf(desc, args...)
		panic(text + ": " + err.Error())
	}
}
