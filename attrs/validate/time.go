package validate

import (
	"fmt"
	"time"

	"github.com/rickb777/date/v2/timespan"
)

// Within accepts timestamps falling inside the given span.
func Within(ts timespan.TimeSpan) Predicate[time.Time] {
	return func(v time.Time) error {
		if !ts.Contains(v) {
			return fmt.Errorf("%v is outside %v", v, ts)
		}
		return nil
	}
}
