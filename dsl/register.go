package dsl

import (
	"regexp"
	"sync"

	"github.com/google/uuid"

	mongoskema "github.com/reoring/mongoskema"
)

var (
	registerOnce sync.Once

	formatMu     sync.RWMutex
	formatChecks = map[mongoskema.Kind]mongoskema.Check{}
)

var objectIDHex = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// Register installs the identifier format checks consumed by ObjectID and
// UUID builders. Registration is idempotent infrastructure setup: calling it
// again is silently ignored and never duplicates previously installed checks.
func Register() {
	registerOnce.Do(func() {
		formatMu.Lock()
		defer formatMu.Unlock()
		formatChecks[mongoskema.KindObjectID] = mongoskema.Check{
			Name: "objectid-format",
			Predicate: func(v any) bool {
				s, ok := v.(string)
				return ok && objectIDHex.MatchString(s)
			},
			Message: "invalid ObjectId",
		}
		formatChecks[mongoskema.KindUUID] = mongoskema.Check{
			Name: "uuid-format",
			Predicate: func(v any) bool {
				s, ok := v.(string)
				return ok && uuid.Validate(s) == nil
			},
			Message: "invalid UUID",
		}
	})
}

func formatCheckFor(k mongoskema.Kind) (mongoskema.Check, bool) {
	formatMu.RLock()
	defer formatMu.RUnlock()
	c, ok := formatChecks[k]
	return c, ok
}
