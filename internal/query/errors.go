package query

import (
	"fmt"
	"strings"
)

// TenantsNotFoundError reports a multi-tenant query naming one or more
// tenants that do not exist. Missing holds the unknown IDs in request order.
type TenantsNotFoundError struct {
	Missing []string
}

func (e *TenantsNotFoundError) Error() string {
	return fmt.Sprintf("tenants not found: %s", strings.Join(e.Missing, ", "))
}
