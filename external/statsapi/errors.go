package statsapi

import "fmt"

// ProviderStatusError carries a non-success upstream response so handlers can
// forward the original status code and message unchanged.
type ProviderStatusError struct {
	StatusCode int
	Body       string
}

func (e *ProviderStatusError) Error() string {
	return fmt.Sprintf("provider status=%d body=%s", e.StatusCode, e.Body)
}
