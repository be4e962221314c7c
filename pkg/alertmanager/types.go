package alertmanager

// Silence states reported by the Alertmanager v2 API. Anything else is
// rendered as-is but not tallied.
const (
	StateActive  = "active"
	StatePending = "pending"
	StateExpired = "expired"
)

// SilenceStatus represents the state associated with a silence.
type SilenceStatus struct {
	State string `json:"state"`
}

// Matcher represents a single label condition a silence applies to.
type Matcher struct {
	Name    string `json:"name"`
	Value   string `json:"value"`
	IsRegex bool   `json:"isRegex"`
	IsEqual bool   `json:"isEqual"`
}

// Silence represents one silence as returned by the Alertmanager v2 API.
type Silence struct {
	ID        string        `json:"id"`
	Status    SilenceStatus `json:"status"`
	Matchers  []Matcher     `json:"matchers"`
	StartsAt  string        `json:"startsAt"`
	EndsAt    string        `json:"endsAt"`
	UpdatedAt string        `json:"updatedAt"`
	CreatedBy string        `json:"createdBy"`
	Comment   string        `json:"comment"`
}
