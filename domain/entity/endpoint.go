package entity

// Endpoint is one discovered Azure OpenAI / AI Services account. Identity is
// the full ARM resource ID; the remaining fields are display metadata carried
// into every usage record produced for the endpoint. Endpoints are created
// once per discovery run and never mutated.
type Endpoint struct {
	ID               string
	Name             string
	Kind             string
	SubscriptionID   string
	SubscriptionName string
	ResourceGroup    string
	Location         string
}
