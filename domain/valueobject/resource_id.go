package valueobject

import (
	"strings"
)

// ResourceID holds the positional components of an ARM resource ID.
type ResourceID struct {
	SubscriptionID string
	ResourceGroup  string
	Name           string
}

// ParseResourceID extracts the subscription ID, resource group, and resource
// name from a slash-delimited ARM resource ID of the form
// /subscriptions/{sub}/resourceGroups/{rg}/providers/{ns}/accounts/{name}.
// Extraction is positional; paths shorter than expected yield empty strings
// for the missing segments. The name is always the final segment.
func ParseResourceID(resourceID string) ResourceID {
	parts := strings.Split(resourceID, "/")

	var id ResourceID
	if len(parts) > 2 {
		id.SubscriptionID = parts[2]
	}
	if len(parts) > 4 {
		id.ResourceGroup = parts[4]
	}
	if len(parts) > 0 {
		id.Name = parts[len(parts)-1]
	}
	return id
}
