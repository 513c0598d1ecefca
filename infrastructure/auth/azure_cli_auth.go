package auth

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"

	"github.com/ca-srg/azusage/domain"
)

const managementScope = "https://management.azure.com/.default"

// AzureAuthenticator provides credentials for the management plane and a
// way to verify the local session before any work starts.
type AzureAuthenticator interface {
	Credential() azcore.TokenCredential
	VerifySession(ctx context.Context) error
}

// AzureCLIAuthenticator authenticates with the token cache of the local
// Azure CLI session (az login).
type AzureCLIAuthenticator struct {
	credential *azidentity.AzureCLICredential
}

// NewAzureCLIAuthenticator creates an authenticator backed by the Azure CLI.
func NewAzureCLIAuthenticator() (*AzureCLIAuthenticator, error) {
	cred, err := azidentity.NewAzureCLICredential(nil)
	if err != nil {
		return nil, domain.ErrAuthWithCause("failed to create Azure CLI credential", err)
	}
	return &AzureCLIAuthenticator{credential: cred}, nil
}

// Credential returns the token credential for the management plane.
func (a *AzureCLIAuthenticator) Credential() azcore.TokenCredential {
	return a.credential
}

// VerifySession requests a management token to confirm the CLI session is
// signed in and not expired.
func (a *AzureCLIAuthenticator) VerifySession(ctx context.Context) error {
	_, err := a.credential.GetToken(ctx, policy.TokenRequestOptions{
		Scopes: []string{managementScope},
	})
	if err != nil {
		return domain.ErrAuthWithCause("Azure CLI session is not available, run 'az login'", err)
	}
	return nil
}
