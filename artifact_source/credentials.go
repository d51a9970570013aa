package artifact_source

import (
	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
)

// CredentialProvider yields the token credential established by an external
// login step. The pipeline neither stores nor renews credentials - when the
// ambient credential context is absent or invalid the fetch fails with an
// AuthenticationError.
type CredentialProvider interface {
	Credential() (azcore.TokenCredential, error)
}

// CLICredentialProvider resolves credentials from the Azure CLI login state
// (az login)
type CLICredentialProvider struct{}

func (CLICredentialProvider) Credential() (azcore.TokenCredential, error) {
	return azidentity.NewAzureCLICredential(nil)
}

// StaticCredentialProvider wraps an already constructed credential - used in
// tests and by callers with their own credential chain
type StaticCredentialProvider struct {
	Cred azcore.TokenCredential
}

func (p StaticCredentialProvider) Credential() (azcore.TokenCredential, error) {
	return p.Cred, nil
}
