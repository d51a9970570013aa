package artifact_source

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"path/filepath"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/rs/xid"
	typehelpers "github.com/turbot/go-kit/types"

	"github.com/openddlab/donorpipe/archive"
	"github.com/openddlab/donorpipe/constants"
	"github.com/openddlab/donorpipe/enrichment"
	"github.com/openddlab/donorpipe/errs"
	"github.com/openddlab/donorpipe/events"
	"github.com/openddlab/donorpipe/observable"
	"github.com/openddlab/donorpipe/rate_limiter"
	"github.com/openddlab/donorpipe/types"
)

const AzureBlobSourceIdentifier = "azure_blob"

func init() {
	// register source
	Factory.RegisterSources(NewAzureBlobSource)
}

// AzureBlobSource is a [Source] implementation that reads donation bundles
// from Azure Blob Storage. Credentials come from an injected
// [CredentialProvider] - by default the ambient Azure CLI login state.
type AzureBlobSource struct {
	observable.Base

	Config     *AzureBlobSourceConfig
	Extensions types.ExtensionLookup
	TmpDir     string

	executionId        string
	credentialProvider CredentialProvider
	limiter            *rate_limiter.APILimiter
	client             *azblob.Client
}

func NewAzureBlobSource() Source {
	return &AzureBlobSource{}
}

func (s *AzureBlobSource) Init(ctx context.Context, config *AzureBlobSourceConfig, opts ...SourceOption) error {
	slog.Info("Initializing AzureBlobSource")

	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	s.Config = config
	s.Extensions = types.NewExtensionLookup(config.Extensions)
	s.TmpDir = path.Join(constants.BaseTmpDir, fmt.Sprintf("azure-%s", config.Account))

	for _, opt := range opts {
		opt(s)
	}
	if s.credentialProvider == nil {
		s.credentialProvider = CLICredentialProvider{}
	}
	if s.limiter == nil {
		s.limiter = rate_limiter.NewAPILimiter(rate_limiter.DefaultBlobAPILimiter())
	}
	if s.executionId == "" {
		s.executionId = xid.New().String()
	}

	client, err := s.getClient(ctx)
	if err != nil {
		return err
	}
	s.client = client

	slog.Info("Initialized AzureBlobSource", "account", config.Account, "extensions", s.Extensions)
	return nil
}

func (s *AzureBlobSource) Identifier() string {
	return AzureBlobSourceIdentifier
}

func (s *AzureBlobSource) Close() error {
	// delete the temp dir and all files
	return os.RemoveAll(s.TmpDir)
}

// DownloadBlob fetches a single blob and stages it at destination. If
// destination is empty the blob is staged under the source temp dir. On any
// failure the partial file is removed.
func (s *AzureBlobSource) DownloadBlob(ctx context.Context, container, blobPath, destination string) (*types.DownloadedArtifactInfo, error) {
	if destination == "" {
		destination = path.Join(s.TmpDir, path.Base(blobPath))
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, &errs.TransientNetworkError{Op: "download", Err: err}
	}
	defer s.limiter.Release()

	resp, err := s.client.DownloadStream(ctx, container, blobPath, nil)
	if err != nil {
		return nil, classifyError(err, "download", s.Config.Account, container, blobPath)
	}
	defer resp.Body.Close()

	if err := os.MkdirAll(filepath.Dir(destination), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory for file, %w", err)
	}

	outFile, err := os.Create(destination)
	if err != nil {
		return nil, fmt.Errorf("failed to create file, %w", err)
	}
	defer outFile.Close()

	size, err := io.Copy(outFile, resp.Body)
	if err != nil {
		os.Remove(destination)
		return nil, classifyError(err, "download", s.Config.Account, container, blobPath)
	}

	info := types.NewArtifactInfo(blobPath, types.WithEnrichmentFields(s.enrichmentFields(container, blobPath)))
	downloadInfo := types.NewDownloadedArtifactInfo(info, destination, size)

	if err := s.NotifyObservers(ctx, &events.ArtifactDownloaded{Base: events.NewBase(s.executionId), Info: downloadInfo}); err != nil {
		slog.Warn("failed to notify observers of downloaded artifact", "error", err)
	}
	return downloadInfo, nil
}

// DownloadBundle lists every blob under the given prefix and bundles the
// matching ones into a single local zip archive at destination. If
// destination is empty the bundle is staged under the source temp dir.
func (s *AzureBlobSource) DownloadBundle(ctx context.Context, container, prefix, destination string) (*types.DownloadedArtifactInfo, error) {
	if destination == "" {
		destination = path.Join(s.TmpDir, constants.DefaultArchiveName)
	}

	w, err := archive.NewWriter(destination)
	if err != nil {
		return nil, err
	}

	var entryCount int
	pager := s.client.NewListBlobsFlatPager(container, &azblob.ListBlobsFlatOptions{
		Prefix: &prefix,
	})
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			w.Abort()
			return nil, classifyError(err, "list", s.Config.Account, container, prefix)
		}

		for _, item := range page.Segment.BlobItems {
			name := typehelpers.SafeString(item.Name)
			if !s.Extensions.IsValid(name) {
				continue
			}

			info := types.NewArtifactInfo(name, types.WithEnrichmentFields(s.enrichmentFields(container, name)))
			if item.Properties != nil && item.Properties.ContentLength != nil {
				info.Size = *item.Properties.ContentLength
			}
			if err := s.NotifyObservers(ctx, &events.ArtifactDiscovered{Base: events.NewBase(s.executionId), Info: info}); err != nil {
				slog.Warn("failed to notify observers of discovered artifact", "error", err)
			}

			if err := s.addBlobToBundle(ctx, w, container, name); err != nil {
				w.Abort()
				return nil, err
			}
			entryCount++
		}
	}

	if err := w.Close(); err != nil {
		return nil, err
	}

	slog.Info("Downloaded bundle", "container", container, "prefix", prefix, "entries", entryCount, "destination", destination)

	info := types.NewArtifactInfo(prefix, types.WithEnrichmentFields(s.enrichmentFields(container, prefix)))
	downloadInfo := types.NewDownloadedArtifactInfo(info, destination, 0)

	if err := s.NotifyObservers(ctx, &events.ArtifactDownloaded{Base: events.NewBase(s.executionId), Info: downloadInfo}); err != nil {
		slog.Warn("failed to notify observers of downloaded artifact", "error", err)
	}
	return downloadInfo, nil
}

func (s *AzureBlobSource) addBlobToBundle(ctx context.Context, w *archive.Writer, container, name string) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return &errs.TransientNetworkError{Op: "download", Err: err}
	}
	defer s.limiter.Release()

	resp, err := s.client.DownloadStream(ctx, container, name, nil)
	if err != nil {
		return classifyError(err, "download", s.Config.Account, container, name)
	}
	defer resp.Body.Close()

	return w.AddEntry(name, resp.Body)
}

func (s *AzureBlobSource) enrichmentFields(container, location string) *enrichment.CommonFields {
	return &enrichment.CommonFields{
		SourceType:     AzureBlobSourceIdentifier,
		SourceName:     container,
		SourceLocation: &location,
	}
}

func (s *AzureBlobSource) getClient(_ context.Context) (*azblob.Client, error) {
	cred, err := s.credentialProvider.Credential()
	if err != nil {
		return nil, &errs.AuthenticationError{Account: s.Config.Account, Err: err}
	}

	client, err := azblob.NewClient(s.Config.ServiceURL(), cred, nil)
	if err != nil {
		return nil, fmt.Errorf("unable to create blob client, %w", err)
	}
	return client, nil
}
