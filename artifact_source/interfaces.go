package artifact_source

// Source is implemented by anything that can produce a local archive of
// donation records. Sources provided by the SDK: [AzureBlobSource],
// [FileSystemSource]
type Source interface {
	Identifier() string
	Close() error
}
