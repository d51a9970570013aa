package artifact_source

import (
	"fmt"
)

// Factory is a global SourceFactory instance
var Factory = newSourceFactory()

type SourceFactory struct {
	sources map[string]func() Source
}

func newSourceFactory() SourceFactory {
	return SourceFactory{
		sources: make(map[string]func() Source),
	}
}

func (f *SourceFactory) RegisterSources(sourceFuncs ...func() Source) {
	for _, ctor := range sourceFuncs {
		// create an instance of the source to get the identifier
		c := ctor()
		f.sources[c.Identifier()] = ctor
	}
}

func (f *SourceFactory) GetSource(id string) (Source, error) {
	ctor, ok := f.sources[id]
	if !ok {
		return nil, fmt.Errorf("source not registered: %s", id)
	}
	return ctor(), nil
}
