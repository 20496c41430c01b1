package meta

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/afs/url"
	"gopkg.in/yaml.v3"
)

// Service loads configuration documents and command scripts from any afs supported location
type Service struct {
	fs      afs.Service
	baseURL string
	options []storage.Option
}

// URL resolves location against the base URL
func (s *Service) URL(location string) string {
	if s.baseURL != "" && url.IsRelative(location) {
		return url.Join(s.baseURL, location)
	}
	return location
}

// Download returns the raw content of location
func (s *Service) Download(ctx context.Context, location string) ([]byte, error) {
	URL := s.URL(location)
	data, err := s.fs.DownloadWithURL(ctx, URL, s.options...)
	if err != nil {
		return nil, fmt.Errorf("failed to download %v: %w", URL, err)
	}
	return data, nil
}

// Load decodes the YAML document at location into target, expanding ${env.KEY} expressions
func (s *Service) Load(ctx context.Context, location string, target interface{}) error {
	data, err := s.Download(ctx, location)
	if err != nil {
		return err
	}
	if err = yaml.Unmarshal([]byte(expandEnv(string(data))), target); err != nil {
		return fmt.Errorf("failed to decode %v: %w", s.URL(location), err)
	}
	return nil
}

// New creates a meta service
func New(fs afs.Service, baseURL string, options ...storage.Option) *Service {
	if fs == nil {
		fs = afs.New()
	}
	return &Service{fs: fs, baseURL: baseURL, options: options}
}
