package registry

import (
	"github.com/viant/schedsim/model/process"
	"github.com/viant/schedsim/service/dao"
)

type Option func(*Service)

// WithGenerator sets the attribute generation policy
func WithGenerator(generator Generator) Option {
	return func(s *Service) {
		s.generator = generator
	}
}

// WithProcessDAO sets the process store implementation
func WithProcessDAO(processDAO dao.Service[int, process.Process]) Option {
	return func(s *Service) {
		s.processDAO = processDAO
	}
}
