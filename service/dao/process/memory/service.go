package memory

import (
	"context"

	"github.com/viant/schedsim/model/process"
	"github.com/viant/schedsim/service/dao"
	"github.com/viant/schedsim/service/dao/criteria"
	"github.com/viant/schedsim/service/dao/store"
)

// Service implements an in-memory, thread-safe process store. Load and List
// hand out the stored instances; callers that need isolation clone them.
type Service struct {
	*store.MemoryStore[int, process.Process]
}

var _ dao.Service[int, process.Process] = (*Service)(nil)

func (s *Service) Save(ctx context.Context, p *process.Process) error {
	if p == nil {
		return dao.ErrNilEntity
	}
	if p.ID <= 0 {
		return dao.ErrInvalidID
	}
	if existing, err := s.MemoryStore.Load(ctx, p.ID); err == nil && existing != p {
		existing.CopyFrom(p)
		return nil
	}
	return s.MemoryStore.Save(ctx, p)
}

func (s *Service) Load(ctx context.Context, id int) (*process.Process, error) {
	if id <= 0 {
		return nil, dao.ErrInvalidID
	}
	return s.MemoryStore.Load(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return dao.ErrInvalidID
	}
	return s.MemoryStore.Delete(ctx, id)
}

// List returns processes ordered by ascending id, optionally filtered by state.
func (s *Service) List(ctx context.Context, parameters ...*dao.Parameter) ([]*process.Process, error) {
	all, err := s.MemoryStore.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(parameters) == 0 {
		return all, nil
	}
	out := make([]*process.Process, 0, len(all))
	for _, p := range all {
		if !criteria.FilterByState(p.State, parameters) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func New() *Service {
	return &Service{MemoryStore: store.NewMemoryStore[int, process.Process](func(p *process.Process) int { return p.ID })}
}
