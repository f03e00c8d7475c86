package memory

import (
	"context"
	"sort"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/leave"
)

type leaveRepositoryImpl struct {
	s *Store
}

func NewLeaveRepository(s *Store) leave.LeaveRepository {
	return &leaveRepositoryImpl{s: s}
}

func (r *leaveRepositoryImpl) List(ctx context.Context, filter leave.LeaveFilter) ([]leave.Leave, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	leaves := make([]leave.Leave, 0)
	for _, l := range r.s.leaves {
		if filter.EmployeeID != nil && l.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.Status != nil && l.Status != *filter.Status {
			continue
		}
		leaves = append(leaves, l)
	}
	sort.Slice(leaves, func(i, j int) bool {
		if leaves[i].Date != leaves[j].Date {
			return leaves[i].Date < leaves[j].Date
		}
		return leaves[i].EmployeeID < leaves[j].EmployeeID
	})
	return leaves, nil
}

func (r *leaveRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date string) (leave.Leave, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	l, ok := r.s.leaves[dayKey{employeeID, date}]
	if !ok {
		return leave.Leave{}, leave.ErrLeaveNotFound
	}
	return l, nil
}

func (r *leaveRepositoryImpl) Create(ctx context.Context, l leave.Leave) (leave.Leave, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	key := dayKey{l.EmployeeID, l.Date}
	if _, exists := r.s.leaves[key]; exists {
		return leave.Leave{}, leave.ErrLeaveAlreadyExists
	}
	r.s.leaves[key] = l
	return l, nil
}

func (r *leaveRepositoryImpl) UpdateStatus(ctx context.Context, employeeID string, date string, status leave.Status) (leave.Leave, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	key := dayKey{employeeID, date}
	l, ok := r.s.leaves[key]
	if !ok {
		return leave.Leave{}, leave.ErrLeaveNotFound
	}
	l.Status = status
	r.s.leaves[key] = l
	return l, nil
}

func (r *leaveRepositoryImpl) ReplaceAll(ctx context.Context, leaves []leave.Leave) error {
	next := make(map[dayKey]leave.Leave, len(leaves))
	for _, l := range leaves {
		next[dayKey{l.EmployeeID, l.Date}] = l
	}

	r.s.mu.Lock()
	r.s.leaves = next
	r.s.mu.Unlock()
	return nil
}
