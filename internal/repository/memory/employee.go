package memory

import (
	"context"
	"sort"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
)

type employeeRepositoryImpl struct {
	s *Store
}

func NewEmployeeRepository(s *Store) employee.EmployeeRepository {
	return &employeeRepositoryImpl{s: s}
}

func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	employees := make([]employee.Employee, 0, len(r.s.employees))
	for _, e := range r.s.employees {
		employees = append(employees, e)
	}
	sort.Slice(employees, func(i, j int) bool {
		if employees[i].Name != employees[j].Name {
			return employees[i].Name < employees[j].Name
		}
		return employees[i].ID < employees[j].ID
	})
	return employees, nil
}

func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	e, ok := r.s.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (r *employeeRepositoryImpl) GetByUniqueLink(ctx context.Context, uniqueLink string) (employee.Employee, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, e := range r.s.employees {
		if e.UniqueLink == uniqueLink {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *employeeRepositoryImpl) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.employees[e.ID]; ok {
		return employee.Employee{}, employee.ErrEmployeeIDExists
	}
	for _, existing := range r.s.employees {
		if existing.UniqueLink == e.UniqueLink {
			return employee.Employee{}, employee.ErrUniqueLinkExists
		}
	}
	r.s.employees[e.ID] = e
	return e, nil
}

func (r *employeeRepositoryImpl) Update(ctx context.Context, id string, update employee.UpdateEmployee) (employee.Employee, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	e, ok := r.s.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	if update.Name != nil {
		e.Name = *update.Name
	}
	if update.Email != nil {
		e.Email = *update.Email
	}
	if update.Designation != nil {
		e.Designation = *update.Designation
	}
	if update.PasswordHash != nil {
		e.PasswordHash = *update.PasswordHash
	}
	r.s.employees[id] = e
	return e, nil
}

func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.employees[id]; !ok {
		return employee.ErrEmployeeNotFound
	}
	delete(r.s.employees, id)
	return nil
}

func (r *employeeRepositoryImpl) ReplaceAll(ctx context.Context, employees []employee.Employee) error {
	next := make(map[string]employee.Employee, len(employees))
	links := make(map[string]struct{}, len(employees))
	for _, e := range employees {
		if _, dup := links[e.UniqueLink]; dup {
			return employee.ErrUniqueLinkExists
		}
		links[e.UniqueLink] = struct{}{}
		next[e.ID] = e
	}

	r.s.mu.Lock()
	r.s.employees = next
	r.s.mu.Unlock()
	return nil
}
