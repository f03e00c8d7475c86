package mongodb

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type employeeRepositoryImpl struct {
	coll *mongo.Collection
}

func NewEmployeeRepository(db *database.MongoDB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{coll: db.Collection(database.CollectionEmployees)}
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	var docs []employeeDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode employees: %w", err)
	}

	employees := make([]employee.Employee, 0, len(docs))
	for _, d := range docs {
		employees = append(employees, d.toEntity())
	}
	return employees, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// GetByUniqueLink implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByUniqueLink(ctx context.Context, uniqueLink string) (employee.Employee, error) {
	return r.findOne(ctx, bson.M{"uniqueLink": uniqueLink})
}

func (r *employeeRepositoryImpl) findOne(ctx context.Context, filter bson.M) (employee.Employee, error) {
	var doc employeeDocument
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return doc.toEntity(), nil
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	if _, err := r.coll.InsertOne(ctx, newEmployeeDocument(e)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			if isPrimaryKeyDuplicate(err) {
				return employee.Employee{}, employee.ErrEmployeeIDExists
			}
			return employee.Employee{}, employee.ErrUniqueLinkExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return e, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, id string, update employee.UpdateEmployee) (employee.Employee, error) {
	if update.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	set := bson.M{}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Email != nil {
		set["email"] = *update.Email
	}
	if update.Designation != nil {
		set["designation"] = *update.Designation
	}
	if update.PasswordHash != nil {
		set["passwordHash"] = *update.PasswordHash
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc employeeDocument
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to update employee with id %s: %w", id, err)
	}
	return doc.toEntity(), nil
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete employee with id %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// isPrimaryKeyDuplicate reports whether err is a duplicate key on _id
// rather than on a secondary unique index.
func isPrimaryKeyDuplicate(err error) bool {
	var we mongo.WriteException
	if !errors.As(err, &we) {
		return false
	}
	for _, e := range we.WriteErrors {
		if e.Code == 11000 && strings.Contains(e.Message, "index: _id_ ") {
			return true
		}
	}
	return false
}

// ReplaceAll implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ReplaceAll(ctx context.Context, employees []employee.Employee) error {
	docs := make([]interface{}, 0, len(employees))
	for _, e := range employees {
		docs = append(docs, newEmployeeDocument(e))
	}
	return replaceAll(ctx, r.coll, docs)
}

// replaceAll clears coll and inserts docs in order inside one transaction,
// so a failed insert leaves the previous contents in place. Transactions
// need a replica set or mongos deployment.
func replaceAll(ctx context.Context, coll *mongo.Collection, docs []interface{}) error {
	session, err := coll.Database().Client().StartSession()
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		if _, err := coll.DeleteMany(sc, bson.M{}); err != nil {
			return nil, fmt.Errorf("failed to clear %s: %w", coll.Name(), err)
		}
		if len(docs) == 0 {
			return nil, nil
		}
		if _, err := coll.InsertMany(sc, docs); err != nil {
			return nil, fmt.Errorf("failed to insert into %s: %w", coll.Name(), err)
		}
		return nil, nil
	})
	return err
}
