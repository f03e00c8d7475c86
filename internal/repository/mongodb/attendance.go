package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type attendanceRepositoryImpl struct {
	coll *mongo.Collection
}

func NewAttendanceRepository(db *database.MongoDB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{coll: db.Collection(database.CollectionAttendance)}
}

func attendanceKey(employeeID, date string) bson.M {
	return bson.M{"employeeId": employeeID, "date": date}
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, error) {
	query := bson.M{}
	if filter.EmployeeID != nil {
		query["employeeId"] = *filter.EmployeeID
	}
	if filter.Date != nil {
		query["date"] = *filter.Date
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "employeeId", Value: 1}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	var docs []attendanceDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode attendance: %w", err)
	}

	records := make([]attendance.Attendance, 0, len(docs))
	for _, d := range docs {
		records = append(records, d.toEntity())
	}
	return records, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date string) (*attendance.Attendance, error) {
	var doc attendanceDocument
	if err := r.coll.FindOne(ctx, attendanceKey(employeeID, date)).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance for employee %s on %s: %w", employeeID, date, err)
	}
	a := doc.toEntity()
	return &a, nil
}

// Upsert implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Upsert(ctx context.Context, a attendance.Attendance) error {
	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, attendanceKey(a.EmployeeID, a.Date), newAttendanceDocument(a), opts); err != nil {
		return fmt.Errorf("failed to upsert attendance: %w", err)
	}
	return nil
}

// CompareAndSwap implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) CompareAndSwap(ctx context.Context, expected *attendance.Attendance, next attendance.Attendance) (bool, error) {
	if expected == nil {
		if _, err := r.coll.InsertOne(ctx, newAttendanceDocument(next)); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return false, nil
			}
			return false, fmt.Errorf("failed to insert attendance: %w", err)
		}
		return true, nil
	}

	// A null in the filter also matches a missing field.
	filter := attendanceKey(next.EmployeeID, next.Date)
	filter["clockIn"] = expected.ClockIn
	filter["clockOut"] = expected.ClockOut

	res, err := r.coll.ReplaceOne(ctx, filter, newAttendanceDocument(next))
	if err != nil {
		return false, fmt.Errorf("failed to update attendance: %w", err)
	}
	return res.MatchedCount == 1, nil
}

// ReplaceAll implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ReplaceAll(ctx context.Context, records []attendance.Attendance) error {
	docs := make([]interface{}, 0, len(records))
	for _, a := range records {
		docs = append(docs, newAttendanceDocument(a))
	}
	return replaceAll(ctx, r.coll, docs)
}
