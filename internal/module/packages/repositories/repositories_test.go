package repositories_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"tourism-service/internal/module/packages/models/entity"
	"tourism-service/internal/module/packages/models/request"
	"tourism-service/internal/module/packages/repositories"
	"tourism-service/internal/pkg/errors"
	log_internal "tourism-service/internal/pkg/log"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlxmock "github.com/zhashkevych/go-sqlxmock"
)

var (
	mock sqlxmock.Sqlmock
	dbx  *sqlx.DB
	repo repositories.Repositories
)

func setup(t *testing.T) {
	var err error
	dbx, mock, err = sqlxmock.Newx()
	require.NoError(t, err)
	repo = repositories.New(dbx, log_internal.GetLogger())
}

func july(d int) time.Time {
	return time.Date(2025, time.July, d, 0, 0, 0, 0, time.UTC)
}

func packageRows() *sqlxmock.Rows {
	return sqlxmock.NewRows([]string{"id", "name", "destinations", "is_active", "created_by_id"})
}

func scheduleRows() *sqlxmock.Rows {
	return sqlxmock.NewRows([]string{"id", "package_id", "start_date", "end_date", "available_slots", "booked_slots", "status", "is_active"})
}

func TestCreatePackage(t *testing.T) {
	ctx := context.Background()
	insertPackage := regexp.QuoteMeta("INSERT INTO packages")
	insertSchedule := regexp.QuoteMeta("INSERT INTO package_schedules")

	pkg := entity.Package{ID: "30001", Name: "Himalayan Trek", Destinations: pq.StringArray{"Manali"}, CreatedByID: "10001"}
	schedules := []entity.Schedule{
		{StartDate: july(1), EndDate: july(5), AvailableSlots: 20, Status: entity.ScheduleAvailable},
		{StartDate: july(10), EndDate: july(14), AvailableSlots: 15, Status: entity.ScheduleAvailable},
	}

	t.Run("commits package and schedules", func(t *testing.T) {
		setup(t)
		mock.ExpectBegin()
		mock.ExpectQuery(insertPackage).
			WillReturnRows(packageRows().AddRow("30001", "Himalayan Trek", "{Manali}", true, "10001"))
		mock.ExpectQuery(insertSchedule).
			WillReturnRows(scheduleRows().AddRow(1, "30001", july(1), july(5), 20, 0, "available", true))
		mock.ExpectQuery(insertSchedule).
			WillReturnRows(scheduleRows().AddRow(2, "30001", july(10), july(14), 15, 0, "available", true))
		mock.ExpectCommit()

		created, saved, err := repo.CreatePackage(ctx, pkg, schedules)
		require.NoError(t, err)
		assert.Equal(t, "30001", created.ID)
		assert.Equal(t, pq.StringArray{"Manali"}, created.Destinations)
		require.Len(t, saved, 2)
		assert.Equal(t, int64(2), saved[1].ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back when a schedule fails", func(t *testing.T) {
		setup(t)
		mock.ExpectBegin()
		mock.ExpectQuery(insertPackage).
			WillReturnRows(packageRows().AddRow("30001", "Himalayan Trek", "{Manali}", true, "10001"))
		mock.ExpectQuery(insertSchedule).WillReturnError(assert.AnError)
		mock.ExpectRollback()

		_, _, err := repo.CreatePackage(ctx, pkg, schedules)
		assert.True(t, errors.Is(err, 500))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("check violation on schedule", func(t *testing.T) {
		setup(t)
		mock.ExpectBegin()
		mock.ExpectQuery(insertPackage).
			WillReturnRows(packageRows().AddRow("30001", "Himalayan Trek", "{Manali}", true, "10001"))
		mock.ExpectQuery(insertSchedule).WillReturnError(&pq.Error{Code: "23514"})
		mock.ExpectRollback()

		_, _, err := repo.CreatePackage(ctx, pkg, schedules)
		assert.True(t, errors.Is(err, 400))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate id", func(t *testing.T) {
		setup(t)
		mock.ExpectBegin()
		mock.ExpectQuery(insertPackage).WillReturnError(&pq.Error{Code: "23505"})
		mock.ExpectRollback()

		_, _, err := repo.CreatePackage(ctx, pkg, nil)
		assert.True(t, errors.Is(err, 409))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFindCoveringSchedule(t *testing.T) {
	ctx := context.Background()
	query := regexp.QuoteMeta("AND is_active AND status NOT IN ('cancelled', 'completed')")

	t.Run("booked schedule with freed slots", func(t *testing.T) {
		setup(t)
		mock.ExpectQuery(query).WithArgs("30001", july(2), july(4)).
			WillReturnRows(scheduleRows().AddRow(7, "30001", july(1), july(5), 30, 20, "booked", true))

		schedule, err := repo.FindCoveringSchedule(ctx, "30001", july(2), july(4))
		require.NoError(t, err)
		assert.Equal(t, 10, schedule.Remaining())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("none", func(t *testing.T) {
		setup(t)
		mock.ExpectQuery(query).WithArgs("30001", july(2), july(4)).WillReturnRows(scheduleRows())

		_, err := repo.FindCoveringSchedule(ctx, "30001", july(2), july(4))
		assert.True(t, errors.Is(err, 404))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFindAvailableSchedules(t *testing.T) {
	ctx := context.Background()
	setup(t)
	mock.ExpectQuery(regexp.QuoteMeta("AND s.is_active AND s.status NOT IN ('cancelled', 'completed')")).
		WithArgs(july(1), july(10)).
		WillReturnRows(scheduleRows().AddRow(7, "30001", july(1), july(5), 30, 20, "booked", true))

	schedules, err := repo.FindAvailableSchedules(ctx, july(1), july(10))
	require.NoError(t, err)
	assert.Len(t, schedules, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindOverlappingSchedule(t *testing.T) {
	ctx := context.Background()
	query := regexp.QuoteMeta("start_date <= $3 AND end_date >= $2 AND id <> $4")

	t.Run("overlap found", func(t *testing.T) {
		setup(t)
		mock.ExpectQuery(query).WithArgs("30001", july(4), july(8), int64(0)).
			WillReturnRows(scheduleRows().AddRow(7, "30001", july(1), july(5), 20, 18, "available", true))

		schedule, err := repo.FindOverlappingSchedule(ctx, "30001", july(4), july(8), 0)
		require.NoError(t, err)
		assert.Equal(t, int64(7), schedule.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no overlap", func(t *testing.T) {
		setup(t)
		mock.ExpectQuery(query).WithArgs("30001", july(6), july(10), int64(7)).
			WillReturnRows(scheduleRows())

		_, err := repo.FindOverlappingSchedule(ctx, "30001", july(6), july(10), 7)
		assert.True(t, errors.Is(err, 404))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFindPackages(t *testing.T) {
	setup(t)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM packages")).
		WillReturnRows(sqlxmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC")).
		WillReturnRows(packageRows().AddRow("30001", "Himalayan Trek", "{Manali}", true, "10001"))

	packages, total, err := repo.FindPackages(ctx, entity.PackageFilter{Page: 1, Limit: 10, Destination: "Manali", IsActive: true})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, packages, 1)
	assert.Equal(t, "30001", packages[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateSchedule(t *testing.T) {
	ctx := context.Background()
	slots := 25

	t.Run("writes only patched columns", func(t *testing.T) {
		setup(t)
		mock.ExpectQuery(regexp.QuoteMeta("UPDATE package_schedules SET available_slots = $1, updated_at = NOW() WHERE id = $2")).
			WithArgs(25, int64(7)).
			WillReturnRows(scheduleRows().AddRow(7, "30001", july(1), july(5), 25, 18, "available", true))

		schedule, err := repo.UpdateSchedule(ctx, 7, entity.SchedulePatch{AvailableSlots: &slots})
		require.NoError(t, err)
		assert.Equal(t, 25, schedule.AvailableSlots)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("check violation", func(t *testing.T) {
		setup(t)
		mock.ExpectQuery(regexp.QuoteMeta("UPDATE package_schedules SET available_slots = $1")).
			WillReturnError(&pq.Error{Code: "23514"})

		_, err := repo.UpdateSchedule(ctx, 7, entity.SchedulePatch{AvailableSlots: &slots})
		assert.True(t, errors.Is(err, 400))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpdatePackageWithoutFields(t *testing.T) {
	setup(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM packages WHERE id = $1 AND ($2 OR is_active)")).
		WithArgs("30001", true).
		WillReturnRows(packageRows().AddRow("30001", "Himalayan Trek", "{}", false, "10001"))

	pkg, err := repo.UpdatePackage(context.Background(), "30001", request.UpdatePackage{})
	require.NoError(t, err)
	assert.Equal(t, "30001", pkg.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeactivateSchedule(t *testing.T) {
	query := regexp.QuoteMeta("UPDATE package_schedules SET is_active = FALSE")

	t.Run("deactivated", func(t *testing.T) {
		setup(t)
		mock.ExpectExec(query).WithArgs(int64(7)).WillReturnResult(sqlxmock.NewResult(0, 1))
		assert.NoError(t, repo.DeactivateSchedule(context.Background(), 7))
	})

	t.Run("missing", func(t *testing.T) {
		setup(t)
		mock.ExpectExec(query).WithArgs(int64(7)).WillReturnResult(sqlxmock.NewResult(0, 0))
		assert.True(t, errors.Is(repo.DeactivateSchedule(context.Background(), 7), 404))
	})
}

func TestCompleteElapsedSchedules(t *testing.T) {
	setup(t)
	mock.ExpectExec(regexp.QuoteMeta("SET status = 'completed'")).
		WithArgs(july(6)).
		WillReturnResult(sqlxmock.NewResult(0, 3))

	n, err := repo.CompleteElapsedSchedules(context.Background(), july(6))
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
