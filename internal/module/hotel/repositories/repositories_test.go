package repositories_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"tourism-service/internal/module/hotel/models/entity"
	"tourism-service/internal/module/hotel/models/request"
	"tourism-service/internal/module/hotel/repositories"
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

func hotelRows() *sqlxmock.Rows {
	return sqlxmock.NewRows([]string{"id", "name", "city", "amenities", "default_open", "is_active", "created_by_id"})
}

func TestFindHotelByID(t *testing.T) {
	query := regexp.QuoteMeta("FROM hotels WHERE id = $1 AND ($2 OR is_active)")

	testCases := []struct {
		name          string
		rows          *sqlxmock.Rows
		dbErr         error
		expectedCode  int
		expectedHotel entity.Hotel
	}{
		{
			name: "found",
			rows: hotelRows().AddRow("20001", "Snow Peak", "Manali", "{WiFi,Spa}", true, true, "10001"),
			expectedHotel: entity.Hotel{
				ID: "20001", Name: "Snow Peak", City: "Manali", Amenities: pq.StringArray{"WiFi", "Spa"},
				DefaultOpen: true, IsActive: true, CreatedByID: "10001",
			},
		},
		{
			name:         "not found",
			rows:         hotelRows(),
			expectedCode: 404,
		},
		{
			name:         "database error",
			dbErr:        assert.AnError,
			expectedCode: 500,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			setup(t)
			exp := mock.ExpectQuery(query).WithArgs("20001", false)
			if tc.dbErr != nil {
				exp.WillReturnError(tc.dbErr)
			} else {
				exp.WillReturnRows(tc.rows)
			}

			hotel, err := repo.FindHotelByID(context.Background(), "20001", false)
			if tc.expectedCode != 0 {
				assert.True(t, errors.Is(err, tc.expectedCode))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expectedHotel, hotel)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCreateHotelConflict(t *testing.T) {
	setup(t)
	mock.ExpectQuery("INSERT INTO hotels").WillReturnError(&pq.Error{Code: "23505"})

	_, err := repo.CreateHotel(context.Background(), entity.Hotel{ID: "20001", Amenities: pq.StringArray{}, Images: pq.StringArray{}})
	assert.True(t, errors.Is(err, 409))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindHotels(t *testing.T) {
	setup(t)
	minPrice := 1000.0

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM hotels WHERE is_active AND city ILIKE $1 AND price_per_night >= $2")).
		WithArgs("%manali%", minPrice).
		WillReturnRows(sqlxmock.NewRows([]string{"count"}).AddRow(11))
	mock.ExpectQuery(regexp.QuoteMeta("WHERE is_active AND city ILIKE $1 AND price_per_night >= $2 ORDER BY created_at DESC LIMIT $3 OFFSET $4")).
		WithArgs("%manali%", minPrice, 10, 10).
		WillReturnRows(hotelRows().AddRow("20001", "Snow Peak", "Manali", "{}", true, true, "10001"))

	hotels, total, err := repo.FindHotels(context.Background(), entity.HotelFilter{
		Page: 2, Limit: 10, City: "manali", MinPrice: &minPrice,
	})
	require.NoError(t, err)
	assert.Equal(t, 11, total)
	assert.Len(t, hotels, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindHotelsIncludeInactive(t *testing.T) {
	setup(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM hotels")).
		WillReturnRows(sqlxmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC LIMIT $1 OFFSET $2")).
		WithArgs(10, 0).
		WillReturnRows(hotelRows())

	hotels, total, err := repo.FindHotels(context.Background(), entity.HotelFilter{Page: 1, Limit: 10, IncludeInactive: true})
	require.NoError(t, err)
	assert.Equal(t, 0, total)
	assert.Empty(t, hotels)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateHotel(t *testing.T) {
	setup(t)
	name := "Snow Peak Resort"
	rooms := 60

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE hotels SET name = $1, total_rooms = $2, updated_at = NOW() WHERE id = $3 RETURNING")).
		WithArgs(name, rooms, "20001").
		WillReturnRows(hotelRows().AddRow("20001", name, "Manali", "{}", true, true, "10001"))

	hotel, err := repo.UpdateHotel(context.Background(), "20001", request.UpdateHotel{Name: &name, TotalRooms: &rooms})
	require.NoError(t, err)
	assert.Equal(t, name, hotel.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetHotelActive(t *testing.T) {
	setup(t)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE hotels SET is_active = $2")).
		WithArgs("20001", false).
		WillReturnResult(sqlxmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE hotels SET is_active = $2")).
		WithArgs("99999", true).
		WillReturnResult(sqlxmock.NewResult(0, 0))

	assert.NoError(t, repo.SetHotelActive(context.Background(), "20001", false))
	assert.True(t, errors.Is(repo.SetHotelActive(context.Background(), "99999", true), 404))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindAvailableHotels(t *testing.T) {
	setup(t)
	checkIn := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	checkOut := checkIn.AddDate(0, 0, 3)

	mock.ExpectQuery(regexp.QuoteMeta("AND NOT EXISTS (")).
		WithArgs(checkIn, checkOut, 3).
		WillReturnRows(hotelRows().AddRow("20001", "Snow Peak", "Manali", "{}", true, true, "10001"))

	hotels, err := repo.FindAvailableHotels(context.Background(), checkIn, checkOut)
	require.NoError(t, err)
	assert.Len(t, hotels, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateSchedule(t *testing.T) {
	date := time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC)

	t.Run("duplicate date", func(t *testing.T) {
		setup(t)
		mock.ExpectQuery("INSERT INTO hotel_schedules").WillReturnError(&pq.Error{Code: "23505"})

		_, err := repo.CreateSchedule(context.Background(), entity.Schedule{HotelID: "20001", Date: date})
		assert.True(t, errors.Is(err, 409))
	})

	t.Run("booked over available", func(t *testing.T) {
		setup(t)
		mock.ExpectQuery("INSERT INTO hotel_schedules").WillReturnError(&pq.Error{Code: "23514"})

		_, err := repo.CreateSchedule(context.Background(), entity.Schedule{HotelID: "20001", Date: date})
		assert.True(t, errors.Is(err, 400))
	})
}

func TestFindSchedules(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)
	rows := func() *sqlxmock.Rows {
		return sqlxmock.NewRows([]string{"id", "hotel_id", "date", "available_rooms", "booked_rooms", "status", "is_active"}).
			AddRow(1, "20001", start, 10, 2, "available", true)
	}

	t.Run("between", func(t *testing.T) {
		setup(t)
		mock.ExpectQuery(regexp.QuoteMeta("WHERE is_active AND hotel_id = $1 AND date BETWEEN $2 AND $3 ORDER BY date ASC")).
			WithArgs("20001", start, end).
			WillReturnRows(rows())

		schedules, err := repo.FindSchedules(context.Background(), entity.ScheduleFilter{HotelID: "20001", StartDate: &start, EndDate: &end})
		require.NoError(t, err)
		assert.Equal(t, 8, schedules[0].Remaining())
	})

	t.Run("start only", func(t *testing.T) {
		setup(t)
		mock.ExpectQuery(regexp.QuoteMeta("WHERE is_active AND date >= $1 ORDER BY date ASC")).
			WithArgs(start).
			WillReturnRows(rows())

		schedules, err := repo.FindSchedules(context.Background(), entity.ScheduleFilter{StartDate: &start})
		require.NoError(t, err)
		assert.Len(t, schedules, 1)
	})
}

func TestDeactivateScheduleNotFound(t *testing.T) {
	setup(t)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE hotel_schedules SET is_active = FALSE")).
		WithArgs(int64(7)).
		WillReturnResult(sqlxmock.NewResult(0, 0))

	err := repo.DeactivateSchedule(context.Background(), 7)
	assert.True(t, errors.Is(err, 404))
}
