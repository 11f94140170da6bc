package usecases_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"tourism-service/internal/module/hotel/mocks"
	"tourism-service/internal/module/hotel/models/entity"
	"tourism-service/internal/module/hotel/models/request"
	"tourism-service/internal/module/hotel/usecases"
	"tourism-service/internal/pkg/errors"
	"tourism-service/internal/pkg/idgen"
	"tourism-service/internal/pkg/lock"
	log_internal "tourism-service/internal/pkg/log"
	"tourism-service/internal/pkg/policy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	uc       usecases.Usecase
	repoMock *mocks.Repositories

	admin = policy.Actor{ID: "10001", Role: policy.RoleAdmin}
	owner = policy.Actor{ID: "10002", Role: policy.RoleUser}
	other = policy.Actor{ID: "10003", Role: policy.RoleUser}
)

type fixedIDs struct{}

func (fixedIDs) Next(ctx context.Context, namespace string, exists idgen.ExistsFunc) (string, error) {
	return "20001", nil
}

func setup(t *testing.T) {
	repoMock = mocks.NewRepositories(t)
	uc = usecases.New(repoMock, log_internal.GetLogger(), fixedIDs{}, lock.Noop{})
}

func ownedHotel() entity.Hotel {
	return entity.Hotel{ID: "20001", Name: "Snow Peak", AvailableRooms: 45, Status: entity.StatusActive, DefaultOpen: true, IsActive: true, CreatedByID: owner.ID}
}

func intPtr(v int) *int { return &v }

func TestCreateHotel(t *testing.T) {
	ctx := context.Background()
	payload := &request.CreateHotel{Name: "Snow Peak", TotalRooms: 50, AvailableRooms: 45, Type: entity.TypeLuxury}

	t.Run("admin creates with defaults", func(t *testing.T) {
		setup(t)
		repoMock.On("CreateHotel", ctx, mock.MatchedBy(func(h entity.Hotel) bool {
			return h.ID == "20001" && h.CreatedByID == admin.ID && h.Status == entity.StatusActive &&
				h.DefaultOpen && h.Amenities != nil
		})).Return(entity.Hotel{ID: "20001", Name: "Snow Peak", CreatedByID: admin.ID, IsActive: true}, nil)

		resp, err := uc.CreateHotel(ctx, admin, payload)
		require.NoError(t, err)
		assert.Equal(t, "20001", resp.ID)
		assert.Equal(t, []string{}, resp.Amenities)
	})

	t.Run("non admin is forbidden", func(t *testing.T) {
		setup(t)
		_, err := uc.CreateHotel(ctx, owner, payload)
		assert.True(t, errors.Is(err, http.StatusForbidden))
	})

	t.Run("anonymous is unauthorized", func(t *testing.T) {
		setup(t)
		_, err := uc.CreateHotel(ctx, policy.Actor{}, payload)
		assert.True(t, errors.Is(err, http.StatusUnauthorized))
	})
}

func TestListHotelsPagination(t *testing.T) {
	setup(t)
	ctx := context.Background()
	repoMock.On("FindHotels", ctx, entity.HotelFilter{Page: 1, Limit: 100, City: "Manali"}).
		Return([]entity.Hotel{ownedHotel()}, 1, nil)

	resp, err := uc.ListHotels(ctx, request.ListHotels{Page: 0, Limit: 500, City: "Manali"})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, 100, resp.Limit)
	assert.Len(t, resp.Hotels, 1)
}

func TestUpdateHotelPolicy(t *testing.T) {
	ctx := context.Background()
	name := "Snow Peak Resort"
	payload := &request.UpdateHotel{Name: &name}

	t.Run("owner", func(t *testing.T) {
		setup(t)
		repoMock.On("FindHotelByID", ctx, "20001", true).Return(ownedHotel(), nil)
		updated := ownedHotel()
		updated.Name = name
		repoMock.On("UpdateHotel", ctx, "20001", *payload).Return(updated, nil)

		resp, err := uc.UpdateHotel(ctx, owner, "20001", payload)
		require.NoError(t, err)
		assert.Equal(t, name, resp.Name)
	})

	t.Run("admin", func(t *testing.T) {
		setup(t)
		repoMock.On("FindHotelByID", ctx, "20001", true).Return(ownedHotel(), nil)
		repoMock.On("UpdateHotel", ctx, "20001", *payload).Return(ownedHotel(), nil)

		_, err := uc.UpdateHotel(ctx, admin, "20001", payload)
		assert.NoError(t, err)
	})

	t.Run("other user is forbidden before mutation", func(t *testing.T) {
		setup(t)
		repoMock.On("FindHotelByID", ctx, "20001", true).Return(ownedHotel(), nil)

		_, err := uc.UpdateHotel(ctx, other, "20001", payload)
		assert.True(t, errors.Is(err, http.StatusForbidden))
		repoMock.AssertNotCalled(t, "UpdateHotel", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestSoftDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("delete hides", func(t *testing.T) {
		setup(t)
		repoMock.On("FindHotelByID", ctx, "20001", false).Return(ownedHotel(), nil)
		repoMock.On("SetHotelActive", ctx, "20001", false).Return(nil)

		assert.NoError(t, uc.DeleteHotel(ctx, owner, "20001"))
	})

	t.Run("reactivate finds inactive rows", func(t *testing.T) {
		setup(t)
		inactive := ownedHotel()
		inactive.IsActive = false
		repoMock.On("FindHotelByID", ctx, "20001", true).Return(inactive, nil)
		repoMock.On("SetHotelActive", ctx, "20001", true).Return(nil)

		resp, err := uc.ReactivateHotel(ctx, admin, "20001")
		require.NoError(t, err)
		assert.True(t, resp.IsActive)
	})

	t.Run("get hidden without flag", func(t *testing.T) {
		setup(t)
		repoMock.On("FindHotelByID", ctx, "20001", false).Return(entity.Hotel{}, errors.NotFound("hotel not found"))

		_, err := uc.GetHotel(ctx, "20001", false)
		assert.True(t, errors.Is(err, http.StatusNotFound))
	})
}

func TestAvailability(t *testing.T) {
	ctx := context.Background()
	day := time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC)
	notFound := errors.NotFound("schedule not found")

	testCases := []struct {
		name         string
		hotel        func() entity.Hotel
		schedule     entity.Schedule
		scheduleErr  error
		expectedLeft int
		fromSchedule bool
	}{
		{
			name:         "schedule row wins",
			hotel:        ownedHotel,
			schedule:     entity.Schedule{AvailableRooms: 10, BookedRooms: 7, Status: entity.ScheduleAvailable},
			expectedLeft: 3,
			fromSchedule: true,
		},
		{
			name:         "full schedule",
			hotel:        ownedHotel,
			schedule:     entity.Schedule{AvailableRooms: 10, BookedRooms: 10, Status: entity.ScheduleAvailable},
			expectedLeft: 0,
			fromSchedule: true,
		},
		{
			name:         "blocked schedule",
			hotel:        ownedHotel,
			schedule:     entity.Schedule{AvailableRooms: 10, Status: entity.ScheduleBlocked},
			expectedLeft: 0,
			fromSchedule: true,
		},
		{
			name:         "no row and default open",
			hotel:        ownedHotel,
			scheduleErr:  notFound,
			expectedLeft: 45,
		},
		{
			name: "no row and default closed",
			hotel: func() entity.Hotel {
				h := ownedHotel()
				h.DefaultOpen = false
				return h
			},
			scheduleErr:  notFound,
			expectedLeft: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			setup(t)
			repoMock.On("FindHotelByID", ctx, "20001", false).Return(tc.hotel(), nil)
			repoMock.On("FindScheduleByDate", ctx, "20001", day).Return(tc.schedule, tc.scheduleErr)

			resp, err := uc.Availability(ctx, "20001", "2025-12-25")
			require.NoError(t, err)
			assert.Equal(t, tc.expectedLeft, resp.AvailableRooms)
			assert.Equal(t, tc.expectedLeft > 0, resp.IsOpen)
			assert.Equal(t, tc.fromSchedule, resp.FromSchedule)
		})
	}
}

func TestSearchAvailable(t *testing.T) {
	ctx := context.Background()

	t.Run("checkOut must be after checkIn", func(t *testing.T) {
		setup(t)
		_, err := uc.SearchAvailable(ctx, "2025-01-15", "2025-01-15")
		assert.True(t, errors.Is(err, http.StatusBadRequest))
	})

	t.Run("bad date", func(t *testing.T) {
		setup(t)
		_, err := uc.SearchAvailable(ctx, "15-01-2025", "2025-01-16")
		assert.True(t, errors.Is(err, http.StatusBadRequest))
	})

	t.Run("success", func(t *testing.T) {
		setup(t)
		in := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
		repoMock.On("FindAvailableHotels", ctx, in, in.AddDate(0, 0, 2)).Return([]entity.Hotel{ownedHotel()}, nil)

		hotels, err := uc.SearchAvailable(ctx, "2025-01-15", "2025-01-17")
		require.NoError(t, err)
		assert.Len(t, hotels, 1)
	})
}

func TestCreateSchedule(t *testing.T) {
	ctx := context.Background()
	day := time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		setup(t)
		repoMock.On("FindHotelByID", ctx, "20001", false).Return(ownedHotel(), nil)
		repoMock.On("FindScheduleByDate", ctx, "20001", day).Return(entity.Schedule{}, errors.NotFound("schedule not found"))
		repoMock.On("CreateSchedule", ctx, mock.MatchedBy(func(s entity.Schedule) bool {
			return s.Date.Equal(day) && s.Status == entity.ScheduleAvailable && s.AvailableRooms == 10 && s.CreatedByID == owner.ID
		})).Return(entity.Schedule{ID: 1, HotelID: "20001", Date: day, AvailableRooms: 10, Status: entity.ScheduleAvailable}, nil)

		resp, err := uc.CreateSchedule(ctx, owner, &request.CreateSchedule{HotelID: "20001", Date: "2025-12-25", AvailableRooms: intPtr(10)})
		require.NoError(t, err)
		assert.Equal(t, "2025-12-25", resp.Date)
	})

	t.Run("existing date conflicts", func(t *testing.T) {
		setup(t)
		repoMock.On("FindHotelByID", ctx, "20001", false).Return(ownedHotel(), nil)
		repoMock.On("FindScheduleByDate", ctx, "20001", day).Return(entity.Schedule{ID: 1}, nil)

		_, err := uc.CreateSchedule(ctx, owner, &request.CreateSchedule{HotelID: "20001", Date: "2025-12-25", AvailableRooms: intPtr(10)})
		assert.True(t, errors.Is(err, http.StatusConflict))
	})

	t.Run("booked over available", func(t *testing.T) {
		setup(t)
		_, err := uc.CreateSchedule(ctx, owner, &request.CreateSchedule{HotelID: "20001", Date: "2025-12-25", AvailableRooms: intPtr(2), BookedRooms: 3})
		assert.True(t, errors.Is(err, http.StatusBadRequest))
	})

	t.Run("other user forbidden", func(t *testing.T) {
		setup(t)
		repoMock.On("FindHotelByID", ctx, "20001", false).Return(ownedHotel(), nil)

		_, err := uc.CreateSchedule(ctx, other, &request.CreateSchedule{HotelID: "20001", Date: "2025-12-25", AvailableRooms: intPtr(10)})
		assert.True(t, errors.Is(err, http.StatusForbidden))
	})
}

func TestUpdateSchedule(t *testing.T) {
	ctx := context.Background()
	day := time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC)
	existing := entity.Schedule{ID: 1, HotelID: "20001", Date: day, AvailableRooms: 10, BookedRooms: 4, Status: entity.ScheduleAvailable, IsActive: true}

	t.Run("merges fields", func(t *testing.T) {
		setup(t)
		repoMock.On("FindScheduleByID", ctx, int64(1)).Return(existing, nil)
		repoMock.On("FindHotelByID", ctx, "20001", true).Return(ownedHotel(), nil)
		repoMock.On("UpdateSchedule", ctx, mock.MatchedBy(func(s entity.Schedule) bool {
			return s.AvailableRooms == 12 && s.BookedRooms == 4 && s.Date.Equal(day)
		})).Return(existing, nil)

		_, err := uc.UpdateSchedule(ctx, owner, "20001", 1, &request.UpdateSchedule{AvailableRooms: intPtr(12)})
		assert.NoError(t, err)
	})

	t.Run("rejects booked over available", func(t *testing.T) {
		setup(t)
		repoMock.On("FindScheduleByID", ctx, int64(1)).Return(existing, nil)
		repoMock.On("FindHotelByID", ctx, "20001", true).Return(ownedHotel(), nil)

		_, err := uc.UpdateSchedule(ctx, owner, "20001", 1, &request.UpdateSchedule{AvailableRooms: intPtr(3)})
		assert.True(t, errors.Is(err, http.StatusBadRequest))
	})

	t.Run("schedule of another hotel", func(t *testing.T) {
		setup(t)
		repoMock.On("FindScheduleByID", ctx, int64(1)).Return(existing, nil)

		_, err := uc.UpdateSchedule(ctx, owner, "20002", 1, &request.UpdateSchedule{})
		assert.True(t, errors.Is(err, http.StatusNotFound))
	})
}

func TestDeleteSchedule(t *testing.T) {
	setup(t)
	ctx := context.Background()
	repoMock.On("FindScheduleByID", ctx, int64(1)).Return(entity.Schedule{ID: 1, HotelID: "20001"}, nil)
	repoMock.On("FindHotelByID", ctx, "20001", true).Return(ownedHotel(), nil)
	repoMock.On("DeactivateSchedule", ctx, int64(1)).Return(nil)

	assert.NoError(t, uc.DeleteSchedule(ctx, admin, "", 1))
}
