package usecases

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"tourism-service/internal/module/packages/models/entity"
	"tourism-service/internal/module/packages/models/request"
	"tourism-service/internal/module/packages/models/response"
	"tourism-service/internal/module/packages/repositories"
	"tourism-service/internal/pkg/errors"
	"tourism-service/internal/pkg/helpers"
	"tourism-service/internal/pkg/idgen"
	"tourism-service/internal/pkg/lock"
	"tourism-service/internal/pkg/log"
	"tourism-service/internal/pkg/policy"

	"github.com/lib/pq"
)

const (
	defaultLimit  = 10
	maxLimit      = 100
	featuredLimit = 6
)

type usecase struct {
	repo   repositories.Repositories
	log    log.Logger
	ids    idgen.Generator
	locker lock.Locker
	today  func() time.Time
}

type Usecase interface {
	CreatePackage(ctx context.Context, actor policy.Actor, payload *request.CreatePackage) (response.Package, error)
	ListPackages(ctx context.Context, query request.ListPackages) (response.PackageList, error)
	FeaturedPackages(ctx context.Context, limit int) ([]response.Package, error)
	GetPackage(ctx context.Context, id string, includeInactive bool) (response.Package, error)
	UpdatePackage(ctx context.Context, actor policy.Actor, id string, payload *request.UpdatePackage) (response.Package, error)
	DeletePackage(ctx context.Context, actor policy.Actor, id string) error
	ReactivatePackage(ctx context.Context, actor policy.Actor, id string) (response.Package, error)
	SearchAvailable(ctx context.Context, startDate, endDate string) ([]response.Package, error)
	Availability(ctx context.Context, packageID, startDate, endDate string) (response.Availability, error)

	CreateSchedule(ctx context.Context, actor policy.Actor, payload *request.CreateSchedule) (response.Schedule, error)
	ListSchedules(ctx context.Context, query request.ListSchedules) ([]response.Schedule, error)
	GetSchedule(ctx context.Context, id int64) (response.Schedule, error)
	UpdateSchedule(ctx context.Context, actor policy.Actor, packageID string, id int64, payload *request.UpdateSchedule) (response.Schedule, error)
	DeleteSchedule(ctx context.Context, actor policy.Actor, packageID string, id int64) error
	CompleteElapsedSchedules(ctx context.Context) (int64, error)
}

func New(repo repositories.Repositories, log log.Logger, ids idgen.Generator, locker lock.Locker) Usecase {
	return &usecase{
		repo:   repo,
		log:    log,
		ids:    ids,
		locker: locker,
		today:  helpers.Today,
	}
}

func ownership(pkg entity.Package) policy.Resource {
	return policy.Resource{Kind: "packages", OwnerID: pkg.CreatedByID}
}

func scheduleLock(packageID string) string {
	return "package-schedules:" + packageID
}

type dateRange struct {
	start time.Time
	end   time.Time
}

func parseRange(start, end string) (dateRange, error) {
	from, err := helpers.ParseDate(start)
	if err != nil {
		return dateRange{}, err
	}
	to, err := helpers.ParseDate(end)
	if err != nil {
		return dateRange{}, err
	}
	if !from.Before(to) {
		return dateRange{}, errors.BadRequest("end date must be after start date")
	}
	return dateRange{start: from, end: to}, nil
}

// firstOverlap returns the indexes of the first pair of ranges that overlap, or -1, -1.
func firstOverlap(ranges []dateRange) (int, int) {
	for i := range ranges {
		for j := i + 1; j < len(ranges); j++ {
			if entity.Overlaps(ranges[i].start, ranges[i].end, ranges[j].start, ranges[j].end) {
				return i, j
			}
		}
	}
	return -1, -1
}

func newSchedule(packageID string, actor policy.Actor, r dateRange, s request.Schedule) (entity.Schedule, error) {
	if s.BookedSlots > s.AvailableSlots {
		return entity.Schedule{}, errors.BadRequest("booked slots cannot exceed available slots")
	}

	status := s.Status
	if status == "" {
		status = entity.ScheduleAvailable
	}

	return entity.Schedule{
		PackageID:      packageID,
		StartDate:      r.start,
		EndDate:        r.end,
		AvailableSlots: s.AvailableSlots,
		BookedSlots:    s.BookedSlots,
		SpecialPrice:   nullFloat(s.SpecialPrice),
		Status:         status,
		Notes:          nullString(s.Notes),
		PickupLocation: nullString(s.PickupLocation),
		PickupTime:     nullString(s.PickupTime),
		CreatedByID:    nullString(actor.ID),
	}, nil
}

func (u *usecase) CreatePackage(ctx context.Context, actor policy.Actor, payload *request.CreatePackage) (response.Package, error) {
	if err := policy.RequireAdmin(actor, "create packages"); err != nil {
		return response.Package{}, err
	}

	ranges := make([]dateRange, 0, len(payload.Schedules))
	for _, s := range payload.Schedules {
		r, err := parseRange(s.StartDate, s.EndDate)
		if err != nil {
			return response.Package{}, err
		}
		ranges = append(ranges, r)
	}
	if i, j := firstOverlap(ranges); i >= 0 {
		return response.Package{}, errors.Conflict(fmt.Sprintf("schedule %d overlaps with schedule %d", i+1, j+1))
	}

	id, err := u.ids.Next(ctx, "packages", u.repo.PackageIDExists)
	if err != nil {
		return response.Package{}, err
	}

	schedules := make([]entity.Schedule, 0, len(payload.Schedules))
	for i, s := range payload.Schedules {
		schedule, err := newSchedule(id, actor, ranges[i], s)
		if err != nil {
			return response.Package{}, err
		}
		schedules = append(schedules, schedule)
	}

	pkg := entity.Package{
		ID:                 id,
		Name:               payload.Name,
		Description:        payload.Description,
		Highlights:         payload.Highlights,
		Itinerary:          payload.Itinerary,
		Duration:           payload.Duration,
		Nights:             payload.Nights,
		Price:              payload.Price,
		OriginalPrice:      nullFloat(payload.OriginalPrice),
		MaxGroupSize:       payload.MaxGroupSize,
		MinGroupSize:       payload.MinGroupSize,
		Type:               payload.Type,
		Status:             payload.Status,
		Inclusions:         pq.StringArray(nonNil(payload.Inclusions)),
		Exclusions:         pq.StringArray(nonNil(payload.Exclusions)),
		Images:             pq.StringArray(nonNil(payload.Images)),
		Destinations:       pq.StringArray(nonNil(payload.Destinations)),
		Rating:             payload.Rating,
		ReviewCount:        payload.ReviewCount,
		Terms:              nullString(payload.Terms),
		CancellationPolicy: nullString(payload.CancellationPolicy),
		CreatedByID:        actor.ID,
	}
	if pkg.MinGroupSize == 0 {
		pkg.MinGroupSize = 1
	}
	if pkg.Status == "" {
		pkg.Status = entity.StatusActive
	}

	created, saved, err := u.repo.CreatePackage(ctx, pkg, schedules)
	if err != nil {
		return response.Package{}, err
	}

	u.log.Info(ctx, "package created", created.ID)
	resp := toPackage(created)
	resp.Schedules = toSchedules(saved)
	return resp, nil
}

func (u *usecase) ListPackages(ctx context.Context, query request.ListPackages) (response.PackageList, error) {
	page, limit := paginate(query.Page, query.Limit)

	filter := entity.PackageFilter{
		Page:        page,
		Limit:       limit,
		Type:        query.Type,
		MinPrice:    query.MinPrice,
		MaxPrice:    query.MaxPrice,
		Duration:    query.Duration,
		Destination: query.Destination,
		Rating:      query.Rating,
		IsActive:    query.IsActive == nil || *query.IsActive,
	}

	packages, total, err := u.repo.FindPackages(ctx, filter)
	if err != nil {
		return response.PackageList{}, err
	}

	return response.PackageList{Packages: toPackages(packages), Total: total, Page: page, Limit: limit}, nil
}

func (u *usecase) FeaturedPackages(ctx context.Context, limit int) ([]response.Package, error) {
	if limit < 1 {
		limit = featuredLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	packages, err := u.repo.FindFeaturedPackages(ctx, limit)
	if err != nil {
		return nil, err
	}
	return toPackages(packages), nil
}

func (u *usecase) GetPackage(ctx context.Context, id string, includeInactive bool) (response.Package, error) {
	pkg, err := u.repo.FindPackageByID(ctx, id, includeInactive)
	if err != nil {
		return response.Package{}, err
	}

	schedules, err := u.repo.FindSchedules(ctx, entity.ScheduleFilter{PackageID: id})
	if err != nil {
		return response.Package{}, err
	}

	resp := toPackage(pkg)
	resp.Schedules = toSchedules(schedules)
	return resp, nil
}

func (u *usecase) authorizePackage(ctx context.Context, actor policy.Actor, id string) (entity.Package, error) {
	pkg, err := u.repo.FindPackageByID(ctx, id, true)
	if err != nil {
		return entity.Package{}, err
	}
	if err := policy.Authorize(actor, ownership(pkg)); err != nil {
		return entity.Package{}, err
	}
	return pkg, nil
}

func (u *usecase) UpdatePackage(ctx context.Context, actor policy.Actor, id string, payload *request.UpdatePackage) (response.Package, error) {
	if _, err := u.authorizePackage(ctx, actor, id); err != nil {
		return response.Package{}, err
	}

	updated, err := u.repo.UpdatePackage(ctx, id, *payload)
	if err != nil {
		return response.Package{}, err
	}
	return toPackage(updated), nil
}

func (u *usecase) DeletePackage(ctx context.Context, actor policy.Actor, id string) error {
	if _, err := u.authorizePackage(ctx, actor, id); err != nil {
		return err
	}

	if err := u.repo.SetPackageActive(ctx, id, false); err != nil {
		return err
	}
	u.log.Info(ctx, "package deactivated", id)
	return nil
}

func (u *usecase) ReactivatePackage(ctx context.Context, actor policy.Actor, id string) (response.Package, error) {
	pkg, err := u.authorizePackage(ctx, actor, id)
	if err != nil {
		return response.Package{}, err
	}

	if err := u.repo.SetPackageActive(ctx, id, true); err != nil {
		return response.Package{}, err
	}
	pkg.IsActive = true
	return toPackage(pkg), nil
}

// SearchAvailable lists active packages with at least one schedule overlapping the range
// that still has slots. Each package carries only those schedules. endDate defaults to
// startDate.
func (u *usecase) SearchAvailable(ctx context.Context, startDate, endDate string) ([]response.Package, error) {
	from, err := helpers.ParseDate(startDate)
	if err != nil {
		return nil, err
	}
	to := from
	if endDate != "" {
		if to, err = helpers.ParseDate(endDate); err != nil {
			return nil, err
		}
	}
	if to.Before(from) {
		return nil, errors.BadRequest("end date must not be before start date")
	}

	schedules, err := u.repo.FindAvailableSchedules(ctx, from, to)
	if err != nil {
		return nil, err
	}
	if len(schedules) == 0 {
		return []response.Package{}, nil
	}

	byPackage := make(map[string][]response.Schedule)
	ids := make([]string, 0)
	for _, s := range schedules {
		if _, ok := byPackage[s.PackageID]; !ok {
			ids = append(ids, s.PackageID)
		}
		byPackage[s.PackageID] = append(byPackage[s.PackageID], toSchedule(s))
	}

	packages, err := u.repo.FindPackagesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	found := make(map[string]entity.Package, len(packages))
	for _, p := range packages {
		found[p.ID] = p
	}

	result := make([]response.Package, 0, len(packages))
	for _, id := range ids {
		p, ok := found[id]
		if !ok {
			continue
		}
		resp := toPackage(p)
		resp.Schedules = byPackage[id]
		result = append(result, resp)
	}
	return result, nil
}

func (u *usecase) Availability(ctx context.Context, packageID, startDate, endDate string) (response.Availability, error) {
	from, err := helpers.ParseDate(startDate)
	if err != nil {
		return response.Availability{}, err
	}
	to, err := helpers.ParseDate(endDate)
	if err != nil {
		return response.Availability{}, err
	}

	schedule, err := u.repo.FindCoveringSchedule(ctx, packageID, from, to)
	if errors.Is(err, http.StatusNotFound) {
		return response.Availability{}, nil
	}
	if err != nil {
		return response.Availability{}, err
	}

	return response.Availability{AvailableSlots: schedule.Remaining(), TotalSlots: schedule.AvailableSlots}, nil
}

func (u *usecase) checkOverlap(ctx context.Context, packageID string, r dateRange, excludeID int64) error {
	existing, err := u.repo.FindOverlappingSchedule(ctx, packageID, r.start, r.end, excludeID)
	if err == nil {
		return errors.Conflict(fmt.Sprintf("schedule overlaps with existing schedule %s to %s",
			helpers.FormatDate(existing.StartDate), helpers.FormatDate(existing.EndDate)))
	}
	if errors.Is(err, http.StatusNotFound) {
		return nil
	}
	return err
}

func (u *usecase) CreateSchedule(ctx context.Context, actor policy.Actor, payload *request.CreateSchedule) (response.Schedule, error) {
	r, err := parseRange(payload.StartDate, payload.EndDate)
	if err != nil {
		return response.Schedule{}, err
	}

	pkg, err := u.authorizePackage(ctx, actor, payload.PackageID)
	if err != nil {
		return response.Schedule{}, err
	}

	schedule, err := newSchedule(pkg.ID, actor, r, payload.Schedule)
	if err != nil {
		return response.Schedule{}, err
	}

	unlock, err := u.locker.Lock(ctx, scheduleLock(pkg.ID))
	if err != nil {
		return response.Schedule{}, err
	}
	defer unlock()

	if err := u.checkOverlap(ctx, pkg.ID, r, 0); err != nil {
		return response.Schedule{}, err
	}

	created, err := u.repo.CreateSchedule(ctx, schedule)
	if err != nil {
		return response.Schedule{}, err
	}
	return toSchedule(created), nil
}

func (u *usecase) ListSchedules(ctx context.Context, query request.ListSchedules) ([]response.Schedule, error) {
	start, err := helpers.ParseOptionalDate(query.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := helpers.ParseOptionalDate(query.EndDate)
	if err != nil {
		return nil, err
	}

	if query.PackageID != "" {
		if _, err := u.repo.FindPackageByID(ctx, query.PackageID, true); err != nil {
			return nil, err
		}
	}

	schedules, err := u.repo.FindSchedules(ctx, entity.ScheduleFilter{PackageID: query.PackageID, StartDate: start, EndDate: end})
	if err != nil {
		return nil, err
	}
	return toSchedules(schedules), nil
}

func (u *usecase) GetSchedule(ctx context.Context, id int64) (response.Schedule, error) {
	schedule, err := u.repo.FindScheduleByID(ctx, id)
	if err != nil {
		return response.Schedule{}, err
	}
	return toSchedule(schedule), nil
}

func (u *usecase) authorizeSchedule(ctx context.Context, actor policy.Actor, packageID string, id int64) (entity.Schedule, error) {
	schedule, err := u.repo.FindScheduleByID(ctx, id)
	if err != nil {
		return entity.Schedule{}, err
	}
	if packageID != "" && schedule.PackageID != packageID {
		return entity.Schedule{}, errors.NotFound("schedule not found")
	}
	if _, err := u.authorizePackage(ctx, actor, schedule.PackageID); err != nil {
		return entity.Schedule{}, err
	}
	return schedule, nil
}

// UpdateSchedule re-validates the merged date range, the overlap with the package's other
// schedules and the slot counters before writing the patched columns.
func (u *usecase) UpdateSchedule(ctx context.Context, actor policy.Actor, packageID string, id int64, payload *request.UpdateSchedule) (response.Schedule, error) {
	schedule, err := u.authorizeSchedule(ctx, actor, packageID, id)
	if err != nil {
		return response.Schedule{}, err
	}

	patch := entity.SchedulePatch{
		AvailableSlots: payload.AvailableSlots,
		BookedSlots:    payload.BookedSlots,
		SpecialPrice:   payload.SpecialPrice,
		Status:         payload.Status,
		Notes:          payload.Notes,
		PickupLocation: payload.PickupLocation,
		PickupTime:     payload.PickupTime,
	}

	merged := dateRange{start: schedule.StartDate, end: schedule.EndDate}
	if payload.StartDate != nil {
		if merged.start, err = helpers.ParseDate(*payload.StartDate); err != nil {
			return response.Schedule{}, err
		}
		patch.StartDate = &merged.start
	}
	if payload.EndDate != nil {
		if merged.end, err = helpers.ParseDate(*payload.EndDate); err != nil {
			return response.Schedule{}, err
		}
		patch.EndDate = &merged.end
	}
	if !merged.start.Before(merged.end) {
		return response.Schedule{}, errors.BadRequest("end date must be after start date")
	}

	available, booked := schedule.AvailableSlots, schedule.BookedSlots
	if payload.AvailableSlots != nil {
		available = *payload.AvailableSlots
	}
	if payload.BookedSlots != nil {
		booked = *payload.BookedSlots
	}
	if booked > available {
		return response.Schedule{}, errors.BadRequest("booked slots cannot exceed available slots")
	}
	if payload.Status == nil && (payload.AvailableSlots != nil || payload.BookedSlots != nil) {
		if status := slotStatus(schedule.Status, available, booked); status != schedule.Status {
			patch.Status = &status
		}
	}

	if patch.StartDate != nil || patch.EndDate != nil {
		unlock, err := u.locker.Lock(ctx, scheduleLock(schedule.PackageID))
		if err != nil {
			return response.Schedule{}, err
		}
		defer unlock()

		if err := u.checkOverlap(ctx, schedule.PackageID, merged, schedule.ID); err != nil {
			return response.Schedule{}, err
		}
	}

	updated, err := u.repo.UpdateSchedule(ctx, schedule.ID, patch)
	if err != nil {
		return response.Schedule{}, err
	}
	return toSchedule(updated), nil
}

func (u *usecase) DeleteSchedule(ctx context.Context, actor policy.Actor, packageID string, id int64) error {
	if _, err := u.authorizeSchedule(ctx, actor, packageID, id); err != nil {
		return err
	}
	return u.repo.DeactivateSchedule(ctx, id)
}

func (u *usecase) CompleteElapsedSchedules(ctx context.Context) (int64, error) {
	n, err := u.repo.CompleteElapsedSchedules(ctx, u.today())
	if err != nil {
		return 0, err
	}
	u.log.Info(ctx, "elapsed package schedules completed", n)
	return n, nil
}

// slotStatus keeps booked and available in step with the slot counters. Cancelled and
// completed schedules are left alone.
func slotStatus(current string, available, booked int) string {
	switch {
	case current == entity.ScheduleBooked && available > booked:
		return entity.ScheduleAvailable
	case current == entity.ScheduleAvailable && available == booked:
		return entity.ScheduleBooked
	}
	return current
}

func paginate(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func nullString(v string) sql.NullString {
	return sql.NullString{String: v, Valid: v != ""}
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func floatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

func toPackage(p entity.Package) response.Package {
	return response.Package{
		ID:                 p.ID,
		Name:               p.Name,
		Description:        p.Description,
		Highlights:         p.Highlights,
		Itinerary:          p.Itinerary,
		Duration:           p.Duration,
		Nights:             p.Nights,
		Price:              p.Price,
		OriginalPrice:      floatPtr(p.OriginalPrice),
		MaxGroupSize:       p.MaxGroupSize,
		MinGroupSize:       p.MinGroupSize,
		Type:               p.Type,
		Status:             p.Status,
		Inclusions:         nonNil(p.Inclusions),
		Exclusions:         nonNil(p.Exclusions),
		Images:             nonNil(p.Images),
		Destinations:       nonNil(p.Destinations),
		Rating:             p.Rating,
		ReviewCount:        p.ReviewCount,
		Terms:              p.Terms.String,
		CancellationPolicy: p.CancellationPolicy.String,
		IsActive:           p.IsActive,
		CreatedByID:        p.CreatedByID,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

func toPackages(packages []entity.Package) []response.Package {
	result := make([]response.Package, 0, len(packages))
	for _, p := range packages {
		result = append(result, toPackage(p))
	}
	return result
}

func toSchedule(s entity.Schedule) response.Schedule {
	return response.Schedule{
		ID:             s.ID,
		PackageID:      s.PackageID,
		StartDate:      helpers.FormatDate(s.StartDate),
		EndDate:        helpers.FormatDate(s.EndDate),
		AvailableSlots: s.AvailableSlots,
		BookedSlots:    s.BookedSlots,
		SpecialPrice:   floatPtr(s.SpecialPrice),
		Status:         s.Status,
		Notes:          s.Notes.String,
		PickupLocation: s.PickupLocation.String,
		PickupTime:     s.PickupTime.String,
		IsActive:       s.IsActive,
	}
}

func toSchedules(schedules []entity.Schedule) []response.Schedule {
	result := make([]response.Schedule, 0, len(schedules))
	for _, s := range schedules {
		result = append(result, toSchedule(s))
	}
	return result
}
