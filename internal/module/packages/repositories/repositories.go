package repositories

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"time"

	"tourism-service/internal/module/packages/models/entity"
	"tourism-service/internal/module/packages/models/request"
	"tourism-service/internal/pkg/database"
	"tourism-service/internal/pkg/errors"
	"tourism-service/internal/pkg/log"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const (
	packageColumns = `id, name, description, highlights, itinerary, duration, nights, price, original_price,
		max_group_size, min_group_size, type, status, inclusions, exclusions, images, destinations, rating,
		review_count, terms, cancellation_policy, is_active, created_by_id, created_at, updated_at`
	scheduleColumns = `id, package_id, start_date, end_date, available_slots, booked_slots, special_price, status,
		notes, pickup_location, pickup_time, is_active, created_by_id, created_at, updated_at`

	insertSchedule = `INSERT INTO package_schedules (package_id, start_date, end_date, available_slots, booked_slots,
			special_price, status, notes, pickup_location, pickup_time, created_by_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + scheduleColumns
)

type repositories struct {
	db  *sqlx.DB
	log log.Logger
}

type Repositories interface {
	// packages
	PackageIDExists(ctx context.Context, id string) (bool, error)
	CreatePackage(ctx context.Context, pkg entity.Package, schedules []entity.Schedule) (entity.Package, []entity.Schedule, error)
	FindPackageByID(ctx context.Context, id string, includeInactive bool) (entity.Package, error)
	FindPackages(ctx context.Context, filter entity.PackageFilter) ([]entity.Package, int, error)
	FindPackagesByIDs(ctx context.Context, ids []string) ([]entity.Package, error)
	FindFeaturedPackages(ctx context.Context, limit int) ([]entity.Package, error)
	UpdatePackage(ctx context.Context, id string, payload request.UpdatePackage) (entity.Package, error)
	SetPackageActive(ctx context.Context, id string, active bool) error
	// schedules
	CreateSchedule(ctx context.Context, schedule entity.Schedule) (entity.Schedule, error)
	FindScheduleByID(ctx context.Context, id int64) (entity.Schedule, error)
	FindSchedules(ctx context.Context, filter entity.ScheduleFilter) ([]entity.Schedule, error)
	FindOverlappingSchedule(ctx context.Context, packageID string, start, end time.Time, excludeID int64) (entity.Schedule, error)
	FindCoveringSchedule(ctx context.Context, packageID string, start, end time.Time) (entity.Schedule, error)
	FindAvailableSchedules(ctx context.Context, start, end time.Time) ([]entity.Schedule, error)
	UpdateSchedule(ctx context.Context, id int64, patch entity.SchedulePatch) (entity.Schedule, error)
	DeactivateSchedule(ctx context.Context, id int64) error
	CompleteElapsedSchedules(ctx context.Context, today time.Time) (int64, error)
}

func New(db *sqlx.DB, log log.Logger) Repositories {
	return &repositories{
		db:  db,
		log: log,
	}
}

// PackageIDExists implements Repositories.
func (r *repositories) PackageIDExists(ctx context.Context, id string) (bool, error) {
	var exists bool
	if err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM packages WHERE id = $1)`, id); err != nil {
		return false, errors.InternalServerError("error check package id")
	}
	return exists, nil
}

// CreatePackage implements Repositories. The package and its inline schedules are inserted
// in one transaction.
func (r *repositories) CreatePackage(ctx context.Context, pkg entity.Package, schedules []entity.Schedule) (entity.Package, []entity.Schedule, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return entity.Package{}, nil, errors.InternalServerError("error starting transaction")
	}
	defer database.Rollback(tx)

	query := `INSERT INTO packages (id, name, description, highlights, itinerary, duration, nights, price,
			original_price, max_group_size, min_group_size, type, status, inclusions, exclusions, images,
			destinations, rating, review_count, terms, cancellation_policy, created_by_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
		RETURNING ` + packageColumns

	var created entity.Package
	err = tx.GetContext(ctx, &created, query,
		pkg.ID, pkg.Name, pkg.Description, pkg.Highlights, pkg.Itinerary, pkg.Duration, pkg.Nights, pkg.Price,
		pkg.OriginalPrice, pkg.MaxGroupSize, pkg.MinGroupSize, pkg.Type, pkg.Status, pkg.Inclusions,
		pkg.Exclusions, pkg.Images, pkg.Destinations, pkg.Rating, pkg.ReviewCount, pkg.Terms,
		pkg.CancellationPolicy, pkg.CreatedByID)
	if database.IsUniqueViolation(err) {
		return entity.Package{}, nil, errors.Conflict("package id already taken")
	}
	if err != nil {
		r.log.Error(ctx, "error create package", err)
		return entity.Package{}, nil, errors.InternalServerError("error create package")
	}

	saved := make([]entity.Schedule, 0, len(schedules))
	for _, s := range schedules {
		s.PackageID = created.ID
		row, err := r.insertSchedule(ctx, tx, s)
		if err != nil {
			return entity.Package{}, nil, err
		}
		saved = append(saved, row)
	}

	if err := tx.Commit(); err != nil {
		return entity.Package{}, nil, errors.InternalServerError("error committing transaction")
	}
	return created, saved, nil
}

func (r *repositories) insertSchedule(ctx context.Context, q sqlx.QueryerContext, s entity.Schedule) (entity.Schedule, error) {
	var created entity.Schedule
	err := sqlx.GetContext(ctx, q, &created, insertSchedule,
		s.PackageID, s.StartDate, s.EndDate, s.AvailableSlots, s.BookedSlots, s.SpecialPrice, s.Status,
		s.Notes, s.PickupLocation, s.PickupTime, s.CreatedByID)
	if database.IsCheckViolation(err) {
		return entity.Schedule{}, errors.BadRequest("invalid schedule: check dates and booked slots")
	}
	if err != nil {
		r.log.Error(ctx, "error create package schedule", err)
		return entity.Schedule{}, errors.InternalServerError("error create package schedule")
	}
	return created, nil
}

// FindPackageByID implements Repositories.
func (r *repositories) FindPackageByID(ctx context.Context, id string, includeInactive bool) (entity.Package, error) {
	query := `SELECT ` + packageColumns + ` FROM packages WHERE id = $1 AND ($2 OR is_active)`

	var pkg entity.Package
	err := r.db.GetContext(ctx, &pkg, query, id, includeInactive)
	if stderrors.Is(err, sql.ErrNoRows) {
		return entity.Package{}, errors.NotFound("package not found")
	}
	if err != nil {
		r.log.Error(ctx, "error find package", err)
		return entity.Package{}, errors.InternalServerError("error find package by id")
	}
	return pkg, nil
}

// FindPackages implements Repositories.
func (r *repositories) FindPackages(ctx context.Context, filter entity.PackageFilter) ([]entity.Package, int, error) {
	var cond database.Conditions
	cond.Add("is_active = " + cond.Arg(filter.IsActive))
	if filter.Type != "" {
		cond.Add("type = " + cond.Arg(filter.Type))
	}
	if filter.MinPrice != nil {
		cond.Add("price >= " + cond.Arg(*filter.MinPrice))
	}
	if filter.MaxPrice != nil {
		cond.Add("price <= " + cond.Arg(*filter.MaxPrice))
	}
	if filter.Duration != nil {
		cond.Add("duration = " + cond.Arg(*filter.Duration))
	}
	if filter.Destination != "" {
		cond.Add("destinations @> " + cond.Arg(pq.StringArray{filter.Destination}))
	}
	if filter.Rating != nil {
		cond.Add("rating >= " + cond.Arg(*filter.Rating))
	}

	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM packages`+cond.Where(), cond.Args()...); err != nil {
		r.log.Error(ctx, "error count packages", err)
		return nil, 0, errors.InternalServerError("error count packages")
	}

	args := append(cond.Args(), filter.Limit, (filter.Page-1)*filter.Limit)
	query := fmt.Sprintf(`SELECT %s FROM packages%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		packageColumns, cond.Where(), len(args)-1, len(args))

	packages := []entity.Package{}
	if err := r.db.SelectContext(ctx, &packages, query, args...); err != nil {
		r.log.Error(ctx, "error find packages", err)
		return nil, 0, errors.InternalServerError("error find packages")
	}
	return packages, total, nil
}

// FindPackagesByIDs implements Repositories. Only active packages with status active are returned.
func (r *repositories) FindPackagesByIDs(ctx context.Context, ids []string) ([]entity.Package, error) {
	query := `SELECT ` + packageColumns + ` FROM packages WHERE id = ANY($1) AND is_active AND status = 'active'`

	packages := []entity.Package{}
	if err := r.db.SelectContext(ctx, &packages, query, pq.Array(ids)); err != nil {
		r.log.Error(ctx, "error find packages by ids", err)
		return nil, errors.InternalServerError("error find packages by ids")
	}
	return packages, nil
}

// FindFeaturedPackages implements Repositories.
func (r *repositories) FindFeaturedPackages(ctx context.Context, limit int) ([]entity.Package, error) {
	query := `SELECT ` + packageColumns + ` FROM packages WHERE is_active AND status = 'active'
		ORDER BY rating DESC, review_count DESC LIMIT $1`

	packages := []entity.Package{}
	if err := r.db.SelectContext(ctx, &packages, query, limit); err != nil {
		r.log.Error(ctx, "error find featured packages", err)
		return nil, errors.InternalServerError("error find featured packages")
	}
	return packages, nil
}

// UpdatePackage implements Repositories.
func (r *repositories) UpdatePackage(ctx context.Context, id string, payload request.UpdatePackage) (entity.Package, error) {
	var set database.Assignments
	setString := func(col string, v *string) {
		if v != nil {
			set.Set(col, *v)
		}
	}
	setInt := func(col string, v *int) {
		if v != nil {
			set.Set(col, *v)
		}
	}
	setFloat := func(col string, v *float64) {
		if v != nil {
			set.Set(col, *v)
		}
	}
	setArray := func(col string, v *[]string) {
		if v != nil {
			set.Set(col, pq.StringArray(*v))
		}
	}

	setString("name", payload.Name)
	setString("description", payload.Description)
	setString("highlights", payload.Highlights)
	setString("itinerary", payload.Itinerary)
	setInt("duration", payload.Duration)
	setInt("nights", payload.Nights)
	setFloat("price", payload.Price)
	setFloat("original_price", payload.OriginalPrice)
	setInt("max_group_size", payload.MaxGroupSize)
	setInt("min_group_size", payload.MinGroupSize)
	setString("type", payload.Type)
	setString("status", payload.Status)
	setArray("inclusions", payload.Inclusions)
	setArray("exclusions", payload.Exclusions)
	setArray("images", payload.Images)
	setArray("destinations", payload.Destinations)
	setFloat("rating", payload.Rating)
	setInt("review_count", payload.ReviewCount)
	setString("terms", payload.Terms)
	setString("cancellation_policy", payload.CancellationPolicy)

	if set.Len() == 0 {
		return r.FindPackageByID(ctx, id, true)
	}

	query, args := set.Update("packages", "id", id, packageColumns)
	var pkg entity.Package
	err := r.db.GetContext(ctx, &pkg, query, args...)
	if stderrors.Is(err, sql.ErrNoRows) {
		return entity.Package{}, errors.NotFound("package not found")
	}
	if err != nil {
		r.log.Error(ctx, "error update package", err)
		return entity.Package{}, errors.InternalServerError("error update package")
	}
	return pkg, nil
}

// SetPackageActive implements Repositories.
func (r *repositories) SetPackageActive(ctx context.Context, id string, active bool) error {
	res, err := r.db.ExecContext(ctx, `UPDATE packages SET is_active = $2, updated_at = NOW() WHERE id = $1`, id, active)
	if err != nil {
		r.log.Error(ctx, "error set package active", err)
		return errors.InternalServerError("error update package status")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.NotFound("package not found")
	}
	return nil
}

// CreateSchedule implements Repositories.
func (r *repositories) CreateSchedule(ctx context.Context, schedule entity.Schedule) (entity.Schedule, error) {
	return r.insertSchedule(ctx, r.db, schedule)
}

// FindScheduleByID implements Repositories.
func (r *repositories) FindScheduleByID(ctx context.Context, id int64) (entity.Schedule, error) {
	query := `SELECT ` + scheduleColumns + ` FROM package_schedules WHERE id = $1 AND is_active`

	var schedule entity.Schedule
	err := r.db.GetContext(ctx, &schedule, query, id)
	if stderrors.Is(err, sql.ErrNoRows) {
		return entity.Schedule{}, errors.NotFound("schedule not found")
	}
	if err != nil {
		r.log.Error(ctx, "error find package schedule", err)
		return entity.Schedule{}, errors.InternalServerError("error find package schedule")
	}
	return schedule, nil
}

// FindSchedules implements Repositories.
func (r *repositories) FindSchedules(ctx context.Context, filter entity.ScheduleFilter) ([]entity.Schedule, error) {
	var cond database.Conditions
	cond.Add("is_active")
	if filter.PackageID != "" {
		cond.Add("package_id = " + cond.Arg(filter.PackageID))
	}
	switch {
	case filter.StartDate != nil && filter.EndDate != nil:
		cond.Add("start_date <= " + cond.Arg(*filter.EndDate))
		cond.Add("end_date >= " + cond.Arg(*filter.StartDate))
	case filter.StartDate != nil:
		cond.Add("end_date >= " + cond.Arg(*filter.StartDate))
	}

	query := `SELECT ` + scheduleColumns + ` FROM package_schedules` + cond.Where() + ` ORDER BY start_date ASC`

	schedules := []entity.Schedule{}
	if err := r.db.SelectContext(ctx, &schedules, query, cond.Args()...); err != nil {
		r.log.Error(ctx, "error find package schedules", err)
		return nil, errors.InternalServerError("error find package schedules")
	}
	return schedules, nil
}

// FindOverlappingSchedule implements Repositories. excludeID lets an update ignore the row
// being changed; pass 0 on create.
func (r *repositories) FindOverlappingSchedule(ctx context.Context, packageID string, start, end time.Time, excludeID int64) (entity.Schedule, error) {
	query := `SELECT ` + scheduleColumns + ` FROM package_schedules
		WHERE package_id = $1 AND is_active AND start_date <= $3 AND end_date >= $2 AND id <> $4
		ORDER BY start_date LIMIT 1`

	var schedule entity.Schedule
	err := r.db.GetContext(ctx, &schedule, query, packageID, start, end, excludeID)
	if stderrors.Is(err, sql.ErrNoRows) {
		return entity.Schedule{}, errors.NotFound("schedule not found")
	}
	if err != nil {
		r.log.Error(ctx, "error find overlapping schedule", err)
		return entity.Schedule{}, errors.InternalServerError("error check schedule overlap")
	}
	return schedule, nil
}

// FindCoveringSchedule implements Repositories.
func (r *repositories) FindCoveringSchedule(ctx context.Context, packageID string, start, end time.Time) (entity.Schedule, error) {
	query := `SELECT ` + scheduleColumns + ` FROM package_schedules
		WHERE package_id = $1 AND is_active AND status NOT IN ('cancelled', 'completed')
		AND start_date <= $2 AND end_date >= $3
		ORDER BY start_date LIMIT 1`

	var schedule entity.Schedule
	err := r.db.GetContext(ctx, &schedule, query, packageID, start, end)
	if stderrors.Is(err, sql.ErrNoRows) {
		return entity.Schedule{}, errors.NotFound("schedule not found")
	}
	if err != nil {
		r.log.Error(ctx, "error find covering schedule", err)
		return entity.Schedule{}, errors.InternalServerError("error find covering schedule")
	}
	return schedule, nil
}

// FindAvailableSchedules implements Repositories. It returns active schedules of active
// packages that overlap [start, end] and still have slots.
func (r *repositories) FindAvailableSchedules(ctx context.Context, start, end time.Time) ([]entity.Schedule, error) {
	query := `SELECT s.id, s.package_id, s.start_date, s.end_date, s.available_slots, s.booked_slots,
			s.special_price, s.status, s.notes, s.pickup_location, s.pickup_time, s.is_active,
			s.created_by_id, s.created_at, s.updated_at
		FROM package_schedules s
		JOIN packages p ON p.id = s.package_id
		WHERE p.is_active AND p.status = 'active' AND s.is_active AND s.status NOT IN ('cancelled', 'completed')
		AND s.start_date <= $2 AND s.end_date >= $1 AND s.available_slots - s.booked_slots > 0
		ORDER BY s.start_date ASC`

	schedules := []entity.Schedule{}
	if err := r.db.SelectContext(ctx, &schedules, query, start, end); err != nil {
		r.log.Error(ctx, "error find available schedules", err)
		return nil, errors.InternalServerError("error find available schedules")
	}
	return schedules, nil
}

// UpdateSchedule implements Repositories. Only patched columns are written so concurrent
// purchases keep their booked_slots increments.
func (r *repositories) UpdateSchedule(ctx context.Context, id int64, patch entity.SchedulePatch) (entity.Schedule, error) {
	var set database.Assignments
	if patch.StartDate != nil {
		set.Set("start_date", *patch.StartDate)
	}
	if patch.EndDate != nil {
		set.Set("end_date", *patch.EndDate)
	}
	if patch.AvailableSlots != nil {
		set.Set("available_slots", *patch.AvailableSlots)
	}
	if patch.BookedSlots != nil {
		set.Set("booked_slots", *patch.BookedSlots)
	}
	if patch.SpecialPrice != nil {
		set.Set("special_price", *patch.SpecialPrice)
	}
	if patch.Status != nil {
		set.Set("status", *patch.Status)
	}
	if patch.Notes != nil {
		set.Set("notes", *patch.Notes)
	}
	if patch.PickupLocation != nil {
		set.Set("pickup_location", *patch.PickupLocation)
	}
	if patch.PickupTime != nil {
		set.Set("pickup_time", *patch.PickupTime)
	}

	if set.Len() == 0 {
		return r.FindScheduleByID(ctx, id)
	}

	query, args := set.Update("package_schedules", "id", id, scheduleColumns)
	var schedule entity.Schedule
	err := r.db.GetContext(ctx, &schedule, query, args...)
	if stderrors.Is(err, sql.ErrNoRows) {
		return entity.Schedule{}, errors.NotFound("schedule not found")
	}
	if database.IsCheckViolation(err) {
		return entity.Schedule{}, errors.BadRequest("booked slots cannot exceed available slots")
	}
	if err != nil {
		r.log.Error(ctx, "error update package schedule", err)
		return entity.Schedule{}, errors.InternalServerError("error update package schedule")
	}
	return schedule, nil
}

// DeactivateSchedule implements Repositories.
func (r *repositories) DeactivateSchedule(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `UPDATE package_schedules SET is_active = FALSE, updated_at = NOW() WHERE id = $1 AND is_active`, id)
	if err != nil {
		r.log.Error(ctx, "error deactivate package schedule", err)
		return errors.InternalServerError("error delete package schedule")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.NotFound("schedule not found")
	}
	return nil
}

// CompleteElapsedSchedules implements Repositories.
func (r *repositories) CompleteElapsedSchedules(ctx context.Context, today time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE package_schedules SET status = 'completed', updated_at = NOW()
		WHERE is_active AND end_date < $1 AND status IN ('available', 'booked')`, today)
	if err != nil {
		r.log.Error(ctx, "error complete elapsed schedules", err)
		return 0, errors.InternalServerError("error complete elapsed schedules")
	}
	n, _ := res.RowsAffected()
	return n, nil
}
