package recorder

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	"github.com/Nandu8821/Attendance-Project/config"
	"github.com/Nandu8821/Attendance-Project/constants"
	"github.com/Nandu8821/Attendance-Project/dto"
	"github.com/Nandu8821/Attendance-Project/errors"
	"github.com/Nandu8821/Attendance-Project/services/logger"
	"github.com/Nandu8821/Attendance-Project/validator"
)

// Recorder drives one attendance submission end to end: resolve the
// employee from the roster, compute a location label from the device
// position, capture a photo, enforce the daily check-in/check-out sequence
// and send the record to the store. It is a single-session state holder,
// not safe for concurrent use.
type Recorder struct {
	refdata  *config.ReferenceData
	client   StoreClient
	statuses StatusRepository
	geo      Geolocator
	camera   Camera
	logger   logger.Logger
	now      func() time.Time

	form   dto.CreateAttendanceRequest
	status dto.DailyStatus
}

// Options configures a Recorder. ReferenceData, Client and Statuses are
// required; Geolocator and Camera may stay nil when the host has no such
// devices, in which case the corresponding steps fail with typed errors.
type Options struct {
	ReferenceData *config.ReferenceData
	Client        StoreClient
	Statuses      StatusRepository
	Geolocator    Geolocator
	Camera        Camera
	Logger        logger.Logger
	Now           func() time.Time
}

// New creates a Recorder.
func New(opts Options) *Recorder {
	if opts.Logger == nil {
		opts.Logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Recorder{
		refdata:  opts.ReferenceData,
		client:   opts.Client,
		statuses: opts.Statuses,
		geo:      opts.Geolocator,
		camera:   opts.Camera,
		logger:   opts.Logger,
		now:      opts.Now,
	}
}

// Form returns a copy of the current form state.
func (r *Recorder) Form() dto.CreateAttendanceRequest {
	return r.form
}

// Status returns the last known daily status for the selected email.
func (r *Recorder) Status() dto.DailyStatus {
	return r.status
}

// SelectEmail resolves an email against the roster, pre-fills the identity
// fields and refreshes the daily status. Only one email may be active per
// session per day.
func (r *Recorder) SelectEmail(ctx context.Context, email string) error {
	active, err := r.statuses.ActiveEmail(ctx)
	if err != nil {
		r.logger.Error("Failed to read active email: %v", err)
	}
	if active != "" && !strings.EqualFold(active, email) {
		return errors.NewAppError(errors.ErrCodeActiveEmail,
			"Another email is already used for today's attendance. Please use the same email.", nil)
	}

	entry, ok := r.refdata.FindByEmail(email)
	if !ok {
		return errors.NewAppError(errors.ErrCodeRosterMismatch,
			"Invalid email. Please select a valid email from the suggestions.", errors.ErrNotOnRoster)
	}

	r.form = dto.CreateAttendanceRequest{
		Email:   entry.Email,
		Name:    entry.Name,
		EmpCode: entry.EmpCode,
	}
	r.status = dto.DailyStatus{}

	if err := r.statuses.SetActiveEmail(ctx, entry.Email); err != nil {
		r.logger.Error("Failed to store active email: %v", err)
	}

	if _, err := r.RefreshStatus(ctx); err != nil {
		// Stale cache beats no status at all; the submit path re-checks.
		r.logger.Error("Failed to refresh status for %s: %v", entry.Email, err)
		if cached := r.cachedStatus(ctx); cached != nil {
			r.status = *cached
		}
	}

	return nil
}

// SetSite picks a site and resets the fields that depend on it.
func (r *Recorder) SetSite(site string) {
	r.form.Site = site
	r.form.EntryType = ""
	r.form.LocationName = ""
	r.form.Image = ""
}

// SetEntryType picks a direction.
func (r *Recorder) SetEntryType(entryType string) {
	r.form.EntryType = entryType
}

// SetName overrides the pre-filled name. The field is read-only on the
// form but trivially editable in a client, so Submit re-checks it against
// the roster.
func (r *Recorder) SetName(name string) {
	r.form.Name = name
}

// SetEmpCode overrides the pre-filled employee code; see SetName.
func (r *Recorder) SetEmpCode(empCode string) {
	r.form.EmpCode = empCode
}

// SetWorkShift picks a shift label.
func (r *Recorder) SetWorkShift(workShift string) {
	r.form.WorkShift = workShift
}

// ResolveLocation asks the device for a position and fills the location
// field with the names of every office within the geofence. On failure the
// field is set to an explicit sentinel and a typed error is returned;
// location stays required either way.
func (r *Recorder) ResolveLocation(ctx context.Context) (string, error) {
	if r.geo == nil {
		r.form.LocationName = constants.LocationNotSupported
		return r.form.LocationName, errors.NewAppError(errors.ErrCodeGeolocationUnsupported,
			"Geolocation is not supported on this device.", errors.ErrLocationUnsupported)
	}

	pos, err := r.geo.Current(ctx)
	switch {
	case err == nil:
	case errors.HasCode(err, errors.ErrCodeGeolocationUnsupported) || stderrors.Is(err, errors.ErrLocationUnsupported):
		r.form.LocationName = constants.LocationNotSupported
		return r.form.LocationName, errors.NewAppError(errors.ErrCodeGeolocationUnsupported,
			"Geolocation is not supported on this device.", err)
	default:
		r.form.LocationName = constants.LocationAccessDenied
		return r.form.LocationName, errors.NewAppError(errors.ErrCodeGeolocationDenied,
			"Unable to fetch your location. Please enable geolocation.", err)
	}

	r.form.LocationName = LocationLabel(NearbyOffices(pos.Latitude, pos.Longitude, r.refdata.Offices()))
	return r.form.LocationName, nil
}

// CapturePhoto takes a photo and attaches it to the form as a base64 data
// URL.
func (r *Recorder) CapturePhoto(ctx context.Context) error {
	if r.camera == nil {
		return errors.NewAppError(errors.ErrCodeCamera,
			"Unable to access camera. Please check permissions.", errors.ErrCameraUnavailable)
	}

	image, err := r.camera.Capture(ctx)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeCamera,
			"Unable to access camera. Please check permissions.", err)
	}
	r.form.Image = image
	return nil
}

// AvailableEntryTypes returns the directions the form should offer. The
// sequenced site only ever offers the next legal step; every other site
// offers both.
func (r *Recorder) AvailableEntryTypes() []string {
	if r.isSequencedSite() {
		if r.status.HasCheckedIn {
			return []string{constants.EntryTypeOut}
		}
		return []string{constants.EntryTypeIn}
	}
	return []string{constants.EntryTypeIn, constants.EntryTypeOut}
}

// Done reports whether the sequenced site has nothing left to submit today.
func (r *Recorder) Done() bool {
	return r.isSequencedSite() && r.status.HasCheckedIn && r.status.HasCheckedOut
}

// RefreshStatus re-derives the daily status from the store and caches it.
// On failure the cached status is left untouched.
func (r *Recorder) RefreshStatus(ctx context.Context) (dto.DailyStatus, error) {
	records, err := r.client.Query(ctx, r.form.Email)
	if err != nil {
		return r.status, err
	}

	now := r.now()
	status := DeriveDailyStatus(records, now)
	if err := r.statuses.SetStatus(ctx, r.form.Email, DayKey(now), status); err != nil {
		r.logger.Error("Failed to cache status for %s: %v", r.form.Email, err)
	}
	r.status = status
	return status, nil
}

// Submit validates the form, enforces the daily sequence and sends the
// record to the store. Every failure is terminal for this attempt; the
// form is left populated for correction.
func (r *Recorder) Submit(ctx context.Context) error {
	missing := validator.MissingFields(&r.form)
	if strings.TrimSpace(r.form.Image) == "" {
		missing = append(missing, "Image")
	}
	if len(missing) > 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField,
			"Please fill in all required fields: "+strings.Join(missing, ", "), nil)
	}

	entry, ok := r.refdata.FindByEmail(r.form.Email)
	if !ok {
		return errors.NewAppError(errors.ErrCodeRosterMismatch,
			"Invalid email. Please select a valid email from the suggestions.", errors.ErrNotOnRoster)
	}
	if entry.Name != r.form.Name || entry.EmpCode != r.form.EmpCode {
		return errors.NewAppError(errors.ErrCodeRosterMismatch,
			"Name or Employee Code does not match the selected email.", nil)
	}

	active, err := r.statuses.ActiveEmail(ctx)
	if err != nil {
		r.logger.Error("Failed to read active email: %v", err)
	}
	if active != "" && !strings.EqualFold(active, r.form.Email) {
		return errors.NewAppError(errors.ErrCodeActiveEmail,
			"Another email is already used for today's attendance. Please use the same email.", nil)
	}

	status := r.status
	if cached := r.cachedStatus(ctx); cached != nil {
		status = *cached
	}

	if r.isSequencedSite() {
		if err := checkSequence(status, r.form.EntryType); err != nil {
			return err
		}
	}

	if err := r.client.Create(ctx, &r.form); err != nil {
		r.logger.Error("Submission failed for %s: %v", r.form.Email, err)
		return err
	}

	now := r.now()
	status.HasCheckedIn = status.HasCheckedIn || r.form.EntryType == constants.EntryTypeIn
	status.HasCheckedOut = status.HasCheckedOut || r.form.EntryType == constants.EntryTypeOut
	status.ComputedAt = now
	r.status = status

	if err := r.statuses.SetStatus(ctx, r.form.Email, DayKey(now), status); err != nil {
		r.logger.Error("Failed to cache status for %s: %v", r.form.Email, err)
	}
	if err := r.statuses.SetActiveEmail(ctx, r.form.Email); err != nil {
		r.logger.Error("Failed to store active email: %v", err)
	}

	if _, err := r.RefreshStatus(ctx); err != nil {
		// The optimistic update above stands until the server answers.
		r.logger.Error("Failed to re-fetch status for %s: %v", r.form.Email, err)
	}

	r.form.Site = ""
	r.form.EntryType = ""
	r.form.WorkShift = ""
	r.form.LocationName = ""
	r.form.Image = ""

	return nil
}

// checkSequence rejects submissions that break NONE -> CHECKED_IN ->
// CHECKED_OUT for the sequenced site.
func checkSequence(status dto.DailyStatus, entryType string) error {
	if entryType == constants.EntryTypeOut && !status.HasCheckedIn {
		return errors.NewAppError(errors.ErrCodeSequence,
			"You must Check In before Checking Out.", nil)
	}
	if entryType == constants.EntryTypeIn && status.HasCheckedIn {
		return errors.NewAppError(errors.ErrCodeSequence,
			"You have already checked in today.", nil)
	}
	if entryType == constants.EntryTypeOut && status.HasCheckedOut {
		return errors.NewAppError(errors.ErrCodeSequence,
			"You have already checked out today.", nil)
	}
	return nil
}

func (r *Recorder) isSequencedSite() bool {
	return strings.EqualFold(r.form.Site, r.refdata.SequencedSite())
}

// cachedStatus returns the fresh cached status for the selected email, or
// nil.
func (r *Recorder) cachedStatus(ctx context.Context) *dto.DailyStatus {
	status, err := r.statuses.GetStatus(ctx, r.form.Email, DayKey(r.now()))
	if err != nil {
		r.logger.Error("Failed to read cached status for %s: %v", r.form.Email, err)
		return nil
	}
	return status
}
