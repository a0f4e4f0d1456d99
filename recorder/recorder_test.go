package recorder

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nandu8821/Attendance-Project/config"
	"github.com/Nandu8821/Attendance-Project/dto"
	"github.com/Nandu8821/Attendance-Project/errors"
	"github.com/Nandu8821/Attendance-Project/models"
)

const sequencedSite = "RCC Office/आरसीसी कार्यालय"

var testRoster = []models.RosterEntry{
	{Email: "a@x.com", Name: "Asha Rao", EmpCode: "E1", Site: sequencedSite},
	{Email: "b@x.com", Name: "Bharat Singh", EmpCode: "E2", Site: "Home"},
}

var testOffices = []models.OfficeLocation{
	{Name: "Home", Latitude: 23.231878, Longitude: 77.455833},
}

type fakeStore struct {
	records   []models.AttendanceRecord
	createErr error
	queryErr  error
	creates   int
}

func (f *fakeStore) Create(ctx context.Context, req *dto.CreateAttendanceRequest) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.creates++
	f.records = append(f.records, models.AttendanceRecord{
		Email:     req.Email,
		EntryType: req.EntryType,
		Timestamp: time.Now(),
	})
	return nil
}

func (f *fakeStore) Query(ctx context.Context, email string) ([]models.AttendanceRecord, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return f.records, nil
}

type fakeCamera struct{}

func (fakeCamera) Capture(ctx context.Context) (string, error) {
	return "data:image/jpeg;base64,aGVsbG8=", nil
}

type failingGeolocator struct{ err error }

func (g failingGeolocator) Current(ctx context.Context) (Position, error) {
	return Position{}, g.err
}

func newTestRecorder(store StoreClient) *Recorder {
	return New(Options{
		ReferenceData: config.NewReferenceData(testRoster, testOffices, sequencedSite),
		Client:        store,
		Statuses:      NewMemoryStatusRepository(),
		Geolocator:    StaticGeolocator{Position: Position{Latitude: 23.231878, Longitude: 77.455833}},
		Camera:        fakeCamera{},
	})
}

func fillForm(t *testing.T, rec *Recorder, site, entryType string) {
	t.Helper()
	ctx := context.Background()

	rec.SetSite(site)
	rec.SetWorkShift("09:00 AM - 06:00 PM")
	rec.SetEntryType(entryType)
	_, err := rec.ResolveLocation(ctx)
	require.NoError(t, err)
	require.NoError(t, rec.CapturePhoto(ctx))
}

func TestSequencedSiteWalk(t *testing.T) {
	ctx := context.Background()
	store := &fakeStore{}
	rec := newTestRecorder(store)

	require.NoError(t, rec.SelectEmail(ctx, "a@x.com"))
	assert.Equal(t, []string{"In"}, rec.AvailableEntryTypes())

	fillForm(t, rec, sequencedSite, "In")
	require.NoError(t, rec.Submit(ctx))
	assert.True(t, rec.Status().HasCheckedIn)
	assert.False(t, rec.Status().HasCheckedOut)
	assert.Equal(t, []string{"Out"}, rec.AvailableEntryTypes())

	// Double check-in is rejected before any network call.
	creates := store.creates
	fillForm(t, rec, sequencedSite, "In")
	err := rec.Submit(ctx)
	assert.True(t, errors.HasCode(err, errors.ErrCodeSequence))
	assert.Equal(t, creates, store.creates)

	fillForm(t, rec, sequencedSite, "Out")
	require.NoError(t, rec.Submit(ctx))
	assert.True(t, rec.Status().HasCheckedIn)
	assert.True(t, rec.Status().HasCheckedOut)

	fillForm(t, rec, sequencedSite, "Out")
	err = rec.Submit(ctx)
	assert.True(t, errors.HasCode(err, errors.ErrCodeSequence))
	assert.True(t, rec.Done())
}

func TestCheckOutBeforeCheckInRejected(t *testing.T) {
	ctx := context.Background()
	rec := newTestRecorder(&fakeStore{})

	require.NoError(t, rec.SelectEmail(ctx, "a@x.com"))
	fillForm(t, rec, sequencedSite, "Out")

	err := rec.Submit(ctx)
	assert.True(t, errors.HasCode(err, errors.ErrCodeSequence))
}

func TestNonSequencedSiteAllowsRepeats(t *testing.T) {
	ctx := context.Background()
	store := &fakeStore{}
	rec := newTestRecorder(store)

	require.NoError(t, rec.SelectEmail(ctx, "b@x.com"))
	assert.Equal(t, []string{"In", "Out"}, rec.AvailableEntryTypes())

	fillForm(t, rec, "Home", "In")
	require.NoError(t, rec.Submit(ctx))

	fillForm(t, rec, "Home", "In")
	require.NoError(t, rec.Submit(ctx))

	fillForm(t, rec, "Home", "Out")
	require.NoError(t, rec.Submit(ctx))

	assert.Equal(t, 3, store.creates)
	assert.False(t, rec.Done())
}

func TestActiveEmailConflict(t *testing.T) {
	ctx := context.Background()
	rec := newTestRecorder(&fakeStore{})

	require.NoError(t, rec.SelectEmail(ctx, "a@x.com"))

	err := rec.SelectEmail(ctx, "b@x.com")
	assert.True(t, errors.HasCode(err, errors.ErrCodeActiveEmail))

	// Re-selecting the same email in a different case is fine.
	require.NoError(t, rec.SelectEmail(ctx, "A@X.COM"))
	assert.Equal(t, "a@x.com", rec.Form().Email)
}

func TestUnknownEmailRejected(t *testing.T) {
	ctx := context.Background()
	rec := newTestRecorder(&fakeStore{})

	err := rec.SelectEmail(ctx, "stranger@x.com")
	assert.True(t, errors.HasCode(err, errors.ErrCodeRosterMismatch))
}

func TestTamperedIdentityRejected(t *testing.T) {
	ctx := context.Background()
	store := &fakeStore{}
	rec := newTestRecorder(store)

	require.NoError(t, rec.SelectEmail(ctx, "a@x.com"))
	fillForm(t, rec, "Home", "In")
	rec.SetName("Somebody Else")

	err := rec.Submit(ctx)
	assert.True(t, errors.HasCode(err, errors.ErrCodeRosterMismatch))
	assert.Zero(t, store.creates)
}

func TestMissingFieldsListed(t *testing.T) {
	ctx := context.Background()
	rec := newTestRecorder(&fakeStore{})

	require.NoError(t, rec.SelectEmail(ctx, "a@x.com"))
	rec.SetSite("Home")

	err := rec.Submit(ctx)
	require.True(t, errors.HasCode(err, errors.ErrCodeRequiredField))
	appErr := errors.GetAppError(err)
	assert.Contains(t, appErr.Message, "Entry Type")
	assert.Contains(t, appErr.Message, "Work Shift")
	assert.Contains(t, appErr.Message, "Location Name")
	assert.Contains(t, appErr.Message, "Image")
}

func TestNetworkFailureLeavesStatusUnchanged(t *testing.T) {
	ctx := context.Background()
	store := &fakeStore{}
	rec := newTestRecorder(store)

	require.NoError(t, rec.SelectEmail(ctx, "a@x.com"))
	fillForm(t, rec, sequencedSite, "In")

	store.createErr = errors.NewAppError(errors.ErrCodeNetwork, "Failed to submit attendance", nil)
	err := rec.Submit(ctx)
	assert.True(t, errors.HasCode(err, errors.ErrCodeNetwork))
	assert.False(t, rec.Status().HasCheckedIn)

	// The attempt is not consumed; retrying after the outage succeeds.
	store.createErr = nil
	require.NoError(t, rec.Submit(ctx))
	assert.True(t, rec.Status().HasCheckedIn)
}

func TestResolveLocationSentinels(t *testing.T) {
	ctx := context.Background()
	refdata := config.NewReferenceData(testRoster, testOffices, sequencedSite)

	denied := New(Options{
		ReferenceData: refdata,
		Client:        &fakeStore{},
		Statuses:      NewMemoryStatusRepository(),
		Geolocator:    failingGeolocator{err: errors.ErrLocationDenied},
	})
	label, err := denied.ResolveLocation(ctx)
	assert.Equal(t, "Location access denied", label)
	assert.True(t, errors.HasCode(err, errors.ErrCodeGeolocationDenied))

	unsupported := New(Options{
		ReferenceData: refdata,
		Client:        &fakeStore{},
		Statuses:      NewMemoryStatusRepository(),
	})
	label, err = unsupported.ResolveLocation(ctx)
	assert.Equal(t, "Geolocation not supported", label)
	assert.True(t, errors.HasCode(err, errors.ErrCodeGeolocationUnsupported))
}

func TestResolveLocationFillsLabel(t *testing.T) {
	ctx := context.Background()
	rec := newTestRecorder(&fakeStore{})

	require.NoError(t, rec.SelectEmail(ctx, "a@x.com"))
	rec.SetSite("Home")
	label, err := rec.ResolveLocation(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Home", label)
	assert.Equal(t, "Home", rec.Form().LocationName)
}

func TestSubmitResetsFormKeepingIdentity(t *testing.T) {
	ctx := context.Background()
	rec := newTestRecorder(&fakeStore{})

	require.NoError(t, rec.SelectEmail(ctx, "b@x.com"))
	fillForm(t, rec, "Home", "In")
	require.NoError(t, rec.Submit(ctx))

	form := rec.Form()
	assert.Equal(t, "b@x.com", form.Email)
	assert.Equal(t, "Bharat Singh", form.Name)
	assert.Empty(t, form.Site)
	assert.Empty(t, form.EntryType)
	assert.Empty(t, form.WorkShift)
	assert.Empty(t, form.LocationName)
	assert.Empty(t, form.Image)
}
