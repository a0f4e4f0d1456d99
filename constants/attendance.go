package constants

import "time"

// Entry types
const (
	EntryTypeIn  = "In"
	EntryTypeOut = "Out"
)

// Geofencing
const (
	EarthRadiusMeters    = 6371000.0
	GeofenceRadiusMeters = 300.0
)

// Location labels reported when no office matches or the device cannot
// provide a position. Location stays a required field either way.
const (
	LocationNoneNearby   = "No offices within 300m"
	LocationAccessDenied = "Location access denied"
	LocationNotSupported = "Geolocation not supported"
)

// DefaultSequencedSite is the one site where check-in must precede
// check-out and each direction is accepted once per day. Every other site
// accepts either direction on every submission. That asymmetry is business
// policy, not an accident; override with SEQUENCED_SITE.
const DefaultSequencedSite = "RCC Office/आरसीसी कार्यालय"

// StatusTTL is how long a cached daily status stays usable before the
// server must be asked again.
const StatusTTL = 24 * time.Hour

// UploadFolder is the Cloudinary folder attendance photos land in.
const UploadFolder = "AttendanceImages"

// MaxBodyBytes caps request bodies; base64 photos need headroom.
const MaxBodyBytes = 10 << 20
