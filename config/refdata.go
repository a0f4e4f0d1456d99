package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/Nandu8821/Attendance-Project/constants"
	"github.com/Nandu8821/Attendance-Project/models"
)

// ReferenceData is the injected provider for the static roster, the office
// coordinate table and the shift catalog. Fixture data can be swapped in
// through ROSTER_FILE / OFFICES_FILE or by constructing one directly in
// tests.
type ReferenceData struct {
	roster        []models.RosterEntry
	offices       []models.OfficeLocation
	workShifts    []string
	sequencedSite string
}

// defaultOffices mirrors the coordinate table the attendance form shipped
// with.
var defaultOffices = []models.OfficeLocation{
	{Name: "Home", Latitude: 23.231878, Longitude: 77.455833},
	{Name: "Office/कार्यालय", Latitude: 23.19775059819785, Longitude: 77.41701272524529},
	{Name: "RNTU/आरएनटीयू", Latitude: 23.133186, Longitude: 77.564695},
	{Name: "Dubey Ji Site/दुबे जी साइट", Latitude: 23.124046, Longitude: 77.497393},
	{Name: "Regional Center West", Latitude: 37.7749, Longitude: -122.4208},
	{Name: "Satellite Office 1", Latitude: 37.776, Longitude: -122.4194},
	{Name: "Satellite Office 2", Latitude: 37.7738, Longitude: -122.4194},
	{Name: "Admin Building", Latitude: 37.7752, Longitude: -122.42},
	{Name: "Tech Hub", Latitude: 37.7745, Longitude: -122.4188},
	{Name: "Support Center", Latitude: 37.78, Longitude: -122.41},
}

var defaultRoster = []models.RosterEntry{
	{Email: "nandu@rccinfra.in", Name: "Nandkishor Sharma", EmpCode: "RCC001", Site: "RCC Office/आरसीसी कार्यालय"},
	{Email: "priya.verma@rccinfra.in", Name: "Priya Verma", EmpCode: "RCC014", Site: "RCC Office/आरसीसी कार्यालय"},
	{Email: "amit.jain@rccinfra.in", Name: "Amit Jain", EmpCode: "RCC022", Site: "Home"},
	{Email: "sunita.dubey@rccinfra.in", Name: "Sunita Dubey", EmpCode: "RCC031", Site: "Dubey Ji Site/दुबे जी साइट"},
	{Email: "rahul.mishra@rccinfra.in", Name: "Rahul Mishra", EmpCode: "RCC045", Site: "RNTU/आरएनटीयू"},
}

var defaultWorkShifts = []string{
	"09:00 AM - 06:00 PM",
	"09:30 AM - 06:00 PM",
	"02:00 PM - 06:00 PM",
	"09:00 PM - 01:00 PM",
	"08:00 AM - 04:00 PM",
}

// LoadReferenceData builds the provider from ROSTER_FILE / OFFICES_FILE
// when set, falling back to the compiled-in tables.
func LoadReferenceData() (*ReferenceData, error) {
	rd := &ReferenceData{
		roster:        defaultRoster,
		offices:       defaultOffices,
		workShifts:    defaultWorkShifts,
		sequencedSite: GetEnvDefault("SEQUENCED_SITE", constants.DefaultSequencedSite),
	}

	if path := os.Getenv("ROSTER_FILE"); path != "" {
		if err := readJSONFile(path, &rd.roster); err != nil {
			return nil, fmt.Errorf("failed to load roster from %s: %w", path, err)
		}
	}
	if path := os.Getenv("OFFICES_FILE"); path != "" {
		if err := readJSONFile(path, &rd.offices); err != nil {
			return nil, fmt.Errorf("failed to load offices from %s: %w", path, err)
		}
	}

	return rd, nil
}

// NewReferenceData builds a provider from explicit tables, for tests.
func NewReferenceData(roster []models.RosterEntry, offices []models.OfficeLocation, sequencedSite string) *ReferenceData {
	return &ReferenceData{
		roster:        roster,
		offices:       offices,
		workShifts:    defaultWorkShifts,
		sequencedSite: sequencedSite,
	}
}

func readJSONFile(path string, target interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, target)
}

// Roster returns every roster entry.
func (rd *ReferenceData) Roster() []models.RosterEntry {
	return rd.roster
}

// Offices returns the office coordinate table.
func (rd *ReferenceData) Offices() []models.OfficeLocation {
	return rd.offices
}

// WorkShifts returns the shift labels offered on the form.
func (rd *ReferenceData) WorkShifts() []string {
	return rd.workShifts
}

// SequencedSite returns the one site name with enforced check-in/check-out
// ordering.
func (rd *ReferenceData) SequencedSite() string {
	return rd.sequencedSite
}

// FindByEmail looks up a roster entry case-insensitively.
func (rd *ReferenceData) FindByEmail(email string) (models.RosterEntry, bool) {
	for _, entry := range rd.roster {
		if strings.EqualFold(entry.Email, email) {
			return entry, true
		}
	}
	return models.RosterEntry{}, false
}

// Sites returns the distinct site names on the roster, in roster order.
func (rd *ReferenceData) Sites() []string {
	seen := make(map[string]bool)
	var sites []string
	for _, entry := range rd.roster {
		if !seen[entry.Site] {
			seen[entry.Site] = true
			sites = append(sites, entry.Site)
		}
	}
	return sites
}
