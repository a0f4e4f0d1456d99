package recorder

import (
	"strings"

	"github.com/schollz/closestmatch"

	"github.com/Nandu8821/Attendance-Project/models"
)

// EmailSuggester offers roster emails matching what the user has typed so
// far: substring matches first, fuzzy candidates to fill out the list.
type EmailSuggester struct {
	emails []string
	cm     *closestmatch.ClosestMatch
}

// NewEmailSuggester indexes the roster's email addresses.
func NewEmailSuggester(roster []models.RosterEntry) *EmailSuggester {
	emails := make([]string, 0, len(roster))
	for _, entry := range roster {
		emails = append(emails, entry.Email)
	}
	return &EmailSuggester{
		emails: emails,
		cm:     closestmatch.New(emails, []int{2, 3}),
	}
}

// Suggest returns up to limit candidate emails for a search term. An empty
// term returns the whole roster up to limit.
func (s *EmailSuggester) Suggest(term string, limit int) []string {
	if limit <= 0 || len(s.emails) == 0 {
		return nil
	}

	term = strings.ToLower(strings.TrimSpace(term))
	var matches []string
	seen := make(map[string]bool)

	for _, email := range s.emails {
		if term == "" || strings.Contains(strings.ToLower(email), term) {
			matches = append(matches, email)
			seen[email] = true
			if len(matches) == limit {
				return matches
			}
		}
	}

	if term == "" {
		return matches
	}

	for _, candidate := range s.cm.ClosestN(term, limit) {
		if candidate == "" || seen[candidate] {
			continue
		}
		matches = append(matches, candidate)
		if len(matches) == limit {
			break
		}
	}
	return matches
}
