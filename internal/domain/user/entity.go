package user

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

var ErrInvalidRole = errors.New("invalid role")

func ParseRole(s string) (Role, error) {
	switch Role(strings.ToUpper(strings.TrimSpace(s))) {
	case RoleUser:
		return RoleUser, nil
	case RoleAdmin:
		return RoleAdmin, nil
	default:
		return "", ErrInvalidRole
	}
}

type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Profile struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	FirstName string
	LastName  string
	Role      Role
	Settings  Settings
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Settings is the free-form part of a profile, stored as one JSON document.
type Settings struct {
	Phone       string       `json:"phone,omitempty"`
	Location    string       `json:"location,omitempty"`
	Title       string       `json:"title,omitempty"`
	Bio         string       `json:"bio,omitempty"`
	Skills      []string     `json:"skills"`
	Experience  []Experience `json:"experience"`
	Education   []Education  `json:"education"`
	Preferences Preferences  `json:"preferences"`
}

type Experience struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Period      string `json:"period"`
	Description string `json:"description"`
}

type Education struct {
	Degree string `json:"degree"`
	School string `json:"school"`
	Year   string `json:"year"`
}

type Preferences struct {
	JobAlerts            bool `json:"jobAlerts"`
	PublicProfile        bool `json:"publicProfile"`
	NewsletterSubscribed bool `json:"newsletterSubscribed"`
}

// Normalize trims skills, drops blanks and duplicates, and replaces nil
// slices so the document always serializes lists as [].
func (s Settings) Normalize() Settings {
	seen := make(map[string]struct{}, len(s.Skills))
	skills := make([]string, 0, len(s.Skills))
	for _, sk := range s.Skills {
		sk = strings.TrimSpace(sk)
		if sk == "" {
			continue
		}
		key := strings.ToLower(sk)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		skills = append(skills, sk)
	}
	s.Skills = skills
	if s.Experience == nil {
		s.Experience = []Experience{}
	}
	if s.Education == nil {
		s.Education = []Education{}
	}
	return s
}

func (s Settings) Marshal() ([]byte, error) {
	return json.Marshal(s.Normalize())
}

// ParseSettings decodes a stored settings document; empty and null documents
// yield zero settings.
func ParseSettings(b []byte) (Settings, error) {
	var s Settings
	trimmed := strings.TrimSpace(string(b))
	if trimmed == "" || trimmed == "null" {
		return s.Normalize(), nil
	}
	if err := json.Unmarshal(b, &s); err != nil {
		return Settings{}, err
	}
	return s.Normalize(), nil
}
