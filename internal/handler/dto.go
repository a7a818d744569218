package handler

import (
	"time"

	"github.com/BaseCampCoding/chirper-backend/internal/domain"
)

// ChirperDTO is the JSON representation of a user's public profile.
// Joined exposes only month and year.
type ChirperDTO struct {
	Name        string    `json:"name"`
	Username    string    `json:"username"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Website     string    `json:"website"`
	Joined      JoinedDTO `json:"joined"`
}

type JoinedDTO struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

// AuthorDTO is the abbreviated author reference embedded in chirps.
type AuthorDTO struct {
	Name     string `json:"name"`
	Username string `json:"username"`
}

// DateDTO is a chirp timestamp broken into calendar components.
type DateDTO struct {
	Month int `json:"month"`
	Day   int `json:"day"`
	Year  int `json:"year"`
}

// ChirpDTO is the JSON representation of a chirp in a feed.
type ChirpDTO struct {
	Author  AuthorDTO `json:"author"`
	Date    DateDTO   `json:"date"`
	Message string    `json:"message"`
}

func toChirperDTO(u *domain.User) ChirperDTO {
	return ChirperDTO{
		Name:        u.Name,
		Username:    u.Username,
		Description: u.Description,
		Location:    u.Location,
		Website:     u.Website,
		Joined: JoinedDTO{
			Month: int(u.Joined.Month()),
			Year:  u.Joined.Year(),
		},
	}
}

func toChirpDTO(c domain.Chirp, author *domain.User) ChirpDTO {
	return ChirpDTO{
		Author: AuthorDTO{
			Name:     author.Name,
			Username: author.Username,
		},
		Date:    toDateDTO(c.CreatedAt),
		Message: c.Message,
	}
}

func toDateDTO(t time.Time) DateDTO {
	return DateDTO{
		Month: int(t.Month()),
		Day:   t.Day(),
		Year:  t.Year(),
	}
}
