package models

import "time"

// UserProfile holds the profile fields used for prompt context. The account
// service owns the rest of the user record; this service only reads these.
type UserProfile struct {
	UserID     string    `gorm:"type:uuid;primaryKey" json:"user_id"`
	College    string    `json:"college,omitempty"`
	Degree     string    `json:"degree,omitempty"`
	Year       string    `json:"year,omitempty"`
	TargetRole string    `json:"target_role,omitempty"`
	Experience string    `json:"experience,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type ResumeProject struct {
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
}

type ResumeExperience struct {
	Role        string `json:"role"`
	Company     string `json:"company"`
	Duration    string `json:"duration,omitempty"`
	Description string `json:"description,omitempty"`
}

type ResumeEducation struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year,omitempty"`
}

// ParsedResume is the structured output of resume extraction, consumed
// read-only for question generation context.
type ParsedResume struct {
	Skills          []string           `json:"skills,omitempty"`
	Projects        []ResumeProject    `json:"projects,omitempty"`
	Experience      []ResumeExperience `json:"experience,omitempty"`
	Education       []ResumeEducation  `json:"education,omitempty"`
	TargetRole      string             `json:"target_role,omitempty"`
	ExperienceLevel string             `json:"experience_level,omitempty"`
}

// Resume is the stored parsed-resume record for a user. Absence is a valid
// state except for role-specific interviews.
type Resume struct {
	UserID     string       `gorm:"type:uuid;primaryKey" json:"user_id"`
	ParsedData ParsedResume `gorm:"serializer:json" json:"parsed_data"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}
