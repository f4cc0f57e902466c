package domain

import (
	"time"
)

// CompletedFlag is the only completion flag value counted as completed.
// Comparison is exact: no trimming or case folding.
const CompletedFlag = "Yes"

// Record is one participant's progress entry. JSON keys are the literal
// column names of the exported sheet.
type Record struct {
	Name             string `json:"User Name"`
	Email            string `json:"User Email"`
	ProfileURL       string `json:"Google Cloud Skills Boost Profile URL"`
	ProfileURLStatus string `json:"Profile URL Status"`
	RedemptionStatus string `json:"Access Code Redemption Status"`
	AllCompleted     string `json:"All Skill Badges & Games Completed"`
	BadgeCount       Count  `json:"# of Skill Badges Completed"`
	BadgeNames       string `json:"Names of Completed Skill Badges"`
	GameCount        Count  `json:"# of Arcade Games Completed"`
	GameNames        string `json:"Names of Completed Arcade Games"`
}

func (r Record) Completed() bool {
	return r.AllCompleted == CompletedFlag
}

type Stats struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
}

type LoadState string

const (
	StateLoading LoadState = "loading"
	StateReady   LoadState = "ready"
)

type LoadEvent struct {
	ID          string // nanoid
	Source      string
	Status      string // "ok" or "error"
	RecordCount int
	Error       string
	Duration    time.Duration
	LoadedAt    time.Time
}

const (
	LoadStatusOK    = "ok"
	LoadStatusError = "error"
)
