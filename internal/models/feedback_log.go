package models

import (
	"time"

	"github.com/google/uuid"
)

// FeedbackLog is the database index entry for one stored trial log.
type FeedbackLog struct {
	ID         string
	LogID      string
	Filename   string
	StoredName string
	ImagePath  string
	Coarseness int
	CellCount  int
	ExportedAt string
	UploadTime time.Time
}

func NewFeedbackLog(logID, filename, storedName, imagePath string, coarseness, cellCount int, exportedAt string) *FeedbackLog {
	return &FeedbackLog{
		ID:         uuid.New().String(),
		LogID:      logID,
		Filename:   filename,
		StoredName: storedName,
		ImagePath:  imagePath,
		Coarseness: coarseness,
		CellCount:  cellCount,
		ExportedAt: exportedAt,
		UploadTime: time.Now(),
	}
}
