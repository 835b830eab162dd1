package entities

import (
	"time"

	"github.com/google/uuid"
)

// ServingImportJob keeps the outcome of one bulk serving upload so a batch
// can be inspected after the fact and re-run safely.
type ServingImportJob struct {
	ID       uint      `gorm:"primaryKey" json:"-"`
	JobID    uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"job_id"`
	Filename string    `gorm:"size:255" json:"filename,omitempty"`

	TotalRows     int    `json:"total_rows"`
	SucceededRows int    `json:"succeeded_rows"`
	FailedRows    int    `json:"failed_rows"`
	Status        string `gorm:"size:20;not null" json:"status"` // completed, failed

	// Row-level errors serialized as JSON: [{"row": 3, "message": "..."}]
	RowErrors string `gorm:"type:text" json:"-"`

	CreatedBy  *uint      `json:"created_by,omitempty"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	Timestamp
}
