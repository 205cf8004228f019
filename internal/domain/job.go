package domain

import "github.com/google/uuid"

// ThumbnailJob is the unit of work handed from the upload path to the
// thumbnail worker. It carries just enough identity to re-resolve its target;
// unknown fields in the wire payload are ignored so old workers tolerate
// future additions.
type ThumbnailJob struct {
	FileID uuid.UUID `json:"fileId"`
	UserID uuid.UUID `json:"userId"`
}

// ThumbnailWidths are the derived sizes generated for every image, processed
// largest first. The derived blob for width w lives at localPath + "_" + w.
var ThumbnailWidths = []int{500, 250, 100}
