package service

import "fmt"

// thumbnailPath is the derived-blob naming convention shared by the worker
// and the data endpoint.
func thumbnailPath(localPath string, width int) string {
	return fmt.Sprintf("%s_%d", localPath, width)
}
