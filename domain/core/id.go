package core

import (
	"fmt"
	"strings"
)

// DatasetID names an entry of the dataset descriptor table
type DatasetID string

// ModelName identifies a model in evaluation reports and scoreboards
type ModelName string

func (id DatasetID) String() string { return string(id) }
func (m ModelName) String() string  { return string(m) }

// ParseDatasetID normalizes user input into a DatasetID
func ParseDatasetID(s string) (DatasetID, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "", fmt.Errorf("dataset ID cannot be empty")
	}
	return DatasetID(s), nil
}
