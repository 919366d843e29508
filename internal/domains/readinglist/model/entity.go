package model

import (
	catalogModel "litshelf-backend/internal/domains/catalog/model"
)

// Status is one of the fixed reading-list buckets. Each (user, book) pair
// holds exactly one status at a time; assigning a new one overwrites.
type Status string

const (
	StatusWantToRead       Status = "Want to Read"
	StatusCurrentlyReading Status = "Currently Reading"
	StatusFinished         Status = "Finished"
)

// AllStatuses lists the buckets in display order.
var AllStatuses = []Status{StatusWantToRead, StatusCurrentlyReading, StatusFinished}

func (s Status) Valid() bool {
	switch s {
	case StatusWantToRead, StatusCurrentlyReading, StatusFinished:
		return true
	}
	return false
}

// StatusBuckets maps every status to its books in insertion order. All three
// keys are always present, empty buckets included.
type StatusBuckets map[Status][]catalogModel.Book

// NewStatusBuckets returns buckets with all statuses pre-seeded so callers
// and renderers never see a missing key.
func NewStatusBuckets() StatusBuckets {
	buckets := make(StatusBuckets, len(AllStatuses))
	for _, s := range AllStatuses {
		buckets[s] = []catalogModel.Book{}
	}
	return buckets
}
