package models

import "time"

// ListInfo is the metadata of a single named list.
// Lists are never edited after creation; they are only created and deleted.
type ListInfo struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	CreatedAt int64  `json:"createdAt"` // unix milliseconds
}

// Created returns the creation time as a time.Time in the local zone.
func (l ListInfo) Created() time.Time {
	return time.UnixMilli(l.CreatedAt)
}

// FindList returns the index of the list with the given id, or -1.
func FindList(lists []ListInfo, id string) int {
	for i, l := range lists {
		if l.ID == id {
			return i
		}
	}
	return -1
}
