package list

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/thenoetrevino/lista/internal/models"
)

// NormalizeTitle trims a list title and validates it.
func NormalizeTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", models.ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > models.MaxTitleLength {
		return "", models.ErrTitleTooLong
	}
	return title, nil
}

// NormalizeItem trims an item and rejects empty or whitespace-only text.
func NormalizeItem(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", models.ErrEmptyItem
	}
	return text, nil
}

// NewListInfo builds a list created at now. The id is the creation time in
// unix milliseconds, bumped forward until it is unique within existing.
func NewListInfo(title string, now time.Time, existing []models.ListInfo) (models.ListInfo, error) {
	title, err := NormalizeTitle(title)
	if err != nil {
		return models.ListInfo{}, err
	}

	created := now.UnixMilli()
	token := created
	for models.FindList(existing, strconv.FormatInt(token, 10)) >= 0 {
		token++
	}

	return models.ListInfo{
		ID:        strconv.FormatInt(token, 10),
		Title:     title,
		CreatedAt: created,
	}, nil
}

// AppendList returns a new collection with l at the end.
func AppendList(lists []models.ListInfo, l models.ListInfo) []models.ListInfo {
	out := make([]models.ListInfo, 0, len(lists)+1)
	out = append(out, lists...)
	return append(out, l)
}

// WithoutList returns a new collection without the list id, and whether it was present.
func WithoutList(lists []models.ListInfo, id string) ([]models.ListInfo, bool) {
	idx := models.FindList(lists, id)
	if idx < 0 {
		return lists, false
	}
	out := make([]models.ListInfo, 0, len(lists)-1)
	out = append(out, lists[:idx]...)
	return append(out, lists[idx+1:]...), true
}

// AppendItem returns a new sequence with text appended, or ErrEmptyItem.
// The input slice is never modified.
func AppendItem(items []string, text string) ([]string, error) {
	text, err := NormalizeItem(text)
	if err != nil {
		return items, err
	}
	out := make([]string, 0, len(items)+1)
	out = append(out, items...)
	return append(out, text), nil
}

// RemoveItemAt returns a new sequence without the item at index.
func RemoveItemAt(items []string, index int) ([]string, error) {
	if index < 0 || index >= len(items) {
		return items, models.ErrIndexOutOfRange
	}
	out := make([]string, 0, len(items)-1)
	out = append(out, items[:index]...)
	return append(out, items[index+1:]...), nil
}
