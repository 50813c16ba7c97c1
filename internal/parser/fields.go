package parser

import (
	"strconv"
	"strings"
	"time"

	"github.com/starford/findvisor/internal/apperr"
	"github.com/starford/findvisor/internal/datetime"
	"github.com/starford/findvisor/internal/models"
)

// Messages for field-level failures.
const (
	MessageInvalidIndex    = "Index is not a non-zero unsigned integer."
	MessageInvalidDate     = "Invalid date %q, dates must be in the format " + datetime.DatePattern
	MessageInvalidDateTime = "Invalid date time %q, date times must be in the format " +
		datetime.DatePattern + "'T'HH:mm"
)

// IsNonZeroUnsignedInteger reports whether s is a plain positive decimal that
// fits in 32 bits. Signs and whitespace are rejected.
func IsNonZeroUnsignedInteger(s string) bool {
	if s == "" || strings.HasPrefix(s, "+") {
		return false
	}
	n, err := strconv.ParseInt(s, 10, 32)
	return err == nil && n > 0
}

// ParseIndex parses a 1-based list position.
func ParseIndex(s string) (models.Index, error) {
	if !IsNonZeroUnsignedInteger(s) {
		return models.Index{}, apperr.New(apperr.ErrInvalidValue, MessageInvalidIndex)
	}
	n, _ := strconv.Atoi(s)
	return models.IndexFromOneBased(n), nil
}

// ParseDate parses a dd-mm-yyyy date.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if !datetime.IsValidDate(s) {
		return time.Time{}, apperr.New(apperr.ErrInvalidValue, MessageInvalidDate, s)
	}
	return datetime.ParseDate(s)
}

// ParseDateTime parses a dd-mm-yyyyThh:mm date time.
func ParseDateTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if !datetime.IsValidDateTime(s) {
		return time.Time{}, apperr.New(apperr.ErrInvalidValue, MessageInvalidDateTime, s)
	}
	return datetime.ParseDateTime(s)
}

// ParseTag parses a single tag name.
func ParseTag(s string) (models.Tag, error) {
	return models.NewTag(strings.TrimSpace(s))
}

// ParseTags parses every value into a tag set.
func ParseTags(values []string) (models.TagSet, error) {
	tags := make([]models.Tag, 0, len(values))
	for _, v := range values {
		t, err := ParseTag(v)
		if err != nil {
			return models.TagSet{}, err
		}
		tags = append(tags, t)
	}
	return models.NewTagSet(tags...), nil
}

// ParseMeetingRemark validates a meeting remark. An empty remark is allowed.
func ParseMeetingRemark(s string) (string, error) {
	s = strings.TrimSpace(s)
	if !models.IsSafeString(s) {
		return "", apperr.New(apperr.ErrInvalidValue, "Meeting remark should only contain %s.", models.SafeCharacters)
	}
	return s, nil
}
