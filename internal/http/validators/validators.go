package validators

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	apperrors "skill-share.com/skill-share/internal/errors"
)

var (
	emailPattern        = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	passwordCharset     = regexp.MustCompile(`^[A-Za-z0-9@$!%*?&]+$`)
	hasLetter           = regexp.MustCompile(`[A-Za-z]`)
	hasDigit            = regexp.MustCompile(`[0-9]`)
	mobilePattern       = regexp.MustCompile(`^[0-9]{10}$`)
	phonePattern        = regexp.MustCompile(`^[0-9]{10,15}$`)
	taxNumberPattern    = regexp.MustCompile(`^[A-Z0-9]{10}$`)
	streetNumberPattern = regexp.MustCompile(`^[0-9]{1,5}$`)
	placePattern        = regexp.MustCompile(`^[A-Za-z ]+$`)
	postCodePattern     = regexp.MustCompile(`^[0-9]{4,6}$`)
)

var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// ParseDate accepts an RFC 3339 timestamp or a plain calendar date.
func ParseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, apperrors.Validation("expectedStartDate must be a valid ISO 8601 date")
}

func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return apperrors.Validation(field + " is required")
	}
	return nil
}

func maxLength(field, value string, limit int) error {
	if utf8.RuneCountInString(value) > limit {
		return apperrors.Validation(fmt.Sprintf("%s must be at most %d characters", field, limit))
	}
	return nil
}

func matches(field, value string, pattern *regexp.Regexp, rule string) error {
	if !pattern.MatchString(value) {
		return apperrors.Validation(field + " " + rule)
	}
	return nil
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
