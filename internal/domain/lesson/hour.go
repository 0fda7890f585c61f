package lesson

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tuitiondesk/tuition-desk/internal/domain/shared"
)

// ParseHour reads a 24-hour clock hour. Only the number format is checked;
// the range is left to the caller, as timetables accept any hour.
func ParseHour(text string) (int, error) {
	text = strings.TrimSpace(text)
	h, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", shared.ErrInvalidHour, text)
	}
	return h, nil
}
