package timewindow

import "fmt"

const (
	MinutesPerDay = 24 * 60

	// "HH:MM-HH:MM"
	windowLen = 11
)

// Window полуинтервал [Begin, End) в минутах от полуночи.
// End == 1440 означает полночь следующего дня.
type Window struct {
	Begin int
	End   int
}

type FormatError struct {
	Value  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("time window %q: %s", e.Value, e.Reason)
}

// Parse разбирает строку вида "HH:MM-HH:MM". Конец "00:00" трактуется как 24:00.
func Parse(s string) (Window, error) {
	if len(s) != windowLen || s[5] != '-' {
		return Window{}, &FormatError{Value: s, Reason: "expected HH:MM-HH:MM"}
	}

	begin, err := parseClock(s, s[:5])
	if err != nil {
		return Window{}, err
	}
	end, err := parseClock(s, s[6:])
	if err != nil {
		return Window{}, err
	}
	if end == 0 {
		end = MinutesPerDay
	}

	return Window{Begin: begin, End: end}, nil
}

// Validate проверяет формат и то, что начало окна строго раньше конца.
func Validate(s string) error {
	w, err := Parse(s)
	if err != nil {
		return err
	}
	if w.Begin >= w.End {
		return &FormatError{Value: s, Reason: "begin must be before end"}
	}
	return nil
}

func ParseAll(values []string) ([]Window, error) {
	windows := make([]Window, 0, len(values))
	for _, v := range values {
		w, err := Parse(v)
		if err != nil {
			return nil, err
		}
		windows = append(windows, w)
	}
	return windows, nil
}

// Overlaps проверяет пересечение полуинтервалов, касание границ пересечением не считается.
func Overlaps(working, delivery Window) bool {
	if delivery.End <= working.Begin || delivery.Begin >= working.End {
		return false
	}
	return true
}

// AnyOverlap true, если хотя бы одно окно доставки пересекается хотя бы с одним рабочим окном.
// Заказ без окон доставки подходит любому курьеру.
func AnyOverlap(working, delivery []Window) bool {
	if len(delivery) == 0 {
		return true
	}
	for _, d := range delivery {
		for _, w := range working {
			if Overlaps(w, d) {
				return true
			}
		}
	}
	return false
}

func parseClock(raw, clock string) (int, error) {
	if len(clock) != 5 || clock[2] != ':' {
		return 0, &FormatError{Value: raw, Reason: "expected HH:MM"}
	}

	hours, ok := twoDigits(clock[0], clock[1])
	if !ok || hours > 23 {
		return 0, &FormatError{Value: raw, Reason: "hour must be 00-23"}
	}
	minutes, ok := twoDigits(clock[3], clock[4])
	if !ok || minutes > 59 {
		return 0, &FormatError{Value: raw, Reason: "minute must be 00-59"}
	}

	return hours*60 + minutes, nil
}

func twoDigits(a, b byte) (int, bool) {
	if a < '0' || a > '9' || b < '0' || b > '9' {
		return 0, false
	}
	return int(a-'0')*10 + int(b-'0'), true
}
